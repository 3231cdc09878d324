package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bestshop/storefront-backend/pkg/enums"
	pkgerrors "github.com/bestshop/storefront-backend/pkg/errors"
)

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min, "max": max})
	}
	return value, nil
}

// ParseQuerySort reads the sort query parameter; an absent parameter means
// the catalog's default order.
func ParseQuerySort(r *http.Request, key string) (enums.SortType, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	sortType, err := enums.ParseSortType(raw)
	if err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "unknown sort type").WithDetails(map[string]any{"field": key, "value": raw})
	}
	return sortType, nil
}

// ParseQueryBool reads an optional boolean query parameter. An absent or
// empty value yields nil, meaning "no constraint".
func ParseQueryBool(r *http.Request, key string) (*bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be boolean").WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}
