package controllers

import (
	"context"
	"net/http"

	"go.uber.org/multierr"

	"github.com/bestshop/storefront-backend/api/responses"
	"github.com/bestshop/storefront-backend/pkg/config"
	pkgerrors "github.com/bestshop/storefront-backend/pkg/errors"
	"github.com/bestshop/storefront-backend/pkg/logger"
)

// ReadinessCheck is one named dependency probe run by the ready endpoint.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-BestShop-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady probes every dependency and reports all failures at once.
func HealthReady(cfg *config.Config, logg *logger.Logger, checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-BestShop-Env", cfg.App.Env)

		var combined error
		failed := make([]string, 0)
		for _, check := range checks {
			if check.Check == nil {
				continue
			}
			if err := check.Check(r.Context()); err != nil {
				combined = multierr.Append(combined, err)
				failed = append(failed, check.Name)
			}
		}

		if combined != nil {
			err := pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "not ready").
				WithDetails(map[string]any{"failed": failed})
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
