package cart

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1,max=99"`
}

func (r addItemRequest) quantityOrDefault() int {
	if r.Quantity < 1 {
		return 1
	}
	return r.Quantity
}

type updateItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1,max=99"`
}
