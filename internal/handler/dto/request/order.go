package request

import (
	"strings"

	"order-fulfillment/internal/pkg/patch"
)

type CreateOrderRequest struct {
	ProductCode string `json:"productCode" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
}

func (r CreateOrderRequest) Normalized() CreateOrderRequest {
	r.ProductCode = strings.TrimSpace(r.ProductCode)
	return r
}

type ListOrdersQuery struct {
	ProductCode *string `form:"productCode"`
}

// GetProductCode returns "" when no filter was given.
func (q ListOrdersQuery) GetProductCode() string {
	return patch.TrimmedOrEmpty(q.ProductCode)
}
