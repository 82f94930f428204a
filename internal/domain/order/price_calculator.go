package order

import (
	"order-fulfillment/internal/domain/product"

	"github.com/shopspring/decimal"
)

type PriceCalculator interface {
	CalculateAmount(p product.Product, quantity int) decimal.Decimal
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

// unit price × quantity, exact decimal arithmetic
func (pc *DefaultPriceCalculator) CalculateAmount(p product.Product, quantity int) decimal.Decimal {
	return p.Price().Mul(decimal.NewFromInt(int64(quantity)))
}
