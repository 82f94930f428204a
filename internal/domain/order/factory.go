package order

import (
	"order-fulfillment/internal/domain/product"
	"order-fulfillment/internal/pkg/clock"

	"github.com/google/uuid"
)

type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	IDGenerator     IDGenerator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator, idGenerator IDGenerator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
		IDGenerator:     idGenerator,
	}
}

// CreateOrder tags the order by the product's reservation flag. The amount
// always comes from the product's current price.
func (f *Factory) CreateOrder(p product.Product, quantity int) (*Order, error) {
	orderType := TypeNormal
	if p.IsReservation() {
		orderType = TypeReservation
	}

	amount := f.PriceCalculator.CalculateAmount(p, quantity)

	return NewOrder(
		f.IDGenerator.NewID(),
		p.Code(),
		quantity,
		amount,
		f.Clock.Now(),
		orderType,
	)
}
