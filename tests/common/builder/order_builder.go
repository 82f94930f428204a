//go:build unit || e2e

package builder

import (
	"time"

	domorder "order-fulfillment/internal/domain/order"
	reqdto "order-fulfillment/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	ID          string
	ProductCode string
	Quantity    int
	Amount      decimal.Decimal
	Timestamp   time.Time
	Type        domorder.Type
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:          uuid.NewString(),
		ProductCode: "P1",
		Quantity:    3,
		Amount:      decimal.NewFromInt(300),
		Timestamp:   time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC),
		Type:        domorder.TypeNormal,
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) WithID(id string) *OrderBuilder {
	o.ID = id
	return o
}

func (o *OrderBuilder) WithProductCode(code string) *OrderBuilder {
	o.ProductCode = code
	return o
}

func (o *OrderBuilder) WithQuantity(quantity int) *OrderBuilder {
	o.Quantity = quantity
	return o
}

func (o *OrderBuilder) WithAmount(amount int64) *OrderBuilder {
	o.Amount = decimal.NewFromInt(amount)
	return o
}

func (o *OrderBuilder) AsReservation() *OrderBuilder {
	o.Type = domorder.TypeReservation
	return o
}

// Build methods
func (o *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	return domorder.NewOrder(o.ID, o.ProductCode, o.Quantity, o.Amount, o.Timestamp, o.Type)
}

func (o *OrderBuilder) MustBuildDomain() *domorder.Order {
	ord, err := o.BuildDomain()
	if err != nil {
		panic(err)
	}
	return ord
}

func (o *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		ProductCode: o.ProductCode,
		Quantity:    o.Quantity,
	}
}
