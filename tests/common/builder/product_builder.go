//go:build unit || e2e

package builder

import (
	domproduct "order-fulfillment/internal/domain/product"
	"order-fulfillment/internal/infra/memstore"

	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	Code        string
	Name        string
	Price       decimal.Decimal
	Stock       int
	Reservation bool
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		Code:  "P1",
		Name:  "Test Product",
		Price: decimal.NewFromInt(100),
		Stock: 10,
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

func (p *ProductBuilder) WithCode(code string) *ProductBuilder {
	p.Code = code
	return p
}

func (p *ProductBuilder) WithName(name string) *ProductBuilder {
	p.Name = name
	return p
}

func (p *ProductBuilder) WithPrice(price int64) *ProductBuilder {
	p.Price = decimal.NewFromInt(price)
	return p
}

func (p *ProductBuilder) WithStock(stock int) *ProductBuilder {
	p.Stock = stock
	return p
}

func (p *ProductBuilder) AsReservation() *ProductBuilder {
	p.Reservation = true
	return p
}

// Build methods
func (p *ProductBuilder) BuildDomain() (domproduct.Product, error) {
	return domproduct.NewProduct(p.Code, p.Name, p.Price, p.Stock, p.Reservation)
}

// MustBuildDomain panics on invalid builder state; use only with valid fixtures.
func (p *ProductBuilder) MustBuildDomain() domproduct.Product {
	prod, err := p.BuildDomain()
	if err != nil {
		panic(err)
	}
	return prod
}

func (p *ProductBuilder) BuildSeed() memstore.SeedProduct {
	return memstore.SeedProduct{
		Code:        p.Code,
		Name:        p.Name,
		Price:       p.Price,
		Stock:       p.Stock,
		Reservation: p.Reservation,
	}
}
