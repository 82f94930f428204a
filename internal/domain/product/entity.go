package product

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCode       = errors.New("product code cannot be empty")
	ErrCodeTooLong     = errors.New("product code is too long (max 64 characters)")
	ErrEmptyName       = errors.New("product name cannot be empty")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrNegativeStock   = errors.New("stock cannot be negative")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrStockShortage   = errors.New("quantity exceeds available stock")
)

const (
	MaxCodeLength = 64
)

// Product is a value snapshot; every mutation returns a new Product.
type Product struct {
	code        string
	name        string
	price       decimal.Decimal
	stock       int
	reservation bool
}

func NewProduct(code, name string, price decimal.Decimal, stock int, reservation bool) (Product, error) {
	code = strings.TrimSpace(code)
	if err := validateCode(code); err != nil {
		return Product{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, ErrEmptyName
	}

	if price.IsNegative() {
		return Product{}, ErrNegativePrice
	}

	if stock < 0 {
		return Product{}, ErrNegativeStock
	}

	return Product{
		code:        code,
		name:        name,
		price:       price,
		stock:       stock,
		reservation: reservation,
	}, nil
}

func validateCode(code string) error {
	if code == "" {
		return ErrEmptyCode
	}
	if len(code) > MaxCodeLength {
		return ErrCodeTooLong
	}
	return nil
}

// CanFulfill reports whether on-hand stock covers quantity.
// Reservation products are never checked against stock.
func (p Product) CanFulfill(quantity int) bool {
	if quantity <= 0 {
		return false
	}
	return p.reservation || quantity <= p.stock
}

// Decrease returns a copy with stock reduced by quantity, all other fields unchanged.
func (p Product) Decrease(quantity int) (Product, error) {
	if quantity <= 0 {
		return Product{}, ErrInvalidQuantity
	}
	if quantity > p.stock {
		return Product{}, ErrStockShortage
	}
	return p.WithStock(p.stock - quantity)
}

func (p Product) WithStock(stock int) (Product, error) {
	if stock < 0 {
		return Product{}, ErrNegativeStock
	}
	next := p
	next.stock = stock
	return next, nil
}

func (p Product) IsZero() bool {
	return p.code == ""
}

func (p Product) Code() string           { return p.code }
func (p Product) Name() string           { return p.name }
func (p Product) Price() decimal.Decimal { return p.price }
func (p Product) Stock() int             { return p.stock }
func (p Product) IsReservation() bool    { return p.reservation }
