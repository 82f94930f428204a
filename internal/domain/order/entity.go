package order

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyID          = errors.New("order id cannot be blank")
	ErrEmptyProductCode = errors.New("order product code cannot be empty")
	ErrInvalidQuantity  = errors.New("order quantity must be positive")
	ErrNegativeAmount   = errors.New("order amount cannot be negative")
	ErrMissingTimestamp = errors.New("order timestamp is required")
	ErrInvalidType      = errors.New("invalid order type")
)

// Order is immutable once created.
type Order struct {
	id          string
	productCode string
	quantity    int
	amount      decimal.Decimal
	timestamp   time.Time
	orderType   Type
}

func NewOrder(
	id, productCode string,
	quantity int,
	amount decimal.Decimal,
	timestamp time.Time,
	orderType Type,
) (*Order, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyID
	}
	if strings.TrimSpace(productCode) == "" {
		return nil, ErrEmptyProductCode
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if timestamp.IsZero() {
		return nil, ErrMissingTimestamp
	}
	if !orderType.IsValid() {
		return nil, ErrInvalidType
	}

	return &Order{
		id:          id,
		productCode: productCode,
		quantity:    quantity,
		amount:      amount,
		timestamp:   timestamp,
		orderType:   orderType,
	}, nil
}

func (o *Order) IsReservation() bool {
	return o.orderType == TypeReservation
}

func (o *Order) ID() string              { return o.id }
func (o *Order) ProductCode() string     { return o.productCode }
func (o *Order) Quantity() int           { return o.quantity }
func (o *Order) Amount() decimal.Decimal { return o.amount }
func (o *Order) Timestamp() time.Time    { return o.timestamp }
func (o *Order) Type() Type              { return o.orderType }
