package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderView represents read-optimized order data
type OrderView struct {
	ID          string          `json:"id"`
	ProductCode string          `json:"product_code"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
	Type        string          `json:"type"`
	TypeLabel   string          `json:"type_label"`
}

type OrderList struct {
	Orders []*OrderView
	// Total is the ledger size, independent of any filter
	Total int
}

// ProductView represents read-optimized catalog data
type ProductView struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Reservation bool            `json:"reservation"`
}
