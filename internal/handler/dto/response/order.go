package response

import (
	"time"

	"order-fulfillment/internal/domain/order"
	"order-fulfillment/internal/usecase/queries"
)

// OrderResponse is the processing result. Amount is truncated toward zero.
type OrderResponse struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Timestamp string `json:"timestamp"`
}

type OrderDetailResponse struct {
	ID          string `json:"id"`
	ProductCode string `json:"productCode"`
	Quantity    int    `json:"quantity"`
	Amount      int64  `json:"amount"`
	Timestamp   string `json:"timestamp"`
	Type        string `json:"type"`
	TypeLabel   string `json:"typeLabel"`
}

type OrderListResponse struct {
	Orders []*OrderDetailResponse `json:"orders"`
	Count  int                    `json:"count"`
	Total  int                    `json:"total"`
}

func FromOrder(o *order.Order) *OrderResponse {
	return &OrderResponse{
		ID:        o.ID(),
		Amount:    o.Amount().IntPart(),
		Timestamp: formatTimestamp(o.Timestamp()),
	}
}

func FromOrderView(ov *queries.OrderView) *OrderDetailResponse {
	return &OrderDetailResponse{
		ID:          ov.ID,
		ProductCode: ov.ProductCode,
		Quantity:    ov.Quantity,
		Amount:      ov.Amount.IntPart(),
		Timestamp:   formatTimestamp(ov.Timestamp),
		Type:        ov.Type,
		TypeLabel:   ov.TypeLabel,
	}
}

func FromOrderList(list *queries.OrderList) *OrderListResponse {
	orders := make([]*OrderDetailResponse, 0, len(list.Orders))
	for _, ov := range list.Orders {
		orders = append(orders, FromOrderView(ov))
	}
	return &OrderListResponse{
		Orders: orders,
		Count:  len(orders),
		Total:  list.Total,
	}
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
