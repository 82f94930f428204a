package response

import (
	"order-fulfillment/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Reservation bool            `json:"reservation"`
}

type ProductListResponse struct {
	Products []*ProductResponse `json:"products"`
	Count    int                `json:"count"`
}

func FromProductView(pv *queries.ProductView) (*ProductResponse, error) {
	var res ProductResponse
	if err := copier.Copy(&res, pv); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromProductViews(pvs []*queries.ProductView) (*ProductListResponse, error) {
	products := make([]*ProductResponse, 0, len(pvs))
	for _, pv := range pvs {
		res, err := FromProductView(pv)
		if err != nil {
			return nil, err
		}
		products = append(products, res)
	}
	return &ProductListResponse{Products: products, Count: len(products)}, nil
}
