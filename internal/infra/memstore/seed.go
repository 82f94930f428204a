package memstore

import (
	"encoding/json"
	"os"

	"order-fulfillment/internal/domain/product"
	"order-fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// SeedProduct is the on-disk form of a catalog entry.
type SeedProduct struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Reservation bool            `json:"reservation"`
}

func DefaultSeed() []SeedProduct {
	return []SeedProduct{
		{Code: "PROD001", Name: "iPhone 15", Price: decimal.NewFromInt(120000), Stock: 50},
		{Code: "PROD002", Name: "MacBook Pro", Price: decimal.NewFromInt(280000), Stock: 25},
		{Code: "PROD003", Name: "iPad Air", Price: decimal.NewFromInt(80000), Stock: 30},
		{Code: "PROD004", Name: "AirPods Pro", Price: decimal.NewFromInt(35000), Stock: 100},
		{Code: "PROD005", Name: "Apple Watch", Price: decimal.NewFromInt(50000), Stock: 75},
		{Code: "BOOK001", Name: "Spring Boot入門", Price: decimal.NewFromInt(3200), Stock: 200},
		{Code: "BOOK002", Name: "Java完全ガイド", Price: decimal.NewFromInt(4500), Stock: 150},
		{Code: "ELEC001", Name: "ワイヤレスキーボード", Price: decimal.NewFromInt(8000), Stock: 80},
		{Code: "ELEC002", Name: "4Kモニター", Price: decimal.NewFromInt(45000), Stock: 15},
		{Code: "GAME001", Name: "Nintendo Switch", Price: decimal.NewFromInt(32000), Stock: 60},
		// reservation items carry no stock
		{Code: "PRE001", Name: "iPhone 16 Pro (予約)", Price: decimal.NewFromInt(159800), Reservation: true},
		{Code: "PRE002", Name: "Nintendo Switch 2 (予約)", Price: decimal.NewFromInt(49980), Reservation: true},
	}
}

func LoadSeedFile(path string) ([]SeedProduct, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to read seed file %s", path)
	}

	var seeds []SeedProduct
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, errs.Wrapf(err, "failed to parse seed file %s", path)
	}
	if len(seeds) == 0 {
		return nil, errs.Newf("seed file %s contains no products", path)
	}
	return seeds, nil
}

func BuildProducts(seeds []SeedProduct) ([]product.Product, error) {
	products := make([]product.Product, 0, len(seeds))
	for i, s := range seeds {
		p, err := product.NewProduct(s.Code, s.Name, s.Price, s.Stock, s.Reservation)
		if err != nil {
			return nil, errs.Wrapf(err, "invalid seed product at index %d (%s)", i, s.Code)
		}
		products = append(products, p)
	}
	return products, nil
}
