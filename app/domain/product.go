package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a slim catalog product belonging to a single category. SKU is
// stored upper-cased and unique. SalePrice nil means no discount.
type Product struct {
	ID            string
	CategoryID    string
	Name          string
	Description   string
	SKU           string
	Price         decimal.Decimal
	SalePrice     *decimal.Decimal
	StockQuantity int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewProduct(categoryID, name, description, sku string, price decimal.Decimal, salePrice *decimal.Decimal, stockQuantity int, isActive bool) Product {
	now := time.Now()
	return Product{
		ID:            uuid.New().String(),
		CategoryID:    categoryID,
		Name:          name,
		Description:   description,
		SKU:           sku,
		Price:         price,
		SalePrice:     salePrice,
		StockQuantity: stockQuantity,
		IsActive:      isActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
