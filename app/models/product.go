package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mwidyarto/go-commerce-api/app/domain"
)

type Product struct {
	ID            string           `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CategoryID    string           `gorm:"size:36;not null;index"`
	Category      Category         `gorm:"foreignKey:CategoryID"`
	Name          string           `gorm:"size:255;not null"`
	Description   string           `gorm:"type:text"`
	Sku           string           `gorm:"size:50;not null;uniqueIndex"`
	Price         decimal.Decimal  `gorm:"type:decimal(16,2);not null"`
	SalePrice     *decimal.Decimal `gorm:"type:decimal(16,2)"`
	StockQuantity int              `gorm:"not null;default:0"`
	IsActive      bool             `gorm:"not null;default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func FromProductEntity(p domain.Product) Product {
	return Product{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		Description:   p.Description,
		Sku:           p.SKU,
		Price:         p.Price,
		SalePrice:     p.SalePrice,
		StockQuantity: p.StockQuantity,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (m Product) ToEntity() domain.Product {
	return domain.Product{
		ID:            m.ID,
		CategoryID:    m.CategoryID,
		Name:          m.Name,
		Description:   m.Description,
		SKU:           m.Sku,
		Price:         m.Price,
		SalePrice:     m.SalePrice,
		StockQuantity: m.StockQuantity,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
