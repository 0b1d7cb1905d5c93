package models

import (
	"time"

	"github.com/mwidyarto/go-commerce-api/app/domain"
)

// Category is the GORM row backing domain.Category. The unique indexes on
// name and slug are the real uniqueness guarantee; the use-case pre-checks
// are only a fast-fail in front of them.
type Category struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name        string `gorm:"size:100;not null;uniqueIndex"`
	Description string `gorm:"size:500"`
	Slug        string `gorm:"size:100;not null;uniqueIndex"`
	ImageURL    string `gorm:"size:2048"`
	IsActive    bool   `gorm:"not null;default:true;index"`
	SortOrder   int    `gorm:"not null;default:0;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func FromCategoryEntity(c domain.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Slug:        c.Slug,
		ImageURL:    c.ImageURL,
		IsActive:    c.IsActive,
		SortOrder:   c.SortOrder,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m Category) ToEntity() domain.Category {
	return domain.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Slug:        m.Slug,
		ImageURL:    m.ImageURL,
		IsActive:    m.IsActive,
		SortOrder:   m.SortOrder,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
