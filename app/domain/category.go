package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is an immutable catalog category. Values are never mutated in
// place: every change goes through Apply, which returns a fresh value with a
// refreshed UpdatedAt. Empty Description and ImageURL mean "absent".
type Category struct {
	ID          string
	Name        string
	Description string
	Slug        string
	ImageURL    string
	IsActive    bool
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory assigns the id and both timestamps. Callers never supply ids.
func NewCategory(name, description, slug, imageURL string, isActive bool, sortOrder int) Category {
	now := time.Now()
	return Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Slug:        slug,
		ImageURL:    imageURL,
		IsActive:    isActive,
		SortOrder:   sortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CategoryChanges is a partial update: nil fields are left untouched.
type CategoryChanges struct {
	Name        *string
	Description *string
	Slug        *string
	ImageURL    *string
	IsActive    *bool
	SortOrder   *int
}

// IsEmpty reports whether no field is staged.
func (ch CategoryChanges) IsEmpty() bool {
	return ch.Name == nil && ch.Description == nil && ch.Slug == nil &&
		ch.ImageURL == nil && ch.IsActive == nil && ch.SortOrder == nil
}

// Apply returns a copy with the staged fields replaced and UpdatedAt refreshed.
// ID and CreatedAt never change.
func (c Category) Apply(ch CategoryChanges) Category {
	next := c
	if ch.Name != nil {
		next.Name = *ch.Name
	}
	if ch.Description != nil {
		next.Description = *ch.Description
	}
	if ch.Slug != nil {
		next.Slug = *ch.Slug
	}
	if ch.ImageURL != nil {
		next.ImageURL = *ch.ImageURL
	}
	if ch.IsActive != nil {
		next.IsActive = *ch.IsActive
	}
	if ch.SortOrder != nil {
		next.SortOrder = *ch.SortOrder
	}
	next.UpdatedAt = time.Now()
	return next
}

func (c Category) Activate() Category {
	active := true
	return c.Apply(CategoryChanges{IsActive: &active})
}

func (c Category) Deactivate() Category {
	inactive := false
	return c.Apply(CategoryChanges{IsActive: &inactive})
}

// CategoryFilters narrows FindAll results. Nil IsActive means both states,
// empty Search means no text filter.
type CategoryFilters struct {
	IsActive *bool
	Search   string
	Limit    int
	Offset   int
}
