package usecases

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/mwidyarto/go-commerce-api/app/domain"
	"github.com/mwidyarto/go-commerce-api/app/helpers"
	"github.com/mwidyarto/go-commerce-api/app/repositories"
)

// UpdateCategoryRequest is a partial update: nil fields are not touched.
type UpdateCategoryRequest struct {
	ID          string  `json:"id" validate:"required"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Slug        *string `json:"slug,omitempty" validate:"omitempty,min=2,max=100,slugformat"`
	ImageURL    *string `json:"imageUrl,omitempty" validate:"omitempty,httpurl"`
	IsActive    *bool   `json:"isActive,omitempty"`
	SortOrder   *int    `json:"sortOrder,omitempty" validate:"omitempty,min=0,max=999"`
}

// UpdateCategoryResult carries the resulting entity and the names of the
// fields that were actually modified, in evaluation order. An empty Changes
// slice means nothing differed and no write was performed.
type UpdateCategoryResult struct {
	Category domain.Category
	Changes  []string
}

type UpdateCategoryUseCase struct {
	categories repositories.CategoryRepository
	validate   *validator.Validate
	log        *logrus.Entry
}

func NewUpdateCategoryUseCase(categories repositories.CategoryRepository, log *logrus.Logger) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categories: categories,
		validate:   helpers.NewValidator(),
		log:        log.WithField("usecase", "UpdateCategory"),
	}
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, req UpdateCategoryRequest) (UpdateCategoryResult, error) {
	existing, err := uc.categories.FindByID(ctx, req.ID)
	if err != nil {
		return UpdateCategoryResult{}, wrapRepoErr("update category", err)
	}
	if existing == nil {
		uc.log.WithField("id", req.ID).Warn("category not found")
		return UpdateCategoryResult{}, &domain.NotFoundError{Entity: "Category", Key: req.ID}
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		req.Description = &trimmed
	}

	if err := uc.validate.Struct(req); err != nil {
		return UpdateCategoryResult{}, helpers.MapValidationError(err)
	}

	// Diff against the current entity, field by field in a fixed order. Only
	// fields whose value actually differs are staged and reported.
	var changes domain.CategoryChanges
	changed := []string{}

	if req.Name != nil && *req.Name != existing.Name {
		byName, err := uc.categories.FindByName(ctx, *req.Name)
		if err != nil {
			return UpdateCategoryResult{}, wrapRepoErr("update category", err)
		}
		if byName != nil && byName.ID != req.ID {
			uc.log.WithFields(logrus.Fields{"id": req.ID, "name": *req.Name, "existingId": byName.ID}).
				Warn("category name already exists")
			return UpdateCategoryResult{}, &domain.DuplicateError{Entity: "Category", Field: "name", Value: *req.Name}
		}
		changes.Name = req.Name
		changed = append(changed, "name")
	}

	if req.Description != nil && *req.Description != existing.Description {
		changes.Description = req.Description
		changed = append(changed, "description")
	}

	if req.Slug != nil && *req.Slug != existing.Slug {
		bySlug, err := uc.categories.FindBySlug(ctx, *req.Slug)
		if err != nil {
			return UpdateCategoryResult{}, wrapRepoErr("update category", err)
		}
		if bySlug != nil && bySlug.ID != req.ID {
			uc.log.WithFields(logrus.Fields{"id": req.ID, "slug": *req.Slug, "existingId": bySlug.ID}).
				Warn("category slug already exists")
			return UpdateCategoryResult{}, &domain.DuplicateError{Entity: "Category", Field: "slug", Value: *req.Slug}
		}
		changes.Slug = req.Slug
		changed = append(changed, "slug")
	}

	if req.ImageURL != nil && *req.ImageURL != existing.ImageURL {
		changes.ImageURL = req.ImageURL
		changed = append(changed, "imageUrl")
	}

	if req.IsActive != nil && *req.IsActive != existing.IsActive {
		changes.IsActive = req.IsActive
		changed = append(changed, "isActive")
	}

	if req.SortOrder != nil && *req.SortOrder != existing.SortOrder {
		changes.SortOrder = req.SortOrder
		changed = append(changed, "sortOrder")
	}

	if changes.IsEmpty() {
		uc.log.WithField("id", req.ID).Info("no changes detected for category")
		return UpdateCategoryResult{Category: *existing, Changes: []string{}}, nil
	}

	updated, err := uc.categories.Update(ctx, req.ID, changes)
	if err != nil {
		return UpdateCategoryResult{}, wrapRepoErr("update category", err)
	}

	uc.log.WithFields(logrus.Fields{"id": req.ID, "changes": changed}).Info("category updated")
	return UpdateCategoryResult{Category: updated, Changes: changed}, nil
}
