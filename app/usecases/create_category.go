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

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Slug        *string `json:"slug,omitempty" validate:"omitempty,min=2,max=100,slugformat"`
	ImageURL    *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
	IsActive    *bool   `json:"isActive,omitempty"`
	SortOrder   *int    `json:"sortOrder,omitempty" validate:"omitempty,min=0,max=999"`
}

type CreateCategoryUseCase struct {
	categories repositories.CategoryRepository
	validate   *validator.Validate
	log        *logrus.Entry
}

func NewCreateCategoryUseCase(categories repositories.CategoryRepository, log *logrus.Logger) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categories: categories,
		validate:   helpers.NewValidator(),
		log:        log.WithField("usecase", "CreateCategory"),
	}
}

// Execute validates the request, resolves the slug, checks name and slug
// uniqueness against the store and persists a fresh entity. IsActive defaults
// to true and SortOrder to 0 when not supplied.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, req CreateCategoryRequest) (domain.Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		req.Description = &trimmed
	}

	if err := uc.validate.Struct(req); err != nil {
		return domain.Category{}, helpers.MapValidationError(err)
	}

	slug := helpers.GenerateSlug(req.Name)
	if req.Slug != nil {
		slug = *req.Slug
	}

	byName, err := uc.categories.FindByName(ctx, req.Name)
	if err != nil {
		return domain.Category{}, wrapRepoErr("create category", err)
	}
	if byName != nil {
		uc.log.WithFields(logrus.Fields{"name": req.Name, "existingId": byName.ID}).
			Warn("category name already exists")
		return domain.Category{}, &domain.DuplicateError{Entity: "Category", Field: "name", Value: req.Name}
	}

	bySlug, err := uc.categories.FindBySlug(ctx, slug)
	if err != nil {
		return domain.Category{}, wrapRepoErr("create category", err)
	}
	if bySlug != nil {
		uc.log.WithFields(logrus.Fields{"slug": slug, "existingId": bySlug.ID}).
			Warn("category slug already exists")
		return domain.Category{}, &domain.DuplicateError{Entity: "Category", Field: "slug", Value: slug}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}
	description := ""
	if req.Description != nil {
		description = *req.Description
	}
	imageURL := ""
	if req.ImageURL != nil {
		imageURL = *req.ImageURL
	}

	entity := domain.NewCategory(req.Name, description, slug, imageURL, isActive, sortOrder)

	created, err := uc.categories.Create(ctx, entity)
	if err != nil {
		return domain.Category{}, wrapRepoErr("create category", err)
	}

	uc.log.WithFields(logrus.Fields{"id": created.ID, "name": created.Name, "slug": created.Slug}).
		Info("category created")
	return created, nil
}
