package usecases

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mwidyarto/go-commerce-api/app/domain"
	"github.com/mwidyarto/go-commerce-api/app/repositories"
)

type GetCategoryByIDRequest struct {
	ID string `json:"id"`
}

type GetCategoryByIDUseCase struct {
	categories repositories.CategoryRepository
	log        *logrus.Entry
}

func NewGetCategoryByIDUseCase(categories repositories.CategoryRepository, log *logrus.Logger) *GetCategoryByIDUseCase {
	return &GetCategoryByIDUseCase{
		categories: categories,
		log:        log.WithField("usecase", "GetCategoryById"),
	}
}

// Execute fails fast with a required-field error on blank input, before any
// repository call; a lookup that matches nothing is a NotFoundError instead.
func (uc *GetCategoryByIDUseCase) Execute(ctx context.Context, req GetCategoryByIDRequest) (domain.Category, error) {
	if strings.TrimSpace(req.ID) == "" {
		return domain.Category{}, &domain.RequiredFieldError{Field: "id"}
	}

	category, err := uc.categories.FindByID(ctx, req.ID)
	if err != nil {
		return domain.Category{}, wrapRepoErr("get category by id", err)
	}
	if category == nil {
		uc.log.WithField("id", req.ID).Warn("category not found")
		return domain.Category{}, &domain.NotFoundError{Entity: "Category", Key: req.ID}
	}
	return *category, nil
}

type GetCategoryBySlugRequest struct {
	Slug string `json:"slug"`
}

type GetCategoryBySlugUseCase struct {
	categories repositories.CategoryRepository
	log        *logrus.Entry
}

func NewGetCategoryBySlugUseCase(categories repositories.CategoryRepository, log *logrus.Logger) *GetCategoryBySlugUseCase {
	return &GetCategoryBySlugUseCase{
		categories: categories,
		log:        log.WithField("usecase", "GetCategoryBySlug"),
	}
}

func (uc *GetCategoryBySlugUseCase) Execute(ctx context.Context, req GetCategoryBySlugRequest) (domain.Category, error) {
	if strings.TrimSpace(req.Slug) == "" {
		return domain.Category{}, &domain.RequiredFieldError{Field: "slug"}
	}

	category, err := uc.categories.FindBySlug(ctx, req.Slug)
	if err != nil {
		return domain.Category{}, wrapRepoErr("get category by slug", err)
	}
	if category == nil {
		uc.log.WithField("slug", req.Slug).Warn("category not found")
		return domain.Category{}, &domain.NotFoundError{Entity: "Category", Key: req.Slug}
	}
	return *category, nil
}
