package usecases

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mwidyarto/go-commerce-api/app/domain"
	"github.com/mwidyarto/go-commerce-api/app/repositories"
)

const defaultListLimit = 50

type ListCategoriesRequest struct {
	Filters    ListCategoriesFilters `json:"filters"`
	Pagination PageRequest           `json:"pagination"`
}

type ListCategoriesFilters struct {
	IsActive *bool  `json:"isActive,omitempty"`
	Search   string `json:"search,omitempty"`
}

type PageRequest struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// ListCategoriesResult reports one page. Total is a heuristic
// (offset + returned + 1 when a further page exists), not a real count;
// HasMore is the signal callers should rely on.
type ListCategoriesResult struct {
	Categories []domain.Category
	Total      int
	HasMore    bool
	Limit      int
	Offset     int
}

type ListCategoriesUseCase struct {
	categories repositories.CategoryRepository
	log        *logrus.Entry
}

func NewListCategoriesUseCase(categories repositories.CategoryRepository, log *logrus.Logger) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categories: categories,
		log:        log.WithField("usecase", "GetCategories"),
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, req ListCategoriesRequest) (ListCategoriesResult, error) {
	limit := req.Pagination.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := req.Pagination.Offset
	if offset < 0 {
		offset = 0
	}

	filters := domain.CategoryFilters{
		IsActive: req.Filters.IsActive,
		Search:   strings.TrimSpace(req.Filters.Search),
		Limit:    limit,
		Offset:   offset,
	}

	categories, err := uc.categories.FindAll(ctx, filters)
	if err != nil {
		return ListCategoriesResult{}, wrapRepoErr("list categories", err)
	}

	hasMore := len(categories) == limit
	total := offset + len(categories)
	if hasMore {
		total++
	}

	uc.log.WithFields(logrus.Fields{"count": len(categories), "hasMore": hasMore}).
		Debug("categories listed")

	return ListCategoriesResult{
		Categories: categories,
		Total:      total,
		HasMore:    hasMore,
		Limit:      limit,
		Offset:     offset,
	}, nil
}
