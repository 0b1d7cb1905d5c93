package usecases

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mwidyarto/go-commerce-api/app/domain"
	"github.com/mwidyarto/go-commerce-api/app/repositories"
)

type DeleteCategoryRequest struct {
	ID          string `json:"id"`
	ForceDelete bool   `json:"forceDelete,omitempty"`
}

type DeleteCategoryResult struct {
	ID         string
	DeletedAt  time.Time
	SoftDelete bool
}

type DeleteCategoryUseCase struct {
	categories repositories.CategoryRepository
	log        *logrus.Entry
}

func NewDeleteCategoryUseCase(categories repositories.CategoryRepository, log *logrus.Logger) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categories: categories,
		log:        log.WithField("usecase", "DeleteCategory"),
	}
}

// Execute soft-deletes by default (the category row stays, flagged inactive)
// and hard-deletes only when ForceDelete is set. Products referencing the
// category are not checked; deactivation leaves them intact and hard deletes
// are an explicit operator decision.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, req DeleteCategoryRequest) (DeleteCategoryResult, error) {
	existing, err := uc.categories.FindByID(ctx, req.ID)
	if err != nil {
		return DeleteCategoryResult{}, wrapRepoErr("delete category", err)
	}
	if existing == nil {
		uc.log.WithField("id", req.ID).Warn("category not found")
		return DeleteCategoryResult{}, &domain.NotFoundError{Entity: "Category", Key: req.ID}
	}

	softDelete := !req.ForceDelete
	if softDelete {
		inactive := false
		if _, err := uc.categories.Update(ctx, req.ID, domain.CategoryChanges{IsActive: &inactive}); err != nil {
			return DeleteCategoryResult{}, wrapRepoErr("delete category", err)
		}
		uc.log.WithField("id", req.ID).Info("category soft deleted")
	} else {
		if err := uc.categories.Delete(ctx, req.ID); err != nil {
			return DeleteCategoryResult{}, wrapRepoErr("delete category", err)
		}
		uc.log.WithField("id", req.ID).Info("category hard deleted")
	}

	return DeleteCategoryResult{
		ID:         req.ID,
		DeletedAt:  time.Now(),
		SoftDelete: softDelete,
	}, nil
}
