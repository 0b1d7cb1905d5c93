package usecases

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/mwidyarto/go-commerce-api/app/domain"
)

func TestUpdateCategoryNotFound(t *testing.T) {
	uc := NewUpdateCategoryUseCase(newFakeCategoryRepository(), testLogger())

	_, err := uc.Execute(context.Background(), UpdateCategoryRequest{ID: "ghost", Name: strPtr("Toys")})
	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestUpdateCategoryNoOp(t *testing.T) {
	repo := newFakeCategoryRepository()
	existing := repo.add(domain.NewCategory("Baby Clothing", "", "baby-clothing", "", true, 0))
	uc := NewUpdateCategoryUseCase(repo, testLogger())

	result, err := uc.Execute(context.Background(), UpdateCategoryRequest{
		ID:   existing.ID,
		Name: strPtr("Baby Clothing"),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(result.Changes) != 0 {
		t.Errorf("changes = %v, want empty", result.Changes)
	}
	if repo.updateCalls != 0 {
		t.Errorf("updateCalls = %d, no-op must not write", repo.updateCalls)
	}
	if result.Category != existing {
		t.Error("no-op must return the existing entity unchanged")
	}
}

func TestUpdateCategoryDiffOnlyChangedFields(t *testing.T) {
	repo := newFakeCategoryRepository()
	existing := repo.add(domain.NewCategory("Baby Clothing", "", "baby-clothing", "", true, 0))
	uc := NewUpdateCategoryUseCase(repo, testLogger())

	result, err := uc.Execute(context.Background(), UpdateCategoryRequest{
		ID:        existing.ID,
		Name:      strPtr("Baby Clothing"), // same value
		SortOrder: intPtr(7),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !reflect.DeepEqual(result.Changes, []string{"sortOrder"}) {
		t.Errorf("changes = %v, want [sortOrder]", result.Changes)
	}
	if result.Category.SortOrder != 7 {
		t.Errorf("SortOrder = %d", result.Category.SortOrder)
	}
	if repo.updateCalls != 1 {
		t.Errorf("updateCalls = %d, want 1", repo.updateCalls)
	}
}

func TestUpdateCategoryChangesInEvaluationOrder(t *testing.T) {
	repo := newFakeCategoryRepository()
	existing := repo.add(domain.NewCategory("Baby Clothing", "", "baby-clothing", "", true, 0))
	uc := NewUpdateCategoryUseCase(repo, testLogger())

	result, err := uc.Execute(context.Background(), UpdateCategoryRequest{
		ID:          existing.ID,
		SortOrder:   intPtr(3),
		Name:        strPtr("Newborn Clothing"),
		IsActive:    boolPtr(false),
		Description: strPtr("All newborn wear"),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := []string{"name", "description", "isActive", "sortOrder"}
	if !reflect.DeepEqual(result.Changes, want) {
		t.Errorf("changes = %v, want %v", result.Changes, want)
	}
}

func TestUpdateCategoryNameCollision(t *testing.T) {
	repo := newFakeCategoryRepository()
	a := repo.add(domain.NewCategory("Category A", "", "category-a", "", true, 0))
	repo.add(domain.NewCategory("Category B", "", "category-b", "", true, 1))
	uc := NewUpdateCategoryUseCase(repo, testLogger())

	_, err := uc.Execute(context.Background(), UpdateCategoryRequest{ID: a.ID, Name: strPtr("Category B")})
	var dup *domain.DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want DuplicateError", err)
	}
	if dup.Field != "name" {
		t.Errorf("field = %q", dup.Field)
	}
}

func TestUpdateCategorySlugCollisionExcludesSelf(t *testing.T) {
	repo := newFakeCategoryRepository()
	a := repo.add(domain.NewCategory("Category A", "", "category-a", "", true, 0))
	repo.add(domain.NewCategory("Category B", "", "category-b", "", true, 1))
	uc := NewUpdateCategoryUseCase(repo, testLogger())

	// Same slug as itself: no error, nothing changes.
	result, err := uc.Execute(context.Background(), UpdateCategoryRequest{ID: a.ID, Slug: strPtr("category-a")})
	if err != nil {
		t.Fatalf("self update: %v", err)
	}
	if len(result.Changes) != 0 {
		t.Errorf("changes = %v", result.Changes)
	}

	// Slug held by another category: collision.
	_, err = uc.Execute(context.Background(), UpdateCategoryRequest{ID: a.ID, Slug: strPtr("category-b")})
	var dup *domain.DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want DuplicateError", err)
	}
	if dup.Field != "slug" {
		t.Errorf("field = %q", dup.Field)
	}
}

func TestUpdateCategoryValidation(t *testing.T) {
	repo := newFakeCategoryRepository()
	existing := repo.add(domain.NewCategory("Baby Clothing", "", "baby-clothing", "", true, 0))
	uc := NewUpdateCategoryUseCase(repo, testLogger())

	cases := []struct {
		name string
		req  UpdateCategoryRequest
	}{
		{"short name", UpdateCategoryRequest{ID: existing.ID, Name: strPtr("a")}},
		{"bad slug pattern", UpdateCategoryRequest{ID: existing.ID, Slug: strPtr("Bad Slug")}},
		{"non-http image url", UpdateCategoryRequest{ID: existing.ID, ImageURL: strPtr("ftp://cdn.example.com/x.png")}},
		{"sortOrder too large", UpdateCategoryRequest{ID: existing.ID, SortOrder: intPtr(1000)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Execute(context.Background(), tc.req); err == nil {
				t.Fatal("expected validation error")
			}
			if repo.updateCalls != 0 {
				t.Error("invalid update must not write")
			}
		})
	}
}

func TestUpdateCategoryRefreshesUpdatedAt(t *testing.T) {
	repo := newFakeCategoryRepository()
	existing := repo.add(domain.NewCategory("Baby Clothing", "", "baby-clothing", "", true, 0))
	uc := NewUpdateCategoryUseCase(repo, testLogger())

	result, err := uc.Execute(context.Background(), UpdateCategoryRequest{
		ID:          existing.ID,
		Description: strPtr("Updated description"),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Category.UpdatedAt.Before(existing.UpdatedAt) {
		t.Error("UpdatedAt not refreshed")
	}
	if !result.Category.CreatedAt.Equal(existing.CreatedAt) {
		t.Error("CreatedAt must never change")
	}
}
