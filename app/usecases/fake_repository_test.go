package usecases

import (
	"context"
	"sort"
	"strings"

	"github.com/mwidyarto/go-commerce-api/app/domain"
)

// fakeCategoryRepository is an in-memory CategoryRepository that records
// calls so tests can assert which persistence path ran.
type fakeCategoryRepository struct {
	byID map[string]domain.Category

	createCalls int
	updateCalls int
	deleteCalls int
	findCalls   int

	failWith error
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{byID: map[string]domain.Category{}}
}

func (f *fakeCategoryRepository) add(c domain.Category) domain.Category {
	f.byID[c.ID] = c
	return c
}

func (f *fakeCategoryRepository) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	if f.failWith != nil {
		return domain.Category{}, f.failWith
	}
	f.createCalls++
	f.byID[c.ID] = c
	return c, nil
}

func (f *fakeCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.findCalls++
	if c, ok := f.byID[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (f *fakeCategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.findCalls++
	for _, c := range f.byID {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.findCalls++
	for _, c := range f.byID {
		if c.Slug == slug {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepository) FindAll(ctx context.Context, filters domain.CategoryFilters) ([]domain.Category, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.findCalls++

	var matched []domain.Category
	for _, c := range f.byID {
		if filters.IsActive != nil && c.IsActive != *filters.IsActive {
			continue
		}
		if filters.Search != "" {
			needle := strings.ToLower(filters.Search)
			if !strings.Contains(strings.ToLower(c.Name), needle) &&
				!strings.Contains(strings.ToLower(c.Description), needle) {
				continue
			}
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].SortOrder < matched[j].SortOrder })

	if filters.Offset > 0 {
		if filters.Offset >= len(matched) {
			return nil, nil
		}
		matched = matched[filters.Offset:]
	}
	if filters.Limit > 0 && len(matched) > filters.Limit {
		matched = matched[:filters.Limit]
	}
	return matched, nil
}

func (f *fakeCategoryRepository) Update(ctx context.Context, id string, changes domain.CategoryChanges) (domain.Category, error) {
	if f.failWith != nil {
		return domain.Category{}, f.failWith
	}
	f.updateCalls++
	existing, ok := f.byID[id]
	if !ok {
		return domain.Category{}, &domain.NotFoundError{Entity: "Category", Key: id}
	}
	updated := existing.Apply(changes)
	f.byID[id] = updated
	return updated, nil
}

func (f *fakeCategoryRepository) Delete(ctx context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.deleteCalls++
	delete(f.byID, id)
	return nil
}

// fakeProductRepository mirrors fakeCategoryRepository for products.
type fakeProductRepository struct {
	byID     map[string]domain.Product
	failWith error
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{byID: map[string]domain.Product{}}
}

func (f *fakeProductRepository) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	if f.failWith != nil {
		return domain.Product{}, f.failWith
	}
	f.byID[p.ID] = p
	return p, nil
}

func (f *fakeProductRepository) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, p := range f.byID {
		if p.SKU == sku {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepository) FindByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []domain.Product
	for _, p := range f.byID {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}
