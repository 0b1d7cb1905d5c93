package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mwidyarto/go-commerce-api/app/domain"
	"github.com/mwidyarto/go-commerce-api/app/models"
)

// CategoryRepository is the persistence contract the category use cases
// depend on. Lookup methods return nil, nil when nothing matches.
type CategoryRepository interface {
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
	FindAll(ctx context.Context, filters domain.CategoryFilters) ([]domain.Category, error)
	Update(ctx context.Context, id string, changes domain.CategoryChanges) (domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewCategoryRepository(db *gorm.DB, log *logrus.Logger) CategoryRepository {
	return &categoryRepository{db: db, log: log}
}

const mysqlDuplicateEntry = 1062

// translateCategoryDuplicate maps a unique-index violation onto the domain
// DuplicateError. Two concurrent creates can both pass the use-case pre-check;
// the index is what actually rejects the second write.
func translateCategoryDuplicate(err error, category models.Category) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		field, value := "name", category.Name
		if strings.Contains(mysqlErr.Message, "slug") {
			field, value = "slug", category.Slug
		}
		return &domain.DuplicateError{Entity: "Category", Field: field, Value: value}
	}
	return err
}

func (r *categoryRepository) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	row := models.FromCategoryEntity(category)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.log.WithError(err).WithField("name", category.Name).Error("failed to create category")
		return domain.Category{}, translateCategoryDuplicate(err, row)
	}
	return row.ToEntity(), nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *categoryRepository) findOne(ctx context.Context, query string, arg string) (*domain.Category, error) {
	var row models.Category
	err := r.db.WithContext(ctx).First(&row, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	entity := row.ToEntity()
	return &entity, nil
}

func (r *categoryRepository) FindAll(ctx context.Context, filters domain.CategoryFilters) ([]domain.Category, error) {
	q := r.db.WithContext(ctx).Model(&models.Category{})
	if filters.IsActive != nil {
		q = q.Where("is_active = ?", *filters.IsActive)
	}
	if filters.Search != "" {
		like := "%" + strings.ToLower(filters.Search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if filters.Limit > 0 {
		q = q.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		q = q.Offset(filters.Offset)
	}

	var rows []models.Category
	if err := q.Order("sort_order asc").Find(&rows).Error; err != nil {
		r.log.WithError(err).Error("failed to list categories")
		return nil, err
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.ToEntity())
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, id string, changes domain.CategoryChanges) (domain.Category, error) {
	values := map[string]interface{}{}
	if changes.Name != nil {
		values["name"] = *changes.Name
	}
	if changes.Description != nil {
		values["description"] = *changes.Description
	}
	if changes.Slug != nil {
		values["slug"] = *changes.Slug
	}
	if changes.ImageURL != nil {
		values["image_url"] = *changes.ImageURL
	}
	if changes.IsActive != nil {
		values["is_active"] = *changes.IsActive
	}
	if changes.SortOrder != nil {
		values["sort_order"] = *changes.SortOrder
	}

	if len(values) > 0 {
		err := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Updates(values).Error
		if err != nil {
			r.log.WithError(err).WithField("id", id).Error("failed to update category")
			return domain.Category{}, translateCategoryDuplicate(err, models.Category{
				Name: stringOrEmpty(changes.Name),
				Slug: stringOrEmpty(changes.Slug),
			})
		}
	}

	var row models.Category
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Category{}, &domain.NotFoundError{Entity: "Category", Key: id}
		}
		return domain.Category{}, err
	}
	return row.ToEntity(), nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id).Error; err != nil {
		r.log.WithError(err).WithField("id", id).Error("failed to delete category")
		return err
	}
	return nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
