package repositories

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mwidyarto/go-commerce-api/app/domain"
	"github.com/mwidyarto/go-commerce-api/app/models"
)

type ProductRepository interface {
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	FindBySKU(ctx context.Context, sku string) (*domain.Product, error)
	FindByCategory(ctx context.Context, categoryID string) ([]domain.Product, error)
}

type productRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewProductRepository(db *gorm.DB, log *logrus.Logger) ProductRepository {
	return &productRepository{db: db, log: log}
}

func (r *productRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	row := models.FromProductEntity(product)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.log.WithError(err).WithField("sku", product.SKU).Error("failed to create product")
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return domain.Product{}, &domain.DuplicateError{Entity: "Product", Field: "sku", Value: product.SKU}
		}
		return domain.Product{}, err
	}
	return row.ToEntity(), nil
}

func (r *productRepository) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	var row models.Product
	err := r.db.WithContext(ctx).First(&row, "sku = ?", sku).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	entity := row.ToEntity()
	return &entity, nil
}

func (r *productRepository) FindByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("created_at desc").Find(&rows).Error
	if err != nil {
		r.log.WithError(err).WithField("categoryId", categoryID).Error("failed to list products by category")
		return nil, err
	}
	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.ToEntity())
	}
	return products, nil
}
