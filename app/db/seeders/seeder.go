package seeders

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mwidyarto/go-commerce-api/app/domain"
	"github.com/mwidyarto/go-commerce-api/app/helpers"
	"github.com/mwidyarto/go-commerce-api/app/models"
)

// Seed inserts a starter catalog. Existing rows (matched by slug or sku) are
// left alone so the seeder can be re-run.
func Seed(ctx context.Context, db *gorm.DB, log *logrus.Logger) error {
	categoryNames := []string{
		"Baby Clothing",
		"Feeding & Nursing",
		"Toys & Games",
		"Strollers & Carriers",
	}

	categoryIDs := map[string]string{}
	for i, name := range categoryNames {
		slug := helpers.GenerateSlug(name)

		var existing models.Category
		err := db.WithContext(ctx).First(&existing, "slug = ?", slug).Error
		if err == nil {
			categoryIDs[name] = existing.ID
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		row := models.FromCategoryEntity(domain.NewCategory(name, "", slug, "", true, i))
		if err := db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
		categoryIDs[name] = row.ID
		log.WithFields(logrus.Fields{"name": name, "slug": slug}).Info("seeded category")
	}

	products := []struct {
		Category string
		Name     string
		SKU      string
		Price    string
	}{
		{"Baby Clothing", "Organic Cotton Onesie", "CLO-ONESIE-001", "14.99"},
		{"Feeding & Nursing", "Silicone Feeding Set", "FEED-SET-001", "24.50"},
		{"Toys & Games", "Wooden Stacking Rings", "TOY-RINGS-001", "19.90"},
	}

	for _, p := range products {
		var existing models.Product
		err := db.WithContext(ctx).First(&existing, "sku = ?", p.SKU).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return err
		}
		row := models.FromProductEntity(
			domain.NewProduct(categoryIDs[p.Category], p.Name, "", p.SKU, price, nil, 25, true))
		if err := db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"sku": p.SKU, "name": p.Name}).Info("seeded product")
	}

	return nil
}
