package migrations

import (
	"gorm.io/gorm"

	"github.com/mwidyarto/go-commerce-api/app/models"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.Product{})
}
