package usecases

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/mwidyarto/go-commerce-api/app/domain"
	"github.com/mwidyarto/go-commerce-api/app/helpers"
	"github.com/mwidyarto/go-commerce-api/app/repositories"
)

type CreateProductRequest struct {
	CategoryID    string           `json:"categoryId" validate:"required"`
	Name          string           `json:"name" validate:"required,min=1,max=255"`
	Description   string           `json:"description" validate:"required,max=2000"`
	SKU           string           `json:"sku" validate:"required,min=1,max=50,skuformat"`
	Price         decimal.Decimal  `json:"price"`
	SalePrice     *decimal.Decimal `json:"salePrice,omitempty"`
	StockQuantity *int             `json:"stockQuantity,omitempty" validate:"omitempty,min=0"`
	IsActive      *bool            `json:"isActive,omitempty"`
}

type CreateProductUseCase struct {
	products repositories.ProductRepository
	validate *validator.Validate
	log      *logrus.Entry
}

func NewCreateProductUseCase(products repositories.ProductRepository, log *logrus.Logger) *CreateProductUseCase {
	return &CreateProductUseCase{
		products: products,
		validate: helpers.NewValidator(),
		log:      log.WithField("usecase", "CreateProduct"),
	}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, req CreateProductRequest) (domain.Product, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	req.SKU = strings.ToUpper(strings.TrimSpace(req.SKU))

	if err := uc.validate.Struct(req); err != nil {
		return domain.Product{}, helpers.MapValidationError(err)
	}
	if !req.Price.IsPositive() {
		return domain.Product{}, &domain.InvalidRangeError{Field: "price", Detail: "must be greater than 0"}
	}
	if req.SalePrice != nil {
		if !req.SalePrice.IsPositive() {
			return domain.Product{}, &domain.InvalidRangeError{Field: "salePrice", Detail: "must be greater than 0"}
		}
		if req.SalePrice.GreaterThanOrEqual(req.Price) {
			return domain.Product{}, &domain.ValidationError{Message: "sale price must be less than regular price"}
		}
	}

	existing, err := uc.products.FindBySKU(ctx, req.SKU)
	if err != nil {
		return domain.Product{}, wrapRepoErr("create product", err)
	}
	if existing != nil {
		uc.log.WithFields(logrus.Fields{"sku": req.SKU, "existingId": existing.ID}).
			Warn("product sku already exists")
		return domain.Product{}, &domain.DuplicateError{Entity: "Product", Field: "sku", Value: req.SKU}
	}

	stock := 0
	if req.StockQuantity != nil {
		stock = *req.StockQuantity
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	entity := domain.NewProduct(req.CategoryID, req.Name, req.Description, req.SKU, req.Price, req.SalePrice, stock, isActive)

	created, err := uc.products.Create(ctx, entity)
	if err != nil {
		return domain.Product{}, wrapRepoErr("create product", err)
	}

	uc.log.WithFields(logrus.Fields{"id": created.ID, "sku": created.SKU}).Info("product created")
	return created, nil
}
