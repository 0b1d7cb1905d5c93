package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mwidyarto/go-commerce-api/app/domain"
)

func validProductRequest() CreateProductRequest {
	return CreateProductRequest{
		CategoryID:  "cat-1",
		Name:        "Organic Cotton Onesie",
		Description: "Soft onesie for newborns",
		SKU:         "ONESIE-001",
		Price:       decimal.NewFromInt(25),
	}
}

func TestCreateProductDefaults(t *testing.T) {
	repo := newFakeProductRepository()
	uc := NewCreateProductUseCase(repo, testLogger())

	created, err := uc.Execute(context.Background(), validProductRequest())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if created.StockQuantity != 0 {
		t.Errorf("stock = %d, want 0", created.StockQuantity)
	}
	if !created.IsActive {
		t.Error("IsActive should default to true")
	}
	if created.SalePrice != nil {
		t.Error("salePrice should be absent by default")
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Error("id and timestamps must be assigned")
	}
}

func TestCreateProductNormalizesSKU(t *testing.T) {
	repo := newFakeProductRepository()
	uc := NewCreateProductUseCase(repo, testLogger())

	req := validProductRequest()
	req.SKU = "  onesie-001  "
	created, err := uc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if created.SKU != "ONESIE-001" {
		t.Errorf("sku = %q, want uppercased and trimmed", created.SKU)
	}
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	repo := newFakeProductRepository()
	uc := NewCreateProductUseCase(repo, testLogger())

	if _, err := uc.Execute(context.Background(), validProductRequest()); err != nil {
		t.Fatalf("first create: %v", err)
	}

	req := validProductRequest()
	req.Name = "Different Name"
	_, err := uc.Execute(context.Background(), req)
	var dup *domain.DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want DuplicateError", err)
	}
	if dup.Field != "sku" {
		t.Errorf("field = %q, want sku", dup.Field)
	}
}

func TestCreateProductPriceRules(t *testing.T) {
	uc := NewCreateProductUseCase(newFakeProductRepository(), testLogger())

	zeroPrice := validProductRequest()
	zeroPrice.Price = decimal.Zero
	if _, err := uc.Execute(context.Background(), zeroPrice); err == nil {
		t.Error("zero price must be rejected")
	}

	salePrice := decimal.NewFromInt(30)
	saleTooHigh := validProductRequest()
	saleTooHigh.SalePrice = &salePrice
	_, err := uc.Execute(context.Background(), saleTooHigh)
	var validation *domain.ValidationError
	if !errors.As(err, &validation) {
		t.Errorf("sale price above price: err = %v, want ValidationError", err)
	}

	saleEqual := validProductRequest()
	equal := decimal.NewFromInt(25)
	saleEqual.SalePrice = &equal
	if _, err := uc.Execute(context.Background(), saleEqual); err == nil {
		t.Error("sale price equal to price must be rejected")
	}

	saleOK := validProductRequest()
	lower := decimal.NewFromFloat(19.99)
	saleOK.SalePrice = &lower
	created, err := uc.Execute(context.Background(), saleOK)
	if err != nil {
		t.Fatalf("valid sale price: %v", err)
	}
	if created.SalePrice == nil || !created.SalePrice.Equal(lower) {
		t.Errorf("salePrice = %v, want %v", created.SalePrice, lower)
	}
}

func TestCreateProductSKUFormat(t *testing.T) {
	uc := NewCreateProductUseCase(newFakeProductRepository(), testLogger())

	req := validProductRequest()
	req.SKU = "bad sku!"
	_, err := uc.Execute(context.Background(), req)
	var format *domain.InvalidFormatError
	if !errors.As(err, &format) {
		t.Fatalf("err = %v, want InvalidFormatError", err)
	}
}

func TestCreateProductRequiredFields(t *testing.T) {
	uc := NewCreateProductUseCase(newFakeProductRepository(), testLogger())

	req := validProductRequest()
	req.CategoryID = ""
	_, err := uc.Execute(context.Background(), req)
	var required *domain.RequiredFieldError
	if !errors.As(err, &required) {
		t.Fatalf("err = %v, want RequiredFieldError", err)
	}
	if required.Field != "categoryId" {
		t.Errorf("field = %q, want categoryId", required.Field)
	}
}
