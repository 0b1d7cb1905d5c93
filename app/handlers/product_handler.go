package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"

	"github.com/mwidyarto/go-commerce-api/app/domain"
	"github.com/mwidyarto/go-commerce-api/app/repositories"
	"github.com/mwidyarto/go-commerce-api/app/usecases"
	"github.com/mwidyarto/go-commerce-api/app/utils/format"
	"github.com/mwidyarto/go-commerce-api/app/utils/response"
)

type ProductResponse struct {
	ID            string  `json:"id"`
	CategoryID    string  `json:"categoryId"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	SKU           string  `json:"sku"`
	Price         string  `json:"price"`
	PriceDisplay  string  `json:"priceDisplay"`
	SalePrice     *string `json:"salePrice,omitempty"`
	StockQuantity int     `json:"stockQuantity"`
	IsActive      bool    `json:"isActive"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

func toProductResponse(p domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		Description:   p.Description,
		SKU:           p.SKU,
		Price:         p.Price.StringFixed(2),
		PriceDisplay:  format.FormatPrice(p.Price),
		StockQuantity: p.StockQuantity,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}
	if p.SalePrice != nil {
		salePrice := p.SalePrice.StringFixed(2)
		resp.SalePrice = &salePrice
	}
	return resp
}

type ProductHandler struct {
	create   *usecases.CreateProductUseCase
	products repositories.ProductRepository
	render   *render.Render
	log      *logrus.Logger
}

func NewProductHandler(products repositories.ProductRepository, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		create:   usecases.NewCreateProductUseCase(products, log),
		products: products,
		render:   render.New(),
		log:      log,
	}
}

func (h *ProductHandler) writeError(w http.ResponseWriter, err error, m *response.Metadata) {
	status, code, message, details := mapError(err)
	if status >= http.StatusInternalServerError {
		h.log.WithError(err).Error("request failed")
	}
	h.render.JSON(w, status, response.Error(message, code, details, m))
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req usecases.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest,
			response.Error("Invalid request body", response.CodeValidationError, nil, meta(r, "create-product", start)))
		return
	}

	product, err := h.create.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, err, meta(r, "create-product", start))
		return
	}

	h.render.JSON(w, http.StatusCreated,
		response.Created(toProductResponse(product), product.ID, product.CreatedAt,
			"Product created successfully", meta(r, "create-product", start)))
}

func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	categoryID := mux.Vars(r)["id"]

	products, err := h.products.FindByCategory(r.Context(), categoryID)
	if err != nil {
		h.writeError(w, &domain.DatabaseError{Op: "list products by category", Err: err}, meta(r, "get-category-products", start))
		return
	}

	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	h.render.JSON(w, http.StatusOK,
		response.Success(items, "Products retrieved successfully", response.CodeSuccess,
			meta(r, "get-category-products", start)))
}
