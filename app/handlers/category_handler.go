package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"

	"github.com/mwidyarto/go-commerce-api/app/domain"
	"github.com/mwidyarto/go-commerce-api/app/middlewares"
	"github.com/mwidyarto/go-commerce-api/app/repositories"
	"github.com/mwidyarto/go-commerce-api/app/usecases"
	"github.com/mwidyarto/go-commerce-api/app/utils/response"
)

// CategoryResponse is the boundary shape of a category. The internal
// ImageURL field is exposed as "image" here; optional fields are omitted
// when absent.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Slug        string `json:"slug"`
	Image       string `json:"image,omitempty"`
	IsActive    bool   `json:"isActive"`
	SortOrder   int    `json:"sortOrder"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func toCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Slug:        c.Slug,
		Image:       c.ImageURL,
		IsActive:    c.IsActive,
		SortOrder:   c.SortOrder,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}

func toCategoryResponses(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out
}

type CategoryHandler struct {
	create    *usecases.CreateCategoryUseCase
	update    *usecases.UpdateCategoryUseCase
	delete    *usecases.DeleteCategoryUseCase
	getByID   *usecases.GetCategoryByIDUseCase
	getBySlug *usecases.GetCategoryBySlugUseCase
	list      *usecases.ListCategoriesUseCase
	render    *render.Render
	log       *logrus.Logger
}

func NewCategoryHandler(categories repositories.CategoryRepository, log *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		create:    usecases.NewCreateCategoryUseCase(categories, log),
		update:    usecases.NewUpdateCategoryUseCase(categories, log),
		delete:    usecases.NewDeleteCategoryUseCase(categories, log),
		getByID:   usecases.NewGetCategoryByIDUseCase(categories, log),
		getBySlug: usecases.NewGetCategoryBySlugUseCase(categories, log),
		list:      usecases.NewListCategoriesUseCase(categories, log),
		render:    render.New(),
		log:       log,
	}
}

// meta builds the envelope metadata, measuring duration from the start of the
// handler around the use-case call.
func meta(r *http.Request, op string, start time.Time) *response.Metadata {
	return &response.Metadata{
		RequestID: middlewares.RequestID(r),
		TraceID:   fmt.Sprintf("%s-%d", op, start.UnixMilli()),
		Duration:  time.Since(start).Milliseconds(),
	}
}

func (h *CategoryHandler) writeError(w http.ResponseWriter, err error, m *response.Metadata) {
	status, code, message, details := mapError(err)
	if status >= http.StatusInternalServerError {
		h.log.WithError(err).Error("request failed")
	}
	h.render.JSON(w, status, response.Error(message, code, details, m))
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req usecases.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest,
			response.Error("Invalid request body", response.CodeValidationError, nil, meta(r, "create-category", start)))
		return
	}

	category, err := h.create.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, err, meta(r, "create-category", start))
		return
	}

	h.render.JSON(w, http.StatusCreated,
		response.Created(toCategoryResponse(category), category.ID, category.CreatedAt,
			"Category created successfully", meta(r, "create-category", start)))
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := usecases.ListCategoriesRequest{}

	query := r.URL.Query()
	if raw := query.Get("isActive"); raw != "" {
		if isActive, err := strconv.ParseBool(raw); err == nil {
			req.Filters.IsActive = &isActive
		}
	}
	req.Filters.Search = query.Get("search")
	if raw := query.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			req.Pagination.Limit = limit
		}
	}
	if raw := query.Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil {
			req.Pagination.Offset = offset
		}
	}

	result, err := h.list.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, err, meta(r, "get-categories", start))
		return
	}

	pagination := response.NewPaginationInfo(result.Total, result.Limit, result.Offset, result.HasMore)
	h.render.JSON(w, http.StatusOK,
		response.Paginated(toCategoryResponses(result.Categories), pagination,
			"Categories retrieved successfully", meta(r, "get-categories", start)))
}

func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	category, err := h.getByID.Execute(r.Context(), usecases.GetCategoryByIDRequest{ID: mux.Vars(r)["id"]})
	if err != nil {
		h.writeError(w, err, meta(r, "get-category-by-id", start))
		return
	}
	h.render.JSON(w, http.StatusOK,
		response.Success(toCategoryResponse(category), "Category retrieved successfully",
			response.CodeSuccess, meta(r, "get-category-by-id", start)))
}

func (h *CategoryHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	category, err := h.getBySlug.Execute(r.Context(), usecases.GetCategoryBySlugRequest{Slug: mux.Vars(r)["slug"]})
	if err != nil {
		h.writeError(w, err, meta(r, "get-category-by-slug", start))
		return
	}
	h.render.JSON(w, http.StatusOK,
		response.Success(toCategoryResponse(category), "Category retrieved successfully",
			response.CodeSuccess, meta(r, "get-category-by-slug", start)))
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var req usecases.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest,
			response.Error("Invalid request body", response.CodeValidationError, nil, meta(r, "update-category", start)))
		return
	}
	req.ID = mux.Vars(r)["id"]

	result, err := h.update.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, err, meta(r, "update-category", start))
		return
	}

	message := "Category updated successfully"
	if len(result.Changes) == 0 {
		message = "No changes detected for category"
	}
	h.render.JSON(w, http.StatusOK,
		response.Updated(toCategoryResponse(result.Category), result.Category.ID,
			result.Category.UpdatedAt, result.Changes, message, meta(r, "update-category", start)))
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := usecases.DeleteCategoryRequest{
		ID:          mux.Vars(r)["id"],
		ForceDelete: r.URL.Query().Get("force") == "true",
	}

	result, err := h.delete.Execute(r.Context(), req)
	if err != nil {
		h.writeError(w, err, meta(r, "delete-category", start))
		return
	}

	h.render.JSON(w, http.StatusOK,
		response.Deleted(result.ID, result.DeletedAt, result.SoftDelete,
			"Category deleted successfully", meta(r, "delete-category", start)))
}
