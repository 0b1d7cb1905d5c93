package handlers

import (
	"errors"
	"net/http"

	"github.com/mwidyarto/go-commerce-api/app/domain"
	"github.com/mwidyarto/go-commerce-api/app/utils/response"
)

// mapError translates a use-case error into an HTTP status, envelope code,
// client-facing message and optional details. Anything outside the domain
// taxonomy is flattened to a generic message so internals never leak.
func mapError(err error) (int, string, string, interface{}) {
	var dup *domain.DuplicateError
	var notFound *domain.NotFoundError
	var required *domain.RequiredFieldError
	var badFormat *domain.InvalidFormatError
	var badRange *domain.InvalidRangeError
	var validation *domain.ValidationError
	var dbErr *domain.DatabaseError

	switch {
	case errors.As(err, &dup):
		return http.StatusConflict, response.CodeDuplicateEntry, dup.Error(),
			map[string]string{"field": dup.Field, "value": dup.Value}
	case errors.As(err, &notFound):
		return http.StatusNotFound, response.CodeResourceNotFound, notFound.Error(), nil
	case errors.As(err, &required):
		return http.StatusBadRequest, response.CodeMissingRequiredField, required.Error(),
			map[string]string{"field": required.Field}
	case errors.As(err, &badFormat):
		return http.StatusBadRequest, response.CodeValidationError, badFormat.Error(),
			map[string]string{"field": badFormat.Field}
	case errors.As(err, &badRange):
		return http.StatusBadRequest, response.CodeValidationError, badRange.Error(),
			map[string]string{"field": badRange.Field}
	case errors.As(err, &validation):
		return http.StatusBadRequest, response.CodeValidationError, validation.Error(), nil
	case errors.As(err, &dbErr):
		return http.StatusInternalServerError, response.CodeDatabaseError, "Database operation failed", nil
	default:
		return http.StatusInternalServerError, response.CodeInternalError, "Internal server error", nil
	}
}
