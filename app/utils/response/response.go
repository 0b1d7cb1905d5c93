// Package response builds the JSON envelope every API endpoint returns:
// {success, data, message, code, timestamp} plus optional details and
// request metadata.
package response

import (
	"math"
	"time"
)

// Envelope codes. Success codes describe what happened, error codes map
// onto the domain error taxonomy.
const (
	CodeSuccess          = "SUCCESS"
	CodeCreated          = "CREATED"
	CodeUpdated          = "UPDATED"
	CodePaginatedSuccess = "PAGINATED_SUCCESS"

	CodeValidationError      = "VALIDATION_ERROR"
	CodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	CodeDuplicateEntry       = "DUPLICATE_ENTRY"
	CodeResourceNotFound     = "RESOURCE_NOT_FOUND"
	CodeDatabaseError        = "DATABASE_ERROR"
	CodeInternalError        = "INTERNAL_ERROR"
)

// Metadata carries per-request tracing info. Timestamp is always filled by
// the envelope builders, the rest is supplied by the handler.
type Metadata struct {
	RequestID string `json:"requestId,omitempty"`
	TraceID   string `json:"traceId,omitempty"`
	Duration  int64  `json:"duration"`
	Timestamp string `json:"timestamp"`
}

type BaseResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data"`
	Message   string      `json:"message"`
	Code      string      `json:"code"`
	Timestamp string      `json:"timestamp"`
	Details   interface{} `json:"details,omitempty"`
	Metadata  *Metadata   `json:"metadata,omitempty"`
}

type PaginationInfo struct {
	Total       int  `json:"total"`
	Limit       int  `json:"limit"`
	Offset      int  `json:"offset"`
	HasMore     bool `json:"hasMore"`
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
}

// PaginatedData wraps one page of items together with its pagination info.
type PaginatedData struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

// fillMetadata copies the caller's metadata and stamps the timestamp, so the
// caller's value is never mutated. A nil argument yields metadata with only
// the timestamp set.
func fillMetadata(meta *Metadata) *Metadata {
	filled := Metadata{}
	if meta != nil {
		filled = *meta
	}
	if filled.Timestamp == "" {
		filled.Timestamp = time.Now().Format(time.RFC3339)
	}
	return &filled
}

func Success(data interface{}, message, code string, meta *Metadata) BaseResponse {
	if code == "" {
		code = CodeSuccess
	}
	return BaseResponse{
		Success:   true,
		Data:      data,
		Message:   message,
		Code:      code,
		Timestamp: time.Now().Format(time.RFC3339),
		Metadata:  fillMetadata(meta),
	}
}

func Error(message, code string, details interface{}, meta *Metadata) BaseResponse {
	if code == "" {
		code = CodeInternalError
	}
	return BaseResponse{
		Success:   false,
		Data:      nil,
		Message:   message,
		Code:      code,
		Timestamp: time.Now().Format(time.RFC3339),
		Details:   details,
		Metadata:  fillMetadata(meta),
	}
}

func Paginated(items interface{}, pagination PaginationInfo, message string, meta *Metadata) BaseResponse {
	return Success(PaginatedData{Items: items, Pagination: pagination}, message, CodePaginatedSuccess, meta)
}

// NewPaginationInfo derives page numbers from the offset-based inputs.
func NewPaginationInfo(total, limit, offset int, hasMore bool) PaginationInfo {
	info := PaginationInfo{
		Total:       total,
		Limit:       limit,
		Offset:      offset,
		HasMore:     hasMore,
		CurrentPage: 1,
	}
	if limit > 0 {
		info.CurrentPage = offset/limit + 1
		info.TotalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return info
}

// Created reports a successful creation. The full entity rides along under
// the "entity" key so clients do not need a follow-up fetch.
func Created(entity interface{}, id string, createdAt time.Time, message string, meta *Metadata) BaseResponse {
	data := map[string]interface{}{
		"id":        id,
		"entity":    entity,
		"createdAt": createdAt.Format(time.RFC3339),
	}
	return Success(data, message, CodeCreated, meta)
}

// Updated reports a successful update including which fields changed. A nil
// changes slice is coerced to an empty one so the JSON is always an array.
func Updated(entity interface{}, id string, updatedAt time.Time, changes []string, message string, meta *Metadata) BaseResponse {
	if changes == nil {
		changes = []string{}
	}
	data := map[string]interface{}{
		"id":        id,
		"entity":    entity,
		"updatedAt": updatedAt.Format(time.RFC3339),
		"changes":   changes,
	}
	return Success(data, message, CodeUpdated, meta)
}

// Deleted reports a deletion and whether it was a soft one.
func Deleted(id string, deletedAt time.Time, softDelete bool, message string, meta *Metadata) BaseResponse {
	data := map[string]interface{}{
		"id":         id,
		"deletedAt":  deletedAt.Format(time.RFC3339),
		"softDelete": softDelete,
	}
	return Success(data, message, CodeSuccess, meta)
}
