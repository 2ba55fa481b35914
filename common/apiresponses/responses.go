package apiresponses

import "time"

// ApiResponse is the envelope every backend endpoint answers with.
type ApiResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// PagedResponse is one page of a listing.
type PagedResponse[T any] struct {
	Items         []T   `json:"items"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	HasNext       bool  `json:"hasNext"`
	HasPrevious   bool  `json:"hasPrevious"`
}

// NewPagedResponse slices out page of all. size must be positive.
func NewPagedResponse[T any](all []T, page, size int) PagedResponse[T] {
	total := len(all)
	totalPages := (total + size - 1) / size
	start := min(page*size, total)
	end := min(start+size, total)

	items := make([]T, end-start)
	copy(items, all[start:end])

	return PagedResponse[T]{
		Items:         items,
		Page:          page,
		Size:          size,
		TotalElements: int64(total),
		TotalPages:    totalPages,
		HasNext:       page+1 < totalPages,
		HasPrevious:   page > 0,
	}
}

// Helper to create a success response
func NewSuccessResponse(data any) ApiResponse {
	return ApiResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// NewErrorResponse is the body the error handler writes.
func NewErrorResponse(message string) ApiResponse {
	return ApiResponse{
		Success:   false,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// WithMessage adds a message to the response
func (r ApiResponse) WithMessage(message string) ApiResponse {
	r.Message = message
	return r
}
