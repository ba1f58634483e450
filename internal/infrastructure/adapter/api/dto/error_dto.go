package dto

import (
	domainerr "github.com/fintomate/receipt-matcher/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse maps a domain error to its API code with the given
// client-facing message
func NewErrorResponse(err error, message string) ErrorResponse {
	return ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	}
}
