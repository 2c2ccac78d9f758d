package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden          = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest         = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrConflict           = &AppError{Code: http.StatusConflict, Message: "Resource already exists"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid email or password"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// StockError reports a line whose requested quantity exceeds the product's
// available stock. The check is advisory at assembly time; the caller decides
// whether to block or override.
type StockError struct {
	ProductName string  `json:"product_name"`
	Requested   float64 `json:"requested"`
	Available   float64 `json:"available"`
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %v, available %v",
		e.ProductName, e.Requested, e.Available)
}

// NewStockError creates an insufficient stock error
func NewStockError(productName string, requested, available float64) *StockError {
	return &StockError{
		ProductName: productName,
		Requested:   requested,
		Available:   available,
	}
}

// AllocationError reports a payment allocation that stopped mid-loop on a
// failed invoice write. Invoices in Applied were persisted and are NOT rolled
// back; the caller retries the remainder or escalates for reconciliation.
type AllocationError struct {
	Applied []string `json:"applied"` // invoice numbers persisted before the failure
	Failed  string   `json:"failed"`  // invoice number whose write failed
	Cause   error    `json:"-"`
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("payment allocation failed at invoice %s after %d updates: %v",
		e.Failed, len(e.Applied), e.Cause)
}

func (e *AllocationError) Unwrap() error {
	return e.Cause
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	var stockErr *StockError
	if errors.As(err, &stockErr) {
		return &AppError{Code: http.StatusUnprocessableEntity, Message: stockErr.Error()}
	}
	var allocErr *AllocationError
	if errors.As(err, &allocErr) {
		return &AppError{Code: http.StatusConflict, Message: allocErr.Error()}
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
