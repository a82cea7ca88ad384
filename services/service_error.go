package services

import (
	"errors"
	"net/http"

	"github.com/nishaddev/Mobile-inventory/repository"
)

// Stable machine-readable error codes returned alongside HTTP statuses.
const (
	CodeNotFound          = "not_found"
	CodeConflict          = "conflict"
	CodeValidation        = "validation"
	CodeInsufficientStock = "insufficient_stock"
	CodeInternal          = "internal"
)

// ServiceError is a typed error with an HTTP status code and a stable
// machine code.
type ServiceError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

func newValidationError(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Code: CodeValidation, Message: msg}
}

func newNotFoundError(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Code: CodeNotFound, Message: msg}
}

func newConflictError(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusConflict, Code: CodeConflict, Message: msg}
}

func newInternalError() *ServiceError {
	return &ServiceError{StatusCode: http.StatusInternalServerError, Code: CodeInternal, Message: "Internal server error"}
}

// mapRepositoryError translates repository sentinels into service
// errors. notFoundMsg names the missing record for the caller.
func mapRepositoryError(err error, notFoundMsg string) *ServiceError {
	var insufficient *repository.InsufficientStockError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return newNotFoundError(notFoundMsg)
	case errors.Is(err, repository.ErrCategoryNotFound):
		return newNotFoundError("Category not found")
	case errors.Is(err, repository.ErrDuplicateEntry):
		return newConflictError(err.Error())
	case errors.Is(err, repository.ErrInUse):
		return newConflictError(err.Error())
	case errors.Is(err, repository.ErrHasReservations):
		return newConflictError(err.Error())
	case errors.Is(err, repository.ErrInvalidAdjustment):
		return newValidationError(err.Error())
	case errors.As(err, &insufficient):
		return &ServiceError{
			StatusCode: http.StatusConflict,
			Code:       CodeInsufficientStock,
			Message:    insufficient.Error(),
		}
	default:
		return newInternalError()
	}
}
