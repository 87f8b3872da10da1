// Package errors provides the typed error taxonomy for the ControlFin API.
// Service- and engine-layer failures are AppError values so that handlers can
// map them to consistent JSON responses without leaking internals.
package errors

import "net/http"

// AppError is a structured application error carrying a stable error code,
// a human-readable message, the HTTP status to respond with, and an optional
// wrapped internal error that is logged but never sent to clients.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap returns a copy of sentinel carrying internal as its wrapped error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage returns a copy of sentinel with a more specific message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrParentNotFound      = &AppError{Code: "PARENT_NOT_FOUND", Message: "Parent transaction not found", StatusCode: http.StatusNotFound}
	ErrDuplicateID         = &AppError{Code: "DUPLICATE_ID", Message: "A transaction with this ID already exists", StatusCode: http.StatusConflict}
	ErrNegativeAmount      = &AppError{Code: "NEGATIVE_AMOUNT", Message: "Transaction amount must not be negative", StatusCode: http.StatusBadRequest}
)

// Hierarchy invariant errors. The ledger keeps nesting to a single level:
// a sub-item can never carry sub-items of its own, and a record can never be
// both a parent and a child.
var (
	ErrNestedSubItems = &AppError{Code: "NESTED_SUB_ITEMS", Message: "A sub-item cannot have sub-items of its own", StatusCode: http.StatusBadRequest}
	ErrParentIsChild  = &AppError{Code: "PARENT_IS_CHILD", Message: "Cannot attach a sub-item to another sub-item", StatusCode: http.StatusBadRequest}
	ErrReparenting    = &AppError{Code: "REPARENTING_NOT_ALLOWED", Message: "A transaction cannot be moved between parents or levels", StatusCode: http.StatusBadRequest}
)

// Category errors.
var (
	ErrCategoryNotFound  = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrCategoryInUse     = &AppError{Code: "CATEGORY_IN_USE", Message: "Category is referenced by existing transactions", StatusCode: http.StatusConflict}
	ErrDuplicateCategory = &AppError{Code: "DUPLICATE_CATEGORY", Message: "A category with this name already exists", StatusCode: http.StatusConflict}
)
