// Package errors provides the typed error surface for the Dhanam API.
// Errors fall into four kinds: validation (bad or out-of-range fields),
// not-found (absent or foreign-owned records), computation (metric
// policy violations) and infrastructure (store failures). Service code
// returns these sentinels, optionally wrapped around an internal cause
// that is logged but never leaked to clients.
package errors

import "net/http"

// AppError is a structured application error carrying a stable error
// code, a client-facing message, the HTTP status to respond with, and
// an optional internal cause.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal cause for errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap returns a copy of sentinel carrying internal as its cause.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage returns a copy of sentinel with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
)

// Validation errors. Messages name the offending field.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrTenureRequired = &AppError{Code: "TENURE_REQUIRED", Message: "tenure is required for FD and PPF investments", StatusCode: http.StatusBadRequest}
	ErrInvalidMonth   = &AppError{Code: "INVALID_MONTH", Message: "month must match YYYY-MM", StatusCode: http.StatusBadRequest}
	ErrTargetRequired = &AppError{Code: "TARGET_REQUIRED", Message: "targetAmount is required to create an emergency fund", StatusCode: http.StatusBadRequest}
)

// Not-found errors, one per record kind so the transport layer can map
// them distinctly. Foreign-owned records report not-found, never a
// permission error.
var (
	ErrUserNotFound          = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrExpenseNotFound       = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrInvestmentNotFound    = &AppError{Code: "INVESTMENT_NOT_FOUND", Message: "Investment not found", StatusCode: http.StatusNotFound}
	ErrInsuranceNotFound     = &AppError{Code: "INSURANCE_NOT_FOUND", Message: "Insurance policy not found", StatusCode: http.StatusNotFound}
	ErrBudgetEntryNotFound   = &AppError{Code: "BUDGET_ENTRY_NOT_FOUND", Message: "Budget entry not found", StatusCode: http.StatusNotFound}
	ErrEmergencyFundNotFound = &AppError{Code: "EMERGENCY_FUND_NOT_FOUND", Message: "Emergency fund not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail        = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Computation errors. The message carries the offending inputs.
var (
	ErrComputation = &AppError{Code: "COMPUTATION_ERROR", Message: "Metric computation failed", StatusCode: http.StatusUnprocessableEntity}
)

// Infrastructure errors.
var (
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)
