package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// Predefined errors for the frequent static cases.

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// --- Profiles ---

var ErrProfileRequired = New(
	CodeInvalidOperation,
	"profile",
	"Create a profile first",
	http.StatusBadRequest,
)

var ErrProfileAlreadyExists = New(
	CodeAlreadyExists,
	"profile",
	"A profile already exists for this account",
	http.StatusConflict,
)

var ErrConsentRequired = New(
	CodeValidationFailed,
	"profile",
	"POPIA consent is required to register a profile",
	http.StatusBadRequest,
)

// --- Vouchers ---

var ErrVoucherInvalid = New(
	CodeValidationFailed,
	"voucher",
	"Invalid or expired voucher code",
	http.StatusBadRequest,
)

// --- Tenders & bids ---

var ErrTenderNotOpen = New(
	CodeInvalidStatus,
	"tender",
	"Tender is not open",
	http.StatusBadRequest,
)

var ErrTenderStatusFinal = New(
	CodeInvalidStatus,
	"tender",
	"Tender status can no longer be changed",
	http.StatusConflict,
)
