package apperrors

import (
	"net/http"
)

// Factories for wrapping lower-level errors (usually repository sentinels).

// ErrNotFound converts a repository miss into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the general 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation flags a request that cannot apply to the target (400).
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus flags a state-machine transition that is not allowed (400).
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// Predefined errors for the frequent static cases.

// ErrInvalidUserRole rejects an operation the caller's role does not have.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrCannotModifySelf rejects admin actions targeting the acting account.
var ErrCannotModifySelf = New(
	CodeForbidden,
	"business_logic",
	"Operation on self is not allowed",
	http.StatusForbidden,
)

// ErrInsufficientPermissions rejects staff-only actions for non-staff callers.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrSuperuserProtected rejects destructive actions against superuser accounts.
var ErrSuperuserProtected = New(
	CodeForbidden,
	"admin",
	"Superuser accounts cannot be modified or deleted",
	http.StatusForbidden,
)

// --- Uploads and files ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// --- Messaging ---

// ErrThreadAccessDenied rejects callers who are not participants of a thread.
var ErrThreadAccessDenied = New(
	CodeForbidden,
	"messaging",
	"Access to conversation denied",
	http.StatusForbidden,
)

// ErrSelfThread rejects starting a conversation with oneself.
var ErrSelfThread = New(
	CodeInvalidOperation,
	"messaging",
	"Cannot start a conversation with yourself",
	http.StatusBadRequest,
)
