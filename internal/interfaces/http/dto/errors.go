package dto

import (
	"net/http"
	"strings"
)

// Error codes produced by the HTTP layer itself. Domain error codes
// (NOT_FOUND, ALREADY_EXISTS, INVALID_STATE, ...) pass through unchanged.
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes. Uniqueness
// conflicts and invalid state map to 400 rather than 409/422: the API
// treats every rejected write uniformly as a bad request.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound: http.StatusNotFound,

	"ALREADY_EXISTS": http.StatusBadRequest,
	"INVALID_STATE":  http.StatusBadRequest,

	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_MAX_REFRESH":   http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,

	"ACCOUNT_DEACTIVATED": http.StatusBadRequest,

	ErrCodeForbidden:  http.StatusForbidden,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeInternal:   http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code. Validation
// codes follow the INVALID_ prefix convention and map to 400; anything
// unrecognized is a 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
