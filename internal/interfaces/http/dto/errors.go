package dto

import (
	"net/http"
	"strings"
)

// Error code constants
// Format: ERR_<DESCRIPTION>
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeValidation is used for input validation failures
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeRequestTooLarge is used when the upload exceeds the body limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"

	// ErrCodeLoadFailed is used when the spreadsheet cannot be read
	ErrCodeLoadFailed = "ERR_LOAD_FAILED"
	// ErrCodeRenderFailed is used when card or grid rendering fails
	ErrCodeRenderFailed = "ERR_RENDER_FAILED"
	// ErrCodeExportFailed is used when writing the PNG/PDF artifacts fails
	ErrCodeExportFailed = "ERR_EXPORT_FAILED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	// Pipeline failures are server-side: the client input was accepted
	ErrCodeLoadFailed:   http.StatusInternalServerError,
	ErrCodeRenderFailed: http.StatusInternalServerError,
	ErrCodeExportFailed: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code,
// defaulting to 500 for unknown codes
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// NormalizeErrorCode converts a domain error code to the API error code
// namespace. Unknown codes collapse to ErrCodeInternal.
func NormalizeErrorCode(domainCode string) string {
	code := domainCode
	if !strings.HasPrefix(code, "ERR_") {
		code = "ERR_" + code
	}
	if _, ok := ErrorCodeHTTPStatus[code]; !ok {
		return ErrCodeInternal
	}
	return code
}
