package errors

import "net/http"

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound  ErrorCode = "CATEGORY_001"
	CategoryInvalidID ErrorCode = "CATEGORY_002"
)

// Listing error codes (LISTING_*)
const (
	ListingNotFound                  ErrorCode = "LISTING_001"
	ListingInvalidID                 ErrorCode = "LISTING_002"
	ListingInvalidType               ErrorCode = "LISTING_003"
	ListingInvalidPrice              ErrorCode = "LISTING_004"
	ListingCreateFailed              ErrorCode = "LISTING_005"
	ListingMediaRequired             ErrorCode = "LISTING_006"
	ListingDonationRecipientRequired ErrorCode = "LISTING_007"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
	SystemNotFound           ErrorCode = "SYSTEM_006"
)

type codeInfo struct {
	message string
	status  int
}

// registry holds the default message and HTTP status of every code
var registry = map[ErrorCode]codeInfo{
	AuthMissingToken:           {"Authorization token is required", http.StatusUnauthorized},
	AuthExpiredToken:           {"Authorization token has expired", http.StatusUnauthorized},
	AuthInvalidTokenFormat:     {"Invalid authorization token", http.StatusUnauthorized},
	AuthInsufficientPermission: {"Insufficient permissions to access this resource", http.StatusForbidden},

	ValidationGeneral:       {"Validation failed", http.StatusBadRequest},
	ValidationInvalidFormat: {"Invalid field format", http.StatusBadRequest},
	ValidationOutOfRange:    {"Field value is out of allowed range", http.StatusBadRequest},

	CategoryNotFound:  {"Category not found", http.StatusNotFound},
	CategoryInvalidID: {"Invalid category ID format", http.StatusBadRequest},

	ListingNotFound:                  {"Listing not found", http.StatusNotFound},
	ListingInvalidID:                 {"Invalid listing ID format", http.StatusBadRequest},
	ListingInvalidType:               {"Invalid listing type", http.StatusBadRequest},
	ListingInvalidPrice:              {"Invalid listing price", http.StatusBadRequest},
	ListingCreateFailed:              {"Listing could not be created", http.StatusUnprocessableEntity},
	ListingMediaRequired:             {"A media type is required for paid uploads", http.StatusBadRequest},
	ListingDonationRecipientRequired: {"A donation needs a recipient email or WhatsApp number", http.StatusBadRequest},

	SystemInternalError:      {"An unexpected error occurred. Please contact support with trace ID", http.StatusInternalServerError},
	SystemServiceUnavailable: {"Service temporarily unavailable", http.StatusServiceUnavailable},
	SystemUnexpectedError:    {"An unexpected error occurred", http.StatusInternalServerError},
	SystemRateLimitExceeded:  {"Rate limit exceeded. Please try again later", http.StatusTooManyRequests},
	SystemNotFound:           {"Resource not found", http.StatusNotFound},
}

// GetErrorMessage returns the default message for a code, or a generic
// message for unregistered codes
func GetErrorMessage(code ErrorCode) string {
	if info, ok := registry[code]; ok {
		return info.message
	}
	return "An error occurred"
}

// GetHTTPStatus returns the HTTP status for a code. Unregistered codes are
// treated as server errors.
func GetHTTPStatus(code ErrorCode) int {
	if info, ok := registry[code]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// IsValidErrorCode checks if the provided error code is a registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := registry[code]
	return ok
}
