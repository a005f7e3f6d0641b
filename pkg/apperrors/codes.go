package apperrors

// Error codes - organized by domain

// Authentication errors (AUTH_*)
const (
	ErrCodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	ErrCodeTokenExpired       = "AUTH_TOKEN_EXPIRED"
	ErrCodeTokenInvalid       = "AUTH_TOKEN_INVALID"
	ErrCodeTokenMalformed     = "AUTH_TOKEN_MALFORMED"
	ErrCodeTokenMissing       = "AUTH_TOKEN_MISSING"
)

// Authorization errors (AUTHZ_*)
const (
	ErrCodeForbidden = "AUTHZ_FORBIDDEN"
	ErrCodeNotAdmin  = "AUTHZ_NOT_ADMIN"
)

// Validation errors (VALIDATION_*)
const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeMissingField     = "VALIDATION_MISSING_FIELD"
	ErrCodeInvalidSection   = "VALIDATION_INVALID_SECTION"
	ErrCodeInvalidLanguage  = "VALIDATION_INVALID_LANGUAGE"
)

// Resource errors (RESOURCE_*)
const (
	ErrCodeContentNotFound = "RESOURCE_CONTENT_NOT_FOUND"
	ErrCodeRouteNotFound   = "RESOURCE_ROUTE_NOT_FOUND"
)

// Rate limiting errors (RATE_*)
const (
	ErrCodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	ErrCodeLoginLimitExceeded = "RATE_LOGIN_LIMIT_EXCEEDED"
)

// Internal errors (INTERNAL_*)
const (
	ErrCodeDatabaseError   = "INTERNAL_DATABASE_ERROR"
	ErrCodeUnexpectedError = "INTERNAL_UNEXPECTED_ERROR"
)
