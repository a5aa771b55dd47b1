package models

// ErrorResponse is the body for 404 and 500 responses.
type ErrorResponse struct {
	Message string `json:"message"` // generic detail, no internals
}

// FieldError names the offending field in a 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the body for 400 responses.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}
