package models

type ErrorResponse struct {
	Error string `json:"error"`
}

type RateLimitErrorResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details"`
}
