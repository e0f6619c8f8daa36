package models

// ErrorResponse is the envelope returned for every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	// example: false
	Success bool `json:"success" example:"false"`

	// HTTP status code
	// example: 400
	StatusCode int `json:"statusCode" example:"400"`

	// Error message
	// example: amount must be a positive number
	Message string `json:"message" example:"amount must be a positive number"`

	// Every validation message, null for non-validation errors
	Errors []string `json:"errors"`

	// Time of the failure in RFC 3339
	// example: 2024-10-05T05:16:13.000Z
	Timestamp string `json:"timestamp" example:"2024-10-05T05:16:13.000Z"`

	// Request path
	// example: /v1/currency/convert
	Path string `json:"path" example:"/v1/currency/convert"`
}
