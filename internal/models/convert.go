package models

// ConvertRequest represents the JSON body for a currency conversion
// swagger:model ConvertRequest
type ConvertRequest struct {
	// Source currency code (ISO 4217)
	// required: true
	// example: USD
	From string `json:"from" validate:"required,iso4217" example:"USD"`

	// Target currency code (ISO 4217)
	// required: true
	// example: EUR
	To string `json:"to" validate:"required,iso4217" example:"EUR"`

	// Amount to convert
	// required: true
	// example: 100
	Amount *float64 `json:"amount" validate:"required,gt=0" example:"100"`
}

// ConvertResponse represents a successful conversion
// swagger:model ConvertResponse
type ConvertResponse struct {
	// Source currency code (ISO 4217)
	// example: USD
	From string `json:"from" example:"USD"`

	// Target currency code (ISO 4217)
	// example: EUR
	To string `json:"to" example:"EUR"`

	// Amount to convert
	// example: 100
	Amount float64 `json:"amount" example:"100"`

	// Converted amount in target currency
	// example: 85.5
	ConvertedAmount float64 `json:"convertedAmount" example:"85.5"`
}
