package models

// Rate is a single Monobank quote between two currencies identified by
// their ISO-4217 numeric codes. The quote is directed from CurrencyCodeA to CurrencyCodeB.
// swagger:model Rate
type Rate struct {
	CurrencyCodeA int      `json:"currencyCodeA" example:"840"`
	CurrencyCodeB int      `json:"currencyCodeB" example:"980"`
	Date          int64    `json:"date" example:"1728105373"`
	RateBuy       *float64 `json:"rateBuy,omitempty" example:"41.1"`
	RateSell      *float64 `json:"rateSell,omitempty" example:"41.5"`
	RateCross     *float64 `json:"rateCross,omitempty" example:"0"`
}

// Buy returns RateBuy and whether it holds a usable (non-zero) value.
func (r Rate) Buy() (float64, bool) { return quote(r.RateBuy) }

// Sell returns RateSell and whether it holds a usable (non-zero) value.
func (r Rate) Sell() (float64, bool) { return quote(r.RateSell) }

// Cross returns RateCross and whether it holds a usable (non-zero) value.
func (r Rate) Cross() (float64, bool) { return quote(r.RateCross) }

// A zero quote never comes from a real market feed, so it counts as missing.
func quote(v *float64) (float64, bool) {
	if v == nil || *v == 0 {
		return 0, false
	}
	return *v, true
}
