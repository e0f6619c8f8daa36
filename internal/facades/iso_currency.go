package facades

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bojanz/currency"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
)

// ErrUnknownCurrency is returned for alpha codes missing from the ISO-4217 list.
var ErrUnknownCurrency = errors.New("unknown ISO currency code")

// ISOCurrencyFacade maps ISO-4217 alpha codes to numeric codes.
type ISOCurrencyFacade struct{}

// NewISOCurrencyFacade creates a new facade.
func NewISOCurrencyFacade() *ISOCurrencyFacade {
	return &ISOCurrencyFacade{}
}

// NumericCode returns the numeric code of an alpha code, e.g. 840 for USD.
func (f *ISOCurrencyFacade) NumericCode(alpha string) (int, error) {
	numeric, ok := currency.GetNumericCode(alpha)
	if !ok {
		logger.Log.Warnw("invalid ISO currency code", "code", alpha)
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, alpha)
	}

	code, err := strconv.Atoi(numeric)
	if err != nil || code == 0 {
		return 0, fmt.Errorf("%w: %s has no numeric code", ErrUnknownCurrency, alpha)
	}

	return code, nil
}
