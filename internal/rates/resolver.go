package rates

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
)

// BaseCurrencyCode is the ISO-4217 numeric code of UAH, the currency every
// Monobank quote can be triangulated through.
const BaseCurrencyCode = 980

// ErrRateNotFound is returned when no direct, inverse or triangulated rate exists.
var ErrRateNotFound = errors.New("exchange rate not found")

type step struct {
	name    string
	resolve func(t *Table, from, to int) (float64, bool)
}

// Order matters: the first step that yields a rate wins.
var steps = []step{
	{"identity", identityRate},
	{"direct", directRate},
	{"inverse", inverseRate},
	{"triangulated", triangulatedRate},
}

// Resolve returns the rate r such that amount(from) * r = amount(to).
func Resolve(t *Table, from, to int) (float64, error) {
	for _, s := range steps {
		if rate, ok := s.resolve(t, from, to); ok {
			logger.Log.Debugw("exchange rate resolved",
				"from", from, "to", to, "step", s.name, "rate", rate)
			return rate, nil
		}
	}

	logger.Log.Warnw("exchange rate not found", "from", from, "to", to)
	return 0, fmt.Errorf("%w for codes %d to %d", ErrRateNotFound, from, to)
}

func identityRate(_ *Table, from, to int) (float64, bool) {
	if from == to {
		return 1, true
	}
	return 0, false
}

// Quotes from UAH carry buy/sell as UAH per unit of foreign currency, hence the inversion.
func directRate(t *Table, from, to int) (float64, bool) {
	r, ok := t.FindDirect(from, to)
	if !ok {
		return 0, false
	}
	if v, ok := r.Cross(); ok {
		return v, true
	}
	if from == BaseCurrencyCode {
		if v, ok := r.Sell(); ok {
			return 1 / v, true
		}
		if v, ok := r.Buy(); ok {
			return 1 / v, true
		}
	}
	if v, ok := r.Buy(); ok {
		return v, true
	}
	return r.Sell()
}

func inverseRate(t *Table, from, to int) (float64, bool) {
	r, ok := t.FindInverse(from, to)
	if !ok {
		return 0, false
	}
	if v, ok := r.Cross(); ok {
		return 1 / v, true
	}
	if to == BaseCurrencyCode {
		if v, ok := r.Buy(); ok {
			return v, true
		}
		if v, ok := r.Sell(); ok {
			return v, true
		}
	}
	if v, ok := r.Sell(); ok {
		return 1 / v, true
	}
	if v, ok := r.Buy(); ok {
		return 1 / v, true
	}
	return 0, false
}

// The two legs fall back in opposite order: the bank buys "from" and sells "to".
func triangulatedRate(t *Table, from, to int) (float64, bool) {
	fromRecord, ok := t.FindToBase(from, BaseCurrencyCode)
	if !ok {
		return 0, false
	}
	toRecord, ok := t.FindToBase(to, BaseCurrencyCode)
	if !ok {
		return 0, false
	}

	fromLeg, ok := firstQuote(fromRecord.Cross, fromRecord.Buy, fromRecord.Sell)
	if !ok {
		return 0, false
	}
	toLeg, ok := firstQuote(toRecord.Cross, toRecord.Sell, toRecord.Buy)
	if !ok {
		return 0, false
	}

	return fromLeg * (1 / toLeg), true
}

func firstQuote(quotes ...func() (float64, bool)) (float64, bool) {
	for _, q := range quotes {
		if v, ok := q(); ok {
			return v, true
		}
	}
	return 0, false
}
