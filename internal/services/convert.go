package services

//go:generate mockgen -source=convert.go -destination=mocks_test.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/rates"
	"github.com/sbilibin2017/gw-currency-converter/internal/repositories"
)

// RatesFetcher fetches the current rate snapshot from the upstream bank API
type RatesFetcher interface {
	GetAllRates(ctx context.Context) ([]models.Rate, error)
}

// RatesCache stores the rate snapshot between fetches
type RatesCache interface {
	GetRates(ctx context.Context) ([]models.Rate, error)
	SetRates(ctx context.Context, rates []models.Rate) error
}

// CurrencyCoder maps ISO-4217 alpha codes to numeric codes
type CurrencyCoder interface {
	NumericCode(alpha string) (int, error)
}

// Error variables
var (
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrAmountTooLarge       = errors.New("converted amount is out of range")
	ErrInvalidCurrencyCode  = errors.New("invalid ISO currency code")
	ErrExchangeRateNotFound = errors.New("exchange rate not found")
	ErrRatesUnavailable     = errors.New("failed to fetch rates from Monobank API")
)

// ConversionService converts amounts between currencies using cached Monobank rates.
type ConversionService struct {
	fetcher RatesFetcher
	cache   RatesCache
	coder   CurrencyCoder
}

// NewConversionService creates a new ConversionService instance.
func NewConversionService(fetcher RatesFetcher, cache RatesCache, coder CurrencyCoder) *ConversionService {
	return &ConversionService{
		fetcher: fetcher,
		cache:   cache,
		coder:   coder,
	}
}

// Convert returns amount expressed in the target currency, rounded to 2 decimal places.
func (svc *ConversionService) Convert(ctx context.Context, from, to string, amount float64) (float64, error) {
	logger.Log.Debugw("converting currency", "from", from, "to", to, "amount", amount)

	if amount <= 0 {
		metrics.ConversionsTotal.WithLabelValues(metrics.OutcomeInvalidInput).Inc()
		return 0, ErrInvalidAmount
	}

	fromCode, err := svc.numericCode(from)
	if err != nil {
		return 0, err
	}
	toCode, err := svc.numericCode(to)
	if err != nil {
		return 0, err
	}

	snapshot, err := svc.getExchangeRates(ctx)
	if err != nil {
		metrics.ConversionsTotal.WithLabelValues(metrics.OutcomeRatesUnavailable).Inc()
		return 0, err
	}

	rate, err := rates.Resolve(rates.NewTable(snapshot), fromCode, toCode)
	if err != nil {
		metrics.ConversionsTotal.WithLabelValues(metrics.OutcomeRateNotFound).Inc()
		return 0, fmt.Errorf("%w for %s (%d) to %s (%d)", ErrExchangeRateNotFound, from, fromCode, to, toCode)
	}

	converted := amount * rate
	if math.IsInf(converted, 0) || math.IsNaN(converted) {
		metrics.ConversionsTotal.WithLabelValues(metrics.OutcomeInvalidInput).Inc()
		return 0, ErrAmountTooLarge
	}

	result := decimal.NewFromFloat(converted).Round(2).InexactFloat64()
	metrics.ConversionsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	logger.Log.Debugw("converted currency", "from", from, "to", to, "amount", amount, "rate", rate, "converted_amount", result)

	return result, nil
}

func (svc *ConversionService) numericCode(alpha string) (int, error) {
	code, err := svc.coder.NumericCode(alpha)
	if err != nil {
		metrics.ConversionsTotal.WithLabelValues(metrics.OutcomeInvalidInput).Inc()
		return 0, fmt.Errorf("%w: %s", ErrInvalidCurrencyCode, alpha)
	}
	return code, nil
}

// getExchangeRates reads the snapshot from cache, falling back to the fetcher.
// Concurrent misses may each fetch and store; the snapshot is the same either way.
func (svc *ConversionService) getExchangeRates(ctx context.Context) ([]models.Rate, error) {
	cached, err := svc.cache.GetRates(ctx)
	switch {
	case err == nil:
		metrics.RatesCacheTotal.WithLabelValues(metrics.CacheHit).Inc()
		logger.Log.Debug("using cached exchange rates")
		return cached, nil
	case errors.Is(err, repositories.ErrRatesNotCached):
		metrics.RatesCacheTotal.WithLabelValues(metrics.CacheMiss).Inc()
		logger.Log.Info("exchange rates not found in cache, fetching from Monobank API")
	default:
		metrics.RatesCacheTotal.WithLabelValues(metrics.CacheError).Inc()
		logger.Log.Errorw("failed to read cached exchange rates", "error", err)
	}

	fetched, err := svc.fetcher.GetAllRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRatesUnavailable, err)
	}

	if err := svc.cache.SetRates(ctx, fetched); err != nil {
		logger.Log.Errorw("failed to cache exchange rates", "error", err)
	}

	return fetched, nil
}
