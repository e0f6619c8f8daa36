package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// ExchangeRatesKey is the single Redis key holding the rate snapshot.
const ExchangeRatesKey = "exchangeRates"

// ErrRatesNotCached is returned when the snapshot is absent or expired.
var ErrRatesNotCached = errors.New("exchange rates not found in cache")

// ExchangeRateCacheRepository caches the Monobank rate snapshot in Redis
type ExchangeRateCacheRepository struct {
	client redis.Cmdable
	exp    time.Duration // expiration duration for the cached snapshot
}

// NewExchangeRateCacheRepository creates a new repository instance with the given TTL
func NewExchangeRateCacheRepository(client redis.Cmdable, expiration time.Duration) *ExchangeRateCacheRepository {
	return &ExchangeRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetRates returns the cached snapshot
func (r *ExchangeRateCacheRepository) GetRates(ctx context.Context) ([]models.Rate, error) {
	val, err := r.client.Get(ctx, ExchangeRatesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.Log.Debugw("cache miss", "key", ExchangeRatesKey)
			return nil, ErrRatesNotCached
		}
		logger.Log.Errorw("cache read failed", "key", ExchangeRatesKey, "error", err)
		return nil, err
	}

	var rates []models.Rate
	if err := json.Unmarshal(val, &rates); err != nil {
		logger.Log.Errorw("cached value is not a rate list", "key", ExchangeRatesKey, "error", err)
		return nil, fmt.Errorf("decode cached rates: %w", err)
	}

	logger.Log.Debugw("cache hit", "key", ExchangeRatesKey, "count", len(rates))
	return rates, nil
}

// SetRates stores the snapshot in Redis with expiration
func (r *ExchangeRateCacheRepository) SetRates(ctx context.Context, rates []models.Rate) error {
	val, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("encode rates: %w", err)
	}

	err = r.client.Set(ctx, ExchangeRatesKey, val, r.exp).Err()
	logger.Log.Debugw("cache write",
		"key", ExchangeRatesKey,
		"count", len(rates),
		"ttl", r.exp,
		"error", err,
	)

	return err
}
