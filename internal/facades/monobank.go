package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// MonobankFacade fetches the public currency rate list from the Monobank API.
type MonobankFacade struct {
	client *http.Client
	url    string
}

// NewMonobankFacade creates a facade for the given endpoint. Every fetch is
// bounded by timeout in addition to the caller's context.
func NewMonobankFacade(url string, timeout time.Duration) *MonobankFacade {
	return &MonobankFacade{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// GetAllRates fetches the full rate list. Failures are not retried.
func (f *MonobankFacade) GetAllRates(ctx context.Context) ([]models.Rate, error) {
	start := time.Now()
	rates, status, err := f.fetch(ctx)
	metrics.RatesFetchDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
	if err != nil {
		logger.Log.Errorw("failed to fetch rates from Monobank API", "url", f.url, "error", err)
		return nil, err
	}

	logger.Log.Infow("fetched exchange rates from Monobank API", "count", len(rates))
	return rates, nil
}

func (f *MonobankFacade) fetch(ctx context.Context) ([]models.Rate, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, "error", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "error", fmt.Errorf("failed to get rates from Monobank: %w", err)
	}
	defer resp.Body.Close()

	status := strconv.Itoa(resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		return nil, status, fmt.Errorf("monobank API returned status: %d", resp.StatusCode)
	}

	var rates []models.Rate
	if err := json.NewDecoder(resp.Body).Decode(&rates); err != nil {
		return nil, status, fmt.Errorf("failed to parse Monobank response: %w", err)
	}

	return rates, status, nil
}
