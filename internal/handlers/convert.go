package handlers

//go:generate mockgen -source=convert.go -destination=mocks_test.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// Converter defines the interface that the service must implement.
type Converter interface {
	Convert(ctx context.Context, from, to string, amount float64) (float64, error)
}

// NewConvertHandler returns an HTTP handler for currency conversion.
// @Summary Convert currency
// @Description Converts an amount between two ISO 4217 currencies using Monobank exchange rates.
// @Description Rates are resolved directly, through the inverse quote or through UAH.
// @Tags Currency Conversion
// @Accept json
// @Produce json
// @Param request body models.ConvertRequest true "Conversion request"
// @Success 201 {object} models.ConvertResponse "Conversion successful"
// @Failure 400 {object} models.ErrorResponse "Invalid input data or exchange rate not found"
// @Failure 502 {object} models.ErrorResponse "Monobank API unavailable"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /currency/convert [post]
func NewConvertHandler(svc Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ConvertRequest

		if err := decodeRequest(r.Body, &req); err != nil {
			msg := decodeErrorMessage(err)
			writeError(w, r, http.StatusBadRequest, msg, []string{msg})
			return
		}

		if msgs := validateRequest(req); len(msgs) > 0 {
			writeError(w, r, http.StatusBadRequest, joinMessages(msgs), msgs)
			return
		}

		logger.Log.Infow("received conversion request", "from", req.From, "to", req.To, "amount", *req.Amount)

		converted, err := svc.Convert(r.Context(), req.From, req.To, *req.Amount)
		if err != nil {
			status, msg := errorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Log.Errorw("internal server error", "err", err)
			}
			writeError(w, r, status, msg, nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.ConvertResponse{
			From:            req.From,
			To:              req.To,
			Amount:          *req.Amount,
			ConvertedAmount: converted,
		})
	}
}

// errorStatus maps service errors to a status code and a client-facing message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		return http.StatusBadRequest, "Amount must be greater than zero"
	case errors.Is(err, services.ErrAmountTooLarge):
		return http.StatusBadRequest, "Amount is too large to convert"
	case errors.Is(err, services.ErrInvalidCurrencyCode),
		errors.Is(err, services.ErrExchangeRateNotFound):
		return http.StatusBadRequest, capitalize(err.Error())
	case errors.Is(err, services.ErrRatesUnavailable):
		return http.StatusBadGateway, "Failed to fetch rates from Monobank API"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
