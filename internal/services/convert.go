package services

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// Convert converts amount from one currency to another using rates resolved for from.
func (svc *ExchangeRateService) Convert(ctx context.Context, amount float64, from, to string) (*models.ConversionResult, error) {
	from = models.NormalizeCurrency(from)
	to = models.NormalizeCurrency(to)

	if !models.IsValidCurrency(from) || !models.IsValidCurrency(to) {
		return nil, fmt.Errorf("%w %q -> %q", ErrInvalidCurrency, from, to)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, ErrInvalidAmount
	}

	result := &models.ConversionResult{
		Amount:    amount,
		From:      from,
		To:        to,
		Timestamp: svc.now().UTC(),
	}

	if from == to {
		result.Rate = 1.0
		result.ConvertedAmount = amount
		return result, nil
	}

	rates, source, err := svc.Resolve(ctx, from)
	if err != nil {
		return nil, err
	}

	rate, ok := rates[to]
	if !ok {
		logger.Log.Warnw("conversion rate not available", "from", from, "to", to, "source", source)
		return nil, fmt.Errorf("%w for %s", ErrUnavailableRate, to)
	}

	result.Rate = rate
	result.ConvertedAmount = convertAmount(amount, rate)
	result.Source = source
	return result, nil
}

// convertAmount multiplies in decimal and rounds half away from zero to 2 places.
func convertAmount(amount, rate float64) float64 {
	converted, _ := decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)).Round(2).Float64()
	return converted
}
