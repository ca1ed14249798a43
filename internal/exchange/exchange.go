// Package exchange converts expense amounts between currencies for the
// workspace's home-currency spending summaries.
package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://api.frankfurter.app"

var (
	errRateMissing     = errors.New("conversion rate missing in response")
	errNonPositiveRate = errors.New("conversion rate must be positive")
)

// ConversionResult contains converted amount details.
type ConversionResult struct {
	Amount   decimal.Decimal
	Rate     decimal.Decimal
	RateDate time.Time
}

// Converter converts amounts between currencies.
type Converter interface {
	Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) (ConversionResult, error)
}

// FrankfurterClient fetches daily reference rates from the frankfurter.app
// API. Rates are published once per business day, so callers are expected to
// wrap it in a CachedConverter rather than hit the API per expense.
type FrankfurterClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewFrankfurterClient creates a Frankfurter API client. An empty baseURL
// selects the public API endpoint.
func NewFrankfurterClient(baseURL string, timeout time.Duration) *FrankfurterClient {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &FrankfurterClient{
		baseURL: trimmed,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Convert converts amount from one currency to another using the latest
// published rate. Same-currency conversions never touch the network.
func (c *FrankfurterClient) Convert(
	ctx context.Context,
	amount decimal.Decimal,
	fromCurrency, toCurrency string,
) (ConversionResult, error) {
	from := strings.ToUpper(strings.TrimSpace(fromCurrency))
	to := strings.ToUpper(strings.TrimSpace(toCurrency))
	if from == "" || to == "" {
		return ConversionResult{}, errors.New("from and to currencies are required")
	}
	if amount.IsNegative() {
		return ConversionResult{}, errors.New("amount must not be negative")
	}
	if from == to {
		return ConversionResult{
			Amount:   amount,
			Rate:     decimal.NewFromInt(1),
			RateDate: time.Now().UTC(),
		}, nil
	}

	rate, rateDate, err := c.latestRate(ctx, from, to)
	if err != nil {
		return ConversionResult{}, err
	}

	return ConversionResult{
		Amount:   amount.Mul(rate).Round(2),
		Rate:     rate,
		RateDate: rateDate,
	}, nil
}

type ratesPayload struct {
	Date  string                 `json:"date"`
	Rates map[string]json.Number `json:"rates"`
}

// latestRate fetches the current from->to rate and its publication date.
func (c *FrankfurterClient) latestRate(ctx context.Context, from, to string) (decimal.Decimal, time.Time, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)
	endpoint := c.baseURL + "/latest?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("failed to create conversion request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("failed to request conversion rate: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, time.Time{}, fmt.Errorf("exchange API returned status %d", resp.StatusCode)
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()

	var payload ratesPayload
	if err := decoder.Decode(&payload); err != nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("failed to decode conversion response: %w", err)
	}

	raw, ok := payload.Rates[to]
	if !ok {
		return decimal.Zero, time.Time{}, errRateMissing
	}
	rate, err := decimal.NewFromString(raw.String())
	if err != nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("failed to parse conversion rate: %w", err)
	}
	if !rate.IsPositive() {
		return decimal.Zero, time.Time{}, errNonPositiveRate
	}

	rateDate, err := time.Parse("2006-01-02", payload.Date)
	if err != nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("failed to parse conversion date: %w", err)
	}

	return rate, rateDate, nil
}
