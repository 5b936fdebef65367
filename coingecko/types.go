package coingecko

import (
	"fmt"
	"time"
)

// QuotePriceScale is the number of decimal digits carried by an
// integer-scaled quote value
const QuotePriceScale = 8

// PricePoint is a single quote attributed to a trading date. Date is a
// calendar date (UTC midnight, no time-of-day); Value is the price
// scaled by 10^QuotePriceScale.
type PricePoint struct {
	Date  time.Time
	Value int64
}

// RawResponse captures the exact request URL and response body of a
// provider call for diagnostic preview purposes
type RawResponse struct {
	URL  string
	Body string
}

// QuoteFeedData aggregates the outcome of a single quote request:
// parsed price points, all errors encountered along the way, and
// optional raw-response captures. It is created fresh per request and
// owned by the caller after return.
type QuoteFeedData struct {
	Prices    []PricePoint
	Errors    []error
	Responses []RawResponse
}

// NewQuoteFeedData creates an empty result
func NewQuoteFeedData() *QuoteFeedData {
	return &QuoteFeedData{}
}

// QuoteFeedDataWithError creates a result that carries a single error
func QuoteFeedDataWithError(err error) *QuoteFeedData {
	data := NewQuoteFeedData()
	data.AddError(err)
	return data
}

// AddError appends an error to the result
func (d *QuoteFeedData) AddError(err error) {
	d.Errors = append(d.Errors, err)
}

// AddPrices appends price points to the result
func (d *QuoteFeedData) AddPrices(prices []PricePoint) {
	d.Prices = append(d.Prices, prices...)
}

// AddResponse records a raw request/response capture
func (d *QuoteFeedData) AddResponse(url, body string) {
	d.Responses = append(d.Responses, RawResponse{URL: url, Body: body})
}

// Security gives read-only access to the instrument a quote request is
// made for
type Security interface {
	// TickerSymbol returns the market ticker symbol, e.g. "BTC"
	TickerSymbol() string

	// CurrencyCode returns the quote currency, e.g. "usd"
	CurrencyCode() string

	// DisplayName returns a human-readable name for error messages
	DisplayName() string

	// PriceHistory returns previously stored price points ordered by
	// date, oldest first; may be empty
	PriceHistory() []PricePoint
}

// MsgMissingTickerSymbol formats the operator-facing message for a
// ticker symbol that cannot be resolved. Replaceable for localization.
var MsgMissingTickerSymbol = "missing ticker symbol: %s"

// MissingTickerError reports a ticker symbol with no CoinGecko mapping,
// a security without a ticker symbol, or a failed catalog fetch that
// prevented resolution (Cause is set in that case).
type MissingTickerError struct {
	Symbol string
	Cause  error
}

func (e *MissingTickerError) Error() string {
	return fmt.Sprintf(MsgMissingTickerSymbol, e.Symbol)
}

func (e *MissingTickerError) Unwrap() error {
	return e.Cause
}
