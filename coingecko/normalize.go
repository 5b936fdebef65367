package coingecko

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// extractPriceRows pulls the "prices" array out of a market chart body.
// A body without a "prices" key, or one that is not a JSON object at
// all, yields zero rows without error; the provider responds that way
// for coins with no data. A "prices" value of the wrong shape is a
// malformed payload.
func extractPriceRows(body []byte) ([]json.RawMessage, error) {
	var chart map[string]json.RawMessage
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, nil
	}

	raw, ok := chart["prices"]
	if !ok {
		return nil, nil
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("unexpected market chart shape: %w", err)
	}

	return rows, nil
}

// convertPriceRows turns raw [timestamp_ms, price] pairs into price
// points. Output order matches input order; no sorting or deduplication
// happens here.
//
// A price that fails to parse drops only that row and records a
// per-item error. A timestamp that fails to parse makes the whole
// payload malformed and aborts the call: the timestamp is structurally
// required.
func convertPriceRows(rows []json.RawMessage) ([]PricePoint, []error, error) {
	if len(rows) == 0 {
		return nil, nil, nil
	}

	points := make([]PricePoint, 0, len(rows))
	var itemErrs []error

	for i, row := range rows {
		var pair []json.RawMessage
		if err := json.Unmarshal(row, &pair); err != nil {
			// Non-array rows are skipped
			continue
		}

		if len(pair) == 0 {
			return nil, nil, fmt.Errorf("market chart row %d has no timestamp", i)
		}

		timestamp, err := parseEpochMillis(pair[0])
		if err != nil {
			return nil, nil, fmt.Errorf("market chart row %d: %w", i, err)
		}

		// A missing or null closing price means zero, not an error
		var value int64
		if len(pair) > 1 && !isJSONNull(pair[1]) {
			value, err = parseQuote(pair[1])
			if err != nil {
				itemErrs = append(itemErrs, fmt.Errorf("market chart row %d: %w", i, err))
				continue
			}
		}

		points = append(points, PricePoint{Date: tradingDate(timestamp), Value: value})
	}

	return points, itemErrs, nil
}

// tradingDate converts an epoch-millisecond timestamp to the calendar
// date the price belongs to. Closing prices are reported with time
// 00:00:00 UTC of the next day, so an exact-midnight instant is
// attributed to the previous day.
func tradingDate(epochMillis int64) time.Time {
	instant := time.UnixMilli(epochMillis).UTC()
	day := midnightUTC(instant)

	if instant.Hour() == 0 && instant.Minute() == 0 && instant.Second() == 0 {
		return day.AddDate(0, 0, -1)
	}
	return day
}

// midnightUTC truncates an instant to its UTC calendar date
func midnightUTC(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of whole days from start to end
func daysBetween(start, end time.Time) int64 {
	return int64(midnightUTC(end).Sub(midnightUTC(start)) / (24 * time.Hour))
}

// parseEpochMillis parses a raw JSON token as an integer epoch-ms timestamp
func parseEpochMillis(raw json.RawMessage) (int64, error) {
	timestamp, err := strconv.ParseInt(unquote(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", string(raw), err)
	}
	return timestamp, nil
}

// parseQuote parses a raw JSON token as a decimal price and scales it to
// an integer quote value (half-up rounding at the last digit)
func parseQuote(raw json.RawMessage) (int64, error) {
	price, err := decimal.NewFromString(unquote(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", string(raw), err)
	}
	return price.Shift(QuotePriceScale).Round(0).IntPart(), nil
}

// unquote strips surrounding quotes so numbers sent as JSON strings
// parse the same way as plain numbers
func unquote(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return s
}

func isJSONNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
