package coingecko

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/status-im/quote-fetcher/cache"
	"github.com/status-im/quote-fetcher/config"
)

const (
	// Interval selector for closing prices
	DAILY_INTERVAL = "daily"

	// Cache key prefix for market chart data
	MARKET_CHART_CACHE_PREFIX = "market_chart"
)

// QuoteFeed fetches historical and latest quotes for a security from
// CoinGecko. The optional response cache short-circuits repeated
// market-chart fetches; raw-capture requests always bypass it.
type QuoteFeed struct {
	config   *config.Config
	client   IAPIClient
	resolver *TickerResolver
	cache    cache.Cache
}

// NewQuoteFeed creates a quote feed with its own CoinGecko client.
// responseCache may be nil to disable response caching.
func NewQuoteFeed(cfg *config.Config, responseCache cache.Cache) *QuoteFeed {
	client := NewCoinGeckoClient(cfg)
	return NewQuoteFeedWithClient(cfg, client, responseCache)
}

// NewQuoteFeedWithClient creates a quote feed on top of an existing API
// client
func NewQuoteFeedWithClient(cfg *config.Config, client IAPIClient, responseCache cache.Cache) *QuoteFeed {
	return &QuoteFeed{
		config:   cfg,
		client:   client,
		resolver: NewTickerResolver(client),
		cache:    responseCache,
	}
}

// LatestQuote returns the most recent price point for the security, or
// false if the provider returned no data. Errors reported by the
// underlying fetch are logged, not returned.
func (f *QuoteFeed) LatestQuote(security Security) (PricePoint, bool) {
	data := f.fetchSince(security, false, midnightUTC(time.Now()))

	if len(data.Errors) > 0 {
		log.Printf("QuoteFeed: Latest quote for %s reported errors: %v",
			security.DisplayName(), data.Errors)
	}

	if len(data.Prices) == 0 {
		return PricePoint{}, false
	}

	prices := append([]PricePoint(nil), data.Prices...)
	sort.SliceStable(prices, func(i, j int) bool {
		return prices[i].Date.Before(prices[j].Date)
	})

	return prices[len(prices)-1], true
}

// HistoricalQuotes fetches quotes since the security's last stored
// price point, or the full history if none is stored
func (f *QuoteFeed) HistoricalQuotes(security Security, collectRawResponse bool) *QuoteFeedData {
	quoteStartDate := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

	if history := security.PriceHistory(); len(history) > 0 {
		quoteStartDate = history[len(history)-1].Date
	}

	return f.fetchSince(security, collectRawResponse, quoteStartDate)
}

// PreviewHistoricalQuotes fetches the last two months with raw-response
// capture enabled, regardless of stored history
func (f *QuoteFeed) PreviewHistoricalQuotes(security Security) *QuoteFeedData {
	return f.fetchSince(security, true, midnightUTC(time.Now()).AddDate(0, -2, 0))
}

// fetchSince is the single parameterized fetch behind all three
// operations
func (f *QuoteFeed) fetchSince(security Security, collectRawResponse bool, start time.Time) *QuoteFeedData {
	if security.TickerSymbol() == "" {
		return QuoteFeedDataWithError(&MissingTickerError{Symbol: security.DisplayName()})
	}

	data := NewQuoteFeedData()

	coinID, err := f.resolver.ResolveID(security.TickerSymbol())
	if err != nil {
		data.AddError(err)
		return data
	}

	days := daysBetween(start, time.Now()) + 1
	if days < 1 {
		days = 1
	}

	currency := security.CurrencyCode()
	if currency == "" {
		currency = f.config.DefaultCurrency
	}

	params := MarketChartParams{
		ID:       coinID,
		Currency: currency,
		Days:     strconv.FormatInt(days, 10),
		Interval: DAILY_INTERVAL,
	}

	result, err := f.fetchMarketChart(params, collectRawResponse)
	if err != nil {
		data.AddError(err)
		return data
	}

	if collectRawResponse {
		data.AddResponse(result.URL, string(result.Body))
	}

	rows, err := extractPriceRows(result.Body)
	if err != nil {
		data.AddError(err)
		return data
	}

	points, itemErrs, err := convertPriceRows(rows)
	if err != nil {
		data.AddError(err)
		return data
	}

	for _, itemErr := range itemErrs {
		data.AddError(itemErr)
	}
	data.AddPrices(points)

	return data
}

// fetchMarketChart consults the response cache before going to the API.
// Raw-capture requests skip the cache so the preview always reflects a
// live response with its URL.
func (f *QuoteFeed) fetchMarketChart(params MarketChartParams, collectRawResponse bool) (*MarketChartResult, error) {
	if f.cache == nil || collectRawResponse {
		return f.client.FetchMarketChart(params)
	}

	cacheKey := marketChartCacheKey(params)

	found, _, err := f.cache.Get([]string{cacheKey})
	if err == nil {
		if body, ok := found[cacheKey]; ok {
			log.Printf("QuoteFeed: Returning cached market chart for coin %s", params.ID)
			return &MarketChartResult{Body: body}, nil
		}
	}

	result, err := f.client.FetchMarketChart(params)
	if err != nil {
		return nil, err
	}

	ttl := f.selectTTL(params)
	if err := f.cache.Set(map[string][]byte{cacheKey: result.Body}, ttl); err != nil {
		log.Printf("QuoteFeed: Failed to cache market chart data: %v", err)
	}

	return result, nil
}

// marketChartCacheKey builds a cache key from the request parameters
func marketChartCacheKey(params MarketChartParams) string {
	key := fmt.Sprintf("%s:%s:%s:days:%s", MARKET_CHART_CACHE_PREFIX, params.ID, params.Currency, params.Days)
	if params.Interval != "" {
		key += fmt.Sprintf(":interval:%s", params.Interval)
	}
	return key
}

// selectTTL chooses the cache TTL based on the data granularity
// CoinGecko serves for the requested window
func (f *QuoteFeed) selectTTL(params MarketChartParams) time.Duration {
	cacheConfig := f.config.MarketChartCache

	days, err := strconv.Atoi(params.Days)
	if err != nil {
		return cacheConfig.DefaultTTL
	}

	if days <= cacheConfig.DailyDataThreshold {
		return cacheConfig.HourlyTTL
	}
	return cacheConfig.DailyTTL
}
