package coingecko

import (
	"encoding/json"
	"fmt"
	"log"

	cg "github.com/status-im/quote-fetcher/coingecko_common"
	"github.com/status-im/quote-fetcher/config"
	"github.com/status-im/quote-fetcher/metrics"
)

//go:generate mockgen -destination=mocks/api_client.go -package=mock_coingecko . IAPIClient

// IAPIClient defines the provider operations the quote feed depends on
type IAPIClient interface {
	// FetchCoinsList fetches the full {symbol, id} catalog
	FetchCoinsList() ([]CoinListEntry, error)

	// FetchMarketChart fetches a historical price series and returns
	// the raw body together with the final request URL
	FetchMarketChart(params MarketChartParams) (*MarketChartResult, error)
}

// CoinListEntry is one record of the /coins/list catalog
type CoinListEntry struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// MarketChartParams parameterizes a market chart fetch
type MarketChartParams struct {
	// ID is the CoinGecko coin id (required), obtained from /coins/list
	ID string

	// Currency to compare against (e.g., "usd", "eur", "btc")
	Currency string

	// Days specifies the data window in days counted back from now
	Days string

	// Interval selects the data granularity ("daily" for closing prices)
	Interval string
}

// Validate validates the MarketChartParams
func (p *MarketChartParams) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("coin ID is required")
	}
	if p.Interval != "" && p.Interval != "daily" && p.Interval != "hourly" && p.Interval != "5m" {
		return fmt.Errorf("invalid interval parameter: %s", p.Interval)
	}
	return nil
}

// MarketChartResult carries the raw response body and the URL it was
// fetched from
type MarketChartResult struct {
	URL  string
	Body []byte
}

// CoinGeckoClient implements IAPIClient using the shared retrying
// transport with API key fallback
type CoinGeckoClient struct {
	config         *config.Config
	keyManager     cg.IAPIKeyManager
	httpClient     *cg.HTTPClientWithRetries
	chartMetrics   *metrics.MetricsWriter
	catalogMetrics *metrics.MetricsWriter
}

// NewCoinGeckoClient creates a new CoinGecko API client
func NewCoinGeckoClient(cfg *config.Config) *CoinGeckoClient {
	retryOpts := cg.DefaultRetryOptions()
	retryOpts.LogPrefix = "CoinGecko-Quotes"

	statusHandler := cg.NewHttpRequestMetricsWriter(metrics.ServiceQuotes)
	limiterManager := cg.GetRateLimiterManagerInstance()
	limiterManager.SetConfig(cfg.APIKeys)

	return &CoinGeckoClient{
		config:         cfg,
		keyManager:     cg.NewAPIKeyManager(cfg.APITokens),
		httpClient:     cg.NewHTTPClientWithRetries(retryOpts, statusHandler, limiterManager),
		chartMetrics:   metrics.NewMetricsWriter(metrics.ServiceQuotes),
		catalogMetrics: metrics.NewMetricsWriter(metrics.ServiceCoinsList),
	}
}

// FetchCoinsList fetches the complete coin catalog. A malformed catalog
// payload is a hard error, there is no way to resolve tickers without it.
func (c *CoinGeckoClient) FetchCoinsList() ([]CoinListEntry, error) {
	executor := func(apiKey cg.APIKey) (interface{}, bool, error) {
		baseURL := cg.GetApiBaseUrl(c.config, apiKey.Type)

		request, err := NewCoinsListRequestBuilder(baseURL).
			WithApiKey(apiKey.Key, apiKey.Type).
			Build()
		if err != nil {
			return nil, false, err
		}

		resp, body, duration, err := c.httpClient.ExecuteRequest(request)
		if err != nil {
			return nil, false, err
		}
		resp.Body.Close()
		c.catalogMetrics.RecordFetchDuration(duration)

		return body, true, nil
	}

	result, err := cg.TryWithKeys(c.keyManager.GetAvailableKeys(), "CoinGecko-CoinsList",
		executor, cg.CreateFailCallback(c.keyManager))
	if err != nil {
		return nil, err
	}

	var entries []CoinListEntry
	if err := json.Unmarshal(result.([]byte), &entries); err != nil {
		return nil, fmt.Errorf("error parsing coins list response: %w", err)
	}

	log.Printf("CoinGecko-CoinsList: Received %d catalog entries", len(entries))

	return entries, nil
}

// FetchMarketChart fetches a market chart for a single coin. The body is
// returned unparsed; series extraction is the caller's concern.
func (c *CoinGeckoClient) FetchMarketChart(params MarketChartParams) (*MarketChartResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	executor := func(apiKey cg.APIKey) (interface{}, bool, error) {
		baseURL := cg.GetApiBaseUrl(c.config, apiKey.Type)

		requestBuilder := NewMarketChartRequestBuilder(baseURL, params.ID).
			WithCurrency(params.Currency).
			WithDays(params.Days).
			WithInterval(params.Interval).
			WithApiKey(apiKey.Key, apiKey.Type)

		request, err := requestBuilder.Build()
		if err != nil {
			return nil, false, err
		}

		resp, body, duration, err := c.httpClient.ExecuteRequest(request)
		if err != nil {
			return nil, false, err
		}
		resp.Body.Close()
		c.chartMetrics.RecordFetchDuration(duration)

		return &MarketChartResult{URL: request.URL.String(), Body: body}, true, nil
	}

	result, err := cg.TryWithKeys(c.keyManager.GetAvailableKeys(), "CoinGecko-MarketChart",
		executor, cg.CreateFailCallback(c.keyManager))
	if err != nil {
		return nil, err
	}

	return result.(*MarketChartResult), nil
}

var _ IAPIClient = (*CoinGeckoClient)(nil)
