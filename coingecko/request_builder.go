package coingecko

import (
	"fmt"
	"net/http"

	cg "github.com/status-im/quote-fetcher/coingecko_common"
)

const (
	COINS_LIST_API_PATH            = "/api/v3/coins/list"
	MARKET_CHART_API_PATH_TEMPLATE = "/api/v3/coins/%s/market_chart"
)

// CoinsListRequestBuilder builds requests for the full coin catalog
type CoinsListRequestBuilder struct {
	builder *cg.CoingeckoRequestBuilder
}

func NewCoinsListRequestBuilder(baseURL string) *CoinsListRequestBuilder {
	return &CoinsListRequestBuilder{
		builder: cg.NewCoingeckoRequestBuilder(baseURL, COINS_LIST_API_PATH),
	}
}

func (rb *CoinsListRequestBuilder) WithApiKey(apiKey string, keyType cg.KeyType) *CoinsListRequestBuilder {
	rb.builder.WithApiKey(apiKey, keyType)
	return rb
}

func (rb *CoinsListRequestBuilder) BuildURL() string {
	return rb.builder.BuildURL()
}

func (rb *CoinsListRequestBuilder) Build() (*http.Request, error) {
	return rb.builder.Build()
}

// MarketChartRequestBuilder builds requests for the historical price
// series of a single coin
type MarketChartRequestBuilder struct {
	builder *cg.CoingeckoRequestBuilder
	coinID  string
}

func NewMarketChartRequestBuilder(baseURL, coinID string) *MarketChartRequestBuilder {
	apiPath := fmt.Sprintf(MARKET_CHART_API_PATH_TEMPLATE, coinID)

	return &MarketChartRequestBuilder{
		builder: cg.NewCoingeckoRequestBuilder(baseURL, apiPath),
		coinID:  coinID,
	}
}

func (rb *MarketChartRequestBuilder) WithCurrency(currency string) *MarketChartRequestBuilder {
	rb.builder.WithCurrency(currency)
	return rb
}

func (rb *MarketChartRequestBuilder) WithDays(days string) *MarketChartRequestBuilder {
	if days != "" {
		rb.builder.With("days", days)
	}
	return rb
}

func (rb *MarketChartRequestBuilder) WithInterval(interval string) *MarketChartRequestBuilder {
	if interval != "" {
		rb.builder.With("interval", interval)
	}
	return rb
}

func (rb *MarketChartRequestBuilder) WithApiKey(apiKey string, keyType cg.KeyType) *MarketChartRequestBuilder {
	rb.builder.WithApiKey(apiKey, keyType)
	return rb
}

func (rb *MarketChartRequestBuilder) BuildURL() string {
	return rb.builder.BuildURL()
}

func (rb *MarketChartRequestBuilder) Build() (*http.Request, error) {
	return rb.builder.Build()
}
