package coingecko_common

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoingeckoRequestBuilder_BuildURL(t *testing.T) {
	tests := []struct {
		name  string
		setup func() *CoingeckoRequestBuilder
		check func(*testing.T, *url.URL)
	}{
		{
			name: "Path joined with base URL",
			setup: func() *CoingeckoRequestBuilder {
				return NewCoingeckoRequestBuilder("https://api.coingecko.com/", "/api/v3/coins/list")
			},
			check: func(t *testing.T, u *url.URL) {
				assert.Equal(t, "api.coingecko.com", u.Host)
				assert.Equal(t, "/api/v3/coins/list", u.Path)
			},
		},
		{
			name: "Query parameters",
			setup: func() *CoingeckoRequestBuilder {
				return NewCoingeckoRequestBuilder("https://api.coingecko.com", "/api/v3/coins/bitcoin/market_chart").
					WithCurrency("usd").
					With("days", "30").
					With("interval", "daily")
			},
			check: func(t *testing.T, u *url.URL) {
				q := u.Query()
				assert.Equal(t, "usd", q.Get("vs_currency"))
				assert.Equal(t, "30", q.Get("days"))
				assert.Equal(t, "daily", q.Get("interval"))
			},
		},
		{
			name: "Empty currency skipped",
			setup: func() *CoingeckoRequestBuilder {
				return NewCoingeckoRequestBuilder("https://api.coingecko.com", "/api/v3/coins/list").
					WithCurrency("")
			},
			check: func(t *testing.T, u *url.URL) {
				assert.False(t, u.Query().Has("vs_currency"))
			},
		},
		{
			name: "Pro key parameter",
			setup: func() *CoingeckoRequestBuilder {
				return NewCoingeckoRequestBuilder("https://pro-api.coingecko.com", "/api/v3/coins/list").
					WithApiKey("pro-key", ProKey)
			},
			check: func(t *testing.T, u *url.URL) {
				assert.Equal(t, "pro-key", u.Query().Get("x_cg_pro_api_key"))
				assert.False(t, u.Query().Has("x_cg_demo_api_key"))
			},
		},
		{
			name: "Demo key parameter",
			setup: func() *CoingeckoRequestBuilder {
				return NewCoingeckoRequestBuilder("https://api.coingecko.com", "/api/v3/coins/list").
					WithApiKey("demo-key", DemoKey)
			},
			check: func(t *testing.T, u *url.URL) {
				assert.Equal(t, "demo-key", u.Query().Get("x_cg_demo_api_key"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.setup().BuildURL())
			require.NoError(t, err)
			tt.check(t, u)
		})
	}
}

func TestCoingeckoRequestBuilder_Build(t *testing.T) {
	req, err := NewCoingeckoRequestBuilder("https://api.coingecko.com", "/api/v3/coins/list").
		WithHeader("X-Test", "yes").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, "Mozilla/5.0 Quote-Fetcher", req.Header.Get("User-Agent"))
	assert.Equal(t, "yes", req.Header.Get("X-Test"))
}
