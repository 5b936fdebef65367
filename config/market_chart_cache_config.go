package config

import (
	"time"
)

// MarketChartCacheConfig defines TTL selection for cached market chart
// responses. CoinGecko serves hourly granularity for windows up to
// DailyDataThreshold days and daily granularity above it, so the two
// bands get separate TTLs.
type MarketChartCacheConfig struct {
	// HourlyTTL is the cache TTL for requests with days <= DailyDataThreshold
	HourlyTTL time.Duration `yaml:"hourly_ttl"`

	// DailyTTL is the cache TTL for requests with days > DailyDataThreshold
	DailyTTL time.Duration `yaml:"daily_ttl"`

	// DailyDataThreshold is the number of days after which CoinGecko
	// returns daily data instead of hourly
	DailyDataThreshold int `yaml:"daily_data_threshold"`

	// DefaultTTL is the fallback TTL when parameters cannot be parsed
	DefaultTTL time.Duration `yaml:"default_ttl"`
}

func (c *MarketChartCacheConfig) applyDefaults() {
	if c.HourlyTTL == 0 {
		c.HourlyTTL = 30 * time.Minute
	}
	if c.DailyTTL == 0 {
		c.DailyTTL = 12 * time.Hour
	}
	if c.DailyDataThreshold == 0 {
		c.DailyDataThreshold = 90
	}
	if c.DefaultTTL == 0 {
		c.DefaultTTL = 5 * time.Minute
	}
}

// GetDefaultMarketChartCacheConfig returns the defaults used when no
// config file section is present
func GetDefaultMarketChartCacheConfig() MarketChartCacheConfig {
	cfg := MarketChartCacheConfig{}
	cfg.applyDefaults()
	return cfg
}
