package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// DefaultCurrency is used when a security carries no currency code
	DefaultCurrency string `yaml:"default_currency"`

	// TokensFile points to the JSON file with CoinGecko API keys
	TokensFile string `yaml:"tokens_file"`
	APITokens  *APITokens

	APIKeys          APIKeyConfig           `yaml:"api_keys"`
	MarketChartCache MarketChartCacheConfig `yaml:"market_chart_cache"`

	OverrideCoingeckoPublicURL string `yaml:"override_coingecko_public_url"`
	OverrideCoingeckoProURL    string `yaml:"override_coingecko_pro_url"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	if config.DefaultCurrency == "" {
		config.DefaultCurrency = "usd"
	}
	config.MarketChartCache.applyDefaults()

	apiTokens, err := LoadAPITokens(config.TokensFile)
	if err != nil {
		log.Printf("Warning: Error loading API tokens from %s: %v. Using public API without authentication.",
			config.TokensFile, err)
		config.APITokens = &APITokens{Tokens: []string{}}
	} else {
		config.APITokens = apiTokens
	}

	return &config, nil
}
