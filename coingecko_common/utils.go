package coingecko_common

import (
	"github.com/status-im/quote-fetcher/config"
)

// GetApiBaseUrl returns the API base URL for the given key type,
// honoring config overrides
func GetApiBaseUrl(cfg *config.Config, keyType KeyType) string {
	if keyType == ProKey {
		if cfg.OverrideCoingeckoProURL != "" {
			return cfg.OverrideCoingeckoProURL
		}
		return COINGECKO_PRO_URL
	}
	if cfg.OverrideCoingeckoPublicURL != "" {
		return cfg.OverrideCoingeckoPublicURL
	}
	return COINGECKO_PUBLIC_URL
}
