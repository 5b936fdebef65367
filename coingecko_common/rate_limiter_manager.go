package coingecko_common

import (
	"net/url"
	"sync"

	"github.com/status-im/quote-fetcher/config"
	"golang.org/x/time/rate"
)

// IRateLimiterManager provides a way to get a rate limiter for a request URL
type IRateLimiterManager interface {
	GetLimiterForURL(u *url.URL) *rate.Limiter
	SetConfig(cfg config.APIKeyConfig)
}

// RateLimiterManager manages per-key rate limiters using APIKeyConfig
type RateLimiterManager struct {
	mu           sync.RWMutex
	keyToLimiter map[string]*rate.Limiter
	config       config.APIKeyConfig
}

var (
	managerOnce   sync.Once
	globalManager *RateLimiterManager
)

// Defaults in requests per minute, used when config is not provided
const (
	defaultProRPM   = 500
	defaultDemoRPM  = 30
	defaultNoKeyRPM = 30
)

// GetRateLimiterManagerInstance returns the global singleton RateLimiterManager instance
func GetRateLimiterManagerInstance() *RateLimiterManager {
	managerOnce.Do(func() {
		globalManager = &RateLimiterManager{
			keyToLimiter: make(map[string]*rate.Limiter),
			config:       config.APIKeyConfig{},
		}
	})
	return globalManager
}

// SetConfig applies a new APIKeyConfig and drops existing limiters so
// they are rebuilt lazily with the new settings
func (m *RateLimiterManager) SetConfig(cfg config.APIKeyConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.config = cfg
	m.keyToLimiter = make(map[string]*rate.Limiter)
}

// GetLimiterForURL inspects the URL to determine key and type and returns appropriate limiter
func (m *RateLimiterManager) GetLimiterForURL(u *url.URL) *rate.Limiter {
	if m == nil || u == nil {
		return nil
	}

	query := u.Query()

	// Prefer explicit key params
	if v := query.Get("x_cg_pro_api_key"); v != "" {
		return m.getLimiterForKey(v, ProKey)
	}
	if v := query.Get("x_cg_demo_api_key"); v != "" {
		return m.getLimiterForKey(v, DemoKey)
	}

	// Apply public limiter only for known CoinGecko hosts
	host := u.Hostname()
	if host == "api.coingecko.com" || host == "pro-api.coingecko.com" {
		return m.getLimiterForKey("", NoKey)
	}

	// No limiter for unrelated hosts
	return nil
}

// getLimiterForKey returns a limiter for a given api key and type, creating it if missing
func (m *RateLimiterManager) getLimiterForKey(key string, keyType KeyType) *rate.Limiter {
	mapKey := limiterMapKey(key, keyType)

	m.mu.RLock()
	if lim, ok := m.keyToLimiter[mapKey]; ok {
		m.mu.RUnlock()
		return lim
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if lim, ok := m.keyToLimiter[mapKey]; ok {
		return lim
	}

	rpm, burst := m.settingsForType(keyType)
	limit := rate.Limit(float64(rpm) / 60.0)
	lim := rate.NewLimiter(limit, burst)
	m.keyToLimiter[mapKey] = lim
	return lim
}

// settingsForType resolves rpm and burst for a key type, falling back to defaults
func (m *RateLimiterManager) settingsForType(keyType KeyType) (int, int) {
	var rl config.RateLimit
	var defaultRPM int

	switch keyType {
	case ProKey:
		rl = m.config.Pro
		defaultRPM = defaultProRPM
	case DemoKey:
		rl = m.config.Demo
		defaultRPM = defaultDemoRPM
	default:
		rl = m.config.NoKey
		defaultRPM = defaultNoKeyRPM
	}

	rpm := rl.RateLimitPerMinute
	if rpm <= 0 {
		rpm = defaultRPM
	}
	burst := rl.Burst
	if burst <= 0 {
		burst = 1
	}
	return rpm, burst
}

func limiterMapKey(key string, keyType KeyType) string {
	switch keyType {
	case ProKey:
		return "pro:" + key
	case DemoKey:
		return "demo:" + key
	default:
		return "nokey"
	}
}
