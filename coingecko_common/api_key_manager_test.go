package coingecko_common

import (
	"testing"
	"time"

	"github.com/status-im/quote-fetcher/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyManager_GetAvailableKeys(t *testing.T) {
	tests := []struct {
		name   string
		tokens *config.APITokens
		want   []APIKey
	}{
		{
			name:   "No tokens yields only the no-key entry",
			tokens: &config.APITokens{},
			want:   []APIKey{{Key: "", Type: NoKey}},
		},
		{
			name:   "Pro and demo keys ordered, no-key last",
			tokens: &config.APITokens{Tokens: []string{"pro-1"}, DemoTokens: []string{"demo-1"}},
			want: []APIKey{
				{Key: "pro-1", Type: ProKey},
				{Key: "demo-1", Type: DemoKey},
				{Key: "", Type: NoKey},
			},
		},
		{
			name:   "Nil tokens",
			tokens: nil,
			want:   []APIKey{{Key: "", Type: NoKey}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := NewAPIKeyManager(tt.tokens)
			assert.Equal(t, tt.want, manager.GetAvailableKeys())
		})
	}
}

func TestAPIKeyManager_Backoff(t *testing.T) {
	manager := NewAPIKeyManager(&config.APITokens{Tokens: []string{"pro-1", "pro-2"}})

	manager.MarkKeyAsFailed("pro-1")

	keys := manager.GetAvailableKeys()
	require.Len(t, keys, 2)
	assert.Equal(t, APIKey{Key: "pro-2", Type: ProKey}, keys[0])
	assert.Equal(t, NoKey, keys[1].Type)
}

func TestAPIKeyManager_SingleProKeySurvivesBackoff(t *testing.T) {
	manager := NewAPIKeyManager(&config.APITokens{Tokens: []string{"only-pro"}})

	manager.MarkKeyAsFailed("only-pro")

	keys := manager.GetAvailableKeys()
	require.Len(t, keys, 2)
	assert.Equal(t, APIKey{Key: "only-pro", Type: ProKey}, keys[0])
}

func TestAPIKeyManager_BackoffExpires(t *testing.T) {
	manager := NewAPIKeyManager(&config.APITokens{Tokens: []string{"pro-1", "pro-2"}})
	manager.backoffTime = 10 * time.Millisecond

	manager.MarkKeyAsFailed("pro-1")
	time.Sleep(30 * time.Millisecond)

	keys := manager.GetAvailableKeys()
	assert.Contains(t, keys, APIKey{Key: "pro-1", Type: ProKey})
}

func TestAPIKeyManager_MarkEmptyKeyIgnored(t *testing.T) {
	manager := NewAPIKeyManager(&config.APITokens{})
	manager.MarkKeyAsFailed("")
	assert.Empty(t, manager.lastFailed)
}
