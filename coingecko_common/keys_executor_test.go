package coingecko_common

import (
	"errors"
	"testing"

	"github.com/status-im/quote-fetcher/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryWithKeys_FirstKeySucceeds(t *testing.T) {
	keys := []APIKey{{Key: "pro-1", Type: ProKey}, {Key: "", Type: NoKey}}

	var attempts int
	result, err := TryWithKeys(keys, "Test", func(apiKey APIKey) (interface{}, bool, error) {
		attempts++
		return "data", true, nil
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "data", result)
	assert.Equal(t, 1, attempts)
}

func TestTryWithKeys_FallsThroughToNextKey(t *testing.T) {
	keys := []APIKey{{Key: "pro-1", Type: ProKey}, {Key: "", Type: NoKey}}

	var failed []APIKey
	result, err := TryWithKeys(keys, "Test", func(apiKey APIKey) (interface{}, bool, error) {
		if apiKey.Type == ProKey {
			return nil, false, errors.New("unauthorized")
		}
		return "fallback", true, nil
	}, func(apiKey APIKey, err error) {
		failed = append(failed, apiKey)
	})

	require.NoError(t, err)
	assert.Equal(t, "fallback", result)
	require.Len(t, failed, 1)
	assert.Equal(t, "pro-1", failed[0].Key)
}

func TestTryWithKeys_AllKeysFail(t *testing.T) {
	keys := []APIKey{{Key: "pro-1", Type: ProKey}, {Key: "", Type: NoKey}}

	_, err := TryWithKeys(keys, "Test", func(apiKey APIKey) (interface{}, bool, error) {
		return nil, false, errors.New("boom")
	}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "all keys exhausted")
	assert.Contains(t, err.Error(), "boom")
}

func TestTryWithKeys_NoKeys(t *testing.T) {
	_, err := TryWithKeys(nil, "Test", func(apiKey APIKey) (interface{}, bool, error) {
		t.Fatal("executor must not run without keys")
		return nil, false, nil
	}, nil)

	assert.Error(t, err)
}

func TestCreateFailCallback_MarksKey(t *testing.T) {
	manager := NewAPIKeyManager(&config.APITokens{Tokens: []string{"pro-1", "pro-2"}})
	onFailed := CreateFailCallback(manager)

	onFailed(APIKey{Key: "pro-1", Type: ProKey}, errors.New("unauthorized"))

	assert.True(t, manager.isKeyInBackoff("pro-1"))
	assert.False(t, manager.isKeyInBackoff("pro-2"))
}
