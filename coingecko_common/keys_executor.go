package coingecko_common

import (
	"fmt"
	"log"
)

// KeyExecutor attempts an operation with a given API key. It returns the
// result, whether the attempt succeeded, and any error.
type KeyExecutor func(apiKey APIKey) (interface{}, bool, error)

// KeyFailCallback is invoked when an attempt with a key fails
type KeyFailCallback func(apiKey APIKey, err error)

// CreateFailCallback returns a callback that marks failed keys in the key manager
func CreateFailCallback(keyManager IAPIKeyManager) KeyFailCallback {
	return func(apiKey APIKey, err error) {
		if apiKey.Key != "" {
			keyManager.MarkKeyAsFailed(apiKey.Key)
		}
	}
}

// TryWithKeys runs the executor with each key in order until one succeeds.
// Failed attempts trigger onFailed and fall through to the next key.
func TryWithKeys(keys []APIKey, logPrefix string, executor KeyExecutor, onFailed KeyFailCallback) (interface{}, error) {
	var lastErr error

	for _, key := range keys {
		result, ok, err := executor(key)
		if ok && err == nil {
			return result, nil
		}

		if err != nil {
			lastErr = err
			log.Printf("%s: Attempt with key type %v failed: %v", logPrefix, key.Type, err)
			if onFailed != nil {
				onFailed(key, err)
			}
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no API keys available")
	}
	return nil, fmt.Errorf("%s: all keys exhausted: %w", logPrefix, lastErr)
}
