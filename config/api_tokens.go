package config

import (
	"encoding/json"
	"os"
)

// APITokens holds CoinGecko API keys. Pro keys go to Tokens, demo keys
// to DemoTokens; both lists may be empty for anonymous access.
type APITokens struct {
	Tokens     []string `json:"api_tokens"`
	DemoTokens []string `json:"demo_api_tokens,omitempty"`
}

func LoadAPITokens(filename string) (*APITokens, error) {
	// Missing file means anonymous access, not an error
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return &APITokens{Tokens: []string{}}, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var tokens APITokens
	err = json.Unmarshal(data, &tokens)
	return &tokens, err
}
