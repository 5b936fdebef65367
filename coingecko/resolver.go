package coingecko

import (
	"log"
	"strings"
	"sync"
	"sync/atomic"
)

// TickerResolver maps ticker symbols to CoinGecko coin IDs. The API only
// allows fetching the complete set of ID mappings, so the catalog is
// fetched once per process lifetime and kept in memory (~10k entries).
//
// The map is built lazily under a mutex: concurrent first callers block
// until a single catalog fetch completes, later callers take the atomic
// fast path without locking. A failed fetch leaves the cache unpopulated
// so a subsequent call retries instead of serving an empty map forever.
type TickerResolver struct {
	client IAPIClient

	mu  sync.Mutex
	ids atomic.Pointer[map[string]string]
}

// NewTickerResolver creates a resolver that populates itself from the
// given client's coin catalog
func NewTickerResolver(client IAPIClient) *TickerResolver {
	return &TickerResolver{client: client}
}

// NewTickerResolverWithMap creates a resolver pre-seeded with a
// ready-made mapping; no catalog fetch will occur
func NewTickerResolverWithMap(tickerIDMap map[string]string) *TickerResolver {
	r := &TickerResolver{}
	r.ids.Store(&tickerIDMap)
	return r
}

// ResolveID returns the CoinGecko coin ID for a ticker symbol. Lookup is
// case-insensitive; catalog symbols are stored as reported by the
// provider (lower-case in practice).
func (r *TickerResolver) ResolveID(ticker string) (string, error) {
	tickerIDMap, err := r.tickerIDMap()
	if err != nil {
		return "", &MissingTickerError{Symbol: ticker, Cause: err}
	}

	id, ok := tickerIDMap[strings.ToLower(ticker)]
	if !ok {
		return "", &MissingTickerError{Symbol: ticker}
	}

	return id, nil
}

// tickerIDMap returns the cached mapping, building it on first use
func (r *TickerResolver) tickerIDMap() (map[string]string, error) {
	if m := r.ids.Load(); m != nil {
		return *m, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another caller may have built the map while we waited
	if m := r.ids.Load(); m != nil {
		return *m, nil
	}

	entries, err := r.client.FetchCoinsList()
	if err != nil {
		return nil, err
	}

	tickerIDMap := make(map[string]string, len(entries))
	for _, entry := range entries {
		tickerIDMap[entry.Symbol] = entry.ID
	}

	log.Printf("TickerResolver: Built ticker map with %d entries", len(tickerIDMap))

	r.ids.Store(&tickerIDMap)
	return tickerIDMap, nil
}
