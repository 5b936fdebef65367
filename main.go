package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/status-im/quote-fetcher/cache"
	"github.com/status-im/quote-fetcher/coingecko"
	"github.com/status-im/quote-fetcher/config"
)

// cliSecurity is the minimal security record behind a command-line ticker
type cliSecurity struct {
	ticker   string
	currency string
}

func (s *cliSecurity) TickerSymbol() string                 { return s.ticker }
func (s *cliSecurity) CurrencyCode() string                 { return s.currency }
func (s *cliSecurity) DisplayName() string                  { return strings.ToUpper(s.ticker) }
func (s *cliSecurity) PriceHistory() []coingecko.PricePoint { return nil }

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	currency := flag.String("currency", "", "quote currency (defaults to configuration)")
	preview := flag.Bool("preview", false, "fetch a two-month history preview instead of the latest quote")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("Usage: quote-fetcher [-config file] [-currency usd] [-preview] TICKER...")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	responseCache := cache.NewGoCache(5*time.Minute, 10*time.Minute)
	feed := coingecko.NewQuoteFeed(cfg, responseCache)

	for _, ticker := range flag.Args() {
		security := &cliSecurity{ticker: ticker, currency: *currency}

		if *preview {
			data := feed.PreviewHistoricalQuotes(security)
			for _, feedErr := range data.Errors {
				log.Printf("%s: %v", security.DisplayName(), feedErr)
			}
			for _, point := range data.Prices {
				fmt.Printf("%s %s %s\n", security.DisplayName(),
					point.Date.Format("2006-01-02"), formatQuote(point.Value))
			}
			continue
		}

		point, ok := feed.LatestQuote(security)
		if !ok {
			log.Printf("%s: no quote available", security.DisplayName())
			continue
		}
		fmt.Printf("%s %s %s\n", security.DisplayName(),
			point.Date.Format("2006-01-02"), formatQuote(point.Value))
	}
}

// formatQuote renders an integer-scaled quote value as a decimal string
func formatQuote(value int64) string {
	return decimal.New(value, -coingecko.QuotePriceScale).String()
}
