// Package marketdata fetches spot prices for portfolio tickers. Crypto quotes
// come from CoinGecko, the USD/ARS rate from CriptoYa, and a small set of
// stock tickers is served from static base prices. Every successful lookup is
// cached for five minutes so dashboard refreshes don't hammer the providers.
package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/anonmateratzi/bolsillo-digital-pro/internal/apperrors"
	"github.com/anonmateratzi/bolsillo-digital-pro/internal/core/domain"
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

const (
	defaultCoinGeckoBaseURL = "https://api.coingecko.com/api/v3"
	defaultCriptoYaURL      = "https://criptoya.com/api/lemoncash/usdt/ars"

	quoteTTL       = 5 * time.Minute
	requestTimeout = 10 * time.Second

	usdRateCacheKey = "rate:usd-ars"
)

// FallbackUSDARS is the USD to ARS rate used when CriptoYa is unreachable.
var FallbackUSDARS = decimal.NewFromInt(1185)

// coinGeckoIDs maps supported crypto tickers to CoinGecko coin IDs.
var coinGeckoIDs = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"ADA":  "cardano",
	"SOL":  "solana",
	"DOGE": "dogecoin",
	"USDT": "tether",
	"USDC": "usd-coin",
}

// staticStockPrices holds USD base prices for stock tickers that have no live
// provider wired up.
var staticStockPrices = map[string]decimal.Decimal{
	"AAPL":  decimal.NewFromInt(150),
	"GOOGL": decimal.NewFromInt(2500),
	"MSFT":  decimal.NewFromInt(300),
	"TSLA":  decimal.NewFromInt(200),
	"AMZN":  decimal.NewFromInt(3000),
	"NVDA":  decimal.NewFromInt(400),
	"META":  decimal.NewFromInt(250),
}

// Config holds the client's endpoints. Zero values fall back to the public
// provider URLs; tests point them at an httptest server.
type Config struct {
	CoinGeckoBaseURL string
	CriptoYaURL      string
}

// Client implements the quote provider port against the public market-data
// APIs. Safe for concurrent use.
type Client struct {
	httpClient       *http.Client
	coinGeckoBaseURL string
	criptoYaURL      string
	quotes           *cache.Cache
	logger           *slog.Logger
}

// NewClient creates a market-data client with a shared HTTP client and quote cache.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.CoinGeckoBaseURL
	if baseURL == "" {
		baseURL = defaultCoinGeckoBaseURL
	}
	criptoYaURL := cfg.CriptoYaURL
	if criptoYaURL == "" {
		criptoYaURL = defaultCriptoYaURL
	}
	return &Client{
		httpClient:       &http.Client{Timeout: requestTimeout},
		coinGeckoBaseURL: strings.TrimRight(baseURL, "/"),
		criptoYaURL:      criptoYaURL,
		quotes:           cache.New(quoteTTL, 2*quoteTTL),
		logger:           logger,
	}
}

// GetSpotPrice returns the current USD price for a single ticker.
func (c *Client) GetSpotPrice(ctx context.Context, ticker string) (*domain.Quote, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if cached, found := c.quotes.Get(quoteCacheKey(ticker)); found {
		quote := cached.(domain.Quote)
		return &quote, nil
	}

	if _, ok := coinGeckoIDs[ticker]; ok {
		quotes, err := c.fetchCoinGecko(ctx, []string{ticker})
		if err != nil {
			return nil, err
		}
		quote, ok := quotes[ticker]
		if !ok {
			return nil, fmt.Errorf("%w: no quote returned for %s", apperrors.ErrNotFound, ticker)
		}
		return &quote, nil
	}

	if price, ok := staticStockPrices[ticker]; ok {
		quote := domain.Quote{Ticker: ticker, Price: price, Source: domain.QuoteSourceStatic}
		c.quotes.Set(quoteCacheKey(ticker), quote, cache.DefaultExpiration)
		return &quote, nil
	}

	return nil, fmt.Errorf("%w: unsupported ticker %s", apperrors.ErrNotFound, ticker)
}

// GetSpotPrices prices a batch of tickers with a single CoinGecko call for
// the crypto subset. Tickers that cannot be priced are simply absent from the
// result.
func (c *Client) GetSpotPrices(ctx context.Context, tickers []string) map[string]domain.Quote {
	results := make(map[string]domain.Quote, len(tickers))
	var cryptoMisses []string

	for _, raw := range tickers {
		ticker := strings.ToUpper(strings.TrimSpace(raw))
		if _, done := results[ticker]; done || ticker == "" {
			continue
		}
		if cached, found := c.quotes.Get(quoteCacheKey(ticker)); found {
			results[ticker] = cached.(domain.Quote)
			continue
		}
		if _, ok := coinGeckoIDs[ticker]; ok {
			cryptoMisses = append(cryptoMisses, ticker)
			continue
		}
		if price, ok := staticStockPrices[ticker]; ok {
			quote := domain.Quote{Ticker: ticker, Price: price, Source: domain.QuoteSourceStatic}
			c.quotes.Set(quoteCacheKey(ticker), quote, cache.DefaultExpiration)
			results[ticker] = quote
		}
	}

	if len(cryptoMisses) > 0 {
		quotes, err := c.fetchCoinGecko(ctx, cryptoMisses)
		if err != nil {
			c.logger.WarnContext(ctx, "coingecko batch fetch failed", slog.String("error", err.Error()), slog.Int("tickers", len(cryptoMisses)))
		}
		for ticker, quote := range quotes {
			results[ticker] = quote
		}
	}

	return results
}

// GetUSDARSRate returns the USD to ARS rate from CriptoYa's totalBid, or the
// hardcoded fallback (live=false) when the provider is unreachable.
func (c *Client) GetUSDARSRate(ctx context.Context) (decimal.Decimal, bool) {
	if cached, found := c.quotes.Get(usdRateCacheKey); found {
		return cached.(decimal.Decimal), true
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.criptoYaURL, nil)
	if err != nil {
		return FallbackUSDARS, false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "criptoya request failed, using fallback rate", slog.String("error", err.Error()))
		return FallbackUSDARS, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "criptoya returned non-OK status, using fallback rate", slog.Int("status", resp.StatusCode))
		return FallbackUSDARS, false
	}

	var payload struct {
		TotalBid float64 `json:"totalBid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.WarnContext(ctx, "failed to decode criptoya response, using fallback rate", slog.String("error", err.Error()))
		return FallbackUSDARS, false
	}
	if payload.TotalBid <= 0 {
		return FallbackUSDARS, false
	}

	rate := decimal.NewFromFloat(payload.TotalBid)
	c.quotes.Set(usdRateCacheKey, rate, cache.DefaultExpiration)
	return rate, true
}

// fetchCoinGecko prices the given crypto tickers via /simple/price and caches
// each returned quote.
func (c *Client) fetchCoinGecko(ctx context.Context, tickers []string) (map[string]domain.Quote, error) {
	idToTicker := make(map[string]string, len(tickers))
	ids := make([]string, 0, len(tickers))
	for _, ticker := range tickers {
		id, ok := coinGeckoIDs[ticker]
		if !ok {
			continue
		}
		idToTicker[id] = ticker
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	sort.Strings(ids)

	endpoint := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd&include_24hr_change=true",
		c.coinGeckoBaseURL, url.QueryEscape(strings.Join(ids, ",")))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call coingecko: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko returned status %d", resp.StatusCode)
	}

	var payload map[string]struct {
		USD       float64 `json:"usd"`
		USDChange float64 `json:"usd_24h_change"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode coingecko response: %w", err)
	}

	quotes := make(map[string]domain.Quote, len(payload))
	for id, entry := range payload {
		ticker, ok := idToTicker[id]
		if !ok || entry.USD <= 0 {
			continue
		}
		quote := domain.Quote{
			Ticker:        ticker,
			Price:         decimal.NewFromFloat(entry.USD),
			ChangePercent: decimal.NewFromFloat(entry.USDChange),
			Source:        domain.QuoteSourceCoinGecko,
		}
		c.quotes.Set(quoteCacheKey(ticker), quote, cache.DefaultExpiration)
		quotes[ticker] = quote
	}
	return quotes, nil
}

func quoteCacheKey(ticker string) string {
	return "quote:" + ticker
}
