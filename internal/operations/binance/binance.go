package binance

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/adshao/go-binance/v2/futures"
	"golang.org/x/time/rate"
)

// Client wraps the Binance futures API with rate limiting and bounded
// retries for kline fetches.
type Client struct {
	client      *futures.Client
	rateLimiter *rate.Limiter
	httpClient  *http.Client
}

func NewClient(apiKey, secretKey string) *Client {
	// Custom HTTP client with timeouts
	httpClient := &http.Client{
		Timeout: time.Second * 10,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	futuresClient := futures.NewClient(apiKey, secretKey)
	futuresClient.HTTPClient = httpClient

	// 10 requests per second with burst of 20
	limiter := rate.NewLimiter(rate.Limit(10), 20)

	return &Client{
		client:      futuresClient,
		rateLimiter: limiter,
		httpClient:  httpClient,
	}
}

// GetKlines fetches the most recent limit klines for a symbol and interval.
func (c *Client) GetKlines(ctx context.Context, symbol, interval string, limit int) ([]*futures.Kline, error) {
	var klines []*futures.Kline
	maxRetries := 3
	backoff := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := c.rateLimiter.Wait(ctx)
		if err != nil {
			return nil, err
		}

		klines, err = c.client.NewKlinesService().
			Symbol(symbol).
			Interval(interval).
			Limit(limit).
			Do(ctx)

		if err == nil {
			return klines, nil
		}

		if attempt == maxRetries {
			return nil, err
		}

		// Exponential backoff between attempts
		waitTime := time.Duration(math.Pow(2, float64(attempt))) * backoff

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(waitTime):
			continue
		}
	}

	return klines, nil
}

// MarketBuy places a market buy order for the given base-currency quantity.
func (c *Client) MarketBuy(ctx context.Context, pair string, quantity float64) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	_, err := c.client.NewCreateOrderService().
		Symbol(pair).
		Side(futures.SideTypeBuy).
		Type(futures.OrderTypeMarket).
		Quantity(formatQuantity(quantity)).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("market buy %s: %w", pair, err)
	}
	return nil
}

// MarketSell places a market sell order for the given base-currency quantity.
func (c *Client) MarketSell(ctx context.Context, pair string, quantity float64) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	_, err := c.client.NewCreateOrderService().
		Symbol(pair).
		Side(futures.SideTypeSell).
		Type(futures.OrderTypeMarket).
		Quantity(formatQuantity(quantity)).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("market sell %s: %w", pair, err)
	}
	return nil
}

func formatQuantity(quantity float64) string {
	return fmt.Sprintf("%.8f", quantity)
}
