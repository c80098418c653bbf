package ethereum

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/web3wallet/wallet-mcp/internal/mcperr"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	priceRequestTimeout = 10 * time.Second

	// Client-side throttle toward the price API.
	priceRatePerSecond = 5
	priceRateBurst     = 10
)

// PriceClient calls the token-price-by-address endpoint. Failures are
// classified through the taxonomy and recoverable ones retried using the
// taxonomy's delay and retry-budget metadata.
type PriceClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewPriceClient builds a client for the given API base URL and key. The
// key is path-embedded per the upstream API shape.
func NewPriceClient(baseURL, apiKey string, logger *slog.Logger) *PriceClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &PriceClient{
		http:    &http.Client{Timeout: priceRequestTimeout},
		baseURL: baseURL,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(priceRatePerSecond, priceRateBurst),
		logger:  logger,
	}
}

type priceRequest struct {
	Addresses []priceRequestAddress `json:"addresses"`
}

type priceRequestAddress struct {
	Network string `json:"network"`
	Address string `json:"address"`
}

type priceResponse struct {
	Data []struct {
		Prices []struct {
			Currency string `json:"currency"`
			Value    string `json:"value"`
		} `json:"prices"`
	} `json:"data"`
}

// TokenPriceUSD returns the USD price of a token. Recoverable errors are
// retried with the taxonomy's backoff until its per-kind budget runs out.
func (p *PriceClient) TokenPriceUSD(ctx context.Context, tokenAddress string) (decimal.Decimal, error) {
	var lastErr error
	for attempt := uint(0); ; attempt++ {
		price, err := p.fetch(ctx, tokenAddress)
		if err == nil {
			return price, nil
		}
		lastErr = err

		if !mcperr.IsRecoverable(err) || attempt+1 >= mcperr.MaxRetries(err) {
			break
		}

		delay := mcperr.RetryDelay(err, attempt)
		p.logger.Debug("Retrying price fetch",
			"token_address", tokenAddress,
			"attempt", attempt+1,
			"delay", delay,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return decimal.Zero, mcperr.Wrap(mcperr.KindTimeout, ctx.Err())
		case <-time.After(delay):
		}
	}
	return decimal.Zero, lastErr
}

func (p *PriceClient) fetch(ctx context.Context, tokenAddress string) (decimal.Decimal, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return decimal.Zero, mcperr.Wrap(mcperr.KindTimeout, err)
	}

	body, err := json.Marshal(priceRequest{
		Addresses: []priceRequestAddress{{Network: "eth-mainnet", Address: tokenAddress}},
	})
	if err != nil {
		return decimal.Zero, mcperr.Wrap(mcperr.KindSerialization, err)
	}

	url := fmt.Sprintf("%s/%s/tokens/by-address", p.baseURL, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return decimal.Zero, mcperr.Wrap(mcperr.KindHTTP, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return decimal.Zero, mcperr.Errorf(mcperr.KindNetwork, "Failed to call price API: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return decimal.Zero, mcperr.Errorf(mcperr.KindAPIRateLimitExceeded, "price API returned status: %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, mcperr.Errorf(mcperr.KindPriceFetchFailed, "price API returned status: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, mcperr.Errorf(mcperr.KindNetwork, "Failed to read price API response: %v", err)
	}

	var parsed priceResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return decimal.Zero, mcperr.Errorf(mcperr.KindPriceFetchFailed, "Failed to parse price API response: %v", err)
	}

	// First price entry of the first returned token record.
	if len(parsed.Data) > 0 && len(parsed.Data[0].Prices) > 0 {
		value := parsed.Data[0].Prices[0].Value
		price, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.Zero, mcperr.New(mcperr.KindPriceFetchFailed, "Failed to parse price value")
		}
		return price, nil
	}

	return decimal.Zero, mcperr.New(mcperr.KindPriceFetchFailed, "No price data found in price API response")
}
