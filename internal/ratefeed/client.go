package ratefeed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/Simplici0/freight/internal/currency"
)

const maxBodyBytes = 1 << 20

// FeedCodes are the currencies requested from the remote feed.
var FeedCodes = []string{"USD", "GBP", "CAD", "ZAR", "TND", "MAD"}

// Pegged holds rates the feed does not publish. FCFA is pegged to the euro.
var Pegged = currency.Table{
	"FCFA": 655.957,
	"GHS":  15.8,
	"KES":  165,
}

// ErrUnexpectedStatus is returned when the feed answers with a non-200 status.
var ErrUnexpectedStatus = errors.New("unexpected rate feed status")

type feedResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// Client fetches the latest EUR-based rates from a frankfurter-compatible endpoint.
type Client struct {
	httpClient *http.Client
	url        string
	retries    uint64
	log        *zap.Logger
	newBackOff func() backoff.BackOff
}

// NewClient returns a Client. retries is the number of extra attempts after the first failure.
func NewClient(feedURL string, timeout time.Duration, retries int, log *zap.Logger) *Client {
	if retries < 0 {
		retries = 0
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        feedURL,
		retries:    uint64(retries),
		log:        log,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
}

// Fetch returns a complete, validated table. Missing feed codes keep their default rate.
func (c *Client) Fetch(ctx context.Context) (currency.Table, error) {
	endpoint, err := c.endpoint()
	if err != nil {
		return nil, err
	}

	var resp feedResponse
	attempt := 0
	err = backoff.Retry(
		func() error {
			attempt++
			var fetchErr error
			resp, fetchErr = c.get(ctx, endpoint)
			if fetchErr != nil {
				c.log.Warn("rate feed attempt failed", zap.Int("attempt", attempt), zap.Error(fetchErr))
			}
			return fetchErr
		},
		backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), c.retries), ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("fetch exchange rates: %w", err)
	}

	table, err := buildTable(resp)
	if err != nil {
		return nil, err
	}
	c.log.Debug("rate feed fetched", zap.String("date", resp.Date), zap.Int("currencies", len(resp.Rates)))
	return table, nil
}

func (c *Client) endpoint() (string, error) {
	u, err := url.Parse(c.url)
	if err != nil {
		return "", fmt.Errorf("parse rate feed url: %w", err)
	}
	q := u.Query()
	q.Set("from", currency.Base)
	q.Set("to", strings.Join(FeedCodes, ","))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) get(ctx context.Context, endpoint string) (feedResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return feedResponse{}, backoff.Permanent(fmt.Errorf("build rate feed request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return feedResponse{}, fmt.Errorf("request rate feed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
		if res.StatusCode >= 400 && res.StatusCode < 500 && res.StatusCode != http.StatusTooManyRequests {
			return feedResponse{}, backoff.Permanent(statusErr)
		}
		return feedResponse{}, statusErr
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return feedResponse{}, fmt.Errorf("read rate feed body: %w", err)
	}

	var out feedResponse
	if err := sonic.Unmarshal(body, &out); err != nil {
		return feedResponse{}, backoff.Permanent(fmt.Errorf("decode rate feed body: %w", err))
	}
	return out, nil
}

func buildTable(resp feedResponse) (currency.Table, error) {
	if resp.Base != "" && currency.Normalize(resp.Base) != currency.Base {
		return nil, fmt.Errorf("rate feed base is %q, want %s", resp.Base, currency.Base)
	}

	table := currency.DefaultTable()
	for code, rate := range resp.Rates {
		if rate > 0 {
			table[currency.Normalize(code)] = rate
		}
	}
	for code, rate := range Pegged {
		table[code] = rate
	}
	table[currency.Base] = 1

	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("validate fetched rates: %w", err)
	}
	return table, nil
}
