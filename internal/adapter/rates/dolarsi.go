// Package rates implements the exchange rate provider against a
// dolarsi-style quote source.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"github.com/macadden/monetary-movements-test/internal/domain"
)

var rateFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "exchange_rate_fetches_total",
		Help: "Total number of exchange rate fetches by outcome",
	},
	[]string{"status"},
)

// Client fetches buy rates from the external quote source. Every call is a
// fresh synchronous fetch: no cache, no retry. The only knob is the
// transport timeout.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient creates a new rates Client. url is the full endpoint returning
// the list of quotes.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
	}
}

// quote mirrors the source's wire format: a list of records wrapping a
// "casa" object with locale-formatted price strings.
type quote struct {
	Casa struct {
		Compra string `json:"compra"`
		Venta  string `json:"venta"`
		Nombre string `json:"nombre"`
	} `json:"casa"`
}

// FetchBuyRate returns the buy price for the quote whose display name
// exactly equals quoteName (case-sensitive). Any failure along the way
// wraps domain.ErrRateUnavailable.
func (c *Client) FetchBuyRate(ctx context.Context, quoteName string) (decimal.Decimal, error) {
	rate, err := c.fetchBuyRate(ctx, quoteName)
	if err != nil {
		rateFetchesTotal.WithLabelValues("error").Inc()
		return decimal.Zero, err
	}

	rateFetchesTotal.WithLabelValues("ok").Inc()

	return rate, nil
}

func (c *Client) fetchBuyRate(ctx context.Context, quoteName string) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", domain.ErrRateUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", domain.ErrRateUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: source returned status %d", domain.ErrRateUnavailable, resp.StatusCode)
	}

	var quotes []quote
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return decimal.Zero, fmt.Errorf("%w: malformed response: %v", domain.ErrRateUnavailable, err)
	}

	for _, q := range quotes {
		if q.Casa.Nombre == quoteName {
			rate, err := parseLocaleDecimal(q.Casa.Compra)
			if err != nil {
				return decimal.Zero, fmt.Errorf("%w: quote %q: %v", domain.ErrRateUnavailable, quoteName, err)
			}

			return rate, nil
		}
	}

	return decimal.Zero, fmt.Errorf("%w: quote %q not found", domain.ErrRateUnavailable, quoteName)
}

// parseLocaleDecimal parses a price formatted with "." as thousands
// separator and "," as decimal separator, e.g. "1.196,690" -> 1196.690.
func parseLocaleDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty price")
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("non-numeric price %q", s)
	}

	return d, nil
}
