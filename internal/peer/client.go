// Package peer содержит HTTP-клиент для запроса агрегатов у другого
// экземпляра сервиса (или у самого себя) по его публичному API.
package peer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/magabrotheeeer/sales-statistics/internal/models"
)

// ErrUnexpectedStatus возвращается, если peer ответил не 2xx.
var ErrUnexpectedStatus = errors.New("unexpected status")

const (
	EndpointStatistics = "/statistics"
	EndpointItems      = "/items"
	EndpointCategories = "/categories"
)

const (
	outcomeOK          = "ok"
	outcomeTransport   = "transport_error"
	outcomeBadStatus   = "bad_status"
	outcomeDecodeError = "decode_error"
)

// Client обращается к /statistics, /items и /categories по базовому URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	requests   *prometheus.CounterVec
}

// NewClient создаёт клиент. timeout == 0 означает отсутствие таймаута.
// Если reg == nil, метрики не регистрируются.
func NewClient(baseURL string, timeout time.Duration, reg prometheus.Registerer) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "peer_requests_total",
			Help: "Requests made to the peer statistics API.",
		}, []string{"endpoint", "outcome"}),
	}
}

// Statistics запрашивает сводку продаж за месяц.
func (c *Client) Statistics(ctx context.Context, month int) (models.Statistics, error) {
	var res models.Statistics
	err := c.get(ctx, EndpointStatistics, month, &res)
	return res, err
}

// PriceRanges запрашивает гистограмму цен за месяц.
func (c *Client) PriceRanges(ctx context.Context, month int) (models.PriceRanges, error) {
	var res models.PriceRanges
	err := c.get(ctx, EndpointItems, month, &res)
	return res, err
}

// Categories запрашивает подсчёт по категориям за месяц.
func (c *Client) Categories(ctx context.Context, month int) ([]models.CategoryCount, error) {
	res := []models.CategoryCount{}
	err := c.get(ctx, EndpointCategories, month, &res)
	return res, err
}

func (c *Client) get(ctx context.Context, endpoint string, month int, out any) error {
	op := "peer.get" + endpoint

	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	q := u.Query()
	q.Set("month", strconv.Itoa(month))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.requests.WithLabelValues(endpoint, outcomeTransport).Inc()
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.requests.WithLabelValues(endpoint, outcomeBadStatus).Inc()
		return fmt.Errorf("%s: %w: %s", op, ErrUnexpectedStatus, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.requests.WithLabelValues(endpoint, outcomeDecodeError).Inc()
		return fmt.Errorf("%s: decode response: %w", op, err)
	}

	c.requests.WithLabelValues(endpoint, outcomeOK).Inc()
	return nil
}
