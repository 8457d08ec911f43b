// Package backend is the single chokepoint through which every domain
// operation reaches the data-owning backend service. Calls declare the
// exact status code that counts as success; anything else is a typed
// failure, never a panic and never a raw transport error.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

var (
	// ErrUnavailable covers transport failures, timeouts and exhausted
	// retries: the backend could not give a usable answer.
	ErrUnavailable = errors.New("backend unavailable")
	// ErrUnexpectedStatus means the backend answered with a status other
	// than the one the caller declared as success. Callers treat it as
	// "no data", but the reason stays distinguishable via errors.Is.
	ErrUnexpectedStatus = errors.New("unexpected backend status")
)

// retryableStatus is the transient set retried on idempotent-safe methods.
var retryableStatus = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

var retryableMethod = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodOptions: true,
}

const retryInterval = 500 * time.Millisecond

type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64
	log        *slog.Logger
}

func New(baseURL string, timeout time.Duration, maxRetries int, logger *slog.Logger) *Client {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		maxRetries: uint64(maxRetries),
		log:        logger.With(slog.String("component", "backend_client")),
	}
}

// do performs one backend call and returns the raw response body iff the
// response status equals wantStatus.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any, wantStatus int) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
	}

	var gotStatus int
	var gotBody []byte
	attempt := func() error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		res, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("do request: %w", err)
		}
		defer res.Body.Close()

		raw, err := io.ReadAll(res.Body)
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}

		gotStatus = res.StatusCode
		gotBody = raw
		if gotStatus != wantStatus && retryableStatus[gotStatus] && retryableMethod[method] {
			return fmt.Errorf("transient status %d", gotStatus)
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(retryInterval), c.maxRetries),
		ctx,
	)
	if err := backoff.Retry(attempt, policy); err != nil {
		c.log.Error("backend request failed",
			"method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if gotStatus != wantStatus {
		// A transient status on a non-retried method still means the
		// backend is struggling, not that the resource is absent.
		if retryableStatus[gotStatus] {
			c.log.Error("backend request failed",
				"method", method, "path", path, "status", gotStatus)
			return nil, fmt.Errorf("%w: status %d", ErrUnavailable, gotStatus)
		}
		c.log.Warn("backend status mismatch",
			"method", method, "path", path, "got", gotStatus, "want", wantStatus)
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnexpectedStatus, gotStatus, wantStatus)
	}
	return gotBody, nil
}

// doJSON runs do and decodes the body into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, params url.Values, body, out any, wantStatus int) error {
	raw, err := c.do(ctx, method, path, params, body, wantStatus)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Error("decode backend response failed",
			"method", method, "path", path, "error", err)
		return fmt.Errorf("decode backend response: %w", err)
	}
	return nil
}
