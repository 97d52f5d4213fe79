package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Kind classifies an upstream failure
type Kind string

const (
	KindTimeout Kind = "timeout"
	KindHTTP    Kind = "http"
	KindNetwork Kind = "network"
	KindDecode  Kind = "decode"
)

// Error is a typed upstream failure. Upstream identifies which API failed
// so that callers can report the failing leg of composite lookups.
type Error struct {
	Upstream string
	Kind     Kind
	Status   int // set for KindHTTP
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("upstream error (%s): status %d", e.Upstream, e.Status)
	default:
		return fmt.Sprintf("upstream error (%s): %s: %v", e.Upstream, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client issues GET requests to upstream APIs with a bounded timeout and an
// identifying User-Agent (required by the NWS API). No retries are performed;
// a failed call fails the whole tool invocation.
type Client struct {
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

// NewClient creates a fetch client shared by all provider clients
func NewClient(timeout time.Duration, userAgent string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		logger:     logger.With("component", "fetch-client"),
	}
}

// GetJSON performs a GET against rawURL with the given query parameters and
// extra headers, decoding the JSON body into out. All failures come back as
// a *Error tagged with the upstream name.
func (c *Client) GetJSON(ctx context.Context, upstream, rawURL string, query url.Values, headers map[string]string, out any) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return &Error{Upstream: upstream, Kind: KindNetwork, Err: fmt.Errorf("failed to parse URL: %w", err)}
	}
	if len(query) > 0 {
		q := u.Query()
		for key, values := range query {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return &Error{Upstream: upstream, Kind: KindNetwork, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	c.logger.Debug("fetching upstream", "upstream", upstream, "url", u.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		kind := KindNetwork
		if errors.Is(err, context.DeadlineExceeded) {
			kind = KindTimeout
		}
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			kind = KindTimeout
		}
		c.logger.Error("upstream request failed", "upstream", upstream, "kind", string(kind), "error", err)
		return &Error{Upstream: upstream, Kind: kind, Err: err}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("upstream returned error status",
			"upstream", upstream,
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return &Error{Upstream: upstream, Kind: KindHTTP, Status: resp.StatusCode, Err: fmt.Errorf("fetch returned status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode upstream response", "upstream", upstream, "error", err)
		return &Error{Upstream: upstream, Kind: KindDecode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}

// AsError extracts a *Error from an error chain, reporting whether one was found
func AsError(err error) (*Error, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
