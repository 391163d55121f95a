package rpc

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/lthibault/log"
	"github.com/prometheus/client_golang/prometheus"
	uberatomic "go.uber.org/atomic"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "zmsg/0.1.0"
)

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithLogger(l log.Logger) Option {
	return func(c *Client) {
		c.l = l
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// Client speaks JSON-RPC 1.1 over a single persistent HTTP connection. Calls
// are serialized; there is never more than one request in flight.
type Client struct {
	url       string
	auth      string
	userAgent string
	timeout   time.Duration

	transport *http.Transport
	hc        *http.Client

	mu     sync.Mutex
	closed bool
	ids    uberatomic.Uint64

	l log.Logger
	m Metrics
}

func NewClient(ep Endpoint, opts ...Option) (c *Client, err error) {
	if err := ep.Validate(); err != nil {
		return nil, err
	}

	c = &Client{
		url:       ep.URL(),
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.l == nil {
		c.l = log.New()
	}
	c.l = c.l.WithField("service", "rpc-client").With(ep)

	c.transport = &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        1,
		MaxIdleConnsPerHost: 1,
		MaxConnsPerHost:     1,
		IdleConnTimeout:     90 * time.Second,
	}
	defer func() {
		if err != nil {
			c.transport.CloseIdleConnections()
		}
	}()

	if _, err = http.NewRequest(http.MethodPost, c.url, nil); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEndpoint, err.Error())
	}

	c.hc = &http.Client{
		Transport: c.transport,
		Timeout:   c.timeout,
	}
	c.auth = "Basic " + base64.StdEncoding.EncodeToString([]byte(ep.Username+":"+ep.Password))
	c.initMetrics()

	return c, nil
}

// Close releases the connection. Calls made afterwards fail with ErrClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.transport.CloseIdleConnections()
	return nil
}

// NewRequest stamps a request with the next id.
func (c *Client) NewRequest(method string, params ...any) Request {
	if params == nil {
		params = []any{}
	}
	return Request{
		Version: Version,
		Method:  method,
		Params:  params,
		ID:      c.ids.Inc(),
	}
}

// Call invokes method and returns the raw result.
//
// The id of the response is not checked against the request: with one call in
// flight per connection there is nothing it could be confused with. A
// mismatch is only logged.
func (c *Client) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}

	req := c.NewRequest(method, params...)
	logger := c.l.With(req)

	t := prometheus.NewTimer(c.m.Duration.WithLabelValues(method))
	defer t.ObserveDuration()

	result, err := c.call(ctx, logger, req)
	c.m.Calls.WithLabelValues(method, resultLabel(err)).Inc()
	if err != nil {
		logger.WithError(err).Debug("call failed")
		return nil, err
	}
	logger.Trace("call succeeded")
	return result, nil
}

// CallFor invokes method and decodes the result into out. Numbers keep their
// exact form: decode amounts into structs.Amount, not float64.
func (c *Client) CallFor(ctx context.Context, out any, method string, params ...any) error {
	result, err := c.Call(ctx, method, params...)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(result))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s result: %w", ErrTransport, method, err)
	}
	return nil
}

func (c *Client) call(ctx context.Context, logger log.Logger, req Request) (json.RawMessage, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %w", ErrTransport, err)
	}

	status, raw, err := c.post(ctx, body)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("%w: http status %d: decode response: %w", ErrTransport, status, err)
	}

	if e, ok := fields["error"]; ok && !isNull(e) {
		eo := &errorObject{}
		if err := json.Unmarshal(e, eo); err != nil {
			return nil, fmt.Errorf("%w: decode error member: %w", ErrTransport, err)
		}
		return nil, eo.err()
	}

	if id, ok := fields["id"]; ok && string(bytes.TrimSpace(id)) != strconv.FormatUint(req.ID, 10) {
		logger.WithField("responseID", string(id)).Debug("response id does not match request")
	}

	result, ok := fields["result"]
	if !ok {
		return nil, NewError(CodeMissingResult, "missing JSON-RPC result")
	}
	return result, nil
}

// Batch sends several requests in one round trip. Responses are returned as
// the node sent them; use Response.Err to classify failures.
func (c *Client) Batch(ctx context.Context, reqs []Request) ([]Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}

	body, err := json.Marshal(reqs)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal batch: %w", ErrTransport, err)
	}

	status, raw, err := c.post(ctx, body)
	c.m.Calls.WithLabelValues("batch", resultLabel(err)).Inc()
	if err != nil {
		return nil, err
	}

	var resps []Response
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&resps); err != nil {
		return nil, fmt.Errorf("%w: http status %d: decode batch response: %w", ErrTransport, status, err)
	}
	return resps, nil
}

// post performs the HTTP round trip. The node answers RPC errors with a 500
// and a JSON body, so only an unusable body is treated as an HTTP failure.
func (c *Client) post(ctx context.Context, body []byte) (status int, raw []byte, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: build request: %w", ErrTransport, err)
	}
	req.Header.Set("Authorization", c.auth)
	req.Header.Set("Content-type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err = io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: read response: %w", ErrTransport, err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		if resp.StatusCode >= http.StatusMultipleChoices {
			return resp.StatusCode, nil, fmt.Errorf("%w: http status %s", ErrTransport, resp.Status)
		}
		return resp.StatusCode, nil, NewError(CodeMissingResponse, "missing HTTP response from server")
	}

	return resp.StatusCode, raw, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null"
}

func resultLabel(err error) string {
	switch err.(type) {
	case nil:
		return "ok"
	case *Error:
		return "rpc_error"
	default:
		return "transport_error"
	}
}
