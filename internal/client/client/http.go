package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/nauticalflow/internal/common"
	"github.com/dmitrijs2005/nauticalflow/internal/logging"
	"github.com/dmitrijs2005/nauticalflow/internal/metrics"
	"github.com/google/uuid"
)

const (
	loginEndpoint = "/api/login"
	pingEndpoint  = "/api/test"
)

// RequestOptions describe one gateway call.
type RequestOptions struct {
	// Method defaults to GET.
	Method string
	// Body is sent as JSON. []byte and json.RawMessage are sent unchanged.
	Body any
	// Header entries override the gateway's defaults.
	Header map[string]string
	// SkipAuth sends the request without a token and without treating a
	// 401 as the end of the session.
	SkipAuth bool
}

// Response is a successful backend answer. Body is nil when the backend
// sent no content.
type Response struct {
	Status int
	Body   json.RawMessage
}

func (r *Response) Empty() bool {
	return len(r.Body) == 0
}

// Decode unmarshals the body into v. It returns ErrNoContent for an empty
// response.
func (r *Response) Decode(v any) error {
	if r.Empty() {
		return ErrNoContent
	}
	return json.Unmarshal(r.Body, v)
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	terminator SessionTerminator
	log        logging.Logger
	newID      func() string
}

type Option func(*HTTPClient)

// WithTimeout bounds every request. Zero or less means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func NewHTTPClient(baseURL string, tokens TokenSource, terminator SessionTerminator, log logging.Logger, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
		terminator: terminator,
		log:        log,
		newID:      func() string { return uuid.NewString() },
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *HTTPClient) url(endpoint string) string {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return c.baseURL + endpoint
}

// Request sends one request to endpoint and classifies the answer. See the
// package documentation for the error kinds.
func (c *HTTPClient) Request(ctx context.Context, endpoint string, opts RequestOptions) (*Response, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	requestID := c.newID()
	log := c.log.With("method", method, "endpoint", endpoint, "request_id", requestID)

	body, err := encodeBody(opts.Body)
	if err != nil {
		return nil, &RequestError{Message: "could not encode request body", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(endpoint), body)
	if err != nil {
		return nil, &RequestError{Message: fmt.Sprintf("invalid request: %v", err), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)

	var tok string
	if !opts.SkipAuth {
		tok = c.token(ctx, log)
		if tok != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+tok)
		}
	}
	for k, v := range opts.Header {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(method, metrics.OutcomeUnavailable, start)
		log.Warn(ctx, "backend unreachable", "error", err)
		return nil, &RequestError{Message: "server unavailable: " + unwrapURLError(err).Error(), Err: errors.Join(ErrUnavailable, err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(method, metrics.OutcomeUnavailable, start)
		log.Warn(ctx, "response body lost", "status", resp.StatusCode, "error", err)
		return nil, &RequestError{Status: resp.StatusCode, Message: "server unavailable: response interrupted", Err: errors.Join(ErrUnavailable, err)}
	}
	log.Debug(ctx, "response received", "status", resp.StatusCode, "duration", time.Since(start))

	switch {
	case resp.StatusCode == http.StatusUnauthorized && !opts.SkipAuth:
		c.observe(method, metrics.OutcomeUnauthorized, start)
		log.Warn(ctx, "credential rejected, ending session")
		termErr := c.terminator.Terminate(ctx, tok)
		return nil, &RequestError{
			Status:  resp.StatusCode,
			Message: "session ended: " + serverMessage(resp, raw),
			Err:     errors.Join(ErrUnauthorized, termErr),
		}

	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.observe(method, metrics.OutcomeRejected, start)
		msg := serverMessage(resp, raw)
		log.Warn(ctx, "request rejected", "status", resp.StatusCode, "message", msg)
		return nil, &RequestError{Status: resp.StatusCode, Message: msg, Err: ErrRejected}

	case noContent(resp, raw):
		c.observe(method, metrics.OutcomeEmpty, start)
		return &Response{Status: resp.StatusCode}, nil

	case !json.Valid(raw):
		c.observe(method, metrics.OutcomeProtocol, start)
		log.Warn(ctx, "success response is not JSON", "status", resp.StatusCode)
		return nil, &RequestError{Status: resp.StatusCode, Message: "malformed response from server", Err: ErrProtocol}
	}

	c.observe(method, metrics.OutcomeOK, start)
	return &Response{Status: resp.StatusCode, Body: json.RawMessage(raw)}, nil
}

// token never fails the request: an unreadable store means no token, and
// the backend decides.
func (c *HTTPClient) token(ctx context.Context, log logging.Logger) string {
	if c.tokens == nil {
		return ""
	}
	tok, err := c.tokens.GetToken(ctx)
	if err != nil {
		log.Warn(ctx, "could not read token, sending without it", "error", err)
		return ""
	}
	return tok
}

func (c *HTTPClient) observe(method, outcome string, start time.Time) {
	metrics.GatewayRequests.WithLabelValues(method, outcome).Inc()
	metrics.GatewayDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

func encodeBody(v any) (io.Reader, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		return bytes.NewReader(b), nil
	case []byte:
		return bytes.NewReader(b), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(data), nil
	}
}

func noContent(resp *http.Response, raw []byte) bool {
	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusResetContent:
		return true
	}
	return resp.ContentLength == 0 || len(bytes.TrimSpace(raw)) == 0
}

var messageKeys = []string{"message", "error", "detail"}

// serverMessage picks the first non-empty string among the known message
// fields of a JSON object body, else the status text.
func serverMessage(resp *http.Response, raw []byte) string {
	var obj map[string]any
	if json.Unmarshal(raw, &obj) == nil {
		for _, k := range messageKeys {
			if s, ok := obj[k].(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return resp.Status
}

func unwrapURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) && ue.Err != nil {
		return ue.Err
	}
	return err
}
