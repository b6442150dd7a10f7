package httpx

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout             = 30 * time.Second
	DefaultMaxConnsPerHost     = 64
	DefaultMaxIdleConnDuration = 10 * time.Second
	DefaultMaxResponseBodySize = 64 * 1024 * 1024
)

type FastHTTPClientOptions struct {
	Timeout             time.Duration
	InsecureSkipVerify  bool
	MaxConnsPerHost     int
	MaxIdleConnDuration time.Duration
	MaxResponseBodySize int
}

type FastHTTPClientOption func(*FastHTTPClientOptions)

func WithTimeout(timeout time.Duration) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.Timeout = timeout
	}
}

func WithInsecureSkipVerify(skip bool) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.InsecureSkipVerify = skip
	}
}

func WithMaxConnsPerHost(max int) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.MaxConnsPerHost = max
	}
}

// NewFastHTTPClient builds the shared outbound client used to talk to model
// servers.
func NewFastHTTPClient(opts ...FastHTTPClientOption) *fasthttp.Client {
	options := &FastHTTPClientOptions{
		Timeout:             DefaultTimeout,
		MaxConnsPerHost:     DefaultMaxConnsPerHost,
		MaxIdleConnDuration: DefaultMaxIdleConnDuration,
		MaxResponseBodySize: DefaultMaxResponseBodySize,
	}
	for _, opt := range opts {
		opt(options)
	}

	client := &fasthttp.Client{
		MaxConnsPerHost:     options.MaxConnsPerHost,
		MaxIdleConnDuration: options.MaxIdleConnDuration,
		MaxResponseBodySize: options.MaxResponseBodySize,
		ReadTimeout:         options.Timeout,
		WriteTimeout:        options.Timeout,
	}
	if options.InsecureSkipVerify {
		client.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // intentionally configurable
		}
	}
	return client
}

// Doer is the subset of *fasthttp.Client used by the model clients.
type Doer interface {
	DoTimeout(req *fasthttp.Request, resp *fasthttp.Response, timeout time.Duration) error
}

type Response struct {
	StatusCode int
	Body       []byte
}

// PostJSON sends body to url and returns the decoded response body. The call
// is bounded by the smaller of timeout and the context deadline.
func PostJSON(
	ctx context.Context,
	client Doer,
	url string,
	headers map[string]string,
	body []byte,
	timeout time.Duration,
) (*Response, error) {
	return do(ctx, client, fasthttp.MethodPost, url, headers, body, timeout)
}

// GetJSON is PostJSON for requests without a body.
func GetJSON(
	ctx context.Context,
	client Doer,
	url string,
	headers map[string]string,
	timeout time.Duration,
) (*Response, error) {
	return do(ctx, client, fasthttp.MethodGet, url, headers, nil, timeout)
}

// requestTimeout clamps timeout to the context deadline. A deadline that has
// already passed fails the call instead of falling back to DefaultTimeout.
func requestTimeout(ctx context.Context, timeout time.Duration) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return 0, context.DeadlineExceeded
		}
		if remaining < timeout || timeout <= 0 {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return timeout, nil
}

func do(
	ctx context.Context,
	client Doer,
	method string,
	url string,
	headers map[string]string,
	body []byte,
	timeout time.Duration,
) (*Response, error) {
	timeout, err := requestTimeout(ctx, timeout)
	if err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAcceptEncoding, AcceptEncoding)
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if err := client.DoTimeout(req, resp, timeout); err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}

	decoded, err := DecodeBody(resp, resp.Body())
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(decoded))
	copy(out, decoded)
	return &Response{StatusCode: resp.StatusCode(), Body: out}, nil
}
