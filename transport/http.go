package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/qchain/ethrpc/rpc"
)

const contentTypeJSON = "application/json"

// HTTP posts each request as a JSON body. Connection reuse is delegated to
// the shared http.Client; no timeout policy is imposed beyond the caller's
// context and whatever the injected client configures.
type HTTP struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// HTTPOption configures an HTTP transport.
type HTTPOption func(*HTTP)

// WithHTTPClient substitutes the underlying http.Client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(t *HTTP) { t.client = c }
}

// WithHTTPLogger attaches a logger. The default discards everything.
func WithHTTPLogger(logger *zap.Logger) HTTPOption {
	return func(t *HTTP) { t.logger = logger }
}

// NewHTTP returns a transport POSTing to the given endpoint.
func NewHTTP(endpoint string, opts ...HTTPOption) *HTTP {
	t := &HTTP{
		endpoint: endpoint,
		client:   &http.Client{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Send posts the request and reads the full response body. Transport
// failures are returned as-is; JSON-RPC application errors travel back
// inside the body.
func (t *HTTP) Send(ctx context.Context, req *rpc.Request) (*Response, error) {
	body, err := req.Marshal()
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", contentTypeJSON)
	httpReq.Header.Set("Accept", contentTypeJSON)

	t.logger.Debug("sending RPC request",
		zap.String("method", req.Method),
		zap.Uint64("id", req.ID),
		zap.String("endpoint", t.endpoint))

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       respBody,
	}, nil
}

// Close releases idle connections held by the underlying client.
func (t *HTTP) Close() error {
	t.client.CloseIdleConnections()
	return nil
}
