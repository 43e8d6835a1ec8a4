package ethrpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/qchain/ethrpc/methods"
	"github.com/qchain/ethrpc/params"
	"github.com/qchain/ethrpc/rpc"
	"github.com/qchain/ethrpc/transport"
)

// ErrNoConfig is returned when NewClient is given a nil configuration.
var ErrNoConfig = errors.New("client configuration is required")

// Client is a stateless JSON-RPC client: no request or response state is
// retained between calls. The only long-lived resource is the transport
// connection, opened at construction and released by Close.
//
// Client is safe for concurrent use.
type Client struct {
	cfg    *params.ClientConfig
	tr     transport.Transport
	logger *zap.Logger

	deferred   bool
	sequential bool
	seq        atomic.Uint64

	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithDeferred selects the deferred call strategy: methods return
// immediately and the Call resolves on Await.
func WithDeferred() Option {
	return func(c *Client) { c.deferred = true }
}

// WithSequentialIDs assigns a monotonically increasing request id instead
// of the fixed per-method ids of the dispatch table.
func WithSequentialIDs() Option {
	return func(c *Client) { c.sequential = true }
}

// WithTransport substitutes the transport. Intended for tests and for
// callers with special delivery needs.
func WithTransport(tr transport.Transport) Option {
	return func(c *Client) { c.tr = tr }
}

// WithClient substitutes the http.Client used by the HTTP transport.
func WithClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// Dial connects to the endpoint with default configuration.
func Dial(endpoint string, opts ...Option) (*Client, error) {
	return NewClient(params.NewClientConfig(endpoint), opts...)
}

// NewClient builds a client for the given configuration. The endpoint
// scheme selects the transport: http/https for POST delivery, ws/wss for
// a persistent WebSocket connection opened here.
func NewClient(cfg *params.ClientConfig, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, ErrNoConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.tr == nil {
		if cfg.WebSocketEnabled() {
			ws, err := transport.DialWS(context.Background(), cfg.Endpoint,
				transport.WithWSLogger(c.logger))
			if err != nil {
				return nil, err
			}
			c.tr = ws
		} else {
			httpOpts := []transport.HTTPOption{transport.WithHTTPLogger(c.logger)}
			if c.httpClient != nil {
				httpOpts = append(httpOpts, transport.WithHTTPClient(c.httpClient))
			}
			c.tr = transport.NewHTTP(cfg.Endpoint, httpOpts...)
		}
	}

	return c, nil
}

// Config returns the client configuration.
func (c *Client) Config() *params.ClientConfig {
	return c.cfg
}

// Close releases the transport connection.
func (c *Client) Close() error {
	return c.tr.Close()
}

// Notifications exposes subscription push frames when the client runs on
// the WebSocket transport, nil otherwise.
func (c *Client) Notifications() <-chan json.RawMessage {
	if ws, ok := c.tr.(*transport.WS); ok {
		return ws.Notifications()
	}
	return nil
}

// Invoke dispatches a method by name with positional arguments. The name
// may be either the snake_case alias or the camelCase wire name. Omitted
// optional parameters take their declared defaults.
func (c *Client) Invoke(ctx context.Context, name string, args ...interface{}) (*Call, error) {
	return c.invoke(ctx, name, args, nil)
}

// InvokeNamed dispatches a method with positional arguments overlaid by
// named ones. A parameter bound both ways is an error, as is a name not
// declared by the method.
func (c *Client) InvokeNamed(ctx context.Context, name string, positional []interface{}, named map[string]interface{}) (*Call, error) {
	return c.invoke(ctx, name, positional, named)
}

func (c *Client) invoke(ctx context.Context, name string, positional []interface{}, named map[string]interface{}) (*Call, error) {
	wire, err := methods.Resolve(name)
	if err != nil {
		return nil, err
	}
	spec, _ := methods.Get(wire)

	req, err := rpc.BuildWith(wire, c.nextID(spec), positional, named, rpc.BindOptions{
		Defaults: c.bindDefaults(),
	})
	if err != nil {
		return nil, err
	}

	call := newCall(req)
	if c.deferred {
		go call.run(ctx, c.tr)
		return call, nil
	}
	call.run(ctx, c.tr)
	return call, call.err
}

func (c *Client) nextID(spec *methods.Method) uint64 {
	if c.sequential {
		return c.seq.Add(1)
	}
	return spec.ID
}

// bindDefaults propagates the configured default block tag into builds,
// replacing the table's "latest" where a block parameter is left unbound.
func (c *Client) bindDefaults() map[string]interface{} {
	if c.cfg.DefaultBlock == "" || c.cfg.DefaultBlock == params.DefaultBlockTag {
		return nil
	}
	return map[string]interface{}{"block": c.cfg.DefaultBlock}
}
