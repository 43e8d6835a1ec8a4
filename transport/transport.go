// Package transport delivers serialized JSON-RPC requests over HTTP or a
// persistent WebSocket connection. It returns the raw response and leaves
// the JSON-RPC envelope (result/error discrimination) to the caller. No
// retries, no backoff, no pooling policy of its own.
package transport

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/qchain/ethrpc/rpc"
)

// Transport sends one request and returns the raw response.
type Transport interface {
	Send(ctx context.Context, req *rpc.Request) (*Response, error)
	Close() error
}

// Response wraps a transport-level reply. Body is the unparsed payload;
// the client never inspects the JSON-RPC result or error fields.
type Response struct {
	// StatusCode is the HTTP status of the exchange. WebSocket replies
	// carry no status; a completed frame exchange reports http.StatusOK.
	StatusCode int

	// Header holds the HTTP response headers, nil for WebSocket replies.
	Header http.Header

	// Body is the raw response payload.
	Body []byte
}

// OK reports whether the exchange completed with a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the raw body into v. Convenience only; the body stays
// available untouched.
func (r *Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

func (r *Response) String() string {
	return string(r.Body)
}
