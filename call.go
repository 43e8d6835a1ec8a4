package ethrpc

import (
	"context"

	"github.com/qchain/ethrpc/rpc"
	"github.com/qchain/ethrpc/transport"
)

// Call is the handle for one dispatched method call. Under the blocking
// strategy it is already resolved when the dispatching method returns;
// under the deferred strategy it resolves once the exchange finishes and
// Await blocks until then.
type Call struct {
	// Request is the built request, available before transmission.
	Request *rpc.Request

	done chan struct{}
	resp *transport.Response
	err  error
}

func newCall(req *rpc.Request) *Call {
	return &Call{
		Request: req,
		done:    make(chan struct{}),
	}
}

func (c *Call) run(ctx context.Context, tr transport.Transport) {
	c.resp, c.err = tr.Send(ctx, c.Request)
	close(c.done)
}

// Await returns the response once the call resolves. Cancelling ctx
// abandons the wait for this call only; other in-flight calls are not
// affected.
func (c *Call) Await(ctx context.Context) (*transport.Response, error) {
	select {
	case <-c.done:
		return c.resp, c.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done is closed when the call has resolved.
func (c *Call) Done() <-chan struct{} {
	return c.done
}

// Gather awaits every call and returns the responses in the order the
// calls were given, regardless of completion order. The first failing
// call's error is returned.
func Gather(ctx context.Context, calls ...*Call) ([]*transport.Response, error) {
	out := make([]*transport.Response, len(calls))
	for i, call := range calls {
		resp, err := call.Await(ctx)
		if err != nil {
			return nil, err
		}
		out[i] = resp
	}
	return out, nil
}
