package ethrpc

import "context"

// Trace types accepted by the replay and raw-transaction trace calls.
const (
	TraceVMTrace   = "vmTrace"
	TraceTrace     = "trace"
	TraceStateDiff = "stateDiff"
)

// TraceBlock traces every transaction in the block.
func (c *Client) TraceBlock(ctx context.Context, block ...BlockRef) (*Call, error) {
	return c.Invoke(ctx, "trace_block", appendBlock(nil, block)...)
}

// TraceCall executes the message and returns its traces without
// creating a transaction.
func (c *Client) TraceCall(ctx context.Context, tx Transaction, block BlockRef) (*Call, error) {
	return c.Invoke(ctx, "trace_call", tx, block)
}

// TraceFilter returns traces matching the filter object.
func (c *Client) TraceFilter(ctx context.Context, filter Filter) (*Call, error) {
	return c.Invoke(ctx, "trace_filter", filter)
}

// TraceGet returns the trace at the given position within the
// transaction.
func (c *Client) TraceGet(ctx context.Context, hash string, index uint64) (*Call, error) {
	return c.Invoke(ctx, "trace_get", hash, Quantity(index))
}

// TraceRawTransaction executes signed transaction data and returns the
// requested trace types without submitting it.
func (c *Client) TraceRawTransaction(ctx context.Context, data string, traces []string) (*Call, error) {
	return c.Invoke(ctx, "trace_RawTransaction", data, traces)
}

// TraceReplayTransaction replays the transaction and returns the
// requested trace types.
func (c *Client) TraceReplayTransaction(ctx context.Context, hash string, traces []string) (*Call, error) {
	return c.Invoke(ctx, "trace_replayTransaction", hash, traces)
}

// TraceTransaction returns all traces of the transaction.
func (c *Client) TraceTransaction(ctx context.Context, hash string) (*Call, error) {
	return c.Invoke(ctx, "trace_transaction", hash)
}
