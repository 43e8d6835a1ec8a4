package ethrpc

import (
	"context"
	"fmt"
)

// DebugBacktraceAt sets the logging backtrace location as file:line.
func (c *Client) DebugBacktraceAt(ctx context.Context, file string, line uint64) (*Call, error) {
	return c.Invoke(ctx, "debug_backtraceAt", fmt.Sprintf("%s:%d", file, line))
}

// DebugBlockProfile collects a goroutine blocking profile for the given
// number of seconds and writes it to the file.
func (c *Client) DebugBlockProfile(ctx context.Context, path string, seconds uint64) (*Call, error) {
	return c.Invoke(ctx, "debug_blockProfile", path, Quantity(seconds))
}

// DebugCPUProfile collects a CPU profile for the given number of
// seconds and writes it to the file.
func (c *Client) DebugCPUProfile(ctx context.Context, path string, seconds uint64) (*Call, error) {
	return c.Invoke(ctx, "debug_cpuProfile", path, Quantity(seconds))
}

// DebugDumpBlock returns the full state of the block.
func (c *Client) DebugDumpBlock(ctx context.Context, block ...BlockRef) (*Call, error) {
	return c.Invoke(ctx, "debug_dumpBlock", appendBlock(nil, block)...)
}

// DebugGcStats returns garbage collection statistics.
func (c *Client) DebugGcStats(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "debug_gcStats")
}

// DebugGetBlockRlp returns the RLP encoding of the block.
func (c *Client) DebugGetBlockRlp(ctx context.Context, block ...BlockRef) (*Call, error) {
	return c.Invoke(ctx, "debug_getBlockRlp", appendBlock(nil, block)...)
}

// DebugGoTrace collects a Go execution trace for the given number of
// seconds and writes it to the file.
func (c *Client) DebugGoTrace(ctx context.Context, path string, seconds uint64) (*Call, error) {
	return c.Invoke(ctx, "debug_goTrace", path, Quantity(seconds))
}

// DebugMemStats returns runtime memory statistics.
func (c *Client) DebugMemStats(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "debug_memStats")
}

// DebugSeedHash returns the proof-of-work seed hash of the block.
func (c *Client) DebugSeedHash(ctx context.Context, block ...BlockRef) (*Call, error) {
	return c.Invoke(ctx, "debug_seedHash", appendBlock(nil, block)...)
}

// DebugSetHead rewinds the chain head to the block.
func (c *Client) DebugSetHead(ctx context.Context, block ...BlockRef) (*Call, error) {
	return c.Invoke(ctx, "debug_setHead", appendBlock(nil, block)...)
}

// DebugSetBlockProfileRate sets the goroutine blocking profile sampling
// rate in samples per second. Zero disables collection.
func (c *Client) DebugSetBlockProfileRate(ctx context.Context, rate uint64) (*Call, error) {
	return c.Invoke(ctx, "debug_setBlockProfileRate", Quantity(rate))
}

// DebugStacks returns a printed representation of all goroutine stacks.
func (c *Client) DebugStacks(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "debug_stacks")
}

// DebugStartCPUProfile starts CPU profiling into the file until stopped
// with DebugStopCPUProfile.
func (c *Client) DebugStartCPUProfile(ctx context.Context, path string) (*Call, error) {
	return c.Invoke(ctx, "debug_startCPUProfile", path)
}

// DebugStartGoTrace starts tracing into the file until stopped with
// DebugStopGoTrace.
func (c *Client) DebugStartGoTrace(ctx context.Context, path string) (*Call, error) {
	return c.Invoke(ctx, "debug_startGoTrace", path)
}

// DebugStopCPUProfile stops a running CPU profile.
func (c *Client) DebugStopCPUProfile(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "debug_stopCPUProfile")
}

// DebugStopGoTrace stops a running execution trace.
func (c *Client) DebugStopGoTrace(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "debug_stopGoTrace")
}

// DebugTraceBlock replays the block and returns the structured logs of
// its transactions.
func (c *Client) DebugTraceBlock(ctx context.Context, block BlockRef, config ...TraceConfig) (*Call, error) {
	return c.Invoke(ctx, "debug_traceBlock", oneTraceConfig([]interface{}{block}, config)...)
}

// DebugTraceBlockByNumber replays the block selected by number or tag.
func (c *Client) DebugTraceBlockByNumber(ctx context.Context, block BlockRef, config ...TraceConfig) (*Call, error) {
	return c.Invoke(ctx, "debug_traceBlockByNumber", oneTraceConfig([]interface{}{block}, config)...)
}

// DebugTraceBlockByHash replays the block selected by hash.
func (c *Client) DebugTraceBlockByHash(ctx context.Context, hash string, config ...TraceConfig) (*Call, error) {
	return c.Invoke(ctx, "debug_traceBlockByHash", oneTraceConfig([]interface{}{hash}, config)...)
}

// DebugTraceBlockFromFile replays a block read from an RLP file on the
// node.
func (c *Client) DebugTraceBlockFromFile(ctx context.Context, path string, config ...TraceConfig) (*Call, error) {
	return c.Invoke(ctx, "debug_traceBlockFromFile", oneTraceConfig([]interface{}{path}, config)...)
}

// DebugTraceTransaction replays the transaction and returns its
// structured execution log.
func (c *Client) DebugTraceTransaction(ctx context.Context, hash string, config ...TraceConfig) (*Call, error) {
	return c.Invoke(ctx, "debug_traceTransaction", oneTraceConfig([]interface{}{hash}, config)...)
}

// DebugVerbosity sets the logging verbosity level.
func (c *Client) DebugVerbosity(ctx context.Context, level uint64) (*Call, error) {
	return c.Invoke(ctx, "debug_verbosity", Quantity(level))
}

// DebugVmodule sets the per-module logging verbosity pattern.
func (c *Client) DebugVmodule(ctx context.Context, pattern string) (*Call, error) {
	return c.Invoke(ctx, "debug_vmodule", pattern)
}

// DebugWriteBlockProfile writes the accumulated goroutine blocking
// profile to the file.
func (c *Client) DebugWriteBlockProfile(ctx context.Context, path string) (*Call, error) {
	return c.Invoke(ctx, "debug_writeBlockProfile", path)
}

// DebugWriteMemProfile writes an allocation profile to the file.
func (c *Client) DebugWriteMemProfile(ctx context.Context, path string) (*Call, error) {
	return c.Invoke(ctx, "debug_writeMemProfile", path)
}
