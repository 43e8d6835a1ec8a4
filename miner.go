package ethrpc

import "context"

// MinerSetExtra sets the extra data included in mined blocks.
func (c *Client) MinerSetExtra(ctx context.Context, data string) (*Call, error) {
	return c.Invoke(ctx, "miner_setExtra", data)
}

// MinerSetGasPrice sets the minimal gas price for transactions the
// miner accepts.
func (c *Client) MinerSetGasPrice(ctx context.Context, gasPrice uint64) (*Call, error) {
	return c.Invoke(ctx, "miner_setGasPrice", Quantity(gasPrice))
}

// MinerStart starts mining with the given number of threads.
func (c *Client) MinerStart(ctx context.Context, threads uint64) (*Call, error) {
	return c.Invoke(ctx, "miner_start", Quantity(threads))
}

// MinerStop stops mining.
func (c *Client) MinerStop(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "miner_stop")
}

// MinerSetEtherBase sets the block reward address.
func (c *Client) MinerSetEtherBase(ctx context.Context, address string) (*Call, error) {
	return c.Invoke(ctx, "miner_setEtherBase", address)
}
