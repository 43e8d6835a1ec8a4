package ethrpc

import "context"

// TxpoolContent returns the full contents of the transaction pool.
func (c *Client) TxpoolContent(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "txpool_content")
}

// TxpoolInspect returns a textual summary of the transaction pool.
func (c *Client) TxpoolInspect(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "txpool_inspect")
}

// TxpoolStatus returns the number of pending and queued transactions.
func (c *Client) TxpoolStatus(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "txpool_status")
}
