package ethrpc

import "context"

// Web3ClientVersion returns the node's client version string.
func (c *Client) Web3ClientVersion(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "web3_clientVersion")
}

// Web3Sha3 returns the Keccak-256 hash of the given data.
func (c *Client) Web3Sha3(ctx context.Context, data string) (*Call, error) {
	return c.Invoke(ctx, "web3_sha3", data)
}
