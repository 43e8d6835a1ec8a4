package ethrpc

import "context"

// NetListening reports whether the node is listening for connections.
func (c *Client) NetListening(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "net_listening")
}

// NetPeerCount returns the number of connected peers.
func (c *Client) NetPeerCount(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "net_peerCount")
}

// NetVersion returns the network id.
func (c *Client) NetVersion(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "net_version")
}
