package ethrpc

import "context"

// AdminAddPeer asks the node to connect to the given enode.
func (c *Client) AdminAddPeer(ctx context.Context, enode string) (*Call, error) {
	return c.Invoke(ctx, "admin_addPeer", enode)
}

// AdminDatadir returns the node's data directory.
func (c *Client) AdminDatadir(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "admin_datadir")
}

// AdminNodeInfo returns protocol and network details about the node.
func (c *Client) AdminNodeInfo(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "admin_nodeInfo")
}

// AdminPeers lists the node's connected peers.
func (c *Client) AdminPeers(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "admin_peers")
}

// AdminSetSolc sets the Solidity compiler path used by
// eth_compileSolidity.
func (c *Client) AdminSetSolc(ctx context.Context, path string) (*Call, error) {
	return c.Invoke(ctx, "admin_setSolc", path)
}

// AdminStartRPC asks the node to open an HTTP JSON-RPC listener. The
// host, port, CORS header and module list come from the client
// configuration.
func (c *Client) AdminStartRPC(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "admin_startRPC",
		c.cfg.ListenHost, Quantity(uint64(c.cfg.HTTPPort)), c.cfg.CORS, c.cfg.APIs)
}

// AdminStartWS asks the node to open a WebSocket JSON-RPC listener. The
// host, port, CORS header and module list come from the client
// configuration.
func (c *Client) AdminStartWS(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "admin_startWS",
		c.cfg.ListenHost, Quantity(uint64(c.cfg.WSPort)), c.cfg.CORS, c.cfg.APIs)
}

// AdminStopRPC closes the node's HTTP JSON-RPC listener.
func (c *Client) AdminStopRPC(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "admin_stopRPC")
}

// AdminStopWS closes the node's WebSocket JSON-RPC listener.
func (c *Client) AdminStopWS(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "admin_stopWS")
}
