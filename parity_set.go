package ethrpc

import "context"

// ParityAcceptNonReservedPeers lifts the reserved-only peer
// restriction.
func (c *Client) ParityAcceptNonReservedPeers(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_acceptNonReservedPeers")
}

// ParityAddReservedPeer adds the enode to the reserved peer set.
func (c *Client) ParityAddReservedPeer(ctx context.Context, enode string) (*Call, error) {
	return c.Invoke(ctx, "parity_addReservedPeer", enode)
}

// ParityDappsList lists locally installed dapps.
func (c *Client) ParityDappsList(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_dappsList")
}

// ParityDropNonReservedPeers disconnects all peers outside the reserved
// set and refuses new ones.
func (c *Client) ParityDropNonReservedPeers(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_dropNonReservedPeers")
}

// ParityExecuteUpgrade installs the release previously reported ready
// by ParityUpgradeReady.
func (c *Client) ParityExecuteUpgrade(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_executeUpgrade")
}

// ParityHashContent fetches the content behind the URI and returns its
// Keccak-256 hash.
func (c *Client) ParityHashContent(ctx context.Context, uri string) (*Call, error) {
	return c.Invoke(ctx, "parity_hashContent", uri)
}

// ParityRemoveReservedPeer removes the enode from the reserved peer
// set.
func (c *Client) ParityRemoveReservedPeer(ctx context.Context, enode string) (*Call, error) {
	return c.Invoke(ctx, "parity_removeReservedPeer", enode)
}

// ParitySetAuthor sets the block reward address.
func (c *Client) ParitySetAuthor(ctx context.Context, address string) (*Call, error) {
	return c.Invoke(ctx, "parity_setAuthor", address)
}

// ParitySetChain switches the node to the named chain spec.
func (c *Client) ParitySetChain(ctx context.Context, chain string) (*Call, error) {
	return c.Invoke(ctx, "parity_setChain", chain)
}

// ParitySetEngineSigner sets the account used to sign consensus
// messages.
func (c *Client) ParitySetEngineSigner(ctx context.Context, address, password string) (*Call, error) {
	return c.Invoke(ctx, "parity_setEngineSigner", address, password)
}

// ParitySetExtraData sets the extra data included in mined blocks.
func (c *Client) ParitySetExtraData(ctx context.Context, data string) (*Call, error) {
	return c.Invoke(ctx, "parity_setExtraData", data)
}

// ParitySetGasCeilTarget sets the gas ceiling target for mined blocks.
func (c *Client) ParitySetGasCeilTarget(ctx context.Context, gas uint64) (*Call, error) {
	return c.Invoke(ctx, "parity_setGasCeilTarget", Quantity(gas))
}

// ParitySetGasFloorTarget sets the gas floor target for mined blocks.
func (c *Client) ParitySetGasFloorTarget(ctx context.Context, gas uint64) (*Call, error) {
	return c.Invoke(ctx, "parity_setGasFloorTarget", Quantity(gas))
}

// ParitySetMaxTransactionGas sets the maximum gas a transaction may
// use.
func (c *Client) ParitySetMaxTransactionGas(ctx context.Context, gas uint64) (*Call, error) {
	return c.Invoke(ctx, "parity_setMaxTransactionGas", Quantity(gas))
}

// ParitySetMinGasPrice sets the minimal gas price for transaction
// acceptance.
func (c *Client) ParitySetMinGasPrice(ctx context.Context, gasPrice uint64) (*Call, error) {
	return c.Invoke(ctx, "parity_setMinGasPrice", Quantity(gasPrice))
}

// ParitySetMode sets the node's operating mode ("active", "passive",
// "dark", "offline").
func (c *Client) ParitySetMode(ctx context.Context, mode string) (*Call, error) {
	return c.Invoke(ctx, "parity_setMode", mode)
}

// ParitySetTransactionsLimit sets the queue's transaction count limit.
func (c *Client) ParitySetTransactionsLimit(ctx context.Context, limit uint64) (*Call, error) {
	return c.Invoke(ctx, "parity_setTransactionsLimit", Quantity(limit))
}

// ParityUpgradeReady returns the release ready to install, null when up
// to date.
func (c *Client) ParityUpgradeReady(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_upgradeReady")
}
