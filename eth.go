package ethrpc

import (
	"context"
	"errors"
	"fmt"
)

// ErrSubscriptionType is returned by EthSubscribe for a type other than
// "logs" or "newHeads".
var ErrSubscriptionType = errors.New("unexpected eth_subscribe type")

// EthAccounts returns the list of addresses owned by the node.
func (c *Client) EthAccounts(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "eth_accounts")
}

// EthBlockNumber returns the most recent block number.
func (c *Client) EthBlockNumber(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "eth_blockNumber")
}

// EthCall executes a message immediately without creating a transaction.
func (c *Client) EthCall(ctx context.Context, tx Transaction, block BlockRef) (*Call, error) {
	return c.Invoke(ctx, "eth_call", tx, block)
}

// EthCoinbase returns the node's coinbase address.
func (c *Client) EthCoinbase(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "eth_coinbase")
}

// EthCompileLLL compiles LLL source code.
func (c *Client) EthCompileLLL(ctx context.Context, code string) (*Call, error) {
	return c.Invoke(ctx, "eth_compileLLL", code)
}

// EthCompileSerpent compiles Serpent source code.
func (c *Client) EthCompileSerpent(ctx context.Context, code string) (*Call, error) {
	return c.Invoke(ctx, "eth_compileSerpent", code)
}

// EthCompileSolidity compiles Solidity source code.
func (c *Client) EthCompileSolidity(ctx context.Context, code string) (*Call, error) {
	return c.Invoke(ctx, "eth_compileSolidity", code)
}

// EthEstimateGas estimates the gas a transaction would use.
func (c *Client) EthEstimateGas(ctx context.Context, tx Transaction) (*Call, error) {
	return c.Invoke(ctx, "eth_estimateGas", tx)
}

// EthGasPrice returns the current gas price.
func (c *Client) EthGasPrice(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "eth_gasPrice")
}

// EthGetBalance returns the balance of the account at the given address.
func (c *Client) EthGetBalance(ctx context.Context, address string, block ...BlockRef) (*Call, error) {
	return c.Invoke(ctx, "eth_getBalance", appendBlock([]interface{}{address}, block)...)
}

// EthGetBlockByHash returns block information by block hash.
func (c *Client) EthGetBlockByHash(ctx context.Context, hash string, fullTransactions bool) (*Call, error) {
	return c.Invoke(ctx, "eth_getBlockByHash", hash, fullTransactions)
}

// EthGetBlockByNumber returns block information by number or tag.
func (c *Client) EthGetBlockByNumber(ctx context.Context, block BlockRef, fullTransactions bool) (*Call, error) {
	return c.Invoke(ctx, "eth_getBlockByNumber", block, fullTransactions)
}

// EthGetBlockTransactionCountByHash returns the transaction count of the
// block with the given hash.
func (c *Client) EthGetBlockTransactionCountByHash(ctx context.Context, hash string) (*Call, error) {
	return c.Invoke(ctx, "eth_getBlockTransactionCountByHash", hash)
}

// EthGetBlockTransactionCountByNumber returns the transaction count of
// the block with the given number or tag.
func (c *Client) EthGetBlockTransactionCountByNumber(ctx context.Context, block ...BlockRef) (*Call, error) {
	return c.Invoke(ctx, "eth_getBlockTransactionCountByNumber", appendBlock(nil, block)...)
}

// EthGetCode returns the code at the given address.
func (c *Client) EthGetCode(ctx context.Context, address string, block ...BlockRef) (*Call, error) {
	return c.Invoke(ctx, "eth_getCode", appendBlock([]interface{}{address}, block)...)
}

// EthGetCompilers lists the compilers available on the node.
func (c *Client) EthGetCompilers(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "eth_getCompilers")
}

// EthGetFilterChanges polls a filter for entries since the last poll.
func (c *Client) EthGetFilterChanges(ctx context.Context, filterID uint64) (*Call, error) {
	return c.Invoke(ctx, "eth_getFilterChanges", Quantity(filterID))
}

// EthGetFilterLogs returns all logs matching the given filter.
func (c *Client) EthGetFilterLogs(ctx context.Context, filterID uint64) (*Call, error) {
	return c.Invoke(ctx, "eth_getFilterLogs", Quantity(filterID))
}

// EthGetLogs returns logs matching the filter object.
func (c *Client) EthGetLogs(ctx context.Context, filter Filter) (*Call, error) {
	return c.Invoke(ctx, "eth_getLogs", filter)
}

// EthGetStorageAt returns the value at the storage position of the
// address. Use MapPosition to locate map entries.
func (c *Client) EthGetStorageAt(ctx context.Context, address string, position uint64, block ...BlockRef) (*Call, error) {
	return c.Invoke(ctx, "eth_getStorageAt", appendBlock([]interface{}{address, Quantity(position)}, block)...)
}

// EthGetTransactionByBlockHashAndIndex returns a transaction by block
// hash and index within the block.
func (c *Client) EthGetTransactionByBlockHashAndIndex(ctx context.Context, hash string, index uint64) (*Call, error) {
	return c.Invoke(ctx, "eth_getTransactionByBlockHashAndIndex", hash, Quantity(index))
}

// EthGetTransactionByBlockNumberAndIndex returns a transaction by block
// number and index within the block.
func (c *Client) EthGetTransactionByBlockNumberAndIndex(ctx context.Context, block BlockRef, index uint64) (*Call, error) {
	return c.Invoke(ctx, "eth_getTransactionByBlockNumberAndIndex", block, Quantity(index))
}

// EthGetTransactionByHash returns transaction information by hash.
func (c *Client) EthGetTransactionByHash(ctx context.Context, hash string) (*Call, error) {
	return c.Invoke(ctx, "eth_getTransactionByHash", hash)
}

// EthGetTransactionCount returns the number of transactions sent from
// the address.
func (c *Client) EthGetTransactionCount(ctx context.Context, address string, block ...BlockRef) (*Call, error) {
	return c.Invoke(ctx, "eth_getTransactionCount", appendBlock([]interface{}{address}, block)...)
}

// EthGetTransactionReceipt returns the receipt of a transaction by hash.
func (c *Client) EthGetTransactionReceipt(ctx context.Context, hash string) (*Call, error) {
	return c.Invoke(ctx, "eth_getTransactionReceipt", hash)
}

// EthGetUncleByBlockHashAndIndex returns an uncle by block hash and
// uncle index.
func (c *Client) EthGetUncleByBlockHashAndIndex(ctx context.Context, hash string, index uint64) (*Call, error) {
	return c.Invoke(ctx, "eth_getUncleByBlockHashAndIndex", hash, Quantity(index))
}

// EthGetUncleByBlockNumberAndIndex returns an uncle by block number and
// uncle index.
func (c *Client) EthGetUncleByBlockNumberAndIndex(ctx context.Context, block BlockRef, index uint64) (*Call, error) {
	return c.Invoke(ctx, "eth_getUncleByBlockNumberAndIndex", block, Quantity(index))
}

// EthGetUncleCountByBlockHash returns the uncle count of the block with
// the given hash.
func (c *Client) EthGetUncleCountByBlockHash(ctx context.Context, hash string) (*Call, error) {
	return c.Invoke(ctx, "eth_getUncleCountByBlockHash", hash)
}

// EthGetUncleCountByBlockNumber returns the uncle count of the block
// with the given number or tag.
func (c *Client) EthGetUncleCountByBlockNumber(ctx context.Context, block ...BlockRef) (*Call, error) {
	return c.Invoke(ctx, "eth_getUncleCountByBlockNumber", appendBlock(nil, block)...)
}

// EthGetWork returns the current block data, seed hash and boundary
// condition.
func (c *Client) EthGetWork(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "eth_getWork")
}

// EthHashrate returns the number of hashes per second the node mines at.
func (c *Client) EthHashrate(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "eth_hashrate")
}

// EthMining reports whether the node is mining.
func (c *Client) EthMining(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "eth_mining")
}

// EthNewBlockFilter installs a filter for new blocks.
func (c *Client) EthNewBlockFilter(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "eth_newBlockFilter")
}

// EthNewFilter installs a log filter.
func (c *Client) EthNewFilter(ctx context.Context, filter Filter) (*Call, error) {
	return c.Invoke(ctx, "eth_newFilter", filter)
}

// EthNewPendingTransactionFilter installs a filter for pending
// transactions.
func (c *Client) EthNewPendingTransactionFilter(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "eth_newPendingTransactionFilter")
}

// EthProtocolVersion returns the Ethereum protocol version.
func (c *Client) EthProtocolVersion(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "eth_protocolVersion")
}

// EthSendRawTransaction submits signed transaction data.
func (c *Client) EthSendRawTransaction(ctx context.Context, data string) (*Call, error) {
	return c.Invoke(ctx, "eth_sendRawTransaction", data)
}

// EthSendTransaction submits a transaction to be signed by the node.
func (c *Client) EthSendTransaction(ctx context.Context, tx Transaction) (*Call, error) {
	return c.Invoke(ctx, "eth_sendTransaction", tx)
}

// EthSign returns the Ethereum-signed message.
func (c *Client) EthSign(ctx context.Context, address, message string) (*Call, error) {
	return c.Invoke(ctx, "eth_sign", address, message)
}

// EthSignTransaction signs a transaction for later submission with
// EthSendRawTransaction.
func (c *Client) EthSignTransaction(ctx context.Context, tx Transaction) (*Call, error) {
	return c.Invoke(ctx, "eth_signTransaction", tx)
}

// EthSubmitHashrate reports the mining hashrate under a client id.
func (c *Client) EthSubmitHashrate(ctx context.Context, hashRate uint64, clientID string) (*Call, error) {
	return c.Invoke(ctx, "eth_submitHashrate", formatHashrate(hashRate), clientID)
}

// EthSubmitWork submits a proof-of-work solution.
func (c *Client) EthSubmitWork(ctx context.Context, nonce uint64, powHash, mixDigest string) (*Call, error) {
	return c.Invoke(ctx, "eth_submitWork", formatPowNonce(nonce), powHash, mixDigest)
}

// EthSyncing returns sync status data.
func (c *Client) EthSyncing(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "eth_syncing")
}

// EthUninstallFilter removes a previously installed filter.
func (c *Client) EthUninstallFilter(ctx context.Context, filterID uint64) (*Call, error) {
	return c.Invoke(ctx, "eth_uninstallFilter", Quantity(filterID))
}

// EthSubscribe starts a subscription and returns the server-issued
// subscription identifier. Valid types are "logs" (with an optional
// filter) and "newHeads". The push notification stream itself is
// delivered through the WebSocket transport's Notifications channel.
func (c *Client) EthSubscribe(ctx context.Context, subscriptionType string, filter ...Filter) (*Call, error) {
	switch subscriptionType {
	case "logs":
		f := Filter{}
		if len(filter) > 0 {
			f = filter[0]
		}
		return c.Invoke(ctx, "eth_subscribe", subscriptionType, f)
	case "newHeads":
		return c.Invoke(ctx, "eth_subscribe", subscriptionType, map[string]interface{}{})
	default:
		return nil, fmt.Errorf("%w: %q", ErrSubscriptionType, subscriptionType)
	}
}

// EthUnsubscribe cancels a subscription by identifier.
func (c *Client) EthUnsubscribe(ctx context.Context, subscriptionID uint64) (*Call, error) {
	return c.Invoke(ctx, "eth_unsubscribe", Quantity(subscriptionID))
}
