package ethrpc

import (
	"context"

	"github.com/qchain/ethrpc/methods"
	"github.com/qchain/ethrpc/rpc"
)

// ParityAccountsInfo returns metadata for the node's accounts.
func (c *Client) ParityAccountsInfo(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_accountsInfo")
}

// ParityChain returns the name of the connected chain.
func (c *Client) ParityChain(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_chain")
}

// ParityChainStatus returns the chain status, including gaps during
// warp sync.
func (c *Client) ParityChainStatus(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_chainStatus")
}

// ParityChangeVault moves an account into the given vault.
func (c *Client) ParityChangeVault(ctx context.Context, address, vault string) (*Call, error) {
	return c.Invoke(ctx, "parity_changeVault", address, vault)
}

// ParityChangeVaultPassword changes a vault's password.
func (c *Client) ParityChangeVaultPassword(ctx context.Context, vault, password string) (*Call, error) {
	return c.Invoke(ctx, "parity_changeVaultPassword", vault, password)
}

// ParityCheckRequest returns the transaction hash of a posted request
// once it has been signed, null while still pending.
func (c *Client) ParityCheckRequest(ctx context.Context, requestID uint64) (*Call, error) {
	return c.Invoke(ctx, "parity_checkRequest", Quantity(requestID))
}

// ParityCidV0 computes the IPFS CIDv0 of the given data.
func (c *Client) ParityCidV0(ctx context.Context, data string) (*Call, error) {
	return c.Invoke(ctx, "parity_cidV0", data)
}

// ParityCloseVault closes an opened vault.
func (c *Client) ParityCloseVault(ctx context.Context, vault string) (*Call, error) {
	return c.Invoke(ctx, "parity_closeVault", vault)
}

// ParityComposeTransaction fills in the missing fields of a partial
// transaction.
func (c *Client) ParityComposeTransaction(ctx context.Context, tx Transaction) (*Call, error) {
	return c.Invoke(ctx, "parity_composeTransaction", tx)
}

// ParityConsensusCapability reports whether the node is capable of the
// current chain consensus.
func (c *Client) ParityConsensusCapability(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_consensusCapability")
}

// ParityDappsURL returns the URL the dapps server listens on.
func (c *Client) ParityDappsURL(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_dappsUrl")
}

// ParityDecryptMessage decrypts a message encrypted to the account's
// public key.
func (c *Client) ParityDecryptMessage(ctx context.Context, address, message string) (*Call, error) {
	return c.Invoke(ctx, "parity_decryptMessage", address, message)
}

// ParityDefaultAccount returns the default account for transactions.
func (c *Client) ParityDefaultAccount(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_defaultAccount")
}

// ParityDefaultExtraData returns the default extra data for mined
// blocks.
func (c *Client) ParityDefaultExtraData(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_defaultExtraData")
}

// ParityDevLogs returns recent node log lines.
func (c *Client) ParityDevLogs(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_devLogs")
}

// ParityDevLogsLevels returns the current logging level directive.
func (c *Client) ParityDevLogsLevels(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_devLogsLevels")
}

// ParityEncryptMessage encrypts a message to the given public-key hash.
func (c *Client) ParityEncryptMessage(ctx context.Context, hash, message string) (*Call, error) {
	return c.Invoke(ctx, "parity_encryptMessage", hash, message)
}

// ParityEnode returns the node's enode URI.
func (c *Client) ParityEnode(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_enode")
}

// ParityExtraData returns the extra data currently set for mined
// blocks.
func (c *Client) ParityExtraData(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_extraData")
}

// ParityFutureTransactions lists queued transactions with a nonce gap.
func (c *Client) ParityFutureTransactions(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_futureTransactions")
}

// ParityGasCeilTarget returns the configured gas ceiling target.
func (c *Client) ParityGasCeilTarget(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_gasCeilTarget")
}

// ParityGasFloorTarget returns the configured gas floor target.
func (c *Client) ParityGasFloorTarget(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_gasFloorTarget")
}

// ParityGasPriceHistogram returns a histogram of recent gas prices.
func (c *Client) ParityGasPriceHistogram(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_gasPriceHistogram")
}

// ParityGenerateSecretPhrase generates a random account recovery
// phrase.
func (c *Client) ParityGenerateSecretPhrase(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_generateSecretPhrase")
}

// ParityGetBlockHeaderByNumber returns the header of the block with the
// given number or tag.
func (c *Client) ParityGetBlockHeaderByNumber(ctx context.Context, block ...BlockRef) (*Call, error) {
	return c.Invoke(ctx, "parity_getBlockHeaderByNumber", appendBlock(nil, block)...)
}

// ParityGetVaultMeta returns a vault's metadata string.
func (c *Client) ParityGetVaultMeta(ctx context.Context, vault string) (*Call, error) {
	return c.Invoke(ctx, "parity_getVaultMeta", vault)
}

// ParityHardwareAccountsInfo returns metadata for attached hardware
// wallets.
func (c *Client) ParityHardwareAccountsInfo(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_hardwareAccountsInfo")
}

// ParityListAccounts lists up to quantity addresses known to the node,
// starting after offset. An empty offset starts from the beginning and
// is sent as null.
func (c *Client) ParityListAccounts(ctx context.Context, quantity uint64, offset string, block ...BlockRef) (*Call, error) {
	args := []interface{}{Quantity(quantity), nullable(offset)}
	return c.Invoke(ctx, "parity_listAccounts", appendBlock(args, block)...)
}

// ParityListOpenedVaults lists the vaults currently open.
func (c *Client) ParityListOpenedVaults(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_listOpenedVaults")
}

// ParityListStorageKeys lists up to quantity storage keys of the
// account, starting after offset. An empty offset starts from the
// beginning and is sent as null.
func (c *Client) ParityListStorageKeys(ctx context.Context, address string, quantity uint64, offset string, block ...BlockRef) (*Call, error) {
	args := []interface{}{address, Quantity(quantity), nullable(offset)}
	return c.Invoke(ctx, "parity_listStorageKeys", appendBlock(args, block)...)
}

// ParityListVaults lists all vaults.
func (c *Client) ParityListVaults(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_listVaults")
}

// ParityLocalTransactions returns the status of locally submitted
// transactions.
func (c *Client) ParityLocalTransactions(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_localTransactions")
}

// ParityMinGasPrice returns the minimal gas price for transaction
// acceptance.
func (c *Client) ParityMinGasPrice(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_minGasPrice")
}

// ParityMode returns the node's operating mode.
func (c *Client) ParityMode(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_mode")
}

// ParityNewVault creates a vault protected by the password.
func (c *Client) ParityNewVault(ctx context.Context, vault, password string) (*Call, error) {
	return c.Invoke(ctx, "parity_newVault", vault, password)
}

// ParityNetChain returns the name of the connected chain.
func (c *Client) ParityNetChain(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_netChain")
}

// ParityNetPeers returns the number of connected and active peers.
func (c *Client) ParityNetPeers(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_netPeers")
}

// ParityNetPort returns the network listening port.
func (c *Client) ParityNetPort(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_netPort")
}

// ParityNextNonce returns the next valid nonce for the address,
// accounting for pending transactions.
func (c *Client) ParityNextNonce(ctx context.Context, address string) (*Call, error) {
	return c.Invoke(ctx, "parity_nextNonce", address)
}

// ParityNodeKind returns the node's availability and capability kind.
func (c *Client) ParityNodeKind(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_nodeKind")
}

// ParityNodeName returns the node's configured name.
func (c *Client) ParityNodeName(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_nodeName")
}

// ParityPendingTransactions lists transactions currently in the queue.
func (c *Client) ParityPendingTransactions(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_pendingTransactions")
}

// ParityPendingTransactionsStats returns propagation statistics for
// pending transactions.
func (c *Client) ParityPendingTransactionsStats(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_pendingTransactionsStats")
}

// ParityPhraseToAddress converts a recovery phrase to the address it
// would produce.
func (c *Client) ParityPhraseToAddress(ctx context.Context, phrase string) (*Call, error) {
	return c.Invoke(ctx, "parity_phraseToAddress", phrase)
}

// ParityOpenVault opens a vault with its password.
func (c *Client) ParityOpenVault(ctx context.Context, vault, password string) (*Call, error) {
	return c.Invoke(ctx, "parity_openVault", vault, password)
}

// ParityPostSign posts a sign request to the signer queue and returns
// the request id to poll with ParityCheckRequest.
func (c *Client) ParityPostSign(ctx context.Context, address, message string) (*Call, error) {
	return c.Invoke(ctx, "parity_postSign", address, message)
}

// ParityPostTransaction posts a transaction to the signer queue and
// returns the request id to poll with ParityCheckRequest.
func (c *Client) ParityPostTransaction(ctx context.Context, tx Transaction) (*Call, error) {
	return c.Invoke(ctx, "parity_postTransaction", tx)
}

// ParityRegistryAddress returns the address of the name registry
// contract.
func (c *Client) ParityRegistryAddress(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_registryAddress")
}

// ParityReleasesInfo returns information about available releases.
func (c *Client) ParityReleasesInfo(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_releasesInfo")
}

// ParityRemoveTransaction removes a pending transaction from the local
// queue.
func (c *Client) ParityRemoveTransaction(ctx context.Context, hash string) (*Call, error) {
	return c.Invoke(ctx, "parity_removeTransaction", hash)
}

// ParityRPCSettings returns the RPC interface settings.
func (c *Client) ParityRPCSettings(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_rpcSettings")
}

// ParitySetVaultMeta replaces a vault's metadata string.
func (c *Client) ParitySetVaultMeta(ctx context.Context, vault, metadata string) (*Call, error) {
	return c.Invoke(ctx, "parity_setVaultMeta", vault, metadata)
}

// ParitySignMessage signs the 32-byte hash with the account, unlocking
// it with the password for this one call.
func (c *Client) ParitySignMessage(ctx context.Context, address, password, hash string) (*Call, error) {
	return c.Invoke(ctx, "parity_signMessage", address, password, hash)
}

// ParityTransactionsLimit returns the queue's transaction count limit.
func (c *Client) ParityTransactionsLimit(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_transactionsLimit")
}

// ParityUnsignedTransactionsCount returns the number of requests
// waiting in the signer queue.
func (c *Client) ParityUnsignedTransactionsCount(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_unsignedTransactionsCount")
}

// ParityVersionInfo returns the running version's metadata.
func (c *Client) ParityVersionInfo(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_versionInfo")
}

// ParityWSURL returns the URL the WebSocket server listens on.
func (c *Client) ParityWSURL(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_wsUrl")
}

// ParitySubscribe starts a subscription that re-runs the named method
// on every new block and pushes its result. The inner method's
// arguments go through the same binding as a direct call, so its
// defaults and errors apply before anything is sent.
func (c *Client) ParitySubscribe(ctx context.Context, method string, args ...interface{}) (*Call, error) {
	wire, err := methods.Resolve(method)
	if err != nil {
		return nil, err
	}
	inner, err := rpc.Build(wire, 0, args, nil)
	if err != nil {
		return nil, err
	}
	return c.Invoke(ctx, "parity_subscribe", wire, inner.Params)
}

// ParityUnsubscribe cancels a parity subscription by identifier.
func (c *Client) ParityUnsubscribe(ctx context.Context, subscriptionID uint64) (*Call, error) {
	return c.Invoke(ctx, "parity_unsubscribe", Quantity(subscriptionID))
}
