package methods

import "github.com/qchain/ethrpc/params"

// Shorthands for table rows. The table is data, not logic: every entry
// mirrors one method of the upstream API documentation, including the
// request id its examples use.

func req(name string) Param { return Param{Name: name, Required: true} }

func opt(name string, def interface{}) Param { return Param{Name: name, Default: def} }

// null marks an optional that serializes as an explicit JSON null when
// the caller leaves it unbound.
func null(name string) Param { return Param{Name: name, Null: true} }

// tail marks a trailing optional that is dropped from params entirely
// when the caller leaves it unbound.
func tail(name string) Param { return Param{Name: name, Omit: true} }

func emptyObject() interface{} { return map[string]interface{}{} }

const (
	defaultBlock = params.DefaultBlockTag
	defaultIndex = "0x0"
	defaultGas   = "0x0"

	// Hex spellings of params.DefaultHTTPPort / params.DefaultWSPort, as
	// the admin_start* calls take quantities.
	defaultHTTPPortHex = "0x2161"
	defaultWSPortHex   = "0x2162"
)

var table = []Method{
	// ----------
	// web3
	// ----------
	{Name: "web3_clientVersion", Alias: "web3_client_version", ID: 67},
	{Name: "web3_sha3", Alias: "web3_sha3", ID: 64, Params: []Param{req("data")}},

	// ----------
	// net
	// ----------
	{Name: "net_listening", Alias: "net_listening", ID: 67},
	{Name: "net_peerCount", Alias: "net_peer_count", ID: 74},
	{Name: "net_version", Alias: "net_version", ID: 67},

	// ----------
	// eth
	// ----------
	{Name: "eth_accounts", Alias: "eth_accounts", ID: 1},
	{Name: "eth_blockNumber", Alias: "eth_block_number", ID: 83},
	{Name: "eth_call", Alias: "eth_call", ID: 1, Params: []Param{req("transaction"), req("block")}},
	{Name: "eth_coinbase", Alias: "eth_coinbase", ID: 64},
	{Name: "eth_compileLLL", Alias: "eth_compile_lll", ID: 1, Params: []Param{req("code")}},
	{Name: "eth_compileSerpent", Alias: "eth_compile_serpent", ID: 1, Params: []Param{req("code")}},
	{Name: "eth_compileSolidity", Alias: "eth_compile_solidity", ID: 1, Params: []Param{req("code")}},
	{Name: "eth_estimateGas", Alias: "eth_estimate_gas", ID: 1, Params: []Param{opt("transaction", emptyObject())}},
	{Name: "eth_gasPrice", Alias: "eth_gas_price", ID: 73},
	{Name: "eth_getBalance", Alias: "eth_get_balance", ID: 1, Params: []Param{req("address"), opt("block", defaultBlock)}},
	{Name: "eth_getBlockByHash", Alias: "eth_get_block_by_hash", ID: 1, Params: []Param{req("hash"), opt("fullTransactions", false)}},
	{Name: "eth_getBlockByNumber", Alias: "eth_get_block_by_number", ID: 1, Params: []Param{opt("block", defaultBlock), opt("fullTransactions", false)}},
	{Name: "eth_getBlockTransactionCountByHash", Alias: "eth_get_block_transaction_count_by_hash", ID: 1, Params: []Param{req("hash")}},
	{Name: "eth_getBlockTransactionCountByNumber", Alias: "eth_get_block_transaction_count_by_number", ID: 1, Params: []Param{opt("block", defaultBlock)}},
	{Name: "eth_getCode", Alias: "eth_get_code", ID: 1, Params: []Param{req("address"), opt("block", defaultBlock)}},
	{Name: "eth_getCompilers", Alias: "eth_get_compilers", ID: 1},
	{Name: "eth_getFilterChanges", Alias: "eth_get_filter_changes", ID: 73, Params: []Param{req("filterId")}},
	{Name: "eth_getFilterLogs", Alias: "eth_get_filter_logs", ID: 73, Params: []Param{req("filterId")}},
	{Name: "eth_getLogs", Alias: "eth_get_logs", ID: 73, Params: []Param{opt("filter", emptyObject())}},
	{Name: "eth_getStorageAt", Alias: "eth_get_storage_at", ID: 1, Params: []Param{req("address"), req("position"), opt("block", defaultBlock)}},
	{Name: "eth_getTransactionByBlockHashAndIndex", Alias: "eth_get_transaction_by_block_hash_and_index", ID: 1, Params: []Param{req("hash"), opt("index", defaultIndex)}},
	{Name: "eth_getTransactionByBlockNumberAndIndex", Alias: "eth_get_transaction_by_block_number_and_index", ID: 1, Params: []Param{opt("block", defaultBlock), opt("index", defaultIndex)}},
	{Name: "eth_getTransactionByHash", Alias: "eth_get_transaction_by_hash", ID: 1, Params: []Param{req("hash")}},
	{Name: "eth_getTransactionCount", Alias: "eth_get_transaction_count", ID: 1, Params: []Param{req("address"), opt("block", defaultBlock)}},
	{Name: "eth_getTransactionReceipt", Alias: "eth_get_transaction_receipt", ID: 1, Params: []Param{req("hash")}},
	{Name: "eth_getUncleByBlockHashAndIndex", Alias: "eth_get_uncle_by_block_hash_and_index", ID: 1, Params: []Param{req("hash"), opt("index", defaultIndex)}},
	{Name: "eth_getUncleByBlockNumberAndIndex", Alias: "eth_get_uncle_by_block_number_and_index", ID: 1, Params: []Param{opt("block", defaultBlock), opt("index", defaultIndex)}},
	{Name: "eth_getUncleCountByBlockHash", Alias: "eth_get_uncle_count_by_block_hash", ID: 1, Params: []Param{req("hash")}},
	{Name: "eth_getUncleCountByBlockNumber", Alias: "eth_get_uncle_count_by_block_number", ID: 1, Params: []Param{opt("block", defaultBlock)}},
	{Name: "eth_getWork", Alias: "eth_get_work", ID: 73},
	{Name: "eth_hashrate", Alias: "eth_hashrate", ID: 71},
	{Name: "eth_mining", Alias: "eth_mining", ID: 71},
	{Name: "eth_newBlockFilter", Alias: "eth_new_block_filter", ID: 73},
	{Name: "eth_newFilter", Alias: "eth_new_filter", ID: 73, Params: []Param{opt("filter", emptyObject())}},
	{Name: "eth_newPendingTransactionFilter", Alias: "eth_new_pending_transaction_filter", ID: 73},
	{Name: "eth_protocolVersion", Alias: "eth_protocol_version", ID: 67},
	{Name: "eth_sendRawTransaction", Alias: "eth_send_raw_transaction", ID: 1, Params: []Param{req("data")}},
	{Name: "eth_sendTransaction", Alias: "eth_send_transaction", ID: 1, Params: []Param{req("transaction")}},
	{Name: "eth_sign", Alias: "eth_sign", ID: 1, Params: []Param{req("address"), req("message")}},
	{Name: "eth_signTransaction", Alias: "eth_sign_transaction", ID: 1, Params: []Param{req("transaction")}},
	{Name: "eth_submitHashrate", Alias: "eth_submit_hashrate", ID: 73, Params: []Param{req("hashRate"), req("clientId")}},
	{Name: "eth_submitWork", Alias: "eth_submit_work", ID: 73, Params: []Param{req("nonce"), req("powHash"), req("mixDigest")}},
	{Name: "eth_syncing", Alias: "eth_syncing", ID: 1},
	{Name: "eth_uninstallFilter", Alias: "eth_uninstall_filter", ID: 73, Params: []Param{req("filterId")}},

	// ----------
	// eth pub-sub
	// ----------
	{Name: "eth_subscribe", Alias: "eth_subscribe", ID: 1, Params: []Param{req("type"), opt("filter", emptyObject())}},
	{Name: "eth_unsubscribe", Alias: "eth_unsubscribe", ID: 1, Params: []Param{req("subscriptionId")}},

	// ----------
	// personal
	// ----------
	{Name: "personal_ecRecover", Alias: "personal_ec_recover", ID: 1, Params: []Param{req("message"), req("signature")}},
	{Name: "personal_importRawKey", Alias: "personal_import_raw_key", ID: 1, Params: []Param{req("privateKey"), req("password")}},
	{Name: "personal_listAccounts", Alias: "personal_list_accounts", ID: 1},
	{Name: "personal_lockAccount", Alias: "personal_lock_account", ID: 1, Params: []Param{req("address")}},
	{Name: "personal_newAccount", Alias: "personal_new_account", ID: 1, Params: []Param{req("password")}},
	{Name: "personal_sendTransaction", Alias: "personal_send_transaction", ID: 1, Params: []Param{req("transaction"), req("password")}},
	{Name: "personal_sign", Alias: "personal_sign", ID: 1, Params: []Param{req("message"), req("address"), req("password")}},
	{Name: "personal_unlockAccount", Alias: "personal_unlock_account", ID: 1, Params: []Param{req("address"), req("password"), null("duration")}},

	// ----------
	// parity
	// ----------
	{Name: "parity_accountsInfo", Alias: "parity_accounts_info", ID: 1},
	{Name: "parity_chain", Alias: "parity_chain", ID: 1},
	{Name: "parity_chainStatus", Alias: "parity_chain_status", ID: 1},
	{Name: "parity_changeVault", Alias: "parity_change_vault", ID: 1, Params: []Param{req("address"), req("vault")}},
	{Name: "parity_changeVaultPassword", Alias: "parity_change_vault_password", ID: 1, Params: []Param{req("vault"), req("password")}},
	{Name: "parity_checkRequest", Alias: "parity_check_request", ID: 1, Params: []Param{req("requestId")}},
	{Name: "parity_cidV0", Alias: "parity_cid_v0", ID: 1, Params: []Param{req("data")}},
	{Name: "parity_closeVault", Alias: "parity_close_vault", ID: 1, Params: []Param{req("vault")}},
	{Name: "parity_composeTransaction", Alias: "parity_compose_transaction", ID: 1, Params: []Param{req("transaction")}},
	{Name: "parity_consensusCapability", Alias: "parity_consensus_capability", ID: 1},
	{Name: "parity_dappsUrl", Alias: "parity_dapps_url", ID: 1},
	{Name: "parity_decryptMessage", Alias: "parity_decrypt_message", ID: 1, Params: []Param{req("address"), req("message")}},
	{Name: "parity_defaultAccount", Alias: "parity_default_account", ID: 1},
	{Name: "parity_defaultExtraData", Alias: "parity_default_extra_data", ID: 1},
	{Name: "parity_devLogs", Alias: "parity_dev_logs", ID: 1},
	{Name: "parity_devLogsLevels", Alias: "parity_dev_logs_levels", ID: 1},
	{Name: "parity_encryptMessage", Alias: "parity_encrypt_message", ID: 1, Params: []Param{req("hash"), req("message")}},
	{Name: "parity_enode", Alias: "parity_enode", ID: 1},
	{Name: "parity_extraData", Alias: "parity_extra_data", ID: 1},
	{Name: "parity_futureTransactions", Alias: "parity_future_transactions", ID: 1},
	{Name: "parity_gasCeilTarget", Alias: "parity_gas_ceil_target", ID: 1},
	{Name: "parity_gasFloorTarget", Alias: "parity_gas_floor_target", ID: 1},
	{Name: "parity_gasPriceHistogram", Alias: "parity_gas_price_histogram", ID: 1},
	{Name: "parity_generateSecretPhrase", Alias: "parity_generate_secret_phrase", ID: 1},
	{Name: "parity_getBlockHeaderByNumber", Alias: "parity_get_block_header_by_number", ID: 1, Params: []Param{opt("block", defaultBlock)}},
	{Name: "parity_getVaultMeta", Alias: "parity_get_vault_meta", ID: 1, Params: []Param{req("vault")}},
	{Name: "parity_hardwareAccountsInfo", Alias: "parity_hardware_accounts_info", ID: 1},
	{Name: "parity_listAccounts", Alias: "parity_list_accounts", ID: 1, Params: []Param{req("quantity"), null("offset"), tail("block")}},
	{Name: "parity_listOpenedVaults", Alias: "parity_list_opened_vaults", ID: 1},
	{Name: "parity_listStorageKeys", Alias: "parity_list_storage_keys", ID: 1, Params: []Param{req("address"), req("quantity"), null("offset"), tail("block")}},
	{Name: "parity_listVaults", Alias: "parity_list_vaults", ID: 1},
	{Name: "parity_localTransactions", Alias: "parity_local_transactions", ID: 1},
	{Name: "parity_minGasPrice", Alias: "parity_min_gas_price", ID: 1},
	{Name: "parity_mode", Alias: "parity_mode", ID: 1},
	{Name: "parity_newVault", Alias: "parity_new_vault", ID: 1, Params: []Param{req("vault"), req("password")}},
	{Name: "parity_netChain", Alias: "parity_net_chain", ID: 1},
	{Name: "parity_netPeers", Alias: "parity_net_peers", ID: 1},
	{Name: "parity_netPort", Alias: "parity_net_port", ID: 1},
	{Name: "parity_nextNonce", Alias: "parity_next_nonce", ID: 1, Params: []Param{req("address")}},
	{Name: "parity_nodeKind", Alias: "parity_node_kind", ID: 1},
	{Name: "parity_nodeName", Alias: "parity_node_name", ID: 1},
	{Name: "parity_pendingTransactions", Alias: "parity_pending_transactions", ID: 1},
	{Name: "parity_pendingTransactionsStats", Alias: "parity_pending_transactions_stats", ID: 1},
	{Name: "parity_phraseToAddress", Alias: "parity_phrase_to_address", ID: 1, Params: []Param{req("phrase")}},
	{Name: "parity_openVault", Alias: "parity_open_vault", ID: 1, Params: []Param{req("vault"), req("password")}},
	{Name: "parity_postSign", Alias: "parity_post_sign", ID: 1, Params: []Param{req("address"), req("message")}},
	{Name: "parity_postTransaction", Alias: "parity_post_transaction", ID: 1, Params: []Param{req("transaction")}},
	{Name: "parity_registryAddress", Alias: "parity_registry_address", ID: 1},
	{Name: "parity_releasesInfo", Alias: "parity_releases_info", ID: 1},
	{Name: "parity_removeTransaction", Alias: "parity_remove_transaction", ID: 1, Params: []Param{req("hash")}},
	{Name: "parity_rpcSettings", Alias: "parity_rpc_settings", ID: 1},
	{Name: "parity_setVaultMeta", Alias: "parity_set_vault_meta", ID: 1, Params: []Param{req("vault"), req("metadata")}},
	{Name: "parity_signMessage", Alias: "parity_sign_message", ID: 1, Params: []Param{req("address"), req("password"), req("hash")}},
	{Name: "parity_transactionsLimit", Alias: "parity_transactions_limit", ID: 1},
	{Name: "parity_unsignedTransactionsCount", Alias: "parity_unsigned_transactions_count", ID: 1},
	{Name: "parity_versionInfo", Alias: "parity_version_info", ID: 1},
	{Name: "parity_wsUrl", Alias: "parity_ws_url", ID: 1},

	// ----------
	// parity_set
	// ----------
	{Name: "parity_acceptNonReservedPeers", Alias: "parity_accept_non_reserved_peers", ID: 1},
	{Name: "parity_addReservedPeer", Alias: "parity_add_reserved_peer", ID: 1, Params: []Param{req("enode")}},
	{Name: "parity_dappsList", Alias: "parity_dapps_list", ID: 1},
	{Name: "parity_dropNonReservedPeers", Alias: "parity_drop_non_reserved_peers", ID: 1},
	{Name: "parity_executeUpgrade", Alias: "parity_execute_upgrade", ID: 1},
	{Name: "parity_hashContent", Alias: "parity_hash_content", ID: 1, Params: []Param{req("uri")}},
	{Name: "parity_removeReservedPeer", Alias: "parity_remove_reserved_peer", ID: 1, Params: []Param{req("enode")}},
	{Name: "parity_setAuthor", Alias: "parity_set_author", ID: 1, Params: []Param{req("address")}},
	{Name: "parity_setChain", Alias: "parity_set_chain", ID: 1, Params: []Param{req("chain")}},
	{Name: "parity_setEngineSigner", Alias: "parity_set_engine_signer", ID: 1, Params: []Param{req("address"), req("password")}},
	{Name: "parity_setExtraData", Alias: "parity_set_extra_data", ID: 1, Params: []Param{req("data")}},
	{Name: "parity_setGasCeilTarget", Alias: "parity_set_gas_ceil_target", ID: 1, Params: []Param{opt("gas", defaultGas)}},
	{Name: "parity_setGasFloorTarget", Alias: "parity_set_gas_floor_target", ID: 1, Params: []Param{opt("gas", defaultGas)}},
	{Name: "parity_setMaxTransactionGas", Alias: "parity_set_max_transaction_gas", ID: 1, Params: []Param{req("gas")}},
	{Name: "parity_setMinGasPrice", Alias: "parity_set_min_gas_price", ID: 1, Params: []Param{req("gasPrice")}},
	{Name: "parity_setMode", Alias: "parity_set_mode", ID: 1, Params: []Param{req("mode")}},
	{Name: "parity_setTransactionsLimit", Alias: "parity_set_transactions_limit", ID: 1, Params: []Param{req("limit")}},
	{Name: "parity_upgradeReady", Alias: "parity_upgrade_ready", ID: 1},

	// ----------
	// parity pub-sub
	// ----------
	{Name: "parity_subscribe", Alias: "parity_subscribe", ID: 1, Params: []Param{req("method"), opt("params", []interface{}{})}},
	{Name: "parity_unsubscribe", Alias: "parity_unsubscribe", ID: 1, Params: []Param{req("subscriptionId")}},

	// ----------
	// parity_accounts
	// ----------
	{Name: "parity_allAccountsInfo", Alias: "parity_all_accounts_info", ID: 1},
	{Name: "parity_changePassword", Alias: "parity_change_password", ID: 1, Params: []Param{req("address"), req("oldPassword"), req("newPassword")}},
	{Name: "parity_deriveAddressHash", Alias: "parity_derive_address_hash", ID: 1, Params: []Param{req("address"), req("password"), req("derivation"), opt("saveAccount", false)}},
	{Name: "parity_deriveAddressIndex", Alias: "parity_derive_address_index", ID: 1, Params: []Param{req("address"), req("password"), req("derivation"), opt("saveAccount", false)}},
	{Name: "parity_exportAccount", Alias: "parity_export_account", ID: 1, Params: []Param{req("address"), req("password")}},
	{Name: "parity_getDappAddresses", Alias: "parity_get_dapp_addresses", ID: 1, Params: []Param{req("dapp")}},
	{Name: "parity_getDappDefaultAddress", Alias: "parity_get_dapp_default_address", ID: 1, Params: []Param{req("dapp")}},
	{Name: "parity_getNewDappsAddresses", Alias: "parity_get_new_dapps_addresses", ID: 1},
	{Name: "parity_getNewDappsDefaultAddress", Alias: "parity_get_new_dapps_default_address", ID: 1},
	{Name: "parity_importGethAccounts", Alias: "parity_import_geth_accounts", ID: 1, Params: []Param{req("addresses")}},
	{Name: "parity_killAccount", Alias: "parity_kill_account", ID: 1, Params: []Param{req("address"), req("password")}},
	{Name: "parity_listGethAccounts", Alias: "parity_list_geth_accounts", ID: 1},
	{Name: "parity_listRecentDapps", Alias: "parity_list_recent_dapps", ID: 1},
	{Name: "parity_newAccountFromPhrase", Alias: "parity_new_account_from_phrase", ID: 1, Params: []Param{req("phrase"), req("password")}},
	{Name: "parity_newAccountFromSecret", Alias: "parity_new_account_from_secret", ID: 1, Params: []Param{req("secret"), req("password")}},
	{Name: "parity_newAccountFromWallet", Alias: "parity_new_account_from_wallet", ID: 1, Params: []Param{req("wallet"), req("password")}},
	{Name: "parity_removeAddress", Alias: "parity_remove_address", ID: 1, Params: []Param{req("address")}},
	{Name: "parity_setAccountMeta", Alias: "parity_set_account_meta", ID: 1, Params: []Param{req("address"), req("metadata")}},
	{Name: "parity_setAccountName", Alias: "parity_set_account_name", ID: 1, Params: []Param{req("address"), req("name")}},
	{Name: "parity_setDappAddresses", Alias: "parity_set_dapp_addresses", ID: 1, Params: []Param{req("dapp"), req("addresses")}},
	{Name: "parity_setDappDefaultAddress", Alias: "parity_set_dapp_default_address", ID: 1, Params: []Param{req("dapp"), req("address")}},
	{Name: "parity_setNewDappsAddresses", Alias: "parity_set_new_dapps_addresses", ID: 1, Params: []Param{req("addresses")}},
	{Name: "parity_setNewDappsDefaultAddress", Alias: "parity_set_new_dapps_default_address", ID: 1, Params: []Param{req("address")}},
	{Name: "parity_testPassword", Alias: "parity_test_password", ID: 1, Params: []Param{req("address"), req("password")}},

	// ----------
	// signer
	// ----------
	{Name: "signer_confirmRequest", Alias: "signer_confirm_request", ID: 1, Params: []Param{req("requestId"), opt("modification", emptyObject()), req("password")}},
	{Name: "signer_confirmRequestRaw", Alias: "signer_confirm_request_raw", ID: 1, Params: []Param{req("requestId"), req("data")}},
	{Name: "signer_confirmRequestWithToken", Alias: "signer_confirm_request_with_token", ID: 1, Params: []Param{req("requestId"), opt("modification", emptyObject()), req("password")}},
	{Name: "signer_generateAuthorizationToken", Alias: "signer_generate_authorization_token", ID: 1},
	{Name: "signer_generateWebProxyAccessToken", Alias: "signer_generate_web_proxy_access_token", ID: 1, Params: []Param{req("domain")}},
	{Name: "signer_rejectRequest", Alias: "signer_reject_request", ID: 1, Params: []Param{req("requestId")}},
	{Name: "signer_requestsToConfirm", Alias: "signer_requests_to_confirm", ID: 1},
	{Name: "signer_subscribePending", Alias: "signer_subscribe_pending", ID: 1},
	{Name: "signer_unsubscribePending", Alias: "signer_unsubscribe_pending", ID: 1, Params: []Param{req("subscriptionId")}},

	// ----------
	// trace
	// ----------
	{Name: "trace_block", Alias: "trace_block", ID: 1, Params: []Param{opt("block", defaultBlock)}},
	{Name: "trace_call", Alias: "trace_call", ID: 1, Params: []Param{req("transaction"), req("block")}},
	{Name: "trace_filter", Alias: "trace_filter", ID: 1, Params: []Param{opt("filter", emptyObject())}},
	{Name: "trace_get", Alias: "trace_get", ID: 1, Params: []Param{req("hash"), opt("index", defaultIndex)}},
	// Parity spells this wire name with a capital R; kept verbatim for
	// interoperability.
	{Name: "trace_RawTransaction", Alias: "trace_raw_transaction", ID: 1, Params: []Param{req("data"), req("traces")}},
	{Name: "trace_replayTransaction", Alias: "trace_replay_transaction", ID: 1, Params: []Param{req("hash"), req("traces")}},
	{Name: "trace_transaction", Alias: "trace_transaction", ID: 1, Params: []Param{req("hash")}},

	// ----------
	// admin
	// ----------
	{Name: "admin_addPeer", Alias: "admin_add_peer", ID: 1, Params: []Param{req("enode")}},
	{Name: "admin_datadir", Alias: "admin_datadir", ID: 1},
	{Name: "admin_nodeInfo", Alias: "admin_node_info", ID: 1},
	{Name: "admin_peers", Alias: "admin_peers", ID: 1},
	{Name: "admin_setSolc", Alias: "admin_set_solc", ID: 1, Params: []Param{req("path")}},
	{Name: "admin_startRPC", Alias: "admin_start_rpc", ID: 1, Params: []Param{opt("host", params.DefaultHost), opt("port", defaultHTTPPortHex), opt("cors", params.DefaultCORS), opt("apis", params.DefaultAPIs)}},
	{Name: "admin_startWS", Alias: "admin_start_ws", ID: 1, Params: []Param{opt("host", params.DefaultHost), opt("port", defaultWSPortHex), opt("cors", params.DefaultCORS), opt("apis", params.DefaultAPIs)}},
	{Name: "admin_stopRPC", Alias: "admin_stop_rpc", ID: 1},
	{Name: "admin_stopWS", Alias: "admin_stop_ws", ID: 1},

	// ----------
	// debug
	// ----------
	{Name: "debug_backtraceAt", Alias: "debug_backtrace_at", ID: 1, Params: []Param{req("location")}},
	{Name: "debug_blockProfile", Alias: "debug_block_profile", ID: 1, Params: []Param{req("path"), req("seconds")}},
	{Name: "debug_cpuProfile", Alias: "debug_cpu_profile", ID: 1, Params: []Param{req("path"), req("seconds")}},
	{Name: "debug_dumpBlock", Alias: "debug_dump_block", ID: 1, Params: []Param{opt("block", defaultBlock)}},
	{Name: "debug_gcStats", Alias: "debug_gc_stats", ID: 1},
	{Name: "debug_getBlockRlp", Alias: "debug_get_block_rlp", ID: 1, Params: []Param{opt("block", defaultBlock)}},
	{Name: "debug_goTrace", Alias: "debug_go_trace", ID: 1, Params: []Param{req("path"), req("seconds")}},
	{Name: "debug_memStats", Alias: "debug_mem_stats", ID: 1},
	{Name: "debug_seedHash", Alias: "debug_seed_hash", ID: 1, Params: []Param{opt("block", defaultBlock)}},
	{Name: "debug_setHead", Alias: "debug_set_head", ID: 1, Params: []Param{opt("block", defaultBlock)}},
	{Name: "debug_setBlockProfileRate", Alias: "debug_set_block_profile_rate", ID: 1, Params: []Param{req("rate")}},
	{Name: "debug_stacks", Alias: "debug_stacks", ID: 1},
	{Name: "debug_startCPUProfile", Alias: "debug_start_cpu_profile", ID: 1, Params: []Param{req("path")}},
	{Name: "debug_startGoTrace", Alias: "debug_start_go_trace", ID: 1, Params: []Param{req("path")}},
	{Name: "debug_stopCPUProfile", Alias: "debug_stop_cpu_profile", ID: 1},
	{Name: "debug_stopGoTrace", Alias: "debug_stop_go_trace", ID: 1},
	{Name: "debug_traceBlock", Alias: "debug_trace_block", ID: 1, Params: []Param{opt("block", defaultBlock), opt("config", emptyObject())}},
	{Name: "debug_traceBlockByNumber", Alias: "debug_trace_block_by_number", ID: 1, Params: []Param{opt("block", defaultBlock), opt("config", emptyObject())}},
	{Name: "debug_traceBlockByHash", Alias: "debug_trace_block_by_hash", ID: 1, Params: []Param{req("hash"), opt("config", emptyObject())}},
	{Name: "debug_traceBlockFromFile", Alias: "debug_trace_block_from_file", ID: 1, Params: []Param{req("path"), opt("config", emptyObject())}},
	{Name: "debug_traceTransaction", Alias: "debug_trace_transaction", ID: 1, Params: []Param{req("hash"), opt("config", emptyObject())}},
	{Name: "debug_verbosity", Alias: "debug_verbosity", ID: 1, Params: []Param{req("level")}},
	{Name: "debug_vmodule", Alias: "debug_vmodule", ID: 1, Params: []Param{req("pattern")}},
	{Name: "debug_writeBlockProfile", Alias: "debug_write_block_profile", ID: 1, Params: []Param{req("path")}},
	{Name: "debug_writeMemProfile", Alias: "debug_write_mem_profile", ID: 1, Params: []Param{req("path")}},

	// ----------
	// miner
	// ----------
	{Name: "miner_setExtra", Alias: "miner_set_extra", ID: 1, Params: []Param{req("data")}},
	{Name: "miner_setGasPrice", Alias: "miner_set_gas_price", ID: 1, Params: []Param{req("gasPrice")}},
	{Name: "miner_start", Alias: "miner_start", ID: 1, Params: []Param{req("threads")}},
	{Name: "miner_stop", Alias: "miner_stop", ID: 1},
	{Name: "miner_setEtherBase", Alias: "miner_set_ether_base", ID: 1, Params: []Param{req("address")}},

	// ----------
	// txpool
	// ----------
	{Name: "txpool_content", Alias: "txpool_content", ID: 1},
	{Name: "txpool_inspect", Alias: "txpool_inspect", ID: 1},
	{Name: "txpool_status", Alias: "txpool_status", ID: 1},

	// ----------
	// shh
	// ----------
	{Name: "shh_addPrivateKey", Alias: "shh_add_private_key", ID: 1, Params: []Param{req("privateKey")}},
	{Name: "shh_addSymKey", Alias: "shh_add_sym_key", ID: 1, Params: []Param{req("symKey")}},
	{Name: "shh_addToGroup", Alias: "shh_add_to_group", ID: 73, Params: []Param{req("address")}},
	{Name: "shh_deleteKey", Alias: "shh_delete_key", ID: 1, Params: []Param{req("keyId")}},
	{Name: "shh_deleteMessageFilter", Alias: "shh_delete_message_filter", ID: 1, Params: []Param{req("filterId")}},
	{Name: "shh_getFilterChanges", Alias: "shh_get_filter_changes", ID: 73, Params: []Param{req("filterId")}},
	{Name: "shh_getFilterMessages", Alias: "shh_get_filter_messages", ID: 1, Params: []Param{req("filterId")}},
	{Name: "shh_getMessages", Alias: "shh_get_messages", ID: 73, Params: []Param{req("filterId")}},
	{Name: "shh_getPrivateKey", Alias: "shh_get_private_key", ID: 1, Params: []Param{req("keyId")}},
	{Name: "shh_getPublicKey", Alias: "shh_get_public_key", ID: 1, Params: []Param{req("keyId")}},
	{Name: "shh_getSymKey", Alias: "shh_get_sym_key", ID: 1, Params: []Param{req("keyId")}},
	{Name: "shh_hasIdentity", Alias: "shh_has_identity", ID: 73, Params: []Param{req("address")}},
	{Name: "shh_info", Alias: "shh_info", ID: 1},
	{Name: "shh_newFilter", Alias: "shh_new_filter", ID: 73, Params: []Param{req("filter")}},
	{Name: "shh_newGroup", Alias: "shh_new_group", ID: 73},
	{Name: "shh_newIdentity", Alias: "shh_new_identity", ID: 73},
	{Name: "shh_newKeyPair", Alias: "shh_new_key_pair", ID: 1},
	{Name: "shh_newMessageFilter", Alias: "shh_new_message_filter", ID: 1, Params: []Param{req("filter")}},
	{Name: "shh_newSymKey", Alias: "shh_new_sym_key", ID: 1},
	{Name: "shh_post", Alias: "shh_post", ID: 73, Params: []Param{req("message")}},
	{Name: "shh_subscribe", Alias: "shh_subscribe", ID: 1, Params: []Param{req("filter")}},
	{Name: "shh_uninstallFilter", Alias: "shh_uninstall_filter", ID: 73, Params: []Param{req("filterId")}},
	{Name: "shh_unsubscribe", Alias: "shh_unsubscribe", ID: 1, Params: []Param{req("subscriptionId")}},
	{Name: "shh_version", Alias: "shh_version", ID: 67},
}
