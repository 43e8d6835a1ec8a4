package ethrpc

import "context"

// ParityAllAccountsInfo returns metadata for every account, including
// those hidden from the default listing.
func (c *Client) ParityAllAccountsInfo(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_allAccountsInfo")
}

// ParityChangePassword re-encrypts the account's key with a new
// password.
func (c *Client) ParityChangePassword(ctx context.Context, address, oldPassword, newPassword string) (*Call, error) {
	return c.Invoke(ctx, "parity_changePassword", address, oldPassword, newPassword)
}

// ParityDeriveAddressHash derives a child address from the account
// using a hash-based derivation, optionally saving the derived account.
func (c *Client) ParityDeriveAddressHash(ctx context.Context, address, password string, derivation interface{}, saveAccount bool) (*Call, error) {
	return c.Invoke(ctx, "parity_deriveAddressHash", address, password, derivation, saveAccount)
}

// ParityDeriveAddressIndex derives a child address from the account
// using a sequence of index derivation steps, optionally saving the
// derived account.
func (c *Client) ParityDeriveAddressIndex(ctx context.Context, address, password string, derivation []DerivationStep, saveAccount bool) (*Call, error) {
	return c.Invoke(ctx, "parity_deriveAddressIndex", address, password, derivation, saveAccount)
}

// ParityExportAccount exports the account's key as an encrypted JSON
// wallet.
func (c *Client) ParityExportAccount(ctx context.Context, address, password string) (*Call, error) {
	return c.Invoke(ctx, "parity_exportAccount", address, password)
}

// ParityGetDappAddresses returns the addresses a dapp may use.
func (c *Client) ParityGetDappAddresses(ctx context.Context, dapp string) (*Call, error) {
	return c.Invoke(ctx, "parity_getDappAddresses", dapp)
}

// ParityGetDappDefaultAddress returns the dapp's default address.
func (c *Client) ParityGetDappDefaultAddress(ctx context.Context, dapp string) (*Call, error) {
	return c.Invoke(ctx, "parity_getDappDefaultAddress", dapp)
}

// ParityGetNewDappsAddresses returns the addresses newly installed
// dapps may use.
func (c *Client) ParityGetNewDappsAddresses(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_getNewDappsAddresses")
}

// ParityGetNewDappsDefaultAddress returns the default address for newly
// installed dapps.
func (c *Client) ParityGetNewDappsDefaultAddress(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_getNewDappsDefaultAddress")
}

// ParityImportGethAccounts imports the given accounts from the geth
// keystore.
func (c *Client) ParityImportGethAccounts(ctx context.Context, addresses []string) (*Call, error) {
	return c.Invoke(ctx, "parity_importGethAccounts", addresses)
}

// ParityKillAccount permanently deletes the account.
func (c *Client) ParityKillAccount(ctx context.Context, address, password string) (*Call, error) {
	return c.Invoke(ctx, "parity_killAccount", address, password)
}

// ParityListGethAccounts lists the addresses in the geth keystore.
func (c *Client) ParityListGethAccounts(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_listGethAccounts")
}

// ParityListRecentDapps lists recently used dapps.
func (c *Client) ParityListRecentDapps(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "parity_listRecentDapps")
}

// ParityNewAccountFromPhrase creates an account from a recovery phrase.
func (c *Client) ParityNewAccountFromPhrase(ctx context.Context, phrase, password string) (*Call, error) {
	return c.Invoke(ctx, "parity_newAccountFromPhrase", phrase, password)
}

// ParityNewAccountFromSecret creates an account from a raw private key.
func (c *Client) ParityNewAccountFromSecret(ctx context.Context, secret, password string) (*Call, error) {
	return c.Invoke(ctx, "parity_newAccountFromSecret", secret, password)
}

// ParityNewAccountFromWallet creates an account from an encrypted JSON
// wallet.
func (c *Client) ParityNewAccountFromWallet(ctx context.Context, wallet, password string) (*Call, error) {
	return c.Invoke(ctx, "parity_newAccountFromWallet", wallet, password)
}

// ParityRemoveAddress removes an address from the addressbook.
func (c *Client) ParityRemoveAddress(ctx context.Context, address string) (*Call, error) {
	return c.Invoke(ctx, "parity_removeAddress", address)
}

// ParitySetAccountMeta replaces the account's metadata string.
func (c *Client) ParitySetAccountMeta(ctx context.Context, address, metadata string) (*Call, error) {
	return c.Invoke(ctx, "parity_setAccountMeta", address, metadata)
}

// ParitySetAccountName renames the account.
func (c *Client) ParitySetAccountName(ctx context.Context, address, name string) (*Call, error) {
	return c.Invoke(ctx, "parity_setAccountName", address, name)
}

// ParitySetDappAddresses restricts the addresses a dapp may use.
func (c *Client) ParitySetDappAddresses(ctx context.Context, dapp string, addresses []string) (*Call, error) {
	return c.Invoke(ctx, "parity_setDappAddresses", dapp, addresses)
}

// ParitySetDappDefaultAddress sets the dapp's default address.
func (c *Client) ParitySetDappDefaultAddress(ctx context.Context, dapp, address string) (*Call, error) {
	return c.Invoke(ctx, "parity_setDappDefaultAddress", dapp, address)
}

// ParitySetNewDappsAddresses restricts the addresses newly installed
// dapps may use.
func (c *Client) ParitySetNewDappsAddresses(ctx context.Context, addresses []string) (*Call, error) {
	return c.Invoke(ctx, "parity_setNewDappsAddresses", addresses)
}

// ParitySetNewDappsDefaultAddress sets the default address for newly
// installed dapps.
func (c *Client) ParitySetNewDappsDefaultAddress(ctx context.Context, address string) (*Call, error) {
	return c.Invoke(ctx, "parity_setNewDappsDefaultAddress", address)
}

// ParityTestPassword checks the password against the account without
// unlocking it.
func (c *Client) ParityTestPassword(ctx context.Context, address, password string) (*Call, error) {
	return c.Invoke(ctx, "parity_testPassword", address, password)
}
