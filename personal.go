package ethrpc

import "context"

// PersonalEcRecover returns the address that signed the message.
func (c *Client) PersonalEcRecover(ctx context.Context, message, signature string) (*Call, error) {
	return c.Invoke(ctx, "personal_ecRecover", message, signature)
}

// PersonalImportRawKey imports an unencrypted private key into the
// keystore, encrypting it with the password.
func (c *Client) PersonalImportRawKey(ctx context.Context, privateKey, password string) (*Call, error) {
	return c.Invoke(ctx, "personal_importRawKey", privateKey, password)
}

// PersonalListAccounts lists the addresses in the keystore.
func (c *Client) PersonalListAccounts(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "personal_listAccounts")
}

// PersonalLockAccount removes the account's key from memory.
func (c *Client) PersonalLockAccount(ctx context.Context, address string) (*Call, error) {
	return c.Invoke(ctx, "personal_lockAccount", address)
}

// PersonalNewAccount creates a new account protected by the password.
func (c *Client) PersonalNewAccount(ctx context.Context, password string) (*Call, error) {
	return c.Invoke(ctx, "personal_newAccount", password)
}

// PersonalSendTransaction signs the transaction with the account's
// password and submits it.
func (c *Client) PersonalSendTransaction(ctx context.Context, tx Transaction, password string) (*Call, error) {
	return c.Invoke(ctx, "personal_sendTransaction", tx, password)
}

// PersonalSign signs the message with the given account.
func (c *Client) PersonalSign(ctx context.Context, message, address, password string) (*Call, error) {
	return c.Invoke(ctx, "personal_sign", message, address, password)
}

// PersonalUnlockAccount decrypts the account's key and keeps it in
// memory. Without a duration the node applies its own default; the
// request carries an explicit null in that position.
func (c *Client) PersonalUnlockAccount(ctx context.Context, address, password string, duration ...uint64) (*Call, error) {
	args := []interface{}{address, password}
	if len(duration) > 0 {
		args = append(args, Quantity(duration[0]))
	}
	return c.Invoke(ctx, "personal_unlockAccount", args...)
}
