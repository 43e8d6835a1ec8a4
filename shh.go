package ethrpc

import "context"

// ShhAddPrivateKey imports a private key and returns its key id.
func (c *Client) ShhAddPrivateKey(ctx context.Context, privateKey string) (*Call, error) {
	return c.Invoke(ctx, "shh_addPrivateKey", privateKey)
}

// ShhAddSymKey imports a symmetric key and returns its key id.
func (c *Client) ShhAddSymKey(ctx context.Context, symKey string) (*Call, error) {
	return c.Invoke(ctx, "shh_addSymKey", symKey)
}

// ShhAddToGroup adds the identity to a group.
func (c *Client) ShhAddToGroup(ctx context.Context, address string) (*Call, error) {
	return c.Invoke(ctx, "shh_addToGroup", address)
}

// ShhDeleteKey removes the key with the given id.
func (c *Client) ShhDeleteKey(ctx context.Context, keyID string) (*Call, error) {
	return c.Invoke(ctx, "shh_deleteKey", keyID)
}

// ShhDeleteMessageFilter removes a message filter.
func (c *Client) ShhDeleteMessageFilter(ctx context.Context, filterID string) (*Call, error) {
	return c.Invoke(ctx, "shh_deleteMessageFilter", filterID)
}

// ShhGetFilterChanges polls a filter for messages since the last poll.
func (c *Client) ShhGetFilterChanges(ctx context.Context, filterID uint64) (*Call, error) {
	return c.Invoke(ctx, "shh_getFilterChanges", Quantity(filterID))
}

// ShhGetFilterMessages retrieves the messages matching a message
// filter.
func (c *Client) ShhGetFilterMessages(ctx context.Context, filterID string) (*Call, error) {
	return c.Invoke(ctx, "shh_getFilterMessages", filterID)
}

// ShhGetMessages returns all messages matching the filter.
func (c *Client) ShhGetMessages(ctx context.Context, filterID uint64) (*Call, error) {
	return c.Invoke(ctx, "shh_getMessages", Quantity(filterID))
}

// ShhGetPrivateKey exports the private key with the given id.
func (c *Client) ShhGetPrivateKey(ctx context.Context, keyID string) (*Call, error) {
	return c.Invoke(ctx, "shh_getPrivateKey", keyID)
}

// ShhGetPublicKey returns the public key for the key id.
func (c *Client) ShhGetPublicKey(ctx context.Context, keyID string) (*Call, error) {
	return c.Invoke(ctx, "shh_getPublicKey", keyID)
}

// ShhGetSymKey exports the symmetric key with the given id.
func (c *Client) ShhGetSymKey(ctx context.Context, keyID string) (*Call, error) {
	return c.Invoke(ctx, "shh_getSymKey", keyID)
}

// ShhHasIdentity reports whether the node holds the identity's private
// key.
func (c *Client) ShhHasIdentity(ctx context.Context, address string) (*Call, error) {
	return c.Invoke(ctx, "shh_hasIdentity", address)
}

// ShhInfo returns diagnostic information about the Whisper node.
func (c *Client) ShhInfo(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "shh_info")
}

// ShhNewFilter installs a filter matching the topics, optionally
// restricted to messages addressed to the given identity.
func (c *Client) ShhNewFilter(ctx context.Context, topics []string, to ...string) (*Call, error) {
	filter := map[string]interface{}{"topics": topics}
	if len(to) > 0 {
		filter["to"] = to[0]
	}
	return c.Invoke(ctx, "shh_newFilter", filter)
}

// ShhNewGroup creates a new group identity.
func (c *Client) ShhNewGroup(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "shh_newGroup")
}

// ShhNewIdentity creates a new Whisper identity.
func (c *Client) ShhNewIdentity(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "shh_newIdentity")
}

// ShhNewKeyPair generates a key pair and returns its key id.
func (c *Client) ShhNewKeyPair(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "shh_newKeyPair")
}

// ShhNewMessageFilter installs a message filter. The filter's
// DecryptWith key id is serialized as null when unset.
func (c *Client) ShhNewMessageFilter(ctx context.Context, filter MessageFilter) (*Call, error) {
	return c.Invoke(ctx, "shh_newMessageFilter", filter)
}

// ShhNewSymKey generates a symmetric key and returns its key id.
func (c *Client) ShhNewSymKey(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "shh_newSymKey")
}

// ShhPost sends a Whisper message.
func (c *Client) ShhPost(ctx context.Context, message WhisperMessage) (*Call, error) {
	return c.Invoke(ctx, "shh_post", message)
}

// ShhSubscribe subscribes to messages matching the filter.
func (c *Client) ShhSubscribe(ctx context.Context, filter MessageFilter) (*Call, error) {
	return c.Invoke(ctx, "shh_subscribe", filter)
}

// ShhUninstallFilter removes a polling filter.
func (c *Client) ShhUninstallFilter(ctx context.Context, filterID uint64) (*Call, error) {
	return c.Invoke(ctx, "shh_uninstallFilter", Quantity(filterID))
}

// ShhUnsubscribe cancels a message subscription.
func (c *Client) ShhUnsubscribe(ctx context.Context, subscriptionID uint64) (*Call, error) {
	return c.Invoke(ctx, "shh_unsubscribe", Quantity(subscriptionID))
}

// ShhVersion returns the Whisper protocol version.
func (c *Client) ShhVersion(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "shh_version")
}
