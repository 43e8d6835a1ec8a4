package ethrpc

import "context"

// SignerConfirmRequest confirms a queued signer request, applying the
// modification's overrides where set.
func (c *Client) SignerConfirmRequest(ctx context.Context, requestID uint64, modification SignerModification, password string) (*Call, error) {
	return c.Invoke(ctx, "signer_confirmRequest", Quantity(requestID), modification, password)
}

// SignerConfirmRequestRaw confirms a queued signer request with an
// externally signed payload.
func (c *Client) SignerConfirmRequestRaw(ctx context.Context, requestID uint64, data string) (*Call, error) {
	return c.Invoke(ctx, "signer_confirmRequestRaw", Quantity(requestID), data)
}

// SignerConfirmRequestWithToken confirms a queued signer request using
// an authorization token in place of the account password.
func (c *Client) SignerConfirmRequestWithToken(ctx context.Context, requestID uint64, modification SignerModification, password string) (*Call, error) {
	return c.Invoke(ctx, "signer_confirmRequestWithToken", Quantity(requestID), modification, password)
}

// SignerGenerateAuthorizationToken generates a new signer authorization
// token.
func (c *Client) SignerGenerateAuthorizationToken(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "signer_generateAuthorizationToken")
}

// SignerGenerateWebProxyAccessToken generates a web proxy access token
// for the domain.
func (c *Client) SignerGenerateWebProxyAccessToken(ctx context.Context, domain string) (*Call, error) {
	return c.Invoke(ctx, "signer_generateWebProxyAccessToken", domain)
}

// SignerRejectRequest rejects a queued signer request.
func (c *Client) SignerRejectRequest(ctx context.Context, requestID uint64) (*Call, error) {
	return c.Invoke(ctx, "signer_rejectRequest", Quantity(requestID))
}

// SignerRequestsToConfirm lists the requests awaiting confirmation.
func (c *Client) SignerRequestsToConfirm(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "signer_requestsToConfirm")
}

// SignerSubscribePending subscribes to changes of the pending request
// queue.
func (c *Client) SignerSubscribePending(ctx context.Context) (*Call, error) {
	return c.Invoke(ctx, "signer_subscribePending")
}

// SignerUnsubscribePending cancels a pending-requests subscription.
func (c *Client) SignerUnsubscribePending(ctx context.Context, subscriptionID uint64) (*Call, error) {
	return c.Invoke(ctx, "signer_unsubscribePending", Quantity(subscriptionID))
}
