package rpc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildFillsDefaults(t *testing.T) {
	req, err := Build("eth_getBalance", 1, []interface{}{"0x407d73d8a49eeb85d32cf465507dd71d507100c1"}, nil)
	require.NoError(t, err)
	require.Equal(t, "eth_getBalance", req.Method)
	require.Equal(t, []interface{}{"0x407d73d8a49eeb85d32cf465507dd71d507100c1", "latest"}, req.Params)
}

func TestBuildNamedOverlay(t *testing.T) {
	req, err := Build("eth_getBalance", 1,
		[]interface{}{"0x407d73d8a49eeb85d32cf465507dd71d507100c1"},
		map[string]interface{}{"block": "0x10"})
	require.NoError(t, err)
	require.Equal(t, []interface{}{"0x407d73d8a49eeb85d32cf465507dd71d507100c1", "0x10"}, req.Params)
}

func TestBuildDefaultOverride(t *testing.T) {
	req, err := BuildWith("eth_getBalance", 1,
		[]interface{}{"0x407d73d8a49eeb85d32cf465507dd71d507100c1"}, nil,
		BindOptions{Defaults: map[string]interface{}{"block": "pending"}})
	require.NoError(t, err)
	require.Equal(t, "pending", req.Params[1])
}

func TestBuildUnknownMethod(t *testing.T) {
	_, err := Build("eth_noSuchMethod", 1, nil, nil)
	require.ErrorIs(t, err, ErrUnsupportedMethod)
}

func TestBuildMissingRequired(t *testing.T) {
	_, err := Build("eth_getBalance", 1, nil, nil)
	require.ErrorIs(t, err, ErrMissingArgument)

	_, err = Build("eth_sign", 1, []interface{}{"0xaddr"}, nil)
	require.ErrorIs(t, err, ErrMissingArgument)
}

func TestBuildDuplicateArgument(t *testing.T) {
	_, err := Build("eth_getBalance", 1,
		[]interface{}{"0xaddr"},
		map[string]interface{}{"address": "0xother"})
	require.ErrorIs(t, err, ErrDuplicateArgument)
}

func TestBuildUnexpectedArgument(t *testing.T) {
	_, err := Build("eth_getBalance", 1,
		[]interface{}{"0xaddr"},
		map[string]interface{}{"nonce": "0x1"})
	require.ErrorIs(t, err, ErrUnexpectedArgument)

	_, err = Build("eth_blockNumber", 1, []interface{}{"0x1"}, nil)
	require.ErrorIs(t, err, ErrUnexpectedArgument)
}

// An unbound null-mode optional travels as an explicit null.
func TestBuildNullPlaceholder(t *testing.T) {
	req, err := Build("personal_unlockAccount", 1, []interface{}{"0xaddr", "secret"}, nil)
	require.NoError(t, err)
	require.Equal(t, []interface{}{"0xaddr", "secret", nil}, req.Params)
}

// An unbound trailing omit-mode optional disappears from params.
func TestBuildOmittedTail(t *testing.T) {
	req, err := Build("parity_listAccounts", 1, []interface{}{"0x5"}, nil)
	require.NoError(t, err)
	require.Equal(t, []interface{}{"0x5", nil}, req.Params)

	req, err = Build("parity_listAccounts", 1, []interface{}{"0x5"},
		map[string]interface{}{"block": "latest"})
	require.NoError(t, err)
	require.Equal(t, []interface{}{"0x5", nil, "latest"}, req.Params)
}

func TestMarshalEnvelope(t *testing.T) {
	req, err := Build("eth_accounts", 1, nil, nil)
	require.NoError(t, err)
	body, err := req.Marshal()
	require.NoError(t, err)
	require.JSONEq(t, `{"jsonrpc":"2.0","method":"eth_accounts","params":[],"id":1}`, string(body))
	// Field order is part of the wire contract.
	require.Equal(t, `{"jsonrpc":"2.0","method":"eth_accounts","params":[],"id":1}`, string(body))
}

func TestMarshalStorageAt(t *testing.T) {
	req, err := Build("eth_getStorageAt", 1,
		[]interface{}{"0x295a70b2de5e3953354a6a8344e616ed314d7251", "0x0"}, nil)
	require.NoError(t, err)
	body, err := req.Marshal()
	require.NoError(t, err)
	require.Equal(t,
		`{"jsonrpc":"2.0","method":"eth_getStorageAt","params":["0x295a70b2de5e3953354a6a8344e616ed314d7251","0x0","latest"],"id":1}`,
		string(body))
}

// Rebuilding with identical inputs yields an identical body.
func TestBuildDeterministic(t *testing.T) {
	build := func() []byte {
		req, err := Build("eth_getBlockByNumber", 1, []interface{}{"0x1b4", true}, nil)
		require.NoError(t, err)
		body, err := req.Marshal()
		require.NoError(t, err)
		return body
	}
	require.Equal(t, build(), build())
}
