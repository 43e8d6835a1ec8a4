package methods

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveBothSpellings(t *testing.T) {
	for wire, m := range All() {
		got, err := Resolve(m.Alias)
		require.NoError(t, err)
		require.Equal(t, wire, got)

		got, err = Resolve(wire)
		require.NoError(t, err)
		require.Equal(t, wire, got)
	}
}

func TestAliasRoundTrip(t *testing.T) {
	for wire, m := range All() {
		alias, err := Alias(wire)
		require.NoError(t, err)
		require.Equal(t, m.Alias, alias)

		alias, err = Alias(m.Alias)
		require.NoError(t, err)
		require.Equal(t, m.Alias, alias)
	}
}

// Every alias must map back to exactly one wire name.
func TestAliasBijection(t *testing.T) {
	seen := make(map[string]string)
	for wire, m := range All() {
		if other, ok := seen[m.Alias]; ok {
			t.Fatalf("alias %q maps to both %q and %q", m.Alias, other, wire)
		}
		seen[m.Alias] = wire
	}
	require.Len(t, seen, len(All()))
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve("eth_no_such_method")
	require.ErrorIs(t, err, ErrUnknownMethod)

	_, err = Alias("eth_noSuchMethod")
	require.ErrorIs(t, err, ErrUnknownMethod)
}

// Parity spells this wire name with a capital R.
func TestTraceRawTransactionSpelling(t *testing.T) {
	wire, err := Resolve("trace_raw_transaction")
	require.NoError(t, err)
	require.Equal(t, "trace_RawTransaction", wire)
}

func TestFixedRequestIDs(t *testing.T) {
	for wire, want := range map[string]uint64{
		"web3_clientVersion": 67,
		"web3_sha3":          64,
		"net_peerCount":      74,
		"eth_accounts":       1,
		"eth_blockNumber":    83,
		"eth_coinbase":       64,
		"eth_gasPrice":       73,
		"eth_hashrate":       71,
		"eth_mining":         71,
		"shh_version":        67,
	} {
		m, ok := Get(wire)
		require.True(t, ok, wire)
		require.Equal(t, want, m.ID, wire)
	}
}

func TestParamIndex(t *testing.T) {
	m, ok := Get("eth_getStorageAt")
	require.True(t, ok)
	require.Equal(t, 0, m.Index("address"))
	require.Equal(t, 1, m.Index("position"))
	require.Equal(t, 2, m.Index("block"))
	require.Equal(t, -1, m.Index("nope"))
}

func TestRegister(t *testing.T) {
	custom := Method{
		Name:   "custom_echoValue",
		Alias:  "custom_echo_value",
		ID:     1,
		Params: []Param{{Name: "value", Required: true}},
	}
	require.NoError(t, Register(custom))

	wire, err := Resolve("custom_echo_value")
	require.NoError(t, err)
	require.Equal(t, "custom_echoValue", wire)

	require.Error(t, Register(custom))
	require.Error(t, Register(Method{Name: "custom_other", Alias: "custom_echo_value"}))
}
