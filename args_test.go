package ethrpc

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestBlockRefMarshal(t *testing.T) {
	for _, tc := range []struct {
		ref  BlockRef
		want string
	}{
		{BlockRef{}, `"latest"`},
		{Latest, `"latest"`},
		{Earliest, `"earliest"`},
		{Pending, `"pending"`},
		{BlockNumber(0), `"0x0"`},
		{BlockNumber(4660), `"0x1234"`},
	} {
		raw, err := json.Marshal(tc.ref)
		require.NoError(t, err)
		require.Equal(t, tc.want, string(raw))
	}
}

func TestQuantity(t *testing.T) {
	require.Equal(t, "0x0", Quantity(0))
	require.Equal(t, "0x41", Quantity(65))
	require.Equal(t, "0x400", Quantity(1024))
}

func TestTransactionMarshalOmitsUnset(t *testing.T) {
	raw, err := json.Marshal(Transaction{
		From:  "0xb60e8dd61c5d32be8058bb8eb970870f07233155",
		To:    "0xd46e8dd67c5d32be8058bb8eb970870f07244567",
		Value: "0x9184e72a",
	})
	require.NoError(t, err)
	require.Equal(t,
		`{"from":"0xb60e8dd61c5d32be8058bb8eb970870f07233155","to":"0xd46e8dd67c5d32be8058bb8eb970870f07244567","value":"0x9184e72a"}`,
		string(raw))

	raw, err = json.Marshal(Transaction{})
	require.NoError(t, err)
	require.Equal(t, `{}`, string(raw))
}

func TestFilterMarshal(t *testing.T) {
	from := BlockNumber(1)
	raw, err := json.Marshal(Filter{
		FromBlock: &from,
		Address:   "0x8888f1f195afa192cfee860698584c030f4c9db1",
		Topics:    []string{"0x000000000000000000000000a94f5374fce5edbc8e2a8697c15331677e6ebf0b"},
	})
	require.NoError(t, err)
	require.Equal(t,
		`{"fromBlock":"0x1","address":"0x8888f1f195afa192cfee860698584c030f4c9db1","topics":["0x000000000000000000000000a94f5374fce5edbc8e2a8697c15331677e6ebf0b"]}`,
		string(raw))

	raw, err = json.Marshal(Filter{})
	require.NoError(t, err)
	require.Equal(t, `{}`, string(raw))
}

// DecryptWith is part of the wire shape even when unset.
func TestMessageFilterMarshalsNullKey(t *testing.T) {
	raw, err := json.Marshal(MessageFilter{Topics: []string{"0x12341234"}})
	require.NoError(t, err)
	require.Equal(t, `{"topics":["0x12341234"],"decryptWith":null}`, string(raw))
}

func TestMapPosition(t *testing.T) {
	got, err := MapPosition("0x391694e7e0b0cce554cb130d723a9d27458f9298", 1)
	require.NoError(t, err)

	// Same digest as hashing the two zero-padded 32-byte words directly.
	padded, err := hex.DecodeString(
		"000000000000000000000000391694e7e0b0cce554cb130d723a9d27458f9298" +
			"0000000000000000000000000000000000000000000000000000000000000001")
	require.NoError(t, err)
	want := "0x" + hex.EncodeToString(crypto.Keccak256(padded))
	require.Equal(t, want, got)

	require.Len(t, got, 66)
	require.Equal(t, "0x", got[:2])
}

// Keys shorter than 32 bytes are left-padded, so equivalent spellings
// land on the same slot.
func TestMapPositionPadsKey(t *testing.T) {
	a, err := MapPosition("0x1", 0)
	require.NoError(t, err)
	b, err := MapPosition("0x01", 0)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestMapPositionRejectsBadKeys(t *testing.T) {
	_, err := MapPosition("0xzz", 0)
	require.Error(t, err)

	long := "0x" + hex.EncodeToString(make([]byte, 33))
	_, err = MapPosition(long, 0)
	require.Error(t, err)
}

func TestFormatHashrate(t *testing.T) {
	require.Equal(t,
		"0x0000000000000000000000000000000000000000000000000000000000500000",
		formatHashrate(0x500000))
	require.Len(t, formatHashrate(1), 66)
}

func TestFormatPowNonce(t *testing.T) {
	require.Equal(t, "0x00000001", formatPowNonce(1))
	require.Equal(t, "0x0000001f", formatPowNonce(31))
}
