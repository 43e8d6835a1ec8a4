package ethrpc

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/qchain/ethrpc/params"
)

// BlockRef identifies a block by number or by tag. The zero value refers
// to the "latest" tag.
type BlockRef struct {
	v interface{}
}

// Convenience tags.
var (
	Latest   = BlockTag("latest")
	Earliest = BlockTag("earliest")
	Pending  = BlockTag("pending")
)

// BlockNumber refers to a block by number, hex-encoded on the wire.
func BlockNumber(n uint64) BlockRef {
	return BlockRef{v: hexutil.EncodeUint64(n)}
}

// BlockTag refers to a block by tag ("earliest", "latest", "pending").
func BlockTag(tag string) BlockRef {
	return BlockRef{v: tag}
}

func (b BlockRef) MarshalJSON() ([]byte, error) {
	if b.v == nil {
		return json.Marshal(params.DefaultBlockTag)
	}
	return json.Marshal(b.v)
}

// Quantity hex-encodes an integer the way the wire protocol expects.
func Quantity(n uint64) string {
	return hexutil.EncodeUint64(n)
}

// BigQuantity hex-encodes an arbitrary-precision integer.
func BigQuantity(v *big.Int) string {
	return hexutil.EncodeBig(v)
}

// Transaction is the transaction object accepted by the eth_call,
// eth_sendTransaction, eth_signTransaction, eth_estimateGas,
// personal_sendTransaction and parity transaction methods. Unset fields
// are left out of the serialized object.
type Transaction struct {
	From      string      `json:"from,omitempty"`
	To        string      `json:"to,omitempty"`
	Gas       string      `json:"gas,omitempty"`
	GasPrice  string      `json:"gasPrice,omitempty"`
	Value     string      `json:"value,omitempty"`
	Data      string      `json:"data,omitempty"`
	Nonce     string      `json:"nonce,omitempty"`
	Condition interface{} `json:"condition,omitempty"`
}

// Filter is the log filter object for eth_getLogs, eth_newFilter,
// trace_filter and the logs subscription type.
type Filter struct {
	FromBlock *BlockRef   `json:"fromBlock,omitempty"`
	ToBlock   *BlockRef   `json:"toBlock,omitempty"`
	Address   interface{} `json:"address,omitempty"`
	Topics    []string    `json:"topics,omitempty"`
}

// WhisperMessage is the message object for shh_post.
type WhisperMessage struct {
	Topics   []string `json:"topics"`
	Payload  string   `json:"payload"`
	Priority string   `json:"priority"`
	TTL      string   `json:"ttl"`
	From     string   `json:"from,omitempty"`
	To       string   `json:"to,omitempty"`
}

// MessageFilter selects Whisper messages for shh_newMessageFilter and
// shh_subscribe. DecryptWith is always serialized, as null when unset.
type MessageFilter struct {
	Topics      []string `json:"topics"`
	DecryptWith *string  `json:"decryptWith"`
	From        string   `json:"from,omitempty"`
}

// SignerModification carries the optional overrides a signer may apply
// when confirming a request.
type SignerModification struct {
	Gas       string      `json:"gas,omitempty"`
	GasPrice  string      `json:"gasPrice,omitempty"`
	Condition interface{} `json:"condition,omitempty"`
}

// TraceConfig tunes the debug_trace* calls.
type TraceConfig struct {
	DisableMemory  bool `json:"disableMemory,omitempty"`
	DisableStack   bool `json:"disableStack,omitempty"`
	DisableStorage bool `json:"disableStorage,omitempty"`
}

// DerivationStep is one element of the derivation sequence for
// parity_deriveAddressIndex.
type DerivationStep struct {
	Type  string `json:"type"`
	Index uint64 `json:"index"`
}

// MapPosition converts a map key and the map's storage position to the
// storage slot to query with eth_getStorageAt: keccak256(pad32(key) ++
// pad32(position)).
func MapPosition(key string, position uint64) (string, error) {
	key64 := strings.TrimPrefix(key, "0x")
	if len(key64) > 64 {
		return "", fmt.Errorf("map key %q longer than 32 bytes", key)
	}
	key64 = strings.Repeat("0", 64-len(key64)) + key64
	position64 := fmt.Sprintf("%064x", position)

	raw, err := hex.DecodeString(key64 + position64)
	if err != nil {
		return "", fmt.Errorf("invalid map key %q: %w", key, err)
	}
	return "0x" + hex.EncodeToString(crypto.Keccak256(raw)), nil
}

// formatHashrate renders a hashrate as the 32-byte hex quantity
// eth_submitHashrate expects.
func formatHashrate(rate uint64) string {
	return fmt.Sprintf("0x%064x", rate)
}

// formatPowNonce renders a proof-of-work nonce for eth_submitWork at the
// width the upstream documentation examples use.
func formatPowNonce(nonce uint64) string {
	return fmt.Sprintf("0x%08x", nonce)
}

// appendBlock adds an optional trailing block argument, leaving it to the
// builder's default when omitted.
func appendBlock(args []interface{}, block []BlockRef) []interface{} {
	if len(block) > 0 {
		args = append(args, block[0])
	}
	return args
}

// nullable maps an empty string to an explicit JSON null.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// oneTraceConfig flattens an optional TraceConfig, leaving the builder
// default in place when omitted.
func oneTraceConfig(args []interface{}, config []TraceConfig) []interface{} {
	if len(config) > 0 {
		args = append(args, config[0])
	}
	return args
}
