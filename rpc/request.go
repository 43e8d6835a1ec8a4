// Package rpc builds JSON-RPC 2.0 request objects from a method's declared
// parameter list and the caller-supplied arguments. It performs no network
// I/O and no interpretation of values beyond JSON serialization.
package rpc

import "encoding/json"

// Version is the protocol version stamped on every request.
const Version = "2.0"

// Request is a JSON-RPC 2.0 request object. Params is always present,
// serializing to [] when the method takes no arguments.
type Request struct {
	Version string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      uint64        `json:"id"`
}

// Marshal serializes the request body.
func (r *Request) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
