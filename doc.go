// Package ethrpc provides JSON-RPC client bindings for Ethereum-family
// nodes (Geth/Parity).
//
// Every supported RPC method is exposed both as a typed wrapper
// (EthGetBalance, ParityNextNonce, ...) and through the generic Invoke
// entry point, which accepts either the snake_case or the camelCase
// spelling of a method name. The client builds the JSON-RPC 2.0 request,
// delivers it over HTTP or WebSocket depending on the endpoint scheme, and
// hands the raw response back without inspecting the result or error
// fields. There are no retries and no response validation.
//
// A client runs one of two call strategies, chosen at construction time.
// The default blocking strategy completes the network exchange before a
// method returns. With WithDeferred, methods return immediately and the
// returned Call resolves on Await; Gather aggregates several in-flight
// calls preserving issue order.
package ethrpc
