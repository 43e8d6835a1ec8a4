package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qchain/ethrpc/rpc"
)

func TestHTTPSend(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotContentType = r.Header.Get("Content-Type")
		var err error
		gotBody, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":83,"result":"0x4b7"}`))
	}))
	defer srv.Close()

	tr := NewHTTP(srv.URL)
	defer tr.Close()

	req := &rpc.Request{Version: rpc.Version, Method: "eth_blockNumber", Params: []interface{}{}, ID: 83}
	resp, err := tr.Send(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, `{"jsonrpc":"2.0","method":"eth_blockNumber","params":[],"id":83}`, string(gotBody))

	require.True(t, resp.OK())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, `{"jsonrpc":"2.0","id":83,"result":"0x4b7"}`, resp.String())
}

// A JSON-RPC application error is a successful exchange; the error object
// travels back in the body untouched.
func TestHTTPSendApplicationError(t *testing.T) {
	const body = `{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"Method not found"}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	tr := NewHTTP(srv.URL)
	resp, err := tr.Send(context.Background(), &rpc.Request{Version: rpc.Version, Method: "eth_foo", Params: []interface{}{}, ID: 1})
	require.NoError(t, err)
	require.Equal(t, body, resp.String())

	var envelope struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, resp.Decode(&envelope))
	require.Equal(t, -32601, envelope.Error.Code)
}

func TestHTTPSendBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no", http.StatusBadGateway)
	}))
	defer srv.Close()

	tr := NewHTTP(srv.URL)
	resp, err := tr.Send(context.Background(), &rpc.Request{Version: rpc.Version, Method: "eth_blockNumber", Params: []interface{}{}, ID: 83})
	require.NoError(t, err)
	require.False(t, resp.OK())
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestHTTPSendContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := NewHTTP(srv.URL)
	_, err := tr.Send(ctx, &rpc.Request{Version: rpc.Version, Method: "eth_blockNumber", Params: []interface{}{}, ID: 83})
	require.Error(t, err)
}
