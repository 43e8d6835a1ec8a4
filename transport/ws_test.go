package transport

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/qchain/ethrpc/rpc"
)

var upgrader = websocket.Upgrader{}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestWSSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		_, frame, err := conn.ReadMessage()
		if err != nil {
			return
		}
		require.Equal(t, `{"jsonrpc":"2.0","method":"eth_blockNumber","params":[],"id":83}`, string(frame))
		conn.WriteMessage(websocket.TextMessage, []byte(`{"jsonrpc":"2.0","id":83,"result":"0x4b7"}`))
	}))
	defer srv.Close()

	tr, err := DialWS(context.Background(), wsURL(srv))
	require.NoError(t, err)
	defer tr.Close()

	resp, err := tr.Send(context.Background(), &rpc.Request{Version: rpc.Version, Method: "eth_blockNumber", Params: []interface{}{}, ID: 83})
	require.NoError(t, err)
	require.True(t, resp.OK())
	require.Equal(t, `{"jsonrpc":"2.0","id":83,"result":"0x4b7"}`, resp.String())
}

// A push frame arriving before the reply is routed to Notifications and
// the reply still resolves the exchange.
func TestWSNotificationRouting(t *testing.T) {
	const push = `{"jsonrpc":"2.0","method":"eth_subscription","params":{"subscription":"0x9cef478923ff08bf67fde6c64013158d","result":{}}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		conn.WriteMessage(websocket.TextMessage, []byte(push))
		conn.WriteMessage(websocket.TextMessage, []byte(`{"jsonrpc":"2.0","id":1,"result":"0x1"}`))
	}))
	defer srv.Close()

	tr, err := DialWS(context.Background(), wsURL(srv))
	require.NoError(t, err)
	defer tr.Close()

	resp, err := tr.Send(context.Background(), &rpc.Request{Version: rpc.Version, Method: "eth_subscribe", Params: []interface{}{"newHeads"}, ID: 1})
	require.NoError(t, err)
	require.Equal(t, `{"jsonrpc":"2.0","id":1,"result":"0x1"}`, resp.String())

	select {
	case frame := <-tr.Notifications():
		require.JSONEq(t, push, string(frame))
	case <-time.After(time.Second):
		t.Fatal("notification never delivered")
	}
}

// Exchanges hold the socket one at a time, so concurrent senders cannot
// interleave reply frames.
func TestWSSerializedExchanges(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		for {
			var req rpc.Request
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			if err := conn.WriteJSON(map[string]interface{}{
				"jsonrpc": "2.0", "id": req.ID, "result": req.Method,
			}); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	tr, err := DialWS(context.Background(), wsURL(srv))
	require.NoError(t, err)
	defer tr.Close()

	done := make(chan error, 2)
	for _, method := range []string{"eth_blockNumber", "eth_gasPrice"} {
		go func(method string) {
			resp, err := tr.Send(context.Background(), &rpc.Request{Version: rpc.Version, Method: method, Params: []interface{}{}, ID: 1})
			if err == nil && !strings.Contains(resp.String(), method) {
				err = fmt.Errorf("reply %s does not match request %s", resp, method)
			}
			done <- err
		}(method)
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, <-done)
	}
}

func TestWSCloseIdempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		conn.ReadMessage()
		conn.Close()
	}))
	defer srv.Close()

	tr, err := DialWS(context.Background(), wsURL(srv))
	require.NoError(t, err)
	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())
}
