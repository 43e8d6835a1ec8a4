package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/qchain/ethrpc/rpc"
)

// notifyBuffer bounds the subscription notification channel. Push frames
// arriving while the buffer is full are dropped; the server's filter state
// is the source of truth, not this channel.
const notifyBuffer = 128

// WS exchanges requests as text frames on one persistent connection.
//
// Exchanges are serialized: one request/response pair occupies the socket
// at a time, so reply frames are matched FIFO and the fixed per-method
// request ids stay unambiguous. Frames that carry a
// method field instead of an id (subscription pushes) are routed to the
// Notifications channel.
type WS struct {
	conn   *websocket.Conn
	logger *zap.Logger

	mu     sync.Mutex // guards one in-flight exchange
	notify chan json.RawMessage

	closeOnce sync.Once
	closeErr  error
}

// WSOption configures a WebSocket transport.
type WSOption func(*WS)

// WithWSLogger attaches a logger. The default discards everything.
func WithWSLogger(logger *zap.Logger) WSOption {
	return func(t *WS) { t.logger = logger }
}

// DialWS opens the WebSocket connection. The connection persists across
// calls until Close.
func DialWS(ctx context.Context, endpoint string, opts ...WSOption) (*WS, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	t := &WS{
		conn:   conn,
		logger: zap.NewNop(),
		notify: make(chan json.RawMessage, notifyBuffer),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Notifications exposes subscription push frames received while waiting
// for replies. Correlating a frame to a subscription is the consumer's
// job, via the server-issued subscription identifier inside the frame.
func (t *WS) Notifications() <-chan json.RawMessage {
	return t.notify
}

// wsEnvelope is the minimal view needed to tell replies from pushes.
type wsEnvelope struct {
	ID     *json.Number `json:"id"`
	Method string       `json:"method"`
}

// Send writes the request frame and reads frames until the reply arrives.
// Cancellation takes effect through the context deadline, which is applied
// to the socket; a cancel without a deadline is only observed between
// frames, not inside a blocked read.
func (t *WS) Send(ctx context.Context, req *rpc.Request) (*Response, error) {
	body, err := req.Marshal()
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	deadline := time.Time{}
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	if err := t.conn.SetWriteDeadline(deadline); err != nil {
		return nil, err
	}
	if err := t.conn.SetReadDeadline(deadline); err != nil {
		return nil, err
	}

	t.logger.Debug("sending RPC frame",
		zap.String("method", req.Method),
		zap.Uint64("id", req.ID))

	if err := t.conn.WriteMessage(websocket.TextMessage, body); err != nil {
		return nil, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		_, frame, err := t.conn.ReadMessage()
		if err != nil {
			return nil, err
		}

		var env wsEnvelope
		if err := json.Unmarshal(frame, &env); err == nil && env.ID == nil && env.Method != "" {
			select {
			case t.notify <- json.RawMessage(frame):
			default:
				t.logger.Warn("dropping subscription notification",
					zap.String("method", env.Method))
			}
			continue
		}

		return &Response{
			StatusCode: http.StatusOK,
			Body:       frame,
		}, nil
	}
}

// Close tears the connection down. Safe to call more than once.
func (t *WS) Close() error {
	t.closeOnce.Do(func() {
		deadline := time.Now().Add(time.Second)
		_ = t.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		t.closeErr = t.conn.Close()
		close(t.notify)
	})
	return t.closeErr
}
