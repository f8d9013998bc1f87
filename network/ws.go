package network

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"scoreboard/protocol"
)

const (
	readLimit    = 1 << 16
	pongWait     = 60 * time.Second
	pingInterval = 25 * time.Second
	writeWait    = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	// Same-machine tool; any origin may connect.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConn serialises writes so the hub and the reply path can share a socket.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) Send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	// Upgrade HTTP -> WebSocket
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	wc := &wsConn{conn: conn}
	defer wc.Close()

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clientID, err := s.hub.JoinClient(ctx, wc)
	if err != nil {
		log.Println("join:", err)
		return
	}
	defer func() {
		leaveCtx, leaveCancel := context.WithTimeout(context.Background(), time.Second)
		defer leaveCancel()
		_ = s.hub.LeaveClient(leaveCtx, clientID)
	}()

	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := wc.ping(); err != nil {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println("read:", err)
			}
			return
		}
		res := s.handleMessage(ctx, msg)
		b, err := protocol.Encode(protocol.MsgResult, res)
		if err != nil {
			continue
		}
		if err := wc.Send(b); err != nil {
			log.Println("write:", err)
			return
		}
	}
}

func (s *Server) handleMessage(ctx context.Context, msg []byte) protocol.Result {
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		return protocol.Result{Message: err.Error()}
	}
	switch env.T {
	case protocol.MsgSubmit:
		sub, err := protocol.DecodePayload[protocol.Submit](env)
		if err != nil {
			return protocol.Result{Message: err.Error()}
		}
		return s.applyCode(ctx, sub.Code)
	case protocol.MsgClear:
		return s.clearAll(ctx)
	default:
		return protocol.Result{Message: "unknown message type " + env.T}
	}
}
