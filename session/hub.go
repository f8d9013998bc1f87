package session

import (
	"context"
	"fmt"
	"log"

	"scoreboard/board"
	"scoreboard/protocol"
)

// Hub owns a Session for the web front end. Handlers talk to it through
// Inbox; only Run touches the session or the client set.
type Hub struct {
	Inbox   chan any
	session *Session
	clients map[string]Conn
	nextID  int
	quit    chan struct{}
	done    chan struct{}
}

func NewHub(s *Session) *Hub {
	return &Hub{
		Inbox:   make(chan any, 256),
		session: s,
		clients: make(map[string]Conn),
		nextID:  1,
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (h *Hub) Stop() {
	close(h.quit)
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

func (h *Hub) Run() {
	defer close(h.done)
	for {
		select {
		case <-h.quit:
			for id, c := range h.clients {
				_ = c.Close()
				delete(h.clients, id)
			}
			return
		case cmd := <-h.Inbox:
			h.handleCommand(cmd)
		}
	}
}

func (h *Hub) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		clientID := fmt.Sprintf("c%d", h.nextID)
		h.nextID++
		h.clients[clientID] = c.Conn
		h.sendStateTo(c.Conn)
		c.Reply <- JoinResult{ClientID: clientID}
	case Leave:
		if conn, ok := h.clients[c.ClientID]; ok {
			_ = conn.Close()
			delete(h.clients, c.ClientID)
		}
	case Submit:
		e, err := h.session.Submit(c.Input)
		if err == nil || IsSaveError(err) {
			h.broadcastState()
		}
		c.Reply <- SubmitResult{Entry: e, Err: err}
	case Clear:
		err := h.session.Clear()
		h.broadcastState()
		c.Reply <- err
	case Snapshot:
		c.Reply <- h.session.State()
	default:
		log.Printf("hub: unknown command %T", cmd)
	}
}

func (h *Hub) broadcastState() {
	b, err := protocol.Encode(protocol.MsgState, h.session.State())
	if err != nil {
		return
	}

	var failed []string
	for id, c := range h.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		_ = h.clients[id].Close()
		delete(h.clients, id)
	}
}

func (h *Hub) sendStateTo(c Conn) {
	b, err := protocol.Encode(protocol.MsgState, h.session.State())
	if err != nil {
		return
	}
	_ = c.Send(b)
}

// send delivers cmd to the hub unless ctx ends or the hub has stopped.
func (h *Hub) send(ctx context.Context, cmd any) error {
	select {
	case h.Inbox <- cmd:
		return nil
	case <-h.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// await waits for the hub's answer. A reply already sent before the hub
// stopped still wins over ErrStopped.
func await[T any](ctx context.Context, h *Hub, reply chan T) (T, error) {
	var zero T
	select {
	case v := <-reply:
		return v, nil
	case <-h.done:
		select {
		case v := <-reply:
			return v, nil
		default:
			return zero, ErrStopped
		}
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (h *Hub) JoinClient(ctx context.Context, c Conn) (string, error) {
	reply := make(chan JoinResult, 1)
	if err := h.send(ctx, Join{Conn: c, Reply: reply}); err != nil {
		return "", err
	}
	res, err := await(ctx, h, reply)
	return res.ClientID, err
}

func (h *Hub) LeaveClient(ctx context.Context, clientID string) error {
	return h.send(ctx, Leave{ClientID: clientID})
}

// SubmitCode applies input through the hub. The error is a board error, a
// *SaveError, ErrStopped or the context error.
func (h *Hub) SubmitCode(ctx context.Context, input string) (board.Entry, error) {
	reply := make(chan SubmitResult, 1)
	if err := h.send(ctx, Submit{Input: input, Reply: reply}); err != nil {
		return board.Entry{}, err
	}
	res, err := await(ctx, h, reply)
	if err != nil {
		return board.Entry{}, err
	}
	return res.Entry, res.Err
}

func (h *Hub) ClearAll(ctx context.Context) error {
	reply := make(chan error, 1)
	if err := h.send(ctx, Clear{Reply: reply}); err != nil {
		return err
	}
	saveErr, err := await(ctx, h, reply)
	if err != nil {
		return err
	}
	return saveErr
}

func (h *Hub) State(ctx context.Context) (protocol.State, error) {
	reply := make(chan protocol.State, 1)
	if err := h.send(ctx, Snapshot{Reply: reply}); err != nil {
		return protocol.State{}, err
	}
	return await(ctx, h, reply)
}
