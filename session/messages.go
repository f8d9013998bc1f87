package session

import (
	"scoreboard/board"
	"scoreboard/protocol"
)

type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once per websocket after upgrade
type Join struct {
	Conn  Conn
	Reply chan<- JoinResult
}

type JoinResult struct {
	ClientID string
}

// Leave: issued on disconnect
type Leave struct {
	ClientID string
}

// Submit: one typed code from the form or a socket
type Submit struct {
	Input string
	Reply chan<- SubmitResult
}

type SubmitResult struct {
	Entry board.Entry
	Err   error
}

// Clear: reset every seat
type Clear struct {
	Reply chan<- error
}

// Snapshot: read the current board
type Snapshot struct {
	Reply chan<- protocol.State
}
