package protocol

import (
	"encoding/json"
)

const (
	MsgSubmit = "submit"
	MsgClear  = "clear"
	MsgState  = "state"
	MsgResult = "result"
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
