// Package message defines the kovak IPC protocol.
//
// CLI sub-commands talk to the running daemon over the local socket using
// newline-delimited JSON. Each message is exactly one line: <json>\n
package message

import (
	"encoding/json"
	"fmt"
	"time"

	"go.klb.dev/kovak/internal/view"
)

// Type identifies the kind of message.
type Type string

const (
	TypeHistory         Type = "HISTORY"
	TypeHistoryResponse Type = "HISTORY_RESPONSE"
	TypeSearch          Type = "SEARCH"
	TypeSearchResponse  Type = "SEARCH_RESPONSE"
	TypeFindReset       Type = "FIND_RESET"
	TypeRestore         Type = "RESTORE"
	TypeClear           Type = "CLEAR"
	TypeToggle          Type = "TOGGLE"
	TypeHotkey          Type = "HOTKEY"
	TypeStatus          Type = "STATUS"
	TypeStatusResponse  Type = "STATUS_RESPONSE"
	TypeOK              Type = "OK"
	TypeInfo            Type = "INFO"
	TypeError           Type = "ERROR"
)

// Status carries daemon metadata for STATUS_RESPONSE.
type Status struct {
	Hotkey    string    `json:"hotkey"`
	Entries   int       `json:"entries"`
	Visible   bool      `json:"visible"`
	Backend   string    `json:"backend"`
	StartedAt time.Time `json:"started_at"`
}

// Message is the top-level wire envelope.
type Message struct {
	// Always present
	Type Type `json:"type"`

	// SEARCH: the query string as typed by the user
	Query string `json:"query,omitempty"`

	// RESTORE: the display text of the selected row
	Text string `json:"text,omitempty"`

	// HOTKEY: the requested combo string
	Hotkey string `json:"hotkey,omitempty"`

	// HISTORY_RESPONSE / SEARCH_RESPONSE: presentation rows, including
	// spacer rows and highlight marks
	Rows []view.Row `json:"rows,omitempty"`

	// SEARCH_RESPONSE: index of the first matching row, -1 for none.
	// Not omitempty: row 0 is a legitimate first match.
	First int `json:"first"`

	// STATUS_RESPONSE
	Status *Status `json:"status,omitempty"`

	// INFO / ERROR
	Info  string `json:"info,omitempty"`
	Error string `json:"error,omitempty"`
}

// Encode serialises the message to JSON without a trailing newline.
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode deserialises a message from raw JSON bytes.
func Decode(b []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("message decode: %w", err)
	}
	return &m, nil
}
