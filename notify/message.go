package notify

import (
	"fmt"

	"github.com/google/uuid"
)

// Common message types. Types are free-form strings; engines assign meaning.
// These constants only cover the conventional severities.
const (
	TypeInfo    = "info"
	TypeSuccess = "success"
	TypeWarning = "warning"
	TypeError   = "error"
	TypeDebug   = "debug"
)

// Message is a single queued notification. Payload is free-form: typically one
// string, optionally preceded by an engine-specific options map.
type Message struct {
	ID      uuid.UUID `json:"id"`
	Type    string    `json:"type"`
	Payload []any     `json:"payload,omitempty"`
}

// NewMessage creates a message with a fresh ID.
func NewMessage(typ string, payload ...any) Message {
	return Message{
		ID:      uuid.New(),
		Type:    typ,
		Payload: payload,
	}
}

// ValidType reports whether t is safe for flash transport. Only letters,
// digits, hyphen and underscore are allowed; anything else disqualifies the
// message from the persisted channel.
func ValidType(t string) bool {
	if t == "" {
		return false
	}
	for _, r := range t {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}

// Options returns the leading options map, if the first payload element is one.
func (m Message) Options() (map[string]any, bool) {
	if len(m.Payload) == 0 {
		return nil, false
	}
	opts, ok := m.Payload[0].(map[string]any)
	return opts, ok
}

// Last returns the final payload element, or nil for an empty payload.
func (m Message) Last() any {
	if len(m.Payload) == 0 {
		return nil
	}
	return m.Payload[len(m.Payload)-1]
}

// Text returns the final payload element rendered as a string.
// This is what display engines show to the user.
func (m Message) Text() string {
	last := m.Last()
	if last == nil {
		return ""
	}
	if s, ok := last.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", last)
}
