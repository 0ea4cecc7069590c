package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Chat roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a conversation as held by the client. The
// server only receives it as history and never stores it.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	IsError   bool      `json:"isError,omitempty"`
}

// UnmarshalJSON accepts the message shape kept by the dashboard widget:
// the id may be a number (a millisecond clock value) and the speaker may be
// given as "type" ("user" or "ai") instead of "role". An unparsable
// timestamp is left zero.
func (m *ChatMessage) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        json.RawMessage `json:"id"`
		Role      string          `json:"role"`
		Type      string          `json:"type"`
		Content   string          `json:"content"`
		Timestamp json.RawMessage `json:"timestamp"`
		IsError   bool            `json:"isError"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := messageID(raw.ID)
	if err != nil {
		return err
	}

	*m = ChatMessage{
		ID:      id,
		Role:    ChatRole(raw.Role, raw.Type),
		Content: raw.Content,
		IsError: raw.IsError,
	}
	if len(raw.Timestamp) > 0 {
		var ts time.Time
		if json.Unmarshal(raw.Timestamp, &ts) == nil {
			m.Timestamp = ts
		}
	}
	return nil
}

func messageID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("chat message id: want string or number, got %s", raw)
	}
	return n.String(), nil
}

// ChatRole resolves the speaker of a message from its role, falling back to
// the widget's type field. "ai" and "model" map to RoleAssistant.
func ChatRole(role, typ string) string {
	v := strings.ToLower(strings.TrimSpace(role))
	if v == "" {
		v = strings.ToLower(strings.TrimSpace(typ))
	}
	switch v {
	case "ai", "model", RoleAssistant:
		return RoleAssistant
	case "":
		return RoleUser
	default:
		return v
	}
}
