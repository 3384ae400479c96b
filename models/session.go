package models

import (
	"database/sql/driver"
	"encoding/json"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Session is one persisted conversation. Timestamps are UTC ISO-8601 with
// second precision.
type Session struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Category  Category `json:"category"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// SourceList is a sources_json column: a JSON-encoded list of source items.
type SourceList []SourceItem

// Value implements driver.Valuer. A nil list is stored as NULL.
func (s SourceList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *SourceList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	if len(bytes) == 0 {
		*s = SourceList{}
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// Message is one persisted chat message. Messages are append-only and
// ordered by ID within a session. TrafficLight and Sources are set only on
// assistant messages.
type Message struct {
	ID           int64        `json:"id"`
	SessionID    int64        `json:"session_id"`
	Role         string       `json:"role"`
	Content      string       `json:"content"`
	TrafficLight TrafficLight `json:"traffic_light,omitempty"`
	Sources      SourceList   `json:"sources,omitempty"`
	CreatedAt    string       `json:"created_at"`
}
