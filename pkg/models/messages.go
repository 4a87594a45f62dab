package models

import "time"

// Message types for WebSocket communication
const (
	MessageTypeContainerUpdate = "container_update"
	MessageTypeHeartbeat       = "heartbeat"
	MessageTypeError           = "error"
)

// Patch modes
const (
	PatchInner = "inner"
	PatchOuter = "outer"
)

// ClientMessage represents a message from browser to server
type ClientMessage struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// ServerMessage represents a message from server to browser
type ServerMessage struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Patch replaces the content of one element on the page.
// Target is an element id; Mode "inner" swaps children, "outer" swaps the element.
type Patch struct {
	Target string `json:"target"`
	Mode   string `json:"mode"`
	HTML   string `json:"html"`
	Token  uint64 `json:"token"`
}

// ConnectionStats represents connection statistics
type ConnectionStats struct {
	ClientID          string    `json:"client_id"`
	SessionID         string    `json:"session_id"`
	ConnectedAt       time.Time `json:"connected_at"`
	MessagesSent      int64     `json:"messages_sent"`
	MessagesReceived  int64     `json:"messages_received"`
	LastMessageAt     time.Time `json:"last_message_at"`
	BufferSize        int       `json:"buffer_size"`
	BufferUtilization float64   `json:"buffer_utilization"` // Percentage
}

// ErrorMessage represents an error message
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an HTTP error body
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// SessionState is the part of a dashboard session that survives restarts
type SessionState struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	ActiveTab string    `json:"active_tab"`
	UpdatedAt time.Time `json:"updated_at"`
}
