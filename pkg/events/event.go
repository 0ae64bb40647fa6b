package events

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Topics carried over the in-process bus.
const TopicSessionPurge = "SESSION_PURGE"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the topic the event is published on.
	EventType() string

	// Payload returns the serialized message body.
	Payload() ([]byte, error)
}

// Reasons a session purge is requested.
const (
	PurgeReasonCleared = "cleared"
	PurgeReasonExpired = "expired"
)

// SessionPurgeEvent asks the consumer to cascade-delete everything a session
// owns: chunks, conversations, then the session record itself.
type SessionPurgeEvent struct {
	SessionId uuid.UUID `json:"session_id"`
	Reason    string    `json:"reason"`
}

func (e SessionPurgeEvent) EventType() string {
	return TopicSessionPurge
}

func (e SessionPurgeEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}
