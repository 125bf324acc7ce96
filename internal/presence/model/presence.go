package model

import (
	"time"

	"github.com/google/uuid"
)

// PresenceRecord is the per-user online flag for the chat subsystem. Stored
// as JSON in redis keyed by user id. Offline records never carry activity
// state: is_online=false implies last_activity, location and message_sent
// are all cleared.
type PresenceRecord struct {
	UserID       uuid.UUID  `json:"user_id"`
	IsOnline     bool       `json:"is_online"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
	Location     *string    `json:"location,omitempty"`
	MessageSent  bool       `json:"message_sent"`
}

// Offline returns the record's offline form with all activity state cleared.
func (r PresenceRecord) Offline() PresenceRecord {
	return PresenceRecord{UserID: r.UserID}
}
