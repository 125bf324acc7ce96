package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	TypePresenceChanged          EventType = "presence-changed"
	TypePropertyStatusChanged    EventType = "property-status-changed"
	TypeMaintenanceStatusChanged EventType = "maintenance-status-changed"
)

// Event is the wire payload delivered to subscribers. Status is set for
// lifecycle events, Online for presence events. UserID carries the submitter
// on shared channels so listeners can filter client-side.
type Event struct {
	Type      EventType  `json:"type"`
	EntityID  uuid.UUID  `json:"entity_id"`
	Status    string     `json:"status,omitempty"`
	Online    *bool      `json:"online,omitempty"`
	ActorID   uuid.UUID  `json:"actor_id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// Publisher delivers one event to one channel. Implementations must be safe
// for concurrent use; callers treat delivery as fire-and-forget after their
// own state is committed.
type Publisher interface {
	Publish(ctx context.Context, channel string, event Event) error
}

// MaintenanceUpdatesChannel is the shared feed of all maintenance changes.
const MaintenanceUpdatesChannel = "maintenance.updates"

func UserPresenceChannel(userID uuid.UUID) string {
	return "user." + userID.String() + ".presence"
}

func UserPropertyChannel(userID uuid.UUID) string {
	return "user." + userID.String() + ".property"
}

func UserMaintenanceChannel(userID uuid.UUID) string {
	return "user." + userID.String() + ".maintenance"
}
