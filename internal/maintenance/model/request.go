package model

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusRequested  Status = "REQUESTED"
	StatusReviewed   Status = "REVIEWED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusRequested, StatusReviewed, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Statuses lists every status, in display order, for statistics maps.
func Statuses() []Status {
	return []Status{StatusRequested, StatusReviewed, StatusInProgress, StatusCompleted}
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// MaintenanceRequest is a ticket raised against a property by its tenant.
// CompletedAt is set exactly when the status is COMPLETED.
type MaintenanceRequest struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	PropertyID uuid.UUID `bun:",notnull,type:uuid"`
	// UserID is the submitting tenant.
	UserID uuid.UUID `bun:",notnull,type:uuid"`

	Title       string   `bun:",notnull"`
	Description string   `bun:",notnull"`
	Status      Status   `bun:",notnull,default:'REQUESTED'"`
	Priority    Priority `bun:",notnull"`

	Notes       *string    `bun:",nullzero"`
	CompletedAt *time.Time `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
