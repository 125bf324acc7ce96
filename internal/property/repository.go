package property

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hearth/internal/property/model"
)

// StatusUpdate is the atomic unit of a lifecycle transition: status, buyer
// attribution and transaction date always move together.
type StatusUpdate struct {
	Status          model.Status
	BuyerID         *uuid.UUID
	TransactionDate *time.Time
}

type PropertyRepository interface {
	CreateProperty(ctx context.Context, p *model.Property) error
	GetPropertyByID(ctx context.Context, id uuid.UUID) (*model.Property, error)

	// UpdateStatus persists the update only if the stored status still
	// equals observed; a concurrent transition makes it fail instead of
	// being clobbered.
	UpdateStatus(ctx context.Context, id uuid.UUID, observed model.Status, upd StatusUpdate) error

	// ListExpired returns properties in a terminal or cancelled status whose
	// transaction date is before cutoff.
	ListExpired(ctx context.Context, cutoff time.Time) ([]model.Property, error)

	// DeleteExpired deletes the property only if it is still past the cutoff
	// in a non-available status. Zero affected rows means a racing transition
	// made the listing live again (or it is already gone) and nothing may be
	// removed.
	DeleteExpired(ctx context.Context, id uuid.UUID, cutoff time.Time) error

	DeleteProperty(ctx context.Context, id uuid.UUID) error
}
