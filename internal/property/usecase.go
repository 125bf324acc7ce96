package property

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hearth/internal/property/model"
)

type PropertyUsecase interface {
	// Transition moves the property through its lifecycle:
	// available → sold/rented (requires a potential buyer), available →
	// cancelled, cancelled → available. Sold and rented are terminal.
	Transition(ctx context.Context, cmd TransitionCommand) (*model.Property, error)

	// PotentialBuyers lists the distinct chat-room counterparties for the
	// property, the candidate set for a sold/rented transition.
	PotentialBuyers(ctx context.Context, propertyID uuid.UUID) ([]BuyerDTO, error)

	// Delete removes the property and cascades its chat rooms.
	Delete(ctx context.Context, propertyID uuid.UUID) error

	// ExpireSweep deletes properties past the retention window after
	// reaching a terminal or cancelled status, chat rooms included. No
	// notification is emitted.
	ExpireSweep(ctx context.Context, now time.Time) error
}
