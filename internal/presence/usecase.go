package presence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hearth/internal/presence/model"
)

type PresenceUsecase interface {
	// Touch marks the user online and refreshes their activity timestamp.
	Touch(ctx context.Context, cmd TouchCommand) error

	// Disconnect is the explicit-logout path to offline.
	Disconnect(ctx context.Context, userID uuid.UUID) error

	Get(ctx context.Context, userID uuid.UUID) (*model.PresenceRecord, error)

	// Sweep transitions stale online records to offline and notifies each
	// affected user's chat-room peers. One user's failure never stops the
	// rest of the batch.
	Sweep(ctx context.Context, now time.Time) error
}
