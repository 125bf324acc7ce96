package presence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hearth/internal/presence/model"
)

type PresenceRepository interface {
	// Touch upserts the record unconditionally; live user activity always wins.
	Touch(ctx context.Context, rec *model.PresenceRecord) error

	GetPresence(ctx context.Context, userID uuid.UUID) (*model.PresenceRecord, error)
	ListOnline(ctx context.Context) ([]model.PresenceRecord, error)

	// MarkOffline clears the record only if its stored last_activity still
	// equals observed, so a sweep cannot clobber a touch that raced in
	// between its read and write.
	MarkOffline(ctx context.Context, userID uuid.UUID, observed *time.Time) error
}
