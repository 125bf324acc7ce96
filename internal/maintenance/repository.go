package maintenance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hearth/internal/maintenance/model"
)

type StatusCount struct {
	Status model.Status `bun:"status"`
	Count  int          `bun:"count"`
}

type MaintenanceRepository interface {
	CreateRequest(ctx context.Context, req *model.MaintenanceRequest) error
	GetRequestByID(ctx context.Context, id uuid.UUID) (*model.MaintenanceRequest, error)

	// UpdateRequestStatus persists status, notes and completed_at together.
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, status model.Status, notes *string, completedAt *time.Time) error

	// CountByStatusForOwner aggregates requests across every property the
	// owner manages. Statuses with no requests are absent from the result.
	CountByStatusForOwner(ctx context.Context, ownerID uuid.UUID) ([]StatusCount, error)
}
