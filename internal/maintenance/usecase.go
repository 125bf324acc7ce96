package maintenance

import (
	"context"

	"github.com/google/uuid"

	"hearth/internal/maintenance/model"
)

type MaintenanceUsecase interface {
	// Create validates and files a new request with status REQUESTED.
	Create(ctx context.Context, cmd CreateRequestCommand) (*model.MaintenanceRequest, error)

	// UpdateStatus sets a new status on behalf of the property's managing
	// party. COMPLETED stamps completed_at; any other status clears it.
	UpdateStatus(ctx context.Context, cmd UpdateStatusCommand) (*model.MaintenanceRequest, error)

	// Statistics returns request counts per status across all properties
	// the owner manages. Every status appears, zero-valued when empty.
	Statistics(ctx context.Context, ownerID uuid.UUID) (map[model.Status]int, error)
}
