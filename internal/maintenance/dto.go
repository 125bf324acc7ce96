package maintenance

import (
	"github.com/google/uuid"

	"hearth/internal/maintenance/model"
)

type CreateRequestCommand struct {
	PropertyID  uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Priority    model.Priority
}

type UpdateStatusCommand struct {
	RequestID uuid.UUID
	Status    model.Status
	Notes     *string
	// ActorID must be the managing party of the request's property.
	ActorID uuid.UUID
}
