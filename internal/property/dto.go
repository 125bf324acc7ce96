package property

import (
	"github.com/google/uuid"

	"hearth/internal/property/model"
)

type TransitionCommand struct {
	PropertyID uuid.UUID
	Status     model.Status
	BuyerID    *uuid.UUID
}

// BuyerDTO is a potential buyer resolved through the user directory.
type BuyerDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
