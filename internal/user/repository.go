package user

import (
	"context"

	"github.com/google/uuid"

	models "hearth/internal/user/model"
)

// UserRepository is the user directory: it resolves display info for
// potential-buyer listings and notification payloads.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.User, error)
}
