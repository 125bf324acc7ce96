package chat

import (
	"context"

	"github.com/google/uuid"

	"hearth/internal/chat/model"
)

type ChatRoomRepository interface {
	CreateRoom(ctx context.Context, room *model.ChatRoom) error
	GetRoomByID(ctx context.Context, id uuid.UUID) (*model.ChatRoom, error)

	// GetRoomsByParticipant returns rooms where the user is buyer or seller.
	GetRoomsByParticipant(ctx context.Context, userID uuid.UUID) ([]model.ChatRoom, error)
	GetRoomsByProperty(ctx context.Context, propertyID uuid.UUID) ([]model.ChatRoom, error)

	DeleteRoom(ctx context.Context, id uuid.UUID) error
	// DeleteRoomsByProperty removes every room attached to a property and
	// reports how many were deleted. Zero is not an error.
	DeleteRoomsByProperty(ctx context.Context, propertyID uuid.UUID) (int, error)
}
