package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"hearth/internal/chat/model"
	"hearth/pkg/logger"
)

type ChatRoomRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrRoomNotFound = errors.New("chat room not found")

func NewChatRoomRepository(db *bun.DB, logger logger.Logger) *ChatRoomRepository {
	return &ChatRoomRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ChatRoomRepository) CreateRoom(ctx context.Context, room *model.ChatRoom) error {
	_, err := r.db.NewInsert().Model(room).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.CreateRoom.Insert: ")
	}
	return nil
}

func (r *ChatRoomRepository) GetRoomByID(ctx context.Context, id uuid.UUID) (*model.ChatRoom, error) {
	room := new(model.ChatRoom)
	err := r.db.NewSelect().Model(room).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.GetRoomByID.Scan: ")
	}
	return room, nil
}

func (r *ChatRoomRepository) GetRoomsByParticipant(ctx context.Context, userID uuid.UUID) ([]model.ChatRoom, error) {
	var rooms []model.ChatRoom
	err := r.db.NewSelect().
		Model(&rooms).
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.GetRoomsByParticipant.Scan: ")
	}
	return rooms, nil
}

func (r *ChatRoomRepository) GetRoomsByProperty(ctx context.Context, propertyID uuid.UUID) ([]model.ChatRoom, error) {
	var rooms []model.ChatRoom
	err := r.db.NewSelect().Model(&rooms).Where("property_id = ?", propertyID).Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.GetRoomsByProperty.Scan: ")
	}
	return rooms, nil
}

func (r *ChatRoomRepository) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().Model((*model.ChatRoom)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.DeleteRoom.Exec: ")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (r *ChatRoomRepository) DeleteRoomsByProperty(ctx context.Context, propertyID uuid.UUID) (int, error) {
	res, err := r.db.NewDelete().
		Model((*model.ChatRoom)(nil)).
		Where("property_id = ?", propertyID).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "chatRepo.DeleteRoomsByProperty.Exec: ")
	}
	rows, _ := res.RowsAffected()
	return int(rows), nil
}
