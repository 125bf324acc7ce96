package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hearth/config"
	"hearth/internal/chat"
	chatmodel "hearth/internal/chat/model"
	"hearth/internal/notify"
	"hearth/internal/property"
	"hearth/internal/property/model"
	"hearth/internal/property/repository"
	"hearth/internal/user"
	"hearth/pkg/errors"
	"hearth/pkg/logger"
)

const defaultRetention = 5 * 24 * time.Hour

type PropertyUsecase struct {
	repo      property.PropertyRepository
	rooms     chat.ChatRoomRepository
	users     user.UserRepository
	publisher notify.Publisher
	retention time.Duration
	logger    logger.Logger
}

func NewPropertyUsecase(
	repo property.PropertyRepository,
	rooms chat.ChatRoomRepository,
	users user.UserRepository,
	publisher notify.Publisher,
	cfg config.RetentionConfig,
	logger logger.Logger,
) *PropertyUsecase {
	retention := cfg.Window
	if retention <= 0 {
		retention = defaultRetention
	}
	return &PropertyUsecase{
		repo:      repo,
		rooms:     rooms,
		users:     users,
		publisher: publisher,
		retention: retention,
		logger:    logger,
	}
}

func (uc *PropertyUsecase) Transition(ctx context.Context, cmd property.TransitionCommand) (*model.Property, error) {
	if !cmd.Status.Valid() {
		return nil, errors.ErrUnknownStatus
	}

	p, err := uc.getProperty(ctx, cmd.PropertyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	upd := property.StatusUpdate{Status: cmd.Status}

	switch {
	case p.Status == model.StatusAvailable && cmd.Status.Terminal():
		if cmd.BuyerID == nil {
			return nil, errors.ErrNoPotentialBuyer
		}
		ok, err := uc.hasChatRelationship(ctx, p, *cmd.BuyerID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.ErrNoPotentialBuyer
		}
		upd.BuyerID = cmd.BuyerID
		upd.TransactionDate = &now

	case p.Status == model.StatusAvailable && cmd.Status == model.StatusCancelled:
		// Any supplied buyer is ignored on cancellation.
		upd.TransactionDate = &now

	case p.Status == model.StatusCancelled && cmd.Status == model.StatusAvailable:
		// Reactivation clears buyer attribution and transaction date.

	default:
		return nil, errors.ErrInvalidTransition
	}

	if err := uc.repo.UpdateStatus(ctx, p.ID, p.Status, upd); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, errors.ErrPropertyConflict
		}
		uc.logger.Error("failed to persist status transition",
			"property_id", p.ID, "status", cmd.Status, "err", err)
		return nil, errors.ErrTransitionFailed(err)
	}

	updated := *p
	updated.Status = upd.Status
	updated.BuyerID = upd.BuyerID
	updated.TransactionDate = upd.TransactionDate

	// The transition is committed; notification failure never fails the call.
	uc.notifyStatusChange(ctx, &updated, now)

	return &updated, nil
}

func (uc *PropertyUsecase) PotentialBuyers(ctx context.Context, propertyID uuid.UUID) ([]property.BuyerDTO, error) {
	p, err := uc.getProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	rooms, err := uc.rooms.GetRoomsByProperty(ctx, propertyID)
	if err != nil {
		uc.logger.Error("failed to query chat rooms for property", "property_id", propertyID, "err", err)
		return nil, errors.Internal("failed to query chat rooms")
	}

	ids := counterparties(rooms, p.OwnerID)
	if len(ids) == 0 {
		return []property.BuyerDTO{}, nil
	}

	users, err := uc.users.GetUsersByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("failed to resolve potential buyers", "property_id", propertyID, "err", err)
		return nil, errors.Internal("failed to resolve users")
	}

	buyers := make([]property.BuyerDTO, 0, len(users))
	for _, u := range users {
		buyers = append(buyers, property.BuyerDTO{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return buyers, nil
}

func (uc *PropertyUsecase) Delete(ctx context.Context, propertyID uuid.UUID) error {
	if _, err := uc.getProperty(ctx, propertyID); err != nil {
		return err
	}

	// Rooms go first so an interruption leaves no orphaned rooms behind a
	// deleted property.
	if _, err := uc.rooms.DeleteRoomsByProperty(ctx, propertyID); err != nil {
		uc.logger.Error("failed to cascade chat rooms", "property_id", propertyID, "err", err)
		return errors.Internal("failed to delete chat rooms")
	}

	if err := uc.repo.DeleteProperty(ctx, propertyID); err != nil {
		// A concurrent delete finishing first is still a successful delete.
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil
		}
		uc.logger.Error("failed to delete property", "property_id", propertyID, "err", err)
		return errors.Internal("failed to delete property")
	}
	return nil
}

// ExpireSweep processes each expired property independently; a failure skips
// that property until the next pass and never blocks the rest.
func (uc *PropertyUsecase) ExpireSweep(ctx context.Context, now time.Time) error {
	cutoff := now.Add(-uc.retention)

	props, err := uc.repo.ListExpired(ctx, cutoff)
	if err != nil {
		uc.logger.Error("expiration sweep: candidate query failed", "err", err)
		return errors.ErrSweepQueryFailed(err)
	}

	for _, p := range props {
		// The conditional delete re-checks expiry, so a reactivation that
		// raced in after the candidate read keeps the listing and its rooms.
		// Rooms go second for the same reason: they must only cascade once
		// the property row is confirmed gone.
		if err := uc.repo.DeleteExpired(ctx, p.ID, cutoff); err != nil {
			if errors.Is(err, repository.ErrStaleStatus) {
				continue
			}
			uc.logger.Error("expiration sweep: property delete failed", "property_id", p.ID, "err", err)
			continue
		}
		if _, err := uc.rooms.DeleteRoomsByProperty(ctx, p.ID); err != nil {
			uc.logger.Error("expiration sweep: chat room cascade failed", "property_id", p.ID, "err", err)
			continue
		}
		uc.logger.Info("expired property removed", "property_id", p.ID, "status", p.Status)
	}
	return nil
}

func (uc *PropertyUsecase) getProperty(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	p, err := uc.repo.GetPropertyByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, errors.ErrPropertyNotFound
		}
		uc.logger.Error("failed to load property", "property_id", id, "err", err)
		return nil, errors.Internal("failed to load property")
	}
	return p, nil
}

func (uc *PropertyUsecase) hasChatRelationship(ctx context.Context, p *model.Property, buyerID uuid.UUID) (bool, error) {
	rooms, err := uc.rooms.GetRoomsByProperty(ctx, p.ID)
	if err != nil {
		uc.logger.Error("failed to query chat rooms for property", "property_id", p.ID, "err", err)
		return false, errors.Internal("failed to query chat rooms")
	}
	for _, id := range counterparties(rooms, p.OwnerID) {
		if id == buyerID {
			return true, nil
		}
	}
	return false, nil
}

// counterparties returns the distinct room participants that are not the
// property owner.
func counterparties(rooms []chatmodel.ChatRoom, ownerID uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(rooms))
	var ids []uuid.UUID
	for _, room := range rooms {
		other := room.Peer(ownerID)
		if other == ownerID || seen[other] {
			continue
		}
		seen[other] = true
		ids = append(ids, other)
	}
	return ids
}

func (uc *PropertyUsecase) notifyStatusChange(ctx context.Context, p *model.Property, at time.Time) {
	evt := notify.Event{
		Type:      notify.TypePropertyStatusChanged,
		EntityID:  p.ID,
		Status:    string(p.Status),
		ActorID:   p.OwnerID,
		Timestamp: at,
	}
	if err := uc.publisher.Publish(ctx, notify.UserPropertyChannel(p.OwnerID), evt); err != nil {
		uc.logger.Error("property fan-out: owner publish failed", "property_id", p.ID, "err", err)
	}
	if p.BuyerID != nil {
		if err := uc.publisher.Publish(ctx, notify.UserPropertyChannel(*p.BuyerID), evt); err != nil {
			uc.logger.Error("property fan-out: buyer publish failed", "property_id", p.ID, "err", err)
		}
	}
}
