package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hearth/config"
	"hearth/internal/chat"
	"hearth/internal/notify"
	"hearth/internal/presence"
	"hearth/internal/presence/model"
	"hearth/internal/presence/repository"
	"hearth/pkg/errors"
	"hearth/pkg/logger"
)

type PresenceUsecase struct {
	repo      presence.PresenceRepository
	rooms     chat.ChatRoomRepository
	publisher notify.Publisher
	guard     DecayGuard
	logger    logger.Logger
}

func NewPresenceUsecase(
	repo presence.PresenceRepository,
	rooms chat.ChatRoomRepository,
	publisher notify.Publisher,
	cfg config.PresenceConfig,
	logger logger.Logger,
) *PresenceUsecase {
	return &PresenceUsecase{
		repo:      repo,
		rooms:     rooms,
		publisher: publisher,
		guard:     NewDecayGuard(cfg.ActivityWindow, cfg.GraceWindow),
		logger:    logger,
	}
}

func (uc *PresenceUsecase) Touch(ctx context.Context, cmd presence.TouchCommand) error {
	now := time.Now()
	rec := &model.PresenceRecord{
		UserID:       cmd.UserID,
		IsOnline:     true,
		LastActivity: &now,
		MessageSent:  cmd.MessageSent,
	}
	if cmd.Location != "" {
		rec.Location = &cmd.Location
	}
	if err := uc.repo.Touch(ctx, rec); err != nil {
		uc.logger.Error("failed to record user activity", "user_id", cmd.UserID, "err", err)
		return errors.Internal("failed to record activity")
	}
	return nil
}

func (uc *PresenceUsecase) Get(ctx context.Context, userID uuid.UUID) (*model.PresenceRecord, error) {
	rec, err := uc.repo.GetPresence(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPresenceNotFound) {
			return nil, errors.ErrPresenceNotFound
		}
		uc.logger.Error("failed to read presence", "user_id", userID, "err", err)
		return nil, errors.Internal("failed to read presence")
	}
	return rec, nil
}

func (uc *PresenceUsecase) Disconnect(ctx context.Context, userID uuid.UUID) error {
	cur, err := uc.repo.GetPresence(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPresenceNotFound) {
			return errors.ErrPresenceNotFound
		}
		uc.logger.Error("failed to read presence for logout", "user_id", userID, "err", err)
		return errors.Internal("failed to read presence")
	}
	if !cur.IsOnline {
		return nil
	}

	// A touch racing the logout moves last_activity; re-read once and retry
	// so an explicit logout still wins.
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		lastErr = uc.repo.MarkOffline(ctx, userID, cur.LastActivity)
		if lastErr == nil {
			uc.notifyPeers(ctx, userID)
			return nil
		}
		if !errors.Is(lastErr, repository.ErrConcurrentUpdate) {
			break
		}
		if cur, err = uc.repo.GetPresence(ctx, userID); err != nil {
			lastErr = err
			break
		}
	}
	uc.logger.Error("failed to mark user offline on logout", "user_id", userID, "err", lastErr)
	return errors.Internal("failed to go offline")
}

// Sweep is the decay pass. Only the candidate listing can fail the sweep;
// every per-user error is logged and the batch continues. Records already
// transitioned stay transitioned if the sweep is interrupted, so a partial
// sweep is always safe to rerun.
func (uc *PresenceUsecase) Sweep(ctx context.Context, now time.Time) error {
	recs, err := uc.repo.ListOnline(ctx)
	if err != nil {
		uc.logger.Error("presence sweep: candidate query failed", "err", err)
		return errors.ErrSweepQueryFailed(err)
	}

	for _, rec := range recs {
		if rec.MessageSent {
			continue
		}
		if !uc.guard.ShouldDecay(rec.LastActivity, now) {
			continue
		}

		if err := uc.repo.MarkOffline(ctx, rec.UserID, rec.LastActivity); err != nil {
			if errors.Is(err, repository.ErrConcurrentUpdate) || errors.Is(err, repository.ErrPresenceNotFound) {
				// A fresh touch or logout won the race; the next pass decides.
				continue
			}
			uc.logger.Error("presence sweep: mark offline failed", "user_id", rec.UserID, "err", err)
			continue
		}

		uc.notifyPeers(ctx, rec.UserID)
	}
	return nil
}

// notifyPeers emits one presence-changed event per chat room to the other
// participant. The offline transition is already committed, so failures here
// are logged and swallowed.
func (uc *PresenceUsecase) notifyPeers(ctx context.Context, userID uuid.UUID) {
	rooms, err := uc.rooms.GetRoomsByParticipant(ctx, userID)
	if err != nil {
		uc.logger.Error("presence fan-out: room lookup failed", "user_id", userID, "err", err)
		return
	}

	offline := false
	for _, room := range rooms {
		evt := notify.Event{
			Type:      notify.TypePresenceChanged,
			EntityID:  userID,
			Online:    &offline,
			ActorID:   userID,
			Timestamp: time.Now(),
		}
		peer := room.Peer(userID)
		if err := uc.publisher.Publish(ctx, notify.UserPresenceChannel(peer), evt); err != nil {
			uc.logger.Error("presence fan-out: publish failed",
				"user_id", userID, "peer_id", peer, "room_id", room.ID, "err", err)
		}
	}
}
