package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"hearth/internal/presence/model"
	"hearth/pkg/logger"
)

const keyPrefix = "presence:"

type PresenceRepository struct {
	rdb    *redis.Client
	logger *logger.Logger
}

var (
	ErrPresenceNotFound = errors.New("presence record not found")
	ErrConcurrentUpdate = errors.New("presence record changed concurrently")
)

func NewPresenceRepository(rdb *redis.Client, logger logger.Logger) *PresenceRepository {
	return &PresenceRepository{
		rdb:    rdb,
		logger: &logger,
	}
}

func key(userID uuid.UUID) string {
	return keyPrefix + userID.String()
}

func (r *PresenceRepository) Touch(ctx context.Context, rec *model.PresenceRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "presenceRepo.Touch.Marshal: ")
	}
	if err := r.rdb.Set(ctx, key(rec.UserID), data, 0).Err(); err != nil {
		return errors.Wrap(err, "presenceRepo.Touch.Set: ")
	}
	return nil
}

func (r *PresenceRepository) GetPresence(ctx context.Context, userID uuid.UUID) (*model.PresenceRecord, error) {
	data, err := r.rdb.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPresenceNotFound
		}
		return nil, errors.Wrap(err, "presenceRepo.GetPresence.Get: ")
	}
	rec := new(model.PresenceRecord)
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, errors.Wrap(err, "presenceRepo.GetPresence.Unmarshal: ")
	}
	return rec, nil
}

func (r *PresenceRepository) ListOnline(ctx context.Context) ([]model.PresenceRecord, error) {
	var recs []model.PresenceRecord

	iter := r.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := r.rdb.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			// Key expired or vanished between SCAN and GET; skip it.
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, errors.Wrap(err, "presenceRepo.ListOnline.Get: ")
		}
		var rec model.PresenceRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			r.logger.Warn("skipping malformed presence record", "key", iter.Val(), "err", err)
			continue
		}
		if rec.IsOnline {
			recs = append(recs, rec)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "presenceRepo.ListOnline.Scan: ")
	}
	return recs, nil
}

func (r *PresenceRepository) MarkOffline(ctx context.Context, userID uuid.UUID, observed *time.Time) error {
	k := key(userID)

	err := r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, k).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrPresenceNotFound
			}
			return errors.Wrap(err, "presenceRepo.MarkOffline.Get: ")
		}
		var cur model.PresenceRecord
		if err := json.Unmarshal(data, &cur); err != nil {
			return errors.Wrap(err, "presenceRepo.MarkOffline.Unmarshal: ")
		}

		if !sameActivity(cur.LastActivity, observed) {
			return ErrConcurrentUpdate
		}

		payload, err := json.Marshal(cur.Offline())
		if err != nil {
			return errors.Wrap(err, "presenceRepo.MarkOffline.Marshal: ")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, payload, 0)
			return nil
		})
		return err
	}, k)

	// WATCH aborts the transaction when the key was written concurrently.
	if errors.Is(err, redis.TxFailedErr) {
		return ErrConcurrentUpdate
	}
	return err
}

func sameActivity(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
