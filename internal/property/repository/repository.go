package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"hearth/internal/property"
	"hearth/internal/property/model"
	"hearth/pkg/logger"
)

type PropertyRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrStaleStatus      = errors.New("property status changed concurrently")
)

func NewPropertyRepository(db *bun.DB, logger logger.Logger) *PropertyRepository {
	return &PropertyRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *PropertyRepository) CreateProperty(ctx context.Context, p *model.Property) error {
	_, err := r.db.NewInsert().Model(p).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "propertyRepo.CreateProperty.Insert: ")
	}
	return nil
}

func (r *PropertyRepository) GetPropertyByID(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	p := new(model.Property)
	err := r.db.NewSelect().Model(p).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPropertyNotFound
		}
		return nil, errors.Wrap(err, "propertyRepo.GetPropertyByID.Scan: ")
	}
	return p, nil
}

// UpdateStatus is the optimistic write: the WHERE clause pins the status the
// caller observed, so zero affected rows means another transition raced in.
func (r *PropertyRepository) UpdateStatus(ctx context.Context, id uuid.UUID, observed model.Status, upd property.StatusUpdate) error {
	res, err := r.db.NewUpdate().
		Model((*model.Property)(nil)).
		Set("status = ?", upd.Status).
		Set("buyer_id = ?", upd.BuyerID).
		Set("transaction_date = ?", upd.TransactionDate).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Where("status = ?", observed).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "propertyRepo.UpdateStatus.Exec: ")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "propertyRepo.UpdateStatus.RowsAffected: ")
	}
	if rows == 0 {
		return ErrStaleStatus
	}
	return nil
}

func (r *PropertyRepository) ListExpired(ctx context.Context, cutoff time.Time) ([]model.Property, error) {
	var props []model.Property
	err := r.db.NewSelect().
		Model(&props).
		Where("status IN (?)", bun.In([]model.Status{model.StatusSold, model.StatusRented, model.StatusCancelled})).
		Where("transaction_date < ?", cutoff).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "propertyRepo.ListExpired.Scan: ")
	}
	return props, nil
}

// DeleteExpired re-checks expiry in the DELETE itself, so a reactivation that
// committed after the sweep's candidate read keeps its row.
func (r *PropertyRepository) DeleteExpired(ctx context.Context, id uuid.UUID, cutoff time.Time) error {
	res, err := r.db.NewDelete().
		Model((*model.Property)(nil)).
		Where("id = ?", id).
		Where("status IN (?)", bun.In([]model.Status{model.StatusSold, model.StatusRented, model.StatusCancelled})).
		Where("transaction_date < ?", cutoff).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "propertyRepo.DeleteExpired.Exec: ")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrStaleStatus
	}
	return nil
}

func (r *PropertyRepository) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().Model((*model.Property)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "propertyRepo.DeleteProperty.Exec: ")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrPropertyNotFound
	}
	return nil
}
