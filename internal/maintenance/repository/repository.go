package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"hearth/internal/maintenance"
	"hearth/internal/maintenance/model"
	"hearth/pkg/logger"
)

type MaintenanceRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrRequestNotFound = errors.New("maintenance request not found")

func NewMaintenanceRepository(db *bun.DB, logger logger.Logger) *MaintenanceRepository {
	return &MaintenanceRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *MaintenanceRepository) CreateRequest(ctx context.Context, req *model.MaintenanceRequest) error {
	_, err := r.db.NewInsert().Model(req).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "maintenanceRepo.CreateRequest.Insert: ")
	}
	return nil
}

func (r *MaintenanceRepository) GetRequestByID(ctx context.Context, id uuid.UUID) (*model.MaintenanceRequest, error) {
	req := new(model.MaintenanceRequest)
	err := r.db.NewSelect().Model(req).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, errors.Wrap(err, "maintenanceRepo.GetRequestByID.Scan: ")
	}
	return req, nil
}

func (r *MaintenanceRepository) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status model.Status, notes *string, completedAt *time.Time) error {
	res, err := r.db.NewUpdate().
		Model((*model.MaintenanceRequest)(nil)).
		Set("status = ?", status).
		Set("notes = ?", notes).
		Set("completed_at = ?", completedAt).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "maintenanceRepo.UpdateRequestStatus.Exec: ")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *MaintenanceRepository) CountByStatusForOwner(ctx context.Context, ownerID uuid.UUID) ([]maintenance.StatusCount, error) {
	var counts []maintenance.StatusCount
	err := r.db.NewSelect().
		Model((*model.MaintenanceRequest)(nil)).
		ColumnExpr("maintenance_request.status AS status").
		ColumnExpr("count(*) AS count").
		Join("JOIN properties AS p ON p.id = maintenance_request.property_id").
		Where("p.owner_id = ?", ownerID).
		Group("maintenance_request.status").
		Scan(ctx, &counts)
	if err != nil {
		return nil, errors.Wrap(err, "maintenanceRepo.CountByStatusForOwner.Scan: ")
	}
	return counts, nil
}
