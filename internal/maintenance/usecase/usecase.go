package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hearth/internal/maintenance"
	"hearth/internal/maintenance/model"
	"hearth/internal/maintenance/repository"
	"hearth/internal/notify"
	"hearth/internal/property"
	propertyrepo "hearth/internal/property/repository"
	"hearth/pkg/errors"
	"hearth/pkg/logger"
)

const minDescriptionLen = 10

type MaintenanceUsecase struct {
	repo       maintenance.MaintenanceRepository
	properties property.PropertyRepository
	publisher  notify.Publisher
	logger     logger.Logger
}

func NewMaintenanceUsecase(
	repo maintenance.MaintenanceRepository,
	properties property.PropertyRepository,
	publisher notify.Publisher,
	logger logger.Logger,
) *MaintenanceUsecase {
	return &MaintenanceUsecase{
		repo:       repo,
		properties: properties,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *MaintenanceUsecase) Create(ctx context.Context, cmd maintenance.CreateRequestCommand) (*model.MaintenanceRequest, error) {
	if cmd.Title == "" {
		return nil, errors.ErrTitleRequired
	}
	if len(cmd.Description) < minDescriptionLen {
		return nil, errors.ErrDescriptionTooShort
	}
	if !cmd.Priority.Valid() {
		return nil, errors.ErrUnknownPriority
	}

	if _, err := uc.properties.GetPropertyByID(ctx, cmd.PropertyID); err != nil {
		if errors.Is(err, propertyrepo.ErrPropertyNotFound) {
			return nil, errors.ErrPropertyNotFound
		}
		uc.logger.Error("failed to load property for request", "property_id", cmd.PropertyID, "err", err)
		return nil, errors.Internal("failed to load property")
	}

	req := &model.MaintenanceRequest{
		PropertyID:  cmd.PropertyID,
		UserID:      cmd.UserID,
		Title:       cmd.Title,
		Description: cmd.Description,
		Status:      model.StatusRequested,
		Priority:    cmd.Priority,
	}
	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		uc.logger.Error("failed to create maintenance request", "property_id", cmd.PropertyID, "err", err)
		return nil, errors.Internal("failed to create maintenance request")
	}
	return req, nil
}

func (uc *MaintenanceUsecase) UpdateStatus(ctx context.Context, cmd maintenance.UpdateStatusCommand) (*model.MaintenanceRequest, error) {
	if !cmd.Status.Valid() {
		return nil, errors.ErrUnknownStatus
	}

	req, err := uc.repo.GetRequestByID(ctx, cmd.RequestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, errors.ErrRequestNotFound
		}
		uc.logger.Error("failed to load maintenance request", "request_id", cmd.RequestID, "err", err)
		return nil, errors.Internal("failed to load maintenance request")
	}

	prop, err := uc.properties.GetPropertyByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyrepo.ErrPropertyNotFound) {
			return nil, errors.ErrPropertyNotFound
		}
		uc.logger.Error("failed to load property for authorization", "property_id", req.PropertyID, "err", err)
		return nil, errors.Internal("failed to load property")
	}
	if prop.OwnerID != cmd.ActorID {
		return nil, errors.ErrNotPropertyManager
	}

	var completedAt *time.Time
	if cmd.Status == model.StatusCompleted {
		now := time.Now()
		completedAt = &now
	}

	if err := uc.repo.UpdateRequestStatus(ctx, req.ID, cmd.Status, cmd.Notes, completedAt); err != nil {
		uc.logger.Error("failed to persist maintenance status", "request_id", req.ID, "err", err)
		return nil, errors.Internal("failed to update maintenance request")
	}

	updated := *req
	updated.Status = cmd.Status
	updated.Notes = cmd.Notes
	updated.CompletedAt = completedAt

	// Persisted state is the source of truth; both deliveries are attempted
	// and neither can roll it back.
	uc.notifyStatusChange(ctx, &updated, cmd.ActorID)

	return &updated, nil
}

func (uc *MaintenanceUsecase) Statistics(ctx context.Context, ownerID uuid.UUID) (map[model.Status]int, error) {
	counts, err := uc.repo.CountByStatusForOwner(ctx, ownerID)
	if err != nil {
		uc.logger.Error("failed to aggregate maintenance statistics", "owner_id", ownerID, "err", err)
		return nil, errors.Internal("failed to aggregate statistics")
	}

	stats := make(map[model.Status]int, 4)
	for _, s := range model.Statuses() {
		stats[s] = 0
	}
	for _, c := range counts {
		stats[c.Status] = c.Count
	}
	return stats, nil
}

func (uc *MaintenanceUsecase) notifyStatusChange(ctx context.Context, req *model.MaintenanceRequest, actorID uuid.UUID) {
	submitter := req.UserID
	evt := notify.Event{
		Type:      notify.TypeMaintenanceStatusChanged,
		EntityID:  req.ID,
		Status:    string(req.Status),
		ActorID:   actorID,
		UserID:    &submitter,
		Timestamp: time.Now(),
	}

	if err := uc.publisher.Publish(ctx, notify.UserMaintenanceChannel(submitter), evt); err != nil {
		uc.logger.Error("maintenance fan-out: submitter publish failed", "request_id", req.ID, "err", err)
	}
	if err := uc.publisher.Publish(ctx, notify.MaintenanceUpdatesChannel, evt); err != nil {
		uc.logger.Error("maintenance fan-out: shared channel publish failed", "request_id", req.ID, "err", err)
	}
}
