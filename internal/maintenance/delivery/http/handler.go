package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hearth/internal/maintenance"
	"hearth/internal/maintenance/model"
	appErrors "hearth/pkg/errors"
	"hearth/pkg/logger"
)

// Authentication is out of scope here; the actor is taken from the
// X-User-ID header the edge proxy sets.
const userIDHeader = "X-User-ID"

type MaintenanceHandler struct {
	usecase maintenance.MaintenanceUsecase
	logger  *logger.Logger
}

func NewMaintenanceHandler(usecase maintenance.MaintenanceUsecase, logger logger.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		usecase: usecase,
		logger:  &logger,
	}
}

func (h *MaintenanceHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/properties/:id/maintenance", h.CreateRequest)
	e.PATCH("/maintenance/:id/status", h.UpdateStatus)
	e.GET("/maintenance/statistics", h.Statistics)
}

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

func (h *MaintenanceHandler) CreateRequest(c echo.Context) error {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid property id"})
	}
	actorID, err := actorID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid " + userIDHeader})
	}

	var req createRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	created, err := h.usecase.Create(c.Request().Context(), maintenance.CreateRequestCommand{
		PropertyID:  propertyID,
		UserID:      actorID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    model.Priority(req.Priority),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

type updateStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

func (h *MaintenanceHandler) UpdateStatus(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request id"})
	}
	actor, err := actorID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid " + userIDHeader})
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	updated, err := h.usecase.UpdateStatus(c.Request().Context(), maintenance.UpdateStatusCommand{
		RequestID: requestID,
		Status:    model.Status(req.Status),
		Notes:     req.Notes,
		ActorID:   actor,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *MaintenanceHandler) Statistics(c echo.Context) error {
	owner, err := actorID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid " + userIDHeader})
	}

	stats, err := h.usecase.Statistics(c.Request().Context(), owner)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func actorID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Request().Header.Get(userIDHeader))
}

func writeError(c echo.Context, err error) error {
	var app *appErrors.AppError
	if appErrors.As(err, &app) {
		return c.JSON(appErrors.HTTPStatus(err), app)
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
