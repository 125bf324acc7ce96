package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hearth/internal/presence"
	appErrors "hearth/pkg/errors"
	"hearth/pkg/logger"
)

const userIDHeader = "X-User-ID"

type PresenceHandler struct {
	usecase presence.PresenceUsecase
	logger  *logger.Logger
}

func NewPresenceHandler(usecase presence.PresenceUsecase, logger logger.Logger) *PresenceHandler {
	return &PresenceHandler{
		usecase: usecase,
		logger:  &logger,
	}
}

func (h *PresenceHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/presence/touch", h.Touch)
	e.DELETE("/presence", h.Disconnect)
	e.GET("/presence/:id", h.Get)
}

type touchRequest struct {
	Location    string `json:"location,omitempty"`
	MessageSent bool   `json:"message_sent"`
}

func (h *PresenceHandler) Touch(c echo.Context) error {
	userID, err := uuid.Parse(c.Request().Header.Get(userIDHeader))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid " + userIDHeader})
	}

	var req touchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := h.usecase.Touch(c.Request().Context(), presence.TouchCommand{
		UserID:      userID,
		Location:    req.Location,
		MessageSent: req.MessageSent,
	}); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PresenceHandler) Disconnect(c echo.Context) error {
	userID, err := uuid.Parse(c.Request().Header.Get(userIDHeader))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid " + userIDHeader})
	}

	if err := h.usecase.Disconnect(c.Request().Context(), userID); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PresenceHandler) Get(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid user id"})
	}

	rec, err := h.usecase.Get(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

func writeError(c echo.Context, err error) error {
	var app *appErrors.AppError
	if appErrors.As(err, &app) {
		return c.JSON(appErrors.HTTPStatus(err), app)
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
