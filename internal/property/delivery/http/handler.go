package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hearth/internal/property"
	"hearth/internal/property/model"
	appErrors "hearth/pkg/errors"
	"hearth/pkg/logger"
)

type PropertyHandler struct {
	usecase property.PropertyUsecase
	logger  *logger.Logger
}

func NewPropertyHandler(usecase property.PropertyUsecase, logger logger.Logger) *PropertyHandler {
	return &PropertyHandler{
		usecase: usecase,
		logger:  &logger,
	}
}

func (h *PropertyHandler) RegisterRoutes(e *echo.Echo) {
	e.PUT("/properties/:id/status", h.TransitionStatus)
	e.GET("/properties/:id/potential-buyers", h.PotentialBuyers)
	e.DELETE("/properties/:id", h.DeleteProperty)
}

type transitionRequest struct {
	Status  string     `json:"status"`
	BuyerID *uuid.UUID `json:"buyer_id,omitempty"`
}

func (h *PropertyHandler) TransitionStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid property id"})
	}

	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	p, err := h.usecase.Transition(c.Request().Context(), property.TransitionCommand{
		PropertyID: id,
		Status:     model.Status(req.Status),
		BuyerID:    req.BuyerID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PropertyHandler) PotentialBuyers(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid property id"})
	}

	buyers, err := h.usecase.PotentialBuyers(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, buyers)
}

func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid property id"})
	}

	if err := h.usecase.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func writeError(c echo.Context, err error) error {
	var app *appErrors.AppError
	if appErrors.As(err, &app) {
		return c.JSON(appErrors.HTTPStatus(err), app)
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
