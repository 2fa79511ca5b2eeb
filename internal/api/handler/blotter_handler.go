package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barangaylink/records-system/internal/core/domain"
	"github.com/barangaylink/records-system/internal/core/ports"
)

// BlotterHandler exposes the incident log endpoints.
type BlotterHandler struct {
	service ports.BlotterService
}

func NewBlotterHandler(service ports.BlotterService) *BlotterHandler {
	return &BlotterHandler{service: service}
}

type blotterRequest struct {
	ResidentID     string `json:"resident_id,omitempty"`
	IncidentDate   string `json:"incident_date"  validate:"required,datetime=2006-01-02"`
	Description    string `json:"description"    validate:"required"`
	ReportedBy     string `json:"reported_by,omitempty"`
	AccommodatedBy string `json:"accommodated_by,omitempty"`
	Status         string `json:"status,omitempty"  validate:"omitempty,oneof=Open Closed Pending"`
}

// List handles GET /api/blotter.
//
// @Summary      List incident entries with their resident
// @Tags         blotter
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.BlotterEntry
// @Failure      403  {object}  map[string]string
// @Router       /api/blotter [get]
func (h *BlotterHandler) List(c echo.Context) error {
	entries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Create handles POST /api/blotter.
//
// @Summary      Log an incident
// @Tags         blotter
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      blotterRequest  true  "Incident details"
// @Success      201   {object}  domain.BlotterEntry
// @Failure      400   {object}  map[string]string
// @Router       /api/blotter [post]
func (h *BlotterHandler) Create(c echo.Context) error {
	var req blotterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Create(c.Request().Context(), ports.CreateBlotterInput{
		ResidentID:     req.ResidentID,
		IncidentDate:   req.IncidentDate,
		Description:    req.Description,
		ReportedBy:     req.ReportedBy,
		AccommodatedBy: req.AccommodatedBy,
		Status:         domain.BlotterStatus(req.Status),
	}, actor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entry)
}

// Delete handles DELETE /api/blotter/:id.
//
// @Summary      Delete an incident entry
// @Tags         blotter
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Blotter entry id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/blotter/{id} [delete]
func (h *BlotterHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actor(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "blotter entry deleted"})
}
