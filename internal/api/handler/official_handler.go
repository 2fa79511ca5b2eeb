package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barangaylink/records-system/internal/core/ports"
)

// OfficialHandler exposes the officials roster endpoints.
type OfficialHandler struct {
	service ports.OfficialService
}

func NewOfficialHandler(service ports.OfficialService) *OfficialHandler {
	return &OfficialHandler{service: service}
}

type officialRequest struct {
	Name      string `json:"name"      validate:"required"`
	Position  string `json:"position"  validate:"required"`
	TermStart string `json:"term_start,omitempty"  validate:"omitempty,datetime=2006-01-02"`
	TermEnd   string `json:"term_end,omitempty"    validate:"omitempty,datetime=2006-01-02"`
	Contact   string `json:"contact,omitempty"`
}

// List handles GET /api/officials.
//
// @Summary      List barangay officials
// @Tags         officials
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Official
// @Failure      403  {object}  map[string]string
// @Router       /api/officials [get]
func (h *OfficialHandler) List(c echo.Context) error {
	officials, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, officials)
}

// Create handles POST /api/officials.
//
// @Summary      Add an official
// @Tags         officials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      officialRequest  true  "Official details"
// @Success      201   {object}  domain.Official
// @Failure      400   {object}  map[string]string
// @Router       /api/officials [post]
func (h *OfficialHandler) Create(c echo.Context) error {
	var req officialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	official, err := h.service.Create(c.Request().Context(), ports.CreateOfficialInput{
		Name:      req.Name,
		Position:  req.Position,
		TermStart: req.TermStart,
		TermEnd:   req.TermEnd,
		Contact:   req.Contact,
	}, actor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, official)
}

// Delete handles DELETE /api/officials/:id.
//
// @Summary      Remove an official
// @Tags         officials
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Official id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/officials/{id} [delete]
func (h *OfficialHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actor(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "official deleted"})
}
