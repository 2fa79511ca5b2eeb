package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barangaylink/records-system/internal/core/ports"
)

// HouseholdHandler exposes the household registry endpoints.
type HouseholdHandler struct {
	service ports.HouseholdService
}

func NewHouseholdHandler(service ports.HouseholdService) *HouseholdHandler {
	return &HouseholdHandler{service: service}
}

type householdRequest struct {
	HouseholdCode    string `json:"household_code"   validate:"required"`
	AddressLine      string `json:"address_line,omitempty"`
	Barangay         string `json:"barangay,omitempty"`
	CityMunicipality string `json:"city_municipality,omitempty"`
	Province         string `json:"province,omitempty"`
	PostalCode       string `json:"postal_code,omitempty"`
}

// List handles GET /api/households.
//
// @Summary      List all households
// @Tags         households
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Household
// @Failure      403  {object}  map[string]string
// @Router       /api/households [get]
func (h *HouseholdHandler) List(c echo.Context) error {
	households, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, households)
}

// Create handles POST /api/households.
//
// @Summary      Register a household
// @Tags         households
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      householdRequest  true  "Household details"
// @Success      201   {object}  domain.Household
// @Failure      400   {object}  map[string]string
// @Router       /api/households [post]
func (h *HouseholdHandler) Create(c echo.Context) error {
	var req householdRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	household, err := h.service.Create(c.Request().Context(), ports.CreateHouseholdInput{
		HouseholdCode:    req.HouseholdCode,
		AddressLine:      req.AddressLine,
		Barangay:         req.Barangay,
		CityMunicipality: req.CityMunicipality,
		Province:         req.Province,
		PostalCode:       req.PostalCode,
	}, actor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, household)
}

// Delete handles DELETE /api/households/:id.
//
// @Summary      Delete a household
// @Tags         households
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Household id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/households/{id} [delete]
func (h *HouseholdHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actor(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "household deleted"})
}
