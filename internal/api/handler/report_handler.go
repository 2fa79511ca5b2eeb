package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barangaylink/records-system/internal/core/ports"
)

// ReportHandler exposes the dashboard and analytics projections.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Summary handles GET /api/reports/summary.
//
// @Summary      Dashboard headline counts
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Summary
// @Failure      403  {object}  map[string]string
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	summary, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// ResidentDemographics handles GET /api/reports/resident-demographics.
//
// @Summary      Active residents grouped by gender
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.LabelCount
// @Failure      403  {object}  map[string]string
// @Router       /api/reports/resident-demographics [get]
func (h *ReportHandler) ResidentDemographics(c echo.Context) error {
	rows, err := h.service.ResidentDemographics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

// MonthlyIncidents handles GET /api/reports/monthly-incidents. The response
// always carries 12 entries for the current year, quiet months zero-filled.
//
// @Summary      Incident counts per month of the current year
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.MonthCount
// @Failure      403  {object}  map[string]string
// @Router       /api/reports/monthly-incidents [get]
func (h *ReportHandler) MonthlyIncidents(c echo.Context) error {
	rows, err := h.service.MonthlyIncidents(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}
