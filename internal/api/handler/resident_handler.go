package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/barangaylink/records-system/internal/api/metrics"
	"github.com/barangaylink/records-system/internal/core/ports"
)

// ResidentHandler exposes the resident registry endpoints.
type ResidentHandler struct {
	service ports.ResidentService
}

func NewResidentHandler(service ports.ResidentService) *ResidentHandler {
	return &ResidentHandler{service: service}
}

// List handles GET /api/residents?q&page&pageSize.
//
// @Summary      List residents with pagination and name search
// @Tags         residents
// @Produce      json
// @Security     BearerAuth
// @Param        q         query     string  false  "Substring matched against first or last name"
// @Param        page      query     int     false  "1-based page number"  default(1)
// @Param        pageSize  query     int     false  "Rows per page"        default(50)
// @Success      200       {object}  listResidentsResponse
// @Failure      403       {object}  map[string]string
// @Router       /api/residents [get]
func (h *ResidentHandler) List(c echo.Context) error {
	// Non-numeric page parameters fall back to the defaults.
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	result, err := h.service.List(c.Request().Context(), ports.ListResidentsInput{
		Query:    c.QueryParam("q"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listResidentsResponse{
		Rows:  result.Rows,
		Count: result.Count,
	})
}

// Get handles GET /api/residents/:id.
//
// @Summary      Get a single resident with household
// @Tags         residents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Resident id"
// @Success      200  {object}  domain.Resident
// @Failure      404  {object}  map[string]string
// @Router       /api/residents/{id} [get]
func (h *ResidentHandler) Get(c echo.Context) error {
	resident, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resident)
}

// Create handles POST /api/residents.
//
// @Summary      Register a resident
// @Tags         residents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      residentRequest  true  "Resident details"
// @Success      201   {object}  domain.Resident
// @Failure      400   {object}  map[string]string
// @Router       /api/residents [post]
func (h *ResidentHandler) Create(c echo.Context) error {
	var req residentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resident, err := h.service.Create(c.Request().Context(), toCreateResidentInput(req), actor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resident)
}

// Update handles PUT /api/residents/:id.
//
// @Summary      Update a resident
// @Tags         residents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Resident id"
// @Param        body  body      updateResidentRequest  true  "Fields to change"
// @Success      200   {object}  domain.Resident
// @Failure      404   {object}  map[string]string
// @Router       /api/residents/{id} [put]
func (h *ResidentHandler) Update(c echo.Context) error {
	var req updateResidentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resident, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateResidentInput(req), actor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resident)
}

// Delete handles DELETE /api/residents/:id. The record is soft-deleted.
//
// @Summary      Delete a resident
// @Tags         residents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Resident id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/residents/{id} [delete]
func (h *ResidentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actor(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "resident deleted"})
}

// Export handles GET /api/residents/export?q, streaming a CSV download.
//
// @Summary      Export residents as CSV
// @Tags         residents
// @Produce      text/csv
// @Security     BearerAuth
// @Param        q    query     string  false  "Substring matched against first or last name"
// @Success      200  {string}  string  "CSV payload"
// @Failure      403  {object}  map[string]string
// @Router       /api/residents/export [get]
func (h *ResidentHandler) Export(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="residents.csv"`)
	res.WriteHeader(http.StatusOK)

	if err := h.service.ExportCSV(c.Request().Context(), c.QueryParam("q"), res); err != nil {
		// Headers are already written; the best we can do is abort the stream.
		return err
	}

	metrics.ResidentExportsTotal.Inc()
	return nil
}
