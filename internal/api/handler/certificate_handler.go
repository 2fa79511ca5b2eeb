package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/barangaylink/records-system/internal/api/metrics"
	"github.com/barangaylink/records-system/internal/core/ports"
)

// CertificateHandler exposes certificate issuance endpoints.
type CertificateHandler struct {
	service ports.CertificateService
}

func NewCertificateHandler(service ports.CertificateService) *CertificateHandler {
	return &CertificateHandler{service: service}
}

type certificateRequest struct {
	ResidentID string `json:"resident_id"  validate:"required"`
	Type       string `json:"type"         validate:"required"`
	Remarks    string `json:"remarks,omitempty"`
}

// List handles GET /api/certificates.
//
// @Summary      List issued certificates with their resident
// @Tags         certificates
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Certificate
// @Failure      403  {object}  map[string]string
// @Router       /api/certificates [get]
func (h *CertificateHandler) List(c echo.Context) error {
	certs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, certs)
}

// Create handles POST /api/certificates. The authenticated user is recorded
// as the issuer.
//
// @Summary      Issue a certificate
// @Tags         certificates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      certificateRequest  true  "Certificate details"
// @Success      201   {object}  domain.Certificate
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/certificates [post]
func (h *CertificateHandler) Create(c echo.Context) error {
	var req certificateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cert, err := h.service.Create(c.Request().Context(), ports.CreateCertificateInput{
		ResidentID: req.ResidentID,
		Type:       req.Type,
		IssuedBy:   actor(c),
		Remarks:    req.Remarks,
	}, actor(c))
	if err != nil {
		return err
	}

	metrics.CertificatesIssuedTotal.WithLabelValues(cert.Type).Inc()
	return c.JSON(http.StatusCreated, cert)
}

// Delete handles DELETE /api/certificates/:id.
//
// @Summary      Delete a certificate record
// @Tags         certificates
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Certificate id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/certificates/{id} [delete]
func (h *CertificateHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actor(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "certificate deleted"})
}
