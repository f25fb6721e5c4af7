package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lavadero-app/lavadero-backend/internal/apperrors"
	portssvc "github.com/lavadero-app/lavadero-backend/internal/core/ports/services"
	"github.com/lavadero-app/lavadero-backend/internal/dto"
)

// reportingHandler handles HTTP requests for ledger reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers all reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reportes")
	{
		reports.GET("/resumen", h.summary)
		reports.GET("/detallado", h.detailed)
	}
}

// window resolves the requested date range, falling back to the configured
// trailing window when neither bound is given.
func (h *reportingHandler) window(c *gin.Context) (time.Time, time.Time, error) {
	fromStr := c.Query("fecha_desde")
	toStr := c.Query("fecha_hasta")

	if fromStr == "" && toStr == "" {
		from, to := h.reportingService.DefaultWindow()
		return from, to, nil
	}
	if fromStr == "" {
		return time.Time{}, time.Time{}, apperrors.NewValidationError(apperrors.FieldError{
			Field:   "fecha_desde",
			Message: "requerido cuando se envía fecha_hasta",
		})
	}
	if toStr == "" {
		return time.Time{}, time.Time{}, apperrors.NewValidationError(apperrors.FieldError{
			Field:   "fecha_hasta",
			Message: "requerido cuando se envía fecha_desde",
		})
	}

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError(apperrors.FieldError{
			Field:   "fecha_desde",
			Message: "formato inválido, se espera YYYY-MM-DD",
		})
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError(apperrors.FieldError{
			Field:   "fecha_hasta",
			Message: "formato inválido, se espera YYYY-MM-DD",
		})
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, apperrors.NewValidationError(apperrors.FieldError{
			Field:   "fecha_hasta",
			Message: "debe ser posterior o igual a fecha_desde",
		})
	}
	return from, to, nil
}

// summary godoc
// @Summary Ledger summary over a date window
// @Tags reportes
// @Produce json
// @Param fecha_desde query string false "Range start YYYY-MM-DD"
// @Param fecha_hasta query string false "Range end YYYY-MM-DD"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]any
// @Security BearerAuth
// @Router /api/reportes/resumen [get]
func (h *reportingHandler) summary(c *gin.Context) {
	from, to, err := h.window(c)
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"resumen": dto.ToSummaryResponse(summary, from, to)})
}

// detailed godoc
// @Summary Detailed ledger report over a date window
// @Tags reportes
// @Produce json
// @Param fecha_desde query string false "Range start YYYY-MM-DD"
// @Param fecha_hasta query string false "Range end YYYY-MM-DD"
// @Success 200 {object} dto.DetailedReportResponse
// @Failure 400 {object} map[string]any
// @Security BearerAuth
// @Router /api/reportes/detallado [get]
func (h *reportingHandler) detailed(c *gin.Context) {
	from, to, err := h.window(c)
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.reportingService.Detailed(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"reporte": dto.ToDetailedReportResponse(report, from, to)})
}
