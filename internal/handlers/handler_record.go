package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lavadero-app/lavadero-backend/internal/apperrors"
	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	portssvc "github.com/lavadero-app/lavadero-backend/internal/core/ports/services"
	"github.com/lavadero-app/lavadero-backend/internal/dto"
	"github.com/lavadero-app/lavadero-backend/internal/middleware"
	"github.com/lavadero-app/lavadero-backend/internal/platform/config"
)

// recordHandler handles HTTP requests for the wash record ledger.
type recordHandler struct {
	recordService   portssvc.RecordSvcFacade
	defaultPageSize int
	maxPageSize     int
}

func newRecordHandler(rs portssvc.RecordSvcFacade, cfg *config.Config) *recordHandler {
	return &recordHandler{
		recordService:   rs,
		defaultPageSize: cfg.DefaultPageSize,
		maxPageSize:     cfg.MaxPageSize,
	}
}

// registerRecordRoutes registers all ledger-related routes.
func registerRecordRoutes(rg *gin.RouterGroup, recordService portssvc.RecordSvcFacade, cfg *config.Config) {
	h := newRecordHandler(recordService, cfg)

	records := rg.Group("/registros")
	{
		records.GET("", h.listRecords)
		records.POST("", h.createRecord)
		records.GET("/buscar", h.listRecords)
		records.GET("/:id", h.getRecord)
		records.PUT("/:id", h.updateRecord)
		records.DELETE("/:id", h.deleteRecord)
		records.PATCH("/:id/pago", h.setPayment)
	}
}

// buildFilter turns the query parameters into a repository filter, clamping
// the page size.
func (h *recordHandler) buildFilter(params dto.ListRecordsParams) (domain.RecordFilter, error) {
	filter := domain.RecordFilter{
		Plate:     params.Plate,
		ServiceID: params.ServiceID,
		Washer:    params.Washer,
		Limit:     params.Limit,
		Offset:    params.Offset,
	}

	parseDate := func(field, raw string, dst **time.Time) error {
		if raw == "" {
			return nil
		}
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return apperrors.NewValidationError(apperrors.FieldError{
				Field:   field,
				Message: "formato inválido, se espera YYYY-MM-DD",
			})
		}
		*dst = &d
		return nil
	}

	if err := parseDate("fecha", params.Date, &filter.Date); err != nil {
		return filter, err
	}
	if err := parseDate("fecha_desde", params.DateFrom, &filter.DateFrom); err != nil {
		return filter, err
	}
	if err := parseDate("fecha_hasta", params.DateTo, &filter.DateTo); err != nil {
		return filter, err
	}

	if filter.Limit <= 0 {
		filter.Limit = h.defaultPageSize
	}
	if filter.Limit > h.maxPageSize {
		filter.Limit = h.maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return filter, nil
}

// listRecords godoc
// @Summary List ledger records
// @Description Lists records with optional ANDed filters, newest first.
// @Tags registros
// @Produce json
// @Param placa query string false "Plate substring"
// @Param fecha query string false "Exact date YYYY-MM-DD"
// @Param fecha_desde query string false "Range start YYYY-MM-DD"
// @Param fecha_hasta query string false "Range end YYYY-MM-DD"
// @Param servicio_id query string false "Service ID"
// @Param lavador query string false "Washer name substring"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Security BearerAuth
// @Router /api/registros [get]
func (h *recordHandler) listRecords(c *gin.Context) {
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	filter, err := h.buildFilter(params)
	if err != nil {
		respondError(c, err)
		return
	}

	records, err := h.recordService.ListRecords(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"registros": dto.ToRecordListResponse(records)})
}

// createRecord godoc
// @Summary Create a ledger record
// @Description Validates every field; all failures are reported in one response.
// @Tags registros
// @Accept json
// @Produce json
// @Param record body dto.CreateRecordRequest true "Record details"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} map[string]any
// @Security BearerAuth
// @Router /api/registros [post]
func (h *recordHandler) createRecord(c *gin.Context) {
	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	record, err := h.recordService.CreateRecord(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, gin.H{"registro": dto.ToRecordResponse(record)})
}

// getRecord godoc
// @Summary Get a record by ID
// @Tags registros
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} dto.RecordResponse
// @Failure 404 {object} map[string]any
// @Security BearerAuth
// @Router /api/registros/{id} [get]
func (h *recordHandler) getRecord(c *gin.Context) {
	record, err := h.recordService.GetRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"registro": dto.ToRecordResponse(record)})
}

// updateRecord godoc
// @Summary Update a record
// @Description Full-field update. Only the creator or an admin may update.
// @Tags registros
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param record body dto.UpdateRecordRequest true "Record details"
// @Success 200 {object} dto.RecordResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Security BearerAuth
// @Router /api/registros/{id} [put]
func (h *recordHandler) updateRecord(c *gin.Context) {
	var req dto.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	requesterID, _ := middleware.GetUserIDFromContext(c)
	requesterRole, _ := middleware.GetUserRoleFromContext(c)

	record, err := h.recordService.UpdateRecord(c.Request.Context(), c.Param("id"), req, requesterID, requesterRole)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"registro": dto.ToRecordResponse(record)})
}

// deleteRecord godoc
// @Summary Delete a record
// @Description Admins delete any record; others only their own.
// @Tags registros
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Security BearerAuth
// @Router /api/registros/{id} [delete]
func (h *recordHandler) deleteRecord(c *gin.Context) {
	requesterID, _ := middleware.GetUserIDFromContext(c)
	requesterRole, _ := middleware.GetUserRoleFromContext(c)

	if err := h.recordService.DeleteRecord(c.Request.Context(), c.Param("id"), requesterID, requesterRole); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Registro eliminado"})
}

// setPayment godoc
// @Summary Update the payment state of a record
// @Tags registros
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param payment body dto.SetPaymentRequest true "Payment state"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Security BearerAuth
// @Router /api/registros/{id}/pago [patch]
func (h *recordHandler) setPayment(c *gin.Context) {
	var req dto.SetPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)
	if err := h.recordService.SetPayment(c.Request.Context(), c.Param("id"), domain.PaymentStatus(req.Payment), updaterUserID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Pago actualizado"})
}
