package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/lavadero-app/lavadero-backend/internal/core/ports/services"
	"github.com/lavadero-app/lavadero-backend/internal/dto"
	"github.com/lavadero-app/lavadero-backend/internal/middleware"
)

// washerHandler handles HTTP requests related to washers.
type washerHandler struct {
	washerService portssvc.WasherSvcFacade
}

func newWasherHandler(ws portssvc.WasherSvcFacade) *washerHandler {
	return &washerHandler{washerService: ws}
}

// registerWasherRoutes registers all washer-related routes.
func registerWasherRoutes(rg *gin.RouterGroup, washerService portssvc.WasherSvcFacade) {
	h := newWasherHandler(washerService)

	washers := rg.Group("/lavadores")
	{
		washers.GET("", h.listWashers)
		washers.POST("", middleware.RequireAdmin(), h.createWasher)
		washers.DELETE("/:id", middleware.RequireAdmin(), h.deactivateWasher)
	}
}

// listWashers godoc
// @Summary List active washers
// @Tags lavadores
// @Produce json
// @Success 200 {object} map[string]any
// @Security BearerAuth
// @Router /api/lavadores [get]
func (h *washerHandler) listWashers(c *gin.Context) {
	washers, err := h.washerService.ListActiveWashers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"lavadores": dto.ToWasherListResponse(washers)})
}

// createWasher godoc
// @Summary Create a washer
// @Tags lavadores
// @Accept json
// @Produce json
// @Param washer body dto.CreateWasherRequest true "Washer details"
// @Success 201 {object} dto.WasherResponse
// @Failure 400 {object} map[string]any
// @Security BearerAuth
// @Router /api/lavadores [post]
func (h *washerHandler) createWasher(c *gin.Context) {
	var req dto.CreateWasherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	washer, err := h.washerService.CreateWasher(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, gin.H{"lavador": dto.ToWasherResponse(washer)})
}

// deactivateWasher godoc
// @Summary Deactivate a washer
// @Description Soft-deletes a washer; historical records keep their reference.
// @Tags lavadores
// @Produce json
// @Param id path string true "Washer ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Security BearerAuth
// @Router /api/lavadores/{id} [delete]
func (h *washerHandler) deactivateWasher(c *gin.Context) {
	updaterUserID, _ := middleware.GetUserIDFromContext(c)
	if err := h.washerService.DeactivateWasher(c.Request.Context(), c.Param("id"), updaterUserID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Lavador desactivado"})
}
