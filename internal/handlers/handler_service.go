package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	portssvc "github.com/lavadero-app/lavadero-backend/internal/core/ports/services"
	"github.com/lavadero-app/lavadero-backend/internal/dto"
	"github.com/lavadero-app/lavadero-backend/internal/middleware"
)

// serviceHandler handles HTTP requests for the service catalog.
type serviceHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newServiceHandler(cs portssvc.CatalogSvcFacade) *serviceHandler {
	return &serviceHandler{catalogService: cs}
}

// registerServiceRoutes registers all catalog-related routes.
func registerServiceRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newServiceHandler(catalogService)

	services := rg.Group("/servicios")
	{
		services.GET("", h.listServices)
		services.POST("", middleware.RequireAdmin(), h.createService)
		services.GET("/vehiculo/:tipo", h.listForVehicle)
		services.GET("/populares", h.popularServices)
		services.GET("/precios", middleware.RequireAdmin(), h.listAllPrices)
		services.GET("/:id", h.getService)
		services.GET("/:id/precio/:vehiculo", h.getPrice)
		services.PUT("/:id/precio/:vehiculo", middleware.RequireAdmin(), h.setPrice)
	}
}

// listServices godoc
// @Summary List catalog services
// @Tags servicios
// @Produce json
// @Success 200 {object} map[string]any
// @Security BearerAuth
// @Router /api/servicios [get]
func (h *serviceHandler) listServices(c *gin.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"servicios": dto.ToServiceListResponse(services)})
}

// createService godoc
// @Summary Create a catalog service
// @Tags servicios
// @Accept json
// @Produce json
// @Param service body dto.CreateServiceRequest true "Service details"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} map[string]any
// @Security BearerAuth
// @Router /api/servicios [post]
func (h *serviceHandler) createService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	service, err := h.catalogService.CreateService(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, gin.H{"servicio": dto.ToServiceResponse(service)})
}

// getService godoc
// @Summary Get a service by ID
// @Tags servicios
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} map[string]any
// @Security BearerAuth
// @Router /api/servicios/{id} [get]
func (h *serviceHandler) getService(c *gin.Context) {
	service, err := h.catalogService.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"servicio": dto.ToServiceResponse(service)})
}

// listForVehicle godoc
// @Summary List services priced for a vehicle type
// @Tags servicios
// @Produce json
// @Param tipo path string true "Vehicle type"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Security BearerAuth
// @Router /api/servicios/vehiculo/{tipo} [get]
func (h *serviceHandler) listForVehicle(c *gin.Context) {
	rows, err := h.catalogService.ListPricesForVehicle(c.Request.Context(), domain.VehicleType(c.Param("tipo")))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"servicios": dto.ToServiceWithPriceListResponse(rows)})
}

// popularServices godoc
// @Summary Usage-ranked services over a trailing window
// @Tags servicios
// @Produce json
// @Param tipo_vehiculo query string false "Vehicle type filter"
// @Param dias query int false "Window in days (default 30)"
// @Param limit query int false "Max results (default 5)"
// @Success 200 {object} map[string]any
// @Security BearerAuth
// @Router /api/servicios/populares [get]
func (h *serviceHandler) popularServices(c *gin.Context) {
	var vehicleType *domain.VehicleType
	if raw := c.Query("tipo_vehiculo"); raw != "" {
		vt := domain.VehicleType(raw)
		vehicleType = &vt
	}
	windowDays, _ := strconv.Atoi(c.Query("dias"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	rows, err := h.catalogService.PopularServices(c.Request.Context(), vehicleType, windowDays, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"servicios": dto.ToPopularServiceListResponse(rows)})
}

// getPrice godoc
// @Summary Active price for a service and vehicle type
// @Tags servicios
// @Produce json
// @Param id path string true "Service ID"
// @Param vehiculo path string true "Vehicle type"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Security BearerAuth
// @Router /api/servicios/{id}/precio/{vehiculo} [get]
func (h *serviceHandler) getPrice(c *gin.Context) {
	price, err := h.catalogService.PriceFor(c.Request.Context(), c.Param("id"), domain.VehicleType(c.Param("vehiculo")))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"servicio_id":   c.Param("id"),
		"tipo_vehiculo": c.Param("vehiculo"),
		"precio":        price,
	})
}

// setPrice godoc
// @Summary Set the active price for a service and vehicle type
// @Description Replaces the active catalog entry; existing records keep their captured cost.
// @Tags servicios
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param vehiculo path string true "Vehicle type"
// @Param price body dto.SetPriceRequest true "New price"
// @Success 200 {object} dto.PriceResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Security BearerAuth
// @Router /api/servicios/{id}/precio/{vehiculo} [put]
func (h *serviceHandler) setPrice(c *gin.Context) {
	var req dto.SetPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)
	entry, err := h.catalogService.SetPrice(c.Request.Context(), c.Param("id"), domain.VehicleType(c.Param("vehiculo")), req.Price, updaterUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"precio": dto.ToPriceResponse(entry)})
}

// listAllPrices godoc
// @Summary List every active catalog price
// @Tags servicios
// @Produce json
// @Success 200 {object} map[string]any
// @Security BearerAuth
// @Router /api/servicios/precios [get]
func (h *serviceHandler) listAllPrices(c *gin.Context) {
	prices, err := h.catalogService.ListAllPrices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"precios": dto.ToPriceListResponse(prices)})
}
