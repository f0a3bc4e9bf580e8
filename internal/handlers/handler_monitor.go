package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
)

// monitorHandler handles website uptime routes.
type monitorHandler struct {
	monitorService portssvc.MonitorSvcFacade
}

func registerMonitorRoutes(rg *gin.RouterGroup, monitorService portssvc.MonitorSvcFacade) {
	h := &monitorHandler{monitorService: monitorService}

	rg.POST("/clients/:id/check-website", h.checkWebsite)
	rg.POST("/clients/:id/monitoring", h.registerCheck)
	rg.DELETE("/clients/:id/monitoring", h.unregisterCheck)

	monitor := rg.Group("/monitoring")
	{
		monitor.POST("/check-all", h.checkAll)
		monitor.GET("/stats", h.stats)
	}
}

// checkWebsite godoc
// @Summary Check one website
// @Description Determines the current status of a client's website and persists it.
// @Tags monitoring
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.WebsiteStatusResponse
// @Failure 400 {object} ErrorResponse "Client has no website"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/check-website [post]
func (h *monitorHandler) checkWebsite(c *gin.Context) {
	status, err := h.monitorService.CheckWebsite(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to check website")
		return
	}
	c.JSON(http.StatusOK, status)
}

// registerCheck godoc
// @Summary Register monitoring
// @Description Creates an updown.io check for the client's website.
// @Tags monitoring
// @Produce json
// @Param id path string true "Client ID"
// @Success 201 {object} dto.WebsiteStatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Check already exists"
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/monitoring [post]
func (h *monitorHandler) registerCheck(c *gin.Context) {
	status, err := h.monitorService.RegisterCheck(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to register monitoring check")
		return
	}
	c.JSON(http.StatusCreated, status)
}

// unregisterCheck godoc
// @Summary Remove monitoring
// @Description Deletes the client's updown.io check.
// @Tags monitoring
// @Produce json
// @Param id path string true "Client ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/monitoring [delete]
func (h *monitorHandler) unregisterCheck(c *gin.Context) {
	if err := h.monitorService.UnregisterCheck(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to remove monitoring check")
		return
	}
	c.Status(http.StatusNoContent)
}

// checkAll godoc
// @Summary Check all websites
// @Description Refreshes the status of every client with a website on record.
// @Tags monitoring
// @Produce json
// @Success 200 {array} dto.WebsiteStatusResponse
// @Security BearerAuth
// @Router /monitoring/check-all [post]
func (h *monitorHandler) checkAll(c *gin.Context) {
	results, err := h.monitorService.CheckAllWebsites(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to check websites")
		return
	}
	c.JSON(http.StatusOK, results)
}

// stats godoc
// @Summary Monitoring stats
// @Description Aggregates updown.io account usage and the local status rollup.
// @Tags monitoring
// @Produce json
// @Success 200 {object} dto.UpdownAccountStatsResponse
// @Security BearerAuth
// @Router /monitoring/stats [get]
func (h *monitorHandler) stats(c *gin.Context) {
	stats, err := h.monitorService.AccountStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load monitoring stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
