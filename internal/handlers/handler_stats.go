package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
)

// statsHandler serves the dashboard landing-page summary.
type statsHandler struct {
	clientService portssvc.ClientSvcFacade
}

func registerStatsRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := &statsHandler{clientService: clientService}
	rg.GET("/dashboard/stats", h.dashboardStats)
	rg.GET("/reports", h.periodReport)
}

// dashboardStats godoc
// @Summary Dashboard stats
// @Description Returns client counts, the website status rollup, and recent activity.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *statsHandler) dashboardStats(c *gin.Context) {
	stats, err := h.clientService.DashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load dashboard stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// periodReport godoc
// @Summary Period report
// @Description Returns client growth, retention, and uptime figures for the trailing period.
// @Tags dashboard
// @Produce json
// @Param period query int false "Report period in days (1-365)" default(30)
// @Success 200 {object} dto.ClientReportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports [get]
func (h *statsHandler) periodReport(c *gin.Context) {
	periodDays, err := strconv.Atoi(c.DefaultQuery("period", "30"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid period parameter"})
		return
	}

	report, err := h.clientService.PeriodReport(c.Request.Context(), periodDays)
	if err != nil {
		respondError(c, err, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, report)
}
