package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
	"github.com/dekinnovations/dashboard_backend/internal/middleware"
)

// financialsHandler serves per-client financial figures.
type financialsHandler struct {
	financeService portssvc.FinanceSvcFacade
}

func registerFinancialsRoutes(rg *gin.RouterGroup, financeService portssvc.FinanceSvcFacade) {
	h := &financialsHandler{financeService: financeService}
	rg.GET("/clients/:id/financials", h.clientFinancials)
}

// clientFinancials godoc
// @Summary Client financials
// @Description Returns invoice and expense totals for one client, matched by its FreshBooks cross-reference.
// @Tags financials
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.ClientFinancialsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id}/financials [get]
func (h *financialsHandler) clientFinancials(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	financials, err := h.financeService.ClientFinancials(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to load client financials")
		return
	}
	c.JSON(http.StatusOK, financials)
}
