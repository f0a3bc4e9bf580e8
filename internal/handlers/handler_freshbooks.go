package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
	"github.com/dekinnovations/dashboard_backend/internal/dto"
	"github.com/dekinnovations/dashboard_backend/internal/middleware"
	"github.com/dekinnovations/dashboard_backend/internal/platform/config"
)

// freshbooksHandler handles the FreshBooks connection flow, reconciliation,
// and the account overview.
type freshbooksHandler struct {
	freshbooksService portssvc.FreshbooksSvcFacade
	syncService       portssvc.SyncSvcFacade
	financeService    portssvc.FinanceSvcFacade
	frontendBaseURL   string
}

func newFreshbooksHandler(fs portssvc.FreshbooksSvcFacade, ss portssvc.SyncSvcFacade, fin portssvc.FinanceSvcFacade, cfg *config.Config) *freshbooksHandler {
	return &freshbooksHandler{
		freshbooksService: fs,
		syncService:       ss,
		financeService:    fin,
		frontendBaseURL:   cfg.FrontendBaseURL,
	}
}

// registerFreshbooksRoutes registers FreshBooks integration routes. The
// browser-facing OAuth callback is registered separately on the root router
// because the provider redirect carries no bearer token.
func registerFreshbooksRoutes(rg *gin.RouterGroup, fs portssvc.FreshbooksSvcFacade, ss portssvc.SyncSvcFacade, fin portssvc.FinanceSvcFacade, cfg *config.Config) {
	h := newFreshbooksHandler(fs, ss, fin, cfg)

	fb := rg.Group("/freshbooks")
	{
		fb.GET("/auth-url", h.authURL)
		fb.POST("/callback", h.callback)
		fb.DELETE("/connection", h.disconnect)
		fb.POST("/sync-clients", h.syncClients)
		fb.GET("/overview", h.overview)
	}
}

// registerFreshbooksRedirect registers the unauthenticated provider redirect
// that forwards the authorization code to the frontend.
func registerFreshbooksRedirect(r *gin.Engine, cfg *config.Config) {
	h := &freshbooksHandler{frontendBaseURL: cfg.FrontendBaseURL}
	r.GET("/api/v1/freshbooks/callback", h.redirectToFrontend)
}

// authURL godoc
// @Summary FreshBooks consent URL
// @Description Returns the OAuth consent URL to open in the browser.
// @Tags freshbooks
// @Produce json
// @Success 200 {object} dto.AuthURLResponse
// @Failure 400 {object} ErrorResponse "Integration not configured"
// @Security BearerAuth
// @Router /freshbooks/auth-url [get]
func (h *freshbooksHandler) authURL(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	authURL, err := h.freshbooksService.AuthURL(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to build authorization URL")
		return
	}
	c.JSON(http.StatusOK, dto.AuthURLResponse{AuthURL: authURL})
}

// redirectToFrontend forwards the provider's browser redirect to the
// frontend, which then posts the code back over an authenticated call.
func (h *freshbooksHandler) redirectToFrontend(c *gin.Context) {
	target := h.frontendBaseURL + "/settings"
	query := url.Values{}
	if code := c.Query("code"); code != "" {
		query.Set("freshbooks_code", code)
	} else {
		query.Set("freshbooks_error", c.DefaultQuery("error", "access_denied"))
	}
	c.Redirect(http.StatusFound, target+"?"+query.Encode())
}

type callbackRequest struct {
	Code string `json:"code" binding:"required"`
}

// callback godoc
// @Summary Complete FreshBooks connection
// @Description Exchanges the authorization code and stores the connection.
// @Tags freshbooks
// @Accept json
// @Produce json
// @Param callback body callbackRequest true "Authorization code"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /freshbooks/callback [post]
func (h *freshbooksHandler) callback(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req callbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.freshbooksService.HandleCallback(c.Request.Context(), userID, req.Code); err != nil {
		respondError(c, err, "Failed to complete FreshBooks connection")
		return
	}
	c.Status(http.StatusNoContent)
}

// disconnect godoc
// @Summary Disconnect FreshBooks
// @Description Removes the stored FreshBooks connection.
// @Tags freshbooks
// @Produce json
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /freshbooks/connection [delete]
func (h *freshbooksHandler) disconnect(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.freshbooksService.Disconnect(c.Request.Context(), userID); err != nil {
		respondError(c, err, "Failed to disconnect FreshBooks")
		return
	}
	c.Status(http.StatusNoContent)
}

// syncClients godoc
// @Summary Reconcile clients from FreshBooks
// @Description Imports new FreshBooks clients and back-fills existing records. Per-client failures are reported in the result, not as a request failure.
// @Tags freshbooks
// @Produce json
// @Success 200 {object} dto.SyncClientsResult
// @Failure 400 {object} ErrorResponse "Integration not configured"
// @Failure 401 {object} ErrorResponse "FreshBooks authorization expired"
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /freshbooks/sync-clients [post]
func (h *freshbooksHandler) syncClients(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.syncService.SyncClients(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to sync clients")
		return
	}
	c.JSON(http.StatusOK, result)
}

// overview godoc
// @Summary Financial overview
// @Description Returns account-wide revenue, expense, and invoice figures. Connected=false with zeroed totals when FreshBooks is unavailable.
// @Tags freshbooks
// @Produce json
// @Success 200 {object} dto.FreshbooksOverviewResponse
// @Security BearerAuth
// @Router /freshbooks/overview [get]
func (h *freshbooksHandler) overview(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	overview, err := h.financeService.AccountOverview(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to build overview")
		return
	}
	c.JSON(http.StatusOK, overview)
}
