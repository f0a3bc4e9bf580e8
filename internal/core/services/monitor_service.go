package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	portsrepo "github.com/dekinnovations/dashboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
	"github.com/dekinnovations/dashboard_backend/internal/dto"
	"github.com/dekinnovations/dashboard_backend/internal/middleware"
	"github.com/dekinnovations/dashboard_backend/internal/platform/webping"
)

// secondsIn30Days converts a check period into its monthly request count.
const secondsIn30Days = 30 * 24 * 60 * 60

type monitorService struct {
	updownGw        portssvc.UpdownGateway
	pinger          *webping.Pinger
	userRepo        portsrepo.UserRepositoryFacade
	notificationSvc portssvc.NotificationSvcFacade
}

// NewMonitorService creates the website monitoring service.
func NewMonitorService(updownGw portssvc.UpdownGateway, pinger *webping.Pinger, userRepo portsrepo.UserRepositoryFacade, notificationSvc portssvc.NotificationSvcFacade) portssvc.MonitorSvcFacade {
	return &monitorService{
		updownGw:        updownGw,
		pinger:          pinger,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
	}
}

var _ portssvc.MonitorSvcFacade = (*monitorService)(nil)

func (s *monitorService) CheckWebsite(ctx context.Context, clientID string) (*dto.WebsiteStatusResponse, error) {
	client, err := s.userRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client.Website == nil || *client.Website == "" {
		return nil, apperrors.NewBadRequestError("client has no website configured")
	}
	return s.checkOne(ctx, client)
}

func (s *monitorService) checkOne(ctx context.Context, client *domain.User) (*dto.WebsiteStatusResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	resp := &dto.WebsiteStatusResponse{
		ClientID:    client.UserID,
		LastChecked: time.Now(),
	}

	status := domain.WebsiteUnknown
	usedCheck := false

	// Registered updown check wins over a direct probe.
	if client.UpdownToken != nil && *client.UpdownToken != "" && s.updownGw.IsConfigured() {
		check, err := s.updownGw.GetCheck(ctx, *client.UpdownToken)
		switch {
		case err == nil:
			usedCheck = true
			if check.Down {
				status = domain.WebsiteDown
				if check.Error != nil {
					resp.Error = *check.Error
				}
			} else {
				status = domain.WebsiteUp
			}
			resp.StatusCode = check.LastStatus
		case errors.Is(err, apperrors.ErrNotFound):
			// Check was deleted upstream; fall through to the probe.
			logger.Info("updown check missing, falling back to probe", slog.String("client_id", client.UserID))
		default:
			logger.Warn("updown check fetch failed, falling back to probe", slog.String("error", err.Error()))
		}
	}

	if !usedCheck {
		result := s.pinger.Ping(ctx, *client.Website)
		if result.Up {
			status = domain.WebsiteUp
		} else {
			status = domain.WebsiteDown
		}
		resp.StatusCode = result.StatusCode
		resp.ResponseTimeMs = result.ResponseTime.Milliseconds()
		resp.Error = result.Err
	}

	resp.Status = string(status)

	previous := domain.WebsiteUnknown
	if client.WebsiteStatus != nil {
		previous = *client.WebsiteStatus
	}

	now := resp.LastChecked
	client.WebsiteStatus = &status
	client.LastChecked = &now
	client.LastUpdatedAt = now
	if err := s.userRepo.UpdateUser(ctx, *client); err != nil {
		return nil, fmt.Errorf("failed to persist website status: %w", err)
	}

	s.notifyTransition(ctx, client, previous, status)
	return resp, nil
}

// notifyTransition records a notification when a site changes between up and
// down. First observations and unknown states stay quiet.
func (s *monitorService) notifyTransition(ctx context.Context, client *domain.User, previous, current domain.WebsiteStatus) {
	if previous == current {
		return
	}

	var kind domain.NotificationType
	var title string
	switch {
	case current == domain.WebsiteDown && previous == domain.WebsiteUp:
		kind = domain.NotificationWebsiteDown
		title = "Website down"
	case current == domain.WebsiteUp && previous == domain.WebsiteDown:
		kind = domain.NotificationWebsiteUp
		title = "Website recovered"
	default:
		return
	}

	message := fmt.Sprintf("%s (%s) is %s", client.Name, *client.Website, current)
	if err := s.notificationSvc.Notify(ctx, "", kind, title, message); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to record status notification", slog.String("error", err.Error()))
	}
}

func (s *monitorService) CheckAllWebsites(ctx context.Context) ([]dto.WebsiteStatusResponse, error) {
	clients, err := s.userRepo.FindClients(ctx, "", "name", false)
	if err != nil {
		return nil, fmt.Errorf("failed to load clients for monitoring: %w", err)
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	results := []dto.WebsiteStatusResponse{}
	for i := range clients {
		client := &clients[i]
		if client.Website == nil || *client.Website == "" {
			continue
		}
		resp, err := s.checkOne(ctx, client)
		if err != nil {
			logger.Warn("Website check failed", slog.String("client_id", client.UserID), slog.String("error", err.Error()))
			results = append(results, dto.WebsiteStatusResponse{
				ClientID:    client.UserID,
				Status:      string(domain.WebsiteUnknown),
				LastChecked: time.Now(),
				Error:       err.Error(),
			})
			continue
		}
		results = append(results, *resp)
	}
	return results, nil
}

func (s *monitorService) RegisterCheck(ctx context.Context, clientID string) (*dto.WebsiteStatusResponse, error) {
	if !s.updownGw.IsConfigured() {
		return nil, apperrors.ErrNotConfigured
	}

	client, err := s.userRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client.Website == nil || *client.Website == "" {
		return nil, apperrors.NewBadRequestError("client has no website configured")
	}
	if client.UpdownToken != nil && *client.UpdownToken != "" {
		return nil, apperrors.NewConflictError("client already has a monitoring check")
	}

	alias := client.Name
	if client.BusinessName != nil && *client.BusinessName != "" {
		alias = *client.BusinessName
	}
	check, err := s.updownGw.CreateCheck(ctx, *client.Website, alias)
	if err != nil {
		return nil, apperrors.NewBadGatewayError("failed to create monitoring check")
	}

	now := time.Now()
	status := domain.WebsiteChecking
	client.UpdownToken = &check.Token
	client.WebsiteStatus = &status
	client.LastChecked = &now
	client.LastUpdatedAt = now
	if err := s.userRepo.UpdateUser(ctx, *client); err != nil {
		return nil, fmt.Errorf("failed to store monitoring token: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Monitoring check registered",
		slog.String("client_id", client.UserID), slog.String("token", check.Token))

	return &dto.WebsiteStatusResponse{
		ClientID:    client.UserID,
		Status:      string(status),
		LastChecked: now,
	}, nil
}

func (s *monitorService) UnregisterCheck(ctx context.Context, clientID string) error {
	client, err := s.userRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return err
	}
	if client.UpdownToken == nil || *client.UpdownToken == "" {
		return apperrors.ErrNotFound
	}

	if err := s.updownGw.DeleteCheck(ctx, *client.UpdownToken); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewBadGatewayError("failed to delete monitoring check")
	}

	client.UpdownToken = nil
	client.LastUpdatedAt = time.Now()
	if err := s.userRepo.UpdateUser(ctx, *client); err != nil {
		return fmt.Errorf("failed to clear monitoring token: %w", err)
	}
	return nil
}

func (s *monitorService) AccountStats(ctx context.Context) (*dto.UpdownAccountStatsResponse, error) {
	statusCounts, err := s.userRepo.CountWebsiteStatuses(ctx)
	if err != nil {
		return nil, err
	}
	local := dto.UptimeStats{
		Up:       statusCounts[domain.WebsiteUp],
		Down:     statusCounts[domain.WebsiteDown],
		Unknown:  statusCounts[domain.WebsiteUnknown],
		Checking: statusCounts[domain.WebsiteChecking],
	}
	local.Total = local.Up + local.Down + local.Unknown + local.Checking
	if monitored := local.Up + local.Down; monitored > 0 {
		local.Percentage = local.Up * 100 / monitored
	}

	stats := &dto.UpdownAccountStatsResponse{
		ChecksByPeriod: map[int]int{},
		LocalStatus:    local,
		LastUpdated:    time.Now(),
	}

	if !s.updownGw.IsConfigured() {
		return stats, nil
	}

	checks, err := s.updownGw.ListChecks(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("updown check listing failed", slog.String("error", err.Error()))
		return stats, nil
	}

	stats.Configured = true
	stats.TotalChecks = len(checks)
	var uptimeSum float64
	for _, check := range checks {
		if check.Enabled {
			stats.ActiveChecks++
			if check.Period > 0 {
				stats.ChecksByPeriod[check.Period]++
				stats.TotalMonthlyRequests += secondsIn30Days / check.Period
			}
		} else {
			stats.DisabledChecks++
		}
		if check.Down {
			stats.ChecksDown++
		}
		uptimeSum += check.Uptime
	}
	if len(checks) > 0 {
		stats.AverageUptime = uptimeSum / float64(len(checks))
	}

	return stats, nil
}
