package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	portsrepo "github.com/dekinnovations/dashboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
	"github.com/dekinnovations/dashboard_backend/internal/dto"
	"github.com/dekinnovations/dashboard_backend/internal/middleware"
	"github.com/dekinnovations/dashboard_backend/internal/utils"
)

type clientService struct {
	userRepo        portsrepo.UserRepositoryFacade
	notificationSvc portssvc.NotificationSvcFacade
}

// NewClientService creates the client directory service.
func NewClientService(userRepo portsrepo.UserRepositoryFacade, notificationSvc portssvc.NotificationSvcFacade) portssvc.ClientSvcFacade {
	return &clientService{userRepo: userRepo, notificationSvc: notificationSvc}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) GetClient(ctx context.Context, clientID string) (*domain.User, error) {
	client, err := s.userRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.User, error) {
	sortDesc := strings.EqualFold(params.SortOrder, "desc")
	clients, err := s.userRepo.FindClients(ctx, params.Query, params.SortBy, sortDesc)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		clients = []domain.User{}
	}
	return clients, nil
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflictError("a user with this email already exists")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash client password: %w", err)
	}

	now := time.Now()
	client := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         domain.RoleClient,
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
		Website:      req.Website,
		Location:     req.Location,
		Phone:        req.Phone,
		ClientSince:  &now,
		RepName:      req.RepName,
		RepRole:      req.RepRole,
		RepEmail:     req.RepEmail,
		RepPhone:     req.RepPhone,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, client); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("a user with this email already exists")
		}
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	logger.Info("Client created", slog.String("client_id", client.UserID))

	if err := s.notificationSvc.Notify(ctx, creatorUserID, domain.NotificationNewClient,
		"New client added", fmt.Sprintf("%s was added to the client directory", client.Name)); err != nil {
		logger.Warn("Failed to record new-client notification", slog.String("error", err.Error()))
	}

	return &client, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterUserID string) (*domain.User, error) {
	client, err := s.userRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.BusinessName != nil {
		client.BusinessName = req.BusinessName
	}
	if req.BusinessType != nil {
		client.BusinessType = req.BusinessType
	}
	if req.Website != nil {
		client.Website = req.Website
	}
	if req.Location != nil {
		client.Location = req.Location
	}
	if req.Phone != nil {
		client.Phone = req.Phone
	}
	if req.RepName != nil {
		client.RepName = req.RepName
	}
	if req.RepRole != nil {
		client.RepRole = req.RepRole
	}
	if req.RepEmail != nil {
		client.RepEmail = req.RepEmail
	}
	if req.RepPhone != nil {
		client.RepPhone = req.RepPhone
	}

	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = updaterUserID

	if err := s.userRepo.UpdateUser(ctx, *client); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("a user with this email already exists")
		}
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	// Confirm the target is a client so the operator account can never be
	// removed through this path.
	if _, err := s.userRepo.FindClientByID(ctx, clientID); err != nil {
		return err
	}
	if err := s.userRepo.DeleteUser(ctx, clientID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Client deleted", slog.String("client_id", clientID))
	return nil
}

func (s *clientService) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	total, err := s.userRepo.CountClients(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	active, err := s.userRepo.CountClientsUpdatedSince(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	newThisMonth, err := s.userRepo.CountClientsCreatedSince(ctx, time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
	if err != nil {
		return nil, err
	}

	uptime, err := s.websiteUptimeStats(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.recentActivityEntries(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalClients:   total,
		ActiveClients:  active,
		NewThisMonth:   newThisMonth,
		UptimeStats:    uptime,
		RecentActivity: entries,
	}, nil
}

func (s *clientService) PeriodReport(ctx context.Context, periodDays int) (*dto.ClientReportResponse, error) {
	if periodDays < 1 || periodDays > 365 {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("invalid report period: %d days", periodDays))
	}

	total, err := s.userRepo.CountClients(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	periodStart := now.AddDate(0, 0, -periodDays)
	previousStart := periodStart.AddDate(0, 0, -periodDays)

	newThisPeriod, err := s.userRepo.CountClientsCreatedSince(ctx, periodStart)
	if err != nil {
		return nil, err
	}
	createdSincePrevious, err := s.userRepo.CountClientsCreatedSince(ctx, previousStart)
	if err != nil {
		return nil, err
	}
	newPreviousPeriod := createdSincePrevious - newThisPeriod

	active, err := s.userRepo.CountClientsUpdatedSince(ctx, periodStart)
	if err != nil {
		return nil, err
	}

	clients := dto.ReportClientStats{
		Total:  total,
		New:    newThisPeriod,
		Active: active,
	}
	if total > 0 {
		clients.Retention = active * 100 / total
	}
	switch {
	case newPreviousPeriod > 0:
		clients.GrowthRate = (newThisPeriod - newPreviousPeriod) * 100 / newPreviousPeriod
	case newThisPeriod > 0:
		clients.GrowthRate = 100
	}

	uptime, err := s.websiteUptimeStats(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.recentActivityEntries(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &dto.ClientReportResponse{
		PeriodDays:     periodDays,
		Clients:        clients,
		Uptime:         uptime,
		RecentActivity: entries,
	}, nil
}

func (s *clientService) websiteUptimeStats(ctx context.Context) (dto.UptimeStats, error) {
	statusCounts, err := s.userRepo.CountWebsiteStatuses(ctx)
	if err != nil {
		return dto.UptimeStats{}, err
	}
	uptime := dto.UptimeStats{
		Up:       statusCounts[domain.WebsiteUp],
		Down:     statusCounts[domain.WebsiteDown],
		Unknown:  statusCounts[domain.WebsiteUnknown],
		Checking: statusCounts[domain.WebsiteChecking],
	}
	uptime.Total = uptime.Up + uptime.Down + uptime.Unknown + uptime.Checking
	if monitored := uptime.Up + uptime.Down; monitored > 0 {
		uptime.Percentage = uptime.Up * 100 / monitored
	}
	return uptime, nil
}

func (s *clientService) recentActivityEntries(ctx context.Context, limit int) ([]dto.ActivityEntry, error) {
	activity, err := s.userRepo.FindRecentActivity(ctx, limit)
	if err != nil {
		return nil, err
	}
	entries := make([]dto.ActivityEntry, 0, len(activity))
	for _, a := range activity {
		name := a.Name
		if a.BusinessName != nil && *a.BusinessName != "" {
			name = *a.BusinessName
		}
		action := "updated"
		entryType := "client_updated"
		// Creation and last update within the same second means the record
		// was never edited after being added.
		if a.UpdatedAt.Sub(a.CreatedAt) < time.Second {
			action = "added"
			entryType = "client_added"
		}
		entries = append(entries, dto.ActivityEntry{
			UserID:    a.UserID,
			Name:      name,
			Action:    action,
			Timestamp: a.UpdatedAt,
			Type:      entryType,
		})
	}
	return entries, nil
}
