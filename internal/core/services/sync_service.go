package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	portsrepo "github.com/dekinnovations/dashboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
	"github.com/dekinnovations/dashboard_backend/internal/dto"
	"github.com/dekinnovations/dashboard_backend/internal/middleware"
	"github.com/dekinnovations/dashboard_backend/internal/platform/freshbooks"
	"github.com/dekinnovations/dashboard_backend/internal/utils"
)

type syncService struct {
	gateway         portssvc.FreshbooksGateway
	userRepo        portsrepo.UserRepositoryFacade
	settingsRepo    portsrepo.SettingsRepositoryFacade
	notificationSvc portssvc.NotificationSvcFacade

	// mu serializes reconciliation runs. Concurrent triggers queue up
	// instead of interleaving writes.
	mu sync.Mutex
}

// NewSyncService creates the client reconciliation service.
func NewSyncService(
	gateway portssvc.FreshbooksGateway,
	userRepo portsrepo.UserRepositoryFacade,
	settingsRepo portsrepo.SettingsRepositoryFacade,
	notificationSvc portssvc.NotificationSvcFacade,
) portssvc.SyncSvcFacade {
	return &syncService{
		gateway:         gateway,
		userRepo:        userRepo,
		settingsRepo:    settingsRepo,
		notificationSvc: notificationSvc,
	}
}

var _ portssvc.SyncSvcFacade = (*syncService)(nil)

func (s *syncService) SyncClients(ctx context.Context, operatorUserID string) (*dto.SyncClientsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := middleware.GetLoggerFromCtx(ctx)

	session, err := openFreshbooksSession(ctx, s.gateway, s.settingsRepo, operatorUserID)
	if err != nil {
		return nil, err
	}

	var fbClients []freshbooks.ClientData
	err = session.do(ctx, func() error {
		var fetchErr error
		fbClients, fetchErr = s.gateway.GetClients(ctx, session.accountID)
		return fetchErr
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrAuthExpired) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to fetch freshbooks clients: %s", apperrors.ErrSyncFailed, err)
	}

	locals, err := s.userRepo.FindClients(ctx, "", "name", false)
	if err != nil {
		return nil, fmt.Errorf("failed to load local clients: %w", err)
	}

	// Match indexes. Email wins over cross-reference id when both hit.
	byEmail := make(map[string]*domain.User, len(locals))
	byFreshbooksID := make(map[string]*domain.User, len(locals))
	for i := range locals {
		local := &locals[i]
		byEmail[strings.ToLower(local.Email)] = local
		if local.FreshbooksID != nil && *local.FreshbooksID != "" {
			byFreshbooksID[*local.FreshbooksID] = local
		}
	}

	result := &dto.SyncClientsResult{
		Errors:                []string{},
		FBClientsFound:        len(fbClients),
		DashboardClientsFound: len(locals),
	}

	for _, fb := range fbClients {
		email := strings.ToLower(strings.TrimSpace(fb.Email))
		fbID := strconv.FormatInt(fb.ID, 10)

		if email == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Skipped FreshBooks client %s: no email address", fbID))
			continue
		}

		local := byEmail[email]
		if local == nil {
			local = byFreshbooksID[fbID]
		}

		if local != nil {
			changed, err := s.updateExisting(ctx, local, fb, fbID, operatorUserID)
			if err != nil {
				logger.Warn("Client sync update failed", slog.String("email", email), slog.String("error", err.Error()))
				result.Errors = append(result.Errors, fmt.Sprintf("Failed to sync %s: %s", email, err.Error()))
				continue
			}
			if changed {
				result.Updated++
			}
			continue
		}

		created, err := s.importClient(ctx, fb, email, fbID, operatorUserID)
		if err != nil {
			logger.Warn("Client import failed", slog.String("email", email), slog.String("error", err.Error()))
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to sync %s: %s", email, err.Error()))
			continue
		}
		result.Imported++
		byEmail[email] = created
		byFreshbooksID[fbID] = created
	}

	logger.Info("Client sync completed",
		slog.Int("imported", result.Imported),
		slog.Int("updated", result.Updated),
		slog.Int("errors", len(result.Errors)),
		slog.Int("fb_clients", result.FBClientsFound),
		slog.Int("dashboard_clients", result.DashboardClientsFound),
	)
	return result, nil
}

// fbClientName derives a display name, preferring the personal name and
// falling back to the company, then the email.
func fbClientName(fb freshbooks.ClientData, email string) string {
	name := strings.TrimSpace(strings.TrimSpace(fb.FirstName) + " " + strings.TrimSpace(fb.LastName))
	if name != "" {
		return name
	}
	if company := strings.TrimSpace(fb.CompanyName); company != "" {
		return company
	}
	return email
}

func fbClientPhone(fb freshbooks.ClientData) string {
	if p := strings.TrimSpace(fb.BusinessPhone); p != "" {
		return p
	}
	return strings.TrimSpace(fb.MobilePhone)
}

// updateExisting applies a sparse update: the provider only fills fields the
// local record is missing, and always owns the cross-reference id. Reports
// whether anything was actually written.
func (s *syncService) updateExisting(ctx context.Context, local *domain.User, fb freshbooks.ClientData, fbID, operatorUserID string) (bool, error) {
	changed := false

	if local.FreshbooksID == nil || *local.FreshbooksID != fbID {
		local.FreshbooksID = &fbID
		changed = true
	}
	if company := strings.TrimSpace(fb.CompanyName); company != "" && (local.BusinessName == nil || *local.BusinessName == "") {
		local.BusinessName = &company
		changed = true
	}
	if phone := fbClientPhone(fb); phone != "" && (local.Phone == nil || *local.Phone == "") {
		local.Phone = &phone
		changed = true
	}
	if website := strings.TrimSpace(fb.Website); website != "" && (local.Website == nil || *local.Website == "") {
		local.Website = &website
		changed = true
	}
	if created := fb.CreatedTime(); created != nil && local.ClientSince == nil {
		local.ClientSince = created
		changed = true
	}

	if !changed {
		return false, nil
	}

	local.LastUpdatedAt = time.Now()
	local.LastUpdatedBy = operatorUserID
	if err := s.userRepo.UpdateUser(ctx, *local); err != nil {
		return false, err
	}
	return true, nil
}

// importClient creates a new CLIENT record for an unmatched provider client.
// The account gets a generated password and must change it on first login.
func (s *syncService) importClient(ctx context.Context, fb freshbooks.ClientData, email, fbID, operatorUserID string) (*domain.User, error) {
	tempPassword, err := utils.GenerateSecureRandomString(12)
	if err != nil {
		return nil, fmt.Errorf("failed to generate temporary password: %w", err)
	}
	hash, err := utils.HashPassword(tempPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash temporary password: %w", err)
	}

	now := time.Now()
	clientSince := fb.CreatedTime()
	if clientSince == nil {
		clientSince = &now
	}

	client := domain.User{
		UserID:             uuid.NewString(),
		Email:              email,
		Name:               fbClientName(fb, email),
		PasswordHash:       hash,
		Role:               domain.RoleClient,
		MustChangePassword: true,
		ClientSince:        clientSince,
		FreshbooksID:       &fbID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorUserID,
		},
	}
	if company := strings.TrimSpace(fb.CompanyName); company != "" {
		client.BusinessName = &company
	}
	if phone := fbClientPhone(fb); phone != "" {
		client.Phone = &phone
	}
	if website := strings.TrimSpace(fb.Website); website != "" {
		client.Website = &website
	}

	if err := s.userRepo.SaveUser(ctx, client); err != nil {
		return nil, err
	}

	if err := s.notificationSvc.Notify(ctx, operatorUserID, domain.NotificationNewClient,
		"Client imported from FreshBooks", fmt.Sprintf("%s was imported from FreshBooks", client.Name)); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to record import notification", slog.String("error", err.Error()))
	}

	return &client, nil
}
