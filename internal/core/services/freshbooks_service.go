package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
	"github.com/dekinnovations/dashboard_backend/internal/middleware"
	"github.com/dekinnovations/dashboard_backend/internal/utils"
)

type freshbooksService struct {
	gateway     portssvc.FreshbooksGateway
	settingsSvc portssvc.SettingsSvcFacade
}

// NewFreshbooksService creates the OAuth connection-flow service.
func NewFreshbooksService(gateway portssvc.FreshbooksGateway, settingsSvc portssvc.SettingsSvcFacade) portssvc.FreshbooksSvcFacade {
	return &freshbooksService{gateway: gateway, settingsSvc: settingsSvc}
}

var _ portssvc.FreshbooksSvcFacade = (*freshbooksService)(nil)

func (s *freshbooksService) AuthURL(ctx context.Context, userID string) (string, error) {
	if !s.gateway.IsConfigured() {
		return "", apperrors.ErrNotConfigured
	}
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}
	return s.gateway.AuthorizationURL(state), nil
}

func (s *freshbooksService) HandleCallback(ctx context.Context, userID, code string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !s.gateway.IsConfigured() {
		return apperrors.ErrNotConfigured
	}

	pair, err := s.gateway.ExchangeCode(ctx, code)
	if err != nil {
		logger.Warn("FreshBooks code exchange failed", slog.String("error", err.Error()))
		return apperrors.NewBadGatewayError("failed to exchange authorization code")
	}

	s.gateway.SetAccessToken(pair.AccessToken)
	profile, err := s.gateway.GetUserProfile(ctx)
	if err != nil {
		logger.Warn("FreshBooks profile fetch failed after exchange", slog.String("error", err.Error()))
		return apperrors.NewBadGatewayError("failed to resolve connected account")
	}

	accountID := profile.AccountID()
	if accountID == "" {
		return apperrors.NewBadGatewayError("connected user has no business membership")
	}

	if err := s.settingsSvc.StoreFreshbooksTokens(ctx, userID, pair.AccessToken, pair.RefreshToken, accountID); err != nil {
		return err
	}

	logger.Info("FreshBooks account connected", slog.String("user_id", userID), slog.String("account_id", accountID))
	return nil
}

func (s *freshbooksService) Disconnect(ctx context.Context, userID string) error {
	if err := s.settingsSvc.DisconnectFreshbooks(ctx, userID); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Info("FreshBooks account disconnected", slog.String("user_id", userID))
	return nil
}
