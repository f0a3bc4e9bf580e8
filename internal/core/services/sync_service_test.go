package services_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
	"github.com/dekinnovations/dashboard_backend/internal/core/services"
	"github.com/dekinnovations/dashboard_backend/internal/platform/freshbooks"
)

const operatorID = "operator-1"

type SyncServiceTestSuite struct {
	suite.Suite
	mockGateway          *MockFreshbooksGateway
	mockUserRepo         *MockUserRepository
	mockSettingsRepo     *MockSettingsRepository
	mockNotificationRepo *MockNotificationRepository
	notifications        []domain.Notification
	service              portssvc.SyncSvcFacade
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.mockGateway = new(MockFreshbooksGateway)
	s.mockUserRepo = new(MockUserRepository)
	s.mockSettingsRepo = new(MockSettingsRepository)
	s.notifications = nil
	s.mockNotificationRepo = &MockNotificationRepository{
		SaveNotificationFn: func(ctx context.Context, n domain.Notification) error {
			s.notifications = append(s.notifications, n)
			return nil
		},
	}

	s.mockSettingsRepo.FindSettingsByUserIDFn = func(ctx context.Context, userID string) (*domain.Settings, error) {
		return connectedSettings(userID), nil
	}

	notificationSvc := services.NewNotificationService(s.mockNotificationRepo)
	s.service = services.NewSyncService(s.mockGateway, s.mockUserRepo, s.mockSettingsRepo, notificationSvc)
}

func (s *SyncServiceTestSuite) TestSyncClients_GatewayNotConfigured() {
	s.mockGateway.IsConfiguredFn = func() bool { return false }

	result, err := s.service.SyncClients(context.Background(), operatorID)

	s.Require().ErrorIs(err, apperrors.ErrNotConfigured)
	s.Nil(result)
}

func (s *SyncServiceTestSuite) TestSyncClients_AccountNotConnected() {
	s.mockSettingsRepo.FindSettingsByUserIDFn = func(ctx context.Context, userID string) (*domain.Settings, error) {
		return &domain.Settings{SettingsID: "settings-1", UserID: userID}, nil
	}

	result, err := s.service.SyncClients(context.Background(), operatorID)

	s.Require().ErrorIs(err, apperrors.ErrNotConfigured)
	s.Nil(result)
}

func (s *SyncServiceTestSuite) TestSyncClients_ImportsNewClients() {
	s.mockGateway.GetClientsFn = func(ctx context.Context, accountID string) ([]freshbooks.ClientData, error) {
		s.Equal("ACC123", accountID)
		return []freshbooks.ClientData{
			{ID: 101, Email: "Alice@Example.com", FirstName: "Alice", LastName: "Smith", BusinessPhone: "555-0101", CreatedAt: "2024-03-01 10:00:00"},
			{ID: 102, Email: "shop@example.com", CompanyName: "Corner Shop", Website: "cornershop.example.com"},
		}, nil
	}
	s.mockUserRepo.FindClientsFn = func(ctx context.Context, query, sortBy string, sortDesc bool) ([]domain.User, error) {
		return nil, nil
	}

	var saved []domain.User
	s.mockUserRepo.SaveUserFn = func(ctx context.Context, user domain.User) error {
		saved = append(saved, user)
		return nil
	}

	result, err := s.service.SyncClients(context.Background(), operatorID)

	s.Require().NoError(err)
	s.Equal(2, result.Imported)
	s.Equal(0, result.Updated)
	s.Empty(result.Errors)
	s.Equal(2, result.FBClientsFound)
	s.Equal(0, result.DashboardClientsFound)

	s.Require().Len(saved, 2)
	alice := saved[0]
	s.Equal("alice@example.com", alice.Email) // lowercased
	s.Equal("Alice Smith", alice.Name)
	s.Equal(domain.RoleClient, alice.Role)
	s.True(alice.MustChangePassword)
	s.Require().NotNil(alice.FreshbooksID)
	s.Equal("101", *alice.FreshbooksID)
	s.NotEmpty(alice.PasswordHash)
	s.Require().NotNil(alice.ClientSince)
	s.Equal(2024, alice.ClientSince.Year())

	shop := saved[1]
	s.Equal("Corner Shop", shop.Name) // company fallback when no personal name
	s.Require().NotNil(shop.Website)
	s.Equal("cornershop.example.com", *shop.Website)

	s.Len(s.notifications, 2)
}

func (s *SyncServiceTestSuite) TestSyncClients_DuplicateProviderIDImportedOnce() {
	s.mockGateway.GetClientsFn = func(ctx context.Context, accountID string) ([]freshbooks.ClientData, error) {
		// Provider payloads occasionally repeat an entry under the same id.
		return []freshbooks.ClientData{
			{ID: 1, Email: "a@x.com", FirstName: "Ada"},
			{ID: 1, Email: "b@x.com", FirstName: "Ada"},
		}, nil
	}
	s.mockUserRepo.FindClientsFn = func(ctx context.Context, query, sortBy string, sortDesc bool) ([]domain.User, error) {
		return nil, nil
	}

	var saved []domain.User
	s.mockUserRepo.SaveUserFn = func(ctx context.Context, user domain.User) error {
		saved = append(saved, user)
		return nil
	}
	s.mockUserRepo.UpdateUserFn = func(ctx context.Context, user domain.User) error {
		s.FailNow("a repeated provider id must not trigger an update")
		return nil
	}

	result, err := s.service.SyncClients(context.Background(), operatorID)

	s.Require().NoError(err)
	s.Equal(1, result.Imported)
	s.Equal(0, result.Updated)
	s.Empty(result.Errors)

	s.Require().Len(saved, 1)
	s.Equal("a@x.com", saved[0].Email)
}

func (s *SyncServiceTestSuite) TestSyncClients_MatchesByEmailCaseInsensitive() {
	phone := "555-0199"
	local := domain.User{
		UserID: "client-1",
		Email:  "alice@example.com",
		Name:   "Alice",
		Role:   domain.RoleClient,
		Phone:  &phone,
	}

	s.mockGateway.GetClientsFn = func(ctx context.Context, accountID string) ([]freshbooks.ClientData, error) {
		return []freshbooks.ClientData{
			{ID: 101, Email: "ALICE@Example.COM", CompanyName: "Alice LLC", BusinessPhone: "555-9999"},
		}, nil
	}
	s.mockUserRepo.FindClientsFn = func(ctx context.Context, query, sortBy string, sortDesc bool) ([]domain.User, error) {
		return []domain.User{local}, nil
	}

	var updated *domain.User
	s.mockUserRepo.UpdateUserFn = func(ctx context.Context, user domain.User) error {
		updated = &user
		return nil
	}

	result, err := s.service.SyncClients(context.Background(), operatorID)

	s.Require().NoError(err)
	s.Equal(0, result.Imported)
	s.Equal(1, result.Updated)

	s.Require().NotNil(updated)
	s.Require().NotNil(updated.FreshbooksID)
	s.Equal("101", *updated.FreshbooksID)
	s.Require().NotNil(updated.BusinessName)
	s.Equal("Alice LLC", *updated.BusinessName) // missing field gets filled
	s.Require().NotNil(updated.Phone)
	s.Equal("555-0199", *updated.Phone) // populated field is never overwritten
}

func (s *SyncServiceTestSuite) TestSyncClients_MatchesByFreshbooksID() {
	fbID := "202"
	local := domain.User{
		UserID:       "client-2",
		Email:        "old-address@example.com",
		Name:         "Bob",
		Role:         domain.RoleClient,
		FreshbooksID: &fbID,
	}

	s.mockGateway.GetClientsFn = func(ctx context.Context, accountID string) ([]freshbooks.ClientData, error) {
		// Provider-side email changed; the cross-reference id still matches.
		return []freshbooks.ClientData{{ID: 202, Email: "new-address@example.com"}}, nil
	}
	s.mockUserRepo.FindClientsFn = func(ctx context.Context, query, sortBy string, sortDesc bool) ([]domain.User, error) {
		return []domain.User{local}, nil
	}
	s.mockUserRepo.SaveUserFn = func(ctx context.Context, user domain.User) error {
		s.FailNow("should not import a client matched by cross-reference id")
		return nil
	}

	result, err := s.service.SyncClients(context.Background(), operatorID)

	s.Require().NoError(err)
	s.Equal(0, result.Imported)
	s.Equal(0, result.Updated) // nothing to fill, so no write either
}

func (s *SyncServiceTestSuite) TestSyncClients_SecondRunIsNoOp() {
	fbID := "101"
	company := "Alice LLC"
	local := domain.User{
		UserID:       "client-1",
		Email:        "alice@example.com",
		Name:         "Alice",
		Role:         domain.RoleClient,
		FreshbooksID: &fbID,
		BusinessName: &company,
	}

	s.mockGateway.GetClientsFn = func(ctx context.Context, accountID string) ([]freshbooks.ClientData, error) {
		return []freshbooks.ClientData{{ID: 101, Email: "alice@example.com", CompanyName: "Alice LLC"}}, nil
	}
	s.mockUserRepo.FindClientsFn = func(ctx context.Context, query, sortBy string, sortDesc bool) ([]domain.User, error) {
		return []domain.User{local}, nil
	}
	s.mockUserRepo.UpdateUserFn = func(ctx context.Context, user domain.User) error {
		s.FailNow("no write expected when nothing changed")
		return nil
	}

	result, err := s.service.SyncClients(context.Background(), operatorID)

	s.Require().NoError(err)
	s.Equal(0, result.Imported)
	s.Equal(0, result.Updated)
	s.Empty(result.Errors)
}

func (s *SyncServiceTestSuite) TestSyncClients_SkipsClientsWithoutEmail() {
	s.mockGateway.GetClientsFn = func(ctx context.Context, accountID string) ([]freshbooks.ClientData, error) {
		return []freshbooks.ClientData{{ID: 7, CompanyName: "No Email Inc"}}, nil
	}
	s.mockUserRepo.FindClientsFn = func(ctx context.Context, query, sortBy string, sortDesc bool) ([]domain.User, error) {
		return nil, nil
	}

	result, err := s.service.SyncClients(context.Background(), operatorID)

	s.Require().NoError(err)
	s.Equal(0, result.Imported)
	s.Require().Len(result.Errors, 1)
	s.Equal("Skipped FreshBooks client 7: no email address", result.Errors[0])
}

func (s *SyncServiceTestSuite) TestSyncClients_IsolatesPerClientFailures() {
	s.mockGateway.GetClientsFn = func(ctx context.Context, accountID string) ([]freshbooks.ClientData, error) {
		return []freshbooks.ClientData{
			{ID: 1, Email: "bad@example.com"},
			{ID: 2, Email: "good@example.com"},
		}, nil
	}
	s.mockUserRepo.FindClientsFn = func(ctx context.Context, query, sortBy string, sortDesc bool) ([]domain.User, error) {
		return nil, nil
	}
	s.mockUserRepo.SaveUserFn = func(ctx context.Context, user domain.User) error {
		if user.Email == "bad@example.com" {
			return apperrors.ErrDuplicate
		}
		return nil
	}

	result, err := s.service.SyncClients(context.Background(), operatorID)

	s.Require().NoError(err)
	s.Equal(1, result.Imported)
	s.Require().Len(result.Errors, 1)
	s.True(strings.HasPrefix(result.Errors[0], "Failed to sync bad@example.com: "))
}

func (s *SyncServiceTestSuite) TestSyncClients_RefreshesTokenOnceOn401() {
	calls := 0
	s.mockGateway.GetClientsFn = func(ctx context.Context, accountID string) ([]freshbooks.ClientData, error) {
		calls++
		if calls == 1 {
			return nil, &freshbooks.APIError{StatusCode: http.StatusUnauthorized}
		}
		return []freshbooks.ClientData{{ID: 1, Email: "alice@example.com"}}, nil
	}
	s.mockGateway.RefreshTokenFn = func(ctx context.Context, refreshToken string) (*freshbooks.TokenPair, error) {
		s.Equal("refresh-token", refreshToken)
		return &freshbooks.TokenPair{AccessToken: "fresh-access", RefreshToken: "refresh-token"}, nil
	}

	persisted := ""
	s.mockSettingsRepo.UpdateFreshbooksAccessTokenFn = func(ctx context.Context, userID, accessToken string) error {
		persisted = accessToken
		return nil
	}
	s.mockUserRepo.FindClientsFn = func(ctx context.Context, query, sortBy string, sortDesc bool) ([]domain.User, error) {
		return nil, nil
	}
	s.mockUserRepo.SaveUserFn = func(ctx context.Context, user domain.User) error { return nil }

	result, err := s.service.SyncClients(context.Background(), operatorID)

	s.Require().NoError(err)
	s.Equal(1, result.Imported)
	s.Equal(2, calls)
	s.Equal("fresh-access", persisted) // new token lands before the retry
}

func (s *SyncServiceTestSuite) TestSyncClients_AuthExpiredWhenRetryFails() {
	s.mockGateway.GetClientsFn = func(ctx context.Context, accountID string) ([]freshbooks.ClientData, error) {
		return nil, &freshbooks.APIError{StatusCode: http.StatusUnauthorized}
	}
	s.mockGateway.RefreshTokenFn = func(ctx context.Context, refreshToken string) (*freshbooks.TokenPair, error) {
		return &freshbooks.TokenPair{AccessToken: "fresh-access", RefreshToken: "refresh-token"}, nil
	}
	s.mockSettingsRepo.UpdateFreshbooksAccessTokenFn = func(ctx context.Context, userID, accessToken string) error {
		return nil
	}

	result, err := s.service.SyncClients(context.Background(), operatorID)

	s.Require().ErrorIs(err, apperrors.ErrAuthExpired)
	s.Nil(result)
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}
