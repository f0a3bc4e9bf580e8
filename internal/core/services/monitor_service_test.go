package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
	"github.com/dekinnovations/dashboard_backend/internal/core/services"
	"github.com/dekinnovations/dashboard_backend/internal/platform/updown"
	"github.com/dekinnovations/dashboard_backend/internal/platform/webping"
)

type MonitorServiceTestSuite struct {
	suite.Suite
	mockUpdownGw         *MockUpdownGateway
	mockUserRepo         *MockUserRepository
	mockNotificationRepo *MockNotificationRepository
	notifications        []domain.Notification
	service              portssvc.MonitorSvcFacade
}

func (s *MonitorServiceTestSuite) SetupTest() {
	s.mockUpdownGw = new(MockUpdownGateway)
	s.mockUserRepo = new(MockUserRepository)
	s.mockNotificationRepo = new(MockNotificationRepository)
	s.notifications = nil
	s.mockNotificationRepo.SaveNotificationFn = func(ctx context.Context, notification domain.Notification) error {
		s.notifications = append(s.notifications, notification)
		return nil
	}
	notificationSvc := services.NewNotificationService(s.mockNotificationRepo)
	s.service = services.NewMonitorService(s.mockUpdownGw, webping.NewPinger(nil), s.mockUserRepo, notificationSvc)
}

// monitoredClient returns a client with a website and no updown check, so
// checks go down the direct-probe path unless a token is set.
func monitoredClient(website string) *domain.User {
	return &domain.User{
		UserID:  "client-1",
		Email:   "alice@example.com",
		Name:    "Alice Smith",
		Role:    domain.RoleClient,
		Website: &website,
	}
}

func (s *MonitorServiceTestSuite) TestCheckWebsite_RequiresWebsite() {
	s.mockUserRepo.FindClientByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{UserID: userID, Role: domain.RoleClient}, nil
	}

	_, err := s.service.CheckWebsite(context.Background(), "client-1")

	var appErr *apperrors.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal(http.StatusBadRequest, appErr.Code)
}

func (s *MonitorServiceTestSuite) TestCheckWebsite_ProbeMarksSiteUp() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := monitoredClient(server.URL)
	s.mockUserRepo.FindClientByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return client, nil
	}
	var persisted *domain.User
	s.mockUserRepo.UpdateUserFn = func(ctx context.Context, user domain.User) error {
		persisted = &user
		return nil
	}

	resp, err := s.service.CheckWebsite(context.Background(), "client-1")

	s.Require().NoError(err)
	s.Equal(string(domain.WebsiteUp), resp.Status)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Require().NotNil(persisted)
	s.Require().NotNil(persisted.WebsiteStatus)
	s.Equal(domain.WebsiteUp, *persisted.WebsiteStatus)
	s.NotNil(persisted.LastChecked)
	// First observation: no transition, no notification.
	s.Empty(s.notifications)
}

func (s *MonitorServiceTestSuite) TestCheckWebsite_ProbeMarksSiteDown() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	previous := domain.WebsiteUp
	client := monitoredClient(server.URL)
	client.WebsiteStatus = &previous
	s.mockUserRepo.FindClientByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return client, nil
	}
	s.mockUserRepo.UpdateUserFn = func(ctx context.Context, user domain.User) error { return nil }

	resp, err := s.service.CheckWebsite(context.Background(), "client-1")

	s.Require().NoError(err)
	s.Equal(string(domain.WebsiteDown), resp.Status)
	s.Equal(http.StatusServiceUnavailable, resp.StatusCode)

	// The up-to-down transition broadcasts to every operator.
	s.Require().Len(s.notifications, 1)
	s.Equal(domain.NotificationWebsiteDown, s.notifications[0].Type)
	s.Nil(s.notifications[0].UserID)
}

func (s *MonitorServiceTestSuite) TestCheckWebsite_UpdownCheckWinsOverProbe() {
	client := monitoredClient("https://alice.example.com")
	client.UpdownToken = strPtr("tok123")
	s.mockUserRepo.FindClientByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return client, nil
	}
	s.mockUserRepo.UpdateUserFn = func(ctx context.Context, user domain.User) error { return nil }
	s.mockUpdownGw.GetCheckFn = func(ctx context.Context, token string) (*updown.Check, error) {
		s.Equal("tok123", token)
		return &updown.Check{
			Token:      token,
			Down:       true,
			LastStatus: http.StatusBadGateway,
			Error:      strPtr("HTTP 502 Bad Gateway"),
		}, nil
	}

	resp, err := s.service.CheckWebsite(context.Background(), "client-1")

	s.Require().NoError(err)
	s.Equal(string(domain.WebsiteDown), resp.Status)
	s.Equal(http.StatusBadGateway, resp.StatusCode)
	s.Equal("HTTP 502 Bad Gateway", resp.Error)
}

func (s *MonitorServiceTestSuite) TestCheckWebsite_FallsBackToProbeWhenCheckMissing() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := monitoredClient(server.URL)
	client.UpdownToken = strPtr("tok123")
	s.mockUserRepo.FindClientByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return client, nil
	}
	s.mockUserRepo.UpdateUserFn = func(ctx context.Context, user domain.User) error { return nil }
	s.mockUpdownGw.GetCheckFn = func(ctx context.Context, token string) (*updown.Check, error) {
		return nil, apperrors.ErrNotFound
	}

	resp, err := s.service.CheckWebsite(context.Background(), "client-1")

	s.Require().NoError(err)
	s.Equal(string(domain.WebsiteUp), resp.Status)
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *MonitorServiceTestSuite) TestRegisterCheck_StoresToken() {
	client := monitoredClient("alice.example.com")
	client.BusinessName = strPtr("Alice LLC")
	s.mockUserRepo.FindClientByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return client, nil
	}
	var persisted *domain.User
	s.mockUserRepo.UpdateUserFn = func(ctx context.Context, user domain.User) error {
		persisted = &user
		return nil
	}
	s.mockUpdownGw.CreateCheckFn = func(ctx context.Context, url, alias string) (*updown.Check, error) {
		s.Equal("alice.example.com", url)
		s.Equal("Alice LLC", alias)
		return &updown.Check{Token: "tok-new"}, nil
	}

	resp, err := s.service.RegisterCheck(context.Background(), "client-1")

	s.Require().NoError(err)
	s.Equal(string(domain.WebsiteChecking), resp.Status)
	s.Require().NotNil(persisted)
	s.Require().NotNil(persisted.UpdownToken)
	s.Equal("tok-new", *persisted.UpdownToken)
}

func (s *MonitorServiceTestSuite) TestRegisterCheck_ConflictWhenAlreadyRegistered() {
	client := monitoredClient("alice.example.com")
	client.UpdownToken = strPtr("tok123")
	s.mockUserRepo.FindClientByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return client, nil
	}

	_, err := s.service.RegisterCheck(context.Background(), "client-1")

	var appErr *apperrors.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal(http.StatusConflict, appErr.Code)
}

func (s *MonitorServiceTestSuite) TestRegisterCheck_RequiresAPIKey() {
	s.mockUpdownGw.IsConfiguredFn = func() bool { return false }

	_, err := s.service.RegisterCheck(context.Background(), "client-1")

	s.Require().ErrorIs(err, apperrors.ErrNotConfigured)
}

func (s *MonitorServiceTestSuite) TestUnregisterCheck_ToleratesMissingUpstreamCheck() {
	client := monitoredClient("alice.example.com")
	client.UpdownToken = strPtr("tok123")
	s.mockUserRepo.FindClientByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return client, nil
	}
	var persisted *domain.User
	s.mockUserRepo.UpdateUserFn = func(ctx context.Context, user domain.User) error {
		persisted = &user
		return nil
	}
	s.mockUpdownGw.DeleteCheckFn = func(ctx context.Context, token string) error {
		return apperrors.ErrNotFound
	}

	err := s.service.UnregisterCheck(context.Background(), "client-1")

	s.Require().NoError(err)
	s.Require().NotNil(persisted)
	s.Nil(persisted.UpdownToken)
}

func (s *MonitorServiceTestSuite) TestUnregisterCheck_NotFoundWithoutToken() {
	s.mockUserRepo.FindClientByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return monitoredClient("alice.example.com"), nil
	}

	err := s.service.UnregisterCheck(context.Background(), "client-1")

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (s *MonitorServiceTestSuite) TestAccountStats_LocalOnlyWhenNotConfigured() {
	s.mockUpdownGw.IsConfiguredFn = func() bool { return false }
	s.mockUserRepo.CountWebsiteStatusesFn = func(ctx context.Context) (map[domain.WebsiteStatus]int, error) {
		return map[domain.WebsiteStatus]int{domain.WebsiteUp: 4, domain.WebsiteDown: 1}, nil
	}

	stats, err := s.service.AccountStats(context.Background())

	s.Require().NoError(err)
	s.False(stats.Configured)
	s.Equal(0, stats.TotalChecks)
	s.Equal(5, stats.LocalStatus.Total)
	s.Equal(80, stats.LocalStatus.Percentage)
}

func (s *MonitorServiceTestSuite) TestAccountStats_AggregatesChecks() {
	s.mockUserRepo.CountWebsiteStatusesFn = func(ctx context.Context) (map[domain.WebsiteStatus]int, error) {
		return map[domain.WebsiteStatus]int{}, nil
	}
	s.mockUpdownGw.ListChecksFn = func(ctx context.Context) ([]updown.Check, error) {
		return []updown.Check{
			{Token: "a", Enabled: true, Period: 3600, Uptime: 100},
			{Token: "b", Enabled: true, Period: 3600, Down: true, Uptime: 95},
			{Token: "c", Enabled: false, Uptime: 99},
		}, nil
	}

	stats, err := s.service.AccountStats(context.Background())

	s.Require().NoError(err)
	s.True(stats.Configured)
	s.Equal(3, stats.TotalChecks)
	s.Equal(2, stats.ActiveChecks)
	s.Equal(1, stats.DisabledChecks)
	s.Equal(1, stats.ChecksDown)
	// Two hourly checks: 720 requests each per 30 days.
	s.Equal(1440, stats.TotalMonthlyRequests)
	s.Equal(2, stats.ChecksByPeriod[3600])
	s.InDelta(98.0, stats.AverageUptime, 0.01)
}

func TestMonitorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MonitorServiceTestSuite))
}
