package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dekinnovations/dashboard_backend/internal/apperrors"
	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	portsrepo "github.com/dekinnovations/dashboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
	"github.com/dekinnovations/dashboard_backend/internal/core/services"
	"github.com/dekinnovations/dashboard_backend/internal/dto"
)

type ClientServiceTestSuite struct {
	suite.Suite
	mockUserRepo         *MockUserRepository
	mockNotificationRepo *MockNotificationRepository
	notifications        []domain.Notification
	service              portssvc.ClientSvcFacade
}

func (s *ClientServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	s.mockNotificationRepo = new(MockNotificationRepository)
	s.notifications = nil
	s.mockNotificationRepo.SaveNotificationFn = func(ctx context.Context, notification domain.Notification) error {
		s.notifications = append(s.notifications, notification)
		return nil
	}
	notificationSvc := services.NewNotificationService(s.mockNotificationRepo)
	s.service = services.NewClientService(s.mockUserRepo, notificationSvc)
}

func (s *ClientServiceTestSuite) TestCreateClient_LowercasesEmailAndNotifies() {
	s.mockUserRepo.FindUserByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}
	var saved *domain.User
	s.mockUserRepo.SaveUserFn = func(ctx context.Context, user domain.User) error {
		saved = &user
		return nil
	}

	client, err := s.service.CreateClient(context.Background(), dto.CreateClientRequest{
		Name:     "Alice Smith",
		Email:    "  Alice@Example.COM ",
		Password: "initial-pass",
	}, operatorID)

	s.Require().NoError(err)
	s.Require().NotNil(saved)
	s.Equal("alice@example.com", saved.Email)
	s.Equal(domain.RoleClient, saved.Role)
	s.NotEmpty(saved.PasswordHash)
	s.NotEqual("initial-pass", saved.PasswordHash)
	s.Equal(operatorID, saved.CreatedBy)
	s.Require().NotNil(client.ClientSince)
	s.Require().Len(s.notifications, 1)
	s.Equal(domain.NotificationNewClient, s.notifications[0].Type)
}

func (s *ClientServiceTestSuite) TestCreateClient_ConflictOnExistingEmail() {
	s.mockUserRepo.FindUserByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{UserID: "existing", Email: email}, nil
	}
	s.mockUserRepo.SaveUserFn = func(ctx context.Context, user domain.User) error {
		s.FailNow("save should not run when the email is taken")
		return nil
	}

	_, err := s.service.CreateClient(context.Background(), dto.CreateClientRequest{
		Name:     "Alice Smith",
		Email:    "alice@example.com",
		Password: "initial-pass",
	}, operatorID)

	s.Require().Error(err)
	var appErr *apperrors.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal(http.StatusConflict, appErr.Code)
}

func (s *ClientServiceTestSuite) TestUpdateClient_MergesOnlyProvidedFields() {
	stored := domain.User{
		UserID:       "client-1",
		Email:        "alice@example.com",
		Name:         "Alice Smith",
		Role:         domain.RoleClient,
		BusinessName: strPtr("Alice LLC"),
		Phone:        strPtr("555-0199"),
	}
	s.mockUserRepo.FindClientByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		snapshot := stored
		return &snapshot, nil
	}
	var updated *domain.User
	s.mockUserRepo.UpdateUserFn = func(ctx context.Context, user domain.User) error {
		updated = &user
		return nil
	}

	_, err := s.service.UpdateClient(context.Background(), "client-1", dto.UpdateClientRequest{
		Email:    strPtr("Alice.New@Example.com"),
		Location: strPtr("Portland, OR"),
	}, operatorID)

	s.Require().NoError(err)
	s.Require().NotNil(updated)
	s.Equal("alice.new@example.com", updated.Email)
	s.Equal("Alice Smith", updated.Name)
	s.Require().NotNil(updated.Phone)
	s.Equal("555-0199", *updated.Phone)
	s.Require().NotNil(updated.Location)
	s.Equal("Portland, OR", *updated.Location)
	s.Equal(operatorID, updated.LastUpdatedBy)
}

func (s *ClientServiceTestSuite) TestDeleteClient_RequiresClientRecord() {
	s.mockUserRepo.FindClientByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}
	s.mockUserRepo.DeleteUserFn = func(ctx context.Context, userID string) error {
		s.FailNow("delete should not run for a missing client")
		return nil
	}

	err := s.service.DeleteClient(context.Background(), "client-1")

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ClientServiceTestSuite) TestListClients_SortOrderAndNilSlice() {
	var gotSortDesc bool
	s.mockUserRepo.FindClientsFn = func(ctx context.Context, query, sortBy string, sortDesc bool) ([]domain.User, error) {
		gotSortDesc = sortDesc
		return nil, nil
	}

	clients, err := s.service.ListClients(context.Background(), dto.ListClientsParams{SortOrder: "DESC"})

	s.Require().NoError(err)
	s.True(gotSortDesc)
	s.NotNil(clients)
	s.Empty(clients)
}

func (s *ClientServiceTestSuite) TestDashboardStats_UptimeAndActivity() {
	now := time.Now()
	s.mockUserRepo.CountClientsFn = func(ctx context.Context) (int, error) { return 12, nil }
	s.mockUserRepo.CountClientsUpdatedSinceFn = func(ctx context.Context, since time.Time) (int, error) { return 8, nil }
	s.mockUserRepo.CountClientsCreatedSinceFn = func(ctx context.Context, since time.Time) (int, error) { return 2, nil }
	s.mockUserRepo.CountWebsiteStatusesFn = func(ctx context.Context) (map[domain.WebsiteStatus]int, error) {
		return map[domain.WebsiteStatus]int{
			domain.WebsiteUp:      3,
			domain.WebsiteDown:    1,
			domain.WebsiteUnknown: 2,
		}, nil
	}
	s.mockUserRepo.FindRecentActivityFn = func(ctx context.Context, limit int) ([]portsrepo.ClientActivity, error) {
		return []portsrepo.ClientActivity{
			{UserID: "client-1", Name: "Alice Smith", BusinessName: strPtr("Alice LLC"), CreatedAt: now, UpdatedAt: now},
			{UserID: "client-2", Name: "Bob Jones", CreatedAt: now.Add(-time.Hour), UpdatedAt: now},
		}, nil
	}

	stats, err := s.service.DashboardStats(context.Background())

	s.Require().NoError(err)
	s.Equal(12, stats.TotalClients)
	s.Equal(8, stats.ActiveClients)
	s.Equal(2, stats.NewThisMonth)
	s.Equal(6, stats.UptimeStats.Total)
	// Only up and down sites count toward the percentage.
	s.Equal(75, stats.UptimeStats.Percentage)

	s.Require().Len(stats.RecentActivity, 2)
	s.Equal("Alice LLC", stats.RecentActivity[0].Name)
	s.Equal("added", stats.RecentActivity[0].Action)
	s.Equal("client_added", stats.RecentActivity[0].Type)
	s.Equal("Bob Jones", stats.RecentActivity[1].Name)
	s.Equal("updated", stats.RecentActivity[1].Action)
	s.Equal("client_updated", stats.RecentActivity[1].Type)
}

func (s *ClientServiceTestSuite) TestPeriodReport_GrowthAndRetention() {
	now := time.Now()
	s.mockUserRepo.CountClientsFn = func(ctx context.Context) (int, error) { return 20, nil }
	s.mockUserRepo.CountClientsUpdatedSinceFn = func(ctx context.Context, since time.Time) (int, error) {
		s.WithinDuration(now.AddDate(0, 0, -30), since, time.Minute)
		return 15, nil
	}
	s.mockUserRepo.CountClientsCreatedSinceFn = func(ctx context.Context, since time.Time) (int, error) {
		// First call covers the current period, second reaches back twice
		// as far so the previous period falls out by subtraction.
		if since.After(now.AddDate(0, 0, -31)) {
			return 5, nil
		}
		return 8, nil
	}
	s.mockUserRepo.CountWebsiteStatusesFn = func(ctx context.Context) (map[domain.WebsiteStatus]int, error) {
		return map[domain.WebsiteStatus]int{domain.WebsiteUp: 3, domain.WebsiteDown: 1}, nil
	}
	s.mockUserRepo.FindRecentActivityFn = func(ctx context.Context, limit int) ([]portsrepo.ClientActivity, error) {
		return nil, nil
	}

	report, err := s.service.PeriodReport(context.Background(), 30)

	s.Require().NoError(err)
	s.Equal(30, report.PeriodDays)
	s.Equal(20, report.Clients.Total)
	s.Equal(5, report.Clients.New)
	s.Equal(15, report.Clients.Active)
	s.Equal(75, report.Clients.Retention)
	// 5 new against 3 in the previous period.
	s.Equal(66, report.Clients.GrowthRate)
	s.Equal(75, report.Uptime.Percentage)
	s.NotNil(report.RecentActivity)
}

func (s *ClientServiceTestSuite) TestPeriodReport_InvalidPeriodRejected() {
	for _, days := range []int{0, -7, 366} {
		report, err := s.service.PeriodReport(context.Background(), days)

		s.Require().Error(err)
		s.Nil(report)
		var appErr *apperrors.AppError
		s.Require().ErrorAs(err, &appErr)
		s.Equal(http.StatusBadRequest, appErr.Code)
	}
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
