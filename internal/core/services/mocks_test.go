package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dekinnovations/dashboard_backend/internal/core/domain"
	portsrepo "github.com/dekinnovations/dashboard_backend/internal/core/ports/repositories"
	"github.com/dekinnovations/dashboard_backend/internal/platform/freshbooks"
	"github.com/dekinnovations/dashboard_backend/internal/platform/updown"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn             func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn          func(ctx context.Context, email string) (*domain.User, error)
	FindClientByIDFn           func(ctx context.Context, userID string) (*domain.User, error)
	FindClientsFn              func(ctx context.Context, query, sortBy string, sortDesc bool) ([]domain.User, error)
	SaveUserFn                 func(ctx context.Context, user domain.User) error
	UpdateUserFn               func(ctx context.Context, user domain.User) error
	UpdatePasswordFn           func(ctx context.Context, userID, passwordHash string) error
	DeleteUserFn               func(ctx context.Context, userID string) error
	CountClientsFn             func(ctx context.Context) (int, error)
	CountClientsUpdatedSinceFn func(ctx context.Context, since time.Time) (int, error)
	CountClientsCreatedSinceFn func(ctx context.Context, since time.Time) (int, error)
	CountWebsiteStatusesFn     func(ctx context.Context) (map[domain.WebsiteStatus]int, error)
	FindRecentActivityFn       func(ctx context.Context, limit int) ([]portsrepo.ClientActivity, error)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindClientByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindClientByIDFn != nil {
		return m.FindClientByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindClients(ctx context.Context, query, sortBy string, sortDesc bool) ([]domain.User, error) {
	if m.FindClientsFn != nil {
		return m.FindClientsFn(ctx, query, sortBy, sortDesc)
	}
	args := m.Called(ctx, query, sortBy, sortDesc)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	if m.UpdatePasswordFn != nil {
		return m.UpdatePasswordFn(ctx, userID, passwordHash)
	}
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) CountClients(ctx context.Context) (int, error) {
	if m.CountClientsFn != nil {
		return m.CountClientsFn(ctx)
	}
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) CountClientsUpdatedSince(ctx context.Context, since time.Time) (int, error) {
	if m.CountClientsUpdatedSinceFn != nil {
		return m.CountClientsUpdatedSinceFn(ctx, since)
	}
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) CountClientsCreatedSince(ctx context.Context, since time.Time) (int, error) {
	if m.CountClientsCreatedSinceFn != nil {
		return m.CountClientsCreatedSinceFn(ctx, since)
	}
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) CountWebsiteStatuses(ctx context.Context) (map[domain.WebsiteStatus]int, error) {
	if m.CountWebsiteStatusesFn != nil {
		return m.CountWebsiteStatusesFn(ctx)
	}
	args := m.Called(ctx)
	var counts map[domain.WebsiteStatus]int
	if args.Get(0) != nil {
		counts = args.Get(0).(map[domain.WebsiteStatus]int)
	}
	return counts, args.Error(1)
}

func (m *MockUserRepository) FindRecentActivity(ctx context.Context, limit int) ([]portsrepo.ClientActivity, error) {
	if m.FindRecentActivityFn != nil {
		return m.FindRecentActivityFn(ctx, limit)
	}
	args := m.Called(ctx, limit)
	var activity []portsrepo.ClientActivity
	if args.Get(0) != nil {
		activity = args.Get(0).([]portsrepo.ClientActivity)
	}
	return activity, args.Error(1)
}

// --- Mock SettingsRepository ---

type MockSettingsRepository struct {
	mock.Mock
	FindSettingsByUserIDFn        func(ctx context.Context, userID string) (*domain.Settings, error)
	SaveSettingsFn                func(ctx context.Context, settings domain.Settings) error
	UpdateSettingsFn              func(ctx context.Context, settings domain.Settings) error
	UpdateFreshbooksTokensFn      func(ctx context.Context, userID, accessToken, refreshToken, accountID string) error
	UpdateFreshbooksAccessTokenFn func(ctx context.Context, userID, accessToken string) error
}

func (m *MockSettingsRepository) FindSettingsByUserID(ctx context.Context, userID string) (*domain.Settings, error) {
	if m.FindSettingsByUserIDFn != nil {
		return m.FindSettingsByUserIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var settings *domain.Settings
	if args.Get(0) != nil {
		settings = args.Get(0).(*domain.Settings)
	}
	return settings, args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	if m.SaveSettingsFn != nil {
		return m.SaveSettingsFn(ctx, settings)
	}
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	if m.UpdateSettingsFn != nil {
		return m.UpdateSettingsFn(ctx, settings)
	}
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) UpdateFreshbooksTokens(ctx context.Context, userID, accessToken, refreshToken, accountID string) error {
	if m.UpdateFreshbooksTokensFn != nil {
		return m.UpdateFreshbooksTokensFn(ctx, userID, accessToken, refreshToken, accountID)
	}
	args := m.Called(ctx, userID, accessToken, refreshToken, accountID)
	return args.Error(0)
}

func (m *MockSettingsRepository) UpdateFreshbooksAccessToken(ctx context.Context, userID, accessToken string) error {
	if m.UpdateFreshbooksAccessTokenFn != nil {
		return m.UpdateFreshbooksAccessTokenFn(ctx, userID, accessToken)
	}
	args := m.Called(ctx, userID, accessToken)
	return args.Error(0)
}

// --- Mock NoteRepository ---

type MockNoteRepository struct {
	mock.Mock
	FindNoteByIDFn      func(ctx context.Context, noteID string) (*domain.Note, error)
	FindNotesByClientFn func(ctx context.Context, clientID string) ([]domain.Note, error)
	SaveNoteFn          func(ctx context.Context, note domain.Note) error
	UpdateNoteFn        func(ctx context.Context, note domain.Note) error
	DeleteNoteFn        func(ctx context.Context, noteID string) error
}

func (m *MockNoteRepository) FindNoteByID(ctx context.Context, noteID string) (*domain.Note, error) {
	if m.FindNoteByIDFn != nil {
		return m.FindNoteByIDFn(ctx, noteID)
	}
	args := m.Called(ctx, noteID)
	var note *domain.Note
	if args.Get(0) != nil {
		note = args.Get(0).(*domain.Note)
	}
	return note, args.Error(1)
}

func (m *MockNoteRepository) FindNotesByClient(ctx context.Context, clientID string) ([]domain.Note, error) {
	if m.FindNotesByClientFn != nil {
		return m.FindNotesByClientFn(ctx, clientID)
	}
	args := m.Called(ctx, clientID)
	var notes []domain.Note
	if args.Get(0) != nil {
		notes = args.Get(0).([]domain.Note)
	}
	return notes, args.Error(1)
}

func (m *MockNoteRepository) SaveNote(ctx context.Context, note domain.Note) error {
	if m.SaveNoteFn != nil {
		return m.SaveNoteFn(ctx, note)
	}
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) UpdateNote(ctx context.Context, note domain.Note) error {
	if m.UpdateNoteFn != nil {
		return m.UpdateNoteFn(ctx, note)
	}
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) DeleteNote(ctx context.Context, noteID string) error {
	if m.DeleteNoteFn != nil {
		return m.DeleteNoteFn(ctx, noteID)
	}
	args := m.Called(ctx, noteID)
	return args.Error(0)
}

// --- Mock NotificationRepository ---

type MockNotificationRepository struct {
	mock.Mock
	SaveNotificationFn         func(ctx context.Context, notification domain.Notification) error
	FindNotificationsFn        func(ctx context.Context, userID string, unreadOnly bool, limit int) ([]domain.Notification, error)
	MarkNotificationReadFn     func(ctx context.Context, notificationID string) error
	MarkAllNotificationsReadFn func(ctx context.Context, userID string) error
	DeleteNotificationFn       func(ctx context.Context, notificationID string) error
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	if m.SaveNotificationFn != nil {
		return m.SaveNotificationFn(ctx, notification)
	}
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]domain.Notification, error) {
	if m.FindNotificationsFn != nil {
		return m.FindNotificationsFn(ctx, userID, unreadOnly, limit)
	}
	args := m.Called(ctx, userID, unreadOnly, limit)
	var notifications []domain.Notification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string) error {
	if m.MarkNotificationReadFn != nil {
		return m.MarkNotificationReadFn(ctx, notificationID)
	}
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	if m.MarkAllNotificationsReadFn != nil {
		return m.MarkAllNotificationsReadFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteNotification(ctx context.Context, notificationID string) error {
	if m.DeleteNotificationFn != nil {
		return m.DeleteNotificationFn(ctx, notificationID)
	}
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

// --- Mock FreshbooksGateway ---

type MockFreshbooksGateway struct {
	mock.Mock
	IsConfiguredFn     func() bool
	AuthorizationURLFn func(state string) string
	ExchangeCodeFn     func(ctx context.Context, code string) (*freshbooks.TokenPair, error)
	RefreshTokenFn     func(ctx context.Context, refreshToken string) (*freshbooks.TokenPair, error)
	SetAccessTokenFn   func(token string)
	GetUserProfileFn   func(ctx context.Context) (*freshbooks.Profile, error)
	GetClientsFn       func(ctx context.Context, accountID string) ([]freshbooks.ClientData, error)
	GetInvoicesFn      func(ctx context.Context, accountID string, page, perPage int) (*freshbooks.InvoiceList, error)
	GetExpensesFn      func(ctx context.Context, accountID string, page, perPage int) (*freshbooks.ExpenseList, error)
}

func (m *MockFreshbooksGateway) IsConfigured() bool {
	if m.IsConfiguredFn != nil {
		return m.IsConfiguredFn()
	}
	return true
}

func (m *MockFreshbooksGateway) AuthorizationURL(state string) string {
	if m.AuthorizationURLFn != nil {
		return m.AuthorizationURLFn(state)
	}
	return "https://auth.example.com/consent?state=" + state
}

func (m *MockFreshbooksGateway) ExchangeCode(ctx context.Context, code string) (*freshbooks.TokenPair, error) {
	if m.ExchangeCodeFn != nil {
		return m.ExchangeCodeFn(ctx, code)
	}
	args := m.Called(ctx, code)
	var pair *freshbooks.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*freshbooks.TokenPair)
	}
	return pair, args.Error(1)
}

func (m *MockFreshbooksGateway) RefreshToken(ctx context.Context, refreshToken string) (*freshbooks.TokenPair, error) {
	if m.RefreshTokenFn != nil {
		return m.RefreshTokenFn(ctx, refreshToken)
	}
	args := m.Called(ctx, refreshToken)
	var pair *freshbooks.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*freshbooks.TokenPair)
	}
	return pair, args.Error(1)
}

func (m *MockFreshbooksGateway) SetAccessToken(token string) {
	if m.SetAccessTokenFn != nil {
		m.SetAccessTokenFn(token)
	}
}

func (m *MockFreshbooksGateway) GetUserProfile(ctx context.Context) (*freshbooks.Profile, error) {
	if m.GetUserProfileFn != nil {
		return m.GetUserProfileFn(ctx)
	}
	args := m.Called(ctx)
	var profile *freshbooks.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*freshbooks.Profile)
	}
	return profile, args.Error(1)
}

func (m *MockFreshbooksGateway) GetClients(ctx context.Context, accountID string) ([]freshbooks.ClientData, error) {
	if m.GetClientsFn != nil {
		return m.GetClientsFn(ctx, accountID)
	}
	args := m.Called(ctx, accountID)
	var clients []freshbooks.ClientData
	if args.Get(0) != nil {
		clients = args.Get(0).([]freshbooks.ClientData)
	}
	return clients, args.Error(1)
}

func (m *MockFreshbooksGateway) GetInvoices(ctx context.Context, accountID string, page, perPage int) (*freshbooks.InvoiceList, error) {
	if m.GetInvoicesFn != nil {
		return m.GetInvoicesFn(ctx, accountID, page, perPage)
	}
	args := m.Called(ctx, accountID, page, perPage)
	var list *freshbooks.InvoiceList
	if args.Get(0) != nil {
		list = args.Get(0).(*freshbooks.InvoiceList)
	}
	return list, args.Error(1)
}

func (m *MockFreshbooksGateway) GetExpenses(ctx context.Context, accountID string, page, perPage int) (*freshbooks.ExpenseList, error) {
	if m.GetExpensesFn != nil {
		return m.GetExpensesFn(ctx, accountID, page, perPage)
	}
	args := m.Called(ctx, accountID, page, perPage)
	var list *freshbooks.ExpenseList
	if args.Get(0) != nil {
		list = args.Get(0).(*freshbooks.ExpenseList)
	}
	return list, args.Error(1)
}

// --- Mock UpdownGateway ---

type MockUpdownGateway struct {
	mock.Mock
	IsConfiguredFn func() bool
	SetAPIKeyFn    func(key string)
	ListChecksFn   func(ctx context.Context) ([]updown.Check, error)
	GetCheckFn     func(ctx context.Context, token string) (*updown.Check, error)
	CreateCheckFn  func(ctx context.Context, url, alias string) (*updown.Check, error)
	DeleteCheckFn  func(ctx context.Context, token string) error
}

func (m *MockUpdownGateway) IsConfigured() bool {
	if m.IsConfiguredFn != nil {
		return m.IsConfiguredFn()
	}
	return true
}

func (m *MockUpdownGateway) SetAPIKey(key string) {
	if m.SetAPIKeyFn != nil {
		m.SetAPIKeyFn(key)
	}
}

func (m *MockUpdownGateway) ListChecks(ctx context.Context) ([]updown.Check, error) {
	if m.ListChecksFn != nil {
		return m.ListChecksFn(ctx)
	}
	args := m.Called(ctx)
	var checks []updown.Check
	if args.Get(0) != nil {
		checks = args.Get(0).([]updown.Check)
	}
	return checks, args.Error(1)
}

func (m *MockUpdownGateway) GetCheck(ctx context.Context, token string) (*updown.Check, error) {
	if m.GetCheckFn != nil {
		return m.GetCheckFn(ctx, token)
	}
	args := m.Called(ctx, token)
	var check *updown.Check
	if args.Get(0) != nil {
		check = args.Get(0).(*updown.Check)
	}
	return check, args.Error(1)
}

func (m *MockUpdownGateway) CreateCheck(ctx context.Context, url, alias string) (*updown.Check, error) {
	if m.CreateCheckFn != nil {
		return m.CreateCheckFn(ctx, url, alias)
	}
	args := m.Called(ctx, url, alias)
	var check *updown.Check
	if args.Get(0) != nil {
		check = args.Get(0).(*updown.Check)
	}
	return check, args.Error(1)
}

func (m *MockUpdownGateway) DeleteCheck(ctx context.Context, token string) error {
	if m.DeleteCheckFn != nil {
		return m.DeleteCheckFn(ctx, token)
	}
	args := m.Called(ctx, token)
	return args.Error(0)
}

// --- Shared fixtures ---

func strPtr(s string) *string { return &s }

// connectedSettings builds a settings row with a completed FreshBooks link.
func connectedSettings(userID string) *domain.Settings {
	return &domain.Settings{
		SettingsID:             "settings-1",
		UserID:                 userID,
		FreshbooksAccessToken:  strPtr("access-token"),
		FreshbooksRefreshToken: strPtr("refresh-token"),
		FreshbooksAccountID:    strPtr("ACC123"),
	}
}
