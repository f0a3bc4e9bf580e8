package services

import (
	portsrepo "github.com/dekinnovations/dashboard_backend/internal/core/ports/repositories"
	portssvc "github.com/dekinnovations/dashboard_backend/internal/core/ports/services"
	"github.com/dekinnovations/dashboard_backend/internal/platform/webping"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	fbGateway portssvc.FreshbooksGateway,
	updownGw portssvc.UpdownGateway,
	pinger *webping.Pinger,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Notification service first since several services record events.
	container.Notification = NewNotificationService(repos.NotificationRepo)

	container.Auth = NewAuthService(repos.UserRepo, repos.SettingsRepo)
	container.Client = NewClientService(repos.UserRepo, container.Notification)
	container.Settings = NewSettingsService(repos.SettingsRepo, updownGw)
	container.Freshbooks = NewFreshbooksService(fbGateway, container.Settings)
	container.Sync = NewSyncService(fbGateway, repos.UserRepo, repos.SettingsRepo, container.Notification)
	container.Finance = NewFinanceService(fbGateway, repos.UserRepo, repos.SettingsRepo)
	container.Monitor = NewMonitorService(updownGw, pinger, repos.UserRepo, container.Notification)
	container.Note = NewNoteService(repos.NoteRepo, repos.UserRepo)

	return container
}
