package cmd

import (
	"net/http"
	"time"

	adapterapi "github.com/hyperfocus/hyperfocus/internal/adapters/api"
	adapternotify "github.com/hyperfocus/hyperfocus/internal/adapters/notify"
	adaptersound "github.com/hyperfocus/hyperfocus/internal/adapters/sound"
	adapterstorage "github.com/hyperfocus/hyperfocus/internal/adapters/storage"
	"github.com/hyperfocus/hyperfocus/internal/domain"
	"github.com/hyperfocus/hyperfocus/internal/ports"
	"github.com/hyperfocus/hyperfocus/internal/services"
	"github.com/hyperfocus/hyperfocus/internal/ui"
)

// ContainerOptions carry the resolved settings the container is built from
type ContainerOptions struct {
	APIURL               string
	DBPath               string
	DesktopNotifications bool
	SoundEnabled         bool
	Theme                string
	Timeout              time.Duration
	Token                string
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	AuthService         *services.AuthService
	DashboardService    *services.DashboardService
	InsightsService     *services.InsightsService
	InterruptionService *services.InterruptionService
	NotificationService *services.NotificationService
	PreferencesService  *services.PreferencesService
	SessionService      *services.SessionService
	StatsService        *services.StatsService

	// Internal - for cleanup only
	repo ports.LocalRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	repo, err := adapterstorage.NewSQLiteRepository(opts.DBPath)
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = adapterapi.DefaultTimeout
	}
	client := adapterapi.NewClient(opts.APIURL,
		adapterapi.WithHTTPClient(&http.Client{Timeout: timeout}),
		adapterapi.WithTokenSource(adapterstorage.NewCredentialTokenSource(repo, opts.Token)),
	)

	soundPlayer := adaptersound.NewPlayer(opts.SoundEnabled)
	notifier := adapternotify.New(opts.DesktopNotifications)
	clock := services.SystemClock{}

	defaultTheme := opts.Theme
	if defaultTheme == "" {
		defaultTheme = string(domain.ThemeDark)
	}

	sessionService := services.NewSessionService(client, repo, clock)
	insightsService := services.NewInsightsService(client)

	return &Container{
		AuthService:         services.NewAuthService(client, repo),
		DashboardService:    services.NewDashboardService(sessionService, insightsService),
		InsightsService:     insightsService,
		InterruptionService: services.NewInterruptionService(client, clock),
		NotificationService: services.NewNotificationService(soundPlayer, notifier),
		PreferencesService:  services.NewPreferencesService(repo, defaultTheme),
		SessionService:      sessionService,
		StatsService:        services.NewStatsService(client),
		repo:                repo,
	}, nil
}

// UIServices exposes the services the TUI drives
func (c *Container) UIServices() ui.Services {
	return ui.Services{
		Auth:          c.AuthService,
		Dashboard:     c.DashboardService,
		Interruptions: c.InterruptionService,
		Notifications: c.NotificationService,
		Preferences:   c.PreferencesService,
		Sessions:      c.SessionService,
		Stats:         c.StatsService,
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
