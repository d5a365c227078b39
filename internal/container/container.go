package container

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/goal-pulse/internal/analysis"
	"github.com/saulo-duarte/goal-pulse/internal/config"
	"github.com/saulo-duarte/goal-pulse/internal/goal"
	"github.com/saulo-duarte/goal-pulse/internal/progress"
	"github.com/saulo-duarte/goal-pulse/internal/realtime"
	"github.com/saulo-duarte/goal-pulse/internal/router"
)

type Container struct {
	Settings          *config.Settings
	Hub               *realtime.Hub
	GoalContainer     *goal.Container
	ProgressContainer *progress.Container
	Router            *chi.Mux
}

// New connects the database, migrates the schema and wires every feature package.
func New(ctx context.Context, settings *config.Settings) (*Container, error) {
	config.InitLogger(settings.LogLevel, settings.LogFormat)

	if err := config.Connect(ctx, settings.DatabaseDriver, settings.DatabaseDSN); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	hub := realtime.NewHub(realtime.HubConfig{
		QueueSize:    settings.HubQueueSize,
		WriteTimeout: settings.HubWriteTimeout,
		PingInterval: settings.HubPingInterval,
	})

	goalContainer := goal.NewContainer(config.DB, hub)
	if err := goalContainer.Repo.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	progressContainer := progress.NewContainer(goalContainer.Repo, analysis.NewAnalyzer(), hub)

	r := router.New(router.RouterConfig{
		GoalHandler:     goalContainer.Handler,
		ProgressHandler: progressContainer.Handler,
		RealtimeHandler: realtime.NewHandler(hub, settings.AllowedOrigins),
		Hub:             hub,
		AllowedOrigins:  settings.AllowedOrigins,
	})

	return &Container{
		Settings:          settings,
		Hub:               hub,
		GoalContainer:     goalContainer,
		ProgressContainer: progressContainer,
		Router:            r,
	}, nil
}

// Close stops the hub and releases the database connection.
func (c *Container) Close() error {
	c.Hub.Close()
	sqlDB, err := config.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
