package app

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/admin/astro-services/jyotish/internal/pkg/logger"
)

type App struct {
	Name string
	Cfg  *Config
	Log  *slog.Logger
}

func New(name string, cfg *Config) (*App, error) {
	log, err := logger.New(name, cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return &App{
		Name: name,
		Cfg:  cfg,
		Log:  log,
	}, nil
}

// Run поднимает зависимости и работает до отмены ctx
func (a *App) Run(ctx context.Context) error {
	a.Log.Info("starting application")

	deps, err := a.initDependencies(ctx)
	if err != nil {
		return fmt.Errorf("failed to init dependencies: %w", err)
	}

	return a.runServices(ctx, deps)
}
