package client

import (
	"context"
	"errors"
	"fmt"

	"notewell/internal/adapter"
	"notewell/internal/config"
	"notewell/internal/logger"
	"notewell/internal/tui"
	"notewell/internal/workers"
	"notewell/internal/workspace"
)

// App runs the interactive client: authentication flow, workspace session,
// and background workers. Logging out returns the user to the login flow;
// quitting exits the process.
type App struct {
	gateway     adapter.ServerAdapter
	coordinator *workspace.Coordinator
	ui          *tui.TUI
	workersCfg  config.Workers
	logger      *logger.Logger
}

func NewApp(gateway adapter.ServerAdapter, coordinator *workspace.Coordinator, ui *tui.TUI, workersCfg config.Workers, logger *logger.Logger) (*App, error) {
	if gateway == nil || coordinator == nil || ui == nil {
		return nil, errors.New("client: gateway, coordinator, and ui are required")
	}

	return &App{
		gateway:     gateway,
		coordinator: coordinator,
		ui:          ui,
		workersCfg:  workersCfg,
		logger:      logger,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	for {
		userID, err := a.ui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
		a.logger.Info().Int64("user_id", userID).Msg("user authenticated")

		if err = a.coordinator.Mount(ctx); err != nil {
			return fmt.Errorf("mount workspace: %w", err)
		}

		// Workers hold per-session state, so each session gets a fresh set.
		sessionWorkers := workers.NewWorkers(a.coordinator, a.workersCfg, a.logger)
		sessionWorkers.Run()

		logout, err := a.ui.MainLoop(ctx)
		sessionWorkers.Stop()
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.gateway.SetToken("")
		a.logger.Info().Msg("user logged out")
	}
}
