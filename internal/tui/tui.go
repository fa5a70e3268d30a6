package tui

import (
	"context"
	"errors"

	"notewell/internal/adapter"
	"notewell/internal/logger"
	"notewell/internal/workspace"
	"notewell/models"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by [TUI.LoginFlow] when the user quits the program
// before authenticating.
var ErrUserQuit = errors.New("вышел из программы")

// TUI drives both Bubble Tea programs of the client: the authentication flow
// and the workspace loop.
type TUI struct {
	gateway     adapter.ServerAdapter
	coordinator *workspace.Coordinator
	buildInfo   models.AppBuildInfo
}

// New creates the terminal UI on top of the server adapter and the workspace
// coordinator.
func New(gateway adapter.ServerAdapter, coordinator *workspace.Coordinator, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	if gateway == nil || coordinator == nil {
		return nil, errors.New("tui: gateway and coordinator are required")
	}
	return &TUI{gateway: gateway, coordinator: coordinator, buildInfo: buildInfo}, nil
}

// LoginFlow runs the menu/login/register program and blocks until the user
// authenticates or quits. On success the adapter already carries the bearer
// token of the new session.
func (t *TUI) LoginFlow(ctx context.Context) (userID int64, err error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.gateway),
		"register": NewRegisterModel(ctx, t.gateway),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return 0, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return 0, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return 0, ErrUserQuit
	}

	return result.resultID, nil
}

// MainLoop runs the workspace program and blocks until the user quits or logs
// out. The coordinator must already be mounted.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newWorkspaceModel(ctx, t.coordinator, t.gateway)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(workspaceModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
