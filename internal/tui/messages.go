package tui

import tea "github.com/charmbracelet/bubbletea"

// NavigateTo switches the active page of the auth flow router. An optional
// Payload is delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the async login command. On success it is handled
// by [RootModel] to finish the authentication flow.
type LoginResult struct {
	Err    error
	Email  string
	UserID int64
}

// RegisterResult is produced by the async registration command.
type RegisterResult struct {
	Err    error
	Email  string
	UserID int64
}

// RegisterSuccessNotice is passed to the menu page after a successful
// registration.
type RegisterSuccessNotice struct {
	Email string
}
