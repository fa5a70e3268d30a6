// Package tui implements the terminal user interface of the notewell client.
//
// The interface is split into two Bubble Tea programs: an authentication flow
// (menu, login, registration pages routed by [RootModel]) and the workspace
// loop (note list, editor, filters, and AI tools in a single stage-machine
// model). All network calls run as asynchronous [tea.Cmd] closures against the
// workspace coordinator and the server adapter.
package tui
