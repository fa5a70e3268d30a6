// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the workspace coordinator, and background workers
// into a single process lifecycle.
package client
