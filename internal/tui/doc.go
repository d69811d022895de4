// Package tui provides the terminal user interface for hullo.
//
// It handles:
//   - The interactive greeting and commit window (using bubbletea)
//   - Terminal detection for deciding when the window can run
//   - Terminal styling and colors (using lipgloss)
package tui
