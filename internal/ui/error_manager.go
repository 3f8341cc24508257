package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearErrorMsg is sent after the error clear delay to trigger error
// clearing
type clearErrorMsg struct{}

// ErrorManager handles error display and auto-clearing for the status
// line
type ErrorManager struct {
	clearDelay time.Duration
	message    string
}

// NewErrorManager creates an ErrorManager with the given auto-clear
// delay
func NewErrorManager(clearDelay time.Duration) *ErrorManager {
	return &ErrorManager{clearDelay: clearDelay}
}

// SetMessage sets the user-facing error message to display
func (em *ErrorManager) SetMessage(message string) {
	em.message = message
}

// Clear removes the current error message
func (em *ErrorManager) Clear() {
	em.message = ""
}

// Message returns the current error message, empty when none
func (em *ErrorManager) Message() string {
	return em.message
}

// HasMessage reports whether an error is currently displayed
func (em *ErrorManager) HasMessage() bool {
	return em.message != ""
}

// ClearAfterDelay returns a tea.Cmd that sends clearErrorMsg after the
// configured delay
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	return tea.Tick(em.clearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}
