package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// PromptForm collects a change-request prompt in a huh text form. The
// same component backs both new requests and follow-up adjustments;
// follow-ups carry the parent request and session ids.
type PromptForm struct {
	form      *huh.Form
	prompt    string
	requestID string
	sessionID string
}

// NewRequestForm creates the form for a new top-level change request
func NewRequestForm() *PromptForm {
	return newPromptForm(
		"New change request",
		"Describe the changes you want. You can refine them with follow-ups after submission.",
		"", "",
	)
}

// NewFollowUpForm creates the form for an adjustment to an existing
// request
func NewFollowUpForm(requestID, sessionID string) *PromptForm {
	return newPromptForm(
		"Request adjustments",
		"Describe how the pull request should change.",
		requestID, sessionID,
	)
}

func newPromptForm(title, description, requestID, sessionID string) *PromptForm {
	f := &PromptForm{
		requestID: requestID,
		sessionID: sessionID,
	}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(title).
				Description(description).
				Value(&f.prompt).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("prompt is required")
					}
					return nil
				}),
		),
	)
	return f
}

// Init starts the underlying huh form
func (f *PromptForm) Init() tea.Cmd {
	return f.form.Init()
}

// Update forwards a message to the underlying huh form
func (f *PromptForm) Update(msg tea.Msg) tea.Cmd {
	model, cmd := f.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		f.form = form
	}
	return cmd
}

// Completed reports whether the form was submitted
func (f *PromptForm) Completed() bool {
	return f.form.State == huh.StateCompleted
}

// Aborted reports whether the form was cancelled
func (f *PromptForm) Aborted() bool {
	return f.form.State == huh.StateAborted
}

// Prompt returns the entered prompt text
func (f *PromptForm) Prompt() string {
	return f.prompt
}

// RequestID returns the parent request id, empty for top-level requests
func (f *PromptForm) RequestID() string {
	return f.requestID
}

// SessionID returns the parent's backend session id
func (f *PromptForm) SessionID() string {
	return f.sessionID
}

// View renders the form
func (f *PromptForm) View() string {
	return f.form.View()
}
