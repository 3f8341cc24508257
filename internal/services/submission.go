package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"forja/internal/domain"
	"forja/internal/logging"
	"forja/internal/ports"
)

// Delays for the simulated progress path, used when the backend
// accepts a prompt without reporting a ready pull request. The delayed
// transitions stand in for a real backend push or poll channel; the
// tracker's terminal-state no-op rule cancels them when a real result
// lands first.
const (
	RequestProcessingDelay  = 2 * time.Second
	RequestCompletedDelay   = 8 * time.Second
	FollowUpProcessingDelay = 1500 * time.Millisecond
	FollowUpCompletedDelay  = 6 * time.Second
)

// ErrBlankPrompt is returned when a submission is attempted with an
// empty or whitespace-only prompt. No network call is made.
var ErrBlankPrompt = errors.New("prompt must not be blank")

// SubmissionOutcome describes what an accepted submission produced.
// Ready is true when the backend already reports a pull request URL,
// meaning no simulated progress is needed.
type SubmissionOutcome struct {
	Correlation domain.Correlation
	Message     string
	Prompt      string
	Ready       bool
}

// SubmissionService orchestrates sending prompts to the backend and
// turning responses into outcomes the request tracker can apply
type SubmissionService struct {
	backend ports.Backend
	baseURL string
}

// NewSubmissionService creates a SubmissionService. baseURL is used to
// synthesize placeholder pull request URLs for the simulated progress
// path.
func NewSubmissionService(backend ports.Backend, baseURL string) *SubmissionService {
	return &SubmissionService{
		backend: backend,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Submit sends a new top-level prompt to the backend and correlates
// the response. Blank prompts fail fast without a network call.
func (s *SubmissionService) Submit(ctx context.Context, prompt string) (*SubmissionOutcome, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrBlankPrompt
	}

	result, err := s.backend.Generate(ctx, "", prompt)
	if err != nil {
		return nil, err
	}

	correlation := domain.Correlate(result.Message, result.SessionID)
	logging.Logger.Info("Change request submitted",
		"session_id", correlation.SessionID,
		"pull_request_url", correlation.PullRequestURL,
		"pr_number", correlation.PRNumber)

	return &SubmissionOutcome{
		Correlation: correlation,
		Message:     result.Message,
		Prompt:      prompt,
		Ready:       correlation.PullRequestURL != "",
	}, nil
}

// SubmitFollowUp sends an adjustment prompt against an existing
// backend session. The pull request URL, when ready, arrives as a
// structured response field rather than inside the message.
func (s *SubmissionService) SubmitFollowUp(ctx context.Context, sessionID, prompt string) (*SubmissionOutcome, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrBlankPrompt
	}

	result, err := s.backend.Generate(ctx, sessionID, prompt)
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Follow-up submitted",
		"session_id", sessionID,
		"pull_request_url", result.PullRequestURL)

	return &SubmissionOutcome{
		Correlation: domain.Correlation{
			PullRequestURL: result.PullRequestURL,
			SessionID:      sessionID,
		},
		Message: result.Message,
		Prompt:  prompt,
		Ready:   result.PullRequestURL != "",
	}, nil
}

// PlaceholderURL synthesizes the pull request URL reported when the
// simulated progress path completes a request the backend never
// confirmed.
func (s *SubmissionService) PlaceholderURL(id string) string {
	return fmt.Sprintf("%s/preview/%s", s.baseURL, id)
}
