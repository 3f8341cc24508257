package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forja/internal/domain"
	"forja/internal/ports"
)

// fakeBackend records Generate calls and returns canned results
type fakeBackend struct {
	generateCalls  int
	lastPrompt     string
	lastSessionID  string
	generateResult *ports.GenerateResult
	generateErr    error
	previewResult  *domain.Preview
	previewErr     error
}

func (f *fakeBackend) Generate(_ context.Context, sessionID, prompt string) (*ports.GenerateResult, error) {
	f.generateCalls++
	f.lastSessionID = sessionID
	f.lastPrompt = prompt
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return f.generateResult, nil
}

func (f *fakeBackend) Preview(_ context.Context, _ string) (*domain.Preview, error) {
	if f.previewErr != nil {
		return nil, f.previewErr
	}
	return f.previewResult, nil
}

func TestSubmit_BlankPromptFailsWithoutNetworkCall(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
	}{
		{"empty", ""},
		{"whitespace only", "   \t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{}
			service := NewSubmissionService(backend, "http://localhost:8001")

			_, err := service.Submit(context.Background(), tt.prompt)

			assert.ErrorIs(t, err, ErrBlankPrompt)
			assert.Zero(t, backend.generateCalls)
		})
	}
}

func TestSubmit_CorrelatesMessage(t *testing.T) {
	backend := &fakeBackend{
		generateResult: &ports.GenerateResult{
			Message: "Done: https://example.com/org/repo/pull/12 session_id=s-9",
		},
	}
	service := NewSubmissionService(backend, "http://localhost:8001")

	outcome, err := service.Submit(context.Background(), "add dark mode")

	require.NoError(t, err)
	assert.Equal(t, 1, backend.generateCalls)
	assert.Empty(t, backend.lastSessionID)
	assert.Equal(t, "add dark mode", outcome.Prompt)
	assert.True(t, outcome.Ready)
	assert.Equal(t, "https://example.com/org/repo/pull/12", outcome.Correlation.PullRequestURL)
	assert.Equal(t, 12, outcome.Correlation.PRNumber)
	assert.Equal(t, "s-9", outcome.Correlation.SessionID)
}

func TestSubmit_NotReadyWithoutURL(t *testing.T) {
	backend := &fakeBackend{
		generateResult: &ports.GenerateResult{
			Message:   "Working on it",
			SessionID: "s-1",
		},
	}
	service := NewSubmissionService(backend, "http://localhost:8001")

	outcome, err := service.Submit(context.Background(), "add dark mode")

	require.NoError(t, err)
	assert.False(t, outcome.Ready)
	assert.Equal(t, "s-1", outcome.Correlation.SessionID)
	assert.Empty(t, outcome.Correlation.PullRequestURL)
}

func TestSubmit_PropagatesBackendError(t *testing.T) {
	backendErr := errors.New("boom")
	backend := &fakeBackend{generateErr: backendErr}
	service := NewSubmissionService(backend, "http://localhost:8001")

	_, err := service.Submit(context.Background(), "a prompt")

	assert.ErrorIs(t, err, backendErr)
}

func TestSubmitFollowUp_UsesStructuredURL(t *testing.T) {
	backend := &fakeBackend{
		generateResult: &ports.GenerateResult{
			// The URL embedded in the message must be ignored for
			// follow-ups; only the structured field counts
			Message:        "see https://example.com/org/repo/pull/99",
			PullRequestURL: "",
		},
	}
	service := NewSubmissionService(backend, "http://localhost:8001")

	outcome, err := service.SubmitFollowUp(context.Background(), "s-1", "make it blue")

	require.NoError(t, err)
	assert.Equal(t, "s-1", backend.lastSessionID)
	assert.False(t, outcome.Ready)
	assert.Empty(t, outcome.Correlation.PullRequestURL)
	assert.Equal(t, "s-1", outcome.Correlation.SessionID)
}

func TestSubmitFollowUp_ReadyWhenBackendReportsURL(t *testing.T) {
	backend := &fakeBackend{
		generateResult: &ports.GenerateResult{
			Message:        "updated",
			PullRequestURL: "https://example.com/org/repo/pull/5",
		},
	}
	service := NewSubmissionService(backend, "http://localhost:8001")

	outcome, err := service.SubmitFollowUp(context.Background(), "s-1", "make it blue")

	require.NoError(t, err)
	assert.True(t, outcome.Ready)
	assert.Equal(t, "https://example.com/org/repo/pull/5", outcome.Correlation.PullRequestURL)
}

func TestSubmitFollowUp_BlankPrompt(t *testing.T) {
	backend := &fakeBackend{}
	service := NewSubmissionService(backend, "http://localhost:8001")

	_, err := service.SubmitFollowUp(context.Background(), "s-1", "  ")

	assert.ErrorIs(t, err, ErrBlankPrompt)
	assert.Zero(t, backend.generateCalls)
}

func TestPlaceholderURL(t *testing.T) {
	service := NewSubmissionService(&fakeBackend{}, "http://localhost:8001/")

	assert.Equal(t, "http://localhost:8001/preview/req-1", service.PlaceholderURL("req-1"))
}
