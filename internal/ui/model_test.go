package ui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forja/internal/domain"
	"forja/internal/services"
)

func newTestModel() *Model {
	return NewModel(
		services.NewSubmissionService(nil, "http://localhost:8001"),
		services.NewPreviewService(nil),
		time.Second,
	)
}

func outcomeNotReady(prompt, sessionID string) *services.SubmissionOutcome {
	return &services.SubmissionOutcome{
		Correlation: domain.Correlation{SessionID: sessionID},
		Message:     "Working on it",
		Prompt:      prompt,
	}
}

func outcomeReady(prompt, url string, prNumber int) *services.SubmissionOutcome {
	return &services.SubmissionOutcome{
		Correlation: domain.Correlation{
			PRNumber:       prNumber,
			PullRequestURL: url,
			SessionID:      "s-1",
		},
		Message: "Done: " + url,
		Prompt:  prompt,
		Ready:   true,
	}
}

func TestUpdate_SubmissionNotReadySchedulesProgress(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(submissionDoneMsg{outcome: outcomeNotReady("add dark mode", "s-1")})

	require.Equal(t, 1, m.Tracker().Len())
	request := m.Tracker().Requests()[0]
	assert.Equal(t, domain.StatusPending, request.Status)
	assert.Equal(t, "add dark mode", request.Prompt)
	assert.Equal(t, "s-1", request.SessionID)
	assert.NotNil(t, cmd, "simulated progress timers must be scheduled")
}

func TestUpdate_SubmissionReadyCompletesImmediately(t *testing.T) {
	m := newTestModel()

	url := "https://example.com/org/repo/pull/12"
	_, cmd := m.Update(submissionDoneMsg{outcome: outcomeReady("add dark mode", url, 12)})

	request := m.Tracker().Requests()[0]
	assert.Equal(t, domain.StatusCompleted, request.Status)
	assert.Equal(t, url, request.PullRequestURL)
	assert.Equal(t, 12, request.PRNumber)
	assert.Nil(t, cmd, "no timers when the pull request is already ready")
}

func TestUpdate_SimulatedProgressTransitions(t *testing.T) {
	m := newTestModel()
	m.Update(submissionDoneMsg{outcome: outcomeNotReady("add dark mode", "s-1")})
	request := m.Tracker().Requests()[0]

	m.Update(requestProcessingMsg{requestID: request.ID})
	assert.Equal(t, domain.StatusProcessing, request.Status)

	placeholder := "http://localhost:8001/preview/" + request.ID
	m.Update(requestCompletedMsg{pullRequestURL: placeholder, requestID: request.ID})
	assert.Equal(t, domain.StatusCompleted, request.Status)
	assert.Equal(t, placeholder, request.PullRequestURL)
}

func TestUpdate_LateTimerDoesNotOverwriteRealCompletion(t *testing.T) {
	m := newTestModel()
	m.Update(submissionDoneMsg{outcome: outcomeNotReady("add dark mode", "s-1")})
	request := m.Tracker().Requests()[0]

	// A real completion lands before the simulated timer fires
	realURL := "https://example.com/org/repo/pull/7"
	m.Tracker().UpdateRequestFields(request.ID, domain.RequestPatch{PullRequestURL: &realURL})
	m.Tracker().UpdateRequestStatus(request.ID, domain.StatusCompleted)

	m.Update(requestCompletedMsg{pullRequestURL: "http://localhost:8001/preview/" + request.ID, requestID: request.ID})

	assert.Equal(t, domain.StatusCompleted, request.Status)
	assert.Equal(t, realURL, request.PullRequestURL, "placeholder must not replace the real URL")
}

func TestUpdate_TimerForUnknownRequestIsNoOp(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(requestCompletedMsg{pullRequestURL: "http://x/preview/1", requestID: "no-such-id"})

	assert.Nil(t, cmd)
	assert.Zero(t, m.Tracker().Len())
}

func TestUpdate_NewSubmissionsPrepend(t *testing.T) {
	m := newTestModel()

	m.Update(submissionDoneMsg{outcome: outcomeNotReady("first", "s-1")})
	m.Update(submissionDoneMsg{outcome: outcomeNotReady("second", "s-2")})

	requests := m.Tracker().Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, "second", requests[0].Prompt)
	assert.Equal(t, "first", requests[1].Prompt)
	assert.Equal(t, 0, m.selected, "cursor follows the newest request")
}

func TestUpdate_FollowUpLifecycle(t *testing.T) {
	m := newTestModel()
	m.Update(submissionDoneMsg{outcome: outcomeReady("add dark mode", "https://example.com/org/repo/pull/7", 7)})
	request := m.Tracker().Requests()[0]

	_, cmd := m.Update(followUpDoneMsg{
		outcome:   outcomeNotReady("make it blue", "s-1"),
		requestID: request.ID,
	})

	require.Len(t, request.FollowUps, 1)
	followUpID := request.FollowUps[0].ID
	assert.Equal(t, domain.StatusPending, request.FollowUps[0].Status)
	assert.NotNil(t, cmd)

	m.Update(followUpProcessingMsg{followUpID: followUpID, requestID: request.ID})
	assert.Equal(t, domain.StatusProcessing, request.FollowUps[0].Status)

	m.Update(followUpCompletedMsg{followUpID: followUpID, requestID: request.ID})
	assert.Equal(t, domain.StatusCompleted, request.FollowUps[0].Status)
	assert.Empty(t, request.FollowUps[0].PullRequestURL, "simulated follow-up completion carries no URL")

	// The parent request is untouched throughout
	assert.Equal(t, domain.StatusCompleted, request.Status)
	assert.Equal(t, "https://example.com/org/repo/pull/7", request.PullRequestURL)
}

func TestUpdate_ReadyFollowUpCompletesWithURL(t *testing.T) {
	m := newTestModel()
	m.Update(submissionDoneMsg{outcome: outcomeReady("add dark mode", "https://example.com/org/repo/pull/7", 7)})
	request := m.Tracker().Requests()[0]

	_, cmd := m.Update(followUpDoneMsg{
		outcome:   outcomeReady("make it blue", "https://example.com/org/repo/pull/7", 7),
		requestID: request.ID,
	})

	require.Len(t, request.FollowUps, 1)
	assert.Equal(t, domain.StatusCompleted, request.FollowUps[0].Status)
	assert.Equal(t, "https://example.com/org/repo/pull/7", request.FollowUps[0].PullRequestURL)
	assert.Nil(t, cmd)
}

func TestUpdate_FollowUpForUnknownRequestIsDropped(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(followUpDoneMsg{
		outcome:   outcomeNotReady("make it blue", "s-1"),
		requestID: "no-such-id",
	})

	assert.Nil(t, cmd)
	assert.Zero(t, m.Tracker().Len())
}

func TestUpdate_SubmissionErrorShowsMessageAndClears(t *testing.T) {
	m := newTestModel()

	_, cmd := m.Update(submissionErrorMsg{
		err: fmt.Errorf("%w: connection refused", domain.ErrBackendUnreachable),
	})

	assert.False(t, m.submitting)
	assert.Equal(t, submissionUnreachableMessage, m.errorManager.Message())
	assert.NotNil(t, cmd, "a clear timer must be scheduled")
	assert.Zero(t, m.Tracker().Len(), "failed submissions create no request")

	m.Update(clearErrorMsg{})
	assert.False(t, m.errorManager.HasMessage())
}

func TestUpdate_FollowUpErrorClearsInFlightFlag(t *testing.T) {
	m := newTestModel()
	m.Update(submissionDoneMsg{outcome: outcomeReady("add dark mode", "https://example.com/org/repo/pull/7", 7)})
	request := m.Tracker().Requests()[0]
	m.submittingFollowUps[request.ID] = true

	m.Update(followUpErrorMsg{
		err:       &domain.BackendError{StatusCode: 500, Message: "session expired"},
		requestID: request.ID,
	})

	assert.False(t, m.submittingFollowUps[request.ID])
	assert.Equal(t, "Failed to submit request: session expired", m.errorManager.Message())
	assert.Empty(t, request.FollowUps, "failed follow-ups are not recorded")
}
