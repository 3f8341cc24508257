package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"forja/internal/services"
)

// submitCmd sends a new top-level prompt to the backend
func submitCmd(submissions *services.SubmissionService, prompt string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := submissions.Submit(context.Background(), prompt)
		if err != nil {
			return submissionErrorMsg{err: err}
		}
		return submissionDoneMsg{outcome: outcome}
	}
}

// followUpCmd sends an adjustment prompt against the request's backend
// session
func followUpCmd(submissions *services.SubmissionService, requestID, sessionID, prompt string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := submissions.SubmitFollowUp(context.Background(), sessionID, prompt)
		if err != nil {
			return followUpErrorMsg{err: err, requestID: requestID}
		}
		return followUpDoneMsg{outcome: outcome, requestID: requestID}
	}
}

// fetchPreviewCmd retrieves the diff preview for a request
func fetchPreviewCmd(previews *services.PreviewService, requestID, previewID string) tea.Cmd {
	return func() tea.Msg {
		preview, err := previews.Fetch(context.Background(), previewID)
		if err != nil {
			return previewErrorMsg{message: previewUserMessage(err), requestID: requestID}
		}
		return previewLoadedMsg{preview: preview, requestID: requestID}
	}
}

// scheduleRequestProgress schedules the simulated processing and
// completion transitions for a request whose submission carried no
// ready pull request. The completion reports a placeholder URL.
func scheduleRequestProgress(requestID, placeholderURL string) tea.Cmd {
	return tea.Batch(
		tea.Tick(services.RequestProcessingDelay, func(time.Time) tea.Msg {
			return requestProcessingMsg{requestID: requestID}
		}),
		tea.Tick(services.RequestCompletedDelay, func(time.Time) tea.Msg {
			return requestCompletedMsg{pullRequestURL: placeholderURL, requestID: requestID}
		}),
	)
}

// scheduleFollowUpProgress is the follow-up counterpart of
// scheduleRequestProgress, with shorter delays. Follow-ups complete
// without a synthesized URL; the parent request already links the pull
// request being adjusted.
func scheduleFollowUpProgress(requestID, followUpID string) tea.Cmd {
	return tea.Batch(
		tea.Tick(services.FollowUpProcessingDelay, func(time.Time) tea.Msg {
			return followUpProcessingMsg{followUpID: followUpID, requestID: requestID}
		}),
		tea.Tick(services.FollowUpCompletedDelay, func(time.Time) tea.Msg {
			return followUpCompletedMsg{followUpID: followUpID, requestID: requestID}
		}),
	)
}
