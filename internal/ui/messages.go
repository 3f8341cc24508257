package ui

import (
	"forja/internal/domain"
	"forja/internal/services"
)

// Submission messages

// submissionDoneMsg is sent when a top-level submission was accepted
// by the backend
type submissionDoneMsg struct {
	outcome *services.SubmissionOutcome
}

// submissionErrorMsg is sent when a top-level submission failed; no
// request is created
type submissionErrorMsg struct {
	err error
}

// followUpDoneMsg is sent when a follow-up submission was accepted
type followUpDoneMsg struct {
	outcome   *services.SubmissionOutcome
	requestID string
}

// followUpErrorMsg is sent when a follow-up submission failed
type followUpErrorMsg struct {
	err       error
	requestID string
}

// Simulated progress messages. These fire on fixed timers after a
// submission whose response carried no ready pull request. The tracker
// ignores them once the entity reached a terminal status.

type requestProcessingMsg struct {
	requestID string
}

type requestCompletedMsg struct {
	pullRequestURL string
	requestID      string
}

type followUpProcessingMsg struct {
	followUpID string
	requestID  string
}

type followUpCompletedMsg struct {
	followUpID string
	requestID  string
}

// Preview messages

// previewLoadedMsg is sent when a preview fetch succeeds
type previewLoadedMsg struct {
	preview   *domain.Preview
	requestID string
}

// previewErrorMsg is sent when a preview fetch fails; message is the
// user-facing text
type previewErrorMsg struct {
	message   string
	requestID string
}
