package domain

import "time"

// Status represents the lifecycle state of a Request or FollowUp
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Status symbols (Unicode)
const (
	SymbolPending    = "○" // Yellow - queued, backend not started
	SymbolProcessing = "◐" // Blue - backend working on changes
	SymbolCompleted  = "●" // Green - pull request ready
	SymbolError      = "✗" // Red - submission failed
)

// statusOrder positions each status along the forward path
// pending -> processing -> completed. Error sits outside the path.
var statusOrder = map[Status]int{
	StatusPending:    0,
	StatusProcessing: 1,
	StatusCompleted:  2,
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusError
}

// CanTransitionTo reports whether moving from s to next is a legal
// transition. Transitions only move forward along the path; error is
// reachable from any non-terminal state; terminal states are frozen.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StatusError {
		return true
	}
	return statusOrder[next] > statusOrder[s]
}

// FollowUp is an adjustment request nested under a Request. It inherits
// the parent's backend session and carries its own independent status.
type FollowUp struct {
	CreatedAt      time.Time
	ID             string
	Prompt         string
	PullRequestURL string
	Status         Status
}

// Request is a top-level change request tracked through to pull request
// creation
type Request struct {
	CreatedAt      time.Time
	FollowUps      []FollowUp
	ID             string
	IsExpanded     bool // UI-only expansion toggle for the follow-up list
	PRNumber       int  // 0 when no PR number could be derived from the URL
	Prompt         string
	PullRequestURL string
	SessionID      string
	Status         Status
}
