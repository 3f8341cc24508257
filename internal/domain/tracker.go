package domain

import (
	"time"

	"github.com/google/uuid"
)

// RequestTracker is the in-memory collection of change requests and
// their follow-ups, most recent request first. It owns all status
// transitions: updates on unknown ids are no-ops, terminal statuses
// are frozen, and existing entries are never reordered or removed.
//
// The tracker is not safe for concurrent use; callers must drive it
// from a single goroutine (the Bubble Tea update loop does this).
type RequestTracker struct {
	requests []*Request
}

// RequestPatch carries optional field updates for a request. Nil fields
// are left untouched.
type RequestPatch struct {
	PRNumber       *int
	PullRequestURL *string
	SessionID      *string
}

// NewRequestTracker creates an empty RequestTracker
func NewRequestTracker() *RequestTracker {
	return &RequestTracker{}
}

// AddRequest creates a pending request for the given prompt and
// prepends it to the collection.
func (t *RequestTracker) AddRequest(prompt string) *Request {
	request := &Request{
		CreatedAt: time.Now(),
		ID:        uuid.New().String(),
		Prompt:    prompt,
		Status:    StatusPending,
	}
	t.requests = append([]*Request{request}, t.requests...)
	return request
}

// Requests returns all tracked requests, most recent first
func (t *RequestTracker) Requests() []*Request {
	return t.requests
}

// Len returns the number of tracked requests
func (t *RequestTracker) Len() int {
	return len(t.requests)
}

// Get returns the request with the given id, or nil if unknown
func (t *RequestTracker) Get(id string) *Request {
	for _, request := range t.requests {
		if request.ID == id {
			return request
		}
	}
	return nil
}

// UpdateRequestStatus applies a status transition to the named request.
// Unknown ids, terminal current statuses, and backward transitions are
// all no-ops.
func (t *RequestTracker) UpdateRequestStatus(id string, status Status) {
	request := t.Get(id)
	if request == nil || !request.Status.CanTransitionTo(status) {
		return
	}
	request.Status = status
}

// UpdateRequestFields applies a partial field update to the named
// request. A session id, once set, is never overwritten. Unknown ids
// are a no-op.
func (t *RequestTracker) UpdateRequestFields(id string, patch RequestPatch) {
	request := t.Get(id)
	if request == nil {
		return
	}
	if patch.SessionID != nil && request.SessionID == "" {
		request.SessionID = *patch.SessionID
	}
	if patch.PullRequestURL != nil {
		request.PullRequestURL = *patch.PullRequestURL
	}
	if patch.PRNumber != nil {
		request.PRNumber = *patch.PRNumber
	}
}

// AddFollowUp appends a pending follow-up to the named request and
// returns a copy of it. The second return value is false when the
// parent request does not exist.
func (t *RequestTracker) AddFollowUp(requestID, prompt string) (FollowUp, bool) {
	request := t.Get(requestID)
	if request == nil {
		return FollowUp{}, false
	}
	followUp := FollowUp{
		CreatedAt: time.Now(),
		ID:        uuid.New().String(),
		Prompt:    prompt,
		Status:    StatusPending,
	}
	request.FollowUps = append(request.FollowUps, followUp)
	return followUp, true
}

// UpdateFollowUpStatus applies a status transition to a follow-up under
// the named request, with the same no-op rules as UpdateRequestStatus.
func (t *RequestTracker) UpdateFollowUpStatus(requestID, followUpID string, status Status) {
	request := t.Get(requestID)
	if request == nil {
		return
	}
	for i := range request.FollowUps {
		if request.FollowUps[i].ID != followUpID {
			continue
		}
		if request.FollowUps[i].Status.CanTransitionTo(status) {
			request.FollowUps[i].Status = status
		}
		return
	}
}

// UpdateFollowUpFields sets the pull request URL on a follow-up under
// the named request. Unknown ids are a no-op.
func (t *RequestTracker) UpdateFollowUpFields(requestID, followUpID, pullRequestURL string) {
	request := t.Get(requestID)
	if request == nil {
		return
	}
	for i := range request.FollowUps {
		if request.FollowUps[i].ID == followUpID {
			request.FollowUps[i].PullRequestURL = pullRequestURL
			return
		}
	}
}

// ToggleExpansion flips the UI expansion state of the named request
func (t *RequestTracker) ToggleExpansion(requestID string) {
	request := t.Get(requestID)
	if request == nil {
		return
	}
	request.IsExpanded = !request.IsExpanded
}
