package ports

import (
	"context"

	"forja/internal/domain"
)

// GenerateResult is the parsed body of a successful generation call.
// Message is free-form text that may embed a pull request URL and a
// session id; PullRequestURL and SessionID are set when the backend
// reports them as structured fields.
type GenerateResult struct {
	Message        string `json:"message"`
	PullRequestURL string `json:"pullRequestUrl"`
	SessionID      string `json:"session_id"`
}

// Backend is the remote collaborator that turns prompts into pull
// requests. Generate with an empty session id starts a new unit of
// work; with a session id it applies a follow-up adjustment to the
// same underlying work.
type Backend interface {
	Generate(ctx context.Context, sessionID, prompt string) (*GenerateResult, error)
	Preview(ctx context.Context, id string) (*domain.Preview, error)
}
