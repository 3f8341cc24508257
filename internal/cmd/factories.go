package cmd

import (
	backendadapter "forja/internal/adapters/backend"
	"forja/internal/ports"
	"forja/internal/services"
)

// Container holds the application's wired dependencies.
type Container struct {
	Backend    ports.Backend
	Previews   *services.PreviewService
	Submission *services.SubmissionService
}

// NewContainer wires the backend client and the services on top of it.
func NewContainer(backendURL string) *Container {
	client := backendadapter.NewClient(backendURL)

	return &Container{
		Backend:    client,
		Previews:   services.NewPreviewService(client),
		Submission: services.NewSubmissionService(client, client.BaseURL()),
	}
}
