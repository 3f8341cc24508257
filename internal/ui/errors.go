package ui

import (
	"errors"

	"forja/internal/domain"
	"forja/internal/services"
)

// Fixed user-facing messages for transport-level failures. These are
// deliberately generic: the underlying error says which syscall failed,
// which is useless to the person staring at the dashboard.
const (
	submissionUnreachableMessage = "Cannot connect to backend. Check the server is running."
	previewUnreachableMessage    = "Unable to reach server."
)

// submissionUserMessage maps a submission error to the text shown in
// the status line
func submissionUserMessage(err error) string {
	var backendErr *domain.BackendError
	switch {
	case errors.Is(err, domain.ErrBackendUnreachable):
		return submissionUnreachableMessage
	case errors.Is(err, services.ErrBlankPrompt):
		return "Enter a prompt before submitting."
	case errors.As(err, &backendErr):
		return "Failed to submit request: " + backendErr.Message
	default:
		return "Failed to submit request: " + err.Error()
	}
}

// previewUserMessage maps a preview fetch error to the text shown in
// the preview overlay. Application errors surface the backend's own
// message verbatim.
func previewUserMessage(err error) string {
	var backendErr *domain.BackendError
	switch {
	case errors.Is(err, domain.ErrBackendUnreachable):
		return previewUnreachableMessage
	case errors.As(err, &backendErr):
		if backendErr.Message != "" {
			return backendErr.Message
		}
		return backendErr.Error()
	default:
		return err.Error()
	}
}
