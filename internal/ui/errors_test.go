package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"forja/internal/domain"
	"forja/internal/services"
)

func TestSubmissionUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "transport failure gets the fixed message",
			err:      fmt.Errorf("%w: dial tcp: connection refused", domain.ErrBackendUnreachable),
			expected: submissionUnreachableMessage,
		},
		{
			name:     "blank prompt",
			err:      services.ErrBlankPrompt,
			expected: "Enter a prompt before submitting.",
		},
		{
			name:     "backend error surfaces its message",
			err:      &domain.BackendError{StatusCode: 422, Message: "prompt too long"},
			expected: "Failed to submit request: prompt too long",
		},
		{
			name:     "unknown error falls through",
			err:      errors.New("boom"),
			expected: "Failed to submit request: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, submissionUserMessage(tt.err))
		})
	}
}

func TestPreviewUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "transport failure gets the fixed message",
			err:      fmt.Errorf("%w: dial tcp: connection refused", domain.ErrBackendUnreachable),
			expected: previewUnreachableMessage,
		},
		{
			name:     "backend message shown verbatim",
			err:      &domain.BackendError{StatusCode: 404, Message: "preview not found"},
			expected: "preview not found",
		},
		{
			name:     "backend error without message",
			err:      &domain.BackendError{StatusCode: 500},
			expected: "backend returned status 500",
		},
		{
			name:     "unknown error falls through",
			err:      errors.New("boom"),
			expected: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, previewUserMessage(tt.err))
		})
	}
}
