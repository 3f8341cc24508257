package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forja/internal/domain"
)

func TestGenerate_Success(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"message":    "PR ready: https://example.com/org/repo/pull/7 session_id=abc-1",
			"session_id": "abc-1",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.Generate(context.Background(), "", "add dark mode")

	require.NoError(t, err)
	assert.Equal(t, "/translate-and-forward/", gotPath)
	assert.Equal(t, "add dark mode", gotBody["prompt"])
	assert.NotContains(t, gotBody, "session_id")
	assert.Equal(t, "abc-1", result.SessionID)
	assert.Contains(t, result.Message, "pull/7")
}

func TestGenerate_IncludesSessionIDForFollowUps(t *testing.T) {
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"message":        "updated",
			"pullRequestUrl": "https://example.com/org/repo/pull/7",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.Generate(context.Background(), "abc-1", "make it blue")

	require.NoError(t, err)
	assert.Equal(t, "abc-1", gotBody["session_id"])
	assert.Equal(t, "https://example.com/org/repo/pull/7", result.PullRequestURL)
}

func TestGenerate_NonSuccessStatusBecomesBackendError(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		expectedMessage string
	}{
		{
			name:            "json message field",
			status:          http.StatusUnprocessableEntity,
			body:            `{"message": "prompt too long"}`,
			expectedMessage: "prompt too long",
		},
		{
			name:            "plain text body",
			status:          http.StatusInternalServerError,
			body:            "internal server error\n",
			expectedMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			_, err := client.Generate(context.Background(), "", "a prompt")

			var backendErr *domain.BackendError
			require.ErrorAs(t, err, &backendErr)
			assert.Equal(t, tt.status, backendErr.StatusCode)
			assert.Equal(t, tt.expectedMessage, backendErr.Message)
		})
	}
}

func TestGenerate_TransportFailureIsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Nothing is listening anymore

	client := NewClient(server.URL)
	_, err := client.Generate(context.Background(), "", "a prompt")

	assert.ErrorIs(t, err, domain.ErrBackendUnreachable)
}

func TestPreview_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/preview/pr-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"title": "Add dark mode",
			"body":  "Toggles the theme",
			"files": []map[string]any{
				{"filename": "theme.css", "status": "modified", "additions": 10, "deletions": 2, "patch": "@@ -1 +1 @@"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	preview, err := client.Preview(context.Background(), "pr-1")

	require.NoError(t, err)
	assert.Equal(t, "Add dark mode", preview.Title)
	require.Len(t, preview.Files, 1)
	assert.Equal(t, "theme.css", preview.Files[0].Filename)
	assert.Equal(t, 10, preview.Files[0].Additions)
	assert.NotEmpty(t, preview.Raw)
}

func TestPreview_TransportFailureIsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	_, err := client.Preview(context.Background(), "pr-1")

	assert.ErrorIs(t, err, domain.ErrBackendUnreachable)
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient("http://localhost:8001/")
	assert.Equal(t, "http://localhost:8001", client.BaseURL())
}
