package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"forja/internal/domain"
	"forja/internal/logging"
	"forja/internal/ports"
)

// PreviewService fetches diff previews from the backend
type PreviewService struct {
	backend ports.Backend
}

// PreviewResult pairs a preview identifier with its fetch result
type PreviewResult struct {
	Err     error
	ID      string
	Preview *domain.Preview
}

// NewPreviewService creates a PreviewService
func NewPreviewService(backend ports.Backend) *PreviewService {
	return &PreviewService{backend: backend}
}

// Fetch retrieves the preview for a single identifier
func (s *PreviewService) Fetch(ctx context.Context, id string) (*domain.Preview, error) {
	if id == "" {
		return nil, fmt.Errorf("preview id must not be empty")
	}
	return s.backend.Preview(ctx, id)
}

// FetchAll retrieves previews for several identifiers concurrently.
// Results keep the input order; per-id failures are reported in the
// result slot instead of aborting the batch.
func (s *PreviewService) FetchAll(ctx context.Context, ids []string) []PreviewResult {
	results := make([]PreviewResult, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			preview, err := s.Fetch(ctx, id)
			results[i] = PreviewResult{Err: err, ID: id, Preview: preview}
			if err != nil {
				logging.Logger.Warn("Failed to fetch preview", "id", id, "error", err)
			}
			return nil
		})
	}
	// Goroutines never return errors; failures live in the result slots
	_ = g.Wait()

	return results
}
