package cmd

import (
	"context"
	"fmt"

	"forja/internal/ui"
)

// PreviewCmd prints the diff preview for one or more pull request
// identifiers. Multiple identifiers are fetched concurrently.
type PreviewCmd struct {
	IDs []string `arg:"" help:"Pull request identifiers to preview"`
}

func (p *PreviewCmd) Run(cli *CLI) error {
	results := cli.Container.Previews.FetchAll(context.Background(), p.IDs)

	failed := 0
	for _, result := range results {
		if len(results) > 1 {
			fmt.Printf("== %s ==\n", result.ID)
		}
		if result.Err != nil {
			failed++
			fmt.Printf("error: %v\n", result.Err)
			continue
		}
		fmt.Println(ui.RenderPreview(result.Preview))
	}

	if failed > 0 {
		return fmt.Errorf("failed to fetch %d of %d previews", failed, len(results))
	}
	return nil
}
