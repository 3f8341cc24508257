package cmd

import (
	"context"
	"fmt"
	"strings"

	"forja/internal/services"
)

// SubmitCmd sends a single prompt to the backend and prints the outcome,
// without starting the dashboard. With --session the prompt is sent as a
// follow-up against an existing backend session.
type SubmitCmd struct {
	Prompt  []string `arg:"" help:"The change request prompt"`
	Session string   `help:"Backend session id to send the prompt as a follow-up" short:"s"`
}

func (s *SubmitCmd) Run(cli *CLI) error {
	prompt := strings.Join(s.Prompt, " ")
	ctx := context.Background()

	var outcome *services.SubmissionOutcome
	var err error
	if s.Session != "" {
		outcome, err = cli.Container.Submission.SubmitFollowUp(ctx, s.Session, prompt)
	} else {
		outcome, err = cli.Container.Submission.Submit(ctx, prompt)
	}
	if err != nil {
		return err
	}

	if outcome.Message != "" {
		fmt.Println(outcome.Message)
	}
	if outcome.Correlation.SessionID != "" {
		fmt.Printf("Session: %s\n", outcome.Correlation.SessionID)
	}
	if outcome.Ready {
		fmt.Printf("Pull request: %s\n", outcome.Correlation.PullRequestURL)
	} else {
		fmt.Println("Pull request not ready yet")
	}

	return nil
}
