package ui

import (
	"fmt"
	"strings"
	"time"

	"forja/internal/domain"
	"forja/internal/theme"
)

// statusIcon returns the styled symbol for a status
func statusIcon(status domain.Status) string {
	switch status {
	case domain.StatusProcessing:
		return theme.ProcessingIconStyle.Render(domain.SymbolProcessing)
	case domain.StatusCompleted:
		return theme.CompletedIconStyle.Render(domain.SymbolCompleted)
	case domain.StatusError:
		return theme.FailedIconStyle.Render(domain.SymbolError)
	default:
		return theme.PendingIconStyle.Render(domain.SymbolPending)
	}
}

// statusLabel returns the styled capitalized status name
func statusLabel(status domain.Status) string {
	label := strings.ToUpper(string(status)[:1]) + string(status)[1:]
	switch status {
	case domain.StatusProcessing:
		return theme.ProcessingIconStyle.Render(label)
	case domain.StatusCompleted:
		return theme.CompletedIconStyle.Render(label)
	case domain.StatusError:
		return theme.FailedIconStyle.Render(label)
	default:
		return theme.PendingIconStyle.Render(label)
	}
}

// formatAge renders a compact relative timestamp
func formatAge(t time.Time) string {
	age := time.Since(t)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return t.Format("Jan 2 15:04")
	}
}

// renderRequest renders one request card, including its follow-ups
// when expanded
func renderRequest(request *domain.Request, selected bool) string {
	var b strings.Builder

	cursor := "  "
	if selected {
		cursor = theme.SelectedStyle.Render("> ")
	}

	header := fmt.Sprintf("%s%s %s", cursor, statusIcon(request.Status), statusLabel(request.Status))
	if request.SessionID != "" {
		header += theme.SubtleStyle.Render("  session: " + request.SessionID)
	}
	if n := len(request.FollowUps); n > 0 {
		plural := ""
		if n != 1 {
			plural = "s"
		}
		header += theme.FollowUpBadgeStyle.Render(fmt.Sprintf("  %d follow-up%s", n, plural))
	}
	header += theme.MutedStyle.Render("  " + formatAge(request.CreatedAt))
	b.WriteString(header)
	b.WriteString("\n")

	prompt := theme.NormalStyle.Render(request.Prompt)
	if selected {
		prompt = theme.SelectedStyle.Render(request.Prompt)
	}
	b.WriteString("    " + prompt)
	b.WriteString("\n")

	if request.Status == domain.StatusProcessing {
		b.WriteString("    " + theme.MutedStyle.Render("Analyzing prompt and generating code changes..."))
		b.WriteString("\n")
	}

	if request.PullRequestURL != "" && request.Status == domain.StatusCompleted {
		b.WriteString("    " + theme.URLStyle.Render(request.PullRequestURL))
		b.WriteString("\n")
	}

	if request.IsExpanded {
		for i, followUp := range request.FollowUps {
			b.WriteString(renderFollowUp(followUp, i+1))
		}
	}

	return b.String()
}

// renderFollowUp renders one follow-up line under an expanded request
func renderFollowUp(followUp domain.FollowUp, index int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("      %s %s  %s\n",
		statusIcon(followUp.Status),
		theme.SubtleStyle.Render(fmt.Sprintf("follow-up #%d", index)),
		theme.MutedStyle.Render(formatAge(followUp.CreatedAt))))
	b.WriteString("        " + theme.MutedStyle.Render(followUp.Prompt) + "\n")

	if followUp.PullRequestURL != "" && followUp.Status == domain.StatusCompleted {
		b.WriteString("        " + theme.URLStyle.Render(followUp.PullRequestURL) + "\n")
	}

	return b.String()
}
