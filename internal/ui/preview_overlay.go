package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"forja/internal/domain"
	"forja/internal/services"
	"forja/internal/theme"
)

type previewState int

const (
	previewIdle previewState = iota
	previewLoading
	previewSuccess
	previewFailure
)

// PreviewOverlay shows the diff preview for a request. Each Open resets
// the overlay to loading and replaces any prior result, so reopening
// always refetches.
type PreviewOverlay struct {
	message   string
	preview   *domain.Preview
	requestID string
	state     previewState
	viewport  viewport.Model
}

// NewPreviewOverlay creates an idle preview overlay
func NewPreviewOverlay() *PreviewOverlay {
	return &PreviewOverlay{
		viewport: viewport.New(80, 20),
	}
}

// Open starts fetching the preview for the given request and returns
// the corresponding command
func (p *PreviewOverlay) Open(previews *services.PreviewService, requestID, previewID string) tea.Cmd {
	p.message = ""
	p.preview = nil
	p.requestID = requestID
	p.state = previewLoading
	return fetchPreviewCmd(previews, requestID, previewID)
}

// Close resets the overlay to idle
func (p *PreviewOverlay) Close() {
	p.message = ""
	p.preview = nil
	p.requestID = ""
	p.state = previewIdle
}

// SetSize resizes the overlay viewport
func (p *PreviewOverlay) SetSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
}

// Loaded applies a successful fetch result. Results for a request
// other than the one currently open are ignored.
func (p *PreviewOverlay) Loaded(msg previewLoadedMsg) {
	if msg.requestID != p.requestID {
		return
	}
	p.preview = msg.preview
	p.state = previewSuccess
	p.viewport.SetContent(RenderPreview(msg.preview))
	p.viewport.GotoTop()
}

// Failed applies a failed fetch result
func (p *PreviewOverlay) Failed(msg previewErrorMsg) {
	if msg.requestID != p.requestID {
		return
	}
	p.message = msg.message
	p.state = previewFailure
}

// Update forwards messages to the viewport for scrolling
func (p *PreviewOverlay) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// View renders the overlay content for the current state
func (p *PreviewOverlay) View() string {
	var body string
	switch p.state {
	case previewLoading:
		body = theme.MutedStyle.Render("Loading preview...")
	case previewFailure:
		body = theme.ErrorStyle.Render(p.message)
	case previewSuccess:
		body = p.viewport.View()
	default:
		body = theme.MutedStyle.Render("No preview available.")
	}

	title := theme.TitleStyle.Render("Pull Request Preview")
	help := theme.HelpStyle.Render("↑/↓ scroll · esc close")
	return title + "\n" + body + "\n" + help
}

// RenderPreview builds the preview text: title, body, then one section
// per changed file with counts and a colored patch. When the backend
// sent no structured file list, the raw payload is shown instead. The
// overlay scrolls this text; the preview CLI command prints it as is.
func RenderPreview(preview *domain.Preview) string {
	var b strings.Builder

	if preview.Title != "" {
		b.WriteString(theme.FilenameStyle.Render(preview.Title))
		b.WriteString("\n\n")
	}
	if preview.Body != "" {
		b.WriteString(theme.NormalStyle.Render(preview.Body))
		b.WriteString("\n\n")
	}

	if len(preview.Files) == 0 {
		b.WriteString(theme.MutedStyle.Render(rawPayload(preview)))
		return b.String()
	}

	for _, file := range preview.Files {
		header := fmt.Sprintf("%s  %s %s",
			theme.FilenameStyle.Render(file.Filename),
			theme.AdditionsStyle.Render(fmt.Sprintf("+%d", file.Additions)),
			theme.DeletionsStyle.Render(fmt.Sprintf("-%d", file.Deletions)))
		if file.Status != "" {
			header += "  " + theme.SubtleStyle.Render(file.Status)
		}
		b.WriteString(header)
		b.WriteString("\n")
		b.WriteString(renderPatch(file.Patch))
		b.WriteString("\n")
	}

	return b.String()
}

// renderPatch colors unified diff lines by their prefix
func renderPatch(patch string) string {
	if patch == "" {
		return ""
	}

	lines := strings.Split(patch, "\n")
	rendered := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			rendered[i] = theme.AdditionsStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			rendered[i] = theme.DeletionsStyle.Render(line)
		default:
			rendered[i] = theme.NormalStyle.Render(line)
		}
	}
	return strings.Join(rendered, "\n")
}

// rawPayload pretty-prints the raw preview body as a fallback
func rawPayload(preview *domain.Preview) string {
	var indented bytes.Buffer
	if err := json.Indent(&indented, preview.Raw, "", "  "); err != nil {
		return string(preview.Raw)
	}
	return indented.String()
}
