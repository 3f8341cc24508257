package ui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"forja/internal/domain"
	"forja/internal/logging"
	"forja/internal/services"
	"forja/internal/theme"
	"forja/version"
)

type uiState int

const (
	stateBrowsing uiState = iota
	stateComposing
	statePreview
)

// Model is the dashboard: it owns the request tracker and is the
// single-threaded command processor for every mutation. Network calls
// run inside tea.Cmd closures; their results and the simulated
// progress timers all come back through Update, so tracker mutations
// are applied strictly in event order.
type Model struct {
	errorManager        *ErrorManager
	form                *PromptForm
	height              int
	keys                KeyMap
	preview             *PreviewOverlay
	previews            *services.PreviewService
	selected            int
	spinner             spinner.Model
	state               uiState
	submissions         *services.SubmissionService
	submitting          bool
	submittingFollowUps map[string]bool
	tracker             *domain.RequestTracker
	width               int
}

// NewModel creates the dashboard model
func NewModel(
	submissions *services.SubmissionService,
	previews *services.PreviewService,
	errorClearDelay time.Duration,
) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.ColorSpinner)

	return &Model{
		errorManager:        NewErrorManager(errorClearDelay),
		keys:                NewKeyMap(),
		preview:             NewPreviewOverlay(),
		previews:            previews,
		spinner:             s,
		submissions:         submissions,
		submittingFollowUps: make(map[string]bool),
		tracker:             domain.NewRequestTracker(),
	}
}

// Tracker exposes the request tracker for tests
func (m *Model) Tracker() *domain.RequestTracker {
	return m.tracker
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview.SetSize(msg.Width-4, msg.Height-6)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearErrorMsg:
		m.errorManager.Clear()
		return m, nil

	case submissionDoneMsg:
		m.submitting = false
		return m, m.applySubmission(msg.outcome)

	case submissionErrorMsg:
		m.submitting = false
		logging.Logger.Warn("Submission failed", "error", msg.err)
		m.errorManager.SetMessage(submissionUserMessage(msg.err))
		return m, m.errorManager.ClearAfterDelay()

	case followUpDoneMsg:
		delete(m.submittingFollowUps, msg.requestID)
		return m, m.applyFollowUp(msg.requestID, msg.outcome)

	case followUpErrorMsg:
		delete(m.submittingFollowUps, msg.requestID)
		logging.Logger.Warn("Follow-up failed", "request_id", msg.requestID, "error", msg.err)
		m.errorManager.SetMessage(submissionUserMessage(msg.err))
		return m, m.errorManager.ClearAfterDelay()

	case requestProcessingMsg:
		m.tracker.UpdateRequestStatus(msg.requestID, domain.StatusProcessing)
		return m, nil

	case requestCompletedMsg:
		// A real completion may have landed before this timer fired;
		// terminal statuses win and the placeholder URL is discarded
		request := m.tracker.Get(msg.requestID)
		if request == nil || request.Status.IsTerminal() {
			return m, nil
		}
		m.tracker.UpdateRequestFields(msg.requestID, domain.RequestPatch{
			PullRequestURL: &msg.pullRequestURL,
		})
		m.tracker.UpdateRequestStatus(msg.requestID, domain.StatusCompleted)
		return m, nil

	case followUpProcessingMsg:
		m.tracker.UpdateFollowUpStatus(msg.requestID, msg.followUpID, domain.StatusProcessing)
		return m, nil

	case followUpCompletedMsg:
		m.tracker.UpdateFollowUpStatus(msg.requestID, msg.followUpID, domain.StatusCompleted)
		return m, nil

	case previewLoadedMsg:
		m.preview.Loaded(msg)
		return m, nil

	case previewErrorMsg:
		m.preview.Failed(msg)
		return m, nil
	}

	switch m.state {
	case stateComposing:
		return m, m.updateComposing(msg)
	case statePreview:
		return m, m.updatePreview(msg)
	default:
		return m, m.updateBrowsing(msg)
	}
}

// updateBrowsing handles input while the request list has focus
func (m *Model) updateBrowsing(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.selected < m.tracker.Len()-1 {
			m.selected++
		}

	case key.Matches(keyMsg, m.keys.NewRequest):
		if m.submitting {
			return nil
		}
		m.form = NewRequestForm()
		m.state = stateComposing
		return m.form.Init()

	case key.Matches(keyMsg, m.keys.FollowUp):
		request := m.selectedRequest()
		if request == nil || request.Status != domain.StatusCompleted {
			return nil
		}
		// Advisory in-flight flag: one follow-up per request at a time
		if m.submittingFollowUps[request.ID] {
			return nil
		}
		m.form = NewFollowUpForm(request.ID, request.SessionID)
		m.state = stateComposing
		return m.form.Init()

	case key.Matches(keyMsg, m.keys.Preview):
		request := m.selectedRequest()
		if request == nil || request.PRNumber == 0 {
			return nil
		}
		m.state = statePreview
		return m.preview.Open(m.previews, request.ID, strconv.Itoa(request.PRNumber))

	case key.Matches(keyMsg, m.keys.ToggleExpand):
		if request := m.selectedRequest(); request != nil {
			m.tracker.ToggleExpansion(request.ID)
		}
	}

	return nil
}

// updateComposing drives the prompt form and dispatches the submission
// when it completes
func (m *Model) updateComposing(msg tea.Msg) tea.Cmd {
	form := m.form
	cmd := form.Update(msg)

	if form.Aborted() {
		m.form = nil
		m.state = stateBrowsing
		return nil
	}

	if !form.Completed() {
		return cmd
	}

	m.form = nil
	m.state = stateBrowsing

	if form.RequestID() == "" {
		m.submitting = true
		return submitCmd(m.submissions, form.Prompt())
	}

	m.submittingFollowUps[form.RequestID()] = true
	return followUpCmd(m.submissions, form.RequestID(), form.SessionID(), form.Prompt())
}

// updatePreview handles input while the preview overlay is open
func (m *Model) updatePreview(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q":
			m.preview.Close()
			m.state = stateBrowsing
			return nil
		}
	}
	return m.preview.Update(msg)
}

// applySubmission records an accepted top-level submission in the
// tracker and schedules simulated progress when the backend reported
// no ready pull request
func (m *Model) applySubmission(outcome *services.SubmissionOutcome) tea.Cmd {
	request := m.tracker.AddRequest(outcome.Prompt)
	correlation := outcome.Correlation
	m.tracker.UpdateRequestFields(request.ID, domain.RequestPatch{
		PRNumber:       &correlation.PRNumber,
		PullRequestURL: &correlation.PullRequestURL,
		SessionID:      &correlation.SessionID,
	})
	m.selected = 0

	if outcome.Ready {
		m.tracker.UpdateRequestStatus(request.ID, domain.StatusCompleted)
		return nil
	}
	return scheduleRequestProgress(request.ID, m.submissions.PlaceholderURL(request.ID))
}

// applyFollowUp records an accepted follow-up under its parent request
func (m *Model) applyFollowUp(requestID string, outcome *services.SubmissionOutcome) tea.Cmd {
	followUp, ok := m.tracker.AddFollowUp(requestID, outcome.Prompt)
	if !ok {
		return nil
	}

	if outcome.Ready {
		m.tracker.UpdateFollowUpFields(requestID, followUp.ID, outcome.Correlation.PullRequestURL)
		m.tracker.UpdateFollowUpStatus(requestID, followUp.ID, domain.StatusCompleted)
		return nil
	}
	return scheduleFollowUpProgress(requestID, followUp.ID)
}

// selectedRequest returns the request under the cursor, nil when the
// list is empty
func (m *Model) selectedRequest() *domain.Request {
	requests := m.tracker.Requests()
	if len(requests) == 0 {
		return nil
	}
	if m.selected >= len(requests) {
		m.selected = len(requests) - 1
	}
	return requests[m.selected]
}

// View implements tea.Model
func (m *Model) View() string {
	switch m.state {
	case stateComposing:
		return theme.TitleStyle.Render("Forja") + "\n" + m.form.View()
	case statePreview:
		return m.preview.View()
	}

	var b []string
	b = append(b, theme.TitleStyle.Render("Forja")+theme.SubtleStyle.Render("  "+version.Tagline))

	requests := m.tracker.Requests()
	if len(requests) == 0 {
		b = append(b, theme.MutedStyle.Render("No change requests yet. Press n to submit your first prompt."))
	} else {
		for i, request := range requests {
			b = append(b, renderRequest(request, i == m.selected))
		}
	}

	if m.submitting {
		b = append(b, m.spinner.View()+theme.MutedStyle.Render(" Generating pull request..."))
	}
	if m.errorManager.HasMessage() {
		b = append(b, theme.ErrorStyle.Render(m.errorManager.Message()))
	}

	b = append(b, theme.HelpStyle.Render("n new · f follow-up · p preview · enter expand · ↑/↓ move · q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, b...)
}
