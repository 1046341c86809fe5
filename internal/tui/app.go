// internal/tui/app.go
//
// This is the main TUI for technex. It uses bubbletea, which follows The
// Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen
//
// That loop is also the app's consistency contract: a submitted answer
// mutates the record and the same Update pass produces the re-rendered
// preview, so no frame ever shows a mutated record with a stale render.

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Diveyam-Mishra/Resume-Technex/internal/config"
	"github.com/Diveyam-Mishra/Resume-Technex/internal/export"
	"github.com/Diveyam-Mishra/Resume-Technex/internal/intake"
	"github.com/Diveyam-Mishra/Resume-Technex/internal/journal"
	"github.com/Diveyam-Mishra/Resume-Technex/internal/render"
	"github.com/Diveyam-Mishra/Resume-Technex/internal/resume"
	"github.com/Diveyam-Mishra/Resume-Technex/internal/session"
)

// appState represents which "screen" we're on
type appState int

const (
	stateChat         appState = iota // answering intake questions
	stateTemplatePick                 // choosing a presentation template
)

// transcriptWindow caps how many transcript entries the chat pane shows.
const transcriptWindow = 12

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")).MarginBottom(1)
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444444")).Padding(0, 1)
	panelTitle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	logBodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).MarginTop(1)
)

// templateItem implements list.Item for the template picker.
type templateItem struct {
	t render.Template
}

func (i templateItem) Title() string       { return i.t.FriendlyName() }
func (i templateItem) Description() string { return i.t.Tagline() }
func (i templateItem) FilterValue() string { return i.t.String() }

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state   appState
	config  *config.Config
	session *session.Session
	journal *journal.Journal

	// UI components
	input        textinput.Model // chat reply box
	templateMenu list.Model      // template picker
	statusMsg    string          // status message to display

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// NewApp creates a new App instance rooted at the given project directory.
func NewApp(projectDir string) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	jr, err := journal.Open(filepath.Join(cfg.LogsDir(), "technex.log"))
	if err != nil {
		return nil, err
	}

	sess := session.New(
		session.WithJournal(jr),
		session.WithTemplate(cfg.DefaultTemplate()),
		session.WithPrompts(cfg.PromptOverrides()),
	)
	jr.Info("session %s opened · template %s", sess.ID(), sess.Template())

	input := textinput.New()
	input.Placeholder = "Type your answer and press enter"
	input.Prompt = "› "
	input.Focus()

	items := make([]list.Item, 0, len(render.Templates()))
	for _, t := range render.Templates() {
		items = append(items, templateItem{t: t})
	}
	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Choose a Template"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	app := &App{
		state:        stateChat,
		config:       cfg,
		session:      sess,
		journal:      jr,
		input:        input,
		templateMenu: menu,
		statusMsg:    "Answer the questions to build your resume",
	}
	app.selectMenuTemplate(sess.Template())
	return app, nil
}

func (a *App) selectMenuTemplate(t render.Template) {
	for idx, item := range a.templateMenu.Items() {
		if ti, ok := item.(templateItem); ok && ti.t == t {
			a.templateMenu.Select(idx)
			return
		}
	}
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.templateMenu.SetSize(max(0, msg.Width-6), max(0, msg.Height-10))
		a.input.Width = max(20, a.chatWidth()-8)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc":
			if a.state == stateTemplatePick {
				a.state = stateChat
				a.input.Focus()
				return a, textinput.Blink
			}
		case "ctrl+t":
			if a.state == stateChat {
				a.state = stateTemplatePick
				a.input.Blur()
				a.selectMenuTemplate(a.session.Template())
				a.statusMsg = "Pick a template for the preview"
				return a, nil
			}
		case "ctrl+e":
			a.exportResume()
			return a, nil
		case "enter":
			switch a.state {
			case stateChat:
				a.submitReply()
				return a, nil
			case stateTemplatePick:
				return a, a.confirmTemplateSelection()
			}
		}
	}

	var cmd tea.Cmd
	switch a.state {
	case stateChat:
		a.input, cmd = a.input.Update(msg)
	case stateTemplatePick:
		a.templateMenu, cmd = a.templateMenu.Update(msg)
	}
	return a, cmd
}

// submitReply hands the chat box contents to the session.
func (a *App) submitReply() {
	outcome, _ := a.session.Submit(a.input.Value())
	switch outcome {
	case intake.OutcomeIgnored:
		// The engine dropped it without a trace; nudge via the status line
		// only, never the transcript.
		a.statusMsg = "Empty answers are skipped — say something first"
	case intake.OutcomeAccepted:
		a.input.Reset()
		if a.session.Done() {
			a.statusMsg = "Resume complete · ctrl+t templates · ctrl+e export"
		} else {
			a.statusMsg = fmt.Sprintf("Saved · next up: %s", a.session.Step())
		}
	case intake.OutcomeAcknowledged:
		a.input.Reset()
		a.statusMsg = "Intake is finished — switch templates or export"
	}
}

// confirmTemplateSelection applies the highlighted template and persists it
// as the project default.
func (a *App) confirmTemplateSelection() tea.Cmd {
	item, ok := a.templateMenu.SelectedItem().(templateItem)
	if !ok {
		a.statusMsg = "Template selection unavailable"
		return nil
	}
	if _, err := a.session.SelectTemplate(item.t.String()); err != nil {
		a.statusMsg = fmt.Sprintf("Template switch failed: %v", err)
		return nil
	}
	if err := a.config.SetDefaultTemplate(item.t.String()); err != nil {
		a.journal.Warn("config · %v", err)
	}
	a.state = stateChat
	a.input.Focus()
	a.statusMsg = fmt.Sprintf("Template · %s", item.t.FriendlyName())
	return textinput.Blink
}

func (a *App) exportResume() {
	path, err := export.WriteText(a.config.ExportDir(), a.session.ID(), a.session.Rendered())
	if err != nil {
		a.journal.Error("export · %v", err)
		a.statusMsg = fmt.Sprintf("Export failed: %v", err)
		return
	}
	a.journal.Info("export · wrote %s", filepath.Base(path))
	a.statusMsg = fmt.Sprintf("Exported %s", filepath.Base(path))
}

func (a *App) chatWidth() int {
	width := a.width
	if width <= 0 {
		width = 100
	}
	rightWidth := max(36, width/2-2)
	leftWidth := width - rightWidth - 4
	if leftWidth < 30 {
		leftWidth = width - 4
	}
	return leftWidth
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}
	leftWidth := a.chatWidth()
	rightWidth := width - leftWidth - 4
	if rightWidth < 30 {
		rightWidth = 0
	}

	header := headerStyle.Render("⬡ TECHNEX RESUME")

	var content string
	switch a.state {
	case stateChat:
		content = a.renderChatPane(leftWidth - 4)
	case stateTemplatePick:
		content = a.renderTemplatePicker()
	}
	leftBox := boxStyle.Width(max(24, leftWidth)).Render(content)

	var body string
	if rightWidth > 0 {
		rightBox := boxStyle.Width(max(24, rightWidth)).Render(a.renderPreviewPane(rightWidth - 4))
		body = lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)
	} else {
		body = leftBox
	}

	sections := []string{header, body}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	sections = append(sections, footerStyle.Render(a.footerLine()))
	return strings.Join(sections, "\n")
}

func (a *App) renderChatPane(width int) string {
	title := panelTitle.Render("Intake")
	entries := a.session.Transcript()
	if len(entries) > transcriptWindow {
		entries = entries[len(entries)-transcriptWindow:]
	}
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		var line string
		if entry.Origin == intake.OriginAssistant {
			line = assistantStyle.Render("◆ " + entry.Text)
		} else {
			line = userStyle.Render("› " + entry.Text)
		}
		lines = append(lines, lipgloss.NewStyle().Width(max(20, width)).Render(line))
	}
	transcript := strings.Join(lines, "\n")
	return lipgloss.JoinVertical(lipgloss.Left, title, transcript, "", a.input.View())
}

func (a *App) renderTemplatePicker() string {
	view := a.templateMenu.View()
	if strings.TrimSpace(view) == "" {
		view = "No templates available"
	}
	hint := hintStyle.MarginTop(1).Render("Enter → apply template    Esc → back to intake")
	return lipgloss.JoinVertical(lipgloss.Left, view, hint)
}

func (a *App) renderPreviewPane(width int) string {
	rendered := a.session.Rendered()
	title := panelTitle.Render(fmt.Sprintf("Preview · %s", rendered.Template.FriendlyName()))
	meter := hintStyle.Render(fmt.Sprintf("Sections %d/%d", a.session.Record().Filled(), resume.FieldCount))
	return lipgloss.JoinVertical(lipgloss.Left, title, meter, "", rendered.View(width))
}

func (a *App) renderLogPanel() string {
	if a.journal == nil {
		return ""
	}
	lines := a.journal.Tail(6)
	if len(lines) == 0 {
		return ""
	}
	head := panelTitle.Render(fmt.Sprintf("LOG · %s", filepath.Base(a.journal.Path())))
	body := logBodyStyle.Render(strings.Join(lines, "\n"))
	return boxStyle.Render(fmt.Sprintf("%s\n%s", head, body))
}

func (a *App) footerLine() string {
	hints := "ctrl+t templates · ctrl+e export · ctrl+c quit"
	if a.statusMsg == "" {
		return hints
	}
	return fmt.Sprintf("%s    %s", a.statusMsg, hints)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
