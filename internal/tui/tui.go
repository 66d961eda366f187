// Package tui provides a Bubble Tea terminal user interface for fpscrape.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/fpscrape/internal/config"
	"github.com/handiism/fpscrape/internal/scrape"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateScraping
	StateComplete
	StateError
)

// maxLogs is how many log lines stay on screen.
const maxLogs = 10

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   scrape.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	manager *scrape.Manager
	events  chan scrape.ProgressEvent
	stats   scrape.Progress

	// Result of the last run
	categories int
	written    bool
	elapsed    time.Duration

	// Options
	verbose bool
	resize  bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "players.csv"
	ti.SetValue(settings.OutputPath)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		resize:    settings.PhotoResize,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg carries one event emitted by the scrape manager.
	ProgressMsg struct {
		Event scrape.ProgressEvent
	}

	// ScrapeDoneMsg is sent when the run and the export are finished.
	ScrapeDoneMsg struct {
		Categories int
		Written    bool
		Elapsed    time.Duration
		Err        error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateScraping {
				m.cancel()
			}

		case "enter":
			if m.state == StateInput {
				m.state = StateScraping
				m.startedRun()
				return m, tea.Batch(m.startScrape(), m.waitForEvent(), m.tickProgress(), m.spinner.Tick)
			}

		case "ctrl+v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "ctrl+r":
			if m.state == StateInput {
				m.resize = !m.resize
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "n":
			if m.state == StateComplete || m.state == StateError {
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.manager = nil
				m.stats = scrape.Progress{}
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.Focus()
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, m.waitForEvent())
		if msg.Event.Level == scrape.LevelVerbose && !m.verbose {
			break
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}

	case ScrapeDoneMsg:
		if m.manager != nil {
			m.stats = m.manager.Progress()
		}
		m.categories = msg.Categories
		m.written = msg.Written
		m.elapsed = msg.Elapsed
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateScraping {
			m.stats = m.manager.Progress()
			cmds = append(cmds, m.progress.SetPercent(percent(m.stats)), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// startedRun applies the options and creates the manager for a new run.
func (m *Model) startedRun() {
	if out := strings.TrimSpace(m.textInput.Value()); out != "" {
		m.settings.OutputPath = out
	}
	m.settings.PhotoResize = m.resize
	m.textInput.Blur()

	events := make(chan scrape.ProgressEvent, 64)
	m.events = events
	m.manager = scrape.NewManager(m.settings, func(event scrape.ProgressEvent) {
		select {
		case events <- event:
		default:
			// The UI fell behind; drop the event rather than stall a worker.
		}
	})
}

// startScrape runs the pipeline and the export in the background.
func (m Model) startScrape() tea.Cmd {
	manager, ctx, settings, events := m.manager, m.ctx, m.settings, m.events
	return func() tea.Msg {
		// Every callback has returned once Run and Export are done.
		defer close(events)

		start := time.Now()
		results := manager.Run(ctx, settings.CategoryURLs)
		if ctx.Err() != nil {
			return ScrapeDoneMsg{Elapsed: time.Since(start)}
		}

		written, err := manager.Export(settings.OutputPath, results)
		return ScrapeDoneMsg{
			Categories: len(results),
			Written:    written,
			Elapsed:    time.Since(start),
			Err:        err,
		}
	}
}

// waitForEvent returns a command delivering the next manager event.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

func percent(p scrape.Progress) float64 {
	if p.CategoriesTotal == 0 {
		return 0
	}
	return float64(p.CategoriesDone) / float64(p.CategoriesTotal)
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🏈 FantasyPros Player Scraper"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Names, colleges, ranks and photos for every position"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateScraping:
		b.WriteString(m.viewScraping())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Output file:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+v)\n", checkbox(m.verbose)))
	b.WriteString(fmt.Sprintf("  %s Resize photos to %dpx (ctrl+r)\n", checkbox(m.resize), m.settings.PhotoMaxSize))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d categories, photos in %s/", len(m.settings.CategoryURLs), m.settings.ImagesPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewScraping() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Scraping players..."))
	b.WriteString("\n\n")

	b.WriteString(m.progress.ViewAs(percent(m.stats)))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Categories: %d/%d | Players: %d | Photos: %d (%.2f MB)",
		m.stats.CategoriesDone,
		m.stats.CategoriesTotal,
		m.stats.Players,
		m.stats.Photos,
		float64(m.stats.BytesReceived)/1024/1024,
	)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	output := m.settings.OutputPath
	if !m.written {
		output = "(nothing collected, no file written)"
	}

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Scrape Complete!\n\n"+
			"Categories: %d\n"+
			"Players: %d\n"+
			"Photos: %d\n"+
			"Output: %s\n"+
			"Time: %s",
		m.categories,
		m.stats.Players,
		m.stats.Photos,
		output,
		m.elapsed.Round(time.Millisecond),
	))
	b.WriteString(box)
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case scrape.LevelError:
			style = errorStyle
			prefix = "✗"
		case scrape.LevelWarning:
			style = warningStyle
			prefix = "!"
		case scrape.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case scrape.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • ctrl+v: verbose • ctrl+r: resize photos • esc: quit"
	case StateScraping:
		return "esc: cancel"
	case StateComplete, StateError:
		return "n: new run • q: quit"
	}
	return ""
}

func checkbox(on bool) string {
	if on {
		return "[×]"
	}
	return "[ ]"
}

// Run starts the TUI application.
func Run() error {
	settings, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
