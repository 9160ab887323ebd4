// Package tui provides a Bubble Tea terminal user interface for clipshelf.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ljosdal/clipshelf/internal/config"
	"github.com/ljosdal/clipshelf/internal/importer"
	"github.com/ljosdal/clipshelf/internal/library"
	"github.com/ljosdal/clipshelf/internal/model"
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

	clipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateMenu State = iota
	StateBrowse
	StateAddFile
	StateAddBlock
	StateImporting
	StateExportCount
	StateExporting
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   importer.ProgressLevel
}

// logSink collects progress events from the manager goroutine so the
// update loop can drain them on its own schedule.
type logSink struct {
	mu      sync.Mutex
	entries []LogEntry
}

func (s *logSink) add(event importer.ProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, LogEntry{Message: event.Message, Level: event.Level})
}

func (s *logSink) drain() []LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.entries
	s.entries = nil
	return entries
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	textArea  textarea.Model
	spinner   spinner.Model
	settings  *config.Settings
	store     *library.Store
	manager   *importer.Manager
	sink      *logSink
	logs      []LogEntry
	clips     []model.Clip
	err       error

	// Pending add: source path entered in StateAddFile, carried into
	// StateAddBlock.
	srcPath string

	// Result of the last import or export.
	addedClip  *model.Clip
	exportPath string

	verbose bool

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() (Model, error) {
	settings, err := config.Load(config.DefaultPath())
	if err != nil {
		return Model{}, err
	}

	store := library.NewStore(settings.LibraryFile)
	if err := store.Load(); err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "/path/to/clip.mp3"
	ti.CharLimit = 500
	ti.Width = 60

	ta := textarea.New()
	ta.Placeholder = "Ocean Waves by Jane Doe | https://example.com/jane\nCC-BY 4.0"
	ta.SetWidth(70)
	ta.SetHeight(5)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	sink := &logSink{}
	manager := importer.NewManager(settings, store, sink.add)

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateMenu,
		textInput: ti,
		textArea:  ta,
		spinner:   sp,
		settings:  settings,
		store:     store,
		manager:   manager,
		sink:      sink,
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// ImportDoneMsg is sent when a clip import finishes.
	ImportDoneMsg struct {
		Clip *model.Clip
		Err  error
	}

	// ExportDoneMsg is sent when a mix export finishes.
	ExportDoneMsg struct {
		Path string
		Err  error
	}

	// TickMsg drains pending progress events into the log view.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case TickMsg:
		for _, entry := range m.sink.drain() {
			if entry.Level == importer.LevelVerbose && !m.verbose {
				continue
			}
			m.logs = append(m.logs, entry)
		}
		// Keep only last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}
		if m.state == StateImporting || m.state == StateExporting {
			cmds = append(cmds, m.tickLogs())
		}

	case ImportDoneMsg:
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.addedClip = msg.Clip
			m.state = StateComplete
		}
		m.logs = append(m.logs, drainAll(m.sink, m.verbose)...)

	case ExportDoneMsg:
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.exportPath = msg.Path
			m.state = StateComplete
		}
		m.logs = append(m.logs, drainAll(m.sink, m.verbose)...)
	}

	// Update the focused input component
	switch m.state {
	case StateAddFile, StateExportCount:
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	case StateAddBlock:
		var cmd tea.Cmd
		m.textArea, cmd = m.textArea.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes key presses. The third return value reports
// whether the key was consumed.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit, true

	case "esc":
		switch m.state {
		case StateMenu:
			return m, tea.Quit, true
		case StateImporting, StateExporting:
			m.cancel()
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
			return m, nil, true
		default:
			m.reset()
			return m, nil, true
		}

	case "enter":
		switch m.state {
		case StateAddFile:
			if m.textInput.Value() != "" {
				m.srcPath = m.textInput.Value()
				m.state = StateAddBlock
				m.textArea.Reset()
				m.textArea.Focus()
				return m, textarea.Blink, true
			}
		case StateExportCount:
			n, err := strconv.Atoi(strings.TrimSpace(m.textInput.Value()))
			if err != nil || n < 1 {
				return m, nil, true
			}
			m.state = StateExporting
			return m, tea.Batch(m.startRandomMix(n), m.spinner.Tick, m.tickLogs()), true
		}

	case "ctrl+d":
		if m.state == StateAddBlock && m.textArea.Value() != "" {
			m.state = StateImporting
			return m, tea.Batch(m.startImport(), m.spinner.Tick, m.tickLogs()), true
		}
	}

	if m.state == StateMenu || m.state == StateBrowse || m.state == StateComplete || m.state == StateError {
		switch msg.String() {
		case "a":
			m.reset()
			m.state = StateAddFile
			m.textInput.Placeholder = "/path/to/clip.mp3"
			m.textInput.SetValue("")
			m.textInput.Focus()
			return m, textinput.Blink, true

		case "b":
			m.reset()
			m.state = StateBrowse
			m.clips = m.store.All()
			return m, nil, true

		case "x":
			m.reset()
			m.state = StateExportCount
			m.textInput.Placeholder = "number of clips"
			m.textInput.SetValue("")
			m.textInput.Focus()
			return m, textinput.Blink, true

		case "v":
			m.verbose = !m.verbose
			return m, nil, true

		case "q":
			return m, tea.Quit, true

		case "m":
			m.reset()
			return m, nil, true
		}
	}

	return m, nil, false
}

// reset returns the model to the menu, clearing transient state.
func (m *Model) reset() {
	m.state = StateMenu
	m.logs = nil
	m.err = nil
	m.srcPath = ""
	m.addedClip = nil
	m.exportPath = ""
	m.textInput.Blur()
	m.textArea.Blur()
	m.ctx, m.cancel = context.WithCancel(context.Background())
}

// tickLogs returns a command to drain progress events periodically.
func (m Model) tickLogs() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// drainAll empties the sink, applying the verbose filter.
func drainAll(sink *logSink, verbose bool) []LogEntry {
	var entries []LogEntry
	for _, entry := range sink.drain() {
		if entry.Level == importer.LevelVerbose && !verbose {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎵 ClipShelf"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Organize your audio clip library"))
	b.WriteString("\n\n")

	switch m.state {
	case StateMenu:
		b.WriteString(m.viewMenu())
	case StateBrowse:
		b.WriteString(m.viewBrowse())
	case StateAddFile:
		b.WriteString(m.viewAddFile())
	case StateAddBlock:
		b.WriteString(m.viewAddBlock())
	case StateImporting:
		b.WriteString(m.viewWorking("Importing clip..."))
	case StateExportCount:
		b.WriteString(m.viewExportCount())
	case StateExporting:
		b.WriteString(m.viewWorking("Exporting mix..."))
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewMenu() string {
	var b strings.Builder

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render(fmt.Sprintf("Library: %d clips", m.store.Len())))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Clips in: %s", m.settings.LibraryDir)))
	b.WriteString("\n\n")
	b.WriteString("  (a) Add a clip\n")
	b.WriteString("  (b) Browse library\n")
	b.WriteString("  (x) Export random mix\n")
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", verboseCheck))

	return b.String()
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	if len(m.clips) == 0 {
		b.WriteString(dimStyle.Render("The library is empty. Press 'a' to add a clip."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d clips:", len(m.clips))))
	b.WriteString("\n")
	for i := range m.clips {
		clip := &m.clips[i]
		b.WriteString(clipStyle.Render(fmt.Sprintf("  ♪ %02d  %s - %s", clip.Index, clip.Artist, clip.SongName)))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %s  %s", clip.Duration, clip.FileSize)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewAddFile() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Path to the audio file:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewAddBlock() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Paste the attribution block:"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("File: %s", m.srcPath)))
	b.WriteString("\n\n")
	b.WriteString(m.textArea.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewExportCount() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("How many clips in the mix?"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewWorking(message string) string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(message))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	switch {
	case m.addedClip != nil:
		box := boxStyle.Render(fmt.Sprintf(
			"✨ Clip added!\n\n"+
				"%s - %s\n"+
				"Duration: %s\n"+
				"Size: %s",
			m.addedClip.Artist,
			m.addedClip.SongName,
			m.addedClip.Duration,
			m.addedClip.FileSize,
		))
		b.WriteString(box)
	case m.exportPath != "":
		box := boxStyle.Render(fmt.Sprintf(
			"✨ Mix exported!\n\n%s",
			m.exportPath,
		))
		b.WriteString(box)
	}
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
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case importer.LevelError:
			style = errorStyle
			prefix = "✗"
		case importer.LevelWarning:
			style = warningStyle
			prefix = "!"
		case importer.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case importer.LevelInfo:
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
	case StateMenu:
		return "a: add • b: browse • x: mix • v: verbose • esc: quit"
	case StateBrowse:
		return "a: add • x: mix • m: menu • q: quit"
	case StateAddFile, StateExportCount:
		return "enter: continue • esc: back"
	case StateAddBlock:
		return "ctrl+d: import • esc: back"
	case StateImporting, StateExporting:
		return "esc: cancel"
	case StateComplete, StateError:
		return "a: add another • b: browse • m: menu • q: quit"
	}
	return ""
}

// startImport runs the clip import in the background.
func (m *Model) startImport() tea.Cmd {
	ctx := m.ctx
	manager := m.manager
	block := m.textArea.Value()
	srcPath := m.srcPath

	return func() tea.Msg {
		clip, err := manager.ImportClip(ctx, block, srcPath, "")
		return ImportDoneMsg{Clip: clip, Err: err}
	}
}

// startRandomMix runs the random mix export in the background.
func (m *Model) startRandomMix(n int) tea.Cmd {
	ctx := m.ctx
	manager := m.manager

	return func() tea.Msg {
		name := fmt.Sprintf("mix %s", time.Now().Format("2006-01-02 150405"))
		path, err := manager.RandomMix(ctx, n, name)
		return ExportDoneMsg{Path: path, Err: err}
	}
}

// Run starts the TUI application.
func Run() error {
	m, err := NewModel()
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
