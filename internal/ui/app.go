package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/wolfy/internal/history"
	"github.com/five82/wolfy/internal/prefs"
	"github.com/five82/wolfy/internal/wolfram"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    wolfram.Querier
	Store     *history.Store
	ThemeName string
	Endpoint  string
	PrefsPath string
	Units     wolfram.Units
	Timeout   int    // seconds, forwarded to the API
	ImageDir  string // where simple results are saved; defaults to the OS temp dir
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    wolfram.Querier
	store     *history.Store
	prefsPath string
	settings  querySettings

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	endpoint Endpoint
	width    int
	height   int
	ready    bool
	showHelp bool

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	// Query state
	pending      bool
	pendingInput string
	snapshot     history.Snapshot
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	store := opts.Store
	if store == nil {
		store = history.NewStore(history.DefaultLimit)
	}

	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "Ask Wolfram|Alpha anything"
	input.CharLimit = 500
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:       ctx,
		client:    opts.Client,
		store:     store,
		prefsPath: prefsPath,
		settings: querySettings{
			units:    opts.Units,
			timeout:  opts.Timeout,
			imageDir: opts.ImageDir,
		},
		theme:    GetTheme(themeName),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		endpoint: ParseEndpoint(opts.Endpoint),
		input:    input,
		spinner:  sp,
		snapshot: store.Snapshot(),
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		m.refreshViewport()
		return m, nil

	case queryResultMsg:
		m.pending = false
		m.pendingInput = ""
		m.store.Add(msg.entry)
		m.snapshot = m.store.Snapshot()
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input. Keys without a binding go to the
// query input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.NextEndpoint):
		m.endpoint = m.endpoint.Next()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.PrevEndpoint):
		m.endpoint = m.endpoint.Prev()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.savePrefs()
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keys.ClearHistory):
		m.store.Clear()
		m.snapshot = m.store.Snapshot()
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keys.ClearInput):
		m.input.Reset()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts a query for the current input. Only one query runs at a time.
func (m Model) submit() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.input.Value())
	if query == "" || m.pending || m.client == nil {
		return m, nil
	}
	m.pending = true
	m.pendingInput = query
	m.input.Reset()
	return m, tea.Batch(
		m.spinner.Tick,
		runQuery(m.ctx, m.client, m.endpoint, query, m.settings),
	)
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Endpoint: string(m.endpoint)})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	return err
}
