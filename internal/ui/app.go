package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/bookshelf/internal/books"
	"github.com/five82/bookshelf/internal/prefs"
	"github.com/five82/bookshelf/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewBooks View = iota
	ViewActivity
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Page      *state.Page
	Logger    *slog.Logger
	Prefs     prefs.Prefs
	PrefsPath string
	LogPath   string
	PollTick  time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	page      *state.Page
	logger    *slog.Logger
	keys      keyMap
	prefs     prefs.Prefs
	prefsPath string
	logPath   string
	pollTick  time.Duration

	// Store change notifications
	changes     <-chan struct{}
	unsubscribe func()

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool
	status      string // last action, shown in the header

	// Data state
	snapshot    books.Snapshot
	lastUpdated time.Time

	// List state
	selectedRow  int
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string

	// Activity state
	activityViewport viewport.Model
	activity         activityState

	// Overlays
	showHelp bool
	modal    Modal
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	changes := make(chan struct{}, 1)
	unsubscribe := opts.Page.Store().Subscribe(func(books.Snapshot) {
		// Mutations come from Update itself, so never block here.
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	m := Model{
		ctx:         ctx,
		page:        opts.Page,
		logger:      logger,
		keys:        DefaultKeyMap(),
		prefs:       opts.Prefs,
		prefsPath:   prefsPath,
		logPath:     opts.LogPath,
		pollTick:    pollTick,
		changes:     changes,
		unsubscribe: unsubscribe,
		theme:       GetTheme(opts.Prefs.Theme),
		currentView: ViewBooks,
		filterInput: newFilterInput(),
		activity:    activityState{follow: true},
	}
	m.applySnapshot(opts.Page.Store().Snapshot())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.pollTick),
		fetchSnapshotCmd(m.page.Store()),
		waitForChangeCmd(m.ctx, m.changes),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initActivityViewport()
		}
		m.ready = true
		m.updateSelection(m.selectedID())
		m.updateActivityViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		if books.Snapshot(msg).Version != m.snapshot.Version {
			m.applySnapshot(books.Snapshot(msg))
		}
		return m, nil

	case storeChangedMsg:
		m.refresh()
		return m, waitForChangeCmd(m.ctx, m.changes)

	case activityMsg:
		m.handleActivity(msg)
		return m, nil

	case formSubmittedMsg:
		editing, _ := m.page.Selected()
		saved, ok := m.page.Save(msg.fields)
		m.refresh()
		if !ok {
			m.status = fmt.Sprintf("Book #%d no longer exists", editing.ID)
			return m, nil
		}
		m.status = fmt.Sprintf("Saved #%d %s", saved.ID, saved.Name)
		m.selectID(saved.ID)
		return m, nil

	case formCancelledMsg:
		m.page.Cancel()
		return m, nil

	case deleteConfirmedMsg:
		m.deleteBook(msg.id)
		return m, nil
	}

	// Cursor blinks and other internal messages go to whatever has focus.
	var cmd tea.Cmd
	switch {
	case m.modal != nil:
		m.modal, cmd, _ = m.modal.Update(msg, m.keys)
	case m.filterActive:
		m.filterInput, cmd = m.filterInput.Update(msg)
	}
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

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		next, cmd, done := m.modal.Update(msg, m.keys)
		if done {
			m.modal = nil
		} else {
			m.modal = next
		}
		return m, cmd
	}

	if m.filterActive {
		return m.handleFilterInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Activity):
		if m.currentView == ViewActivity {
			m.currentView = ViewBooks
			return m, nil
		}
		m.currentView = ViewActivity
		return m, m.refreshActivity() // Fetch immediately
	}

	switch m.currentView {
	case ViewActivity:
		return m.handleActivityKey(msg)
	default:
		return m.handleBooksKey(msg)
	}
}

// cycleTheme switches to the next theme and remembers it.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.prefs.Theme = m.theme.Name
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("theme not saved", "theme", m.theme.Name, "error", err)
		m.status = "Theme not saved"
		return
	}
	m.logger.Debug("theme changed", "theme", m.theme.Name)
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{fetchSnapshotCmd(m.page.Store())}

	if m.currentView == ViewActivity && m.activity.follow {
		cmds = append(cmds, m.refreshActivity())
	}

	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

// refresh re-reads the store after a mutation.
func (m *Model) refresh() {
	m.applySnapshot(m.page.Store().Snapshot())
}

func (m *Model) applySnapshot(s books.Snapshot) {
	selected := m.selectedID()
	m.snapshot = s
	m.lastUpdated = time.Now()
	m.updateSelection(selected)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	switch m.currentView {
	case ViewActivity:
		b.WriteString(m.renderActivity())
	default:
		b.WriteString(m.renderBooks())
	}

	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg books.Snapshot

type storeChangedMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *books.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// waitForChangeCmd yields storeChangedMsg on the next store mutation, or
// nil once ctx is done.
func waitForChangeCmd(ctx context.Context, changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-changes:
			return storeChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

// Run starts the Bubble Tea program and blocks until it exits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	defer m.unsubscribe()

	// Pending waitForChangeCmd goroutines end when Run returns.
	parent := m.ctx
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	m.ctx = ctx

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(parent))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && parent.Err() != nil {
		return nil
	}
	return err
}
