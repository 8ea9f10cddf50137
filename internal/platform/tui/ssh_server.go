package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/showcase/internal/core"
	"github.com/vovakirdan/showcase/internal/registry"
	"github.com/vovakirdan/showcase/internal/storage"
)

// DefaultHostKeyPath is used when SSHServerConfig.HostKeyPath is empty.
// Wish generates the key there on first start.
const DefaultHostKeyPath = "~/.showcase/host_key"

// SSHServerConfig configures the showcase SSH server.
type SSHServerConfig struct {
	Address     string // host:port
	HostKeyPath string
	DBPath      string // shared by every session
	IdleTimeout time.Duration
	TickRate    int
	MaxSessions int // 0 means no limit
}

// DefaultSSHServerConfig listens on :23234 with the default key and database.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		HostKeyPath: DefaultHostKeyPath,
		DBPath:      storage.DefaultPath,
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
		MaxSessions: 32,
	}
}

type sessionIDKey struct{}

// SSHServer serves the widget menu to every SSH connection.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int32
}

// NewSSHServer prepares the server. The scores database is optional: if it
// cannot be opened the server runs without scores.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	}
	s := &SSHServer{config: cfg, logger: logger.WithPrefix("ssh")}

	keyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	if s.store, err = storage.Open(cfg.DBPath); err != nil {
		s.logger.Warn("scores disabled", "error", err)
		s.store = nil
	}

	// Wish runs the last middleware first.
	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			s.limitSessions,
			s.trackSession,
		),
	)
	if err != nil {
		s.store.Close()
		return nil, fmt.Errorf("ssh: new server: %w", err)
	}
	return s, nil
}

// resolveHostKey expands the key path and makes sure its directory exists.
func resolveHostKey(p string) (string, error) {
	if p == "" {
		p = DefaultHostKeyPath
	}
	path, err := storage.ExpandPath(p)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("ssh: host key directory: %w", err)
	}
	return path, nil
}

// trackSession tags the session with an id and logs its lifetime.
func (s *SSHServer) trackSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		id := uuid.NewString()
		sess.Context().SetValue(sessionIDKey{}, id)

		n := s.active.Add(1)
		start := time.Now()
		logger := s.logger.With("session", id, "user", sess.User())
		logger.Info("connected", "remote", sess.RemoteAddr().String(), "active", n)

		next(sess)

		n = s.active.Add(-1)
		logger.Info("disconnected", "duration", time.Since(start).Round(time.Second), "active", n)
	}
}

// limitSessions turns connections away once MaxSessions are running.
func (s *SSHServer) limitSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		if limit := s.config.MaxSessions; limit > 0 && int(s.active.Load()) > limit {
			s.logger.Warn("session refused, server full", "user", sess.User(), "limit", limit)
			wish.Fatalln(sess, "The showcase is full right now. Try again in a minute.")
			return
		}
		next(sess)
	}
}

// teaHandler builds the session model for one connection.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		wish.Fatalln(sess, "The showcase needs a terminal. Connect with ssh -t.")
		return nil, nil
	}

	theme := core.ThemeLight
	if bubbletea.MakeRenderer(sess).HasDarkBackground() {
		theme = core.ThemeDark
	}

	id, _ := sess.Context().Value(sessionIDKey{}).(string)
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
		Theme:    theme,
	}
	model := NewSessionModel(s.store, cfg, s.logger.With("session", id))
	return model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}
}

// ListenAndServe serves until ctx is done or the listener fails, then shuts
// the server down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("listening", "address", s.config.Address, "max_sessions", s.config.MaxSessions)

	errc := make(chan error, 1)
	go func() { errc <- s.server.ListenAndServe() }()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			err = nil
		}
		s.store.Close()
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "active", s.active.Load())
	return s.Shutdown()
}

// Shutdown waits up to ten seconds for sessions to end, then closes the
// scores database.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if cerr := s.store.Close(); err == nil {
		err = cerr
	}
	return err
}

// ActiveSessions returns the number of connected sessions.
func (s *SSHServer) ActiveSessions() int {
	return int(s.active.Load())
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type sessionState int

const (
	stateMenu sessionState = iota
	stateMergeSize
	stateWidget
	stateScores
)

// boardSizer is implemented by widgets with a selectable board size.
type boardSizer interface {
	SetBoardSize(n int)
}

// SessionModel is the root model of an SSH session. It moves between the
// menu, the merge size picker, the scoreboard and a mounted widget.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	logger   *log.Logger
	state    sessionState
	menu     MenuModel
	sizes    MergeSizeModel
	scores   ScoreboardModel
	widget   *Model
	quitting bool
}

// NewSessionModel opens on the menu. A nil logger uses the default one.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	return SessionModel{
		store:  store,
		config: cfg,
		logger: logger,
		menu:   NewMenuModel(store, cfg),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes msg to whichever screen is active.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Remember the size so the next screen opens at it
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateWidget:
		return m.updateWidget(msg)
	case stateMergeSize:
		return m.updateMergeSize(msg)
	case stateScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.state = stateScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		id := m.menu.Selected().GameID
		if id == "merge" {
			m.sizes = NewMergeSizeModel(m.config.ScreenW, m.config.ScreenH)
			m.state = stateMergeSize
			return m, m.sizes.Init()
		}
		return m.mount(id, 0)
	}

	return m, cmd
}

func (m SessionModel) updateMergeSize(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.sizes.Update(msg)
	if sizes, ok := next.(MergeSizeModel); ok {
		m.sizes = sizes
	}

	switch {
	case m.sizes.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.sizes.WantsBack():
		return m.backToMenu()
	case m.sizes.Selected() > 0:
		return m.mount("merge", m.sizes.Selected())
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

// mount creates the widget and hands the terminal to it.
func (m SessionModel) mount(id string, size int) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		m.logger.Error("cannot create widget", "widget", id, "error", err)
		return m.backToMenu()
	}
	if sizer, ok := game.(boardSizer); ok && size > 0 {
		sizer.SetBoardSize(size)
	}

	cfg := m.config
	cfg.Seed = time.Now().UnixNano()
	widget := NewModel(game, m.store, cfg).Embedded().Remote().WithLogger(m.logger)
	m.widget = &widget
	m.state = stateWidget
	m.logger.Info("widget started", "widget", id)
	return m, m.widget.Init()
}

func (m SessionModel) updateWidget(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.widget.Update(msg)
	if widget, ok := next.(Model); ok {
		m.widget = &widget
	}

	if m.widget.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.widget.BackToMenu() {
		m.widget = nil
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.state = stateMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateWidget:
		if m.widget != nil {
			return m.widget.View()
		}
	case stateMergeSize:
		return m.sizes.View()
	case stateScores:
		return m.scores.View()
	}
	return m.menu.View()
}
