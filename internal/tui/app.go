// Package tui renders the client screens: login, menu, game, win, and
// profile. Network work runs in tea commands so the update loop never
// blocks on the service.
package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	env "github.com/muesli/termenv"

	"svw.info/slide/internal/domain"
	"svw.info/slide/internal/usecase"
)

type screen int

const (
	screenLogin screen = iota
	screenMenu
	screenGame
	screenWon
	screenProfile
)

const requestTimeout = 10 * time.Second

// Model is the root bubbletea model.
type Model struct {
	svc  *usecase.Service
	log  *slog.Logger
	keys KeyMap

	screen        screen
	width, height int

	login   loginModel
	menu    menuModel
	game    gameModel
	profile profileModel

	settings domain.Settings
	seed     int64 // fixed generation seed; 0 means time-based
	errText  string

	output     *env.Output
	originalBg env.Color
}

func New(svc *usecase.Service, log *slog.Logger, settings domain.Settings, seed int64) Model {
	return Model{
		svc:        svc,
		log:        log,
		keys:       Keys,
		screen:     screenLogin,
		login:      newLoginModel(settings.Username),
		menu:       newMenuModel(settings.Difficulty),
		settings:   settings,
		seed:       seed,
		output:     env.DefaultOutput(),
		originalBg: env.BackgroundColor(),
	}
}

// Messages produced by commands.

type errMsg struct{ err error }

type loggedInMsg struct{ creds domain.Credentials }

type gameStartedMsg struct{ snap *domain.Snapshot }

type gameFinishedMsg struct{}

type gameFinishFailedMsg struct{ err error }

type hintMsg struct {
	index int
	ok    bool
}

type profileMsg struct {
	profile domain.Profile
	tasks   []domain.Task
}

type profileSavedMsg struct{ profile domain.Profile }

type savedGamesMsg struct{ saved []domain.SnapshotMeta }

type setBackgroundColorMsg struct{ color env.Color }

func setBackgroundColor(c env.Color) tea.Cmd {
	return func() tea.Msg { return setBackgroundColorMsg{color: c} }
}

func (m Model) Init() tea.Cmd {
	return setBackgroundColor(env.RGBColor("#1e1e1e"))
}

// Commands.

func (m Model) loginCmd(username, password string, register bool) tea.Cmd {
	svc, log := m.svc, m.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		var (
			creds domain.Credentials
			err   error
		)
		if register {
			creds, err = svc.Register(ctx, username, password)
		} else {
			creds, err = svc.Login(ctx, username, password)
		}
		if err != nil {
			log.Warn("auth failed", "user", username, "err", err)
			return errMsg{err}
		}
		return loggedInMsg{creds}
	}
}

func (m Model) startGameCmd(diff domain.Difficulty) tea.Cmd {
	svc, log := m.svc, m.log
	seed := m.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		snap, err := svc.StartGame(ctx, seed, diff)
		if err != nil {
			log.Warn("start game failed", "difficulty", diff.String(), "err", err)
			return errMsg{err}
		}
		log.Info("game started", "session", snap.SessionID, "grid", snap.Puzzle.GridSize)
		return gameStartedMsg{snap}
	}
}

func (m Model) resumeGameCmd(sessionID string) tea.Cmd {
	svc, log := m.svc, m.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		snap, err := svc.Resume(ctx, sessionID)
		if err != nil {
			log.Warn("resume failed", "session", sessionID, "err", err)
			return errMsg{err}
		}
		return gameStartedMsg{snap}
	}
}

func (m Model) finishGameCmd(snap *domain.Snapshot) tea.Cmd {
	svc, log := m.svc, m.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := svc.FinishGame(ctx, snap); err != nil {
			log.Warn("completion report failed", "session", snap.SessionID, "err", err)
			return gameFinishFailedMsg{err}
		}
		log.Info("game finished", "session", snap.SessionID, "moves", snap.Moves)
		return gameFinishedMsg{}
	}
}

func (m Model) hintCmd(b domain.Board) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		idx, ok, err := svc.Hint(ctx, b)
		if err != nil {
			return hintMsg{ok: false}
		}
		return hintMsg{index: idx, ok: ok}
	}
}

func (m Model) profileCmd() tea.Cmd {
	svc, log := m.svc, m.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		p, err := svc.Profile(ctx)
		if err != nil {
			log.Warn("profile fetch failed", "err", err)
			return errMsg{err}
		}
		tasks, err := svc.Tasks(ctx)
		if err != nil {
			log.Warn("task fetch failed", "err", err)
			return errMsg{err}
		}
		return profileMsg{profile: p, tasks: tasks}
	}
}

func (m Model) saveProfileCmd(p domain.Profile) tea.Cmd {
	svc, log := m.svc, m.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		stored, err := svc.UpdateProfile(ctx, p)
		if err != nil {
			log.Warn("profile update failed", "err", err)
			return errMsg{err}
		}
		return profileSavedMsg{stored}
	}
}

func (m Model) listSavedCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		saved, err := svc.SavedGames(ctx)
		if err != nil {
			return savedGamesMsg{}
		}
		return savedGamesMsg{saved}
	}
}

func (m Model) saveSettingsCmd() tea.Cmd {
	svc, set := m.svc, m.settings
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_ = svc.SaveSettings(ctx, set)
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case setBackgroundColorMsg:
		m.output.SetBackgroundColor(msg.color)
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case errMsg:
		m.errText = msg.err.Error()
		if m.screen == screenLogin {
			m.login.busy = false
		}
		return m, nil

	case loggedInMsg:
		m.errText = ""
		m.settings.Username = msg.creds.Username
		m.screen = screenMenu
		return m, tea.Batch(m.saveSettingsCmd(), m.listSavedCmd())

	case savedGamesMsg:
		m.menu.setSaved(msg.saved)
		return m, nil

	case gameStartedMsg:
		m.errText = ""
		m.game = newGameModel(msg.snap)
		m.settings.Difficulty = msg.snap.Puzzle.Difficulty
		m.screen = screenGame
		return m, m.saveSettingsCmd()

	case gameFinishedMsg:
		m.game.reported = true
		m.game.reportFailed = false
		return m, nil

	case gameFinishFailedMsg:
		m.game.reportFailed = true
		m.errText = msg.err.Error()
		return m, nil

	case hintMsg:
		if msg.ok {
			m.game.hint = msg.index
		}
		return m, nil

	case profileMsg:
		m.errText = ""
		m.profile = newProfileModel(msg.profile, msg.tasks)
		m.screen = screenProfile
		return m, nil

	case profileSavedMsg:
		m.profile.apply(msg.profile)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	// Forward everything else (cursor blink ticks) to whichever text
	// input is active.
	switch {
	case m.screen == screenLogin:
		var cmd tea.Cmd
		m.login, cmd = m.login.update(msg)
		return m, cmd
	case m.screen == screenProfile && m.profile.editing:
		var cmd tea.Cmd
		m.profile.name, cmd = m.profile.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenGame, screenWon:
		return m.updateGame(msg)
	case screenProfile:
		return m.updateProfile(msg)
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	return m, tea.Sequence(setBackgroundColor(m.originalBg), tea.Quit)
}

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenLogin:
		body = m.login.view()
	case screenMenu:
		body = m.menu.view()
	case screenGame, screenWon:
		body = m.game.view(m.screen == screenWon)
	case screenProfile:
		body = m.profile.view()
	}
	if m.errText != "" {
		body = lipgloss.JoinVertical(lipgloss.Center, body, errStyle.Render(m.errText))
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
