package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"svw.info/slide/internal/domain"
)

// gameModel is the board screen. The cursor is a linear cell index on the
// snapshot's board; selecting a cell asks the engine to slide it.
type gameModel struct {
	snap         *domain.Snapshot
	cursor       int
	hint         int // highlighted hint cell, -1 when none
	solvedAt     time.Time
	reported     bool
	reportFailed bool
}

func newGameModel(snap *domain.Snapshot) gameModel {
	return gameModel{snap: snap, hint: -1}
}

func (m Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screen == screenWon {
		switch {
		case key.Matches(msg, m.keys.Retry) && m.game.reportFailed:
			m.game.reportFailed = false
			m.errText = ""
			return m, m.finishGameCmd(m.game.snap)
		case key.Matches(msg, m.keys.Menu), key.Matches(msg, m.keys.Select):
			m.screen = screenMenu
			return m, m.listSavedCmd()
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		}
		return m, nil
	}

	g := &m.game
	size := g.snap.Puzzle.Board.Size
	switch {
	case key.Matches(msg, m.keys.Up):
		if g.cursor >= size {
			g.cursor -= size
		}
	case key.Matches(msg, m.keys.Down):
		if g.cursor < size*(size-1) {
			g.cursor += size
		}
	case key.Matches(msg, m.keys.Left):
		if g.cursor%size > 0 {
			g.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if g.cursor%size < size-1 {
			g.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		moved, solved, err := m.svc.Move(context.Background(), g.snap, g.cursor)
		if err != nil {
			m.log.Warn("snapshot save failed", "session", g.snap.SessionID, "err", err)
		}
		if moved {
			g.hint = -1
		}
		if solved {
			g.solvedAt = time.Now()
			m.screen = screenWon
			return m, m.finishGameCmd(g.snap)
		}
	case key.Matches(msg, m.keys.Hint):
		return m, m.hintCmd(g.snap.Puzzle.Board)
	case key.Matches(msg, m.keys.Menu):
		m.screen = screenMenu
		return m, m.listSavedCmd()
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}
	return m, nil
}

func (g gameModel) view(won bool) string {
	if won {
		return g.winView()
	}
	b := g.snap.Puzzle.Board
	rows := make([]string, 0, b.Size)
	for r := 0; r < b.Size; r++ {
		cells := make([]string, 0, b.Size)
		for c := 0; c < b.Size; c++ {
			i := r*b.Size + c
			cells = append(cells, g.renderCell(i, b.Cells[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, cells...))
	}
	board := lipgloss.JoinVertical(lipgloss.Center, rows...)

	info := infoStyle.Render(fmt.Sprintf(
		"%s · %d moves · enter: slide · ?: hint · m: menu",
		g.snap.Puzzle.Difficulty.String(), g.snap.Moves,
	))
	return lipgloss.JoinVertical(lipgloss.Center, titleStyle.Render("Slide"), board, info)
}

func (g gameModel) renderCell(i int, t domain.Tile) string {
	label := "  "
	if t != domain.Empty {
		label = fmt.Sprintf("%2d", t)
	}
	switch {
	case i == g.cursor:
		return cursorTileStyle.Render(label)
	case i == g.hint:
		return hintTileStyle.Render(label)
	case t == domain.Empty:
		return emptyTileStyle.Render(label)
	default:
		return tileStyle.Render(label)
	}
}

func (g gameModel) winView() string {
	elapsed := time.Duration(g.solvedAt.UnixMilli()-g.snap.StartedAt) * time.Millisecond
	status := infoStyle.Render("reporting result...")
	keysLine := "enter: menu · q: quit"
	switch {
	case g.reported:
		status = infoStyle.Render("result saved")
	case g.reportFailed:
		status = errStyle.Render("report failed")
		keysLine = "r: retry · enter: menu · q: quit"
	}
	var s strings.Builder
	s.WriteString(titleStyle.Render("Solved!") + "\n\n")
	s.WriteString(wonStyle.Render(fmt.Sprintf("%d moves in %02d:%02d",
		g.snap.Moves, int(elapsed.Minutes()), int(elapsed.Seconds())%60)) + "\n\n")
	s.WriteString(status + "\n")
	s.WriteString(infoStyle.Render(keysLine))
	return boxStyle.Render(s.String())
}
