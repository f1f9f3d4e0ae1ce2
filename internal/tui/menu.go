package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"svw.info/slide/internal/domain"
)

type menuEntry struct {
	label   string
	diff    domain.Difficulty
	session string // non-empty for resume entries
	action  string // "play", "resume", "profile", "quit"
}

type menuModel struct {
	entries  []menuEntry
	selected int
}

func newMenuModel(preferred domain.Difficulty) menuModel {
	m := menuModel{entries: baseEntries()}
	for i, e := range m.entries {
		if e.action == "play" && e.diff == preferred {
			m.selected = i
			break
		}
	}
	return m
}

func baseEntries() []menuEntry {
	return []menuEntry{
		{label: "Easy (3×3)", diff: domain.Easy, action: "play"},
		{label: "Medium (4×4)", diff: domain.Medium, action: "play"},
		{label: "Hard (4×4)", diff: domain.Hard, action: "play"},
		{label: "Expert (5×5)", diff: domain.Expert, action: "play"},
		{label: "Profile", action: "profile"},
		{label: "Quit", action: "quit"},
	}
}

// setSaved rebuilds the menu with resume entries on top.
func (mm *menuModel) setSaved(saved []domain.SnapshotMeta) {
	entries := make([]menuEntry, 0, len(saved)+6)
	for _, s := range saved {
		started := time.UnixMilli(s.StartedAt).Format("Jan 2 15:04")
		entries = append(entries, menuEntry{
			label:   fmt.Sprintf("Resume %s (%d moves, %s)", s.Difficulty.String(), s.Moves, started),
			session: s.SessionID,
			action:  "resume",
		})
	}
	entries = append(entries, baseEntries()...)
	mm.entries = entries
	if mm.selected >= len(entries) {
		mm.selected = 0
	}
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		n := len(m.menu.entries)
		m.menu.selected = (m.menu.selected - 1 + n) % n
	case key.Matches(msg, m.keys.Down):
		m.menu.selected = (m.menu.selected + 1) % len(m.menu.entries)
	case key.Matches(msg, m.keys.Profile):
		return m, m.profileCmd()
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Select):
		e := m.menu.entries[m.menu.selected]
		switch e.action {
		case "play":
			return m, m.startGameCmd(e.diff)
		case "resume":
			return m, m.resumeGameCmd(e.session)
		case "profile":
			return m, m.profileCmd()
		case "quit":
			return m.quit()
		}
	}
	return m, nil
}

func (mm menuModel) view() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Slide") + "\n\n")
	for i, e := range mm.entries {
		if i == mm.selected {
			s.WriteString("> " + e.label + "\n")
		} else {
			s.WriteString("  " + e.label + "\n")
		}
	}
	s.WriteString("\n" + infoStyle.Render("↑/↓: choose · enter: select · q: quit"))
	return boxStyle.Render(s.String())
}
