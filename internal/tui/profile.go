package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"svw.info/slide/internal/domain"
)

// profileModel shows the account profile and task progression, with an
// editable display name.
type profileModel struct {
	profile domain.Profile
	tasks   []domain.Task
	name    textinput.Model
	editing bool
	saved   bool
}

func newProfileModel(p domain.Profile, tasks []domain.Task) profileModel {
	name := textinput.New()
	name.Placeholder = "display name"
	name.CharLimit = 48
	name.SetValue(p.DisplayName)
	return profileModel{profile: p, tasks: tasks, name: name}
}

func (p *profileModel) apply(stored domain.Profile) {
	p.profile = stored
	p.name.SetValue(stored.DisplayName)
	p.editing = false
	p.saved = true
}

func (m Model) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := &m.profile
	if p.editing {
		switch msg.String() {
		case "enter":
			edited := p.profile
			edited.DisplayName = strings.TrimSpace(p.name.Value())
			return m, m.saveProfileCmd(edited)
		case "esc":
			p.editing = false
			p.name.Blur()
			return m, nil
		case "ctrl+c":
			return m.quit()
		}
		var cmd tea.Cmd
		p.name, cmd = p.name.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "e":
		p.editing = true
		p.saved = false
		return m, p.name.Focus()
	case "m", "esc", "enter":
		m.screen = screenMenu
		return m, m.listSavedCmd()
	case "q", "ctrl+c":
		return m.quit()
	}
	return m, nil
}

func (p profileModel) view() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Profile") + "\n\n")
	s.WriteString(fmt.Sprintf("account  %s\n", p.profile.Username))
	if p.editing {
		s.WriteString("name     " + p.name.View() + "\n")
	} else {
		name := p.profile.DisplayName
		if name == "" {
			name = infoStyle.Render("(unset)")
		}
		s.WriteString(fmt.Sprintf("name     %s\n", name))
	}
	if p.profile.AvatarURL != "" {
		s.WriteString(fmt.Sprintf("avatar   %s\n", p.profile.AvatarURL))
	}

	if len(p.tasks) > 0 {
		s.WriteString("\n" + titleStyle.Render("Tasks") + "\n")
		for _, t := range p.tasks {
			mark := " "
			if t.Done {
				mark = "x"
			}
			s.WriteString(fmt.Sprintf("[%s] %s (%d/%d)\n", mark, t.Title, t.Count, t.Target))
		}
	}

	s.WriteString("\n")
	if p.editing {
		s.WriteString(infoStyle.Render("enter: save · esc: cancel"))
	} else {
		if p.saved {
			s.WriteString(wonStyle.Render("saved") + "\n")
		}
		s.WriteString(infoStyle.Render("e: edit name · m: back · q: quit"))
	}
	return boxStyle.Render(s.String())
}
