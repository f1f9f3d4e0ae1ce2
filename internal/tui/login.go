package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginModel is the username/password form. Tab cycles fields, enter
// submits, ctrl+r submits as a registration instead.
type loginModel struct {
	username textinput.Model
	password textinput.Model
	focus    int
	busy     bool
}

func newLoginModel(username string) loginModel {
	u := textinput.New()
	u.Placeholder = "username"
	u.CharLimit = 32
	u.SetValue(username)
	u.Focus()

	p := textinput.New()
	p.Placeholder = "password"
	p.CharLimit = 64
	p.EchoMode = textinput.EchoPassword

	return loginModel{username: u, password: p}
}

func (l loginModel) update(msg tea.Msg) (loginModel, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	l.username, cmd = l.username.Update(msg)
	cmds = append(cmds, cmd)
	l.password, cmd = l.password.Update(msg)
	cmds = append(cmds, cmd)
	return l, tea.Batch(cmds...)
}

func (l *loginModel) toggleFocus() {
	l.focus = (l.focus + 1) % 2
	if l.focus == 0 {
		l.username.Focus()
		l.password.Blur()
	} else {
		l.username.Blur()
		l.password.Focus()
	}
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.login.toggleFocus()
		return m, nil
	case "enter", "ctrl+r":
		if m.login.busy {
			return m, nil
		}
		user := strings.TrimSpace(m.login.username.Value())
		pass := m.login.password.Value()
		if user == "" || pass == "" {
			m.errText = "username and password are required"
			return m, nil
		}
		m.login.busy = true
		m.errText = ""
		return m, m.loginCmd(user, pass, msg.String() == "ctrl+r")
	case "ctrl+c":
		return m.quit()
	}
	var cmd tea.Cmd
	m.login, cmd = m.login.update(msg)
	return m, cmd
}

func (l loginModel) view() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Slide") + "\n\n")
	s.WriteString(l.username.View() + "\n")
	s.WriteString(l.password.View() + "\n\n")
	if l.busy {
		s.WriteString(infoStyle.Render("signing in..."))
	} else {
		s.WriteString(infoStyle.Render("enter: sign in · ctrl+r: register · ctrl+c: quit"))
	}
	return boxStyle.Render(s.String())
}
