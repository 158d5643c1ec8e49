// Package model holds the Bubble Tea models behind the terminal dialogs.
package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shadowflee/fluxer/internal/cli/styles"
	"github.com/shadowflee/fluxer/internal/domain/entity"
)

type permissionKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	AllowAll key.Binding
	DenyAll  key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
}

func defaultPermissionKeys() permissionKeyMap {
	return permissionKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		AllowAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "allow all")),
		DenyAll:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "deny all")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:   key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "deny")),
	}
}

// PermissionModel asks the user for a set of platform grants, one checkbox
// per grant. Nothing is allowed until the user ticks it.
type PermissionModel struct {
	theme   *styles.Theme
	keys    permissionKeyMap
	grants  []entity.Grant
	allowed []bool
	cursor  int

	done     bool
	canceled bool
}

// NewPermissionModel creates the dialog for grants.
func NewPermissionModel(theme *styles.Theme, grants []entity.Grant) PermissionModel {
	return PermissionModel{
		theme:   theme,
		keys:    defaultPermissionKeys(),
		grants:  grants,
		allowed: make([]bool, len(grants)),
	}
}

// Init implements tea.Model.
func (m PermissionModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PermissionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.grants)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if len(m.allowed) > 0 {
			m.allowed[m.cursor] = !m.allowed[m.cursor]
		}
	case key.Matches(keyMsg, m.keys.AllowAll):
		m.setAll(true)
	case key.Matches(keyMsg, m.keys.DenyAll):
		m.setAll(false)
	case key.Matches(keyMsg, m.keys.Confirm):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Cancel):
		m.done = true
		m.canceled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *PermissionModel) setAll(v bool) {
	allowed := make([]bool, len(m.allowed))
	for i := range allowed {
		allowed[i] = v
	}
	m.allowed = allowed
}

// View implements tea.Model.
func (m PermissionModel) View() string {
	if m.done {
		return ""
	}
	t := m.theme

	var b strings.Builder
	b.WriteString(t.BoxHeader.Render(styles.IconLock + " Fluxer wants to use your devices"))
	b.WriteString("\n")
	for i, g := range m.grants {
		cursor := "  "
		style := t.ListItem
		if i == m.cursor {
			cursor = t.Highlight.Render(styles.IconCursor) + " "
			style = t.ListItemSelected
		}
		box := styles.IconCheckboxEmpty
		if m.allowed[i] {
			box = t.SuccessStyle.Render(styles.IconCheckboxChecked)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, box, style.Render(grantLabel(g)))
	}
	b.WriteString("\n")
	b.WriteString(t.Subtle.Render("space toggle • a allow all • d deny all • enter confirm • esc deny"))

	return t.Box.Render(b.String())
}

// Done reports whether the user answered.
func (m PermissionModel) Done() bool {
	return m.done
}

// Results returns the answer per grant. Cancelling denies everything.
func (m PermissionModel) Results() map[entity.Grant]bool {
	out := make(map[entity.Grant]bool, len(m.grants))
	for i, g := range m.grants {
		out[g] = m.done && !m.canceled && m.allowed[i]
	}
	return out
}

func grantLabel(g entity.Grant) string {
	switch g {
	case entity.GrantMicrophone:
		return styles.IconMic + " Microphone"
	case entity.GrantCamera:
		return styles.IconVideo + " Camera"
	default:
		return string(g)
	}
}
