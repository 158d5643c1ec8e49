package model

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shadowflee/fluxer/internal/cli/styles"
	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/domain/validation"
)

type inputKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

func defaultInputKeys() inputKeyMap {
	return inputKeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// InputModel asks for one line of text. Enter saves the value once check
// accepts it; esc dismisses the prompt.
type InputModel struct {
	theme *styles.Theme
	keys  inputKeyMap
	title string
	hint  string
	input textinput.Model
	check func(string) (string, error)

	value    string
	problem  string
	done     bool
	canceled bool
}

func newInputModel(theme *styles.Theme, title, hint, current string, check func(string) (string, error)) InputModel {
	in := textinput.New()
	in.Prompt = styles.IconCursor + " "
	in.CharLimit = entity.MaxServerURLLength
	in.Width = 60
	in.SetValue(current)
	in.Focus()

	return InputModel{
		theme: theme,
		keys:  defaultInputKeys(),
		title: title,
		hint:  hint,
		input: in,
		check: check,
	}
}

// NewServerInputModel creates the server setup prompt prefilled with current.
func NewServerInputModel(theme *styles.Theme, current string) InputModel {
	return newInputModel(theme,
		styles.IconGlobe+" Fluxer server",
		"Address of the Fluxer instance to open, e.g. https://chat.example.com",
		current,
		validation.ValidateServerURL)
}

// NewSoundInputModel creates the notification sound prompt prefilled with
// current. An empty value selects silence.
func NewSoundInputModel(theme *styles.Theme, current string) InputModel {
	return newInputModel(theme,
		styles.IconBell+" Notification sound",
		"Path or URI of a sound file. Leave empty for silence.",
		current,
		func(v string) (string, error) { return SoundRef(v), nil })
}

// SoundRef turns what the user typed into a sound reference: file paths
// become file URIs, anything with a scheme is kept.
func SoundRef(input string) string {
	v := strings.TrimSpace(input)
	if v == "" {
		return ""
	}
	if u, err := url.Parse(v); err == nil && u.Scheme != "" {
		return v
	}
	if abs, err := filepath.Abs(v); err == nil {
		v = abs
	}
	return (&url.URL{Scheme: "file", Path: v}).String()
}

// Init implements tea.Model.
func (m InputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.done = true
			m.canceled = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Submit):
			value, err := m.check(m.input.Value())
			if err != nil {
				m.problem = err.Error()
				return m, nil
			}
			m.value = value
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.problem = ""
	return m, cmd
}

// View implements tea.Model.
func (m InputModel) View() string {
	if m.done {
		return ""
	}
	t := m.theme

	var b strings.Builder
	b.WriteString(t.BoxHeader.Render(m.title))
	b.WriteString("\n")
	b.WriteString(t.Subtle.Render(m.hint))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.problem != "" {
		b.WriteString(t.ErrorStyle.Render(styles.IconX + " " + m.problem))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(t.Subtle.Render("enter save • esc cancel"))

	return t.Box.Render(b.String())
}

// Value returns the saved value. ok is false when the prompt was dismissed.
func (m InputModel) Value() (string, bool) {
	if !m.done || m.canceled {
		return "", false
	}
	return m.value, true
}
