package model

import (
	"fmt"
	"mime"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shadowflee/fluxer/internal/cli/styles"
)

type fileKeyMap struct {
	Finish key.Binding
	Cancel key.Binding
}

func defaultFileKeys() fileKeyMap {
	return fileKeyMap{
		Finish: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "done")),
		Cancel: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "cancel")),
	}
}

// FileModel lets the user pick files for a page's file input. With multiple
// off the first selection ends the dialog; with it on, selections add up
// until tab.
type FileModel struct {
	theme    *styles.Theme
	keys     fileKeyMap
	picker   filepicker.Model
	multiple bool

	selected []string
	notice   string
	done     bool
	canceled bool
}

// NewFileModel creates the chooser starting in dir and limited to the
// extensions of acceptType.
func NewFileModel(theme *styles.Theme, dir, acceptType string, multiple bool) FileModel {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = AcceptedExtensions(acceptType)
	fp.ShowPermissions = false
	fp.AutoHeight = false
	fp.SetHeight(12)

	return FileModel{
		theme:    theme,
		keys:     defaultFileKeys(),
		picker:   fp,
		multiple: multiple,
	}
}

// AcceptedExtensions maps a single MIME type to its file extensions.
// Wildcards and unknown types allow every file.
func AcceptedExtensions(acceptType string) []string {
	if acceptType == "" || strings.HasSuffix(acceptType, "/*") {
		return nil
	}
	exts, err := mime.ExtensionsByType(acceptType)
	if err != nil || len(exts) == 0 {
		return nil
	}
	return exts
}

// Init implements tea.Model.
func (m FileModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update implements tea.Model.
func (m FileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.done = true
			m.canceled = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Finish) && m.multiple && len(m.selected) > 0:
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		if !slices.Contains(m.selected, path) {
			m.selected = append(m.selected, path)
		}
		if !m.multiple {
			m.done = true
			return m, tea.Quit
		}
		m.notice = fmt.Sprintf("%d selected", len(m.selected))
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.notice = filepath.Base(path) + " is not accepted here"
	}
	return m, cmd
}

// View implements tea.Model.
func (m FileModel) View() string {
	if m.done {
		return ""
	}
	t := m.theme

	var b strings.Builder
	b.WriteString(t.BoxHeader.Render(styles.IconFolder + " Choose a file"))
	b.WriteString("\n")
	b.WriteString(t.Subtle.Render(m.picker.CurrentDirectory))
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(t.Highlight.Render(m.notice))
	}
	b.WriteString("\n")
	help := "enter select • h back • q cancel"
	if m.multiple {
		help = "enter add • tab done • h back • q cancel"
	}
	b.WriteString(t.Subtle.Render(help))

	return t.Box.Render(b.String())
}

// Selected returns the chosen paths, or nil when the user cancelled.
func (m FileModel) Selected() []string {
	if !m.done || m.canceled {
		return nil
	}
	return m.selected
}
