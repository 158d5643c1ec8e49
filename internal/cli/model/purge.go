package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/cli/styles"
	"github.com/shadowflee/fluxer/internal/domain/entity"
)

type purgeStage int

const (
	purgeLoading purgeStage = iota
	purgeSelecting
	purgeConfirming
	purgeRunning
	purgeDone
)

// PurgeModel lists what Fluxer keeps on disk, lets the user pick what to
// remove and asks once more before removing it.
type PurgeModel struct {
	purgeUC *usecase.PurgeDataUseCase
	theme   *styles.Theme
	ctx     context.Context

	stage    purgeStage
	spinner  spinner.Model
	targets  []entity.PurgeTarget
	selected []bool
	cursor   int
	confirm  styles.ConfirmModel

	results *usecase.PurgeOutput
	info    string
	err     error
}

// NewPurgeModel creates the purge dialog.
func NewPurgeModel(ctx context.Context, theme *styles.Theme, purgeUC *usecase.PurgeDataUseCase) PurgeModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Highlight
	return PurgeModel{
		purgeUC: purgeUC,
		theme:   theme,
		ctx:     ctx,
		spinner: sp,
	}
}

type purgeTargetsLoadedMsg struct {
	targets []entity.PurgeTarget
	err     error
}

type purgeCompleteMsg struct {
	out *usecase.PurgeOutput
	err error
}

// Init implements tea.Model.
func (m PurgeModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadTargets())
}

func (m PurgeModel) loadTargets() tea.Cmd {
	return func() tea.Msg {
		targets, err := m.purgeUC.GetPurgeTargets(m.ctx)
		return purgeTargetsLoadedMsg{targets: targets, err: err}
	}
}

// Update implements tea.Model.
func (m PurgeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case purgeTargetsLoadedMsg:
		return m.handleTargetsLoaded(msg), nil
	case purgeCompleteMsg:
		m.stage = purgeDone
		m.results = msg.out
		m.err = msg.err
		return m, nil
	case spinner.TickMsg:
		if m.stage != purgeLoading && m.stage != purgeRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m PurgeModel) handleTargetsLoaded(msg purgeTargetsLoadedMsg) PurgeModel {
	if msg.err != nil {
		m.err = msg.err
		m.stage = purgeDone
		return m
	}
	for _, t := range msg.targets {
		if t.Exists {
			m.targets = append(m.targets, t)
		}
	}
	if len(m.targets) == 0 {
		m.info = "Nothing to purge"
		m.stage = purgeDone
		return m
	}
	m.selected = make([]bool, len(m.targets))
	m.stage = purgeSelecting
	return m
}

func (m PurgeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.stage {
	case purgeDone:
		return m, tea.Quit
	case purgeSelecting:
		return m.updateSelection(msg)
	case purgeConfirming:
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		if !m.confirm.Done() {
			return m, cmd
		}
		if !m.confirm.Result() {
			m.stage = purgeSelecting
			return m, nil
		}
		m.stage = purgeRunning
		return m, tea.Batch(m.spinner.Tick, m.performPurge(m.SelectedTypes()))
	}
	return m, nil
}

func (m PurgeModel) updateSelection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := defaultPermissionKeys()
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.targets)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Toggle):
		m.selected = append([]bool(nil), m.selected...)
		m.selected[m.cursor] = !m.selected[m.cursor]
	case key.Matches(msg, keys.AllowAll):
		m.selected = fill(len(m.targets), true)
	case key.Matches(msg, keys.DenyAll):
		m.selected = fill(len(m.targets), false)
	case key.Matches(msg, keys.Confirm):
		types := m.SelectedTypes()
		if len(types) == 0 {
			m.info = "Nothing selected"
			m.stage = purgeDone
			return m, nil
		}
		m.confirm = styles.NewConfirm(m.theme, fmt.Sprintf("Remove %d item(s)?", len(types))).
			WithDetail("This cannot be undone.")
		m.stage = purgeConfirming
	case key.Matches(msg, keys.Cancel):
		return m, tea.Quit
	}
	return m, nil
}

func fill(n int, v bool) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// SelectedTypes returns the target types ticked so far.
func (m PurgeModel) SelectedTypes() []entity.PurgeTargetType {
	var types []entity.PurgeTargetType
	for i, t := range m.targets {
		if m.selected[i] {
			types = append(types, t.Type)
		}
	}
	return types
}

// Done reports whether the purge finished or was abandoned.
func (m PurgeModel) Done() bool {
	return m.stage == purgeDone
}

// Err returns the error of the last purge, if any.
func (m PurgeModel) Err() error {
	return m.err
}

func (m PurgeModel) performPurge(types []entity.PurgeTargetType) tea.Cmd {
	return func() tea.Msg {
		out, err := m.purgeUC.Execute(m.ctx, usecase.PurgeInput{TargetTypes: types})
		return purgeCompleteMsg{out: out, err: err}
	}
}

// View implements tea.Model.
func (m PurgeModel) View() string {
	t := m.theme

	switch m.stage {
	case purgeLoading:
		return t.Box.Render(m.spinner.View() + " Scanning purge targets...")
	case purgeRunning:
		return t.Box.Render(m.spinner.View() + " Purging...")
	case purgeConfirming:
		return m.confirm.View()
	case purgeDone:
		return m.renderDone()
	}

	var b strings.Builder
	b.WriteString(t.BoxHeader.Render(styles.IconTrash + " Purge Fluxer data"))
	b.WriteString("\n")
	for i, target := range m.targets {
		cursor := "  "
		style := t.ListItem
		if i == m.cursor {
			cursor = t.Highlight.Render(styles.IconCursor) + " "
			style = t.ListItemSelected
		}
		box := styles.IconCheckboxEmpty
		if m.selected[i] {
			box = t.ErrorStyle.Render(styles.IconCheckboxChecked)
		}
		line := fmt.Sprintf("%-40s %s", target.Description, t.Subtle.Render(styles.FormatBytes(target.Size)))
		fmt.Fprintf(&b, "%s%s %s\n", cursor, box, style.Render(line))
	}
	b.WriteString("\n")
	b.WriteString(t.Subtle.Render("space toggle • a all • d none • enter purge • esc quit"))
	return t.Box.Render(b.String())
}

func (m PurgeModel) renderDone() string {
	t := m.theme
	footer := t.Subtle.Render("Press any key to exit")

	if m.info != "" {
		return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, t.Subtle.Render(m.info), "", footer))
	}
	if m.err != nil && m.results == nil {
		return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, t.ErrorStyle.Render("Error: "+m.err.Error()), "", footer))
	}

	lines := []string{t.Title.Render("Purge complete")}
	for _, r := range m.results.Results {
		if r.Success {
			lines = append(lines, fmt.Sprintf("%s %s", t.SuccessStyle.Render(styles.IconCheck), r.Target.Path))
		} else {
			lines = append(lines, fmt.Sprintf("%s %s: %v", t.ErrorStyle.Render(styles.IconX), r.Target.Path, r.Error))
		}
	}
	lines = append(lines,
		"",
		t.Subtle.Render(fmt.Sprintf("%d succeeded, %d failed", m.results.SuccessCount, m.results.FailureCount)),
		"",
		footer,
	)
	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

var _ tea.Model = (*PurgeModel)(nil)
