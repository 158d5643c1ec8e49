package model

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/cli/styles"
)

// TrustModel asks whether to continue past an untrusted certificate.
type TrustModel struct {
	confirm styles.ConfirmModel
}

// NewTrustModel creates the certificate prompt for host.
func NewTrustModel(theme *styles.Theme, host string) TrustModel {
	c := styles.NewConfirm(theme, styles.IconWarning+" "+usecase.UntrustedCertificateTitle).
		WithDetail(usecase.UntrustedCertificateMessage(host))
	return TrustModel{confirm: c}
}

// Init implements tea.Model.
func (m TrustModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TrustModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if m.confirm.Done() {
		return m, tea.Quit
	}
	return m, cmd
}

// View implements tea.Model.
func (m TrustModel) View() string {
	if m.confirm.Done() {
		return ""
	}
	return m.confirm.View()
}

// Proceed reports whether the user chose to continue.
func (m TrustModel) Proceed() bool {
	return m.confirm.Result()
}
