package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/cli/styles"
	"github.com/shadowflee/fluxer/internal/infrastructure/config"
)

var configYes bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show, document and initialize the fluxer config file.`,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the config file path and whether it exists",
	RunE:  runConfigStatus,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		data, err := config.EncodeConfig(a.Config)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.GenerateJSONSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys [section]",
	Short: "List config keys with their defaults",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		var section string
		if len(args) == 1 {
			section = args[0]
		}
		uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
		res, err := uc.Execute(a.Ctx(), usecase.GetConfigSchemaInput{Section: section})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, k := range res.Keys {
			line := fmt.Sprintf("%s %s", a.Theme.Highlight.Render(k.Key), a.Theme.Subtle.Render(k.Type))
			if k.Default != "" {
				line += " " + a.Theme.Normal.Render("= "+k.Default)
			}
			fmt.Fprintln(out, line)
			if k.Description != "" {
				fmt.Fprintln(out, "    "+a.Theme.Subtle.Render(k.Description))
			}
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with every default",
	Long: `Write the default configuration to the config file.

An existing file is only replaced after confirmation, or with --yes.`,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "replace an existing file without asking")
}

func runConfigStatus(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	path := a.Manager.GetConfigFile()
	fmt.Fprintln(out, a.Theme.Field("config", path))

	exists, err := fileExists(path)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintln(out, a.Theme.Subtle.Render("No config file; defaults are in use. Run `fluxer config init` to write one."))
		return nil
	}
	fmt.Fprintln(out, a.Theme.Field("database", a.Config.Database.Path))
	fmt.Fprintln(out, a.Theme.Field("log level", a.Config.Logging.Level))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	path := a.Manager.GetConfigFile()

	exists, err := fileExists(path)
	if err != nil {
		return err
	}
	if exists && !configYes {
		m := newOverwriteModel(a.Theme, path)
		final, err := tea.NewProgram(m, tea.WithContext(a.Ctx())).Run()
		if err != nil {
			return fmt.Errorf("confirm overwrite: %w", err)
		}
		if om, ok := final.(overwriteModel); !ok || !om.confirm.Result() {
			fmt.Fprintln(cmd.OutOrStdout(), a.Theme.Subtle.Render("Config left unchanged."))
			return nil
		}
	}

	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.OK("Wrote %s", path))
	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// overwriteModel asks before replacing an existing config file.
type overwriteModel struct {
	confirm styles.ConfirmModel
}

func newOverwriteModel(theme *styles.Theme, path string) overwriteModel {
	return overwriteModel{
		confirm: styles.NewConfirm(theme, "Replace the existing config with defaults?").
			WithDetail(path),
	}
}

func (m overwriteModel) Init() tea.Cmd {
	return nil
}

func (m overwriteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if m.confirm.Done() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m overwriteModel) View() string {
	if m.confirm.Done() {
		return ""
	}
	return m.confirm.View()
}
