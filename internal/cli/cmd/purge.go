package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/cli/model"
	"github.com/shadowflee/fluxer/internal/infrastructure/desktop"
	"github.com/shadowflee/fluxer/internal/infrastructure/filesystem"
	xdgadapter "github.com/shadowflee/fluxer/internal/infrastructure/xdg"
)

var purgeForce bool

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove fluxer data and configuration",
	Long: `Interactively select and remove fluxer data directories and files.

This can remove:
  - Config directory
  - Data directory (server address, grants, channels)
  - State directory (logs, instance lock)
  - Cache directory
  - Desktop integration files

Use --force to remove everything without prompting.`,
	RunE: runPurge,
}

func init() {
	rootCmd.AddCommand(purgeCmd)
	purgeCmd.Flags().BoolVarP(&purgeForce, "force", "f", false, "remove all items without prompting")
}

func runPurge(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	purgeUC := usecase.NewPurgeDataUseCase(
		filesystem.New(),
		xdgadapter.New(),
		desktop.New(a.Config.Shell.DeepLinkScheme),
	)

	// The database lives in the data directory.
	if a.DB != nil {
		_ = a.DB.Close()
	}

	if purgeForce {
		out := cmd.OutOrStdout()
		res, err := purgeUC.PurgeAll(a.Ctx())
		if res != nil {
			for _, r := range res.Results {
				if r.Success {
					fmt.Fprintln(out, a.Theme.OK("%s", r.Target.Path))
				} else {
					fmt.Fprintln(out, a.Theme.Fail(fmt.Errorf("%s: %w", r.Target.Path, r.Error)))
				}
			}
		}
		return err
	}

	m := model.NewPurgeModel(a.Ctx(), a.Theme, purgeUC)
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(a.Ctx())).Run()
	if err != nil {
		return err
	}
	if pm, ok := final.(model.PurgeModel); ok && pm.Err() != nil {
		return pm.Err()
	}
	return nil
}
