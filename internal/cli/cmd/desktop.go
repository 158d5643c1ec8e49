package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/infrastructure/desktop"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Manage the desktop entry and deep-link handler",
}

var desktopStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the desktop entry is installed",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		status, err := desktop.New(a.Config.Shell.DeepLinkScheme).GetStatus(a.Ctx())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, a.Theme.Field("installed", yesNo(status.DesktopFileInstalled)))
		if status.DesktopFilePath != "" {
			fmt.Fprintln(out, a.Theme.Field("desktop file", status.DesktopFilePath))
		}
		fmt.Fprintln(out, a.Theme.Field("executable", status.ExecutablePath))
		fmt.Fprintln(out, a.Theme.Field(a.Config.Shell.DeepLinkScheme+"://", yesNo(status.IsSchemeHandler)))
		return nil
	},
}

var desktopInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the desktop entry and claim the deep-link scheme",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		uc := usecase.NewInstallDesktopUseCase(desktop.New(a.Config.Shell.DeepLinkScheme))
		res, err := uc.Execute(a.Ctx())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if res.WasDesktopExisting {
			fmt.Fprintln(out, a.Theme.OK("Updated %s", res.DesktopPath))
		} else {
			fmt.Fprintln(out, a.Theme.OK("Installed %s", res.DesktopPath))
		}
		if !res.WasSchemeHandler {
			fmt.Fprintln(out, a.Theme.OK("Registered as %s:// handler", a.Config.Shell.DeepLinkScheme))
		}
		return nil
	},
}

var desktopRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the desktop entry",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		uc := usecase.NewRemoveDesktopUseCase(desktop.New(a.Config.Shell.DeepLinkScheme))
		res, err := uc.Execute(a.Ctx())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !res.WasDesktopInstalled {
			fmt.Fprintln(out, a.Theme.Subtle.Render("Desktop entry was not installed."))
			return nil
		}
		fmt.Fprintln(out, a.Theme.OK("Removed %s", res.RemovedDesktopPath))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(desktopCmd)
	desktopCmd.AddCommand(desktopStatusCmd)
	desktopCmd.AddCommand(desktopInstallCmd)
	desktopCmd.AddCommand(desktopRemoveCmd)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
