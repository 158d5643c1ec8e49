package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/domain/url"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Show or change the Fluxer server",
}

var serverShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configured server and its trusted origin",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		repos, err := a.Repositories(a.Ctx())
		if err != nil {
			return err
		}
		serverURL, err := usecase.NewConfigureServerUseCase(repos.Prefs).Load(a.Ctx())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if serverURL == "" {
			fmt.Fprintln(out, a.Theme.Subtle.Render("No server configured. Run `fluxer server set <url>`."))
			return nil
		}
		origin, err := url.ParseOrigin(serverURL)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, a.Theme.Field("server", serverURL))
		fmt.Fprintln(out, a.Theme.Field("origin", origin.String()))
		return nil
	},
}

var serverSetCmd = &cobra.Command{
	Use:   "set <url>",
	Short: "Store the server address",
	Long: `Store the address of the Fluxer server to wrap.

The address must be an http or https URL with a host. Its origin becomes
the only origin allowed to use devices and the native bridge.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		repos, err := a.Repositories(a.Ctx())
		if err != nil {
			return err
		}
		saved, err := usecase.NewConfigureServerUseCase(repos.Prefs).Save(a.Ctx(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Theme.OK("Server set to %s", saved))
		return nil
	},
}

var serverClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the server address",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		repos, err := a.Repositories(a.Ctx())
		if err != nil {
			return err
		}
		if err := usecase.NewConfigureServerUseCase(repos.Prefs).Clear(a.Ctx()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Theme.OK("Server cleared"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.AddCommand(serverShowCmd, serverSetCmd, serverClearCmd)
}
