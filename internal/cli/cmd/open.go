package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/domain/url"
	"github.com/shadowflee/fluxer/internal/infrastructure/desktop"
)

var openLaunch bool

var openCmd = &cobra.Command{
	Use:   "open <link>",
	Short: "Resolve a deep link to its in-app location",
	Long: `Resolve a deep link such as fluxer://channels/1/2 against the stored
server and print the page the shell would load.

With --launch the page is handed to the system browser.`,
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
		serverURL, err := usecase.NewConfigureServerUseCase(repos.Prefs).Load(a.Ctx())
		if err != nil {
			return err
		}
		if serverURL == "" {
			return fmt.Errorf("no server configured; run `fluxer server set` first")
		}

		target, ok := url.DeepLinkTarget(serverURL, args[0], a.Config.Shell.DeepLinkScheme)
		if !ok {
			return fmt.Errorf("not a %s:// link: %s", a.Config.Shell.DeepLinkScheme, args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Theme.Field("target", target))

		if openLaunch {
			return desktop.NewOpener().Open(a.Ctx(), target)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().BoolVar(&openLaunch, "launch", false, "open the resolved page in the system browser")
}
