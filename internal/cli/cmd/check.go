package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/domain/url"
)

var checkServer string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Show how the shell would treat a URL or certificate error",
	Long: `Run one of the shell's trust decisions against the configured server,
or against --server, without starting a session.`,
}

var checkOriginCmd = &cobra.Command{
	Use:   "origin <url>",
	Short: "Tell whether a URL belongs to the trusted origin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trusted, err := trustedOrigin()
		if err != nil {
			return err
		}
		same := url.SameOriginAs(args[0], trusted)
		outcome := "foreign"
		if same {
			outcome = "trusted"
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Decision("origin", args[0], outcome, same))
		return nil
	},
}

var checkNavigateCmd = &cobra.Command{
	Use:   "navigate <url>",
	Short: "Tell whether a link stays in the shell or leaves it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trusted, err := trustedOrigin()
		if err != nil {
			return err
		}
		d := usecase.DecideNavigation(args[0], trusted)
		outcome := d.String()
		if d == entity.NavigationDelegate && !url.IsDelegableScheme(args[0]) {
			outcome = "blocked"
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Decision("navigate", args[0], outcome, d == entity.NavigationStay))
		return nil
	},
}

var checkLandedCmd = &cobra.Command{
	Use:   "landed <url>",
	Short: "Tell whether a loaded page keeps the bridge or gets replaced",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trusted, err := trustedOrigin()
		if err != nil {
			return err
		}
		if err := app.Prepare(app.Ctx()); err != nil {
			return err
		}
		d := usecase.DecidePageLanded(args[0], trusted, app.ErrorPage)
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Decision("landed", args[0], d.String(), d == entity.LandingOK))
		return nil
	},
}

var checkTLSCmd = &cobra.Command{
	Use:   "tls <url> [host]",
	Short: "Tell whether a certificate error may be overridden",
	Long: `Tell whether a certificate error on <url> would be refused outright or
offered to the user. host is the host name reported with the error, when it
differs from the URL's.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		trusted, err := trustedOrigin()
		if err != nil {
			return err
		}
		host := ""
		if len(args) == 2 {
			host = args[1]
		}
		d := usecase.DecideTrustException(host, args[0], trusted.Host)
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Decision("tls", args[0], d.String(), d == entity.TrustPrompt))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.PersistentFlags().StringVar(&checkServer, "server", "", "server URL to check against instead of the stored one")
	checkCmd.AddCommand(checkOriginCmd, checkNavigateCmd, checkLandedCmd, checkTLSCmd)
}

func trustedOrigin() (entity.Origin, error) {
	a, err := requireApp()
	if err != nil {
		return entity.Origin{}, err
	}
	serverURL := checkServer
	if serverURL == "" {
		repos, err := a.Repositories(a.Ctx())
		if err != nil {
			return entity.Origin{}, err
		}
		serverURL, err = usecase.NewConfigureServerUseCase(repos.Prefs).Load(a.Ctx())
		if err != nil {
			return entity.Origin{}, err
		}
	}
	if serverURL == "" {
		return entity.Origin{}, fmt.Errorf("no server configured; pass --server or run `fluxer server set`")
	}
	trusted, err := url.ParseOrigin(serverURL)
	if err != nil {
		return entity.Origin{}, err
	}
	if !trusted.IsWeb() {
		return entity.Origin{}, fmt.Errorf("%w: scheme %q", usecase.ErrInvalidServerURL, trusted.Scheme)
	}
	return trusted, nil
}
