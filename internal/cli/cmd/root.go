// Package cmd provides Cobra CLI commands for fluxer.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shadowflee/fluxer/internal/cli"
	"github.com/shadowflee/fluxer/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "fluxer",
		Short: "Desktop shell for a self-hosted Fluxer server",
		Long: `Fluxer wraps the web app of one Fluxer server and guards the boundary
between that server and everything else.

Only the configured server may use the microphone, the camera and the
native bridge. Links elsewhere open in the system browser, certificate
errors are refused unless they come from the server and the user agrees,
and notification channels follow the chosen sound.

The subcommands manage the stored server, grants and notification
channels, check how a URL or certificate error would be handled, and
replay recorded page events through the shell.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(cmd.Context())
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "fluxer %s\n", valueOr(buildInfo.Version, "dev"))
		fmt.Fprintf(out, "commit:  %s\n", valueOr(buildInfo.Commit, "unknown"))
		fmt.Fprintf(out, "built:   %s\n", valueOr(buildInfo.BuildDate, "unknown"))
		fmt.Fprintf(out, "go:      %s\n", valueOr(buildInfo.GoVersion, "unknown"))
		fmt.Fprintf(out, "source:  %s\n", build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command. Cancelling ctx stops a running session.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
