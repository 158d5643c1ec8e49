package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/cli"
)

var (
	bridgeFlags     sessionFlags
	bridgeLandedURL string
)

var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Exercise the native bridge",
}

var bridgeEvalCmd = &cobra.Command{
	Use:   "eval <script.js|->",
	Short: "Run a script against the bridge",
	Long: `Start a session, land on --landed (the server by default) and run the
script with the bridge installed as ` + usecase.BridgeName + `. When the landed
page is not trusted the bridge is absent, as it would be in the view.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		in, err := openInput(args[0])
		if err != nil {
			return err
		}
		script, err := io.ReadAll(in)
		_ = in.Close()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		h, cleanup, err := startHarness(a, bridgeFlags, out)
		if err != nil {
			return err
		}
		defer cleanup()

		r := cli.NewReplayer(h, out, a.Theme)
		ctx := a.Ctx()
		if err := h.Start(ctx); err != nil {
			return err
		}

		landed := bridgeLandedURL
		if landed == "" {
			if err := h.Do(ctx, func(s *usecase.Session) {
				if s != nil {
					landed = s.ServerURL
				}
			}); err != nil {
				return err
			}
		}
		if landed == "" {
			return fmt.Errorf("no server configured; run `fluxer server set` first")
		}

		events := []cli.Event{
			{Type: cli.EventLanded, URL: landed},
			{Type: cli.EventBridge, Script: string(script)},
		}
		for _, ev := range events {
			if err := r.Dispatch(ctx, ev); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bridgeCmd)
	bridgeCmd.AddCommand(bridgeEvalCmd)
	bridgeFlags.register(bridgeEvalCmd)
	bridgeEvalCmd.Flags().StringVar(&bridgeLandedURL, "landed", "", "page the script runs on")
}
