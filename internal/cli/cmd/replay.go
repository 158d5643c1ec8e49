package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shadowflee/fluxer/internal/cli"
)

var (
	replayFlags        sessionFlags
	replayWatchNetwork bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <events.jsonl|->",
	Short: "Feed recorded page events through the shell",
	Long: `Start a session for the stored server and feed it page events, one JSON
object per line, printing every decision the shell makes.

Event types: capability, navigate, landed, transport_error, tls, bridge,
network, deeplink, share, download, file_chooser, pip, leave, server,
close.

Example:
  {"type":"capability","origin":"https://chat.example.com","capabilities":["audio"]}
  {"type":"landed","url":"https://chat.example.com/channels/@me"}
  {"type":"bridge","script":"FluxerAndroid.startCall('audio')"}`,
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
		defer in.Close()

		out := cmd.OutOrStdout()
		h, cleanup, err := startHarness(a, replayFlags, out)
		if err != nil {
			return err
		}
		defer cleanup()

		r := cli.NewReplayer(h, out, a.Theme)
		r.WatchNetwork = replayWatchNetwork
		if err := h.Start(a.Ctx()); err != nil {
			return err
		}
		return r.Run(a.Ctx(), in)
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayFlags.register(replayCmd)
	replayCmd.Flags().BoolVar(&replayWatchNetwork, "watch-network", false, "also follow NetworkManager connectivity")
}
