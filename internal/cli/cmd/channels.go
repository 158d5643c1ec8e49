package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/cli"
	"github.com/shadowflee/fluxer/internal/infrastructure/notify"
)

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "List notification channels",
	Long: `List the notification channels Fluxer created.

One channel is active at a time; it carries the chosen notification sound.
The silent background channel is kept alongside it.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, ids, err := channelIdentity()
		if err != nil {
			return err
		}
		activeID, err := ids.Activate(a.Ctx())
		if err != nil {
			return err
		}
		repos, err := a.Repositories(a.Ctx())
		if err != nil {
			return err
		}
		channels, err := notify.NewRegistry(repos.Channels).List(a.Ctx())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Theme.Channels(channels, activeID))
		return nil
	},
}

var soundCmd = &cobra.Command{
	Use:   "sound",
	Short: "Show or change the notification sound",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, ids, err := channelIdentity()
		if err != nil {
			return err
		}
		ref := ids.SoundRef(a.Ctx())
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, a.Theme.Field("sound", usecase.SoundLabel(ref)))
		if ref != "" {
			fmt.Fprintln(out, a.Theme.Field("reference", ref))
		}
		return nil
	},
}

var soundSetCmd = &cobra.Command{
	Use:   "set <sound-uri>",
	Short: "Use a sound file for notifications",
	Long: `Use a sound file for notifications. Notifications move to a channel
bound to that sound and the previous channel is removed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeSound(cmd, args[0])
	},
}

var soundClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Make notifications silent",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return changeSound(cmd, "")
	},
}

func init() {
	rootCmd.AddCommand(channelsCmd, soundCmd)
	soundCmd.AddCommand(soundSetCmd, soundClearCmd)
}

func channelIdentity() (*cli.App, *usecase.ChannelIdentity, error) {
	a, err := requireApp()
	if err != nil {
		return nil, nil, err
	}
	repos, err := a.Repositories(a.Ctx())
	if err != nil {
		return nil, nil, err
	}
	ids := usecase.NewChannelIdentity(
		notify.NewRegistry(repos.Channels),
		repos.Prefs,
		nil,
		a.Config.Shell.ChannelDisplayName,
	)
	return a, ids, nil
}

func changeSound(cmd *cobra.Command, ref string) error {
	a, ids, err := channelIdentity()
	if err != nil {
		return err
	}
	// Start from the channel in use so the switch retires it.
	if _, err := ids.Activate(a.Ctx()); err != nil {
		return err
	}
	if err := ids.ChangeSound(a.Ctx(), ref); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.OK("Notification sound: %s (channel %s)", usecase.SoundLabel(ref), ids.ActiveID()))
	return nil
}
