package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/infrastructure/grants"
)

var grantsRevokeAll bool

var grantsCmd = &cobra.Command{
	Use:   "grants",
	Short: "List or revoke device grants",
	Long: `Device grants record the answers given in permission dialogs for the
microphone and the camera. A revoked grant is asked for again the next time
the server needs it.`,
	RunE: runGrantsList,
}

var grantsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded grants",
	RunE:  runGrantsList,
}

var grantsRevokeCmd = &cobra.Command{
	Use:       "revoke [microphone|camera]",
	Short:     "Forget a recorded grant",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(entity.GrantMicrophone), string(entity.GrantCamera)},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := grantStore()
		if err != nil {
			return err
		}
		var targets []entity.Grant
		switch {
		case grantsRevokeAll:
			targets = []entity.Grant{entity.GrantMicrophone, entity.GrantCamera}
		case len(args) == 1:
			g := entity.Grant(args[0])
			if g != entity.GrantMicrophone && g != entity.GrantCamera {
				return fmt.Errorf("unknown grant %q (expected microphone or camera)", args[0])
			}
			targets = []entity.Grant{g}
		default:
			return fmt.Errorf("name a grant or pass --all")
		}

		for _, g := range targets {
			if err := store.Revoke(app.Ctx(), g); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.Theme.OK("Revoked %s", g))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(grantsCmd)
	grantsCmd.AddCommand(grantsListCmd, grantsRevokeCmd)
	grantsRevokeCmd.Flags().BoolVar(&grantsRevokeAll, "all", false, "revoke every grant")
}

func runGrantsList(cmd *cobra.Command, _ []string) error {
	store, err := grantStore()
	if err != nil {
		return err
	}
	records, err := store.All(app.Ctx())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Grants(records))
	return nil
}

func grantStore() (*grants.Store, error) {
	a, err := requireApp()
	if err != nil {
		return nil, err
	}
	repos, err := a.Repositories(a.Ctx())
	if err != nil {
		return nil, err
	}
	return grants.NewStore(repos.Grants), nil
}
