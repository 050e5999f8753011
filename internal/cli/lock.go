package cli

import "github.com/spf13/cobra"

type lockOptions = resolveOptions

func newLockCommand() *cobra.Command {
	opts := lockOptions{}
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Resolve dependencies and write the lockfile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}
	addResolveFlags(cmd, &opts)
	return cmd
}
