package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"quantum/internal/app"
)

type newOptions struct {
	Here bool
}

func newNewCommand() *cobra.Command {
	opts := newOptions{}
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new Quantum package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Here, "here", false, "Create in the current directory")
	return cmd
}

func runNew(ctx context.Context, name string, opts newOptions) error {
	service := newAppService()
	result, err := service.New(ctx, app.NewRequest{Name: name, Here: opts.Here})
	if err != nil {
		return err
	}
	fmt.Printf("created package %s at %s\n", name, result.Root)
	if !opts.Here {
		fmt.Printf("next steps:\n  cd %s\n  quantum resolve\n", name)
	}
	return nil
}
