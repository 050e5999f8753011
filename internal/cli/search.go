package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"quantum/internal/app"
)

type searchOptions struct {
	Registry string
}

func newSearchCommand() *cobra.Command {
	opts := searchOptions{}
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the registry for packages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Registry, "registry", "", "Registry URL")
	_ = viper.BindPFlag("registry", cmd.Flags().Lookup("registry"))
	return cmd
}

func runSearch(ctx context.Context, cmd *cobra.Command, query string, opts searchOptions) error {
	service := newAppService()
	result, err := service.Search(ctx, app.SearchRequest{
		Query:       query,
		RegistryURL: resolveString(cmd, opts.Registry, "registry", "registry"),
	})
	if err != nil {
		return err
	}
	if len(result.Packages) == 0 {
		fmt.Println("no packages found")
		return nil
	}
	for _, pkg := range result.Packages {
		if pkg.Description != "" {
			fmt.Printf("%s v%s - %s\n", pkg.Name, pkg.Version, pkg.Description)
			continue
		}
		fmt.Printf("%s v%s\n", pkg.Name, pkg.Version)
	}
	return nil
}
