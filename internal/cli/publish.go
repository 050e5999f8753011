package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"quantum/internal/adapters"
	"quantum/internal/app"
)

type publishOptions struct {
	Registry string
	Yes      bool
}

func newPublishCommand() *cobra.Command {
	opts := publishOptions{}
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the package to the registry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPublish(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Registry, "registry", "", "Registry URL")
	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "Skip the confirmation prompt")
	_ = viper.BindPFlag("registry", cmd.Flags().Lookup("registry"))
	_ = viper.BindPFlag("publish_yes", cmd.Flags().Lookup("yes"))
	return cmd
}

func runPublish(ctx context.Context, cmd *cobra.Command, opts publishOptions) error {
	service := newAppService()

	manifest, err := service.Manifests.Load(adapters.ManifestFileName)
	if err != nil {
		return err
	}
	if !resolveBool(cmd, opts.Yes, "publish_yes", "yes") {
		if !confirm(fmt.Sprintf("publish %s v%s to the registry? [y/N] ",
			manifest.Package.Name, manifest.Package.Version)) {
			fmt.Println("publication cancelled")
			return nil
		}
	}

	result, err := service.Publish(ctx, app.PublishRequest{
		RegistryURL: resolveString(cmd, opts.Registry, "registry", "registry"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("published %s v%s to %s\n", result.Name, result.Version, result.Registry)
	return nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
