package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"quantum/internal/app"
)

type resolveOptions struct {
	Manifest string
	Lockfile string
	CacheDir string
	Registry string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve dependencies and write the lockfile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}
	addResolveFlags(cmd, &opts)
	return cmd
}

func addResolveFlags(cmd *cobra.Command, opts *resolveOptions) {
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "Quantum.toml", "Manifest path")
	cmd.Flags().StringVar(&opts.Lockfile, "lockfile", "", "Lockfile path (defaults to Quantum.lock beside the manifest)")
	cmd.Flags().StringVar(&opts.CacheDir, "cache-dir", "", "Dependency cache directory")
	cmd.Flags().StringVar(&opts.Registry, "registry", "", "Registry URL")

	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("lockfile", cmd.Flags().Lookup("lockfile"))
	_ = viper.BindPFlag("cache_dir", cmd.Flags().Lookup("cache-dir"))
	_ = viper.BindPFlag("registry", cmd.Flags().Lookup("registry"))
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		LockfilePath: resolveString(cmd, opts.Lockfile, "lockfile", "lockfile"),
		CacheDir:     resolveString(cmd, opts.CacheDir, "cache_dir", "cache-dir"),
		RegistryURL:  resolveString(cmd, opts.Registry, "registry", "registry"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("locked %d dependencies for %s -> %s\n", result.Dependencies, result.PackageName, result.LockfilePath)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	if fromConfig := viper.GetString(key); fromConfig != "" {
		return fromConfig
	}
	return value
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
