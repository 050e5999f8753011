package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"quantum/internal/adapters"
	"quantum/internal/ports"
	"quantum/internal/types"
)

// stubRegistry serves canned archives and records every interaction.
type stubRegistry struct {
	archives  map[string][]byte
	packages  []types.PackageInfo
	downloads []string
	published []types.PublishSubmission
	queries   []string
	token     string
}

func (r *stubRegistry) Download(_ context.Context, name string, version string) ([]byte, error) {
	key := name + "@" + version
	r.downloads = append(r.downloads, key)
	data, ok := r.archives[key]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("package not found: " + key)
	}
	return data, nil
}

func (r *stubRegistry) Publish(_ context.Context, submission types.PublishSubmission) error {
	r.published = append(r.published, submission)
	return nil
}

func (r *stubRegistry) Search(_ context.Context, query string) ([]types.PackageInfo, error) {
	r.queries = append(r.queries, query)
	return r.packages, nil
}

type stubVCS struct{}

func (stubVCS) Clone(_ context.Context, _ string, _ string, dest string) error {
	return os.MkdirAll(dest, 0o755)
}

func (stubVCS) CheckoutRevision(context.Context, string, string) error {
	return nil
}

type staticCredentials struct {
	creds types.Credentials
}

func (c staticCredentials) Load() (types.Credentials, error) {
	return c.creds, nil
}

// newTestService wires real file-backed adapters with a stub registry
// and VCS.
func newTestService(registry *stubRegistry, creds types.Credentials) Service {
	return Service{
		Manifests:   adapters.NewManifestFileAdapter(),
		Lockfiles:   adapters.NewLockfileFileAdapter(),
		Archive:     adapters.NewArchiveTarAdapter(),
		VCS:         stubVCS{},
		Scaffold:    adapters.NewScaffoldAdapter(),
		Credentials: staticCredentials{creds: creds},
		NewRegistry: func(_ string, token string) ports.RegistryPort {
			registry.token = token
			return registry
		},
	}
}

// writePackageDir lays out a package directory with a manifest and one
// source file.
func writePackageDir(t *testing.T, dir string, manifest string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, adapters.ManifestFileName), []byte(manifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.qm"), []byte("module pkg::main {}\n"), 0o644))
}

// packagedArchive builds a registry archive for a package with the
// given manifest.
func packagedArchive(t *testing.T, manifest string) []byte {
	t.Helper()
	dir := t.TempDir()
	writePackageDir(t, dir, manifest)
	data, err := adapters.NewArchiveTarAdapter().Pack(dir, []string{
		adapters.ManifestFileName,
		filepath.Join("src", "main.qm"),
	})
	require.NoError(t, err)
	return data
}
