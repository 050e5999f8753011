package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantum/internal/types"
)

type fakeRegistry struct {
	archives  map[string][]byte
	downloads []string
}

func (f *fakeRegistry) Download(_ context.Context, name string, version string) ([]byte, error) {
	key := name + "@" + version
	f.downloads = append(f.downloads, key)
	data, ok := f.archives[key]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("package not found: " + key)
	}
	return data, nil
}

func (f *fakeRegistry) Publish(context.Context, types.PublishSubmission) error {
	return nil
}

func (f *fakeRegistry) Search(context.Context, string) ([]types.PackageInfo, error) {
	return nil, nil
}

type fakeVCS struct {
	clones    []string
	checkouts []string
}

func (f *fakeVCS) Clone(_ context.Context, url string, branch string, dest string) error {
	f.clones = append(f.clones, url+"|"+branch)
	return os.MkdirAll(dest, 0o755)
}

func (f *fakeVCS) CheckoutRevision(_ context.Context, _ string, rev string) error {
	f.checkouts = append(f.checkouts, rev)
	return nil
}

// memCache implements the cache store against a test temp directory so
// fetcher tests observe real hit/miss transitions without depending on
// the production adapter.
type memCache struct {
	root string
}

func (c memCache) Has(identity string) bool {
	_, err := os.Stat(c.PathFor(identity))
	return err == nil
}

func (c memCache) PathFor(identity string) string {
	return filepath.Join(c.root, identity)
}

func (c memCache) Create(identity string) (string, error) {
	dir := c.PathFor(identity)
	return dir, os.MkdirAll(dir, 0o755)
}

func (c memCache) Populate(identity string, fill func(dir string) error) (string, error) {
	dir, err := c.Create(identity)
	if err != nil {
		return "", err
	}
	return dir, fill(dir)
}

// dirManifests returns a fixed manifest for every loaded directory.
type dirManifests struct {
	manifest types.Manifest
}

func (m dirManifests) Load(string) (types.Manifest, error) {
	return m.manifest, nil
}

func (m dirManifests) LoadDir(string) (types.Manifest, error) {
	return m.manifest, nil
}

type countingArchive struct {
	extracts int
}

func (a *countingArchive) Extract([]byte, string) error {
	a.extracts++
	return nil
}

func (a *countingArchive) Pack(string, []string) ([]byte, error) {
	return nil, nil
}

func validManifest(name string, version string) types.Manifest {
	return types.Manifest{
		Package: types.PackageMetadata{Name: name, Version: version, Edition: "2024"},
		Build:   types.BuildConfig{OptLevel: 2, AddressSize: 64},
	}
}

func newTestFetcherCore(t *testing.T, registry *fakeRegistry, vcs *fakeVCS, manifest types.Manifest) (FetcherCore, *countingArchive) {
	t.Helper()
	archive := &countingArchive{}
	cache := memCache{root: t.TempDir()}
	return NewFetcherCore(registry, vcs, cache, dirManifests{manifest: manifest}, archive), archive
}

func TestFetchRegistryDownloadsOncePerIdentity(t *testing.T) {
	registry := &fakeRegistry{archives: map[string][]byte{
		"serde@1.0.0": []byte("archive"),
	}}
	fetcher, archive := newTestFetcherCore(t, registry, &fakeVCS{}, validManifest("serde", "1.0.0"))

	first, err := fetcher.FetchOne(t.Context(), "serde", types.Dependency{Version: "1.0.0"})
	require.NoError(t, err)
	assert.Equal(t, "serde", first.Name)
	assert.Equal(t, types.SourceKindRegistry, first.Source)

	second, err := fetcher.FetchOne(t.Context(), "serde", types.Dependency{Version: "1.0.0"})
	require.NoError(t, err)
	assert.Equal(t, first.Dir, second.Dir)

	assert.Len(t, registry.downloads, 1, "cache hit must not re-download")
	assert.Equal(t, 1, archive.extracts)
}

func TestFetchRegistryDistinctVersionsDistinctDirs(t *testing.T) {
	registry := &fakeRegistry{archives: map[string][]byte{
		"serde@1.0.0": []byte("one"),
		"serde@2.0.0": []byte("two"),
	}}
	fetcher, _ := newTestFetcherCore(t, registry, &fakeVCS{}, validManifest("serde", "1.0.0"))

	first, err := fetcher.FetchOne(t.Context(), "serde", types.Dependency{Version: "1.0.0"})
	require.NoError(t, err)
	second, err := fetcher.FetchOne(t.Context(), "serde", types.Dependency{Version: "2.0.0"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Dir, second.Dir)
	assert.Len(t, registry.downloads, 2)
}

func TestFetchRegistryDownloadFailurePropagates(t *testing.T) {
	registry := &fakeRegistry{}
	fetcher, archive := newTestFetcherCore(t, registry, &fakeVCS{}, validManifest("serde", "1.0.0"))

	_, err := fetcher.FetchOne(t.Context(), "serde", types.Dependency{Version: "1.0.0"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.Equal(t, 0, archive.extracts, "failed downloads must not be cached")
}

func TestFetchPathAliasesDirectory(t *testing.T) {
	dir := t.TempDir()
	fetcher, _ := newTestFetcherCore(t, &fakeRegistry{}, &fakeVCS{}, validManifest("local", "0.1.0"))

	record, err := fetcher.FetchOne(t.Context(), "local", types.Dependency{Path: dir})
	require.NoError(t, err)
	assert.Equal(t, dir, record.Dir)
	assert.Equal(t, types.SourceKindPath, record.Source)
}

func TestFetchPathMissingDirectory(t *testing.T) {
	fetcher, _ := newTestFetcherCore(t, &fakeRegistry{}, &fakeVCS{}, validManifest("local", "0.1.0"))

	_, err := fetcher.FetchOne(t.Context(), "local", types.Dependency{Path: filepath.Join(t.TempDir(), "absent")})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "path dependency not found")
}

func TestFetchGitDefaultsToHeadIdentity(t *testing.T) {
	vcs := &fakeVCS{}
	fetcher, _ := newTestFetcherCore(t, &fakeRegistry{}, vcs, validManifest("tool", "0.2.0"))

	record, err := fetcher.FetchOne(t.Context(), "tool", types.Dependency{Git: "https://example.com/org/tool.git"})
	require.NoError(t, err)
	assert.Equal(t, types.SourceKindGit, record.Source)
	assert.Contains(t, record.Dir, "https___example.com_org_tool.git-HEAD")
	require.Len(t, vcs.clones, 1)
	assert.Equal(t, "https://example.com/org/tool.git|", vcs.clones[0], "no branch must be passed to the clone")
	assert.Empty(t, vcs.checkouts)
}

func TestFetchGitRefPriorityBranchOverTagOverRev(t *testing.T) {
	cases := []struct {
		name string
		dep  types.Dependency
		ref  string
	}{
		{"branch wins", types.Dependency{Git: "u", Branch: "main", Tag: "v1", Rev: "abc"}, "main"},
		{"tag next", types.Dependency{Git: "u", Tag: "v1", Rev: "abc"}, "v1"},
		{"rev last", types.Dependency{Git: "u", Rev: "abc"}, "abc"},
		{"head default", types.Dependency{Git: "u"}, "HEAD"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ref, gitRef(tc.dep))
		})
	}
}

func TestFetchGitRevCheckedOutAfterClone(t *testing.T) {
	vcs := &fakeVCS{}
	fetcher, _ := newTestFetcherCore(t, &fakeRegistry{}, vcs, validManifest("tool", "0.2.0"))

	_, err := fetcher.FetchOne(t.Context(), "tool", types.Dependency{Git: "https://example.com/tool.git", Rev: "deadbeef"})
	require.NoError(t, err)
	require.Len(t, vcs.clones, 1)
	assert.Equal(t, "https://example.com/tool.git|", vcs.clones[0], "a rev is not a clone constraint")
	assert.Equal(t, []string{"deadbeef"}, vcs.checkouts)
}

func TestFetchGitCacheHitSkipsClone(t *testing.T) {
	vcs := &fakeVCS{}
	fetcher, _ := newTestFetcherCore(t, &fakeRegistry{}, vcs, validManifest("tool", "0.2.0"))
	dep := types.Dependency{Git: "https://example.com/tool.git", Branch: "main"}

	_, err := fetcher.FetchOne(t.Context(), "tool", dep)
	require.NoError(t, err)
	_, err = fetcher.FetchOne(t.Context(), "tool", dep)
	require.NoError(t, err)

	assert.Len(t, vcs.clones, 1)
}

func TestFetchOneRejectsEmptyDeclaration(t *testing.T) {
	registry := &fakeRegistry{}
	fetcher, archive := newTestFetcherCore(t, registry, &fakeVCS{}, validManifest("x", "1.0.0"))

	_, err := fetcher.FetchOne(t.Context(), "broken", types.Dependency{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "invalid dependency specification for broken")
	assert.Empty(t, registry.downloads)
	assert.Equal(t, 0, archive.extracts)
}

func TestFetchOneNameFromLoadedManifest(t *testing.T) {
	registry := &fakeRegistry{archives: map[string][]byte{
		"alias@1.0.0": []byte("archive"),
	}}
	fetcher, _ := newTestFetcherCore(t, registry, &fakeVCS{}, validManifest("actual-name", "1.0.0"))

	record, err := fetcher.FetchOne(t.Context(), "alias", types.Dependency{Version: "1.0.0"})
	require.NoError(t, err)
	assert.Equal(t, "actual-name", record.Name, "record identity comes from the loaded manifest")
}

func TestFetchOneRejectsInvalidLoadedManifest(t *testing.T) {
	registry := &fakeRegistry{archives: map[string][]byte{
		"bad@1.0.0": []byte("archive"),
	}}
	manifest := validManifest("bad", "1.0.0")
	manifest.Package.Edition = "1999"
	fetcher, _ := newTestFetcherCore(t, registry, &fakeVCS{}, manifest)

	_, err := fetcher.FetchOne(t.Context(), "bad", types.Dependency{Version: "1.0.0"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "unsupported edition")
}
