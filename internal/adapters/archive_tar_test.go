package adapters

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePackageFile(t *testing.T, root string, rel string, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestArchivePackThenExtract(t *testing.T) {
	root := t.TempDir()
	writePackageFile(t, root, "Quantum.toml", "[package]\nname = \"pkg\"\n")
	writePackageFile(t, root, filepath.Join("src", "main.qm"), "module pkg {}\n")

	archive := NewArchiveTarAdapter()
	data, err := archive.Pack(root, []string{"Quantum.toml", filepath.Join("src", "main.qm")})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	dest := filepath.Join(t.TempDir(), "out")
	require.NoError(t, archive.Extract(data, dest))

	manifest, err := os.ReadFile(filepath.Join(dest, "Quantum.toml"))
	require.NoError(t, err)
	assert.Equal(t, "[package]\nname = \"pkg\"\n", string(manifest))

	source, err := os.ReadFile(filepath.Join(dest, "src", "main.qm"))
	require.NoError(t, err)
	assert.Equal(t, "module pkg {}\n", string(source))
}

func TestArchivePackMissingInput(t *testing.T) {
	_, err := NewArchiveTarAdapter().Pack(t.TempDir(), []string{"absent.qm"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "archive input missing: absent.qm")
}

func TestArchiveExtractRejectsEscapingEntry(t *testing.T) {
	var buf bytes.Buffer
	writer := tar.NewWriter(&buf)
	content := []byte("evil")
	require.NoError(t, writer.WriteHeader(&tar.Header{
		Name:     "../escape.txt",
		Typeflag: tar.TypeReg,
		Mode:     0o644,
		Size:     int64(len(content)),
	}))
	_, err := writer.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	parent := t.TempDir()
	dest := filepath.Join(parent, "out")
	err = NewArchiveTarAdapter().Extract(buf.Bytes(), dest)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "escapes extraction root")
	assert.NoFileExists(t, filepath.Join(parent, "escape.txt"))
}

func TestArchiveExtractMalformedData(t *testing.T) {
	err := NewArchiveTarAdapter().Extract([]byte("not a tar archive at all"), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed archive")
}

func TestArchiveExtractSkipsSpecialEntries(t *testing.T) {
	var buf bytes.Buffer
	writer := tar.NewWriter(&buf)
	require.NoError(t, writer.WriteHeader(&tar.Header{
		Name:     "link",
		Typeflag: tar.TypeSymlink,
		Linkname: "/etc/passwd",
	}))
	content := []byte("ok")
	require.NoError(t, writer.WriteHeader(&tar.Header{
		Name:     "kept.txt",
		Typeflag: tar.TypeReg,
		Mode:     0o644,
		Size:     int64(len(content)),
	}))
	_, err := writer.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	dest := t.TempDir()
	require.NoError(t, NewArchiveTarAdapter().Extract(buf.Bytes(), dest))
	assert.NoFileExists(t, filepath.Join(dest, "link"))
	assert.FileExists(t, filepath.Join(dest, "kept.txt"))
}
