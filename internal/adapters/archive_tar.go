package adapters

import (
	"archive/tar"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"quantum/internal/ports"
	"quantum/internal/shared"
)

// ArchiveTarAdapter packs and extracts the registry's directory-tree
// archive format.
type ArchiveTarAdapter struct{}

func NewArchiveTarAdapter() ArchiveTarAdapter {
	return ArchiveTarAdapter{}
}

func (a ArchiveTarAdapter) Extract(data []byte, dest string) error {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return shared.ExtractErr("failed to create extraction directory", err)
	}
	reader := tar.NewReader(bytes.NewReader(data))
	for {
		header, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return shared.ExtractErr("malformed archive", err)
		}
		target, err := securePath(dest, header.Name)
		if err != nil {
			return err
		}
		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return shared.ExtractErr("failed to create archive directory", err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return shared.ExtractErr("failed to create archive directory", err)
			}
			if err := writeArchiveFile(target, reader, header.Mode); err != nil {
				return err
			}
		default:
			// Links and special files are not part of the package
			// archive format.
			continue
		}
	}
}

func (a ArchiveTarAdapter) Pack(root string, files []string) ([]byte, error) {
	var buf bytes.Buffer
	writer := tar.NewWriter(&buf)
	for _, rel := range files {
		abs := filepath.Join(root, rel)
		info, err := os.Stat(abs)
		if err != nil {
			return nil, shared.NotFoundErr("archive input missing: "+rel, err)
		}
		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return nil, packErr("failed to build archive header", err)
		}
		header.Name = filepath.ToSlash(rel)
		if err := writer.WriteHeader(header); err != nil {
			return nil, packErr("failed to write archive header", err)
		}
		data, err := os.ReadFile(abs)
		if err != nil {
			return nil, packErr("failed to read archive input", err)
		}
		if _, err := writer.Write(data); err != nil {
			return nil, packErr("failed to write archive entry", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, packErr("failed to finalize archive", err)
	}
	return buf.Bytes(), nil
}

func packErr(msg string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(msg).
		WithCause(cause)
}

// securePath rejects entries that would escape the extraction root.
func securePath(dest string, name string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", shared.ExtractErr("archive entry escapes extraction root: "+name, nil)
	}
	return filepath.Join(dest, cleaned), nil
}

func writeArchiveFile(target string, reader io.Reader, mode int64) error {
	file, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(mode&0o777))
	if err != nil {
		return shared.ExtractErr("failed to create archive file", err)
	}
	defer file.Close()
	if _, err := io.Copy(file, reader); err != nil {
		return shared.ExtractErr("failed to write archive file", err)
	}
	return nil
}

var _ ports.ArchivePort = ArchiveTarAdapter{}
