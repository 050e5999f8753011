package adapters

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"quantum/internal/ports"
	"quantum/internal/shared"
	"quantum/internal/types"
)

// CredentialsFileAdapter reads registry tokens from the user's
// credentials file (~/.quantum/credentials.yaml by default).
type CredentialsFileAdapter struct {
	Path string
}

func NewCredentialsFileAdapter(path string) CredentialsFileAdapter {
	return CredentialsFileAdapter{Path: path}
}

// DefaultCredentialsPath returns ~/.quantum/credentials.yaml, or an
// empty path when the home directory cannot be determined (publishing
// then proceeds anonymously).
func DefaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quantum", "credentials.yaml")
}

func (a CredentialsFileAdapter) Load() (types.Credentials, error) {
	if a.Path == "" {
		return types.Credentials{}, nil
	}
	data, err := os.ReadFile(a.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return types.Credentials{}, nil
	}
	if err != nil {
		return types.Credentials{}, shared.NotFoundErr("failed to read credentials file", err)
	}
	var creds types.Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return types.Credentials{}, shared.ParseErr("credentials file", err)
	}
	return creds, nil
}

var _ ports.CredentialsPort = CredentialsFileAdapter{}
