package app

import (
	"quantum/internal/adapters"
	"quantum/internal/ports"
)

// Service wires adapters behind ports for the CLI boundary. Fields are
// exported so tests can substitute doubles; NewRegistry exists because
// the registry adapter depends on per-request URL and token.
type Service struct {
	Manifests   ports.ManifestPort
	Lockfiles   ports.LockfileStorePort
	Archive     ports.ArchivePort
	VCS         ports.VCSPort
	Scaffold    ports.ScaffoldPort
	Credentials ports.CredentialsPort
	NewRegistry func(baseURL string, token string) ports.RegistryPort
}

func NewService() Service {
	return Service{
		Manifests:   adapters.NewManifestFileAdapter(),
		Lockfiles:   adapters.NewLockfileFileAdapter(),
		Archive:     adapters.NewArchiveTarAdapter(),
		VCS:         adapters.NewGitCLIAdapter(),
		Scaffold:    adapters.NewScaffoldAdapter(),
		Credentials: adapters.NewCredentialsFileAdapter(adapters.DefaultCredentialsPath()),
		NewRegistry: func(baseURL string, token string) ports.RegistryPort {
			return adapters.NewRegistryHTTPAdapter(baseURL, token)
		},
	}
}

func (s Service) registry(baseURL string) (ports.RegistryPort, error) {
	creds, err := s.Credentials.Load()
	if err != nil {
		return nil, err
	}
	token, _ := creds.TokenFor(baseURL)
	return s.NewRegistry(baseURL, token), nil
}
