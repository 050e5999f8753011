package ports

import "quantum/internal/types"

// CredentialsPort loads registry authentication for the current user.
type CredentialsPort interface {
	// Load returns the stored credentials. A missing credentials file
	// is not an error; it yields empty credentials.
	Load() (types.Credentials, error)
}
