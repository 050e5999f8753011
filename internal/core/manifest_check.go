package core

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"

	"quantum/internal/shared"
	"quantum/internal/types"
)

var supportedEditions = map[string]struct{}{
	"2024": {},
}

// ValidateManifest checks the structural rules every loaded manifest
// must satisfy before it participates in resolution or publishing.
func ValidateManifest(ctx context.Context, manifest types.Manifest) error {
	assert.NotEmpty(ctx, manifest.Package.Name, "package.name must be set")
	assert.NotEmpty(ctx, manifest.Package.Version, "package.version must be set")

	if !isValidPackageName(manifest.Package.Name) {
		return shared.InvalidErr("package name can only contain alphanumeric characters, underscores, and hyphens")
	}
	if !isValidVersion(manifest.Package.Version) {
		return shared.InvalidErr(fmt.Sprintf("invalid version format: %s", manifest.Package.Version))
	}
	if _, ok := supportedEditions[manifest.Package.Edition]; !ok {
		return shared.InvalidErr(fmt.Sprintf("unsupported edition: %s", manifest.Package.Edition))
	}
	if manifest.Build.OptLevel < 0 || manifest.Build.OptLevel > 3 {
		return shared.InvalidErr("build.opt_level must be 0-3")
	}
	if manifest.Build.AddressSize != 32 && manifest.Build.AddressSize != 64 {
		return shared.InvalidErr("build.address_size must be 32 or 64")
	}
	return nil
}

// ValidatePackageName checks a package name on its own, for commands
// that take a name before any manifest exists.
func ValidatePackageName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.InvalidErr("package name cannot be empty")
	}
	if !isValidPackageName(name) {
		return shared.InvalidErr("package name can only contain alphanumeric characters, underscores, and hyphens")
	}
	return nil
}

func isValidPackageName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

// isValidVersion accepts dotted numeric triples such as "0.1.0".
func isValidVersion(version string) bool {
	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		return false
	}
	for _, part := range parts {
		if _, err := strconv.ParseUint(part, 10, 32); err != nil {
			return false
		}
	}
	return true
}
