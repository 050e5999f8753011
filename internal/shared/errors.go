package shared

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Error constructors for the resolution failure taxonomy. Each class
// carries a distinct code (and a stable message prefix where codes
// overlap) so callers can map failures to exit codes and tests can
// discriminate without string matching on causes.

// SpecErr reports a dependency declaration that selects no resolution
// variant (none of version, git, or path is set).
func SpecErr(name string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid dependency specification for %s", name))
}

// DepthErr reports that the traversal depth bound was exceeded,
// signalling a suspected dependency cycle.
func DepthErr(name string, depth int) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeResourceExhausted).
		WithMsg(fmt.Sprintf("dependency depth limit exceeded at %s (depth %d, possible circular dependency)", name, depth))
}

// NotFoundErr reports a missing local path or a missing registry
// artifact.
func NotFoundErr(msg string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(msg)
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}

// FetchErr reports a network failure or a non-zero-exit external
// process invocation.
func FetchErr(msg string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeUnavailable).
		WithMsg(msg)
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}

// ExtractErr reports an archive that could not be unpacked.
func ExtractErr(msg string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(msg)
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}

// ParseErr reports manifest or lockfile text that is not well-formed.
func ParseErr(msg string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("failed to parse " + msg)
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}

// InvalidErr reports an invalid argument outside the declaration
// taxonomy (bad request fields, malformed manifests caught by
// validation).
func InvalidErr(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg)
}
