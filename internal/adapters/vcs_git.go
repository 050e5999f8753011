package adapters

import (
	"context"
	"os/exec"

	"quantum/internal/ports"
	"quantum/internal/shared"
)

// GitCLIAdapter runs the external git tool.
type GitCLIAdapter struct{}

func NewGitCLIAdapter() GitCLIAdapter {
	return GitCLIAdapter{}
}

func (a GitCLIAdapter) Clone(ctx context.Context, url string, branch string, dest string) error {
	args := []string{"clone"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, url, dest)
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return shared.FetchErr("git clone failed: "+url, shared.CommandError(output, err))
	}
	return nil
}

func (a GitCLIAdapter) CheckoutRevision(ctx context.Context, dest string, rev string) error {
	cmd := exec.CommandContext(ctx, "git", "-C", dest, "checkout", rev)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return shared.FetchErr("git checkout failed: "+rev, shared.CommandError(output, err))
	}
	return nil
}

var _ ports.VCSPort = GitCLIAdapter{}
