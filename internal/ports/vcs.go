package ports

import "context"

// VCSPort invokes the external version control tool. It is a narrow
// capability interface so tests can substitute a double instead of
// shelling out.
type VCSPort interface {
	// Clone clones url into dest. A non-empty branch constrains the
	// clone to that branch.
	Clone(ctx context.Context, url string, branch string, dest string) error

	// CheckoutRevision checks out a specific revision inside an
	// already cloned working tree.
	CheckoutRevision(ctx context.Context, dest string, rev string) error
}
