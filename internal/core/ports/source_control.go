package ports

import "context"

// SourceControl performs the git operations needed to build the filtering library.
//
//go:generate mockgen -source=source_control.go -destination=mocks/mock_source_control.go -package=mocks
type SourceControl interface {
	// Available reports an error when git is not installed.
	Available() error
	// Clone clones repository into dir.
	Clone(ctx context.Context, repository, dir string) error
	// Checkout checks out ref in the working copy at dir.
	Checkout(ctx context.Context, dir, ref string) error
}
