package ports

import "context"

// CommandRunner runs shell command lines such as "yarn && yarn build".
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes script with dir as the working directory.
	Run(ctx context.Context, dir, script string) error
}
