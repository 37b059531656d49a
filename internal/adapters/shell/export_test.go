package shell

import "go.trai.ch/extq/internal/core/ports"

// NewRunnerWithEnv creates a Runner with a fixed environment.
func NewRunnerWithEnv(logger ports.Logger, env []string) *Runner {
	return &Runner{logger: logger, env: env}
}

// NewLogWriter exposes the line-buffering writer.
func NewLogWriter(logger ports.Logger, level string) interface {
	Write(p []byte) (int, error)
	Close() error
} {
	return &logWriter{logger: logger, level: level}
}
