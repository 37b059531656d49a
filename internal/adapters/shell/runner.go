// Package shell runs build command lines through an embedded POSIX shell interpreter.
package shell

import (
	"bytes"
	"context"
	"os"
	"strings"

	"go.trai.ch/extq/internal/core/domain"
	"go.trai.ch/extq/internal/core/ports"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Runner implements ports.CommandRunner using mvdan.cc/sh.
type Runner struct {
	logger ports.Logger
	env    []string
}

// NewRunner creates a new Runner inheriting the process environment.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
		env:    os.Environ(),
	}
}

// Run parses script and executes it in dir. Stdout lines are logged as info and
// stderr lines as warnings.
func (r *Runner) Run(ctx context.Context, dir, script string) error {
	file, err := syntax.NewParser().Parse(strings.NewReader(script), "")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "command", script)
	}

	stdout := &logWriter{logger: r.logger, level: "info"}
	stderr := &logWriter{logger: r.logger, level: "warn"}
	defer func() {
		_ = stdout.Close()
		_ = stderr.Close()
	}()

	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(r.env...)),
		interp.StdIO(nil, stdout, stderr),
	)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "dir", dir)
	}

	if err := runner.Run(ctx, file); err != nil {
		exitCode := -1
		if status, ok := interp.IsExitStatus(err); ok {
			exitCode = int(status)
		}

		wrapped := zerr.Wrap(err, domain.ErrBuildFailed.Error())
		wrapped = zerr.With(wrapped, "command", script)
		wrapped = zerr.With(wrapped, "dir", dir)
		return zerr.With(wrapped, "exit_code", exitCode)
	}

	return nil
}

type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")

	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Warn(msg)
	}
}
