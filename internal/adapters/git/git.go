// Package git drives the git CLI to fetch the filtering library sources.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/extq/internal/core/domain"
	"go.trai.ch/zerr"
)

const binary = "git"

// Client implements ports.SourceControl.
type Client struct {
	binary string
}

// NewClient returns a Client using the git found on PATH.
func NewClient() *Client {
	return &Client{binary: binary}
}

// Available reports domain.ErrToolNotFound when git cannot be found on PATH.
func (c *Client) Available() error {
	if _, err := exec.LookPath(c.binary); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrToolNotFound.Error()), "tool", c.binary)
	}
	return nil
}

// Clone clones repository into dir. The parent of dir must exist.
func (c *Client) Clone(ctx context.Context, repository, dir string) error {
	_, err := c.run(ctx, filepath.Dir(dir), "clone", "--quiet", repository, filepath.Base(dir))
	return err
}

// Checkout checks out ref (for example "tags/v2.11.0") in the working copy at dir.
func (c *Client) Checkout(ctx context.Context, dir, ref string) error {
	_, err := c.run(ctx, dir, "checkout", "--quiet", ref)
	return err
}

// run executes git against dir and returns stdout. Stderr is attached to the error.
func (c *Client) run(ctx context.Context, dir string, args ...string) (string, error) {
	fullArgs := append([]string{"-C", dir}, args...)

	var stdout, stderr bytes.Buffer
	// #nosec G204 -- arguments come from configuration, not from a shell
	cmd := exec.CommandContext(ctx, c.binary, fullArgs...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrSourceControlFailed.Error())
		wrapped = zerr.With(wrapped, "command", "git "+strings.Join(args, " "))
		wrapped = zerr.With(wrapped, "dir", dir)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			wrapped = zerr.With(wrapped, "stderr", msg)
		}
		return "", wrapped
	}

	return stdout.String(), nil
}
