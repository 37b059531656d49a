package nodejs

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"go.trai.ch/extq/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	stderrLimit = 8 << 10
	exitTimeout = 5 * time.Second
)

type request struct {
	ID   int    `json:"id"`
	Op   string `json:"op"`
	Args any    `json:"args,omitempty"`
}

type response struct {
	ID     int             `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

// process is a running bridge. Calls are serialized.
type process struct {
	mu     sync.Mutex
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
	stderr *tailBuffer
	nextID int
	closed bool
}

func startProcess(ctx context.Context, cmd *exec.Cmd) (*process, error) {
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrLibraryLoadFailed.Error())
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrLibraryLoadFailed.Error())
	}

	p := &process{
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReader(stdout),
		stderr: &tailBuffer{limit: stderrLimit},
	}
	cmd.Stderr = p.stderr

	if err := cmd.Start(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLibraryLoadFailed.Error())
	}

	var ready response
	if err := p.receive(ctx, &ready); err != nil {
		p.kill()
		_ = cmd.Wait()
		return nil, p.annotate(zerr.Wrap(err, domain.ErrLibraryLoadFailed.Error()))
	}

	return p, nil
}

// call sends op and decodes its result into out, which may be nil.
func (p *process) call(ctx context.Context, op string, args, out any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return zerr.With(domain.ErrBridgeClosed, "op", op)
	}

	p.nextID++
	line, err := json.Marshal(request{ID: p.nextID, Op: op, Args: args})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBridgeFailed.Error()), "op", op)
	}
	if _, err := p.stdin.Write(append(line, '\n')); err != nil {
		return p.annotate(zerr.With(zerr.Wrap(err, domain.ErrBridgeFailed.Error()), "op", op))
	}

	var resp response
	if err := p.receive(ctx, &resp); err != nil {
		return p.annotate(zerr.With(zerr.Wrap(err, domain.ErrBridgeFailed.Error()), "op", op))
	}
	if resp.ID != p.nextID {
		err := zerr.With(domain.ErrBridgeFailed, "op", op)
		return zerr.With(err, "response_id", resp.ID)
	}
	if resp.Error != "" {
		return zerr.With(zerr.Wrap(zerr.New(resp.Error), domain.ErrBridgeFailed.Error()), "op", op)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Result, out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBridgeFailed.Error()), "op", op)
	}
	return nil
}

// receive reads one response line. The process is killed if ctx ends first.
func (p *process) receive(ctx context.Context, resp *response) error {
	type result struct {
		line []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		line, err := p.stdout.ReadBytes('\n')
		done <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		p.kill()
		<-done
		return ctx.Err()
	case r := <-done:
		if r.err != nil {
			return r.err
		}
		return json.Unmarshal(r.line, resp)
	}
}

// close ends the bridge by closing its input, killing it if it does not exit in time.
func (p *process) close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	_ = p.stdin.Close()

	exited := make(chan struct{})
	go func() {
		_ = p.cmd.Wait()
		close(exited)
	}()

	select {
	case <-exited:
	case <-time.After(exitTimeout):
		p.kill()
		<-exited
	}
	return nil
}

func (p *process) kill() {
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
}

// annotate attaches the tail of the bridge's stderr to err.
func (p *process) annotate(err error) error {
	if msg := strings.TrimSpace(p.stderr.String()); msg != "" {
		return zerr.With(err, "stderr", msg)
	}
	return err
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	mu    sync.Mutex
	buf   bytes.Buffer
	limit int
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.buf.Write(p)
	if over := b.buf.Len() - b.limit; over > 0 {
		b.buf.Next(over)
	}
	return len(p), nil
}

func (b *tailBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
