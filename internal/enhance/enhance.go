// Package enhance rewrites note bodies through an external text-generation
// CLI before they are rendered.
package enhance

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// instruction is prepended to every note body sent to the rewriter.
const instruction = "Summarize, fix grammar, add headings and bullet points, and rewrite cleanly:"

// Rewriter maps raw markdown to enhanced markdown.
type Rewriter interface {
	Rewrite(ctx context.Context, markdown string) (string, error)
	Name() string
}

// CommandRewriter shells out to an AI CLI, passing the full prompt as its
// final argument, and returns trimmed stdout. Failures include captured
// stderr so the caller can log something actionable.
type CommandRewriter struct {
	Command string
	Args    []string
	Timeout time.Duration
}

func NewCommandRewriter(command string, timeout time.Duration) *CommandRewriter {
	return &CommandRewriter{Command: command, Timeout: timeout}
}

func (r *CommandRewriter) Name() string { return r.Command }

func (r *CommandRewriter) Rewrite(ctx context.Context, markdown string) (string, error) {
	if r.Command == "" {
		return "", errors.New("enhance: no command configured")
	}
	path, err := exec.LookPath(r.Command)
	if err != nil {
		return "", fmt.Errorf("enhance: %w", err)
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	prompt := instruction + "\n" + markdown
	args := append(append([]string{}, r.Args...), prompt)
	cmd := exec.CommandContext(ctx, path, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(errb.String()); msg != "" {
			return "", fmt.Errorf("enhance: %s: %v: %s", r.Command, err, msg)
		}
		return "", fmt.Errorf("enhance: %s: %w", r.Command, err)
	}
	return strings.TrimSpace(out.String()), nil
}

// NopRewriter returns its input unchanged; used when enhancement is disabled
// and in tests.
type NopRewriter struct{}

func (NopRewriter) Name() string { return "none" }

func (NopRewriter) Rewrite(_ context.Context, markdown string) (string, error) {
	return markdown, nil
}
