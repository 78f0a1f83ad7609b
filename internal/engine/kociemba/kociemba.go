// Package kociemba drives an external two-phase solver binary.
//
// The binary is called as `<path> [args...] <facelets>` and must print
// the solution as space-separated move tokens on stdout. The widely used
// `kociemba` command-line tool follows this convention, printing lines
// starting with "Error" for states it cannot handle.
package kociemba

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultPath is the binary looked up on PATH when none is configured.
const DefaultPath = "kociemba"

// waitDelay bounds how long Solve waits for the output pipes after the
// process was killed.
const waitDelay = 2 * time.Second

// Engine implements cubesolve.Engine by running a solver process.
type Engine struct {
	path   string
	args   []string
	logger logrus.FieldLogger
}

// New creates an engine for the binary at path. Extra args go before the
// facelet argument.
func New(path string, args ...string) *Engine {
	if path == "" {
		path = DefaultPath
	}
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	return &Engine{path: path, args: args, logger: quiet}
}

// SetLogger sets the logger for process diagnostics.
func (e *Engine) SetLogger(l logrus.FieldLogger) {
	if l != nil {
		e.logger = l
	}
}

// Name returns "kociemba".
func (e *Engine) Name() string { return "kociemba" }

// Path returns the binary the engine runs.
func (e *Engine) Path() string { return e.path }

// Solve runs the binary once. The process is killed when ctx is done.
func (e *Engine) Solve(ctx context.Context, facelets string) (string, error) {
	args := append(append([]string{}, e.args...), facelets)
	cmd := exec.CommandContext(ctx, e.path, args...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	e.logger.WithFields(logrus.Fields{"path": e.path, "args": args}).Debug("kociemba: starting solver")
	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		if msg != "" {
			return "", fmt.Errorf("run %s: %w: %s", e.path, err, msg)
		}
		return "", fmt.Errorf("run %s: %w", e.path, err)
	}

	out := strings.TrimSpace(stdout.String())
	e.logger.WithField("output", out).Debug("kociemba: solver finished")
	return out, nil
}
