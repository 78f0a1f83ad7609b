// Package search is a bounded in-process move-search engine.
//
// It runs iterative-deepening depth-first search over the 18 face turns
// and finds optimal solutions for states a few moves from solved. It is
// meant for near-solved states and tests; deep scrambles need an external
// two-phase solver.
package search

import (
	"context"
	"fmt"
	"io"

	"github.com/SeamusWaldron/cubesolve"
	"github.com/sirupsen/logrus"
)

// DefaultMaxDepth bounds the search when no depth is configured.
const DefaultMaxDepth = 6

// checkEvery is how many nodes are expanded between context checks.
// Must be a power of two.
const checkEvery = 4096

// Engine implements cubesolve.Engine.
type Engine struct {
	maxDepth int
	logger   logrus.FieldLogger
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxDepth sets the deepest search. Non-positive values keep
// DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

// WithLogger sets the logger for per-depth progress.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates a search engine.
func New(opts ...Option) *Engine {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	e := &Engine{maxDepth: DefaultMaxDepth, logger: quiet}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns "search".
func (e *Engine) Name() string { return "search" }

// MaxDepth returns the configured bound.
func (e *Engine) MaxDepth() int { return e.maxDepth }

// Solve finds a shortest solution of at most MaxDepth moves. A state
// needing more moves yields an error wrapping cubesolve.ErrNoSolutionFound.
func (e *Engine) Solve(ctx context.Context, facelets string) (string, error) {
	s, err := cubesolve.NewState(facelets)
	if err != nil {
		return "", err
	}
	if s.IsSolved() {
		return "", nil
	}

	start := *cubesolve.CubeFromState(s)
	sr := &searcher{ctx: ctx, path: make([]cubesolve.Move, 0, e.maxDepth)}
	for depth := 1; depth <= e.maxDepth; depth++ {
		found, err := sr.dfs(start, depth, -1)
		if err != nil {
			return "", err
		}
		if found {
			e.logger.WithFields(logrus.Fields{"depth": depth, "nodes": sr.nodes}).Debug("search: solution found")
			return cubesolve.CanonicalText(sr.path), nil
		}
		e.logger.WithFields(logrus.Fields{"depth": depth, "nodes": sr.nodes}).Debug("search: depth exhausted")
	}
	return "", fmt.Errorf("search: nothing within %d moves: %w", e.maxDepth, cubesolve.ErrNoSolutionFound)
}

type searcher struct {
	ctx   context.Context
	nodes int
	path  []cubesolve.Move
}

// dfs looks for a solution of exactly remaining moves. last is the face
// index of the previous move, -1 at the root.
func (s *searcher) dfs(c cubesolve.Cube, remaining, last int) (bool, error) {
	if remaining == 0 {
		return c.IsSolved(), nil
	}

	s.nodes++
	if s.nodes&(checkEvery-1) == 0 {
		if err := s.ctx.Err(); err != nil {
			return false, err
		}
	}

	for _, m := range cubesolve.AllMoves {
		fi := m.Face.Index()
		// Same face twice is one move; opposite faces commute, so only the
		// ascending order is tried.
		if last >= 0 && (fi == last || fi+3 == last) {
			continue
		}

		next := c
		next.ApplyMove(m)
		s.path = append(s.path, m)
		found, err := s.dfs(next, remaining-1, fi)
		if err != nil || found {
			return found, err
		}
		s.path = s.path[:len(s.path)-1]
	}
	return false, nil
}
