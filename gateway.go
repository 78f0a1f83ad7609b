package cubesolve

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Engine is the contract for an external move-search engine.
//
// Solve receives the 54-character facelet text of a legal state and
// returns space-separated move tokens that solve it. Engines report an
// exhausted search by returning an error wrapping ErrNoSolutionFound. They
// must stop work and release resources once ctx is done.
type Engine interface {
	Name() string
	Solve(ctx context.Context, facelets string) (string, error)
}

// Solution is a successful Gateway.Solve result.
type Solution struct {
	ID      string        // Correlates log lines of one solve
	Engine  string        // Name of the engine that answered
	Moves   []Move        // Empty when the state was already solved
	Elapsed time.Duration // Time spent in the engine
}

// String returns the canonical text of the moves.
func (s *Solution) String() string {
	return CanonicalText(s.Moves)
}

// Gateway is the only caller of an Engine. It checks solvability before
// delegating, turns the engine's raw answer into moves or typed errors,
// and by default verifies that the moves really solve the state.
type Gateway struct {
	engine Engine
	cfg    *config
}

// NewGateway creates a gateway in front of engine.
func NewGateway(engine Engine, opts ...Option) *Gateway {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Gateway{engine: engine, cfg: cfg}
}

// SolveText normalizes raw, builds a State and solves it.
func (g *Gateway) SolveText(ctx context.Context, raw string) (*Solution, error) {
	s, err := NewState(Normalize(raw))
	if err != nil {
		return nil, err
	}
	return g.Solve(ctx, s)
}

// Solve returns a move sequence that solves s.
//
// Errors: *UnsolvableError when s fails the combinatorial tier,
// ErrNoSolutionFound when the engine gives up, *EngineFailureError for any
// other engine problem including the WithTimeout bound running out, and
// ctx.Err() when the caller abandons the call.
func (g *Gateway) Solve(ctx context.Context, s State) (*Solution, error) {
	sol := &Solution{ID: uuid.NewString(), Engine: g.engine.Name()}
	log := g.cfg.logger.WithFields(logrus.Fields{
		"solve_id": sol.ID,
		"engine":   sol.Engine,
	})

	if err := CheckSolvable(s); err != nil {
		log.WithError(err).Debug("state rejected before delegation")
		return nil, err
	}
	if s.IsSolved() {
		log.Debug("state already solved")
		sol.Moves = []Move{}
		return sol, nil
	}

	parent := ctx
	if g.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.timeout)
		defer cancel()
	}

	type result struct {
		out string
		err error
	}
	// Buffered so the engine goroutine can always finish its send.
	done := make(chan result, 1)
	start := time.Now()
	facelets := s.String()
	log.WithField("facelets", facelets).Debug("delegating to engine")
	go func() {
		out, err := g.engine.Solve(ctx, facelets)
		done <- result{out: out, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		err := g.abandoned(parent, ctx)
		log.WithError(err).Info("solve abandoned")
		return nil, err
	case res = <-done:
	}
	sol.Elapsed = time.Since(start)

	if res.err != nil && ctx.Err() != nil {
		return nil, g.abandoned(parent, ctx)
	}
	moves, err := g.interpret(res.out, res.err)
	if err != nil {
		log.WithError(err).Warn("engine answer rejected")
		return nil, err
	}

	if g.cfg.verify {
		c := CubeFromState(s)
		c.ApplyMoves(moves)
		if !c.IsSolved() {
			err := &EngineFailureError{
				Engine: sol.Engine,
				Detail: "returned sequence " + CanonicalText(moves) + " does not solve the state",
			}
			log.WithError(err).Warn("verification failed")
			return nil, err
		}
	}

	sol.Moves = moves
	log.WithFields(logrus.Fields{
		"moves":   len(moves),
		"elapsed": sol.Elapsed,
	}).Info("solved")
	return sol, nil
}

// abandoned reports why ctx ended. The caller's own cancellation or
// deadline comes back as is; the gateway's timeout is an engine failure.
func (g *Gateway) abandoned(parent, ctx context.Context) error {
	if parent.Err() != nil {
		return parent.Err()
	}
	return &EngineFailureError{
		Engine: g.engine.Name(),
		Detail: "timed out after " + g.cfg.timeout.String(),
		Err:    ctx.Err(),
	}
}

// interpret translates the engine's raw answer.
func (g *Gateway) interpret(out string, engineErr error) ([]Move, error) {
	name := g.engine.Name()
	if engineErr != nil {
		if errors.Is(engineErr, ErrNoSolutionFound) {
			return nil, engineErr
		}
		return nil, &EngineFailureError{Engine: name, Detail: engineErr.Error(), Err: engineErr}
	}

	out = strings.TrimSpace(out)
	if strings.HasPrefix(out, "Error") {
		return nil, &EngineFailureError{Engine: name, Detail: out}
	}

	moves, err := ParseMoves(out)
	if err != nil {
		return nil, &EngineFailureError{Engine: name, Detail: "unreadable answer " + `"` + out + `"`, Err: err}
	}
	return moves, nil
}
