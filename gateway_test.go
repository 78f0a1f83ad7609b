package cubesolve

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEngine answers with a fixed reply and counts its calls.
type fakeEngine struct {
	reply string
	err   error
	calls atomic.Int32
}

func (e *fakeEngine) Name() string { return "fake" }

func (e *fakeEngine) Solve(ctx context.Context, facelets string) (string, error) {
	e.calls.Add(1)
	return e.reply, e.err
}

// blockingEngine waits until its context is done.
type blockingEngine struct {
	released chan struct{}
}

func (e *blockingEngine) Name() string { return "blocking" }

func (e *blockingEngine) Solve(ctx context.Context, facelets string) (string, error) {
	<-ctx.Done()
	close(e.released)
	return "", ctx.Err()
}

func mustState(t *testing.T, raw string) State {
	t.Helper()
	s, err := NewState(raw)
	require.NoError(t, err)
	return s
}

func TestGatewaySolve(t *testing.T) {
	scramble := []Move{R, U, FPrime}
	engine := &fakeEngine{reply: "F U' R'\n"}
	gw := NewGateway(engine)

	sol, err := gw.Solve(context.Background(), mustState(t, scrambled(scramble...)))
	require.NoError(t, err)
	assert.Equal(t, []Move{F, UPrime, RPrime}, sol.Moves)
	assert.Equal(t, "fake", sol.Engine)
	assert.NotEmpty(t, sol.ID)
	assert.Equal(t, "F U' R'", sol.String())
}

func TestGatewaySolvedStateSkipsEngine(t *testing.T) {
	engine := &fakeEngine{reply: "R"}
	gw := NewGateway(engine)

	sol, err := gw.Solve(context.Background(), SolvedState())
	require.NoError(t, err)
	assert.Empty(t, sol.Moves)
	assert.Equal(t, SolvedText, sol.String())
	assert.Zero(t, engine.calls.Load())
}

func TestGatewayRejectsUnsolvable(t *testing.T) {
	engine := &fakeEngine{reply: "R"}
	gw := NewGateway(engine)
	raw := mutate(solvedText, func(b []byte) { b[5], b[10] = b[10], b[5] })

	_, err := gw.Solve(context.Background(), mustState(t, raw))
	assert.ErrorIs(t, err, ErrUnsolvable)
	assert.Zero(t, engine.calls.Load())
}

func TestGatewaySolveText(t *testing.T) {
	gw := NewGateway(&fakeEngine{reply: "R'"})

	sol, err := gw.SolveText(context.Background(), " "+scrambled(R)+"\n")
	require.NoError(t, err)
	assert.Equal(t, []Move{RPrime}, sol.Moves)

	_, err = gw.SolveText(context.Background(), "UUU")
	assert.ErrorIs(t, err, ErrMalformedState)
}

func TestGatewayEngineErrors(t *testing.T) {
	tests := []struct {
		name   string
		engine *fakeEngine
		check  func(t *testing.T, err error)
	}{
		{
			name:   "no solution passes through",
			engine: &fakeEngine{err: fmt.Errorf("depth 6 exhausted: %w", ErrNoSolutionFound)},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNoSolutionFound)
				assert.NotErrorIs(t, err, ErrEngineFailure)
			},
		},
		{
			name:   "error output",
			engine: &fakeEngine{reply: "Error 8: no solution within the time limit"},
			check: func(t *testing.T, err error) {
				var ef *EngineFailureError
				require.True(t, errors.As(err, &ef))
				assert.Contains(t, ef.Detail, "time limit")
				assert.Equal(t, "fake", ef.Engine)
			},
		},
		{
			name:   "unreadable tokens",
			engine: &fakeEngine{reply: "R U Q"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEngineFailure)
				assert.ErrorIs(t, err, ErrInvalidNotation)
			},
		},
		{
			name:   "process failure",
			engine: &fakeEngine{err: errors.New("exit status 1")},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEngineFailure)
				assert.Contains(t, err.Error(), "exit status 1")
			},
		},
		{
			name:   "wrong answer",
			engine: &fakeEngine{reply: "U"},
			check: func(t *testing.T, err error) {
				var ef *EngineFailureError
				require.True(t, errors.As(err, &ef))
				assert.Contains(t, ef.Detail, "does not solve")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := NewGateway(tt.engine)
			sol, err := gw.Solve(context.Background(), mustState(t, scrambled(R)))
			require.Error(t, err)
			assert.Nil(t, sol)
			tt.check(t, err)
		})
	}
}

func TestGatewayWithoutVerification(t *testing.T) {
	gw := NewGateway(&fakeEngine{reply: "U"}, WithVerification(false))
	sol, err := gw.Solve(context.Background(), mustState(t, scrambled(R)))
	require.NoError(t, err)
	assert.Equal(t, []Move{U}, sol.Moves)
}

func TestGatewayCancellation(t *testing.T) {
	engine := &blockingEngine{released: make(chan struct{})}
	gw := NewGateway(engine)

	s := mustState(t, scrambled(R))
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := gw.Solve(ctx, s)
		errc <- err
	}()
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Solve did not return after cancel")
	}
	select {
	case <-engine.released:
	case <-time.After(5 * time.Second):
		t.Fatal("engine was not released")
	}
}

func TestGatewayTimeout(t *testing.T) {
	engine := &blockingEngine{released: make(chan struct{})}
	gw := NewGateway(engine, WithTimeout(20*time.Millisecond))

	_, err := gw.Solve(context.Background(), mustState(t, scrambled(R)))
	assert.ErrorIs(t, err, ErrEngineFailure)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	var failure *EngineFailureError
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "timed out after 20ms", failure.Detail)
	<-engine.released
}

func TestGatewayCallerDeadline(t *testing.T) {
	engine := &blockingEngine{released: make(chan struct{})}
	gw := NewGateway(engine, WithTimeout(time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := gw.Solve(ctx, mustState(t, scrambled(R)))
	assert.Equal(t, context.DeadlineExceeded, err)
	assert.NotErrorIs(t, err, ErrEngineFailure)
	<-engine.released
}

func TestGatewayLogsSolveID(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	gw := NewGateway(&fakeEngine{reply: "R'"}, WithLogger(logger))

	sol, err := gw.Solve(context.Background(), mustState(t, scrambled(R)))
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "solved", entry.Message)
	assert.Equal(t, sol.ID, entry.Data["solve_id"])
	assert.Equal(t, 1, entry.Data["moves"])
}
