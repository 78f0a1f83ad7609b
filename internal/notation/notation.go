// Package notation provides move sequence utilities on top of the
// cubesolve move type.
package notation

import (
	"github.com/SeamusWaldron/cubesolve"
)

// Invert returns the sequence that undoes seq: the moves in reverse
// order, each inverted.
func Invert(seq []cubesolve.Move) []cubesolve.Move {
	out := make([]cubesolve.Move, len(seq))
	for i, m := range seq {
		out[len(seq)-1-i] = m.Inverse()
	}
	return out
}

// Simplify merges adjacent turns of the same face until no two neighbours
// share a face. "R R" becomes "R2", "R R'" disappears, and removals can
// expose new neighbours ("U R R' U" becomes "U2").
func Simplify(seq []cubesolve.Move) []cubesolve.Move {
	out := make([]cubesolve.Move, 0, len(seq))
	for _, m := range seq {
		if len(out) == 0 {
			out = append(out, m)
			continue
		}
		merged, ok := out[len(out)-1].Merge(m)
		if !ok {
			out = append(out, m)
			continue
		}
		out = append(out[:len(out)-1], merged...)
	}
	return out
}

// Metrics counts a sequence in the two common metrics.
type Metrics struct {
	HTM int // half-turn metric: every face turn counts 1
	QTM int // quarter-turn metric: half turns count 2
}

// Measure returns the metrics of seq.
func Measure(seq []cubesolve.Move) Metrics {
	var m Metrics
	for _, mv := range seq {
		m.HTM++
		if mv.Turn == cubesolve.Double {
			m.QTM += 2
		} else {
			m.QTM++
		}
	}
	return m
}
