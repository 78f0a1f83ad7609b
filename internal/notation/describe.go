package notation

import (
	"github.com/SeamusWaldron/cubesolve"
)

// Describe returns a spoken form of a move for people who do not read
// standard notation. Reference frame: white on top, green in front.
//
// Mapping:
//
//	R  -> "R up"               R' -> "R down"
//	L  -> "L down"             L' -> "L up"
//	U  -> "Top rotate right"   U' -> "Top rotate left"
//	D  -> "Bottom rotate right" D' -> "Bottom rotate left"
//	F  -> "Front clockwise"    F' -> "Front anti-clockwise"
//	B  -> "Back clockwise"     B' -> "Back anti-clockwise"
//
// Half turns append " x 2" to the clockwise form.
func Describe(m cubesolve.Move) string {
	var cw, ccw string
	switch m.Face {
	case cubesolve.Right:
		cw, ccw = "R up", "R down"
	case cubesolve.Left:
		cw, ccw = "L down", "L up"
	case cubesolve.Up:
		cw, ccw = "Top rotate right", "Top rotate left"
	case cubesolve.Down:
		cw, ccw = "Bottom rotate right", "Bottom rotate left"
	case cubesolve.Front:
		cw, ccw = "Front clockwise", "Front anti-clockwise"
	case cubesolve.Back:
		cw, ccw = "Back clockwise", "Back anti-clockwise"
	default:
		return m.Notation()
	}

	switch m.Turn {
	case cubesolve.CW:
		return cw
	case cubesolve.CCW:
		return ccw
	case cubesolve.Double:
		return cw + " x 2"
	}
	return m.Notation() // Fallback to standard notation
}

// DescribeAll describes every move of seq.
func DescribeAll(seq []cubesolve.Move) []string {
	out := make([]string, len(seq))
	for i, m := range seq {
		out[i] = Describe(m)
	}
	return out
}
