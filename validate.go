package cubesolve

import (
	"fmt"
	"unicode/utf8"
)

// Validate runs the syntax and count tiers against raw, stopping at the
// first failure.
func Validate(raw string) error {
	if err := CheckSyntax(raw); err != nil {
		return err
	}
	return CheckCounts(raw)
}

// ValidateAll runs all three tiers and returns the State on success.
func ValidateAll(raw string) (State, error) {
	s, err := NewState(raw)
	if err != nil {
		return State{}, err
	}
	if err := CheckSolvable(s); err != nil {
		return State{}, err
	}
	return s, nil
}

// CheckSyntax is the first tier: exactly 54 symbols, all from the
// alphabet.
func CheckSyntax(raw string) error {
	if n := utf8.RuneCountInString(raw); n != FaceletCount {
		return &MalformedStateError{
			Reason:   fmt.Sprintf("got %d symbols, want %d", n, FaceletCount),
			Position: -1,
		}
	}
	pos := 0
	for _, r := range raw {
		if r > 0xff || !Facelet(r).Valid() {
			return &MalformedStateError{
				Reason:   fmt.Sprintf("unknown symbol %q", r),
				Position: pos,
			}
		}
		pos++
	}
	return nil
}

// CheckCounts is the second tier. It assumes raw passed CheckSyntax.
// Counts are checked before centers, symbols in Faces order.
func CheckCounts(raw string) error {
	var counts [6]int
	for i := 0; i < len(raw); i++ {
		if idx := Facelet(raw[i]).Index(); idx >= 0 {
			counts[idx]++
		}
	}
	for i, f := range Faces {
		if counts[i] != FaceletsPerFace {
			return &IllegalColorDistributionError{Symbol: f, Count: counts[i]}
		}
	}

	for i, f := range Faces {
		if center := Facelet(raw[i*FaceletsPerFace+4]); center != f {
			return &CenterMismatchError{Face: f, Found: center}
		}
	}
	return nil
}

// CheckSolvable is the third tier. It decomposes s into cubies and checks
// that the arrangement is reachable by legal moves: every cubie is real and
// present once, corner and edge permutations have equal parity, corner
// twist sums to 0 mod 3 and edge flip sums to 0 mod 2.
func CheckSolvable(s State) error {
	c, err := s.Cubies()
	if err != nil {
		return err
	}

	cp := make([]int, len(c.CornerPerm))
	for i, p := range c.CornerPerm {
		cp[i] = int(p)
	}
	ep := make([]int, len(c.EdgePerm))
	for i, p := range c.EdgePerm {
		ep[i] = int(p)
	}
	if cpar, epar := parity(cp), parity(ep); cpar != epar {
		return &UnsolvableError{
			Invariant: InvariantPermutationParity,
			Detail:    fmt.Sprintf("corner permutation parity %d differs from edge permutation parity %d", cpar, epar),
		}
	}

	var twist, flip int
	for _, o := range c.CornerOri {
		twist += o
	}
	for _, o := range c.EdgeOri {
		flip += o
	}
	if twist%3 != 0 {
		return &UnsolvableError{
			Invariant: InvariantCornerOrientation,
			Detail:    fmt.Sprintf("corner twist sums to %d, not a multiple of 3", twist),
		}
	}
	if flip%2 != 0 {
		return &UnsolvableError{
			Invariant: InvariantEdgeOrientation,
			Detail:    fmt.Sprintf("edge flip sums to %d, not a multiple of 2", flip),
		}
	}
	return nil
}

// parity returns 0 for an even permutation and 1 for an odd one.
func parity(perm []int) int {
	inversions := 0
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				inversions++
			}
		}
	}
	return inversions % 2
}
