package cubesolve

import (
	"fmt"
	"strings"
)

// SolvedText is the canonical text of the empty move sequence.
// ParseMoves reads it back as an empty sequence.
const SolvedText = "(solved)"

// AlreadySolvedMessage is what DisplayText shows for an empty sequence.
const AlreadySolvedMessage = "Cube is already solved."

// DisplayStyle selects the human-readable layout of DisplayText.
type DisplayStyle int

const (
	StyleNumbered  DisplayStyle = iota // one numbered move per line
	StyleArrow                         // moves joined with arrows
	StyleCanonical                     // same as CanonicalText
)

func (d DisplayStyle) String() string {
	switch d {
	case StyleNumbered:
		return "numbered"
	case StyleArrow:
		return "arrow"
	case StyleCanonical:
		return "canonical"
	default:
		return "unknown"
	}
}

// ParseDisplayStyle converts a style name as used in flags and config.
func ParseDisplayStyle(name string) (DisplayStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "numbered", "list", "":
		return StyleNumbered, nil
	case "arrow", "arrows":
		return StyleArrow, nil
	case "canonical", "plain":
		return StyleCanonical, nil
	default:
		return 0, fmt.Errorf("unknown display style %q (want numbered, arrow or canonical)", name)
	}
}

// CanonicalText formats moves as space-separated tokens. The empty
// sequence yields SolvedText.
func CanonicalText(moves []Move) string {
	if len(moves) == 0 {
		return SolvedText
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// DisplayText formats moves for people. The empty sequence yields
// AlreadySolvedMessage in every style.
func DisplayText(moves []Move, style DisplayStyle) string {
	if len(moves) == 0 {
		return AlreadySolvedMessage
	}

	switch style {
	case StyleArrow:
		parts := make([]string, len(moves))
		for i, m := range moves {
			parts[i] = m.Notation()
		}
		return strings.Join(parts, " → ")
	case StyleCanonical:
		return CanonicalText(moves)
	default:
		var b strings.Builder
		for i, m := range moves {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%d. %s", i+1, m.Notation())
		}
		return b.String()
	}
}
