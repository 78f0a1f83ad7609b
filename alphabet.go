package cubesolve

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Facelet is one of the six sticker symbols. Each symbol names a face and
// the color painted on that face when the cube is solved.
type Facelet byte

const (
	Up    Facelet = 'U'
	Right Facelet = 'R'
	Front Facelet = 'F'
	Down  Facelet = 'D'
	Left  Facelet = 'L'
	Back  Facelet = 'B'
)

// Faces lists the symbols in canonical face order. The 54-facelet text is
// laid out in this order, and Cycle advances through it.
var Faces = [6]Facelet{Up, Right, Front, Down, Left, Back}

const (
	// FaceletsPerFace is the number of stickers on one face.
	FaceletsPerFace = 9
	// FaceletCount is the number of stickers on the whole cube.
	FaceletCount = 6 * FaceletsPerFace
)

// Color is the sticker color bound to a facelet symbol.
type Color byte

const (
	White  Color = iota // Up face when solved
	Red                 // Right face when solved
	Green               // Front face when solved
	Yellow              // Down face when solved
	Orange              // Left face when solved
	Blue                // Back face when solved
)

var colorNames = [6]string{"white", "red", "green", "yellow", "orange", "blue"}

var faceNames = [6]string{"Up", "Right", "Front", "Down", "Left", "Back"}

// faceletIndex maps a symbol byte to its position in Faces, -1 otherwise.
// Colors share the same index, so both directions are array lookups.
var faceletIndex [256]int8

func init() {
	for i := range faceletIndex {
		faceletIndex[i] = -1
	}
	for i, f := range Faces {
		faceletIndex[f] = int8(i)
	}
}

// Valid reports whether f is one of the six symbols.
func (f Facelet) Valid() bool {
	return faceletIndex[f] >= 0
}

// Index returns the position of f in Faces, or -1.
func (f Facelet) Index() int {
	return int(faceletIndex[f])
}

// Next returns the following symbol in Faces order, wrapping after Back.
// Invalid symbols map to Up.
func (f Facelet) Next() Facelet {
	i := f.Index()
	if i < 0 {
		return Up
	}
	return Faces[(i+1)%len(Faces)]
}

// Color returns the color bound to f.
func (f Facelet) Color() Color {
	i := f.Index()
	if i < 0 {
		return Color(0xff)
	}
	return Color(i)
}

// Name returns the face name, e.g. "Front".
func (f Facelet) Name() string {
	i := f.Index()
	if i < 0 {
		return "?"
	}
	return faceNames[i]
}

func (f Facelet) String() string {
	if !f.Valid() {
		return "?"
	}
	return string(rune(f))
}

// Facelet returns the symbol bound to c.
func (c Color) Facelet() Facelet {
	if int(c) >= len(Faces) {
		return 0
	}
	return Faces[c]
}

func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return "unknown"
	}
	return colorNames[c]
}

// ParseColor accepts a facelet symbol ("F"), a color name ("green") or a
// face name ("front"), case-insensitively. Unknown input yields an error
// wrapping ErrUnknownColor that suggests the closest color name.
func ParseColor(s string) (Facelet, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 1 {
		f := Facelet(strings.ToUpper(s)[0])
		if f.Valid() {
			return f, nil
		}
	}
	for i, name := range colorNames {
		if s == name {
			return Faces[i], nil
		}
	}
	for i, name := range faceNames {
		if s == strings.ToLower(name) {
			return Faces[i], nil
		}
	}

	if suggestion := closestColorName(s); suggestion != "" {
		return 0, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownColor, s, suggestion)
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownColor, s)
}

// closestColorName returns the color name within edit distance 2 of s,
// or "" when nothing is that close.
func closestColorName(s string) string {
	best, bestDist := "", 3
	for _, name := range colorNames {
		if d := levenshtein.ComputeDistance(s, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}
