// cubesolve - CLI application for validating and solving Rubik's cube states.
package main

import (
	"github.com/SeamusWaldron/cubesolve/internal/cli"
)

func main() {
	cli.Execute()
}
