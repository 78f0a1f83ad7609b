package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolve"
	"github.com/SeamusWaldron/cubesolve/internal/notation"
	"github.com/SeamusWaldron/cubesolve/internal/statefile"
)

var (
	applyInvert   bool
	applySimplify bool
	applyNet      bool
	applyOut      string
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply moves to a solved cube and print the resulting state",
	Long: `Apply a move sequence to a solved cube and print the 54-facelet state.
The output can be piped straight into "cubesolve solve".

Examples:
  cubesolve apply "R U R' U'"
  cubesolve apply R U2 F --net
  cubesolve apply --invert "F R U' R' U' R U R' F'"   # state solved by this sequence
  cubesolve apply "R U" --out scramble.toml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyInvert, "invert", false, "Apply the inverse sequence")
	applyCmd.Flags().BoolVar(&applySimplify, "simplify", false, "Merge adjacent turns of the same face first")
	applyCmd.Flags().BoolVar(&applyNet, "net", false, "Also print the unfolded cube")
	applyCmd.Flags().StringVarP(&applyOut, "out", "o", "", "Write the state to a TOML state file")
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := cubesolve.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if applySimplify {
		moves = notation.Simplify(moves)
	}
	if applyInvert {
		moves = notation.Invert(moves)
	}
	log.WithField("moves", cubesolve.CanonicalText(moves)).Debug("applying")

	c := cubesolve.NewCube()
	c.ApplyMoves(moves)
	state, err := cubesolve.NewState(c.FaceletString())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, state)
	if applyNet {
		fmt.Fprintln(out)
		fmt.Fprint(out, state.Net())
	}

	if applyOut != "" {
		f, err := os.Create(applyOut)
		if err != nil {
			return err
		}
		if err := statefile.Encode(f, state); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.WithField("path", applyOut).Info("state written")
	}
	return nil
}
