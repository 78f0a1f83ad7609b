package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolve"
	"github.com/SeamusWaldron/cubesolve/internal/notation"
)

var (
	solveFile     string
	solveStyle    string
	solveDescribe bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [facelets]",
	Short: "Solve a cube state",
	Long: `Validate a cube state and print a move sequence that solves it.

The state is read from the arguments, from a TOML state file (--file), or
from the first line of stdin. Whitespace is ignored and letters may be
lower case.

Examples:
  cubesolve solve UUFUUFUUFRRRRRRRRRFFDFFDFFDDDBDDBDDBLLLLLLLLLUBBUBBUBB
  cubesolve solve --file state.toml --style arrow
  cubesolve apply "R U R' U'" | cubesolve solve --engine search`,
	Args: cobra.ArbitraryArgs,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	addEngineFlags(solveCmd)
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "Read the state from a TOML state file")
	solveCmd.Flags().StringVar(&solveStyle, "style", "", "Output style: numbered, arrow or canonical (default from config)")
	solveCmd.Flags().BoolVar(&solveDescribe, "describe", false, "Also describe each move in words")
}

func runSolve(cmd *cobra.Command, args []string) error {
	style := cfg.DisplayStyle()
	if solveStyle != "" {
		s, err := cubesolve.ParseDisplayStyle(solveStyle)
		if err != nil {
			return err
		}
		style = s
	}

	state, err := readState(args, solveFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	gw, _, err := newGateway()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sol, err := gw.Solve(ctx, state)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sol.Moves) > 0 {
		m := notation.Measure(sol.Moves)
		fmt.Fprintf(out, "Solution (%d moves, %d quarter turns) from %s in %s:\n",
			m.HTM, m.QTM, sol.Engine, formatDuration(sol.Elapsed))
	}
	fmt.Fprintln(out, cubesolve.DisplayText(sol.Moves, style))

	if solveDescribe && len(sol.Moves) > 0 {
		fmt.Fprintln(out)
		for i, d := range notation.DescribeAll(sol.Moves) {
			fmt.Fprintf(out, "%2d. %s\n", i+1, d)
		}
	}
	return nil
}
