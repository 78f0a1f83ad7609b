package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolve"
)

var (
	validateFile string
	validateNet  bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [facelets]",
	Short: "Check a cube state without solving it",
	Long: `Run the three validation tiers against a cube state and report each:

  syntax     54 stickers, all from U R F D L B
  counts     nine stickers of each color, centers in place
  solvable   every piece real and present once, permutation parity,
             corner twist and edge flip

A solvable state also gets a cubie summary.`,
	Args: cobra.ArbitraryArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Read the state from a TOML state file")
	validateCmd.Flags().BoolVar(&validateNet, "net", false, "Print the unfolded cube")
}

func runValidate(cmd *cobra.Command, args []string) error {
	raw, err := readFacelets(args, validateFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	raw = cubesolve.Normalize(raw)
	out := cmd.OutOrStdout()

	if err := cubesolve.CheckSyntax(raw); err != nil {
		reportTier(out, "syntax", err)
		return err
	}
	reportTier(out, "syntax", nil)

	if err := cubesolve.CheckCounts(raw); err != nil {
		reportTier(out, "counts", err)
		return err
	}
	reportTier(out, "counts", nil)

	state, err := cubesolve.NewState(raw)
	if err != nil {
		return err
	}
	if validateNet {
		fmt.Fprintln(out)
		fmt.Fprint(out, state.Net())
		fmt.Fprintln(out)
	}

	if err := cubesolve.CheckSolvable(state); err != nil {
		reportTier(out, "solvable", err)
		return err
	}
	reportTier(out, "solvable", nil)

	cubies, err := state.Cubies()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	printCubies(out, cubies)
	if state.IsSolved() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, cubesolve.AlreadySolvedMessage)
	}
	return nil
}

func reportTier(w io.Writer, tier string, err error) {
	if err != nil {
		fmt.Fprintf(w, "%-9s FAIL  %v\n", tier+":", err)
		return
	}
	fmt.Fprintf(w, "%-9s ok\n", tier+":")
}

// printCubies lists which cubie sits at each position and its
// orientation: "UBR=URF/1" is the URF corner at UBR twisted once.
func printCubies(w io.Writer, c cubesolve.Cubies) {
	var b strings.Builder
	b.WriteString("corners:")
	for i, p := range c.CornerPerm {
		fmt.Fprintf(&b, " %s=%s/%d", cubesolve.Corner(i), p, c.CornerOri[i])
	}
	b.WriteString("\nedges:  ")
	for i, p := range c.EdgePerm {
		fmt.Fprintf(&b, " %s=%s/%d", cubesolve.Edge(i), p, c.EdgeOri[i])
	}
	fmt.Fprintln(w, b.String())
}
