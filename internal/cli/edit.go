package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolve"
)

var editFile string

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Enter a cube state sticker by sticker",
	Long: `Open a terminal editor showing the unfolded cube. Move the cursor with
the arrow keys, switch faces with tab, and press space to cycle a sticker
through the six colors. Press s to solve the current grid; the solution is
shown in place and a running solve can be cancelled with esc.

Start from a state file with --file, or from the solved cube.`,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
	addEngineFlags(editCmd)
	editCmd.Flags().StringVarP(&editFile, "file", "f", "", "Load a TOML state file into the editor")
}

func runEdit(cmd *cobra.Command, args []string) error {
	gw, engineName, err := newGateway()
	if err != nil {
		return err
	}

	model := newEditorModel(gw, engineName)
	if editFile != "" {
		state, err := readState(nil, editFile, nil)
		if err != nil {
			return err
		}
		model.grid.Load(state)
	}

	// The editor owns the screen; solve logs would tear it.
	if !verbose {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor error: %w", err)
	}

	if snap, err := cubesolve.NewState(model.grid.Snapshot()); err == nil && !snap.IsSolved() {
		fmt.Fprintln(cmd.OutOrStdout(), snap)
	}
	return nil
}
