package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolve/internal/config"
	"github.com/SeamusWaldron/cubesolve/internal/engine/kociemba"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and engine availability",
	Long:  `Display the effective configuration, where it was loaded from, and which engine "auto" would pick.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "cubesolve status")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	// Config file
	path := configSource()
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, "Config: %s\n", path)
	} else {
		fmt.Fprintf(out, "Config: %s (not found, using defaults)\n", path)
	}
	fmt.Fprintln(out)

	// Engine
	ec := cfg.Engine
	fmt.Fprintf(out, "Engine: %s\n", ec.Name)
	binary := ec.Path
	if binary == "" {
		binary = kociemba.DefaultPath
	}
	if resolved, err := exec.LookPath(binary); err == nil {
		fmt.Fprintf(out, "External solver: %s\n", resolved)
	} else {
		fmt.Fprintf(out, "External solver: %s not found\n", binary)
	}
	if ec.Name == config.EngineAuto || ec.Name == config.EngineSearch {
		fmt.Fprintf(out, "Search depth: %d\n", ec.MaxDepth)
	}
	fmt.Fprintln(out)

	// Solve and display
	fmt.Fprintf(out, "Timeout: %s\n", formatDuration(cfg.Solve.Timeout))
	fmt.Fprintf(out, "Verify answers: %t\n", cfg.Solve.Verify)
	fmt.Fprintf(out, "Display style: %s\n", cfg.DisplayStyle())
	fmt.Fprintf(out, "Log level: %s\n", cfg.LogLevel())

	if engine, err := buildEngine(ec); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Solves will use: %s\n", engine.Name())
	}
	return nil
}
