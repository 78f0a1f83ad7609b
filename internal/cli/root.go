// Package cli implements the command-line interface for cubesolve.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolve/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	cfgFile string
	verbose bool

	// Loaded in PersistentPreRunE
	cfg config.Config
	log = logrus.New()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolve",
	Short: "Rubik's cube state validator and solver front-end",
	Long: `cubesolve - validate a 3x3x3 cube described by its 54 stickers and
ask a move-search engine for a solution.

States are written face by face in the order U R F D L B, nine stickers
per face read row by row, each sticker named by the face whose color it
carries (U=white, R=red, F=green, D=yellow, L=orange, B=blue).`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path (default: ~/.config/cubesolve/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// setup loads configuration and prepares the logger.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = c

	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(cfg.LogLevel())
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	log.WithField("config", configSource()).Debug("configuration loaded")
	return nil
}

// configSource describes where settings came from.
func configSource() string {
	switch {
	case cfgFile != "":
		return cfgFile
	case os.Getenv("CUBESOLVE_CONFIG") != "":
		return os.Getenv("CUBESOLVE_CONFIG")
	default:
		return config.DefaultPath()
	}
}
