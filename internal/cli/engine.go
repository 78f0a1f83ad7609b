package cli

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolve"
	"github.com/SeamusWaldron/cubesolve/internal/config"
	"github.com/SeamusWaldron/cubesolve/internal/engine/kociemba"
	"github.com/SeamusWaldron/cubesolve/internal/engine/search"
)

// Engine flags shared by solve and edit
var (
	engineName string
	enginePath string
	maxDepth   int
	timeout    time.Duration
	noVerify   bool
)

func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&engineName, "engine", "", "Engine: auto, search or kociemba (default from config)")
	cmd.Flags().StringVar(&enginePath, "engine-path", "", "Path to the external solver binary")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Deepest search for the search engine")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Give up after this long (default from config)")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Trust the engine answer without replaying it")
}

// engineSettings merges flags over the loaded config.
func engineSettings() config.EngineConfig {
	ec := cfg.Engine
	if engineName != "" {
		ec.Name = engineName
	}
	if enginePath != "" {
		ec.Path = enginePath
	}
	if maxDepth > 0 {
		ec.MaxDepth = maxDepth
	}
	return ec
}

// buildEngine creates the configured engine. "auto" picks the external
// solver when its binary can be found and the search engine otherwise.
func buildEngine(ec config.EngineConfig) (cubesolve.Engine, error) {
	name := ec.Name
	if name == config.EngineAuto {
		path := ec.Path
		if path == "" {
			path = kociemba.DefaultPath
		}
		if _, err := exec.LookPath(path); err == nil {
			name = config.EngineKociemba
		} else {
			name = config.EngineSearch
			log.WithField("path", path).Debug("external solver not found, using search engine")
		}
	}

	switch name {
	case config.EngineSearch:
		return search.New(search.WithMaxDepth(ec.MaxDepth), search.WithLogger(log)), nil
	case config.EngineKociemba:
		e := kociemba.New(ec.Path, ec.Args...)
		e.SetLogger(log)
		return e, nil
	default:
		return nil, fmt.Errorf("unknown engine %q (want %s, %s or %s)",
			name, config.EngineAuto, config.EngineSearch, config.EngineKociemba)
	}
}

// newGateway builds the engine and wraps it with the configured options.
// It also returns the engine name.
func newGateway() (*cubesolve.Gateway, string, error) {
	engine, err := buildEngine(engineSettings())
	if err != nil {
		return nil, "", err
	}

	d := cfg.Solve.Timeout
	if timeout > 0 {
		d = timeout
	}
	verify := cfg.Solve.Verify && !noVerify

	log.WithFields(logrus.Fields{
		"engine":  engine.Name(),
		"timeout": d,
		"verify":  verify,
	}).Debug("gateway ready")

	return cubesolve.NewGateway(engine,
		cubesolve.WithTimeout(d),
		cubesolve.WithVerification(verify),
		cubesolve.WithLogger(log),
	), engine.Name(), nil
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
