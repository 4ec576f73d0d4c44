// mathtool inverts and decomposes matrices, converts Euler angles, and runs
// frustum culling over scene files.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-math/internal/config"
	"github.com/Faultbox/midgard-math/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err := run(cfg, args, os.Stdout); err != nil {
		logger.Debug("command failed", zap.String("command", args[0]), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// errUsage reports missing or malformed command arguments.
type errUsage string

func (e errUsage) Error() string { return "usage: mathtool " + string(e) }

func run(cfg *config.Config, args []string, out io.Writer) error {
	command := args[0]
	args = args[1:]

	switch command {
	case "invert", "inv":
		return cmdInvert(args, out)
	case "decompose", "trs":
		return cmdDecompose(cfg, args, out)
	case "euler":
		return cmdEuler(cfg, args, out)
	case "cull":
		return cmdCull(cfg, args, out)
	case "pick":
		return cmdPick(cfg, args, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `mathtool - matrix and culling utility

Usage:
  mathtool [global options] <command> [options]

Commands:
  invert [-general] m11 .. m44       Invert a row-major 4x4 matrix
  decompose m11 .. m44               Split into translation, rotation, scale
  euler [-order zxy] x y z           Round-trip Euler angles (degrees)
  cull [-o out.png] <scene.yaml>     Frustum-cull a scene, optionally draw it
  pick <scene.yaml> <px> <py>        Find the object under a pixel

Global options:
  -config, -debug, -width, -height, -euler, -general, -nocull, -shadows, -format

Examples:
  mathtool invert 2 0 0 1  0 2 0 2  0 0 2 3  0 0 0 1
  mathtool euler -order xyz 30 45 60
  mathtool -shadows cull -o yard.webp scene.yaml
  mathtool -width 800 -height 600 pick scene.yaml 400 300`)
}
