// Package cli implements the staggrid command tree.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/staggrid/internal/config"
)

// Version is stamped at link time:
//
//	go build -ldflags "-X github.com/katalvlaran/staggrid/internal/cli.Version=v0.1.0" ./cmd/staggrid
var Version = "dev"

var errorColor = color.New(color.FgRed, color.Bold)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	stdout, stderr io.Writer

	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
	pal     palette
}

// Run executes the CLI with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		errorColor.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCmd creates the staggrid root command with all subcommands.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "staggrid",
		Short: "Build, inspect and plot 1D staggered grids",
		Long: `staggrid works with one-dimensional staggered grids: interleaved
cell walls and cell centers with ghost points on either side of the bulk.

Grid descriptions are YAML, JSON or MessagePack files, chosen by extension.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "Config file path (YAML)")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "console", "Log format: console or json")
	pf.String("format", "text", "Output format: text, json or yaml")
	pf.Bool("no-color", false, "Disable colored output")

	root.AddCommand(a.newDescribeCmd())
	root.AddCommand(a.newGenerateCmd())
	root.AddCommand(a.newPlotCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// setup resolves configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, a.stderr)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.pal = newPalette(cfg.Output.Color)
	a.log.Debug("configuration loaded",
		zap.String("config", a.cfgFile),
		zap.String("format", cfg.Output.Format))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the staggrid version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "staggrid %s\n", Version)
		},
	}
}
