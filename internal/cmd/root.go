// Package cmd implements the ip-navigator command-line front end: thin
// glue that parses arguments, calls the internal/ipv4 core and maps its
// results to output and process exit codes.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// ErrFalse reports a negative boolean result. Commands whose exit code is
// the result (validate, contains) return it so Execute exits 1 without
// printing an error message.
var ErrFalse = errors.New("false")

// app carries the resolved configuration, logger and output streams for
// every command; nothing is read from package globals.
type app struct {
	cfg    Config
	log    *slog.Logger
	out    io.Writer
	errOut io.Writer
	pal    palette
}

func newRootCmd(cfg Config, out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: cfg, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:     "ip-navigator",
		Short:   "IPv4 address and subnet calculator",
		Long:    "ip-navigator parses, converts and classifies IPv4 addresses,\nderives subnet metadata and enumerates address ranges.",
		Version: cfg.Version,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.Bool("plain", cfg.Plain, "tab-separated output without colors")
	flags.Bool("no-color", cfg.NoColor, "disable colored output")
	flags.BoolP("debug", "D", cfg.Debug, "enable debug logging")
	flags.String("config", "", "config file (default is $HOME/.ip-navigator.yaml)")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfgFile, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		resolved, err := resolveConfig(a.cfg, cmd.Flags(), cfgFile)
		if err != nil {
			return err
		}
		a.cfg = resolved
		a.pal = newPalette(a.cfg)
		a.log = newLogger(a.errOut, a.cfg.Debug)
		return nil
	}

	root.AddCommand(
		newInfoCmd(a),
		newValidateCmd(a),
		newContainsCmd(a),
		newClassifyCmd(a),
		newConvertCmd(a),
		newCompareCmd(a),
		newNextCmd(a),
		newPreviousCmd(a),
		newRangeCmd(a),
		newVersionCmd(a),
	)
	root.SetOut(errOut)
	return root
}

// Execute runs the root command and returns the process exit code: 0 on
// success, 1 on any core failure or negative boolean result.
func Execute(cfg Config) int {
	root := newRootCmd(cfg, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, ErrFalse) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		return 1
	}
	return 0
}
