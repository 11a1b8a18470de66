// Command minihol runs a proof script through the kernel, tactic engine,
// and elaborator described by internal/core, printing the resulting status.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/minihol/minihol/internal/config"
	"github.com/minihol/minihol/internal/core"
)

func main() {
	var (
		debug    bool
		noColor  bool
		prelude  string
		logLevel slog.Level
	)

	rootCmd := &cobra.Command{
		Use:     "minihol [script]",
		Short:   "Check a minihol proof script",
		Version: config.Version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				logLevel = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel}))

			src, err := readScript(args)
			if err != nil {
				return err
			}

			s := core.New()
			if debug {
				fmt.Fprintf(cmd.ErrOrStderr(), "minihol: session %s\n", s.SessionID)
			}
			if prelude != "" {
				p, err := config.LoadBootstrap(prelude)
				if err != nil {
					return err
				}
				s, err = core.ApplyPrelude(s, p, logger)
				if err != nil {
					return err
				}
			}

			_, msg := core.Run(s, src, logger)
			printResult(cmd.OutOrStdout(), msg, !noColor && isatty.IsTerminal(os.Stdout.Fd()))
			if msg != "all good" {
				return errSilent
			}
			return nil
		},
	}

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log each parsed command and tactic step")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored status output")
	rootCmd.PersistentFlags().StringVar(&prelude, "prelude", "", "YAML bootstrap file of base types, notations, and axioms")

	if err := rootCmd.Execute(); err != nil {
		if err != errSilent {
			fmt.Fprintf(os.Stderr, "minihol: %v\n", err)
		}
		os.Exit(1)
	}
}

// errSilent marks a RunE failure whose message was already printed by
// printResult, so cobra's error path doesn't print it a second time.
var errSilent = fmt.Errorf("minihol: script rejected")

func readScript(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading script: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func printResult(w io.Writer, msg string, color bool) {
	if !color {
		fmt.Fprintln(w, msg)
		return
	}
	if msg == "all good" {
		fmt.Fprintf(w, "\033[32m%s\033[39m\n", msg)
	} else {
		fmt.Fprintf(w, "\033[31m%s\033[39m\n", msg)
	}
}
