package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-ctxlog/logger"
)

var version = "0.1.0"

type options struct {
	context string
	level   string
	color   string
	demo    bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "go-ctxlog [flags] [message...]",
		Short: "Print a timestamped, leveled log line",
		Long: "Print one log line per invocation in the form\n" +
			"  <timestamp> <LEVEL> [<context>] <message>\n" +
			"Use --demo to print a sample line for every level.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(out, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.context, "context", "c", "", "context label shown in brackets")
	flags.StringVarP(&opts.level, "level", "l", "log", "level: log, debug, info, warn or error")
	flags.StringVar(&opts.color, "color", "auto", "color output: auto, always or never")
	flags.BoolVar(&opts.demo, "demo", false, "print one sample line per level")

	return cmd
}

func run(out io.Writer, opts *options, args []string) error {
	level, err := logger.ParseLevel(opts.level)
	if err != nil {
		return err
	}
	color, err := logger.ParseColorMode(opts.color)
	if err != nil {
		return err
	}

	log := logger.NewWithConfig(opts.context, logger.Config{Output: out, Color: color})

	if opts.demo {
		log.Log("starting demo with", len(logger.AllLevels()), "levels")
		log.Debug("cache lookup", map[string]any{"key": "user:123", "hit": true, "ttl_seconds": 300})
		log.Info("request completed", map[string]any{"status": 200, "path": "/api/users"})
		log.Warn("retrying in", 2, "seconds")
		log.Error("database connection failed:", fmt.Errorf("dial tcp %s: connection refused", "localhost:5432"))
		return nil
	}

	msg := make([]any, len(args))
	for i, arg := range args {
		msg[i] = arg
	}
	methodFor(log, level)(msg...)
	return nil
}

func methodFor(log *logger.Logger, level logger.Level) func(args ...any) {
	switch level {
	case logger.DebugLevel:
		return log.Debug
	case logger.InfoLevel:
		return log.Info
	case logger.WarnLevel:
		return log.Warn
	case logger.ErrorLevel:
		return log.Error
	default:
		return log.Log
	}
}

// Usage: go-ctxlog -c Auth -l info user logged in
func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
