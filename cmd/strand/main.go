// Package main is the entry point for the strand interpreter shell.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dshills/strand/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		logLevel    string
		secure      bool
		evalLine    string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&secure, "secure", false, "Draw randomness from the system entropy pool")
	flag.StringVar(&evalLine, "eval", "", "Evaluate one line and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Strand - string and binary series shell\n\n")
		fmt.Fprintf(os.Stderr, "Usage: strand [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  strand                          Start an interactive session\n")
		fmt.Fprintf(os.Stderr, "  strand -eval 'find \"abc\" \"b\"'   Evaluate one line\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("strand %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	if secure {
		cfg.Random.Secure = true
	}

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	repl := NewREPL(cfg, log, os.Stdin, os.Stdout)

	if evalLine != "" {
		out, err := repl.Eval(evalLine)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if out != "" {
			fmt.Println(out)
		}
		return 0
	}

	if err := repl.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.Log.Path != "" {
		zc.OutputPaths = []string{cfg.Log.Path}
	} else {
		zc.OutputPaths = []string{"stderr"}
	}
	zc.ErrorOutputPaths = zc.OutputPaths
	return zc.Build()
}
