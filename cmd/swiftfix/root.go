package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/vitormf/swiftfix/cmd/swiftfix/opts"
	"github.com/vitormf/swiftfix/pkg/config"
	"github.com/vitormf/swiftfix/pkg/operation"
	"github.com/vitormf/swiftfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	target     string
	debug      bool
	async      bool
)

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	// Create user logger
	userLogger := status.NewUserLogger(ctx)

	// Load config
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	// Apply flag overrides
	if target != "" {
		cfg.Target = filepath.Clean(target)
	}
	if async {
		cfg.Async = true
	}

	logger := zerolog.Ctx(ctx)

	// Create status manager rooted at the working directory
	statusMgr := status.New(".", logger)

	return &opts.RootOpts{
		Config:     cfg,
		StatusMgr:  statusMgr,
		UserLogger: userLogger,
		Runner:     operation.NewRunner(logger, cfg.Async),
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultConfigFile, "config file path")
	cmd.PersistentFlags().StringVarP(&target, "target", "t", "", "override the target file")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&async, "async", false, "run operations asynchronously")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger
}
