// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/scrubrc/cmd/scrubrc/opts"
	"github.com/walteh/scrubrc/pkg/config"
	"github.com/walteh/scrubrc/pkg/log"
	"github.com/walteh/scrubrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the persistent flags shared by all commands
type rootFlags struct {
	configFile string
	root       string
	debug      bool
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", config.DefaultFile, "config file path")
	cmd.PersistentFlags().StringVarP(&flags.root, "root", "C", "", "directory target paths are resolved against")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// newRootOpts loads the config and creates the shared dependencies
func newRootOpts(ctx context.Context, cmd *cobra.Command, flags *rootFlags) (*opts.RootOpts, error) {
	var (
		cfg *config.Config
		err error
	)

	// an explicit --config must exist, the default one is optional
	if f := cmd.Flag("config"); f != nil && f.Changed {
		cfg, err = config.LoadConfig(ctx, flags.configFile)
	} else {
		cfg, err = config.LoadOrDefault(ctx, flags.configFile)
	}
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	root := cfg.ResolveRoot()
	if flags.root != "" {
		root = flags.root
	}

	return &opts.RootOpts{
		Config:     cfg,
		ConfigPath: cfg.Location(),
		Root:       root,
		Files:      status.New(root),
		Console:    log.New(cmd.ErrOrStderr(), logLevel(flags.debug)),
	}, nil
}

func logLevel(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}

// setupLogging configures the context logger based on flags
func setupLogging(w io.Writer, debug bool) *zerolog.Logger {
	logger := zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
	})).Level(logLevel(debug)).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return &logger
}
