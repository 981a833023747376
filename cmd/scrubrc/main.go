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
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/scrubrc/cmd/scrubrc/commands"
	"github.com/walteh/scrubrc/cmd/scrubrc/opts"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprint(stderr, pterm.Error.Sprintln(err.Error()))
		return 1
	}
	return 0
}

// newRootCmd creates the root command; without a subcommand it runs the cleanup
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "scrubrc",
		Short: "Strip decorative comments and emoji from extension sources",
		Long: `scrubrc removes decorative banners, uppercase section headers, emoji and
hyphen-free markup comments from the extension's scripts and popup markup,
then overwrites the files in place.

Without a subcommand it runs the cleanup over the configured targets, or over
scripts/popup.js, scripts/background.js and popup.html when no config exists.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	addRootFlags(rootCmd, flags)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger := setupLogging(cmd.ErrOrStderr(), flags.debug)
		cmd.SetContext(logger.WithContext(cmd.Context()))
	}

	var load opts.Loader = func(ctx context.Context) (*opts.RootOpts, error) {
		return newRootOpts(ctx, rootCmd, flags)
	}

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return commands.RunCleanup(cmd.Context(), load, cmd.OutOrStdout())
	}

	rootCmd.AddCommand(
		commands.NewRunCmd(load),
		commands.NewRulesCmd(load),
		newVersionCmd(),
	)

	return rootCmd
}
