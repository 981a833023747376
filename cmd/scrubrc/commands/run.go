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

package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/scrubrc/cmd/scrubrc/opts"
	"github.com/walteh/scrubrc/pkg/log"
	"github.com/walteh/scrubrc/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// CompletionMessage is written to stdout after every target was processed
const CompletionMessage = "OK - cleanup complete"

// NewRunCmd creates the run command
func NewRunCmd(load opts.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Strip banners, section headers and emoji from the targets",
		Long: `Run loads every target, applies its removal rules and writes the
modified files back in place.

Nothing is written if any target is missing or unreadable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunCleanup(cmd.Context(), load, cmd.OutOrStdout())
		},
	}

	return cmd
}

// RunCleanup executes the cleanup and prints the completion line to out
func RunCleanup(ctx context.Context, load opts.Loader, out io.Writer) error {
	o, err := load(ctx)
	if err != nil {
		return err
	}

	ctx = log.NewContext(ctx, o.Console)
	console := log.FromContext(ctx)

	console.Header("cleanup")
	console.StartRun(ctx, log.RunOperation{
		Root:    o.Root,
		Config:  o.ConfigPath,
		Targets: len(o.Config.Targets),
	})

	op, err := operation.NewCleanupOperation(ctx, operation.Options{
		Config:  o.Config,
		Root:    o.Root,
		Files:   o.Files,
		Status:  o.Files,
		Console: console,
	})
	if err != nil {
		return err
	}

	runErr := operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, op)
	ops := console.EndRun(ctx)
	if runErr != nil {
		return errors.Errorf("running cleanup: %w", runErr)
	}

	modified := 0
	for _, fo := range ops {
		if fo.IsModified {
			modified++
		}
	}
	console.LogNewline()
	console.Successf("%d of %d files cleaned", modified, len(ops))

	fmt.Fprintln(out, CompletionMessage)
	return nil
}
