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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/scrubrc/pkg/config"
	"github.com/walteh/scrubrc/pkg/log"
	"github.com/walteh/scrubrc/pkg/status"
	"github.com/walteh/scrubrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work executed by the runner
type Operation interface {
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for operations
type Options struct {
	// Config lists the targets and custom rules
	Config *config.Config
	// Root is the directory target patterns are resolved against
	Root string
	// Files loads and saves target files
	Files status.FileManager
	// Status tracks per-file status and progress
	Status status.StatusReporter
	// Stripper applies removal rules to content
	Stripper text.Stripper
	// Console receives one line per processed file, optional
	Console *log.Logger
}

// 🧱 BaseOperation holds the dependencies shared by operations
type BaseOperation struct {
	Options
	Logger *zerolog.Logger
}

// 🏭 NewBaseOperation validates options and fills defaults
func NewBaseOperation(ctx context.Context, opts Options) (BaseOperation, error) {
	if opts.Config == nil {
		return BaseOperation{}, errors.Errorf("config is required")
	}
	if opts.Files == nil {
		return BaseOperation{}, errors.Errorf("file manager is required")
	}
	if opts.Status == nil {
		return BaseOperation{}, errors.Errorf("status reporter is required")
	}
	if opts.Stripper == nil {
		opts.Stripper = text.NewRegexpStripper()
	}
	if opts.Root == "" {
		opts.Root = opts.Config.ResolveRoot()
	}
	return BaseOperation{
		Options: opts,
		Logger:  zerolog.Ctx(ctx),
	}, nil
}

// logFile forwards a file line to the console logger when one is set
func (op *BaseOperation) logFile(ctx context.Context, fo log.FileOperation) {
	if op.Console == nil {
		return
	}
	op.Console.LogFileOperation(ctx, fo)
}
