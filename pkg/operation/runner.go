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
	"fmt"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Runner executes operations one after another
type Runner struct {
	logger *zerolog.Logger
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// 🏃 Run executes the operations in order and stops at the first error
func (r *Runner) Run(ctx context.Context, ops ...Operation) error {
	for i, op := range ops {
		name := fmt.Sprintf("%T", op)
		r.logger.Debug().Int("index", i).Str("operation", name).Msg("running operation")

		if err := op.Execute(ctx); err != nil {
			return errors.Errorf("executing operation: %w", err)
		}

		r.logger.Debug().Int("index", i).Str("operation", name).Msg("operation finished")
	}
	return nil
}
