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
	"bytes"
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/scrubrc/pkg/log"
	"github.com/walteh/scrubrc/pkg/status"
	"github.com/walteh/scrubrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📄 targetFile is a resolved target with its ordered rules
type targetFile struct {
	path    string
	label   string
	rules   []text.Rule
	content []byte
	result  *text.StripResult
}

// 🧹 NewCleanupOperation creates a new cleanup operation
func NewCleanupOperation(ctx context.Context, opts Options) (Operation, error) {
	base, err := NewBaseOperation(ctx, opts)
	if err != nil {
		return nil, errors.Errorf("creating cleanup operation: %w", err)
	}
	return &cleanupOperation{BaseOperation: base}, nil
}

// 🧹 cleanupOperation loads every target, strips it and writes it back
type cleanupOperation struct {
	BaseOperation
}

// 🏃 Execute runs the cleanup in three phases. Every file is loaded and
// transformed before the first one is written, so a missing or unreadable
// target leaves all targets untouched.
func (op *cleanupOperation) Execute(ctx context.Context) error {
	catalog, err := op.Config.Catalog()
	if err != nil {
		return errors.Errorf("building rule catalog: %w", err)
	}

	if err := op.Stripper.ValidateRules(catalog.Rules()); err != nil {
		return errors.Errorf("validating rules: %w", err)
	}

	files, err := op.resolveTargets(catalog)
	if err != nil {
		return errors.Errorf("resolving targets: %w", err)
	}

	op.Status.StartOperation(ctx, len(files))
	defer op.Status.FinishOperation(ctx)

	for _, f := range files {
		if err := op.load(ctx, f); err != nil {
			return errors.Errorf("loading %s: %w", f.path, err)
		}
	}

	for _, f := range files {
		if err := op.transform(ctx, f); err != nil {
			return errors.Errorf("transforming %s: %w", f.path, err)
		}
	}

	for i, f := range files {
		if err := op.save(ctx, f); err != nil {
			return errors.Errorf("saving %s: %w", f.path, err)
		}
		op.Status.UpdateProgress(ctx, i+1)
	}

	return nil
}

// 🔍 resolveTargets expands target patterns into files, first target wins
func (op *cleanupOperation) resolveTargets(catalog *text.Catalog) ([]*targetFile, error) {
	var files []*targetFile
	seen := make(map[string]bool)

	for _, t := range op.Config.Targets {
		rules, err := t.Resolve(catalog)
		if err != nil {
			return nil, errors.Errorf("target %s: %w", t.Path, err)
		}

		label := t.Profile
		if label == "" {
			label = strings.Join(t.Rules, ",")
		}

		paths, err := op.expand(t.Path)
		if err != nil {
			return nil, errors.Errorf("target %s: %w", t.Path, err)
		}

		for _, p := range paths {
			if seen[p] {
				op.Logger.Debug().Str("path", p).Str("target", t.Path).Msg("already matched by an earlier target")
				continue
			}
			seen[p] = true
			files = append(files, &targetFile{path: p, label: label, rules: rules})
		}
	}

	return files, nil
}

// expand matches a doublestar pattern against the root. A pattern with no
// matches is returned as a literal path so the load reports it missing.
func (op *cleanupOperation) expand(pattern string) ([]string, error) {
	abs := pattern
	if !filepath.IsAbs(pattern) {
		abs = filepath.Join(op.Root, filepath.FromSlash(pattern))
	}

	matches, err := doublestar.FilepathGlob(abs, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Errorf("matching pattern: %w", err)
	}

	if len(matches) == 0 {
		return []string{pattern}, nil
	}

	sort.Strings(matches)

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if filepath.IsAbs(pattern) {
			out = append(out, m)
			continue
		}
		rel, err := filepath.Rel(op.Root, m)
		if err != nil {
			return nil, errors.Errorf("relativizing %s: %w", m, err)
		}
		out = append(out, filepath.ToSlash(rel))
	}
	return out, nil
}

// 📖 load reads a target into memory
func (op *cleanupOperation) load(ctx context.Context, f *targetFile) error {
	content, err := op.Files.Load(ctx, f.path)
	if err != nil {
		op.fail(ctx, f, err)
		return err
	}

	f.content = content
	op.Status.TrackFile(ctx, f.path, status.Describe(status.FileInfo{
		Profile: f.label,
		Status:  status.StatusLoaded,
	}, content))
	return nil
}

// ✂️ transform applies the target's rules to its content
func (op *cleanupOperation) transform(ctx context.Context, f *targetFile) error {
	result, err := op.Stripper.StripText(ctx, bytes.NewReader(f.content), f.rules)
	if err != nil {
		op.fail(ctx, f, err)
		return err
	}

	f.result = result
	op.Logger.Debug().
		Str("path", f.path).
		Int("removals", result.RemovalCount).
		Interface("by_rule", result.Removals).
		Msg("transformed file")
	return nil
}

// 💾 save writes modified content back in place
func (op *cleanupOperation) save(ctx context.Context, f *targetFile) error {
	info := status.FileInfo{
		Profile:  f.label,
		Status:   status.StatusUnchanged,
		Removals: f.result.Removals,
	}

	if f.result.WasModified {
		if err := op.Files.Save(ctx, f.path, f.result.ModifiedContent); err != nil {
			op.fail(ctx, f, err)
			return err
		}
		info.Status = status.StatusModified
	}

	op.Status.TrackFile(ctx, f.path, status.Describe(info, f.result.ModifiedContent))
	op.logFile(ctx, log.FileOperation{
		Path:       f.path,
		Profile:    f.label,
		Removals:   f.result.RemovalCount,
		IsModified: f.result.WasModified,
	})
	return nil
}

// ❌ fail records a failed file
func (op *cleanupOperation) fail(ctx context.Context, f *targetFile, err error) {
	op.Status.TrackFile(ctx, f.path, status.FileInfo{
		Profile: f.label,
		Status:  status.StatusFailed,
		Error:   err,
	})
	op.logFile(ctx, log.FileOperation{
		Path:     f.path,
		Profile:  f.label,
		IsFailed: true,
	})
}
