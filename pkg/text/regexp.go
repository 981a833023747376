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

package text

import (
	"context"
	"io"
	"regexp"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// RegexpStripper implements Stripper by deleting regular expression matches
type RegexpStripper struct {
	mu       sync.Mutex
	compiled map[string]*regexp.Regexp
}

// NewRegexpStripper creates a new RegexpStripper
func NewRegexpStripper() *RegexpStripper {
	return &RegexpStripper{
		compiled: make(map[string]*regexp.Regexp),
	}
}

func (s *RegexpStripper) compile(pattern string) (*regexp.Regexp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if re, ok := s.compiled[pattern]; ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	s.compiled[pattern] = re
	return re, nil
}

// StripText implements Stripper.StripText.
//
// The ordered rule list is applied repeatedly until a full pass removes
// nothing. Every rule only deletes text, so this terminates, and running the
// stripper on its own output is a no-op.
func (s *RegexpStripper) StripText(ctx context.Context, content io.Reader, rules []Rule) (*StripResult, error) {
	logger := zerolog.Ctx(ctx)

	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	if err := s.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	result := &StripResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
		Removals:        make(map[string]int, len(rules)),
	}

	current := string(originalContent)
	for pass := 1; ; pass++ {
		next, removed := s.applyPass(current, rules, result.Removals)
		if removed == 0 {
			break
		}
		logger.Debug().Int("pass", pass).Int("removed", removed).Msg("strip pass")
		result.RemovalCount += removed
		current = next
	}

	result.WasModified = result.RemovalCount > 0
	result.ModifiedContent = []byte(current)
	return result, nil
}

// applyPass runs every rule once, in order
func (s *RegexpStripper) applyPass(content string, rules []Rule, removals map[string]int) (string, int) {
	total := 0
	for _, rule := range rules {
		re, err := s.compile(rule.Pattern)
		if err != nil {
			// unreachable, rules are validated before the first pass
			continue
		}

		count := 0
		for _, loc := range re.FindAllStringIndex(content, -1) {
			if loc[1] > loc[0] {
				count++
			}
		}
		if count == 0 {
			continue
		}

		content = re.ReplaceAllLiteralString(content, "")
		removals[rule.Name] += count
		total += count
	}
	return content, total
}

// ValidateRules implements Stripper.ValidateRules
func (s *RegexpStripper) ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if rule.Name == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
		if rule.Pattern == "" {
			return errors.Errorf("rule %d (%s): pattern is required", i, rule.Name)
		}
		re, err := s.compile(rule.Pattern)
		if err != nil {
			return errors.Errorf("rule %d (%s): malformed pattern: %w", i, rule.Name, err)
		}
		if re.MatchString("") {
			return errors.Errorf("rule %d (%s): pattern matches the empty string", i, rule.Name)
		}
	}
	return nil
}
