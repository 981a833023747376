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
)

// Rule defines a single removal operation
type Rule struct {
	// Name identifies the rule in profiles and config files
	Name string

	// Description is a short human readable summary
	Description string

	// Pattern is the regular expression whose matches are deleted
	Pattern string
}

// StripResult contains the results of a strip operation
type StripResult struct {
	// WasModified indicates if anything was removed
	WasModified bool

	// RemovalCount is the total number of matches removed
	RemovalCount int

	// Removals is the number of matches removed per rule name
	Removals map[string]int

	// OriginalContent is the content before removal
	OriginalContent []byte

	// ModifiedContent is the content after removal
	ModifiedContent []byte
}

// Stripper defines the interface for rule based text removal
type Stripper interface {
	// StripText applies the rules, in order, to the content
	StripText(ctx context.Context, content io.Reader, rules []Rule) (*StripResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []Rule) error
}
