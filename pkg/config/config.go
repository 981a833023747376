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

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/walteh/scrubrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📄 Default target paths of the extension
const (
	DefaultPopupScript      = "scripts/popup.js"
	DefaultBackgroundScript = "scripts/background.js"
	DefaultPopupMarkup      = "popup.html"
)

// 🎯 Target is a file (or doublestar pattern) and the rules applied to it
type Target struct {
	Path    string   `json:"path" yaml:"path" hcl:"path"`
	Profile string   `json:"profile,omitempty" yaml:"profile,omitempty" hcl:"profile,optional"`
	Rules   []string `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rules,optional"`
}

// 🧩 RuleDefinition declares a custom removal rule
type RuleDefinition struct {
	Name        string `json:"name" yaml:"name" hcl:"name,label"`
	Pattern     string `json:"pattern" yaml:"pattern" hcl:"pattern"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" hcl:"description,optional"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Root    string           `json:"root,omitempty" yaml:"root,omitempty" hcl:"root,optional"`
	Targets []Target         `json:"targets" yaml:"targets" hcl:"target,block"`
	Rules   []RuleDefinition `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rule,block"`

	location string
}

// 🏭 Default returns the built-in configuration: the two extension scripts
// and the popup markup, relative to the working directory
func Default() *Config {
	return &Config{
		Targets: []Target{
			{Path: DefaultPopupScript, Profile: text.ProfileScript},
			{Path: DefaultBackgroundScript, Profile: text.ProfileScript},
			{Path: DefaultPopupMarkup, Profile: text.ProfileMarkup},
		},
	}
}

// Location returns the file the config was loaded from, empty for defaults
func (cfg *Config) Location() string {
	return cfg.location
}

// ResolveRoot returns the directory target paths are relative to.
// A relative root is taken relative to the config file's directory.
func (cfg *Config) ResolveRoot() string {
	base := "."
	if cfg.location != "" {
		base = filepath.Dir(cfg.location)
	}
	if cfg.Root == "" {
		return base
	}
	if filepath.IsAbs(cfg.Root) {
		return cfg.Root
	}
	return filepath.Join(base, cfg.Root)
}

// Catalog returns the built-in rules extended with the custom rules
func (cfg *Config) Catalog() (*text.Catalog, error) {
	custom := make([]text.Rule, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		custom = append(custom, text.Rule{
			Name:        r.Name,
			Description: r.Description,
			Pattern:     r.Pattern,
		})
	}
	return text.NewCatalog(custom...)
}

// Resolve returns the ordered rules for the target
func (t Target) Resolve(catalog *text.Catalog) ([]text.Rule, error) {
	if t.Profile != "" {
		return catalog.Profile(t.Profile)
	}
	return catalog.Resolve(t.Rules)
}

// 🔍 Validate checks if the configuration is valid and normalizes paths
func (cfg *Config) Validate() error {
	if len(cfg.Targets) == 0 {
		return errors.Errorf("at least one target is required")
	}

	for i, r := range cfg.Rules {
		if r.Name == "" {
			return errors.Errorf("rules[%d]: name is required", i)
		}
		if r.Pattern == "" {
			return errors.Errorf("rules[%d] (%s): pattern is required", i, r.Name)
		}
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return errors.Errorf("building rule catalog: %w", err)
	}

	if err := text.NewRegexpStripper().ValidateRules(catalog.Rules()); err != nil {
		return errors.Errorf("validating rules: %w", err)
	}

	for i := range cfg.Targets {
		t := &cfg.Targets[i]
		if strings.TrimSpace(t.Path) == "" {
			return errors.Errorf("targets[%d]: path is required", i)
		}
		if (t.Profile == "") == (len(t.Rules) == 0) {
			return errors.Errorf("targets[%d] (%s): exactly one of profile or rules is required", i, t.Path)
		}
		if _, err := t.Resolve(catalog); err != nil {
			return errors.Errorf("targets[%d] (%s): %w", i, t.Path, err)
		}

		t.Path = filepath.ToSlash(filepath.Clean(t.Path))
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	parts := make([]string, 0, len(cfg.Targets))
	for _, t := range cfg.Targets {
		if t.Profile != "" {
			parts = append(parts, fmt.Sprintf("%s[%s]", t.Path, t.Profile))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s[%s]", t.Path, strings.Join(t.Rules, ",")))
	}
	return fmt.Sprintf("%s: %s", cfg.ResolveRoot(), strings.Join(parts, " "))
}
