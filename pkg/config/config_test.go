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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/scrubrc/pkg/text"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "yaml_targets_and_rules",
			filename: ".scrubrc.yaml",
			config: `
root: extension
targets:
  - path: scripts/**/*.js
    profile: script
  - path: ./popup.html
    rules: [emoji, emoji-transport, markup-comment]
rules:
  - name: debug-log
    pattern: 'console\.debug\(.*\);\n'
    description: debug logging
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "extension", cfg.Root, "root should match")
				require.Len(t, cfg.Targets, 2, "should have 2 targets")
				assert.Equal(t, "scripts/**/*.js", cfg.Targets[0].Path, "first path should match")
				assert.Equal(t, text.ProfileScript, cfg.Targets[0].Profile, "first profile should match")
				assert.Equal(t, "popup.html", cfg.Targets[1].Path, "second path should be cleaned")
				assert.Equal(t, []string{"emoji", "emoji-transport", "markup-comment"}, cfg.Targets[1].Rules)
				require.Len(t, cfg.Rules, 1, "should have 1 custom rule")
				assert.Equal(t, "debug-log", cfg.Rules[0].Name)
				assert.Equal(t, `console\.debug\(.*\);\n`, cfg.Rules[0].Pattern)
			},
		},
		{
			name:     "hcl_targets_and_rules",
			filename: ".scrubrc.hcl",
			config: `
root = "extension"

target {
  path    = "scripts/popup.js"
  profile = "script"
}

target {
  path  = "popup.html"
  rules = ["emoji", "debug-log"]
}

rule "debug-log" {
  pattern = "console\\.debug\\(.*\\);\\n"
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "extension", cfg.Root)
				require.Len(t, cfg.Targets, 2)
				assert.Equal(t, "scripts/popup.js", cfg.Targets[0].Path)
				assert.Equal(t, []string{"emoji", "debug-log"}, cfg.Targets[1].Rules)
				require.Len(t, cfg.Rules, 1)
				assert.Equal(t, "debug-log", cfg.Rules[0].Name)
				assert.Equal(t, `console\.debug\(.*\);\n`, cfg.Rules[0].Pattern)
			},
		},
		{
			name:     "json_targets",
			filename: "scrubrc.json",
			config:   `{"targets": [{"path": "popup.html", "profile": "markup"}]}`,
			check: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Targets, 1)
				assert.Equal(t, text.ProfileMarkup, cfg.Targets[0].Profile)
			},
		},
		{
			name:     "dotfile_hcl_fallback",
			filename: ".scrubrc",
			config: `
target {
  path    = "popup.html"
  profile = "markup"
}
`,
			check: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Targets, 1)
				assert.Equal(t, "popup.html", cfg.Targets[0].Path)
			},
		},
		{
			name:        "unknown_yaml_field",
			filename:    ".scrubrc.yaml",
			config:      "targets:\n  - path: a.js\n    profile: script\nbackup: true\n",
			errContains: "parsing YAML",
		},
		{
			name:        "unknown_json_field",
			filename:    "scrubrc.json",
			config:      `{"targets": [], "dry_run": true}`,
			errContains: "parsing JSON",
		},
		{
			name:        "unsupported_extension",
			filename:    "scrubrc.toml",
			config:      "targets = []",
			errContains: "unsupported file extension",
		},
		{
			name:        "no_targets",
			filename:    ".scrubrc.yaml",
			config:      "root: .\n",
			errContains: "at least one target is required",
		},
		{
			name:        "unknown_profile",
			filename:    ".scrubrc.yaml",
			config:      "targets:\n  - path: a.css\n    profile: stylesheet\n",
			errContains: `unknown profile "stylesheet"`,
		},
		{
			name:        "unknown_rule",
			filename:    ".scrubrc.yaml",
			config:      "targets:\n  - path: a.js\n    rules: [banner, todo]\n",
			errContains: `unknown rule "todo"`,
		},
		{
			name:        "profile_and_rules",
			filename:    ".scrubrc.yaml",
			config:      "targets:\n  - path: a.js\n    profile: script\n    rules: [emoji]\n",
			errContains: "exactly one of profile or rules",
		},
		{
			name:        "missing_path",
			filename:    ".scrubrc.yaml",
			config:      "targets:\n  - profile: script\n",
			errContains: "path is required",
		},
		{
			name:        "malformed_custom_pattern",
			filename:    ".scrubrc.yaml",
			config:      "targets:\n  - path: a.js\n    rules: [broken]\nrules:\n  - name: broken\n    pattern: '(['\n",
			errContains: "malformed pattern",
		},
		{
			name:        "custom_rule_shadows_builtin",
			filename:    ".scrubrc.yaml",
			config:      "targets:\n  - path: a.js\n    profile: script\nrules:\n  - name: emoji\n    pattern: x\n",
			errContains: `rule "emoji" is already defined`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.config), 0644))

			cfg, err := LoadConfig(ctx, path)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, path, cfg.Location())
			tt.check(t, cfg)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

	t.Run("missing_file_uses_defaults", func(t *testing.T) {
		cfg, err := LoadOrDefault(ctx, filepath.Join(t.TempDir(), DefaultFile))
		require.NoError(t, err)

		assert.Equal(t, Default().Targets, cfg.Targets)
		assert.Empty(t, cfg.Location())
		assert.Equal(t, ".", cfg.ResolveRoot())
	})

	t.Run("existing_file_is_loaded", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, DefaultFile)
		require.NoError(t, os.WriteFile(path, []byte("targets:\n  - path: popup.html\n    profile: markup\n"), 0644))

		cfg, err := LoadOrDefault(ctx, path)
		require.NoError(t, err)
		require.Len(t, cfg.Targets, 1)
		assert.Equal(t, dir, cfg.ResolveRoot())
	})

	t.Run("missing_explicit_file_fails", func(t *testing.T) {
		_, err := LoadConfig(ctx, filepath.Join(t.TempDir(), "custom.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	catalog, err := cfg.Catalog()
	require.NoError(t, err)

	want := map[string][]string{
		DefaultPopupScript:      {text.RuleBanner, text.RuleSectionHeader, text.RuleEmoji},
		DefaultBackgroundScript: {text.RuleBanner, text.RuleSectionHeader, text.RuleEmoji},
		DefaultPopupMarkup:      {text.RuleEmoji, text.RuleMarkupComment},
	}

	require.Len(t, cfg.Targets, len(want))
	for _, target := range cfg.Targets {
		rules, err := target.Resolve(catalog)
		require.NoError(t, err)

		names := make([]string, 0, len(rules))
		for _, r := range rules {
			names = append(names, r.Name)
		}
		assert.Equal(t, want[target.Path], names, "rules for %s", target.Path)
	}
}

func TestResolveRoot(t *testing.T) {
	tests := []struct {
		name     string
		root     string
		location string
		want     string
	}{
		{name: "defaults", want: "."},
		{name: "relative_root_no_file", root: "ext", want: "ext"},
		{name: "file_dir", location: filepath.Join("a", "b", ".scrubrc.yaml"), want: filepath.Join("a", "b")},
		{name: "relative_root_from_file", root: "ext", location: filepath.Join("a", ".scrubrc.yaml"), want: filepath.Join("a", "ext")},
		{name: "absolute_root", root: "/srv/ext", location: filepath.Join("a", ".scrubrc.yaml"), want: "/srv/ext"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Root: tt.root, location: tt.location}
			assert.Equal(t, tt.want, cfg.ResolveRoot())
		})
	}
}
