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
	"math/rand"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileRules(t *testing.T, profile string) []Rule {
	t.Helper()
	catalog, err := NewCatalog()
	require.NoError(t, err)
	rules, err := catalog.Profile(profile)
	require.NoError(t, err)
	return rules
}

func strip(t *testing.T, content string, rules []Rule) *StripResult {
	t.Helper()
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	result, err := NewRegexpStripper().StripText(ctx, strings.NewReader(content), rules)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func TestRegexpStripper_StripText(t *testing.T) {
	tests := []struct {
		name         string
		profile      string
		content      string
		want         string
		wantCount    int
		wantRemovals map[string]int
	}{
		{
			name:         "banner_line_removed",
			profile:      ProfileScript,
			content:      "// ════════════════\nconst x = 1;\n",
			want:         "const x = 1;\n",
			wantCount:    1,
			wantRemovals: map[string]int{RuleBanner: 1},
		},
		{
			name:         "banner_between_lines",
			profile:      ProfileScript,
			content:      "let a = 1;\n//═══════\nlet b = 2;\n",
			want:         "let a = 1;\nlet b = 2;\n",
			wantCount:    1,
			wantRemovals: map[string]int{RuleBanner: 1},
		},
		{
			name:         "indented_section_header",
			profile:      ProfileScript,
			content:      "  // SECTION HEADER\nfunction init() {}\n",
			want:         "function init() {}\n",
			wantCount:    1,
			wantRemovals: map[string]int{RuleSectionHeader: 1},
		},
		{
			name:         "trailing_uppercase_comment_kept",
			profile:      ProfileScript,
			content:      "const a = 1; // NOTE\n",
			want:         "const a = 1; // NOTE\n",
			wantRemovals: map[string]int{},
		},
		{
			name:         "lowercase_comment_kept",
			profile:      ProfileScript,
			content:      "// fetch the tab list\nchrome.tabs.query({});\n",
			want:         "// fetch the tab list\nchrome.tabs.query({});\n",
			wantRemovals: map[string]int{},
		},
		{
			name:         "emoji_removed_in_place",
			profile:      ProfileScript,
			content:      "Hello 😀 World",
			want:         "Hello  World",
			wantCount:    1,
			wantRemovals: map[string]int{RuleEmoji: 1},
		},
		{
			name:         "emoji_runs_count_once",
			profile:      ProfileScript,
			content:      "log('😀😀 done 🌟');\n",
			want:         "log(' done ');\n",
			wantCount:    2,
			wantRemovals: map[string]int{RuleEmoji: 2},
		},
		{
			name:         "emoji_keeps_line_breaks",
			profile:      ProfileScript,
			content:      "a😀\nb🌟\n",
			want:         "a\nb\n",
			wantCount:    2,
			wantRemovals: map[string]int{RuleEmoji: 2},
		},
		{
			name:         "transport_symbols_not_in_default_profile",
			profile:      ProfileScript,
			content:      "status = '🚀 ✅';\n",
			want:         "status = '🚀 ✅';\n",
			wantRemovals: map[string]int{},
		},
		{
			name:         "markup_comment_removed",
			profile:      ProfileMarkup,
			content:      "<!-- simple note -->\n<p>text</p>",
			want:         "<p>text</p>",
			wantCount:    1,
			wantRemovals: map[string]int{RuleMarkupComment: 1},
		},
		{
			name:         "markup_comment_with_hyphen_kept",
			profile:      ProfileMarkup,
			content:      "<!-- note - with hyphen -->\n<p>text</p>",
			want:         "<!-- note - with hyphen -->\n<p>text</p>",
			wantRemovals: map[string]int{},
		},
		{
			name:         "markup_emoji_then_comment",
			profile:      ProfileMarkup,
			content:      "<!-- 📦 header -->\n<h1>Tabs 😀</h1>\n",
			want:         "<h1>Tabs </h1>\n",
			wantCount:    3,
			wantRemovals: map[string]int{RuleEmoji: 2, RuleMarkupComment: 1},
		},
		{
			name:         "markup_profile_leaves_script_comments",
			profile:      ProfileMarkup,
			content:      "<script>\n// ═══════\n</script>\n",
			want:         "<script>\n// ═══════\n</script>\n",
			wantRemovals: map[string]int{},
		},
		{
			name:         "emoji_revealing_banner_is_settled",
			profile:      ProfileScript,
			content:      "// 😀═══\nx();\n",
			want:         "x();\n",
			wantCount:    2,
			wantRemovals: map[string]int{RuleEmoji: 1, RuleBanner: 1},
		},
		{
			name:         "empty_content",
			profile:      ProfileScript,
			content:      "",
			want:         "",
			wantRemovals: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := strip(t, tt.content, profileRules(t, tt.profile))

			assert.Equal(t, tt.content, string(result.OriginalContent))
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantCount, result.RemovalCount)
			assert.Equal(t, tt.wantCount > 0, result.WasModified)
			assert.Equal(t, tt.wantRemovals, result.Removals)
		})
	}
}

func TestRegexpStripper_Idempotent(t *testing.T) {
	content := strings.Join([]string{
		"// ══════════════════════════════",
		"// POPUP STATE",
		"// ══════════════════════════════",
		"let tabs = [];",
		"",
		"  // EVENT HANDLERS",
		"document.addEventListener('DOMContentLoaded', () => {",
		"  // load the saved tabs",
		"  render('🌟 ready 😀'); // DONE",
		"});",
		"",
	}, "\n")

	for _, profile := range []string{ProfileScript, ProfileMarkup} {
		t.Run(profile, func(t *testing.T) {
			rules := profileRules(t, profile)
			once := strip(t, content, rules)
			twice := strip(t, string(once.ModifiedContent), rules)

			assert.Equal(t, string(once.ModifiedContent), string(twice.ModifiedContent))
			assert.False(t, twice.WasModified)
			assert.Zero(t, twice.RemovalCount)
		})
	}
}

func TestRegexpStripper_EmojiCompleteness(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ranges := [][2]rune{{0x1F600, 0x1F64F}, {0x1F300, 0x1F5FF}}
	plain := []rune("abc XYZ\n\t{}();=é✅🚀")

	inRange := func(r rune) bool {
		for _, rg := range ranges {
			if r >= rg[0] && r <= rg[1] {
				return true
			}
		}
		return false
	}

	catalog, err := NewCatalog()
	require.NoError(t, err)
	emoji, err := catalog.Resolve([]string{RuleEmoji})
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		var input, kept []rune
		for j := 0; j < 200; j++ {
			if rng.Intn(3) == 0 {
				rg := ranges[rng.Intn(len(ranges))]
				input = append(input, rg[0]+rune(rng.Intn(int(rg[1]-rg[0]+1))))
				continue
			}
			r := plain[rng.Intn(len(plain))]
			input = append(input, r)
			kept = append(kept, r)
		}

		result := strip(t, string(input), emoji)
		for _, r := range string(result.ModifiedContent) {
			require.False(t, inRange(r), "rune %U left in output", r)
		}
		require.Equal(t, string(kept), string(result.ModifiedContent))
	}
}

func TestRegexpStripper_ValidateRules(t *testing.T) {
	tests := []struct {
		name      string
		rules     []Rule
		wantError string
	}{
		{
			name:  "builtin_rules",
			rules: BuiltinRules(),
		},
		{
			name:      "missing_name",
			rules:     []Rule{{Pattern: "x"}},
			wantError: "name is required",
		},
		{
			name:      "missing_pattern",
			rules:     []Rule{{Name: "todo"}},
			wantError: "pattern is required",
		},
		{
			name:      "malformed_pattern",
			rules:     []Rule{{Name: "broken", Pattern: "(["}},
			wantError: "malformed pattern",
		},
		{
			name:      "empty_match_pattern",
			rules:     []Rule{{Name: "stars", Pattern: "x*"}},
			wantError: "matches the empty string",
		},
		{
			name:  "empty_rules",
			rules: []Rule{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegexpStripper().ValidateRules(tt.rules)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestRegexpStripper_StripTextRejectsInvalidRules(t *testing.T) {
	_, err := NewRegexpStripper().StripText(context.Background(), strings.NewReader("x"), []Rule{{Name: "bad", Pattern: "("}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating rules")
}
