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
	"sort"

	"gitlab.com/tozd/go/errors"
)

// 🏷️ Built-in rule names
const (
	RuleBanner         = "banner"
	RuleSectionHeader  = "section-header"
	RuleEmoji          = "emoji"
	RuleEmojiTransport = "emoji-transport"
	RuleMarkupComment  = "markup-comment"
)

// 🏷️ Built-in profile names
const (
	ProfileScript = "script"
	ProfileMarkup = "markup"
)

var builtinRules = []Rule{
	{
		Name:        RuleBanner,
		Description: "comment line made of a run of ═ border characters",
		Pattern:     `//\s*═.*?\n`,
	},
	{
		Name:        RuleSectionHeader,
		Description: "comment line holding a short uppercase section title",
		Pattern:     `(?m)^\s*//\s*[A-Z][A-Z ]+\n`,
	},
	{
		Name:        RuleEmoji,
		Description: "emoticons (U+1F600-1F64F) and symbols & pictographs (U+1F300-1F5FF)",
		Pattern:     `[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}]+`,
	},
	{
		Name:        RuleEmojiTransport,
		Description: "transport & map symbols (U+1F680-1F6FF)",
		Pattern:     `[\x{1F680}-\x{1F6FF}]+`,
	},
	{
		Name:        RuleMarkupComment,
		Description: "<!-- --> comment whose body has no hyphen, with its line break",
		Pattern:     `<!-- [^-]*? -->\n`,
	},
}

var builtinProfiles = map[string][]string{
	ProfileScript: {RuleBanner, RuleSectionHeader, RuleEmoji},
	ProfileMarkup: {RuleEmoji, RuleMarkupComment},
}

// BuiltinRules returns a copy of the built-in rule catalogue
func BuiltinRules() []Rule {
	out := make([]Rule, len(builtinRules))
	copy(out, builtinRules)
	return out
}

// 📚 Catalog resolves rule and profile names to ordered rule lists
type Catalog struct {
	rules    map[string]Rule
	order    []string
	profiles map[string][]string
}

// NewCatalog creates a catalog of the built-in rules plus any custom rules.
// A custom rule may not reuse a built-in or another custom rule's name.
func NewCatalog(custom ...Rule) (*Catalog, error) {
	c := &Catalog{
		rules:    make(map[string]Rule, len(builtinRules)+len(custom)),
		profiles: builtinProfiles,
	}

	for _, r := range builtinRules {
		c.rules[r.Name] = r
		c.order = append(c.order, r.Name)
	}

	for _, r := range custom {
		if _, ok := c.rules[r.Name]; ok {
			return nil, errors.Errorf("rule %q is already defined", r.Name)
		}
		c.rules[r.Name] = r
		c.order = append(c.order, r.Name)
	}

	return c, nil
}

// Rules returns every rule in the catalog, built-ins first
func (c *Catalog) Rules() []Rule {
	out := make([]Rule, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.rules[name])
	}
	return out
}

// Lookup returns the rule with the given name
func (c *Catalog) Lookup(name string) (Rule, bool) {
	r, ok := c.rules[name]
	return r, ok
}

// Resolve returns the rules for the given names, preserving order
func (c *Catalog) Resolve(names []string) ([]Rule, error) {
	out := make([]Rule, 0, len(names))
	for _, name := range names {
		r, ok := c.rules[name]
		if !ok {
			return nil, errors.Errorf("unknown rule %q", name)
		}
		out = append(out, r)
	}
	return out, nil
}

// Profile returns the ordered rules of a named profile
func (c *Catalog) Profile(name string) ([]Rule, error) {
	names, ok := c.profiles[name]
	if !ok {
		return nil, errors.Errorf("unknown profile %q", name)
	}
	return c.Resolve(names)
}

// ProfileNames returns the sorted profile names
func (c *Catalog) ProfileNames() []string {
	out := make([]string, 0, len(c.profiles))
	for name := range c.profiles {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ProfileRuleNames returns the rule names of a profile, or nil if unknown
func (c *Catalog) ProfileRuleNames(name string) []string {
	return append([]string(nil), c.profiles[name]...)
}
