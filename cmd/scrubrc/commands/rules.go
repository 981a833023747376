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
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/scrubrc/cmd/scrubrc/opts"
	"github.com/walteh/scrubrc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// NewRulesCmd creates the rules command
func NewRulesCmd(load opts.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the removal rules and the profiles that use them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := load(cmd.Context())
			if err != nil {
				return err
			}

			catalog, err := o.Config.Catalog()
			if err != nil {
				return errors.Errorf("building rule catalog: %w", err)
			}

			table, err := pterm.DefaultTable.
				WithHasHeader().
				WithData(rulesTable(catalog)).
				Srender()
			if err != nil {
				return errors.Errorf("rendering rules: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	return cmd
}

func rulesTable(catalog *text.Catalog) pterm.TableData {
	used := make(map[string][]string)
	for _, profile := range catalog.ProfileNames() {
		for _, name := range catalog.ProfileRuleNames(profile) {
			used[name] = append(used[name], profile)
		}
	}

	data := pterm.TableData{{"Rule", "Profiles", "Pattern", "Description"}}
	for _, rule := range catalog.Rules() {
		profiles := strings.Join(used[rule.Name], ",")
		if profiles == "" {
			profiles = "-"
		}
		data = append(data, []string{rule.Name, profiles, rule.Pattern, rule.Description})
	}
	return data
}
