// Package config manages target and rule configuration for scrubrc.
//
// 	            +-------------+
// 	            |   Config    |
// 	            |  (Targets)  |
// 	            +------+------+
// 	                   |
// 	      +------------+------------+
// 	      |            |            |
// 	+-----+----+ +-----+----+ +-----+----+
// 	|   YAML   | |   HCL    | |   JSON   |
// 	+----------+ +----------+ +----------+
//
// 🎯 Purpose:
// - Lists the files to clean and the ordered rules for each
// - Declares custom removal rules next to the built-in ones
// - Falls back to the extension's three files when no file is present
//
// 🔄 Flow:
// 1. Reads configuration from file (or uses Default)
// 2. Parses format-specific syntax
// 3. Validates targets, profiles, rule names and patterns
// 4. Hands the validated config to the cleanup operation
//
// 🔍 Example:
//
// 	# .scrubrc.hcl
// 	root = "extension"
//
// 	target {
// 	  path    = "scripts/**/*.js"
// 	  profile = "script"
// 	}
//
// 	target {
// 	  path  = "popup.html"
// 	  rules = ["emoji", "emoji-transport", "markup-comment"]
// 	}
//
// 	rule "debug-log" {
// 	  pattern = "console\\.debug\\(.*\\);\\n"
// 	}
package config
