// Copyright (c) 2026, The craftplan Authors.  All rights reserved.
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

// Package cli implements the craftplan command-line interface.
//
// # Commands
//
// plan - Search for the cheapest crafting plan:
//
//	craftplan plan --domain crafting.json [--time-limit 5s | --unbounded]
//	    [--heuristic max-producer] [--prune tool-cap --prune material-cap]
//	    [--format yaml|json|table] [--output plan.yaml]
//
// validate - Check a domain file and summarize it:
//
//	craftplan validate --domain crafting.json
//
// heuristics - List the supported estimates and pruning filters.
//
// # Global Flags
//
//	--log-level    Logging verbosity: debug, info, warn, error (env LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Exit Codes
//
//	0  Success
//	1  Invalid input, or no plan found with --fail-on-no-plan
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/craftplan/craftplan/pkg/cli.version=1.0.0'"
package cli
