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

// Package domain loads, validates, and compiles crafting domains.
//
// A domain document lists the known items, the initial inventory, the goal,
// and the recipes:
//
//	{
//	  "Items": ["wood", "plank"],
//	  "Initial": {"wood": 1},
//	  "Goal": {"plank": 1},
//	  "Recipes": {
//	    "craft plank": {"Consumes": {"wood": 1}, "Produces": {"plank": 4}, "Time": 1}
//	  }
//	}
//
// JSON and YAML are accepted; the format follows the file extension.
// Validate reports every problem in one error. Compile turns a valid
// definition into the recipe book, goal checker, and start inventory a
// search needs.
package domain
