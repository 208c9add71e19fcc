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

// Package api wires the planning service: craftpland.
//
// Usage:
//
//	import (
//	    "log"
//	    "github.com/craftplan/craftplan/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// The API layer configures structured logging and mounts the planner handler.
// Server lifecycle, middleware, and system endpoints live in pkg/server.
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - POST /v1/plan - Search a crafting domain for a plan
//
// System endpoints:
//   - GET /health  - Liveness check
//   - GET /ready   - Readiness, with the plan cache size
//   - GET /metrics - Prometheus metrics
//
// # Request Body (POST /v1/plan)
//
// JSON (application/json) or YAML (application/yaml):
//
//	domain:
//	  Initial: {wood: 1}
//	  Goal: {plank: 4}
//	  Recipes:
//	    craft plank:
//	      Consumes: {wood: 1}
//	      Produces: {plank: 4}
//	      Time: 1
//	timeLimit: 5s
//	heuristic: max-producer
//	prune: [tool-cap, material-cap]
//
// Example:
//
//	curl -X POST http://localhost:8080/v1/plan \
//	  -H "Content-Type: application/yaml" \
//	  --data-binary @request.yaml
//
// Requested time limits above one minute are lowered to one minute. Found
// plans are cached for ten minutes; the X-Cache response header reports HIT
// or MISS.
//
// # Configuration
//
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - SHUTDOWN_TIMEOUT_SECONDS: Graceful shutdown window
//   - RATE_LIMIT_RPS: Sustained request rate
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/craftplan/craftplan/pkg/api.version=1.0.0'"
package api
