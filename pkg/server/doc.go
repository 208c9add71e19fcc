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

// Package server provides the HTTP runtime shared by craftplan services.
//
// A Server owns an http.Server with health, readiness, and Prometheus
// endpoints, and mounts caller-supplied handlers behind a middleware chain:
//
//   - Prometheus request metrics (craftplan_http_*)
//   - API version negotiation via Accept: application/vnd.craftplan.v1+json
//   - Request ID tracking through the X-Request-Id header
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate), with Retry-After
//     set to the wait for the next token
//   - Debug request logging
//
// Usage:
//
//	s := server.New(
//	    server.WithName("craftpland"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/plan": handler.HandlePlan,
//	    }),
//	    server.WithStatus("planCache", func() any { return handler.CacheLen() }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Endpoints
//
// GET /health always returns 200 with {"status": "healthy"}.
//
// GET /ready returns 200 once the server is started and 503 otherwise. Both
// carry the WithStatus component values under "details".
//
// GET /metrics exposes the Prometheus registry.
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr, which render
// a consistent body:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "invalid domain: 1 problem(s)",
//	  "details": {"problems": ["recipe \"craft plank\": unknown item \"lgo\""]},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-02T12:00:00Z",
//	  "retryable": false
//	}
//
// The status code follows the error code: INVALID_REQUEST 400, NOT_FOUND 404,
// METHOD_NOT_ALLOWED 405, RATE_LIMIT_EXCEEDED 429, TIMEOUT 504,
// SERVICE_UNAVAILABLE 503, anything else 500.
//
// # Configuration
//
// PORT sets the listen port (default 8080), SHUTDOWN_TIMEOUT_SECONDS the
// graceful shutdown window, and RATE_LIMIT_RPS the sustained request rate.
package server
