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

package defaults

import "time"

// Search limits.
const (
	// SearchTimeLimit is the default wall-clock budget of a single search.
	SearchTimeLimit = 5 * time.Second

	// MaxSearchTimeLimit caps the budget a service client may request.
	MaxSearchTimeLimit = 60 * time.Second

	// SearchProgressInterval is the number of expansions between debug
	// progress records.
	SearchProgressInterval = 100_000
)

// Handler timeouts for HTTP request processing.
const (
	// PlanHandlerGrace is the time a plan request keeps after its search
	// budget runs out, for building and writing the report.
	PlanHandlerGrace = 5 * time.Second

	// PlanHandlerTimeout is the timeout for plan requests. It must leave room
	// for the longest search a client may request.
	PlanHandlerTimeout = MaxSearchTimeLimit + PlanHandlerGrace

	// PlanCacheTTL is how long a computed plan is served from cache.
	PlanCacheTTL = 10 * time.Minute

	// PlanCacheCleanupInterval is how often expired plans are purged.
	PlanCacheCleanupInterval = 20 * time.Minute

	// MaxRequestBodyBytes bounds the size of a plan request.
	MaxRequestBodyBytes = 4 << 20
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = PlanHandlerTimeout + 5*time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client timeouts for fetching remote domain files.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshakes.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for receiving response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPKeepAlive is the keep-alive period for outbound connections.
	HTTPKeepAlive = 30 * time.Second

	// MaxDomainFileBytes bounds the size of a fetched domain file.
	MaxDomainFileBytes = MaxRequestBodyBytes
)
