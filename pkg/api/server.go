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

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/craftplan/craftplan/pkg/logging"
	"github.com/craftplan/craftplan/pkg/planner"
	"github.com/craftplan/craftplan/pkg/server"
)

const (
	name           = "craftpland"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/craftplan/craftplan/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// routes maps API paths to their handlers.
func routes(h *planner.Handler) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/plan": h.HandlePlan,
	}
}

// newServer mounts h and reports its plan cache size under /ready.
func newServer(h *planner.Handler) *server.Server {
	return server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(routes(h)),
		server.WithStatus("planCache", func() any { return h.CacheLen() }),
	)
}

// Serve starts the API server and blocks until shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s := newServer(planner.NewHandler(planner.WithVersion(version)))

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
