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

package server

import (
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/craftplan/craftplan/pkg/serializer"
)

// StatusFunc reports the current state of one service component, such as
// the number of cached plans. It must be safe for concurrent use.
type StatusFunc func() any

// WithStatus adds a named component status to /ready and the default route.
func WithStatus(name string, fn StatusFunc) Option {
	return func(s *Server) {
		if name == "" || fn == nil {
			return
		}
		if s.status == nil {
			s.status = make(map[string]StatusFunc)
		}
		s.status[name] = fn
	}
}

// HealthResponse is the body of /health and /ready.
type HealthResponse struct {
	Status    string         `json:"status" yaml:"status"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Reason    string         `json:"reason,omitempty" yaml:"reason,omitempty"`
	Details   map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
}

// details collects the registered component statuses, or nil.
func (s *Server) details() map[string]any {
	if len(s.status) == 0 {
		return nil
	}
	out := make(map[string]any, len(s.status))
	for _, name := range slices.Sorted(maps.Keys(s.status)) {
		out[name] = s.status[name]()
	}
	return out
}

// handleHealth reports liveness. It does not consult component status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}

// handleReady reports whether plans are being served, along with the
// component statuses.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	resp := HealthResponse{
		Status:    "ready",
		Timestamp: time.Now().UTC(),
		Details:   s.details(),
	}
	code := http.StatusOK
	if !s.IsReady() {
		resp.Status = "not_ready"
		resp.Reason = "planner is not accepting requests"
		code = http.StatusServiceUnavailable
	}
	serializer.RespondJSON(w, code, resp)
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	return false
}
