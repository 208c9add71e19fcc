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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/craftplan/craftplan/pkg/planner"
	"github.com/craftplan/craftplan/pkg/server"
)

// Serve blocks until shutdown, so these tests exercise the route table it
// mounts through a server.Server handler.

func TestConstants(t *testing.T) {
	if name != "craftpland" {
		t.Errorf("name = %q, want %q", name, "craftpland")
	}
	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}
	if version == "" || commit == "" || date == "" {
		t.Error("build variables should not be empty")
	}
}

func TestRoutes(t *testing.T) {
	r := routes(planner.NewHandler())
	if len(r) != 1 {
		t.Fatalf("expected 1 route, got %d", len(r))
	}
	if r["/v1/plan"] == nil {
		t.Fatal("expected /v1/plan handler")
	}
}

const plankBody = `{"domain": {"Initial": {"wood": 1}, "Goal": {"plank": 4},
	"Recipes": {"craft plank": {"Consumes": {"wood": 1}, "Produces": {"plank": 4}, "Time": 1}}}}`

func TestPlanEndpoint(t *testing.T) {
	ts := httptest.NewServer(newServer(planner.NewHandler()).Handler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/v1/plan", "application/json", strings.NewReader(plankBody))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id from middleware")
	}
	if resp.Header.Get("X-API-Version") != server.DefaultAPIVersion {
		t.Errorf("expected X-API-Version %q, got %q", server.DefaultAPIVersion, resp.Header.Get("X-API-Version"))
	}
}

func TestPlanEndpoint_MethodNotAllowed(t *testing.T) {
	ts := httptest.NewServer(newServer(planner.NewHandler()).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/v1/plan")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", resp.StatusCode)
	}
}

func TestReady_ReportsPlanCache(t *testing.T) {
	s := newServer(planner.NewHandler())
	s.SetReady(true)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/v1/plan", "application/json", strings.NewReader(plankBody))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/ready")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var ready server.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&ready); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ready.Status != "ready" {
		t.Errorf("expected ready, got %q", ready.Status)
	}
	if got, ok := ready.Details["planCache"].(float64); !ok || got != 1 {
		t.Errorf("expected planCache 1, got %v", ready.Details["planCache"])
	}
}
