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
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestServer_Routes(t *testing.T) {
	s := New(
		WithName("test-server"),
		WithVersion("v0.0.1"),
		WithHandler(map[string]http.HandlerFunc{
			"/v1/echo": func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
		}),
	)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"health", "/health", http.StatusOK},
		{"ready before start", "/ready", http.StatusServiceUnavailable},
		{"metrics", "/metrics", http.StatusOK},
		{"custom handler", "/v1/echo", http.StatusNoContent},
		{"unknown path", "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.path)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Errorf("GET %s: expected %d, got %d", tt.path, tt.status, resp.StatusCode)
			}
		})
	}
}

func TestServer_ReadyAfterSetReady(t *testing.T) {
	s := New()
	s.SetReady(true)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Status != "ready" {
		t.Errorf("expected ready status, got %q", resp.Status)
	}
}

func TestServer_ReadyReportsStatus(t *testing.T) {
	cached := 0
	s := New(WithStatus("planCache", func() any { return cached }))
	s.SetReady(true)
	cached = 3

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got, ok := resp.Details["planCache"].(float64); !ok || got != 3 {
		t.Errorf("expected planCache 3, got %v", resp.Details["planCache"])
	}

	s.SetReady(false)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	resp = HealthResponse{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Reason == "" || resp.Details["planCache"] == nil {
		t.Errorf("expected reason and details while not ready, got %+v", resp)
	}
}

func TestServer_HealthOmitsStatus(t *testing.T) {
	s := New(WithStatus("planCache", func() any { return 1 }))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "healthy" || resp.Details != nil {
		t.Errorf("expected bare healthy response, got %+v", resp)
	}
}

func TestServer_HealthRejectsPost(t *testing.T) {
	s := New()

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if got := rec.Header().Get("Allow"); got != "GET, HEAD" {
		t.Errorf("expected Allow GET, HEAD, got %q", got)
	}
}

func TestServer_DefaultRoute(t *testing.T) {
	s := New(
		WithName("craftpland"),
		WithVersion("v1.2.3"),
		WithHandler(map[string]http.HandlerFunc{"/v1/plan": func(http.ResponseWriter, *http.Request) {}}),
	)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Name    string   `json:"name"`
		Version string   `json:"version"`
		Routes  []string `json:"routes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Name != "craftpland" || resp.Version != "v1.2.3" {
		t.Errorf("unexpected identity: %+v", resp)
	}
	if len(resp.Routes) == 0 || resp.Routes[0] != "/v1/plan" {
		t.Errorf("expected /v1/plan first in routes, got %v", resp.Routes)
	}
}

func TestServer_MiddlewareHeaders(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{
		"/v1/echo": func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, RequestIDFromContext(r))
		},
	}))

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/echo", nil))

	if rec.Header().Get("X-API-Version") != DefaultAPIVersion {
		t.Errorf("expected X-API-Version header, got %q", rec.Header().Get("X-API-Version"))
	}
	id := rec.Header().Get("X-Request-Id")
	if id == "" || strings.TrimSpace(rec.Body.String()) != id {
		t.Errorf("expected handler to see request ID %q, got %q", id, rec.Body.String())
	}
}

func TestServer_StartAndShutdown(t *testing.T) {
	cfg := NewConfig()
	cfg.Address = "127.0.0.1"
	cfg.Port = 0
	cfg.ShutdownTimeout = time.Second
	s := New(WithConfig(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for !s.IsReady() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if !s.IsReady() {
		t.Fatal("server never became ready")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error on shutdown: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	if s.IsReady() {
		t.Error("expected server to be not ready after shutdown")
	}
}
