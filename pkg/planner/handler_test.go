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

package planner

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/craftplan/craftplan/pkg/defaults"
	"github.com/craftplan/craftplan/pkg/errors"
	"github.com/craftplan/craftplan/pkg/server"
)

const plankRequest = `{
  "domain": {
    "Items": ["wood", "plank"],
    "Initial": {"wood": 1},
    "Goal": {"plank": 4},
    "Recipes": {
      "craft plank": {"Consumes": {"wood": 1}, "Produces": {"plank": 4}, "Time": 1}
    }
  },
  "timeLimit": "2s"
}`

func postPlan(t *testing.T, h *Handler, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.HandlePlan(rec, req)
	return rec
}

func TestHandlePlan_Found(t *testing.T) {
	h := NewHandler()

	rec := postPlan(t, h, "application/json", plankRequest)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))

	var report Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.True(t, report.Found)
	assert.Equal(t, 1.0, report.TotalCost)
	require.Len(t, report.Steps, 1)
	assert.Equal(t, "craft plank", report.Steps[0].Recipe)
	assert.Equal(t, 4, report.Steps[0].State.Get("plank"))
}

func TestHandlePlan_CachesFoundPlans(t *testing.T) {
	h := NewHandler()

	first := postPlan(t, h, "application/json", plankRequest)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, h.CacheLen())

	second := postPlan(t, h, "application/json", plankRequest)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestHandlePlan_CacheDisabled(t *testing.T) {
	h := NewHandler(WithCacheTTL(0))

	rec := postPlan(t, h, "application/json", plankRequest)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, h.CacheLen())
}

func TestHandlePlan_UnreachableIsNotCached(t *testing.T) {
	h := NewHandler()
	body := `{"domain": {"Goal": {"diamond": 1}, "Recipes": {}}, "timeLimit": "1s"}`

	rec := postPlan(t, h, "application/json", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.False(t, report.Found)
	assert.Equal(t, "exhausted", string(report.Outcome))
	assert.Equal(t, 0, h.CacheLen())
}

func TestHandlePlan_YAMLBody(t *testing.T) {
	h := NewHandler()
	body := `
domain:
  Initial: {wood: 2}
  Goal: {plank: 8}
  Recipes:
    craft plank:
      Consumes: {wood: 1}
      Produces: {plank: 4}
      Time: 1
heuristic: max-producer
`
	rec := postPlan(t, h, "application/yaml", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.True(t, report.Found)
	assert.Equal(t, 2.0, report.TotalCost)
	assert.Equal(t, "max-producer", report.Heuristic)
}

func TestHandlePlan_MethodNotAllowed(t *testing.T) {
	h := NewHandler()

	rec := httptest.NewRecorder()
	h.HandlePlan(rec, httptest.NewRequest(http.MethodGet, "/v1/plan", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestHandlePlan_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"domain":`},
		{"unknown field", `{"domain": {"Goal": {}}, "bogus": true}`},
		{"bad time limit", `{"domain": {"Goal": {"a": 1}}, "timeLimit": "soon"}`},
		{"negative time limit", `{"domain": {"Goal": {"a": 1}}, "timeLimit": "-1s"}`},
		{"unknown heuristic", `{"domain": {"Goal": {"a": 1}}, "heuristic": "psychic"}`},
		{"negative weight", `{"domain": {"Goal": {"a": 1}}, "weight": -2}`},
		{"invalid domain", `{"domain": {"Goal": {"a": -1}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postPlan(t, NewHandler(), "application/json", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			var resp server.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, string(errors.ErrCodeInvalidRequest), resp.Code)
			assert.False(t, resp.Retryable)
		})
	}
}

func TestHandlePlan_BodyTooLarge(t *testing.T) {
	body := bytes.Repeat([]byte(" "), defaults.MaxRequestBodyBytes+1)

	for _, contentType := range []string{"application/json", "application/yaml"} {
		t.Run(contentType, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/plan", bytes.NewReader(body))
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			NewHandler().HandlePlan(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			var resp server.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "request body too large", resp.Message)
			assert.EqualValues(t, defaults.MaxRequestBodyBytes, resp.Details["limit"])
		})
	}
}

// endlessRequest can never reach its goal, and the zero estimate never
// proves it, so the search only stops on its budget or its context.
const endlessRequest = `{
  "domain": {
    "Goal": {"stone": 1},
    "Recipes": {
      "gather wood": {"Produces": {"wood": 1}, "Time": 1}
    }
  },
  "timeLimit": "10s"
}`

// stoppedClock keeps search budgets from expiring so that only the handler
// timeout ends a search.
func stoppedClock() HandlerOption {
	return WithClock(testingclock.NewFakePassiveClock(time.Now()))
}

func TestHandlePlan_HandlerTimeout(t *testing.T) {
	h := NewHandler(WithHandlerTimeout(100*time.Millisecond), stoppedClock())

	start := time.Now()
	rec := postPlan(t, h, "application/json", endlessRequest)
	require.Equal(t, http.StatusGatewayTimeout, rec.Code, rec.Body.String())
	assert.Less(t, time.Since(start), 5*time.Second)

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.ErrCodeTimeout), resp.Code)
	assert.True(t, resp.Retryable)
	assert.Equal(t, "100ms", resp.Details["timeout"])
	assert.Equal(t, 0, h.CacheLen())
}

func searchesRun(t *testing.T) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	var total float64
	for _, mf := range families {
		if mf.GetName() != "craftplan_searches_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func TestHandlePlan_SharesIdenticalRequests(t *testing.T) {
	h := NewHandler(WithHandlerTimeout(500*time.Millisecond), stoppedClock())
	before := searchesRun(t)

	const callers = 2
	var (
		wg    sync.WaitGroup
		ready sync.WaitGroup
		codes [callers]int
	)
	ready.Add(callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ready.Done()
			ready.Wait()
			codes[i] = postPlan(t, h, "application/json", endlessRequest).Code
		}()
	}
	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusGatewayTimeout, code, "caller %d", i)
	}
	assert.InDelta(t, 1.0, searchesRun(t)-before, 0)
}

func TestNewHandler_MaxTimeLimitFitsHandlerTimeout(t *testing.T) {
	tests := []struct {
		name    string
		opts    []HandlerOption
		wantMax time.Duration
	}{
		{"defaults", nil, defaults.MaxSearchTimeLimit},
		{"limit above default timeout", []HandlerOption{WithMaxTimeLimit(2 * time.Minute)},
			defaults.PlanHandlerTimeout - defaults.PlanHandlerGrace},
		{"limit below timeout", []HandlerOption{WithMaxTimeLimit(10 * time.Second), WithHandlerTimeout(time.Minute)},
			10 * time.Second},
		{"short timeout", []HandlerOption{WithHandlerTimeout(time.Second)}, 500 * time.Millisecond},
		{"limit equal to timeout", []HandlerOption{WithMaxTimeLimit(30 * time.Second), WithHandlerTimeout(30 * time.Second)},
			30*time.Second - defaults.PlanHandlerGrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.opts...)
			assert.Equal(t, tt.wantMax, h.maxTimeLimit)
			assert.Less(t, h.maxTimeLimit, h.handlerTimeout)
		})
	}
}

func TestPlanRequest_ConfigCapsTimeLimit(t *testing.T) {
	req := &PlanRequest{TimeLimit: "10m"}
	cfg, err := req.config(30*time.Second, "")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.TimeLimit)

	req = &PlanRequest{}
	cfg, err = req.config(defaults.MaxSearchTimeLimit, "")
	require.NoError(t, err)
	assert.Equal(t, defaults.SearchTimeLimit, cfg.TimeLimit)
}

func TestCacheKey_IgnoresMapOrder(t *testing.T) {
	a := `{"domain": {"Initial": {"wood": 1, "stone": 2}, "Goal": {"plank": 1}, "Recipes": {}}}`
	b := `{"domain": {"Goal": {"plank": 1}, "Initial": {"stone": 2, "wood": 1}, "Recipes": {}}}`

	var ra, rb PlanRequest
	require.NoError(t, json.Unmarshal([]byte(a), &ra))
	require.NoError(t, json.Unmarshal([]byte(b), &rb))

	ka, err := cacheKey(&ra)
	require.NoError(t, err)
	kb, err := cacheKey(&rb)
	require.NoError(t, err)
	assert.Equal(t, ka, kb)
}
