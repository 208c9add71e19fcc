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
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
	"k8s.io/utils/clock"

	"github.com/craftplan/craftplan/pkg/defaults"
	"github.com/craftplan/craftplan/pkg/domain"
	"github.com/craftplan/craftplan/pkg/errors"
	"github.com/craftplan/craftplan/pkg/search"
	"github.com/craftplan/craftplan/pkg/serializer"
	"github.com/craftplan/craftplan/pkg/server"
)

// PlanRequest is the body of POST /v1/plan.
type PlanRequest struct {
	Domain    domain.Definition `json:"domain" yaml:"domain"`
	TimeLimit string            `json:"timeLimit,omitempty" yaml:"timeLimit,omitempty"`
	Heuristic string            `json:"heuristic,omitempty" yaml:"heuristic,omitempty"`
	Prune     []string          `json:"prune,omitempty" yaml:"prune,omitempty"`
	Weight    float64           `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// config resolves the request into a search configuration. Requested limits
// above limit are lowered to limit.
func (p *PlanRequest) config(limit time.Duration, version string) (Config, error) {
	cfg := Config{
		Version:   version,
		TimeLimit: defaults.SearchTimeLimit,
		Heuristic: p.Heuristic,
		Prune:     p.Prune,
		Weight:    p.Weight,
	}
	if p.TimeLimit != "" {
		d, err := time.ParseDuration(p.TimeLimit)
		if err != nil {
			return cfg, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"invalid timeLimit", err, map[string]any{"timeLimit": p.TimeLimit})
		}
		if d <= 0 {
			return cfg, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"timeLimit must be positive", map[string]any{"timeLimit": p.TimeLimit})
		}
		cfg.TimeLimit = d
	}
	if cfg.TimeLimit > limit {
		slog.Debug("capping requested time limit", "requested", cfg.TimeLimit, "max", limit)
		cfg.TimeLimit = limit
	}
	return cfg, cfg.Validate()
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCacheTTL sets how long found plans are served from cache. Zero disables
// caching.
func WithCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.cacheTTL = ttl
	}
}

// WithVersion sets the version stamped into report headers.
func WithVersion(version string) HandlerOption {
	return func(h *Handler) {
		h.version = version
	}
}

// WithMaxTimeLimit caps the search budget a client may request. NewHandler
// lowers the cap so that it ends before the handler timeout.
func WithMaxTimeLimit(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.maxTimeLimit = d
		}
	}
}

// WithHandlerTimeout bounds the time spent on one plan request, including
// the search. A request still searching when it expires gets a TIMEOUT error.
func WithHandlerTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.handlerTimeout = d
		}
	}
}

// WithClock sets the clock that measures search budgets.
func WithClock(c clock.PassiveClock) HandlerOption {
	return func(h *Handler) {
		h.clock = c
	}
}

// Handler serves planning requests over HTTP.
type Handler struct {
	cacheTTL       time.Duration
	maxTimeLimit   time.Duration
	handlerTimeout time.Duration
	version        string
	clock          clock.PassiveClock
	cache          *cache.Cache
	group          singleflight.Group
}

// NewHandler returns a Handler with a plan cache.
func NewHandler(opts ...HandlerOption) *Handler {
	h := &Handler{
		cacheTTL:       defaults.PlanCacheTTL,
		maxTimeLimit:   defaults.MaxSearchTimeLimit,
		handlerTimeout: defaults.PlanHandlerTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	if limit := searchLimitWithin(h.handlerTimeout); h.maxTimeLimit > limit {
		slog.Warn("lowering max time limit below the handler timeout",
			"requested", h.maxTimeLimit,
			"max", limit,
			"handlerTimeout", h.handlerTimeout)
		h.maxTimeLimit = limit
	}
	h.cache = cache.New(h.cacheTTL, defaults.PlanCacheCleanupInterval)
	return h
}

// searchLimitWithin returns the longest search that leaves a handler with the
// given timeout time to answer: defaults.PlanHandlerGrace, or half the
// timeout when the timeout is shorter than twice the grace.
func searchLimitWithin(timeout time.Duration) time.Duration {
	if timeout < 2*defaults.PlanHandlerGrace {
		return timeout / 2
	}
	return timeout - defaults.PlanHandlerGrace
}

// HandlePlan accepts a JSON or YAML PlanRequest and responds with a Report.
// A search that ends without a plan is still a 200; only invalid input,
// handler timeouts, and internal failures produce error bodies.
func (h *Handler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodPost},
			})
		return
	}

	req, err := decodePlanRequest(w, r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid plan request", nil)
		return
	}

	cfg, err := req.config(h.maxTimeLimit, h.version)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid plan request", nil)
		return
	}
	req.TimeLimit = cfg.TimeLimit.String()
	cfg.Clock = h.clock

	key, err := cacheKey(req)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to hash plan request", nil)
		return
	}

	if cached, ok := h.cache.Get(key); ok {
		planCacheLookups.WithLabelValues("hit").Inc()
		w.Header().Set("X-Cache", "HIT")
		serializer.RespondJSON(w, http.StatusOK, cached)
		return
	}
	planCacheLookups.WithLabelValues("miss").Inc()

	v, err, shared := h.group.Do(key, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), h.handlerTimeout)
		defer cancel()
		return h.plan(ctx, key, &req.Domain, cfg)
	})
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to plan", nil)
		return
	}

	slog.Debug("plan request served",
		"requestID", server.RequestIDFromContext(r),
		"shared", shared)

	w.Header().Set("X-Cache", "MISS")
	serializer.RespondJSON(w, http.StatusOK, v)
}

func (h *Handler) plan(ctx context.Context, key string, def *domain.Definition, cfg Config) (*Report, error) {
	report, err := Run(ctx, def, cfg)
	if err != nil {
		return nil, err
	}
	if report.Outcome == search.OutcomeCanceled && stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, errors.NewWithContext(errors.ErrCodeTimeout, "plan request timed out",
			map[string]any{"timeout": h.handlerTimeout.String()})
	}
	if report.Found && h.cacheTTL > 0 {
		h.cache.SetDefault(key, report)
	}
	return report, nil
}

func decodePlanRequest(w http.ResponseWriter, r *http.Request) (*PlanRequest, error) {
	defer r.Body.Close()

	format := serializer.FormatJSON
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		format = serializer.FormatYAML
	}

	body := &limitedBody{ReadCloser: http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)}
	reader, err := serializer.NewReader(format, body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "unsupported request format", err)
	}

	var req PlanRequest
	if err := reader.Deserialize(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(body.err, &tooLarge) || stderrors.As(err, &tooLarge) {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "request body too large",
				map[string]any{"limit": tooLarge.Limit})
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode plan request", err)
	}
	return &req, nil
}

// limitedBody keeps the first read error. The YAML decoder reports read
// errors as text, which drops *http.MaxBytesError from the chain.
type limitedBody struct {
	io.ReadCloser
	err error
}

func (b *limitedBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	if err != nil && err != io.EOF && b.err == nil {
		b.err = err
	}
	return n, err
}

// cacheKey hashes the resolved request. encoding/json sorts map keys, so
// equal requests hash equally.
func cacheKey(req *PlanRequest) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, "failed to encode plan request", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// CacheLen returns the number of cached plans.
func (h *Handler) CacheLen() int {
	return h.cache.ItemCount()
}
