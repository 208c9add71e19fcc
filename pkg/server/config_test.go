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
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/craftplan/craftplan/pkg/defaults"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "")
	t.Setenv("RATE_LIMIT_RPS", "")

	cfg := NewConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.ShutdownTimeout != defaults.ServerShutdownTimeout {
		t.Errorf("expected shutdown timeout %v, got %v", defaults.ServerShutdownTimeout, cfg.ShutdownTimeout)
	}
	if cfg.WriteTimeout <= defaults.PlanHandlerTimeout {
		t.Errorf("write timeout %v must exceed handler timeout %v", cfg.WriteTimeout, defaults.PlanHandlerTimeout)
	}
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "7")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg := NewConfig()
	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.ShutdownTimeout != 7*time.Second {
		t.Errorf("expected 7s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.RateLimit != rate.Limit(2.5) {
		t.Errorf("expected rate limit 2.5, got %v", cfg.RateLimit)
	}
}

func TestNewConfig_IgnoresInvalidEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "-3")

	cfg := NewConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
	if cfg.ShutdownTimeout != defaults.ServerShutdownTimeout {
		t.Errorf("expected default shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
}
