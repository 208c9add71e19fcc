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

// Package header provides the common header embedded in craftplan documents.
//
// Plan reports and domain summaries carry a Kind, an APIVersion, and a small
// metadata map so that saved output identifies itself:
//
//	kind: PlanReport
//	apiVersion: craftplan.dev/v1alpha1
//	metadata:
//	  timestamp: "2026-01-02T15:04:05Z"
//	  version: v0.3.0
//
// Embed the header inline:
//
//	type Report struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Found bool    `json:"found" yaml:"found"`
//	}
//
//	r := Report{Header: header.New(header.KindPlanReport, version)}
package header
