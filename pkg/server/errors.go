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
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/craftplan/craftplan/pkg/errors"
	"github.com/craftplan/craftplan/pkg/serializer"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes an error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr maps err to a status code through its StructuredError
// code and writes it. The structured message, cause, and context are merged
// into details.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, details map[string]any) {
	code := errors.CodeOf(err)
	message := fallbackMessage

	merged := make(map[string]any, len(details)+2)
	for k, v := range details {
		merged[k] = v
	}

	var se *errors.StructuredError
	if stderrors.As(err, &se) {
		if se.Message != "" {
			message = se.Message
		}
		if se.Cause != nil {
			merged["error"] = se.Cause.Error()
		}
		for k, v := range se.Context {
			merged[k] = v
		}
	} else if err != nil {
		merged["error"] = err.Error()
	}

	retryable := code == errors.ErrCodeTimeout ||
		code == errors.ErrCodeRateLimitExceeded ||
		code == errors.ErrCodeUnavailable

	if len(merged) == 0 {
		merged = nil
	}
	WriteError(w, r, code.HTTPStatus(), code, message, retryable, merged)
}
