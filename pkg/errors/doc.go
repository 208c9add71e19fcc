// Package errors provides structured error types for better observability
// and programmatic error handling across the planner's edges (domain loading,
// CLI, HTTP service). The search core itself never returns errors.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "failed to load domain",
//	    err,
//	    map[string]any{
//	        "path": path,
//	    },
//	)
//
// CodeOf recovers the code from any wrapped error, and ErrorCode.HTTPStatus
// maps it to the response status used by pkg/server.
package errors
