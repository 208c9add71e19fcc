// Package defaults provides centralized configuration constants for craftplan.
//
// # Categories
//
//   - Search limits: time budget of a single search and progress logging cadence
//   - Handler timeouts: plan request processing and plan caching
//   - Server timeouts: HTTP server configuration
//   - HTTP client timeouts: fetching remote domain files
//
// # Usage
//
//	res := search.Search(ctx, book, start, checker, heuristic.Zero,
//	    search.WithTimeLimit(defaults.SearchTimeLimit))
//
// # Guidelines
//
//   - The plan handler timeout must exceed the largest time limit a client may request
//   - The server write timeout must exceed the plan handler timeout
package defaults
