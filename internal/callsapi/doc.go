// Package callsapi fetches call pages and single calls.
//
// Source is the seam the TUI and CLI depend on. Three implementations exist:
//   - Client talks GraphQL over HTTP (paginatedCalls, call, login)
//   - FixtureSource serves calls from a YAML file, for offline use and tests
//   - CachedSource decorates another Source with the tiered page cache and
//     collapses concurrent identical requests into one upstream call
//
// A page query that completes with a null payload returns (nil, nil); callers
// treat that as "not found", distinct from an empty page.
package callsapi
