// Package pagination turns page numbers and page sizes into offset/limit
// requests for the calls API.
//
// This package contains the pagination logic shared by the interactive calls
// list and the non-interactive CLI, including:
//   - BuildRequest: derive a PageRequest from a 1-based page and a page size
//   - ParsePage: read the "page" location parameter, defaulting to page 1
//   - PaginationParams: CLI flag parsing and validation
//   - PaginationMeta: summary shown next to a page of results
//
// Page numbers come from the caller's location and are never stored here.
package pagination
