// Package cache stores fetched call pages so paging back and forth does not
// refetch from the API.
//
// Two tiers are provided:
//   - MemoryStore: a bounded LRU with per-entry expiry, lost on exit
//   - FileStore: JSON files under ~/.callhistory/cache/ surviving restarts
//
// Tiered combines them, reading memory first and promoting disk hits.
// Keys are SHA256 hashes of the request (endpoint, offset, limit or call ID)
// so they are deterministic and filesystem safe.
package cache
