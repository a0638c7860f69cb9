// Package fetch classifies the lifecycle of a page fetch into render states.
//
// A fetch Outcome (in flight, failed, completed with or without payload) is
// resolved into exactly one State with a strict priority: Pending, then
// Failed, then NotFound, then Ready. A failed fetch always wins over stale
// data so an error is never rendered next to old records.
//
// Generation tags requests so that a response arriving after a newer request
// was issued can be recognised and dropped.
package fetch
