package fetch

import (
	"github.com/rshade/callhistory/internal/calls"
)

// Kind enumerates the render states of a page fetch.
type Kind int

const (
	// KindPending means a fetch is in flight and no result exists for the current request.
	KindPending Kind = iota
	// KindFailed means the fetch terminated with an error.
	KindFailed
	// KindNotFound means the fetch completed without a usable payload.
	KindNotFound
	// KindReady means the fetch completed with a payload (possibly zero nodes).
	KindReady
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPending:
		return "pending"
	case KindFailed:
		return "failed"
	case KindNotFound:
		return "not_found"
	case KindReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Outcome is the raw lifecycle signal of one fetch.
type Outcome struct {
	// Loading is true while the request is in flight.
	Loading bool

	// Err is the error the fetch terminated with, if any.
	Err error

	// Data is the payload. Nil means the response carried no page.
	Data *calls.PageResult
}

// State is the resolved render state.
type State struct {
	Kind Kind

	// Reason is set for KindFailed. It is surfaced, never interpreted.
	Reason error

	// TotalCount and Nodes are set for KindReady.
	TotalCount int
	Nodes      []calls.CallRecord
}

// Resolve classifies an outcome. Priority is Pending > Failed > NotFound > Ready.
func Resolve(o Outcome) State {
	switch {
	case o.Loading:
		return State{Kind: KindPending}
	case o.Err != nil:
		return State{Kind: KindFailed, Reason: o.Err}
	case o.Data == nil:
		return State{Kind: KindNotFound}
	default:
		return State{
			Kind:       KindReady,
			TotalCount: o.Data.TotalCount,
			Nodes:      o.Data.Nodes,
		}
	}
}

// Pending returns an outcome for a freshly issued request.
func Pending() Outcome {
	return Outcome{Loading: true}
}

// Completed returns the outcome of a finished request.
func Completed(data *calls.PageResult, err error) Outcome {
	return Outcome{Data: data, Err: err}
}
