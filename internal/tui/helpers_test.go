package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/callhistory/internal/calls"
	"github.com/rshade/callhistory/internal/callsapi"
	"github.com/rshade/callhistory/internal/pagination"
)

type fakeSource struct {
	mu       sync.Mutex
	total    int
	nilPage  bool
	pageErr  error
	callErr  error
	requests []pagination.PageRequest
	callIDs  []string
}

func (f *fakeSource) PaginatedCalls(_ context.Context, req pagination.PageRequest) (*calls.PageResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	if f.nilPage {
		return nil, nil
	}
	nodes := []calls.CallRecord{}
	for i := req.Offset; i < req.Offset+req.Limit && i < f.total; i++ {
		nodes = append(nodes, makeRecord(i))
	}
	return &calls.PageResult{TotalCount: f.total, HasNextPage: req.Offset+req.Limit < f.total, Nodes: nodes}, nil
}

func (f *fakeSource) Call(_ context.Context, id string) (*calls.CallRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callIDs = append(f.callIDs, id)
	if f.callErr != nil {
		return nil, f.callErr
	}
	if id == "missing" {
		return nil, fmt.Errorf("%w: %s", callsapi.ErrNotFound, id)
	}
	r := makeRecord(0)
	r.ID = id
	return &r, nil
}

func (f *fakeSource) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeSource) lastRequest() pagination.PageRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func makeRecord(i int) calls.CallRecord {
	r := calls.CallRecord{
		ID:        fmt.Sprintf("call-%d", i),
		Direction: calls.DirectionInbound,
		CallType:  calls.CallTypeMissed,
		From:      fmt.Sprintf("+33 1 %02d", i%100),
		To:        "+33 9 99",
		Duration:  65000,
		CreatedAt: "2024-03-05T14:07:00Z",
	}
	if i%2 == 1 {
		r.Direction = calls.DirectionOutbound
		r.CallType = calls.CallTypeAnswered
		r.Notes = []calls.Note{{ID: "n1", Content: "x"}, {ID: "n2", Content: "y"}}
	}
	return r
}

// drain runs cmd and any batched commands, returning the produced messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if typed, ok := msg.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
