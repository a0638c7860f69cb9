package callsapi

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rshade/callhistory/internal/calls"
	"github.com/rshade/callhistory/internal/pagination"
)

// FixtureFile is the YAML layout read by LoadFixtures.
type FixtureFile struct {
	Calls []calls.CallRecord `yaml:"calls"`
}

// FixtureSource serves a fixed list of calls in file order.
type FixtureSource struct {
	records []calls.CallRecord
}

// NewFixtureSource serves records. The slice is copied.
func NewFixtureSource(records []calls.CallRecord) *FixtureSource {
	out := make([]calls.CallRecord, len(records))
	copy(out, records)
	return &FixtureSource{records: out}
}

// LoadFixtures reads a fixture file.
func LoadFixtures(path string) (*FixtureSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures %s: %w", path, err)
	}
	var file FixtureFile
	if err = yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing fixtures %s: %w", path, err)
	}
	return NewFixtureSource(file.Calls), nil
}

// PaginatedCalls slices the fixture list. Offsets past the end give an empty
// page with the full total count.
func (f *FixtureSource) PaginatedCalls(ctx context.Context, req pagination.PageRequest) (*calls.PageResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := len(f.records)
	start := min(max(req.Offset, 0), total)
	end := total
	if req.Limit > 0 {
		end = min(start+req.Limit, total)
	}

	nodes := make([]calls.CallRecord, end-start)
	copy(nodes, f.records[start:end])
	return &calls.PageResult{
		TotalCount:  total,
		HasNextPage: end < total,
		Nodes:       nodes,
	}, nil
}

// Call returns the fixture with the given ID.
func (f *FixtureSource) Call(ctx context.Context, id string) (*calls.CallRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range f.records {
		if f.records[i].ID == id {
			record := f.records[i]
			return &record, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Len returns the number of fixture calls.
func (f *FixtureSource) Len() int {
	return len(f.records)
}
