package callsapi

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/callhistory/internal/calls"
	"github.com/rshade/callhistory/internal/config"
	"github.com/rshade/callhistory/internal/logging"
	"github.com/rshade/callhistory/internal/pagination"
)

const fixtureYAML = `calls:
  - id: "1"
    direction: inbound
    call_type: missed
    from: "+33 6 00 00 00 01"
    to: "+33 1 00 00 00 00"
    duration: 0
    created_at: "2024-03-05T14:07:00Z"
  - id: "2"
    direction: outbound
    call_type: answered
    from: "+33 1 00 00 00 00"
    to: "+33 6 00 00 00 02"
    duration: 125000
    created_at: "2024-03-05T15:00:00Z"
    notes:
      - id: n1
        content: follow up
  - id: "3"
    direction: inbound
    call_type: voicemail
    from: "+33 6 00 00 00 03"
    duration: 30000
    created_at: "2024-03-06T09:30:00Z"
`

func writeFixtures(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calls.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureYAML), 0o600))
	return path
}

func TestFixtureSource_Pages(t *testing.T) {
	src, err := LoadFixtures(writeFixtures(t))
	require.NoError(t, err)
	require.Equal(t, 3, src.Len())
	ctx := context.Background()

	page, err := src.PaginatedCalls(ctx, pagination.BuildRequest(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount)
	assert.True(t, page.HasNextPage)
	require.Len(t, page.Nodes, 2)
	assert.Equal(t, "1", page.Nodes[0].ID)
	assert.Equal(t, []calls.Note{{ID: "n1", Content: "follow up"}}, page.Nodes[1].Notes)

	page, err = src.PaginatedCalls(ctx, pagination.BuildRequest(2, 2))
	require.NoError(t, err)
	assert.False(t, page.HasNextPage)
	require.Len(t, page.Nodes, 1)
	assert.Equal(t, "3", page.Nodes[0].ID)

	page, err = src.PaginatedCalls(ctx, pagination.BuildRequest(9, 2))
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount)
	assert.Empty(t, page.Nodes)
}

func TestFixtureSource_Call(t *testing.T) {
	src := NewFixtureSource([]calls.CallRecord{{ID: "a"}, {ID: "b"}})

	record, err := src.Call(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, "b", record.ID)

	_, err = src.Call(context.Background(), "z")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoadFixtures_Errors(t *testing.T) {
	_, err := LoadFixtures(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("calls: {"), 0o600))
	_, err = LoadFixtures(bad)
	require.Error(t, err)
}

func TestNewSource(t *testing.T) {
	t.Run("fixtures", func(t *testing.T) {
		cfg := config.Default()
		cfg.Fixtures.File = writeFixtures(t)

		src, err := NewSource(cfg, zerolog.Nop())
		require.NoError(t, err)
		assert.IsType(t, &FixtureSource{}, src)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		_, err := NewSource(config.Default(), zerolog.Nop())
		require.ErrorIs(t, err, ErrMissingEndpoint)
	})

	t.Run("cached client", func(t *testing.T) {
		cfg := config.Default()
		cfg.API.URL = "https://calls.example.com/graphql"
		cfg.Cache.Directory = t.TempDir()

		src, err := NewSource(cfg, zerolog.Nop())
		require.NoError(t, err)
		assert.IsType(t, &CachedSource{}, src)
	})

	t.Run("cache disabled", func(t *testing.T) {
		cfg := config.Default()
		cfg.API.URL = "https://calls.example.com/graphql"
		cfg.Cache.Enabled = false

		src, err := NewSource(cfg, zerolog.Nop())
		require.NoError(t, err)
		assert.IsType(t, &Client{}, src)
	})
}

func TestNewSource_LogFieldsNotRepeated(t *testing.T) {
	server := newGraphQLServer(t, func(*testing.T, graphqlRequest, *http.Request) (int, string) {
		return http.StatusOK, `{"data":{"paginatedCalls":{"totalCount":0,"hasNextPage":false,"nodes":[]}}}`
	})

	var buf bytes.Buffer
	ctx := logging.WithTrace(context.Background(), zerolog.New(&buf).Level(zerolog.DebugLevel))

	cfg := config.Default()
	cfg.API.URL = server.URL
	cfg.Cache.Directory = t.TempDir()
	src, err := NewSource(cfg, *logging.FromContext(ctx))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = src.PaginatedCalls(ctx, pagination.BuildRequest(1, 25))
		require.NoError(t, err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Equal(t, 1, strings.Count(line, `"component"`), line)
		assert.Equal(t, 1, strings.Count(line, `"trace_id"`), line)
	}
}
