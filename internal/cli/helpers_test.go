package cli_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/callhistory/internal/calls"
	"github.com/rshade/callhistory/internal/callsapi"
	"github.com/rshade/callhistory/internal/cli"
	"github.com/rshade/callhistory/internal/config"
)

// setupCLITest isolates the config directory and global config. It returns
// the config directory.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvAPIURL, "")
	t.Setenv(config.EnvToken, "")
	t.Setenv(config.EnvFixtures, "")
	t.Setenv(config.EnvPageSize, "")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// withFixtures writes n generated calls and points CALLHISTORY_FIXTURES at them.
func withFixtures(t *testing.T, n int) {
	t.Helper()
	file := callsapi.FixtureFile{Calls: make([]calls.CallRecord, 0, n)}
	for i := 0; i < n; i++ {
		r := calls.CallRecord{
			ID:        fmt.Sprintf("call-%d", i),
			Direction: calls.DirectionInbound,
			CallType:  calls.CallTypeMissed,
			From:      "+33 6 00 00 00 01",
			To:        "+33 1 00 00 00 00",
			Duration:  125000,
			CreatedAt: "2024-03-05T14:07:00Z",
		}
		if i%3 == 0 {
			r.Direction = calls.DirectionOutbound
			r.CallType = calls.CallTypeAnswered
			r.Notes = []calls.Note{{ID: "n1", Content: "call back on monday"}}
		}
		file.Calls = append(file.Calls, r)
	}

	data, err := yaml.Marshal(file)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "calls.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv(config.EnvFixtures, path)
}

// execute runs the root command with args against a fresh global config.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetGlobalConfigForTest()

	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
