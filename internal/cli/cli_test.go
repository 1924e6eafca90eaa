package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(input), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// --- interactive ---

func TestRootInteractive(t *testing.T) {
	cfg := writeFile(t, "cfg.yaml", "console:\n  clear: false\n  color: false\n")
	out, _, err := execute(t, "7 15\n4 10 Left\nFLFLFRFFLF\nn\n", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Final position & direction: 5 7 Right\n")
	assert.False(t, strings.HasPrefix(out, "\033"))
}

func TestRootInteractiveGridFlag(t *testing.T) {
	cfg := writeFile(t, "cfg.yaml", "console:\n  clear: false\n  color: false\n")
	out, _, err := execute(t, "1 1\n0 0 Up\nF\nn\n", "--config", cfg, "--grid")
	require.NoError(t, err)
	assert.Contains(t, out, "^ .\n. .\n")
}

func TestRootBadConfig(t *testing.T) {
	cfg := writeFile(t, "cfg.yaml", "log:\n  level: loud\n")
	_, _, err := execute(t, "", "--config", cfg)
	require.Error(t, err)
}

func TestRootBadLogLevelFlag(t *testing.T) {
	_, _, err := execute(t, "", "--log-level", "verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

// --- run ---

const scenarioOK = "7 15\n4 10 Left\nFLFLFRFFLF\n"

func TestRunText(t *testing.T) {
	p := writeFile(t, "ok.txt", scenarioOK)
	out, _, err := execute(t, "", "run", p)
	require.NoError(t, err)
	assert.Equal(t, "5 7 Right\n", out)
}

func TestRunJSON(t *testing.T) {
	p := writeFile(t, "ok.txt", scenarioOK)
	out, _, err := execute(t, "", "run", "-o", "json", p)
	require.NoError(t, err)

	var got struct {
		RunID    string `json:"run_id"`
		Outcomes []struct {
			Result string `json:"result"`
		} `json:"outcomes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.NotEmpty(t, got.RunID)
	require.Len(t, got.Outcomes, 1)
	assert.Equal(t, "5 7 Right", got.Outcomes[0].Result)
}

func TestRunFailuresReturnErrRunsFailed(t *testing.T) {
	p := writeFile(t, "bad.txt", "5 5\n6 6 Up\nF\n1 1 Up\nF\n")
	out, _, err := execute(t, "", "run", p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRunsFailed))
	assert.Equal(t, "Error: Spider position (6,6) is outside the wall.\n1 2 Up\n", out)
}

func TestRunGrid(t *testing.T) {
	p := writeFile(t, "grid.txt", "2 1\n0 0 Up\nRF\n2 1 Down\nL\n")
	out, _, err := execute(t, "", "run", "--grid", p)
	require.NoError(t, err)
	assert.Equal(t, "1 0 Right\n2 1 Right\n\n. . >\n. > .\n", out)
}

func TestRunMissingFile(t *testing.T) {
	_, _, err := execute(t, "", "run", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRunsFailed))
}

func TestRunUnknownFormat(t *testing.T) {
	p := writeFile(t, "ok.txt", scenarioOK)
	_, _, err := execute(t, "", "run", "-o", "xml", p)
	require.Error(t, err)
}

func TestRunRequiresFile(t *testing.T) {
	_, _, err := execute(t, "", "run")
	require.Error(t, err)
}
