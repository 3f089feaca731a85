// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairwise/config"
	"github.com/katalvlaran/pairwise/oracle"
	"github.com/katalvlaran/pairwise/prefmatrix"
)

// threeAlts replaces the bundled data with three alternatives and no
// cross-scale tables.
const threeAlts = `
data:
  alternatives: ["1211", "2111", "1121"]
  seed: []
  valuation: []
  criteria: []
`

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), ".env")}, args...))
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pairwise.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestPrompt_InvalidChoice(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "x\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter 'R' to run the program or 'T' to run tests: ")
	assert.Contains(t, out, "Invalid choice. Please enter 'R' or 'T'.")
}

func TestPrompt_EmptyInput(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid choice.")
}

func TestPrompt_SelfTest(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "T\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Running tests...")
	assert.Contains(t, out, "Values of passed tests: 4\nAll tests passed - 100%\n")
}

func TestPrompt_RunBundledData(t *testing.T) {
	t.Parallel()

	// Every answer says the row alternative is better; surplus lines are unread.
	out, _, err := execute(t, "R\n"+strings.Repeat("1\n", 66))
	require.NoError(t, err)

	assert.Contains(t, out, "A set of alternatives to the first reference situation:\n2111\t3111")
	assert.Contains(t, out, "Comparing 2111 and 1211:")
	assert.Contains(t, out, "Matrix updated:")
	assert.Contains(t, out, "Initial matrix:")
	assert.Contains(t, out, "Final matrix:")
	assert.Contains(t, out, "Sorted set of alternatives to the first reference situation:")
	assert.Contains(t, out, "Vector valuation (initial):\n4 1 2 3\n")
	assert.Contains(t, out, "The best alternative:\n1 2 7 8\n")
}

func TestTestCommand(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "test")
	require.NoError(t, err)
	assert.Contains(t, out, "All tests passed - 100%")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "pairwise dev\n", out)
}

func TestRun_ReplayAndRecord(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	judgments := filepath.Join(dir, "in.yaml")
	require.NoError(t, config.SaveJudgments(judgments, "", []oracle.Judgment{
		{A: "1211", B: "2111", Relation: prefmatrix.Worse},
		{A: "1211", B: "1121", Relation: prefmatrix.Worse},
		{A: "2111", B: "1121", Relation: prefmatrix.Worse},
	}))
	record := filepath.Join(dir, "out", "rec.yaml")

	out, logs, err := execute(t, "",
		"--config", writeConfig(t, threeAlts), "--log-level", "info", "--log-format", "json",
		"run", "--judgments", judgments, "--record", record, "--format", "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, " 1211 |")
	assert.NotContains(t, out, "Vector valuation")
	assert.Contains(t, logs, `"message":"replaying judgments"`)
	assert.Contains(t, logs, `"session":"`)

	got, err := config.LoadJudgments(record)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, oracle.Judgment{A: "1211", B: "2111", Relation: prefmatrix.Worse}, got[0])
	assert.LessOrEqual(t, len(got), 3)
}

func TestRun_InputEndsEarly(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "1\n", "--config", writeConfig(t, threeAlts), "run")
	require.Error(t, err)
	assert.ErrorIs(t, err, oracle.ErrNeedInput)
}

func TestRun_BadFlags(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "--config", writeConfig(t, threeAlts), "run", "--format", "html")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = execute(t, "", "--log-level", "loud", "test")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRun_CrossScaleMissesDoNotAbort(t *testing.T) {
	t.Parallel()

	// 1111 is the first level of every criterion; without it no valuation row
	// maps completely onto the scale.
	cfg := writeConfig(t, `
data:
  scale: ["1121", "2111", "1211", "1112", "3111", "1113", "4111", "1131", "1311", "1114", "1411", "1141"]
`)
	out, logs, err := execute(t, strings.Repeat("1\n", 66), "--config", cfg, "--log-format", "json", "run")
	require.NoError(t, err)

	assert.Contains(t, out, "Initial by a single ordinal scale:\n")
	assert.Contains(t, out, "Sorted initial by a single ordinal scale:\n")
	assert.Contains(t, out, `warning: criterion "1111" at [0][1] not found in scale`)
	assert.Contains(t, out, "The best alternative:\nnone, every row has a criterion missing from the scale\n")
	assert.Contains(t, logs, `"criterion":"1111"`)
}

func TestRun_BannerHasNoBlankTitle(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "1\n1\n1\n", "--config", writeConfig(t, threeAlts), "run")
	require.NoError(t, err)
	assert.Contains(t, out, "Comparing 1211 and 2111:\n┌")
}
