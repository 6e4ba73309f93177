package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/couchcryptid/imma-etl/internal/domain"
	"github.com/couchcryptid/imma-etl/internal/imma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePath = "../../internal/pipeline/testdata/observations.imma"

// runCmd executes the root command with args and stdin, returning stdout and stderr.
func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func fixtureLines(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(fixturePath)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

func TestDecodeCmd(t *testing.T) {
	lines := fixtureLines(t)

	stdout, _, err := runCmd(t, strings.Join(lines[:3], "\n")+"\n", "decode")
	require.NoError(t, err)

	got := nonEmptyLines(stdout)
	require.Len(t, got, 3)
	assert.Contains(t, got[0], `"attachments":[0,1,99]`)
	assert.Contains(t, got[2], `"attachments":[0]`)

	var rec imma.Record
	require.NoError(t, json.Unmarshal([]byte(got[0]), &rec))
	assert.Equal(t, imma.TextValue("WDC6920  "), rec.Get("ID"))
}

func TestDecodeCmd_SkipsBadRecords(t *testing.T) {
	stdout, stderr, err := runCmd(t, "", "decode", fixturePath)
	require.NoError(t, err)
	assert.Len(t, nonEmptyLines(stdout), 4)
	assert.Contains(t, stderr, "skipping record")
}

func TestDecodeCmd_Strict(t *testing.T) {
	_, _, err := runCmd(t, "", "decode", "--strict", fixturePath)
	require.ErrorIs(t, err, imma.ErrBadFormat)
	assert.Contains(t, err.Error(), "line 5")
}

func TestEncodeCmd_RoundTrip(t *testing.T) {
	lines := fixtureLines(t)[:3]

	decoded, _, err := runCmd(t, strings.Join(lines, "\n")+"\n", "decode")
	require.NoError(t, err)

	encoded, _, err := runCmd(t, decoded, "encode")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(lines, "\n")+"\n", encoded)
}

func TestEncodeCmd_BadJSON(t *testing.T) {
	input := `{"attachments":[0],"values":{"YR":2004}}` + "\n" +
		"not json\n" +
		`{"attachments":[0,77],"values":{}}` + "\n"

	stdout, stderr, err := runCmd(t, input, "encode")
	require.NoError(t, err)
	assert.Equal(t, "2004\n", stdout)
	assert.Equal(t, 2, strings.Count(stderr, "skipping record"))

	_, _, err = runCmd(t, input, "encode", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestEncodeCmd_OverlongValueIsSkipped(t *testing.T) {
	input := `{"attachments":[0],"values":{"YR":2004,"ID":"ABCDEFGHIJKL"}}` + "\n" +
		`{"attachments":[0,99,1],"values":{"YR":2005,"DCK":926}}` + "\n" +
		`{"attachments":[0],"values":{"YR":2006}}` + "\n"

	stdout, stderr, err := runCmd(t, input, "encode")
	require.NoError(t, err)
	assert.Equal(t, "2006\n", stdout)
	assert.Equal(t, 2, strings.Count(stderr, "skipping record"))
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestEncodeCmd_OutputFailureIsReturned(t *testing.T) {
	diskFull := errors.New("disk full")

	var stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(`{"attachments":[0],"values":{"YR":2004}}` + "\n"))
	cmd.SetOut(failingWriter{err: diskFull})
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"encode"})

	err := cmd.Execute()
	require.ErrorIs(t, err, diskFull)
	assert.Contains(t, err.Error(), "line 1")
	assert.NotContains(t, stderr.String(), "skipping record")
}

func TestCheckCmd(t *testing.T) {
	stdout, _, err := runCmd(t, "", "check", fixturePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 failed, 1 non-canonical")

	assert.Contains(t, stdout, "records:       5\n")
	assert.Contains(t, stdout, "canonical:     3\n")
	assert.Contains(t, stdout, "non-canonical: 1\n")
	assert.Contains(t, stdout, "failed:        1\n")
	assert.Contains(t, stdout, "line 4: non-canonical at column 5")
	assert.Contains(t, stdout, "line 5:")
}

func TestCheckCmd_NonCanonicalOnlyFailsWhenStrict(t *testing.T) {
	lines := fixtureLines(t)
	input := strings.Join([]string{lines[0], lines[3]}, "\n") + "\n"

	_, _, err := runCmd(t, input, "check")
	require.NoError(t, err)

	_, _, err = runCmd(t, input, "check", "--strict")
	require.Error(t, err)
}

func TestObserveCmd(t *testing.T) {
	t.Cleanup(func() { domain.SetClock(nil) })
	lines := fixtureLines(t)

	stdout, _, err := runCmd(t, lines[0]+"\n", "observe", "--processed-at", "2026-03-01T00:00:00Z")
	require.NoError(t, err)

	got := nonEmptyLines(stdout)
	require.Len(t, got, 1)

	var obs domain.Observation
	require.NoError(t, json.Unmarshal([]byte(got[0]), &obs))
	assert.Equal(t, "WDC6920", obs.PlatformID)
	assert.Equal(t, "2026-03-01T00:00:00Z", obs.ProcessedAt.Format("2006-01-02T15:04:05Z07:00"))
	assert.Equal(t, "1998-07-14T18:00:00Z", obs.ObservedAt.Format("2006-01-02T15:04:05Z07:00"))
	assert.True(t, obs.Canonical)
	require.NotNil(t, obs.Source)
	assert.Equal(t, 926, obs.Source.Deck)
}

func TestObserveCmd_InvalidProcessedAt(t *testing.T) {
	_, _, err := runCmd(t, "", "observe", "--processed-at", "yesterday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--processed-at")
}

func TestOutputFlag(t *testing.T) {
	out := filepath.Join(t.TempDir(), "records.jsonl")
	lines := fixtureLines(t)

	stdout, _, err := runCmd(t, lines[2]+"\n", "decode", "-o", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ID":"BATAVIA  "`)
}

func TestOpenInput_MissingFile(t *testing.T) {
	_, _, err := runCmd(t, "", "decode", filepath.Join(t.TempDir(), "missing.imma"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open input file")
}
