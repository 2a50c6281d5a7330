package main

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	require.NoError(t, err, "failed to create pipe")

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err, "failed to read output")

	return buf.String(), fnErr
}

// setGlobalFlags sets the persistent flags for one test and restores them afterwards.
func setGlobalFlags(t *testing.T, asJSON bool, be string) {
	t.Helper()

	prevJSON, prevBackend, prevQuiet, prevVerbose := jsonOut, backend, quiet, verbose
	jsonOut, backend, quiet, verbose = asJSON, be, false, false

	t.Cleanup(func() {
		jsonOut, backend, quiet, verbose = prevJSON, prevBackend, prevQuiet, prevVerbose
	})
}

// decodeJSON unmarshals command output into v.
func decodeJSON(t *testing.T, output string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(output), v), "output is not valid JSON:\n%s", output)
}
