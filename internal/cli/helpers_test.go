package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
)

// runCmd executes the root command with an isolated registry and returns the
// captured stdout/stderr.
func runCmd(t *testing.T, registry string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--registry", registry}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func testRegistry(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "protected.json")
}

// decodeEnvelope parses the last JSON object a command printed.
func decodeEnvelope(t *testing.T, out string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader([]byte(out)))
	var last map[string]any
	for {
		var v map[string]any
		if err := dec.Decode(&v); err != nil {
			break
		}
		last = v
	}
	if last == nil {
		t.Fatalf("no JSON envelope in output: %q", out)
	}
	return last
}

func dataMap(t *testing.T, env map[string]any) map[string]any {
	t.Helper()
	data, ok := env["data"].(map[string]any)
	if !ok {
		t.Fatalf("envelope data is %#v", env["data"])
	}
	return data
}
