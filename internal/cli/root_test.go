package cli

import (
	"strings"
	"testing"
)

func TestRoot_NoArgsOffTerminalShowsHelp(t *testing.T) {
	out, err := runCmd(t, testRegistry(t))
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	for _, want := range []string{"protect", "obfuscate", "stego", "rm"} {
		if !strings.Contains(out, want) {
			t.Fatalf("help missing %q:\n%s", want, out)
		}
	}
}

func TestRoot_TextFormat(t *testing.T) {
	out, err := runCmd(t, testRegistry(t), "--format", "text", "version")
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	if !strings.Contains(out, "version: dev") {
		t.Fatalf("expected text output, got:\n%s", out)
	}
	if strings.Contains(out, "{") {
		t.Fatalf("text output should not contain JSON:\n%s", out)
	}
}

func TestRoot_UnknownFormatFails(t *testing.T) {
	if _, err := runCmd(t, testRegistry(t), "--format", "yaml", "version"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
