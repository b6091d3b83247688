package cli

import (
	"encoding/binary"
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T) string {
	t.Helper()
	out := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	appendChunk := func(dst []byte, typ string, data []byte) []byte {
		dst = binary.BigEndian.AppendUint32(dst, uint32(len(data)))
		dst = append(dst, typ...)
		dst = append(dst, data...)
		return binary.BigEndian.AppendUint32(dst, crc32.ChecksumIEEE(append([]byte(typ), data...)))
	}
	out = appendChunk(out, "IHDR", make([]byte, 13))
	out = appendChunk(out, "IEND", nil)

	path := filepath.Join(t.TempDir(), "img.png")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatalf("write png: %v", err)
	}
	return path
}

func TestStego_HideRevealRoundTrip(t *testing.T) {
	reg := testRegistry(t)
	in := writeTestPNG(t)
	out := filepath.Join(t.TempDir(), "hidden.png")

	got, err := runCmd(t, reg, "stego", "hide", in, out, "--key", "secret", "--message", "meet at noon")
	if err != nil {
		t.Fatalf("hide: %v\n%s", err, got)
	}
	data := dataMap(t, decodeEnvelope(t, got))
	if data["keyword"] != "secret" {
		t.Fatalf("keyword = %v", data["keyword"])
	}

	got, err = runCmd(t, reg, "stego", "reveal", out)
	if err != nil {
		t.Fatalf("reveal: %v\n%s", err, got)
	}
	env := decodeEnvelope(t, got)
	msgs, _ := env["data"].([]any)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %v", env["data"])
	}
	msg, _ := msgs[0].(map[string]any)
	if msg["keyword"] != "secret" || msg["text"] != "meet at noon" {
		t.Fatalf("message = %v", msg)
	}
}

func TestStego_RevealEmpty(t *testing.T) {
	reg := testRegistry(t)
	in := writeTestPNG(t)

	got, err := runCmd(t, reg, "stego", "reveal", in)
	if err != nil {
		t.Fatalf("reveal: %v\n%s", err, got)
	}
	env := decodeEnvelope(t, got)
	msgs, ok := env["data"].([]any)
	if !ok || len(msgs) != 0 {
		t.Fatalf("expected empty message list, got %v", env["data"])
	}
	meta, _ := env["meta"].(map[string]any)
	if meta == nil || meta["count"] != float64(0) {
		t.Fatalf("expected count=0 meta, got %v", env["meta"])
	}
}

func TestStego_HideRejectsNonPNG(t *testing.T) {
	reg := testRegistry(t)
	in := filepath.Join(t.TempDir(), "not.png")
	if err := os.WriteFile(in, []byte("GIF89a"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := filepath.Join(t.TempDir(), "out.png")

	got, err := runCmd(t, reg, "stego", "hide", in, out, "--key", "k", "--message", "m")
	if err == nil {
		t.Fatalf("expected error for non-PNG input")
	}
	env := decodeEnvelope(t, got)
	errMap, _ := env["error"].(map[string]any)
	if errMap == nil || errMap["code"] != "hide_failed" {
		t.Fatalf("unexpected envelope: %v", env)
	}
}

func TestStego_HideMissingFlagsOffTerminal(t *testing.T) {
	reg := testRegistry(t)
	in := writeTestPNG(t)
	out := filepath.Join(t.TempDir(), "out.png")

	got, err := runCmd(t, reg, "stego", "hide", in, out)
	if err == nil {
		t.Fatalf("expected error without --key/--message off a terminal")
	}
	env := decodeEnvelope(t, got)
	errMap, _ := env["error"].(map[string]any)
	if errMap == nil || errMap["code"] != "invalid_message" {
		t.Fatalf("unexpected envelope: %v", env)
	}
}
