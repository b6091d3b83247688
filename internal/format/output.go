// Package format renders command results to stdout in a machine (json) or
// human (text) shape.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Write renders v in the requested format ("json" or "text").
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "text":
		return writeText(w, v)
	default:
		return fmt.Errorf("unknown format %q (want json or text)", format)
	}
}

func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// writeText prints maps as sorted "key: value" lines with nested maps and
// slices indented. Anything else is printed with %v.
func writeText(w io.Writer, v any) error {
	return writeTextIndent(w, v, 0)
}

func writeTextIndent(w io.Writer, v any, depth int) error {
	pad := strings.Repeat("  ", depth)
	switch typed := normalize(v).(type) {
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for k := range typed {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			val := typed[k]
			if isComposite(val) {
				if _, err := fmt.Fprintf(w, "%s%s:\n", pad, k); err != nil {
					return err
				}
				if err := writeTextIndent(w, val, depth+1); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "%s%s: %v\n", pad, k, val); err != nil {
				return err
			}
		}
		return nil
	case []any:
		for _, item := range typed {
			if isComposite(item) {
				if _, err := fmt.Fprintf(w, "%s-\n", pad); err != nil {
					return err
				}
				if err := writeTextIndent(w, item, depth+1); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "%s- %v\n", pad, item); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintf(w, "%s%v\n", pad, typed)
		return err
	}
}

// normalize routes structs and typed slices through JSON so text mode sees
// the same field names and shapes json mode would emit.
func normalize(v any) any {
	switch v.(type) {
	case map[string]any, []any, string, bool, nil,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v
	}
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return v
	}
	return out
}

func isComposite(v any) bool {
	switch normalize(v).(type) {
	case map[string]any, []any:
		return true
	}
	return false
}
