package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FormatArgs joins args with single spaces into a log message.
//
// Strings are written verbatim and errors as their Error text. Every other
// value is encoded as compact JSON without HTML escaping, so
// FormatArgs("count:", 42, map[string]string{"key": "value"}) yields
// `count: 42 {"key":"value"}`. A value that cannot be encoded, such as a
// channel or a cyclic structure, is rendered as "[unserializable <type>]".
func FormatArgs(args ...any) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = formatArg(arg)
	}
	return strings.Join(parts, " ")
}

func formatArg(arg any) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = unserializable(arg)
		}
	}()

	switch v := arg.(type) {
	case string:
		return v
	case error:
		return v.Error()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(arg); err != nil {
		return unserializable(arg)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func unserializable(arg any) string {
	return fmt.Sprintf("[unserializable %T]", arg)
}
