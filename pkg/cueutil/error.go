// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// FormatError rewrites a CUE error as "<file>: <field path>: <message>", one
// line per violation, for example:
//
//	config.cue: tests.default_timeout: invalid value -1 (out of bound >=0)
//
// Errors that carry no CUE positions are only prefixed with filePath.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	violations := errors.Errors(err)
	if len(violations) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	lines := make([]string, 0, len(violations))
	for _, v := range violations {
		lines = append(lines, describe(v))
	}
	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filePath, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

// describe renders one violation, dropping the field path CUE sometimes
// repeats at the start of its own message.
func describe(e errors.Error) string {
	field := formatPath(errors.Path(e))
	msg := e.Error()
	if field == "" {
		return msg
	}
	if rest, ok := strings.CutPrefix(msg, field); ok {
		msg = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
	}
	return field + ": " + msg
}

// formatPath joins CUE path selectors the way users write config keys:
// struct fields with dots, list elements as [n] (["root_markers", "0"] is
// "root_markers[0]").
func formatPath(path []string) string {
	var sb strings.Builder
	for i, sel := range path {
		switch {
		case i > 0 && isListIndex(sel):
			sb.WriteString("[" + sel + "]")
		case i > 0:
			sb.WriteString("." + sel)
		default:
			sb.WriteString(sel)
		}
	}
	return sb.String()
}

func isListIndex(sel string) bool {
	if sel == "" {
		return false
	}
	for _, c := range sel {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize rejects data larger than maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if size := int64(len(data)); size > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", filename, size, maxSize)
	}
	return nil
}
