// SPDX-License-Identifier: MPL-2.0

package invoker

import (
	"strconv"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// FormatCommand renders argv as a shell command line that can be pasted back
// into bash. Plain words stay unquoted.
func FormatCommand(argv []string) string {
	parts := make([]string, 0, len(argv))
	for _, arg := range argv {
		quoted, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			quoted = strconv.Quote(arg)
		}
		parts = append(parts, quoted)
	}
	return strings.Join(parts, " ")
}
