package logport

import (
	"fmt"
	"strconv"
	"strings"
)

// Format substitutes positional {0}, {1}, ... placeholders in template with
// the corresponding args, rendered with fmt's locale-independent defaults.
// Doubled braces escape literals ("{{" -> "{", "}}" -> "}"). A placeholder
// with no matching argument is left verbatim so the mismatch stays visible
// at the call site instead of being swallowed.
func Format(template string, args ...any) string {
	if !strings.ContainsAny(template, "{}") {
		return template
	}
	var b strings.Builder
	b.Grow(len(template) + 16*len(args))
	for i := 0; i < len(template); {
		c := template[i]
		switch {
		case c == '{' && i+1 < len(template) && template[i+1] == '{':
			b.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(template) && template[i+1] == '}':
			b.WriteByte('}')
			i += 2
		case c == '{':
			j := i + 1
			for j < len(template) && template[j] >= '0' && template[j] <= '9' {
				j++
			}
			if j > i+1 && j < len(template) && template[j] == '}' {
				if idx, err := strconv.Atoi(template[i+1 : j]); err == nil && idx < len(args) {
					fmt.Fprint(&b, args[idx])
					i = j + 1
					continue
				}
			}
			b.WriteByte(c)
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}
