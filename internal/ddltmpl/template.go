// Package ddltmpl implements "${name}" placeholder substitution for the
// trigger DDL rendered by ST_AddColumn and the SpartialIndex shadow
// triggers: a Lookup resolves one placeholder at a time, Render walks the
// template once, and "\$" escapes a literal dollar sign so it is never
// mistaken for the start of a placeholder.
package ddltmpl

import (
	"strings"

	"github.com/beetlebugorg/geob/geoberr"
)

// Lookup resolves a single ${name} placeholder to its replacement text.
type Lookup interface {
	Replace(name string) (string, bool)
}

// MapLookup is a map-backed Lookup.
type MapLookup map[string]string

func (m MapLookup) Replace(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Render expands every ${name} placeholder in tmpl using lookup.
func Render(tmpl string, lookup Lookup) (string, error) {
	var out strings.Builder
	out.Grow(len(tmpl))

	i := 0
	for i < len(tmpl) {
		switch {
		case strings.HasPrefix(tmpl[i:], `\$`):
			out.WriteByte('$')
			i += 2
		case strings.HasPrefix(tmpl[i:], "${"):
			rest := tmpl[i+2:]
			end := strings.IndexByte(rest, '}')
			if end < 0 {
				return "", geoberr.NewConfigError("unterminated ${ in template at offset %d", i)
			}
			name := strings.TrimSpace(rest[:end])
			val, ok := lookup.Replace(name)
			if !ok {
				return "", geoberr.NewConfigError("template lookup %q not found", name)
			}
			out.WriteString(val)
			i += 2 + end + 1
		default:
			out.WriteByte(tmpl[i])
			i++
		}
	}
	return out.String(), nil
}
