// Package render substitutes "{{ name }}" placeholders in layout text.
//
// Substitution is a single textual pass. Placeholders without a matching
// parameter are left in the output exactly as written, and parameter values are
// inserted verbatim, so a value that itself contains "{{ x }}" is never expanded.
package render

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Params maps placeholder names to values. Values are converted to text with fmt.Sprint.
type Params map[string]any

// With returns a copy of p with each of others merged over it in order.
// p itself is not modified.
func (p Params) With(others ...map[string]any) Params {
	n := len(p)
	for _, o := range others {
		n += len(o)
	}
	r := make(Params, n)
	for k, v := range p {
		r[k] = v
	}
	for _, o := range others {
		for k, v := range o {
			r[k] = v
		}
	}
	return r
}

// Strings returns a Params holding the values of m.
func Strings(m map[string]string) Params {
	r := make(Params, len(m))
	for k, v := range m {
		r[k] = v
	}
	return r
}

// String returns the text of the named parameter, or "" when it is not set.
func (p Params) String(name string) string {
	v, ok := p[name]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Has reports whether the named parameter is set.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Render replaces every placeholder in tpl that has a value in p.
func Render(tpl string, p Params) string {
	var (
		sb   strings.Builder
		last int
	)
	for i := 0; i < len(tpl); {
		j := strings.Index(tpl[i:], "{{")
		if j < 0 {
			break
		}
		start := i + j
		name, end, ok := placeholder(tpl, start)
		if !ok {
			// No placeholder here; a candidate may still begin at the next byte.
			i = start + 1
			continue
		}
		if v, found := p[name]; found {
			sb.WriteString(tpl[last:start])
			sb.WriteString(fmt.Sprint(v))
			last = end
		}
		i = end
	}
	if last == 0 {
		return tpl
	}
	sb.WriteString(tpl[last:])
	return sb.String()
}

// placeholder reads "{{ name }}" at tpl[start:], returning the name and the offset
// just past the closing braces.
func placeholder(tpl string, start int) (name string, end int, ok bool) {
	i := skipSpace(tpl, start+2)
	n := i
	for n < len(tpl) {
		r, size := utf8.DecodeRuneInString(tpl[n:])
		if r == '}' || unicode.IsSpace(r) {
			break
		}
		n += size
	}
	if n == i {
		return "", 0, false
	}
	name = tpl[i:n]
	n = skipSpace(tpl, n)
	if !strings.HasPrefix(tpl[n:], "}}") {
		return "", 0, false
	}
	return name, n + 2, true
}

func skipSpace(s string, pos int) int {
	i := strings.IndexFunc(s[pos:], func(r rune) bool { return !unicode.IsSpace(r) })
	if i < 0 {
		return len(s)
	}
	return pos + i
}
