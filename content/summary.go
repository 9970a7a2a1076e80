package content

import (
	"strings"
)

// DefaultSummaryWords is the length of list summaries.
const DefaultSummaryWords = 25

// Summary reduces an HTML body to plain text of at most words words: headings
// are dropped, LaTeX math delimiters and environments removed, remaining tags
// stripped and "\cmd{arg}" commands replaced by their argument.
func Summary(text string, words int) string {
	text = StripHeadings(text)
	text = StripMathDelimiters(text)
	text = StripTags(text)
	text = UnwrapCommands(text)
	fields := strings.Fields(text)
	if words >= 0 && len(fields) > words {
		fields = fields[:words]
	}
	return strings.Join(fields, " ")
}

// StripHeadings removes <h1> to <h6> elements together with their content.
// A heading opened with one level may be closed with any level.
func StripHeadings(text string) string {
	var sb strings.Builder
	for {
		start := indexHeadingOpen(text)
		if start < 0 {
			break
		}
		gt := strings.IndexByte(text[start:], '>')
		if gt < 0 {
			break
		}
		end := indexHeadingClose(text, start+gt+1)
		if end < 0 {
			break
		}
		sb.WriteString(text[:start])
		text = text[end:]
	}
	sb.WriteString(text)
	return sb.String()
}

// indexHeadingOpen returns the offset of the first "<hN" with N in 1-6.
func indexHeadingOpen(text string) int {
	for i := 0; i+2 < len(text); i++ {
		if text[i] == '<' && text[i+1] == 'h' && isHeadingLevel(text[i+2]) {
			return i
		}
	}
	return -1
}

// indexHeadingClose returns the offset just past the first "</hN>" at or after pos.
func indexHeadingClose(text string, pos int) int {
	for i := pos; i+4 < len(text); i++ {
		if strings.HasPrefix(text[i:], "</h") && isHeadingLevel(text[i+3]) && text[i+4] == '>' {
			return i + 5
		}
	}
	return -1
}

func isHeadingLevel(c byte) bool {
	return c >= '1' && c <= '6'
}

// StripMathDelimiters removes \( \) \[ \] and \begin{...} \end{...} markers,
// keeping whatever they enclose.
func StripMathDelimiters(text string) string {
	var sb strings.Builder
	for i := 0; i < len(text); {
		if text[i] != '\\' {
			sb.WriteByte(text[i])
			i++
			continue
		}
		rest := text[i+1:]
		switch {
		case strings.HasPrefix(rest, "(") || strings.HasPrefix(rest, ")") ||
			strings.HasPrefix(rest, "[") || strings.HasPrefix(rest, "]"):
			i += 2
			continue
		case strings.HasPrefix(rest, "begin{"), strings.HasPrefix(rest, "end{"):
			if j := strings.IndexByte(rest, '}'); j >= 0 {
				i += j + 2
				continue
			}
		}
		sb.WriteByte(text[i])
		i++
	}
	return sb.String()
}

// StripTags removes everything between '<' and the next '>'. An unclosed
// '<' is kept.
func StripTags(text string) string {
	var sb strings.Builder
	for {
		lt := strings.IndexByte(text, '<')
		if lt < 0 {
			break
		}
		gt := strings.IndexByte(text[lt+1:], '>')
		if gt < 0 {
			break
		}
		sb.WriteString(text[:lt])
		text = text[lt+1+gt+1:]
	}
	sb.WriteString(text)
	return sb.String()
}

// UnwrapCommands replaces "\name{arg}" with "arg", where name is zero or more
// lower case letters. The argument ends at the first '}'.
func UnwrapCommands(text string) string {
	var sb strings.Builder
	for i := 0; i < len(text); {
		if text[i] == '\\' {
			j := i + 1
			for j < len(text) && text[j] >= 'a' && text[j] <= 'z' {
				j++
			}
			if j < len(text) && text[j] == '{' {
				if k := strings.IndexByte(text[j+1:], '}'); k >= 0 {
					sb.WriteString(text[j+1 : j+1+k])
					i = j + 1 + k + 1
					continue
				}
			}
		}
		sb.WriteByte(text[i])
		i++
	}
	return sb.String()
}
