package resolver

import "strings"

// ExtractQuoted returns every non-empty substring enclosed by a pair of
// double quotes, in order of appearance. Backslash escapes are not
// interpreted and an unterminated quote is ignored.
func ExtractQuoted(text string) []string {
	var out []string
	for {
		open := strings.IndexByte(text, '"')
		if open < 0 {
			return out
		}
		rest := text[open+1:]
		end := strings.IndexByte(rest, '"')
		if end < 0 {
			return out
		}
		if end == 0 {
			// "" cannot start a match; the closing quote may open the next one
			text = rest
			continue
		}
		out = append(out, rest[:end])
		text = rest[end+1:]
	}
}
