package core

import "strings"

// singleMarker starts the first line of a nested block.
const singleMarker = "- "

// Indent prefixes every line of text with places spaces. With singles set,
// the first line also gets "- " after the padding so nested blocks stand
// out from their parent's continuation lines.
func Indent(text string, places int, singles bool) string {
	if text == "" {
		return ""
	}
	if places < 0 {
		places = 0
	}
	pad := strings.Repeat(" ", places)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i == 0 && singles {
			lines[i] = pad + singleMarker + line
			continue
		}
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
