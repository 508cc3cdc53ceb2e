package linkify

import (
	"fmt"
	"strings"
)

// Debug renders entities in a human-readable form for tests and ad hoc
// inspection. Its exact format is unspecified and should not be parsed.
func Debug(entities []Entity) string {
	var sb strings.Builder
	for _, e := range entities {
		fmt.Fprintf(&sb, "[%s %d:%d %q", e.Tag, e.Start, e.End, e.Value)
		if e.IsLink {
			fmt.Fprintf(&sb, " href=%q", e.Href)
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
