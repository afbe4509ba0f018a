package resolver

import (
	"fmt"
	"strings"

	"github.com/proj-dev/proj/internal/pathutil"
	"github.com/proj-dev/proj/internal/store"
	"github.com/proj-dev/proj/internal/ui/styles"
)

// nameGap is the spacing between the name and path columns.
const nameGap = 2

// renderListing formats a project map as a two-column listing. A
// non-empty heading is printed as-is; otherwise the candidate count is
// shown. The name column is padded to the longest name in this listing,
// so widths shrink as candidates narrow.
func renderListing(m store.ProjectMap, heading string) string {
	var b strings.Builder

	if heading != "" {
		b.WriteString(heading)
		b.WriteString("\n\n")
	} else {
		suffix := "s"
		if len(m) == 1 {
			suffix = ""
		}
		fmt.Fprintf(&b, "%d project%s found\n\n", len(m), suffix)
	}

	names := m.Names()
	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}
	width += nameGap

	for i, name := range names {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.ProjectName.Render(fmt.Sprintf("%-*s", width, name)))
		b.WriteString(styles.ProjectPath.Render(pathutil.Collapse(m[name])))
	}

	return b.String()
}
