package support

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Report is a hierarchical byte-size breakdown for a structure, modeled on
// the teacher's utils.MemReport: every exported type's ByteSize() can be
// decomposed into a Report for diagnostics.
type Report struct {
	Name       string
	TotalBytes int
	Children   []Report
}

// String renders the report as an indented tree with human-readable sizes.
func (r Report) String() string {
	var sb strings.Builder
	r.render(&sb, 0)
	return sb.String()
}

func (r Report) render(sb *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(sb, "%s- %s: %s\n", prefix, r.Name, humanize.Bytes(uint64(r.TotalBytes)))
	for _, c := range r.Children {
		c.render(sb, indent+1)
	}
}
