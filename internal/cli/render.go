package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/primepath/longest"
	"github.com/katalvlaran/primepath/pyramid"
)

// render prints the outcome. With showPath and a reconstructed path, a
// second line lists the visited cells as (row,pos)=value.
func render(w io.Writer, p *pyramid.Pyramid, res longest.Result, ok, showPath bool) {
	if !ok {
		fmt.Fprintln(w, msgNoSum)
		return
	}
	fmt.Fprintf(w, msgSum, res.Sum)
	if !showPath || len(res.Path) == 0 {
		return
	}

	cells := make([]string, 0, len(res.Path))
	for _, v := range res.Path {
		// Source and sink have no cell.
		i, j, inGrid := p.PositionOf(v)
		if !inGrid {
			continue
		}
		cells = append(cells, fmt.Sprintf("(%d,%d)=%d", i, j, p.Value(i, j)))
	}
	fmt.Fprintf(w, "Path: %s\n", strings.Join(cells, " -> "))
}
