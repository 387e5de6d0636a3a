package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/viperadnan-git/seeksim/internal/core/track"
)

// WriteReport renders a result the way the menu prints it: the sorted
// requests, each visited track on its own line, then the totals.
func WriteReport(w io.Writer, res track.Result) error {
	var b strings.Builder

	b.WriteString("Sorted tracks:")
	for _, t := range res.Sorted {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(t))
	}
	b.WriteByte('\n')

	for _, t := range res.Visited {
		fmt.Fprintf(&b, "Visiting track: %d\n", t)
	}
	fmt.Fprintf(&b, "Total movement: %d\n", res.TotalMovement)
	fmt.Fprintf(&b, "Average movement: %.2f\n", res.AverageMovement)

	_, err := io.WriteString(w, b.String())
	return err
}
