package histogram

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// WriteTable writes the digit counts as a bordered table with each digit's
// share of the counted values.
func (f Frequencies) WriteTable(w io.Writer) {
	total := f.Total()
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Digit", "Count", "Share"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for d, c := range f {
		share := 0.0
		if total > 0 {
			share = float64(c) * 100.0 / float64(total)
		}
		table.Append([]string{strconv.Itoa(d), humanize.Comma(int64(c)), fmt.Sprintf("%.1f%%", share)})
	}
	table.SetFooter([]string{"Total", humanize.Comma(int64(total)), ""})
	table.Render()
}
