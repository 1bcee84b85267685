package cmd

import (
	"fmt"
	"io"

	"github.com/KaramelBytes/kata-cli/internal/histogram"
	"github.com/KaramelBytes/kata-cli/internal/parser"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	histCounts bool
)

// histogramReport is the structured form used by --output json|yaml.
type histogramReport struct {
	Counts []int  `json:"counts" yaml:"counts"`
	Max    int    `json:"max" yaml:"max"`
	Text   string `json:"text" yaml:"text"`
}

var histogramCmd = &cobra.Command{
	Use:     "histogram [values...]",
	Aliases: []string{"hist"},
	Short:   "Draw a vertical histogram of the digits 0-9",
	Long: `Draw a vertical histogram of the digits 0-9. Values outside 0-9 and
absent values (empty, null, nil, ~ or _) are skipped.`,
	Example: `  kata histogram 1 1 1 5
  kata histogram -f rolls.csv --counts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		toks, err := readTokens(cmd, args)
		if err != nil {
			return err
		}
		vals, err := parser.OptionalInts(toks)
		if err != nil {
			return err
		}
		f, err := histogram.CountOptional(vals)
		if err != nil {
			return err
		}
		text := f.Render()
		runLog.WithFields(logrus.Fields{"op": "histogram", "values": len(vals), "counted": f.Total(), "rows": f.Max()}).Debug("done")

		rep := histogramReport{Counts: f[:], Max: f.Max(), Text: text}
		return writeResult(cmd, rep, func(w io.Writer) error {
			if _, err := fmt.Fprint(w, text); err != nil {
				return err
			}
			if histCounts || (cfg != nil && cfg.HistogramCounts) {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
				f.WriteTable(w)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(histogramCmd)
	histogramCmd.Flags().BoolVar(&histCounts, "counts", false, "append a digit/count table")
}
