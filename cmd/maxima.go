package cmd

import (
	"cmp"
	"fmt"
	"io"

	"github.com/KaramelBytes/kata-cli/internal/parser"
	"github.com/KaramelBytes/kata-cli/internal/sequence"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	maximaWords bool
)

var maximaCmd = &cobra.Command{
	Use:   "maxima [values...]",
	Short: "Print values strictly greater than both neighbours",
	Example: `  kata maxima 2 9 5 6 1
  kata maxima --words -f words.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		toks, err := readTokens(cmd, args)
		if err != nil {
			return err
		}
		if maximaWords {
			return runMaxima(cmd, parser.Words(toks))
		}
		vals, err := parser.Ints(toks)
		if err != nil {
			return fmt.Errorf("%w (use --words for non-numeric values)", err)
		}
		return runMaxima(cmd, vals)
	},
}

func runMaxima[T cmp.Ordered](cmd *cobra.Command, in []T) error {
	out, err := sequence.LocalMaxima(in)
	if err != nil {
		return err
	}
	runLog.WithFields(logrus.Fields{"op": "maxima", "values": len(in), "maxima": len(out)}).Debug("done")
	return writeResult(cmd, out, func(w io.Writer) error {
		if len(out) == 0 {
			_, err := fmt.Fprintln(w, "(none)")
			return err
		}
		_, err := fmt.Fprintln(w, joinValues(out))
		return err
	})
}

func init() {
	rootCmd.AddCommand(maximaCmd)
	maximaCmd.Flags().BoolVar(&maximaWords, "words", false, "compare values as strings instead of integers")
}
