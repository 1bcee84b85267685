package cmd

import (
	"fmt"
	"io"

	"github.com/KaramelBytes/kata-cli/internal/parser"
	"github.com/KaramelBytes/kata-cli/internal/sequence"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	skipWords bool
)

var skipCmd = &cobra.Command{
	Use:   "skip [values...]",
	Short: "Split values into sub-sequences taken at strides 1..n",
	Example: `  kata skip A B C D
  kata skip 1,2,3,4,5,6 -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		toks, err := readTokens(cmd, args)
		if err != nil {
			return err
		}
		if skipWords {
			return runSkip(cmd, parser.Words(toks))
		}
		vals, err := parser.Ints(toks)
		if err != nil {
			return fmt.Errorf("%w (use --words for non-numeric values)", err)
		}
		return runSkip(cmd, vals)
	},
}

func runSkip[T any](cmd *cobra.Command, in []T) error {
	out, err := sequence.SkipSample(in)
	if err != nil {
		return err
	}
	runLog.WithFields(logrus.Fields{"op": "skip", "values": len(in), "samples": len(out)}).Debug("done")
	return writeResult(cmd, out, func(w io.Writer) error {
		for _, s := range out {
			if _, err := fmt.Fprintln(w, joinValues(s)); err != nil {
				return err
			}
		}
		return nil
	})
}

func init() {
	rootCmd.AddCommand(skipCmd)
	skipCmd.Flags().BoolVar(&skipWords, "words", false, "treat values as strings instead of integers")
}
