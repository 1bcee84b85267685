package cmd

import (
	"fmt"
	"io"
	"strings"

	cfgpkg "github.com/KaramelBytes/kata-cli/internal/config"
	"github.com/KaramelBytes/kata-cli/internal/parser"
	"github.com/KaramelBytes/kata-cli/internal/utils"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// readTokens returns value tokens from --file when set, otherwise from args.
func readTokens(cmd *cobra.Command, args []string) ([]string, error) {
	if inputFile == "" {
		return parser.Tokenize(args), nil
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("pass values as arguments or with --file, not both")
	}
	if inputFile == "-" {
		return parser.ParseReader(cmd.InOrStdin())
	}
	toks, err := parser.ParseFile(inputFile)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", inputFile, err)
	}
	runLog.WithField("tokens", len(toks)).Debugf("read %s", inputFile)
	return toks, nil
}

func outputFormat() string {
	if cfg == nil || cfg.Output == "" {
		return cfgpkg.OutputText
	}
	return cfg.Output
}

// writeResult encodes v as JSON or YAML, or calls text for the plain format.
func writeResult(cmd *cobra.Command, v any, text func(w io.Writer) error) error {
	w := cmd.OutOrStdout()
	switch format := outputFormat(); format {
	case cfgpkg.OutputText:
		return text(w)
	case cfgpkg.OutputJSON:
		b, err := utils.PrettyJSON(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case cfgpkg.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported --output: %s (use text, json or yaml)", format)
	}
}

func joinValues[T any](s []T) string {
	return strings.Join(lo.Map(s, func(v T, _ int) string { return fmt.Sprint(v) }), " ")
}
