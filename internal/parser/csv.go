package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

type csvParser struct{}

func (csvParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".csv")
}

// Parse flattens all cells in row order. Empty cells are kept as absent
// tokens. The delimiter is sniffed from the first line.
func (csvParser) Parse(content []byte) ([]string, error) {
	return parseDelimited(content, sniffDelimiter(content))
}

type tsvParser struct{}

func (tsvParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".tsv")
}

func (tsvParser) Parse(content []byte) ([]string, error) {
	return parseDelimited(content, '\t')
}

func parseDelimited(content []byte, comma rune) ([]string, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = comma
	out := []string{}
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read csv: %w", err)
		}
		out = append(out, rec...)
	}
	return out, nil
}

func sniffDelimiter(content []byte) rune {
	line, _, _ := bytes.Cut(content, []byte("\n"))
	best, bestN := ',', 0
	for _, d := range []rune{',', ';', '\t'} {
		if n := bytes.Count(line, []byte(string(d))); n > bestN {
			best, bestN = d, n
		}
	}
	return best
}
