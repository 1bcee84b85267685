package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Parser defines an input format that yields value tokens.
type Parser interface {
	CanParse(filename string) bool
	Parse(content []byte) ([]string, error)
}

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

// ParseFile selects a parser based on filename and returns the value tokens
// in file order.
func ParseFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	for _, p := range registry {
		if p.CanParse(path) {
			return p.Parse(data)
		}
	}
	// Fallback to plain text
	return txtParser{}.Parse(data)
}

// ParseReader reads plain text tokens from r.
func ParseReader(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return txtParser{}.Parse(data)
}

// Tokenize splits command-line arguments on whitespace and commas, so
// "1,2 3" and "1" "2" "3" give the same tokens. The result is never nil.
func Tokenize(args []string) []string {
	out := []string{}
	for _, a := range args {
		out = append(out, splitFields(a)...)
	}
	return out
}

func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// ErrAbsent indicates a token that marks a missing value where one is required.
var ErrAbsent = errors.New("absent value")

// IsAbsent reports whether tok marks a missing integer value. Words does
// not use it, so "null" or "_" stay ordinary words there.
func IsAbsent(tok string) bool {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "", "null", "nil", "~", "_":
		return true
	}
	return false
}

// Ints converts tokens to integers. Absent or malformed tokens are errors.
func Ints(tokens []string) ([]int, error) {
	out := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		if IsAbsent(tok) {
			return nil, fmt.Errorf("value %d: %w", i+1, ErrAbsent)
		}
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("value %d: invalid integer %q", i+1, tok)
		}
		out = append(out, v)
	}
	return out, nil
}

// OptionalInts converts tokens to integers, mapping absent tokens to nil.
func OptionalInts(tokens []string) ([]*int, error) {
	out := make([]*int, 0, len(tokens))
	for i, tok := range tokens {
		if IsAbsent(tok) {
			out = append(out, nil)
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("value %d: invalid integer %q", i+1, tok)
		}
		out = append(out, &v)
	}
	return out, nil
}

// Words returns the tokens trimmed of surrounding space, dropping empty ones.
func Words(tokens []string) []string {
	words := lo.Map(tokens, func(tok string, _ int) string { return strings.TrimSpace(tok) })
	return lo.Compact(words)
}

func init() {
	// Register default parsers
	Register(txtParser{})
	Register(csvParser{})
	Register(tsvParser{})
	Register(yamlParser{})
}

// ErrUnsupported indicates a document shape the parser cannot read values from.
var ErrUnsupported = errors.New("unsupported input format")
