package parser

import "strings"

type txtParser struct{}

func (txtParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".txt")
}

func (txtParser) Parse(content []byte) ([]string, error) {
	out := splitFields(string(content))
	if out == nil {
		return []string{}, nil
	}
	return out, nil
}
