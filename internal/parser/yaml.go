package parser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type yamlParser struct{}

func (yamlParser) CanParse(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".json")
}

// Parse reads a top-level sequence of scalars. JSON arrays parse too, since
// JSON is a subset of YAML. Null entries become absent tokens.
func (yamlParser) Parse(content []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return []string{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expected a list of values at line %d: %w", root.Line, ErrUnsupported)
	}
	out := make([]string, 0, len(root.Content))
	for _, n := range root.Content {
		if n.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("nested value at line %d: %w", n.Line, ErrUnsupported)
		}
		if n.ShortTag() == "!!null" {
			out = append(out, "")
			continue
		}
		out = append(out, n.Value)
	}
	return out, nil
}
