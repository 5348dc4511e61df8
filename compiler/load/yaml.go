package load

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// parseYAML decodes YAML source into an ordered table. Mapping nodes keep
// their keys in source order.
func parseYAML(data []byte) (*table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: document root is not a mapping", root.Line)
	}
	return fromMapping(root)
}

func fromMapping(n *yaml.Node) (*table, error) {
	t := newTable()
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping key is not a scalar", k.Line)
		}
		conv, err := fromYAMLNode(v)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k.Value, err)
		}
		t.set(k.Value, conv, position{Line: k.Line, Col: k.Column})
	}
	return t, nil
}

func fromYAMLNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.MappingNode:
		return fromMapping(n)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, e := range n.Content {
			conv, err := fromYAMLNode(e)
			if err != nil {
				return nil, err
			}
			out = append(out, conv)
		}
		return out, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		switch v := v.(type) {
		case int:
			return int64(v), nil
		case uint64:
			return nil, fmt.Errorf("line %d: integer %d out of range", n.Line, v)
		case nil, string, int64, float64, bool:
			return v, nil
		default:
			return nil, fmt.Errorf("line %d: unsupported scalar %q", n.Line, n.Value)
		}
	default:
		return nil, fmt.Errorf("line %d: unsupported node", n.Line)
	}
}
