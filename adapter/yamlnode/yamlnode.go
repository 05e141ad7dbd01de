// Package yamlnode binds parsed gopkg.in/yaml.v3 document trees to the collectivity capabilities.
//
// A yaml.Node is either a mapping, a sequence or a scalar,
// so the same node can be viewed as a Mapping or as a Sequence.
// Document and alias nodes are resolved to the node they point to.
// Values are borrowed: Get returns the node stored in the tree, not a copy.
package yamlnode

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"go.llib.dev/collectivity"
)

// errNilValue is returned for nil value nodes, which yaml.Marshal cannot encode.
var errNilValue = collectivity.ErrInsertRejected.F("nil yaml node value")

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) == 1:
			n = n.Content[0]
		case n.Kind == yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

func kindOf(n *yaml.Node) yaml.Kind {
	if n == nil {
		return 0
	}
	return n.Kind
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "empty"
	}
}

func unsupported(want, got yaml.Kind) string {
	return fmt.Sprintf("yaml node is not a %s but %s", kindName(want), kindName(got))
}

// Scalar makes a plain string scalar node.
func Scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
