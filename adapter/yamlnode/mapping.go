package yamlnode

import (
	"gopkg.in/yaml.v3"

	"go.llib.dev/collectivity"
)

// Mapping views a mapping node as an associative container keyed by the scalar value of the keys.
type Mapping struct {
	Node *yaml.Node
}

var (
	_ collectivity.Get[string, *yaml.Node]       = Mapping{}
	_ collectivity.Len                           = Mapping{}
	_ collectivity.Insert[string, *yaml.Node]    = Mapping{}
	_ collectivity.TryInsert[string, *yaml.Node] = Mapping{}
	_ collectivity.Remove[string, *yaml.Node]    = Mapping{}
)

func (m Mapping) node() (*yaml.Node, bool) {
	n := resolve(m.Node)
	return n, kindOf(n) == yaml.MappingNode
}

func (m Mapping) index(key string) (*yaml.Node, int, bool) {
	n, ok := m.node()
	if !ok {
		return nil, -1, false
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n, i, true
		}
	}
	return n, -1, false
}

// Get returns false when the node is not a mapping.
func (m Mapping) Get(key string) (*yaml.Node, bool) {
	n, i, ok := m.index(key)
	if !ok {
		return nil, false
	}
	return n.Content[i+1], true
}

func (m Mapping) Len() int {
	n, ok := m.node()
	if !ok {
		return 0
	}
	return len(n.Content) / 2
}

// Insert creates or replaces the entry.
// It panics when the node is not a mapping or val is nil.
func (m Mapping) Insert(key string, val *yaml.Node) {
	if err := m.TryInsert(key, val); err != nil {
		panic(err.Error())
	}
}

func (m Mapping) TryInsert(key string, val *yaml.Node) error {
	n, i, found := m.index(key)
	if n == nil {
		return collectivity.ErrUnsupportedContainerType.F("%s", unsupported(yaml.MappingNode, kindOf(resolve(m.Node))))
	}
	if val == nil {
		return errNilValue
	}
	if found {
		n.Content[i+1] = val
		return nil
	}
	n.Content = append(n.Content, Scalar(key), val)
	return nil
}

func (m Mapping) Remove(key string) (*yaml.Node, bool) {
	n, i, ok := m.index(key)
	if !ok {
		return nil, false
	}
	val := n.Content[i+1]
	n.Content = append(n.Content[:i], n.Content[i+2:]...)
	return val, true
}
