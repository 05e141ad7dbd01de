package yamlnode

import (
	"slices"

	"gopkg.in/yaml.v3"

	"go.llib.dev/collectivity"
	"go.llib.dev/collectivity/internal/bounds"
)

// Sequence views a sequence node as a growable sequence.
type Sequence struct {
	Node *yaml.Node
}

var (
	_ collectivity.Get[int, *yaml.Node]       = Sequence{}
	_ collectivity.Len                        = Sequence{}
	_ collectivity.Insert[int, *yaml.Node]    = Sequence{}
	_ collectivity.TryInsert[int, *yaml.Node] = Sequence{}
	_ collectivity.Push[*yaml.Node]           = Sequence{}
	_ collectivity.Remove[int, *yaml.Node]    = Sequence{}
)

func (s Sequence) node() (*yaml.Node, bool) {
	n := resolve(s.Node)
	return n, kindOf(n) == yaml.SequenceNode
}

func (s Sequence) mustNode() *yaml.Node {
	n, ok := s.node()
	if !ok {
		panic(unsupported(yaml.SequenceNode, kindOf(n)))
	}
	return n
}

// Get returns false when the node is not a sequence.
func (s Sequence) Get(index int) (*yaml.Node, bool) {
	n, ok := s.node()
	if !ok || !bounds.Index(index, len(n.Content)) {
		return nil, false
	}
	return n.Content[index], true
}

func (s Sequence) Len() int {
	n, ok := s.node()
	if !ok {
		return 0
	}
	return len(n.Content)
}

// Push panics when the node is not a sequence or val is nil.
func (s Sequence) Push(val *yaml.Node) {
	n := s.mustNode()
	if val == nil {
		panic(errNilValue.Error())
	}
	n.Content = append(n.Content, val)
}

// Insert panics when the node is not a sequence, when val is nil,
// or when index is outside of [0, Len()].
func (s Sequence) Insert(index int, val *yaml.Node) {
	n := s.mustNode()
	bounds.MustInsert(index, len(n.Content))
	if val == nil {
		panic(errNilValue.Error())
	}
	n.Content = slices.Insert(n.Content, index, val)
}

func (s Sequence) TryInsert(index int, val *yaml.Node) error {
	n, ok := s.node()
	if !ok {
		return collectivity.ErrUnsupportedContainerType.F("%s", unsupported(yaml.SequenceNode, kindOf(n)))
	}
	if err := bounds.ErrInsert(index, len(n.Content)); err != nil {
		return err
	}
	if val == nil {
		return errNilValue
	}
	n.Content = slices.Insert(n.Content, index, val)
	return nil
}

func (s Sequence) Remove(index int) (*yaml.Node, bool) {
	n, ok := s.node()
	if !ok || !bounds.Index(index, len(n.Content)) {
		return nil, false
	}
	val := n.Content[index]
	n.Content = slices.Delete(n.Content, index, index+1)
	return val, true
}
