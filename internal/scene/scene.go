package scene

import (
	"errors"
	"fmt"
)

// ErrFrozen is returned by every mutation of a frozen scene.
var ErrFrozen = errors.New("scene is frozen")

// Handle addresses a node in a scene's arena.
type Handle int

// NoHandle is the zero-parent marker.
const NoHandle Handle = -1

// Field is one named field assignment on a node.
type Field struct {
	Name  string
	Value Value
}

// Route is a directed, non-owning edge from a source node's output field to
// a destination node's input field.
type Route struct {
	Src      Handle
	SrcField string
	Dst      Handle
	DstField string
}

type node struct {
	kind     Kind
	name     string
	fields   []Field
	children []Handle
	parent   Handle
}

// Scene is an arena of nodes with a single shared root container.
type Scene struct {
	nodes  []node
	routes []Route
	root   Handle
	frozen bool

	// attachments journals every AppendChild so Rollback can detach
	// children from parents that survive it.
	attachments []attachment
}

type attachment struct {
	parent, child Handle
}

// New creates a scene whose root is a Transform named rootName.
func New(rootName string) *Scene {
	s := &Scene{}
	s.root = s.alloc(KindTransform)
	s.nodes[s.root].name = rootName
	return s
}

func (s *Scene) alloc(kind Kind) Handle {
	s.nodes = append(s.nodes, node{kind: kind, parent: NoHandle})
	return Handle(len(s.nodes) - 1)
}

func (s *Scene) check(h Handle) error {
	if h < 0 || int(h) >= len(s.nodes) {
		return fmt.Errorf("unknown node handle %d", h)
	}
	return nil
}

// Root returns the shared root container.
func (s *Scene) Root() Handle { return s.root }

// Len returns the number of nodes, the root included.
func (s *Scene) Len() int { return len(s.nodes) }

// CreateNode adds a detached node of the given kind.
func (s *Scene) CreateNode(kind Kind) (Handle, error) {
	if s.frozen {
		return NoHandle, ErrFrozen
	}
	if !kind.Valid() {
		return NoHandle, fmt.Errorf("unknown node kind %d", kind)
	}
	return s.alloc(kind), nil
}

// SetField assigns a field, replacing an earlier value of the same name in
// place so field order stays that of first assignment.
func (s *Scene) SetField(h Handle, name string, v Value) error {
	if s.frozen {
		return ErrFrozen
	}
	if err := s.check(h); err != nil {
		return err
	}
	n := &s.nodes[h]
	for i := range n.fields {
		if n.fields[i].Name == name {
			n.fields[i].Value = v
			return nil
		}
	}
	n.fields = append(n.fields, Field{Name: name, Value: v})
	return nil
}

// SetName gives a node its DEF name. A node is named at most once.
func (s *Scene) SetName(h Handle, name string) error {
	if s.frozen {
		return ErrFrozen
	}
	if err := s.check(h); err != nil {
		return err
	}
	if cur := s.nodes[h].name; cur != "" && cur != name {
		return fmt.Errorf("node %d is already named %q", h, cur)
	}
	s.nodes[h].name = name
	return nil
}

// AppendChild attaches child as the last child of parent. The child must be
// detached and must not be an ancestor of parent. Grouping parents take only
// children-field nodes and every other parent takes only field-value nodes
// such as geometry or material.
func (s *Scene) AppendChild(parent, child Handle) error {
	if s.frozen {
		return ErrFrozen
	}
	if err := s.check(parent); err != nil {
		return err
	}
	if err := s.check(child); err != nil {
		return err
	}
	if child == s.root {
		return fmt.Errorf("the root container cannot be a child")
	}
	pk, ck := s.nodes[parent].kind, s.nodes[child].kind
	if (ck.ContainerField() == "children") != pk.Grouping() {
		return fmt.Errorf("a %s cannot be attached to a %s as %s", ck, pk, ck.ContainerField())
	}
	if p := s.nodes[child].parent; p != NoHandle {
		return fmt.Errorf("node %d already has parent %d", child, p)
	}
	for a := parent; a != NoHandle; a = s.nodes[a].parent {
		if a == child {
			return fmt.Errorf("attaching node %d under %d would create a cycle", child, parent)
		}
	}

	s.nodes[parent].children = append(s.nodes[parent].children, child)
	s.nodes[child].parent = parent
	s.attachments = append(s.attachments, attachment{parent: parent, child: child})
	return nil
}

// AddRoute records a route between two existing nodes.
func (s *Scene) AddRoute(src Handle, srcField string, dst Handle, dstField string) (Route, error) {
	if s.frozen {
		return Route{}, ErrFrozen
	}
	if err := s.check(src); err != nil {
		return Route{}, err
	}
	if err := s.check(dst); err != nil {
		return Route{}, err
	}
	if srcField == "" || dstField == "" {
		return Route{}, fmt.Errorf("route fields must not be empty")
	}
	r := Route{Src: src, SrcField: srcField, Dst: dst, DstField: dstField}
	s.routes = append(s.routes, r)
	return r, nil
}

// Savepoint marks the scene's current extent.
type Savepoint struct {
	nodes       int
	routes      int
	attachments int
}

// Savepoint returns a mark that Rollback can return to.
func (s *Scene) Savepoint() Savepoint {
	return Savepoint{nodes: len(s.nodes), routes: len(s.routes), attachments: len(s.attachments)}
}

// Rollback discards every node, route and attachment made after sp. Field
// and name assignments on nodes that predate sp are kept.
func (s *Scene) Rollback(sp Savepoint) error {
	if s.frozen {
		return ErrFrozen
	}
	if sp.nodes > len(s.nodes) || sp.routes > len(s.routes) || sp.attachments > len(s.attachments) {
		return fmt.Errorf("savepoint is ahead of the scene")
	}
	for i := len(s.attachments) - 1; i >= sp.attachments; i-- {
		a := s.attachments[i]
		if int(a.child) < sp.nodes {
			s.nodes[a.child].parent = NoHandle
		}
		if int(a.parent) >= sp.nodes {
			continue
		}
		kids := s.nodes[a.parent].children
		s.nodes[a.parent].children = kids[:len(kids)-1]
	}
	s.attachments = s.attachments[:sp.attachments]
	s.routes = s.routes[:sp.routes]
	s.nodes = s.nodes[:sp.nodes]
	return nil
}

// Freeze makes the scene immutable.
func (s *Scene) Freeze() { s.frozen = true }

// Frozen reports whether Freeze has been called.
func (s *Scene) Frozen() bool { return s.frozen }

// NodeView is a read-only snapshot of one node.
type NodeView struct {
	Handle   Handle
	Kind     Kind
	Name     string
	Parent   Handle
	Fields   []Field
	Children []Handle
}

// Node returns a snapshot of the node at h.
func (s *Scene) Node(h Handle) (NodeView, bool) {
	if s.check(h) != nil {
		return NodeView{}, false
	}
	n := s.nodes[h]
	return NodeView{
		Handle:   h,
		Kind:     n.kind,
		Name:     n.name,
		Parent:   n.parent,
		Fields:   append([]Field(nil), n.fields...),
		Children: append([]Handle(nil), n.children...),
	}, true
}

// Field returns the value of a named field on h.
func (s *Scene) Field(h Handle, name string) (Value, bool) {
	if s.check(h) != nil {
		return nil, false
	}
	for _, f := range s.nodes[h].fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Routes returns every route in insertion order.
func (s *Scene) Routes() []Route {
	return append([]Route(nil), s.routes...)
}

// Walk visits the tree below the root depth-first in child order, calling fn
// on entry to each node. Returning false from fn skips that node's subtree.
func (s *Scene) Walk(fn func(n NodeView, depth int) bool) {
	var visit func(h Handle, depth int)
	visit = func(h Handle, depth int) {
		v, _ := s.Node(h)
		if !fn(v, depth) {
			return
		}
		for _, c := range v.Children {
			visit(c, depth+1)
		}
	}
	visit(s.root, 0)
}

// Count returns how many nodes of kind are reachable from the root.
func (s *Scene) Count(kind Kind) int {
	n := 0
	s.Walk(func(v NodeView, _ int) bool {
		if v.Kind == kind {
			n++
		}
		return true
	})
	return n
}
