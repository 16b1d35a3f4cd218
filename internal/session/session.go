// Package session provides the construction session: the concrete
// scene.Context that pairs one scene arena with its named-node registry for a
// single generation run.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vk/landmarkgrid/internal/ctxlog"
	"github.com/vk/landmarkgrid/internal/registry"
	"github.com/vk/landmarkgrid/internal/scene"
)

// Session represents a single construction run and owns its scene and
// registry.
type Session struct {
	scene    *scene.Scene
	registry *registry.Registry
	logger   *slog.Logger
}

var _ scene.Context = (*Session)(nil)

// New creates a session whose shared root container is named rootName. The
// root name is reserved in the registry.
func New(ctx context.Context, rootName string) (*Session, error) {
	s := &Session{
		scene:    scene.New(rootName),
		registry: registry.New(),
		logger:   ctxlog.FromContext(ctx),
	}
	if err := s.registry.Reserve(rootName, s.scene.Root()); err != nil {
		return nil, fmt.Errorf("reserving root container name: %w", err)
	}
	return s, nil
}

func (s *Session) CreateNode(kind scene.Kind) (scene.Handle, error) {
	return s.scene.CreateNode(kind)
}

func (s *Session) SetField(h scene.Handle, name string, v scene.Value) error {
	return s.scene.SetField(h, name, v)
}

func (s *Session) AppendChild(parent, child scene.Handle) error {
	return s.scene.AppendChild(parent, child)
}

func (s *Session) AddRoute(src scene.Handle, srcField string, dst scene.Handle, dstField string) (scene.Route, error) {
	return s.scene.AddRoute(src, srcField, dst, dstField)
}

// AddNamedNode registers id and sets it as the node's DEF name. On failure
// neither the registry nor the node is changed.
func (s *Session) AddNamedNode(id string, h scene.Handle) error {
	return s.AddNamedNodes([]scene.NamedHandle{{ID: id, Handle: h}})
}

// AddNamedNodes registers every name in one registry transaction, then sets
// the DEF names. Nodes are checked up front so naming cannot fail once the
// registry has accepted the batch.
func (s *Session) AddNamedNodes(names []scene.NamedHandle) error {
	if s.scene.Frozen() {
		return scene.ErrFrozen
	}
	entries := make([]registry.Entry, len(names))
	for i, n := range names {
		view, ok := s.scene.Node(n.Handle)
		if !ok {
			return fmt.Errorf("cannot name unknown node %d", n.Handle)
		}
		if view.Name != "" && view.Name != n.ID {
			return fmt.Errorf("node %d is already named %q", n.Handle, view.Name)
		}
		entries[i] = registry.Entry{ID: n.ID, Handle: n.Handle}
	}

	if err := s.registry.RegisterAll(entries); err != nil {
		return err
	}
	for _, n := range names {
		if err := s.scene.SetName(n.Handle, n.ID); err != nil {
			// Unreachable after the checks above.
			panic(fmt.Sprintf("session: naming node %d: %v", n.Handle, err))
		}
		s.logger.Debug("Registered named node.", "id", n.ID, "handle", n.Handle)
	}
	return nil
}

func (s *Session) NamedNode(id string) (scene.Handle, bool) {
	return s.registry.Lookup(id)
}

func (s *Session) Root() scene.Handle { return s.scene.Root() }

func (s *Session) Savepoint() scene.Mark {
	return scene.Mark{Scene: s.scene.Savepoint(), Registry: s.registry.Mark()}
}

// Rollback restores the scene and the registry to m.
func (s *Session) Rollback(m scene.Mark) error {
	if err := s.scene.Rollback(m.Scene); err != nil {
		return err
	}
	s.registry.Truncate(m.Registry)
	return nil
}

// Close freezes the scene and returns it together with the registry. The
// session must not be used afterwards.
func (s *Session) Close() (*scene.Scene, *registry.Registry) {
	s.scene.Freeze()
	return s.scene, s.registry
}

// Scene exposes the scene under construction for inspection.
func (s *Session) Scene() *scene.Scene { return s.scene }

// Registry exposes the registry under construction for inspection.
func (s *Session) Registry() *registry.Registry { return s.registry }
