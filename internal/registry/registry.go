package registry

import (
	"fmt"

	"github.com/vk/landmarkgrid/internal/scene"
)

// Entry is one registered identifier.
type Entry struct {
	ID     string
	Handle scene.Handle
}

// Registry holds the identifiers of a single generated scene.
type Registry struct {
	index    map[string]scene.Handle
	reserved map[string]bool
	order    []Entry
}

// New creates and initializes a new, empty Registry.
func New() *Registry {
	return &Registry{
		index:    make(map[string]scene.Handle),
		reserved: make(map[string]bool),
	}
}

// Reserve claims id for h without counting it as an entry.
func (r *Registry) Reserve(id string, h scene.Handle) error {
	if id == "" {
		return fmt.Errorf("identifier must not be empty")
	}
	if existing, ok := r.index[id]; ok {
		return &DuplicateIdentifierError{ID: id, Existing: existing, Incoming: h}
	}
	r.index[id] = h
	r.reserved[id] = true
	return nil
}

// Register maps id to h. It fails with a *DuplicateIdentifierError when id
// is already registered or reserved, leaving the registry unchanged.
func (r *Registry) Register(id string, h scene.Handle) error {
	if id == "" {
		return fmt.Errorf("identifier must not be empty")
	}
	if existing, ok := r.index[id]; ok {
		return &DuplicateIdentifierError{ID: id, Existing: existing, Incoming: h}
	}
	r.index[id] = h
	r.order = append(r.order, Entry{ID: id, Handle: h})
	return nil
}

// RegisterAll registers every entry or none of them.
func (r *Registry) RegisterAll(entries []Entry) error {
	mark := r.Mark()
	for _, e := range entries {
		if err := r.Register(e.ID, e.Handle); err != nil {
			r.Truncate(mark)
			return err
		}
	}
	return nil
}

// Lookup returns the handle registered for id.
func (r *Registry) Lookup(id string) (scene.Handle, bool) {
	h, ok := r.index[id]
	return h, ok
}

// Len returns the number of entries, reserved names excluded.
func (r *Registry) Len() int { return len(r.order) }

// Entries returns every entry in registration order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.order...)
}

// Mark returns the current entry count for a later Truncate.
func (r *Registry) Mark() int { return len(r.order) }

// Truncate removes every entry registered after mark.
func (r *Registry) Truncate(mark int) {
	if mark < 0 || mark >= len(r.order) {
		return
	}
	for _, e := range r.order[mark:] {
		delete(r.index, e.ID)
	}
	r.order = r.order[:mark]
}
