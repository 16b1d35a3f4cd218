package scene

// Context is the scene-building capability handed to every builder function.
// It hides whether named nodes are tracked by a separate registry and lets
// tests substitute a recording fake.
//
// # Usage Patterns
//
// **Wirer** uses Context to:
//   - Create the chain nodes: CreateNode(), SetField()
//   - Connect them: AddRoute()
//
// **Builder** uses Context to:
//   - Assemble cell and row-label subtrees: CreateNode(), SetField(), AppendChild()
//   - Name chain nodes: AddNamedNodes()
//   - Attach finished subtrees: Root(), AppendChild()
//   - Discard a failed cell: Savepoint(), Rollback()
//
// # Thread-Safety
//
// A Context is used by one goroutine at a time. Construction is sequential.
type Context interface {
	// CreateNode allocates a detached node of the given kind.
	CreateNode(kind Kind) (Handle, error)

	// SetField assigns a typed field value on a node.
	SetField(h Handle, name string, v Value) error

	// AppendChild attaches child as the last child of parent.
	AppendChild(parent, child Handle) error

	// AddRoute records a directed route from src.srcField to dst.dstField.
	AddRoute(src Handle, srcField string, dst Handle, dstField string) (Route, error)

	// AddNamedNode registers id for the node and gives the node that name.
	//
	// Returns an error matching registry.ErrDuplicateIdentifier if id is
	// already taken. The registry is left unchanged in that case.
	AddNamedNode(id string, h Handle) error

	// AddNamedNodes is AddNamedNode for several nodes at once. Either every
	// name is registered and applied or none is.
	AddNamedNodes(names []NamedHandle) error

	// NamedNode looks up a node by identifier.
	NamedNode(id string) (Handle, bool)

	// Root returns the shared root container.
	Root() Handle

	// Savepoint marks the current state; Rollback returns to it, removing
	// nodes, routes, attachments and names created since.
	Savepoint() Mark
	Rollback(m Mark) error
}

// NamedHandle pairs an identifier with the node it names.
type NamedHandle struct {
	ID     string
	Handle Handle
}

// Mark is a Context savepoint. Implementations fill in the parts they track.
type Mark struct {
	Scene    Savepoint
	Registry int
}
