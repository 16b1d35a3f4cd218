// Package scene provides the in-memory scene graph the generator builds: an
// index-addressed arena of nodes, the directed routes between node fields,
// and the Context capability builders use to populate it.
//
// # Ownership
//
// Nodes are addressed by Handle. Every node except the shared root has at
// most one parent, so the node set forms a tree hanging off the root. Routes
// refer to nodes by handle and own nothing.
//
// # Lifecycle
//
//  1. Created with New, which installs the named shared root container.
//  2. Populated through CreateNode, SetField, AppendChild and AddRoute.
//     Savepoint and Rollback discard a partially built subtree.
//  3. Frozen with Freeze. A frozen scene rejects every mutation and is what
//     serializers consume.
package scene
