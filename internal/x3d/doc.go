// Package x3d is the SceneSerializer. It renders a frozen scene.Scene as an
// X3D document, either in the XML encoding or in the X3D JSON encoding.
//
// Output is a pure function of the scene: nodes appear in insertion order
// below the shared root, followed by one ROUTE per route in insertion order.
// Encoding the same scene twice yields identical bytes.
package x3d
