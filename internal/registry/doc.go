// Package registry provides the NamedNodeRegistry: the table of symbolic
// identifiers given to scene nodes during construction.
//
// Each entry maps an identifier to a scene.Handle, never to the node itself.
// Identifiers are unique within one generated scene. Registering an
// identifier twice is a construction error reported as a
// DuplicateIdentifierError, never a silent overwrite.
//
// Reserved names (such as the shared root container's) take part in the
// uniqueness check but are not counted as entries.
package registry
