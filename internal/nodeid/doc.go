// internal/nodeid/doc.go

/*
Package nodeid provides a structured representation for the symbolic names
given to the nodes of a cell's interaction chain.

Every interactive cell owns four named nodes. Their identifiers share a base,
the cell label with all whitespace removed, followed by a role suffix:

	<base>                  touch sensor
	<base>Switch            selector
	<base>IntegerSequencer  sequencer
	<base>BooleanTrigger    trigger

This package centralizes the derivation, formatting and parsing of those
identifiers so the builder, the registry and the manifest agree on them.
*/
package nodeid
