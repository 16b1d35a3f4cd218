/*
Package builder is the NodeGraphBuilder: it turns a layout.Plan into scene
nodes through a scene.Context.

The construction walks the plan in row-major order:

 1. Cell construction: for every cell the builder creates two rectangle
    shapes that share the same geometry size but differ in material colour,
    places them under a Switch showing the first variant, and asks the
    wiring package for the cell's interaction chain.

 2. Registration and wiring: the four chain nodes are named after the cell
    label (see nodeid) and connected with their three routes.

 3. Attachment: the chain and the Switch go into a Transform scaled by the
    configured factor and translated to the cell's grid position, which is
    then appended to the shared root container.

 4. Row labels: after the last cell of a row the builder appends a text
    label one column past the last asset.

Each cell is built inside a savepoint. If any step fails, the savepoint is
rolled back so no node, route or identifier of the failing cell survives, and
the error is returned. A duplicate identifier therefore aborts the build with
the root holding only complete cells.
*/
package builder
