package builder

import (
	"context"

	"github.com/vk/landmarkgrid/internal/layout"
	"github.com/vk/landmarkgrid/internal/scene"
)

// Builder populates a scene from a grid plan.
//
// # Usage Pattern
//
// The app pipeline creates a session, builds into it and then freezes it:
//
//	sess, _ := session.New(ctx, "shapeContainer")
//	res, err := b.Build(ctx, sess, plan)
//	if err != nil {
//	    // Nothing from the failing cell is attached.
//	}
//	frozen, reg := sess.Close()
//
// # Error Conditions
//
// Build returns an error when:
//   - Two cells produce the same identifier (registry.ErrDuplicateIdentifier)
//   - The scene context rejects a node, field or route
//
// # Thread-Safety
//
// Build is not safe for concurrent use on the same scene.Context.
type Builder interface {
	// Build appends every cell and row label of plan under sc.Root().
	//
	// Returns:
	//   - Result describing each built cell and the overall counts
	//   - Error if construction failed; cells built before the failure stay
	//     attached, the failing cell does not
	Build(ctx context.Context, sc scene.Context, plan *layout.Plan) (*Result, error)
}
