package registry

import (
	"errors"
	"fmt"

	"github.com/vk/landmarkgrid/internal/scene"
)

// ErrDuplicateIdentifier matches every DuplicateIdentifierError via errors.Is.
var ErrDuplicateIdentifier = errors.New("duplicate identifier")

// DuplicateIdentifierError reports an identifier that is already registered.
type DuplicateIdentifierError struct {
	ID       string
	Existing scene.Handle
	Incoming scene.Handle
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("identifier %q already registered for node %d (incoming node %d)", e.ID, e.Existing, e.Incoming)
}

// Is lets errors.Is(err, ErrDuplicateIdentifier) match.
func (e *DuplicateIdentifierError) Is(target error) bool {
	return target == ErrDuplicateIdentifier
}
