// Package interaction simulates activation events on a built scene. It knows
// the behaviour of the four node kinds that make up a cell's interaction
// chain and propagates events along the scene's routes, which is enough to
// check that every cell alternates between its two appearance variants.
package interaction

import (
	"context"
	"fmt"

	"github.com/vk/landmarkgrid/internal/builder"
	"github.com/vk/landmarkgrid/internal/ctxlog"
	"github.com/vk/landmarkgrid/internal/scene"
)

// maxHops bounds event propagation; a chain needs three.
const maxHops = 16

type endpoint struct {
	node  scene.Handle
	field string
}

type event struct {
	endpoint
	value any
}

// Simulator holds the runtime state of every sequencer and selector.
type Simulator struct {
	sc       *scene.Scene
	routes   map[endpoint][]endpoint
	position map[scene.Handle]int   // sequencer key index; -1 before the first advance
	choice   map[scene.Handle]int32 // selector whichChoice
}

// New prepares a simulator over a frozen scene.
func New(sc *scene.Scene) (*Simulator, error) {
	if !sc.Frozen() {
		return nil, fmt.Errorf("interaction: scene is not frozen")
	}
	sim := &Simulator{
		sc:       sc,
		routes:   make(map[endpoint][]endpoint),
		position: make(map[scene.Handle]int),
		choice:   make(map[scene.Handle]int32),
	}
	for _, r := range sc.Routes() {
		src := endpoint{r.Src, r.SrcField}
		sim.routes[src] = append(sim.routes[src], endpoint{r.Dst, r.DstField})
	}
	return sim, nil
}

// Choice returns the selector's current whichChoice.
func (s *Simulator) Choice(selector scene.Handle) (int32, error) {
	n, ok := s.sc.Node(selector)
	if !ok || n.Kind != scene.KindSwitch {
		return 0, fmt.Errorf("interaction: node %d is not a Switch", selector)
	}
	if c, ok := s.choice[selector]; ok {
		return c, nil
	}
	v, ok := s.sc.Field(selector, scene.FieldWhichChoice)
	if !ok {
		return -1, nil
	}
	c, ok := v.(scene.SFInt32)
	if !ok {
		return 0, fmt.Errorf("interaction: whichChoice of node %d is %s", selector, v.Type())
	}
	return int32(c), nil
}

// Activate fires the sensor's touchTime output and delivers the resulting
// events until the chain settles.
func (s *Simulator) Activate(sensor scene.Handle) error {
	n, ok := s.sc.Node(sensor)
	if !ok || n.Kind != scene.KindTouchSensor {
		return fmt.Errorf("interaction: node %d is not a TouchSensor", sensor)
	}

	queue := []event{{endpoint{sensor, scene.FieldTouchTime}, struct{}{}}}
	for hops := 0; len(queue) > 0; hops++ {
		if hops > maxHops {
			return fmt.Errorf("interaction: activation of node %d did not settle", sensor)
		}
		ev := queue[0]
		queue = queue[1:]
		for _, dst := range s.routes[ev.endpoint] {
			out, err := s.deliver(dst, ev.value)
			if err != nil {
				return err
			}
			queue = append(queue, out...)
		}
	}
	return nil
}

// deliver applies one input event to a node and returns the events it emits.
func (s *Simulator) deliver(dst endpoint, value any) ([]event, error) {
	n, _ := s.sc.Node(dst.node)
	switch {
	case n.Kind == scene.KindBooleanTrigger && dst.field == scene.FieldSetTriggerTime:
		return []event{{endpoint{dst.node, scene.FieldTriggerTrue}, true}}, nil

	case n.Kind == scene.KindIntegerSequencer && dst.field == scene.FieldNext:
		v, ok := s.sc.Field(dst.node, "keyValue")
		values, isInts := v.(scene.MFInt32)
		if !ok || !isInts || len(values) == 0 {
			return nil, fmt.Errorf("interaction: sequencer %d has no keyValue", dst.node)
		}
		pos, seen := s.position[dst.node]
		if !seen {
			pos = -1
		}
		pos = (pos + 1) % len(values)
		s.position[dst.node] = pos
		return []event{{endpoint{dst.node, scene.FieldValueChanged}, values[pos]}}, nil

	case n.Kind == scene.KindSwitch && dst.field == scene.FieldWhichChoice:
		c, ok := value.(int32)
		if !ok {
			return nil, fmt.Errorf("interaction: switch %d received %T", dst.node, value)
		}
		s.choice[dst.node] = c
		return nil, nil
	}
	return nil, fmt.Errorf("interaction: %s has no input %q", n.Kind, dst.field)
}

// VerifyCell checks a cell's state machine: it starts on choice 0 and each
// of the given number of activations flips between 0 and 1.
func (s *Simulator) VerifyCell(cell builder.BuiltCell, activations int) error {
	want := int32(0)
	for i := 0; ; i++ {
		got, err := s.Choice(cell.Chain.Selector)
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("cell %q: after %d activations shows choice %d, want %d", cell.Cell.Label, i, got, want)
		}
		if i == activations {
			return nil
		}
		if err := s.Activate(cell.Chain.Sensor); err != nil {
			return fmt.Errorf("cell %q: %w", cell.Cell.Label, err)
		}
		want = 1 - want
	}
}

// VerifyAll runs VerifyCell with two activations (A, B, A) on every cell.
func VerifyAll(ctx context.Context, sc *scene.Scene, cells []builder.BuiltCell) error {
	logger := ctxlog.FromContext(ctx)
	sim, err := New(sc)
	if err != nil {
		return err
	}
	for _, c := range cells {
		if err := sim.VerifyCell(c, 2); err != nil {
			return err
		}
	}
	logger.Info("Verify: Every cell alternates between its variants.", "cells", len(cells))
	return nil
}
