// Package wiring implements the EventRoutingWirer: it creates a cell's
// interaction chain and connects it with exactly three routes.
//
//	TouchSensor.touchTime         -> BooleanTrigger.set_triggerTime
//	BooleanTrigger.triggerTrue    -> IntegerSequencer.next
//	IntegerSequencer.value_changed -> Switch.whichChoice
//
// The sequencer maps keys {0, 1} to values {1, 0}, so each activation flips
// the selector between its two choices.
package wiring

import (
	"fmt"

	"github.com/vk/landmarkgrid/internal/nodeid"
	"github.com/vk/landmarkgrid/internal/scene"
)

// Sequencer configuration shared by every chain.
var (
	SequencerKeys   = scene.MFFloat{0, 1}
	SequencerValues = scene.MFInt32{1, 0}
)

// Chain is the four nodes of one cell's interaction pattern.
type Chain struct {
	Sensor    scene.Handle
	Trigger   scene.Handle
	Sequencer scene.Handle
	Selector  scene.Handle
}

// Handle returns the chain node playing role.
func (c Chain) Handle(role nodeid.Role) scene.Handle {
	switch role {
	case nodeid.Sensor:
		return c.Sensor
	case nodeid.Selector:
		return c.Selector
	case nodeid.Sequencer:
		return c.Sequencer
	case nodeid.Trigger:
		return c.Trigger
	default:
		panic(fmt.Sprintf("chain has no node for role %v", role))
	}
}

func (c Chain) handles() []scene.Handle {
	return []scene.Handle{c.Sensor, c.Trigger, c.Sequencer, c.Selector}
}

// Wirer builds chains and guarantees no node is part of two of them.
type Wirer struct {
	used map[scene.Handle]struct{}
}

// NewWirer creates a wirer with no chains.
func NewWirer() *Wirer {
	return &Wirer{used: make(map[scene.Handle]struct{})}
}

// NewChain creates the sensor, trigger and sequencer for an existing
// selector. description becomes the sensor's tooltip.
func (w *Wirer) NewChain(sc scene.Context, selector scene.Handle, description string) (Chain, error) {
	ch := Chain{Selector: selector}

	var err error
	if ch.Sensor, err = sc.CreateNode(scene.KindTouchSensor); err != nil {
		return Chain{}, fmt.Errorf("creating touch sensor: %w", err)
	}
	if err = sc.SetField(ch.Sensor, "description", scene.SFString(description)); err != nil {
		return Chain{}, err
	}
	if ch.Trigger, err = sc.CreateNode(scene.KindBooleanTrigger); err != nil {
		return Chain{}, fmt.Errorf("creating boolean trigger: %w", err)
	}
	if ch.Sequencer, err = sc.CreateNode(scene.KindIntegerSequencer); err != nil {
		return Chain{}, fmt.Errorf("creating integer sequencer: %w", err)
	}
	if err = sc.SetField(ch.Sequencer, "key", SequencerKeys); err != nil {
		return Chain{}, err
	}
	if err = sc.SetField(ch.Sequencer, "keyValue", SequencerValues); err != nil {
		return Chain{}, err
	}
	return ch, nil
}

// Wire connects the chain with its three routes. It panics if any chain
// node already belongs to a wired chain.
func (w *Wirer) Wire(sc scene.Context, ch Chain) ([]scene.Route, error) {
	seen := make(map[scene.Handle]struct{}, 4)
	for _, h := range ch.handles() {
		if _, dup := seen[h]; dup {
			return nil, fmt.Errorf("chain uses node %d for more than one role", h)
		}
		seen[h] = struct{}{}
		if _, taken := w.used[h]; taken {
			panic(fmt.Sprintf("node %d is already part of a wired chain", h))
		}
	}

	links := []struct {
		src      scene.Handle
		srcField string
		dst      scene.Handle
		dstField string
	}{
		{ch.Sensor, scene.FieldTouchTime, ch.Trigger, scene.FieldSetTriggerTime},
		{ch.Trigger, scene.FieldTriggerTrue, ch.Sequencer, scene.FieldNext},
		{ch.Sequencer, scene.FieldValueChanged, ch.Selector, scene.FieldWhichChoice},
	}
	routes := make([]scene.Route, 0, len(links))
	for _, l := range links {
		r, err := sc.AddRoute(l.src, l.srcField, l.dst, l.dstField)
		if err != nil {
			return nil, fmt.Errorf("routing %s: %w", l.dstField, err)
		}
		routes = append(routes, r)
	}

	for h := range seen {
		w.used[h] = struct{}{}
	}
	return routes, nil
}

// Release forgets a chain whose nodes were discarded by a rollback, so the
// recycled handles can be wired again.
func (w *Wirer) Release(ch Chain) {
	for _, h := range ch.handles() {
		delete(w.used, h)
	}
}

// Chains returns how many chains are currently wired.
func (w *Wirer) Chains() int { return len(w.used) / 4 }
