package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreate(t *testing.T, s *Scene, kind Kind) Handle {
	t.Helper()
	h, err := s.CreateNode(kind)
	require.NoError(t, err)
	return h
}

func TestNew(t *testing.T) {
	s := New("shapeContainer")
	root, ok := s.Node(s.Root())
	require.True(t, ok)
	assert.Equal(t, KindTransform, root.Kind)
	assert.Equal(t, "shapeContainer", root.Name)
	assert.Equal(t, NoHandle, root.Parent)
	assert.Equal(t, 1, s.Len())
}

func TestAppendChild_Tree(t *testing.T) {
	s := New("root")
	a := mustCreate(t, s, KindTransform)
	b := mustCreate(t, s, KindShape)

	require.NoError(t, s.AppendChild(s.Root(), a))
	require.NoError(t, s.AppendChild(a, b))

	t.Run("second parent is rejected", func(t *testing.T) {
		assert.ErrorContains(t, s.AppendChild(s.Root(), b), "already has parent")
	})
	t.Run("root cannot be a child", func(t *testing.T) {
		assert.Error(t, s.AppendChild(a, s.Root()))
	})
	t.Run("cycle is rejected", func(t *testing.T) {
		c := mustCreate(t, s, KindTransform)
		d := mustCreate(t, s, KindTransform)
		require.NoError(t, s.AppendChild(c, d))
		assert.ErrorContains(t, s.AppendChild(d, c), "cycle")
	})
	t.Run("unknown handle", func(t *testing.T) {
		assert.Error(t, s.AppendChild(Handle(999), a))
	})
	t.Run("containment follows kinds", func(t *testing.T) {
		testCases := []struct {
			name   string
			parent Kind
			child  Kind
			ok     bool
		}{
			{"shape under transform", KindTransform, KindShape, true},
			{"sensor under switch", KindSwitch, KindTouchSensor, true},
			{"geometry under shape", KindShape, KindRectangle2D, true},
			{"font style under text", KindText, KindFontStyle, true},
			{"material under appearance", KindAppearance, KindMaterial, true},
			{"shape under shape", KindShape, KindShape, false},
			{"sensor under sequencer", KindIntegerSequencer, KindTouchSensor, false},
			{"material under transform", KindTransform, KindMaterial, false},
			{"geometry under switch", KindSwitch, KindRectangle2D, false},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				p := mustCreate(t, s, tc.parent)
				c := mustCreate(t, s, tc.child)
				err := s.AppendChild(p, c)
				if tc.ok {
					assert.NoError(t, err)
					return
				}
				assert.ErrorContains(t, err, "cannot be attached")
				view, _ := s.Node(c)
				assert.Equal(t, NoHandle, view.Parent)
			})
		}
	})

	view, _ := s.Node(a)
	assert.Equal(t, []Handle{b}, view.Children)
	assert.Equal(t, s.Root(), view.Parent)
}

func TestSetField_ReplacesInPlace(t *testing.T) {
	s := New("root")
	h := mustCreate(t, s, KindTransform)
	require.NoError(t, s.SetField(h, "translation", SFVec3f{1, 2, 0}))
	require.NoError(t, s.SetField(h, "scale", SFVec3f{0.3, 0.3, 0.3}))
	require.NoError(t, s.SetField(h, "translation", SFVec3f{4, 5, 0}))

	view, _ := s.Node(h)
	require.Len(t, view.Fields, 2)
	assert.Equal(t, "translation", view.Fields[0].Name)
	assert.Equal(t, SFVec3f{4, 5, 0}, view.Fields[0].Value)

	v, ok := s.Field(h, "scale")
	require.True(t, ok)
	assert.Equal(t, "0.3 0.3 0.3", v.String())
}

func TestSetName(t *testing.T) {
	s := New("root")
	h := mustCreate(t, s, KindSwitch)
	require.NoError(t, s.SetName(h, "ABChinSwitch"))
	require.NoError(t, s.SetName(h, "ABChinSwitch"))
	assert.Error(t, s.SetName(h, "Other"))
}

func TestSavepointRollback(t *testing.T) {
	s := New("root")
	keep := mustCreate(t, s, KindTransform)
	require.NoError(t, s.AppendChild(s.Root(), keep))
	_, err := s.AddRoute(keep, "a", keep, "b")
	require.NoError(t, err)

	sp := s.Savepoint()

	cell := mustCreate(t, s, KindTransform)
	sw := mustCreate(t, s, KindSwitch)
	require.NoError(t, s.AppendChild(cell, sw))
	require.NoError(t, s.AppendChild(s.Root(), cell))
	_, err = s.AddRoute(sw, FieldWhichChoice, sw, FieldWhichChoice)
	require.NoError(t, err)

	require.NoError(t, s.Rollback(sp))

	assert.Equal(t, 2, s.Len())
	assert.Len(t, s.Routes(), 1)
	root, _ := s.Node(s.Root())
	assert.Equal(t, []Handle{keep}, root.Children)

	// The arena is reusable after a rollback.
	again := mustCreate(t, s, KindShape)
	assert.Equal(t, Handle(2), again)
}

func TestRollback_DetachesSurvivingChild(t *testing.T) {
	s := New("root")
	orphan := mustCreate(t, s, KindShape)
	sp := s.Savepoint()

	holder := mustCreate(t, s, KindTransform)
	require.NoError(t, s.AppendChild(holder, orphan))
	require.NoError(t, s.Rollback(sp))

	view, _ := s.Node(orphan)
	assert.Equal(t, NoHandle, view.Parent)
	require.NoError(t, s.AppendChild(s.Root(), orphan))
}

func TestFreeze(t *testing.T) {
	s := New("root")
	h := mustCreate(t, s, KindShape)
	s.Freeze()
	assert.True(t, s.Frozen())

	_, err := s.CreateNode(KindShape)
	assert.True(t, errors.Is(err, ErrFrozen))
	assert.True(t, errors.Is(s.SetField(h, "x", SFBool(true)), ErrFrozen))
	assert.True(t, errors.Is(s.AppendChild(s.Root(), h), ErrFrozen))
	_, err = s.AddRoute(h, "a", h, "b")
	assert.True(t, errors.Is(err, ErrFrozen))
	assert.True(t, errors.Is(s.Rollback(Savepoint{}), ErrFrozen))
}

func TestWalkAndCount(t *testing.T) {
	s := New("root")
	for i := 0; i < 3; i++ {
		tr := mustCreate(t, s, KindTransform)
		sh := mustCreate(t, s, KindShape)
		require.NoError(t, s.AppendChild(tr, sh))
		require.NoError(t, s.AppendChild(s.Root(), tr))
	}
	// Detached nodes are not reachable.
	mustCreate(t, s, KindShape)

	assert.Equal(t, 3, s.Count(KindShape))
	assert.Equal(t, 4, s.Count(KindTransform))

	var depths []int
	s.Walk(func(n NodeView, depth int) bool {
		depths = append(depths, depth)
		return n.Kind != KindTransform || n.Handle == s.Root()
	})
	assert.Equal(t, []int{0, 1, 1, 1}, depths)
}

func TestCreateNode_UnknownKind(t *testing.T) {
	_, err := New("root").CreateNode(Kind(99))
	assert.Error(t, err)
	assert.Equal(t, "Unknown", Kind(99).String())
}
