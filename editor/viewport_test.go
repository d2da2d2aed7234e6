package editor

import (
	"testing"

	"github.com/milk9111/leveledit/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldScreenInverse(t *testing.T) {
	vp := DefaultViewport()
	p := common.Pt(-37.5, 12)
	assert.Equal(t, common.Pt(562.5, 312), vp.WorldToScreen(p))
	assert.Equal(t, p, vp.ScreenToWorld(vp.WorldToScreen(p)))
}

func TestSnap(t *testing.T) {
	vp := DefaultViewport()
	cases := []struct {
		name string
		in   common.Point
		want common.Point
	}{
		{"drag_target", common.Pt(23, 47), common.Pt(20, 50)},
		{"negative", common.Pt(-23, -47), common.Pt(-20, -50)},
		{"tie_to_even_down", common.Pt(25, 15), common.Pt(20, 20)},
		{"on_grid", common.Pt(30, -40), common.Pt(30, -40)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := vp.Snap(c.in)
			assert.Equal(t, c.want, got)
			assert.Equal(t, got, vp.Snap(got), "snap must be idempotent")
		})
	}

	vp.GridEnabled = false
	assert.Equal(t, common.Pt(23, 47), vp.Snap(common.Pt(23, 47)))
}

func TestSnapIdempotentAcrossSizes(t *testing.T) {
	for _, size := range []int{1, 3, 7, 10, 25} {
		vp := Viewport{GridEnabled: true, GridSize: size}
		for x := -50.0; x <= 50; x += 2.5 {
			p := common.Pt(x, x*0.37)
			once := vp.Snap(p)
			assert.Equal(t, once, vp.Snap(once), "size %d point %v", size, p)
		}
	}
}

func TestPanComposes(t *testing.T) {
	// one gesture split into many steps
	split := DefaultViewport()
	anchor := common.Pt(100, 100)
	for _, p := range []common.Point{common.Pt(103, 98), common.Pt(110, 90), common.Pt(125, 140)} {
		anchor = split.PanStep(anchor, p)
	}

	whole := DefaultViewport()
	whole.PanStep(common.Pt(100, 100), common.Pt(125, 140))
	assert.Equal(t, whole.Pan, split.Pan)

	// two gestures equal one gesture of the summed delta
	two := DefaultViewport()
	two.PanStep(common.Pt(0, 0), common.Pt(5, -3))
	two.PanStep(common.Pt(50, 50), common.Pt(42, 61))

	one := DefaultViewport()
	one.PanStep(common.Pt(0, 0), common.Pt(5-8, -3+11))
	assert.Equal(t, one.Pan, two.Pan)
}

func TestGridSettings(t *testing.T) {
	vp := DefaultViewport()
	assert.False(t, vp.ToggleGrid())
	assert.True(t, vp.ToggleGrid())

	require.NoError(t, vp.SetGridSize(25))
	assert.Equal(t, 25, vp.GridSize)
	assert.ErrorIs(t, vp.SetGridSize(0), ErrInvalidValue)
	assert.ErrorIs(t, vp.SetGridSize(-5), ErrInvalidValue)
	assert.Equal(t, 25, vp.GridSize)
}
