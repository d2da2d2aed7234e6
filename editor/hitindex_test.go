package editor

import (
	"testing"

	"github.com/milk9111/leveledit/common"
	"github.com/milk9111/leveledit/levels"
	"github.com/stretchr/testify/assert"
)

func TestHitTest(t *testing.T) {
	vp := DefaultViewport() // world origin at screen (600, 300)

	lvl := levels.New()
	lvl.AddWall() // (10,10) (60,60)
	lvl.AddZone() // (10,10) (60,10) (60,60) (10,60)
	lvl.Pickups = append(lvl.Pickups, levels.Pickup{ID: 7, Position: common.Pt(4, 4)})
	lvl.Pickups = append(lvl.Pickups, levels.Pickup{ID: 9, Position: common.Pt(-100, 0)})

	cases := []struct {
		name   string
		screen common.Point
		max    float64
		want   Selection
	}{
		{"start_box_beats_nearer_pickup", common.Pt(604, 304), 0, StartSelection()},
		{"start_box_is_square", common.Pt(609, 291), 0, StartSelection()},
		{"pickup", common.Pt(500, 301), 0, PickupAtSelection(9, 1)},
		{"wall_vertex", common.Pt(659, 361), 0, WallVertexSelection(0, 1)},
		{"zone_vertex", common.Pt(661, 309), 0, ZoneVertexSelection(0, 1)},
		{"wall_beats_zone_on_tie", common.Pt(611, 311), 0, WallVertexSelection(0, 0)},
		{"start_dot_nearest_is_none", common.Pt(600, 200), 0, Selection{}},
		{"beyond_pick_distance", common.Pt(900, 900), 20, Selection{}},
		{"within_pick_distance", common.Pt(665, 365), 20, WallVertexSelection(0, 1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, HitTest(c.screen, lvl, vp, c.max))
		})
	}
}

func TestHitTestFollowsPan(t *testing.T) {
	lvl := levels.New()
	lvl.AddPickup()

	vp := Viewport{Pan: common.Pt(-200, 50), GridEnabled: true, GridSize: 10}
	assert.Equal(t, PickupSelection(0), HitTest(common.Pt(-190, 60), lvl, vp, 0))
	assert.Equal(t, StartSelection(), HitTest(common.Pt(-195, 45), lvl, vp, 0))
}

func TestHitTestPrefersPickupOnTie(t *testing.T) {
	lvl := levels.New()
	lvl.Start.Position = common.Pt(-500, -500)
	lvl.Pickups = []levels.Pickup{
		{ID: 3, Position: common.Pt(20, 0)},
		{ID: 4, Position: common.Pt(20, 0)},
	}
	lvl.Walls = []levels.Wall{{Points: []common.Point{common.Pt(20, 0)}}}

	vp := Viewport{GridSize: 10}
	// pickups have the larger marker so they win even on the same spot
	assert.Equal(t, PickupSelection(3), HitTest(common.Pt(20, 0), lvl, vp, 0))
}

func TestHitIndexMarksEveryVertex(t *testing.T) {
	lvl := levels.New()
	lvl.AddWall()
	lvl.AddZone()
	lvl.AddPickup()
	lvl.Walls = append(lvl.Walls, levels.Wall{Points: []common.Point{common.Pt(300, 300)}})

	idx := BuildHitIndex(lvl, DefaultViewport())
	assert.Equal(t, 1+1+2+4+1, idx.Len())
	// a one-point wall still has a marker
	assert.Equal(t, WallVertexSelection(1, 0), idx.Nearest(common.Pt(900, 600), 0))
}
