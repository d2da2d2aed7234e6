package editor

import (
	"testing"

	"github.com/milk9111/leveledit/common"
	"github.com/milk9111/leveledit/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScriptBuildsLevel(t *testing.T) {
	src := `
w := editor.add_wall()
editor.select_wall_vertex(w, 1)
editor.insert_after()
editor.set_wall_kind(1)
editor.set_wall_key(5)

z := editor.add_zone()
editor.select_zone_vertex(z, 0)
editor.move(-23, 47)
editor.set_zone_kind(2)
editor.set_zone_value(90)
editor.set_zone_power(1.5)

p := editor.add_pickup()
editor.select_pickup(0)
editor.set_pickup_kind(1)
editor.set_pickup_id(7)

c := editor.counts()
editor.set_start_angle(c.walls*100 + c.zones*10 + c.pickups + 69)
`
	e := NewEngine(nil)
	require.NoError(t, RunScript(e, []byte(src)))

	lvl := e.Level()
	require.Len(t, lvl.Walls, 1)
	assert.Equal(t, levels.Wall{Kind: levels.WallDoor, KeyID: 5, Points: pts(10, 10, 60, 60, 70, 70)}, lvl.Walls[0])
	require.Len(t, lvl.Zones, 1)
	assert.Equal(t, levels.ZoneOneWay, lvl.Zones[0].Kind)
	assert.Equal(t, 90.0, lvl.Zones[0].Value)
	assert.Equal(t, 1.5, lvl.Zones[0].Power)
	assert.Equal(t, common.Pt(-20, 50), lvl.Zones[0].Points[0])
	assert.Equal(t, levels.Pickup{Kind: levels.PickupFile, ID: 7, Position: common.Pt(10, 10)}, lvl.Pickups[0])
	assert.Equal(t, 180.0, lvl.Start.Angle, "counts reported 1 wall, 1 zone, 1 pickup")
	assert.Equal(t, PickupSelection(7), e.Selection())
}

func TestRunScriptNoticesAreValues(t *testing.T) {
	src := `
failed := 0
if is_error(editor.remove()) { failed += 1 }
editor.add_wall()
editor.select_wall_vertex(0, 0)
if is_error(editor.set_wall_key(2)) { failed += 1 }
if is_error(editor.set_wall_kind(9)) { failed += 1 }
if is_error(editor.set_wall_kind(1)) { failed += 100 }
editor.set_start_angle(failed)
`
	e := NewEngine(nil)
	require.NoError(t, RunScript(e, []byte(src)))
	assert.Equal(t, 3.0, e.Level().Start.Angle)
	assert.Equal(t, levels.WallDoor, e.Level().Walls[0].Kind)
}

func TestRunScriptRecoversVMPanic(t *testing.T) {
	e := NewEngine(nil)
	err := RunScript(e, []byte("editor.add_wall()\nz := 0\nx := 10 / z"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "divide by zero")

	// the engine keeps what ran before the fault
	assert.Len(t, e.Level().Walls, 1)
	require.NoError(t, RunScript(e, []byte("editor.add_zone()")))
	assert.Len(t, e.Level().Zones, 1)
}

func TestRunScriptFailures(t *testing.T) {
	cases := map[string]string{
		"syntax":        `editor.add_wall(`,
		"bad_select":    `editor.select_wall_vertex(3, 0)`,
		"wrong_args":    `editor.move(1)`,
		"wrong_type":    `editor.set_pickup_id("x")`,
		"runtime_error": "z := 0\nx := 10 / z",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, RunScript(NewEngine(nil), []byte(src)))
		})
	}
}

func TestRunScriptGrid(t *testing.T) {
	e := NewEngine(nil)
	require.NoError(t, RunScript(e, []byte(`editor.set_grid(false, 25)`)))
	assert.False(t, e.Viewport().GridEnabled)
	assert.Equal(t, 25, e.Viewport().GridSize)
}
