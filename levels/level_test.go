package levels

import (
	"testing"

	"github.com/milk9111/leveledit/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDefaults(t *testing.T) {
	l := New()

	w := l.AddWall()
	require.Equal(t, 0, w)
	assert.Equal(t, WallPlain, l.Walls[0].Kind)
	assert.Equal(t, []common.Point{common.Pt(10, 10), common.Pt(60, 60)}, l.Walls[0].Points)

	z := l.AddZone()
	require.Equal(t, 0, z)
	assert.Equal(t, Zone{
		Kind:  ZoneEnd,
		Value: 0,
		Power: 0,
		Points: []common.Point{
			common.Pt(10, 10), common.Pt(60, 10), common.Pt(60, 60), common.Pt(10, 60),
		},
	}, l.Zones[0])

	p := l.AddPickup()
	require.Equal(t, 0, p)
	assert.Equal(t, Pickup{Kind: PickupKey, ID: 0, Position: common.Pt(10, 10)}, l.Pickups[0])
}

func TestPickupIDsFollowCount(t *testing.T) {
	l := New()
	l.AddPickup()
	l.AddPickup()
	l.AddPickup()
	require.NoError(t, l.RemovePickup(0))

	// ids 1 and 2 remain; the next id is the count, which collides with 2
	l.AddPickup()
	ids := []int{}
	for _, p := range l.Pickups {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{1, 2, 2}, ids)
	assert.Equal(t, 1, l.PickupIndex(2))
	assert.Equal(t, -1, l.PickupIndex(0))
}

func TestInsertVertex(t *testing.T) {
	cases := []struct {
		name   string
		vertex int
		before bool
		want   []common.Point
	}{
		{"after_last", 1, false, []common.Point{common.Pt(10, 10), common.Pt(60, 60), common.Pt(70, 70)}},
		{"after_first", 0, false, []common.Point{common.Pt(10, 10), common.Pt(20, 20), common.Pt(60, 60)}},
		{"before_first", 0, true, []common.Point{common.Pt(0, 0), common.Pt(10, 10), common.Pt(60, 60)}},
		{"before_last", 1, true, []common.Point{common.Pt(10, 10), common.Pt(50, 50), common.Pt(60, 60)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := New()
			l.AddWall()
			require.NoError(t, l.InsertWallVertex(0, c.vertex, c.before))
			assert.Equal(t, c.want, l.Walls[0].Points)

			l.AddZone()
			require.NoError(t, l.InsertZoneVertex(0, 0, c.before))
			assert.Len(t, l.Zones[0].Points, 5)
		})
	}
}

func TestInsertVertexOutOfRange(t *testing.T) {
	l := New()
	assert.ErrorIs(t, l.InsertWallVertex(0, 0, false), ErrOutOfRange)
	l.AddWall()
	assert.ErrorIs(t, l.InsertWallVertex(0, 2, false), ErrOutOfRange)
	assert.ErrorIs(t, l.InsertZoneVertex(0, 0, true), ErrOutOfRange)
}

func TestRemoveVertexCascades(t *testing.T) {
	l := New()
	l.AddWall()
	require.NoError(t, l.InsertWallVertex(0, 1, false))

	removed, err := l.RemoveWallVertex(0, 0)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, []common.Point{common.Pt(60, 60), common.Pt(70, 70)}, l.Walls[0].Points)

	removed, err = l.RemoveWallVertex(0, 0)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, []common.Point{common.Pt(70, 70)}, l.Walls[0].Points)

	removed, err = l.RemoveWallVertex(0, 0)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, l.Walls)
}

func TestRemoveZoneVertexCascades(t *testing.T) {
	l := New()
	l.AddZone()
	l.AddZone()
	for i := 0; i < 3; i++ {
		removed, err := l.RemoveZoneVertex(0, 0)
		require.NoError(t, err)
		require.False(t, removed)
	}
	require.Len(t, l.Zones[0].Points, 1)

	removed, err := l.RemoveZoneVertex(0, 0)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Len(t, l.Zones, 1)
	assert.Len(t, l.Zones[0].Points, 4)
}

func TestCloneAndEqual(t *testing.T) {
	l := New()
	l.AddWall()
	l.AddZone()
	l.AddPickup()
	l.Dialogs = [][]DialogLine{{{Name: "a", Message: "b"}}}

	c := l.Clone()
	require.True(t, l.Equal(c))

	c.Walls[0].Points[0] = common.Pt(-1, -1)
	assert.False(t, l.Equal(c))
	assert.Equal(t, common.Pt(10, 10), l.Walls[0].Points[0])

	c = l.Clone()
	c.Dialogs[0][0].Message = "changed"
	assert.False(t, l.Equal(c))

	c = l.Clone()
	c.Start.Angle = 45
	assert.False(t, l.Equal(c))

	assert.True(t, (&Level{}).Equal(&Level{Pickups: []Pickup{}}))
	assert.False(t, l.Equal(nil))
}

func TestKindValidity(t *testing.T) {
	assert.True(t, PickupFile.Valid())
	assert.False(t, PickupKind(2).Valid())
	assert.True(t, WallDoor.Valid())
	assert.False(t, WallKind(-1).Valid())
	assert.True(t, ZoneDanger.Valid())
	assert.False(t, ZoneKind(4).Valid())
	assert.Equal(t, "OneWay", ZoneOneWay.String())
	assert.Equal(t, "Door", WallDoor.String())
}
