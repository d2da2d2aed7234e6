package levels

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/milk9111/leveledit/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLevel() *Level {
	l := New()
	l.Name = "warehouse"
	l.AuthorTime = 31.25
	l.FilesRequired = 2
	l.OnUnlockDialog = 3
	l.Start = Start{Position: common.Pt(-15.5, 42), Angle: 135.5}
	l.AddPickup()
	l.AddPickup()
	l.Pickups[1].Kind = PickupFile
	l.Pickups[1].Position = common.Pt(7.25, -3)
	l.AddWall()
	l.AddWall()
	l.Walls[1].Kind = WallDoor
	l.Walls[1].KeyID = 1
	l.Walls[1].Points = []common.Point{common.Pt(1, 2)}
	l.AddZone()
	l.AddZone()
	l.Zones[1].Kind = ZoneOneWay
	l.Zones[1].Value = 22.5
	l.Zones[1].Power = 0.75
	l.Dialogs = [][]DialogLine{{{Name: "Op", Message: "hi"}}, {}}
	return l
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatMsgpack} {
		t.Run(format.String(), func(t *testing.T) {
			for name, l := range map[string]*Level{"empty": New(), "sample": sampleLevel()} {
				data, err := Marshal(l, format)
				require.NoError(t, err)
				got, err := Unmarshal(data, format)
				require.NoError(t, err)
				assert.True(t, l.Equal(got), "%s did not round-trip", name)
			}
		})
	}
}

func TestJSONFieldNames(t *testing.T) {
	data, err := Marshal(sampleLevel(), FormatJSON)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{
		"files_required", "name", "author_time", "start_position", "start_angle",
		"pickups", "walls", "zones", "on_unlock_dialog", "dialogs",
	} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, []any{-15.5, 42.0}, raw["start_position"])

	pickup := raw["pickups"].([]any)[1].(map[string]any)
	assert.Equal(t, map[string]any{"kind": 1.0, "id": 1.0, "x": 7.25, "y": -3.0}, pickup)

	wall := raw["walls"].([]any)[0].(map[string]any)
	assert.Equal(t, []any{[]any{10.0, 10.0}, []any{60.0, 60.0}}, wall["points"])
	assert.Contains(t, wall, "key_id")

	zone := raw["zones"].([]any)[1].(map[string]any)
	assert.Equal(t, 22.5, zone["value"])
	assert.Equal(t, 0.75, zone["power"])
}

func TestEmptyCollectionsEncodeAsArrays(t *testing.T) {
	data, err := Marshal(&Level{}, FormatJSON)
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `"pickups": []`)
	assert.Contains(t, s, `"walls": []`)
	assert.Contains(t, s, `"zones": []`)
	assert.NotContains(t, s, "dialogs")
}

func TestDecodeLegacyZonesWithoutPower(t *testing.T) {
	// older level files carry no power field on zones
	src := `{
		"files_required": 0, "name": "new_level", "author_time": 0.0,
		"start_position": [0, 0], "start_angle": 0,
		"pickups": [{"kind": 0, "id": 0, "x": 10, "y": 10}],
		"walls": [{"kind": 0, "points": [[10, 10], [60, 60]], "key_id": 0}],
		"zones": [{"kind": 0, "points": [[10, 10], [60, 10], [60, 60], [10, 60]], "value": 0}],
		"on_unlock_dialog": 0
	}`
	l, err := Decode(strings.NewReader(src), FormatJSON)
	require.NoError(t, err)
	assert.Len(t, l.Pickups, 1)
	assert.Len(t, l.Walls, 1)
	require.Len(t, l.Zones, 1)
	assert.Equal(t, 0.0, l.Zones[0].Power)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"not_json":          `{"name": `,
		"no_start":          `{"pickups": []}`,
		"short_point":       `{"start_position": [0, 0], "walls": [{"kind": 0, "points": [[1]]}]}`,
		"long_point":        `{"start_position": [0, 0], "zones": [{"kind": 0, "points": [[1, 2, 3]]}]}`,
		"empty_wall":        `{"start_position": [0, 0], "walls": [{"kind": 0, "points": []}]}`,
		"bad_zone_kind":     `{"start_position": [0, 0], "zones": [{"kind": 7, "points": [[0, 0]]}]}`,
		"bad_pickup_kind":   `{"start_position": [0, 0], "pickups": [{"kind": 2, "id": 0, "x": 0, "y": 0}]}`,
		"wrong_point_shape": `{"start_position": [0, 0], "walls": [{"kind": 0, "points": [{"x": 1, "y": 2}]}]}`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Unmarshal([]byte(src), FormatJSON)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestEncodeDecodeStream(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleLevel(), FormatMsgpack))
	got, err := Decode(&buf, FormatMsgpack)
	require.NoError(t, err)
	assert.True(t, sampleLevel().Equal(got))
}

func TestMarshalEntity(t *testing.T) {
	l := sampleLevel()

	data, err := MarshalEntity(l.Walls[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind": 0, "key_id": 0, "points": [[10, 10], [60, 60]]}`, string(data))

	data, err = MarshalEntity(l.Start)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start_position": [-15.5, 42], "start_angle": 135.5}`, string(data))

	data, err = MarshalEntity(l.Pickups[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind": 1, "id": 1, "x": 7.25, "y": -3}`, string(data))

	_, err = MarshalEntity(42)
	assert.Error(t, err)
}
