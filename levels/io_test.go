package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"level.json", "level.msgpack", "nested/deeper/level.mpk"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, SaveFile(path, sampleLevel()))

			got, err := LoadFile(path)
			require.NoError(t, err)
			assert.True(t, sampleLevel().Equal(got))
		})
	}

	// temp files never survive a save
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, ".tmp", filepath.Ext(e.Name()), e.Name())
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.json")
	require.NoError(t, SaveFile(path, sampleLevel()))
	require.NoError(t, SaveFile(path, New()))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, New().Equal(got))
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"walls": [`), 0o644))
	_, err = LoadFile(bad)
	assert.ErrorIs(t, err, ErrMalformed)

	assert.Error(t, SaveFile("", New()))
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatForPath("a.json"))
	assert.Equal(t, FormatJSON, FormatForPath("a"))
	assert.Equal(t, FormatMsgpack, FormatForPath("a.MsgPack"))
	assert.Equal(t, FormatMsgpack, FormatForPath("dir/a.mpk"))
	assert.Equal(t, "a.json", NormalizePath("a"))
	assert.Equal(t, "a.mpk", NormalizePath("a.mpk"))
}

func TestBundledLevels(t *testing.T) {
	names := Bundled()
	assert.Equal(t, []string{"empty", "tutorial"}, names)

	for _, name := range names {
		lvl, err := LoadLevelFromFS(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, lvl.Name)
	}

	tut, err := LoadLevelFromFS("tutorial.json")
	require.NoError(t, err)
	assert.Len(t, tut.Pickups, 2)
	assert.Len(t, tut.Walls, 2)
	assert.Len(t, tut.Zones, 3)
	assert.Len(t, tut.Dialogs, 2)
	assert.Equal(t, WallDoor, tut.Walls[1].Kind)

	_, err = LoadLevelFromFS("nope")
	assert.Error(t, err)
}
