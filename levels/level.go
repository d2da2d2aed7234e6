package levels

import (
	"errors"
	"fmt"

	"github.com/milk9111/leveledit/common"
)

var (
	ErrOutOfRange = errors.New("levels: index out of range")
	ErrMalformed  = errors.New("levels: malformed level data")
)

// Offsets and default shapes used by the add/insert primitives.
var (
	DefaultOrigin = common.Pt(10, 10)
	DefaultSize   = 50.0
	VertexNudge   = common.Pt(10, 10)
	DefaultName   = "new_level"
)

type PickupKind int

const (
	PickupKey PickupKind = iota
	PickupFile
)

func (k PickupKind) Valid() bool { return k == PickupKey || k == PickupFile }

func (k PickupKind) String() string {
	switch k {
	case PickupKey:
		return "Key"
	case PickupFile:
		return "File"
	default:
		return fmt.Sprintf("PickupKind(%d)", int(k))
	}
}

type WallKind int

const (
	WallPlain WallKind = iota
	WallDoor
)

func (k WallKind) Valid() bool { return k == WallPlain || k == WallDoor }

func (k WallKind) String() string {
	switch k {
	case WallPlain:
		return "Wall"
	case WallDoor:
		return "Door"
	default:
		return fmt.Sprintf("WallKind(%d)", int(k))
	}
}

type ZoneKind int

const (
	ZoneEnd ZoneKind = iota
	ZoneDialogTrigger
	ZoneOneWay
	ZoneDanger
)

func (k ZoneKind) Valid() bool { return k >= ZoneEnd && k <= ZoneDanger }

func (k ZoneKind) String() string {
	switch k {
	case ZoneEnd:
		return "End"
	case ZoneDialogTrigger:
		return "DialogTrigger"
	case ZoneOneWay:
		return "OneWay"
	case ZoneDanger:
		return "Danger"
	default:
		return fmt.Sprintf("ZoneKind(%d)", int(k))
	}
}

// Start is the spawn pose. It always exists and cannot be removed.
type Start struct {
	Position common.Point
	Angle    float64 // degrees, clockwise on screen
}

// Pickup is a collectible. ID is the gameplay identity that doors refer to;
// it is unrelated to the pickup's position in Level.Pickups.
type Pickup struct {
	Kind     PickupKind
	ID       int
	Position common.Point
}

// Wall is an open polyline. KeyID only matters when Kind is WallDoor.
type Wall struct {
	Kind   WallKind
	KeyID  int
	Points []common.Point
}

// Zone is a closed polygon. Value is a dialog index for DialogTrigger and an
// angle for OneWay; other kinds ignore it.
type Zone struct {
	Kind   ZoneKind
	Value  float64
	Power  float64
	Points []common.Point
}

// DialogLine is one entry of a dialog script. The editor never reads these,
// it only carries them through load and save.
type DialogLine struct {
	Name    string `json:"name" msgpack:"name"`
	Message string `json:"message" msgpack:"message"`
}

// Level is the document being edited. Slice order is draw order only.
type Level struct {
	Name           string
	AuthorTime     float64
	FilesRequired  int
	Start          Start
	OnUnlockDialog int
	Pickups        []Pickup
	Walls          []Wall
	Zones          []Zone
	Dialogs        [][]DialogLine
}

// New returns an empty level with the start at the origin.
func New() *Level {
	return &Level{
		Name:    DefaultName,
		Pickups: []Pickup{},
		Walls:   []Wall{},
		Zones:   []Zone{},
	}
}

// AddPickup appends a key pickup at the default origin. The id is the pickup
// count before the append, so ids can repeat after deletions.
func (l *Level) AddPickup() int {
	l.Pickups = append(l.Pickups, Pickup{
		Kind:     PickupKey,
		ID:       len(l.Pickups),
		Position: DefaultOrigin,
	})
	return len(l.Pickups) - 1
}

// AddWall appends a plain wall with a single diagonal segment.
func (l *Level) AddWall() int {
	o := DefaultOrigin
	l.Walls = append(l.Walls, Wall{
		Kind: WallPlain,
		Points: []common.Point{
			o,
			o.Add(common.Pt(DefaultSize, DefaultSize)),
		},
	})
	return len(l.Walls) - 1
}

// AddZone appends an End zone shaped as an axis-aligned square.
func (l *Level) AddZone() int {
	o := DefaultOrigin
	l.Zones = append(l.Zones, Zone{
		Kind: ZoneEnd,
		Points: []common.Point{
			o,
			o.Add(common.Pt(DefaultSize, 0)),
			o.Add(common.Pt(DefaultSize, DefaultSize)),
			o.Add(common.Pt(0, DefaultSize)),
		},
	})
	return len(l.Zones) - 1
}

// PickupIndex returns the index of the first pickup with the given id, or -1.
func (l *Level) PickupIndex(id int) int {
	for i := range l.Pickups {
		if l.Pickups[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *Level) RemovePickup(i int) error {
	if i < 0 || i >= len(l.Pickups) {
		return fmt.Errorf("remove pickup %d: %w", i, ErrOutOfRange)
	}
	l.Pickups = append(l.Pickups[:i], l.Pickups[i+1:]...)
	return nil
}

func (l *Level) RemoveWall(i int) error {
	if i < 0 || i >= len(l.Walls) {
		return fmt.Errorf("remove wall %d: %w", i, ErrOutOfRange)
	}
	l.Walls = append(l.Walls[:i], l.Walls[i+1:]...)
	return nil
}

func (l *Level) RemoveZone(i int) error {
	if i < 0 || i >= len(l.Zones) {
		return fmt.Errorf("remove zone %d: %w", i, ErrOutOfRange)
	}
	l.Zones = append(l.Zones[:i], l.Zones[i+1:]...)
	return nil
}

func (l *Level) wallPoints(w, v int) ([]common.Point, error) {
	if w < 0 || w >= len(l.Walls) {
		return nil, fmt.Errorf("wall %d: %w", w, ErrOutOfRange)
	}
	pts := l.Walls[w].Points
	if v < 0 || v >= len(pts) {
		return nil, fmt.Errorf("wall %d vertex %d: %w", w, v, ErrOutOfRange)
	}
	return pts, nil
}

func (l *Level) zonePoints(z, v int) ([]common.Point, error) {
	if z < 0 || z >= len(l.Zones) {
		return nil, fmt.Errorf("zone %d: %w", z, ErrOutOfRange)
	}
	pts := l.Zones[z].Points
	if v < 0 || v >= len(pts) {
		return nil, fmt.Errorf("zone %d vertex %d: %w", z, v, ErrOutOfRange)
	}
	return pts, nil
}

// insertAdjacent places a nudged copy of pts[v] before or after it.
func insertAdjacent(pts []common.Point, v int, before bool) []common.Point {
	if before {
		return common.InsertPoint(pts, v, pts[v].Sub(VertexNudge))
	}
	return common.InsertPoint(pts, v+1, pts[v].Add(VertexNudge))
}

func (l *Level) InsertWallVertex(w, v int, before bool) error {
	pts, err := l.wallPoints(w, v)
	if err != nil {
		return err
	}
	l.Walls[w].Points = insertAdjacent(pts, v, before)
	return nil
}

func (l *Level) InsertZoneVertex(z, v int, before bool) error {
	pts, err := l.zonePoints(z, v)
	if err != nil {
		return err
	}
	l.Zones[z].Points = insertAdjacent(pts, v, before)
	return nil
}

// RemoveWallVertex drops one vertex. A wall down to its last vertex is
// removed entirely and removed reports true.
func (l *Level) RemoveWallVertex(w, v int) (removed bool, err error) {
	pts, err := l.wallPoints(w, v)
	if err != nil {
		return false, err
	}
	if len(pts) > 1 {
		l.Walls[w].Points = common.RemovePoint(pts, v)
		return false, nil
	}
	return true, l.RemoveWall(w)
}

// RemoveZoneVertex is RemoveWallVertex for zones.
func (l *Level) RemoveZoneVertex(z, v int) (removed bool, err error) {
	pts, err := l.zonePoints(z, v)
	if err != nil {
		return false, err
	}
	if len(pts) > 1 {
		l.Zones[z].Points = common.RemovePoint(pts, v)
		return false, nil
	}
	return true, l.RemoveZone(z)
}

func (l *Level) SetWallVertex(w, v int, p common.Point) error {
	if _, err := l.wallPoints(w, v); err != nil {
		return err
	}
	l.Walls[w].Points[v] = p
	return nil
}

func (l *Level) SetZoneVertex(z, v int, p common.Point) error {
	if _, err := l.zonePoints(z, v); err != nil {
		return err
	}
	l.Zones[z].Points[v] = p
	return nil
}

// Clone returns a deep copy.
func (l *Level) Clone() *Level {
	if l == nil {
		return nil
	}
	res := *l
	res.Pickups = make([]Pickup, len(l.Pickups))
	copy(res.Pickups, l.Pickups)
	res.Walls = make([]Wall, len(l.Walls))
	for i, w := range l.Walls {
		w.Points = common.ClonePoints(w.Points)
		res.Walls[i] = w
	}
	res.Zones = make([]Zone, len(l.Zones))
	for i, z := range l.Zones {
		z.Points = common.ClonePoints(z.Points)
		res.Zones[i] = z
	}
	if l.Dialogs != nil {
		res.Dialogs = make([][]DialogLine, len(l.Dialogs))
		for i, d := range l.Dialogs {
			res.Dialogs[i] = append([]DialogLine(nil), d...)
		}
	}
	return &res
}

// Equal compares two levels field by field. Nil and empty slices are equal.
func (l *Level) Equal(o *Level) bool {
	if l == nil || o == nil {
		return l == o
	}
	if l.Name != o.Name || l.AuthorTime != o.AuthorTime || l.FilesRequired != o.FilesRequired ||
		l.Start != o.Start || l.OnUnlockDialog != o.OnUnlockDialog {
		return false
	}
	if len(l.Pickups) != len(o.Pickups) || len(l.Walls) != len(o.Walls) ||
		len(l.Zones) != len(o.Zones) || len(l.Dialogs) != len(o.Dialogs) {
		return false
	}
	for i := range l.Pickups {
		if l.Pickups[i] != o.Pickups[i] {
			return false
		}
	}
	for i := range l.Walls {
		a, b := l.Walls[i], o.Walls[i]
		if a.Kind != b.Kind || a.KeyID != b.KeyID || !common.PointsEqual(a.Points, b.Points) {
			return false
		}
	}
	for i := range l.Zones {
		a, b := l.Zones[i], o.Zones[i]
		if a.Kind != b.Kind || a.Value != b.Value || a.Power != b.Power || !common.PointsEqual(a.Points, b.Points) {
			return false
		}
	}
	for i := range l.Dialogs {
		if len(l.Dialogs[i]) != len(o.Dialogs[i]) {
			return false
		}
		for j := range l.Dialogs[i] {
			if l.Dialogs[i][j] != o.Dialogs[i][j] {
				return false
			}
		}
	}
	return true
}
