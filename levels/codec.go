package levels

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/milk9111/leveledit/common"
	"github.com/vmihailenco/msgpack/v5"
)

// levelFile is the on-disk shape. Field names are read by the game and must
// not change; points are [x, y] arrays rather than objects.
type levelFile struct {
	FilesRequired  int            `json:"files_required" msgpack:"files_required"`
	Name           string         `json:"name" msgpack:"name"`
	AuthorTime     float64        `json:"author_time" msgpack:"author_time"`
	StartPosition  []float64      `json:"start_position" msgpack:"start_position"`
	StartAngle     float64        `json:"start_angle" msgpack:"start_angle"`
	Pickups        []pickupFile   `json:"pickups" msgpack:"pickups"`
	Walls          []wallFile     `json:"walls" msgpack:"walls"`
	Zones          []zoneFile     `json:"zones" msgpack:"zones"`
	OnUnlockDialog int            `json:"on_unlock_dialog" msgpack:"on_unlock_dialog"`
	Dialogs        [][]DialogLine `json:"dialogs,omitempty" msgpack:"dialogs,omitempty"`
}

type pickupFile struct {
	Kind int     `json:"kind" msgpack:"kind"`
	ID   int     `json:"id" msgpack:"id"`
	X    float64 `json:"x" msgpack:"x"`
	Y    float64 `json:"y" msgpack:"y"`
}

type wallFile struct {
	Kind   int         `json:"kind" msgpack:"kind"`
	KeyID  int         `json:"key_id" msgpack:"key_id"`
	Points [][]float64 `json:"points" msgpack:"points"`
}

type zoneFile struct {
	Kind   int         `json:"kind" msgpack:"kind"`
	Value  float64     `json:"value" msgpack:"value"`
	Power  float64     `json:"power" msgpack:"power"`
	Points [][]float64 `json:"points" msgpack:"points"`
}

func pointsToFile(pts []common.Point) [][]float64 {
	res := make([][]float64, len(pts))
	for i, p := range pts {
		res[i] = []float64{p.X(), p.Y()}
	}
	return res
}

func pointFromFile(raw []float64) (common.Point, error) {
	if len(raw) != 2 {
		return common.Point{}, fmt.Errorf("point %v: want [x, y]: %w", raw, ErrMalformed)
	}
	return common.Pt(raw[0], raw[1]), nil
}

func pointsFromFile(raw [][]float64) ([]common.Point, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty point list: %w", ErrMalformed)
	}
	res := make([]common.Point, len(raw))
	for i, r := range raw {
		p, err := pointFromFile(r)
		if err != nil {
			return nil, err
		}
		res[i] = p
	}
	return res, nil
}

func toFile(l *Level) *levelFile {
	f := &levelFile{
		FilesRequired:  l.FilesRequired,
		Name:           l.Name,
		AuthorTime:     l.AuthorTime,
		StartPosition:  []float64{l.Start.Position.X(), l.Start.Position.Y()},
		StartAngle:     l.Start.Angle,
		Pickups:        make([]pickupFile, len(l.Pickups)),
		Walls:          make([]wallFile, len(l.Walls)),
		Zones:          make([]zoneFile, len(l.Zones)),
		OnUnlockDialog: l.OnUnlockDialog,
		Dialogs:        l.Dialogs,
	}
	for i, p := range l.Pickups {
		f.Pickups[i] = pickupFile{Kind: int(p.Kind), ID: p.ID, X: p.Position.X(), Y: p.Position.Y()}
	}
	for i, w := range l.Walls {
		f.Walls[i] = wallFile{Kind: int(w.Kind), KeyID: w.KeyID, Points: pointsToFile(w.Points)}
	}
	for i, z := range l.Zones {
		f.Zones[i] = zoneFile{Kind: int(z.Kind), Value: z.Value, Power: z.Power, Points: pointsToFile(z.Points)}
	}
	return f
}

// fromFile converts and checks structure only: point shapes, non-empty
// point lists and kinds in range. Gameplay references are not checked.
func fromFile(f *levelFile) (*Level, error) {
	start, err := pointFromFile(f.StartPosition)
	if err != nil {
		return nil, fmt.Errorf("start_position: %w", err)
	}
	l := &Level{
		Name:           f.Name,
		AuthorTime:     f.AuthorTime,
		FilesRequired:  f.FilesRequired,
		Start:          Start{Position: start, Angle: f.StartAngle},
		OnUnlockDialog: f.OnUnlockDialog,
		Pickups:        make([]Pickup, len(f.Pickups)),
		Walls:          make([]Wall, len(f.Walls)),
		Zones:          make([]Zone, len(f.Zones)),
	}
	if len(f.Dialogs) > 0 {
		l.Dialogs = f.Dialogs
	}
	for i, p := range f.Pickups {
		kind := PickupKind(p.Kind)
		if !kind.Valid() {
			return nil, fmt.Errorf("pickups[%d]: kind %d: %w", i, p.Kind, ErrMalformed)
		}
		l.Pickups[i] = Pickup{Kind: kind, ID: p.ID, Position: common.Pt(p.X, p.Y)}
	}
	for i, w := range f.Walls {
		kind := WallKind(w.Kind)
		if !kind.Valid() {
			return nil, fmt.Errorf("walls[%d]: kind %d: %w", i, w.Kind, ErrMalformed)
		}
		pts, err := pointsFromFile(w.Points)
		if err != nil {
			return nil, fmt.Errorf("walls[%d]: %w", i, err)
		}
		l.Walls[i] = Wall{Kind: kind, KeyID: w.KeyID, Points: pts}
	}
	for i, z := range f.Zones {
		kind := ZoneKind(z.Kind)
		if !kind.Valid() {
			return nil, fmt.Errorf("zones[%d]: kind %d: %w", i, z.Kind, ErrMalformed)
		}
		pts, err := pointsFromFile(z.Points)
		if err != nil {
			return nil, fmt.Errorf("zones[%d]: %w", i, err)
		}
		l.Zones[i] = Zone{Kind: kind, Value: z.Value, Power: z.Power, Points: pts}
	}
	return l, nil
}

// Format selects a codec.
type Format int

const (
	FormatJSON Format = iota
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Marshal encodes the level in the given format. JSON is indented.
func Marshal(l *Level, format Format) ([]byte, error) {
	if l == nil {
		return nil, fmt.Errorf("marshal nil level: %w", ErrMalformed)
	}
	f := toFile(l)
	switch format {
	case FormatJSON:
		return json.MarshalIndent(f, "", "  ")
	case FormatMsgpack:
		return msgpack.Marshal(f)
	default:
		return nil, fmt.Errorf("marshal: unknown format %v", format)
	}
}

// Unmarshal decodes a level. The result is always a fresh value.
func Unmarshal(data []byte, format Format) (*Level, error) {
	var f levelFile
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("unmarshal level: %w: %v", ErrMalformed, err)
		}
	case FormatMsgpack:
		if err := msgpack.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("unmarshal level: %w: %v", ErrMalformed, err)
		}
	default:
		return nil, fmt.Errorf("unmarshal: unknown format %v", format)
	}
	return fromFile(&f)
}

func Encode(w io.Writer, l *Level, format Format) error {
	data, err := Marshal(l, format)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(data))
	return err
}

func Decode(r io.Reader, format Format) (*Level, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Unmarshal(data, format)
}

type startFile struct {
	StartPosition []float64 `json:"start_position"`
	StartAngle    float64   `json:"start_angle"`
}

// MarshalEntity encodes a single Start, Pickup, Wall or Zone as the JSON
// object it would be inside a level file.
func MarshalEntity(v any) ([]byte, error) {
	var out any
	switch e := v.(type) {
	case Start:
		out = startFile{StartPosition: []float64{e.Position.X(), e.Position.Y()}, StartAngle: e.Angle}
	case Pickup:
		out = pickupFile{Kind: int(e.Kind), ID: e.ID, X: e.Position.X(), Y: e.Position.Y()}
	case Wall:
		out = wallFile{Kind: int(e.Kind), KeyID: e.KeyID, Points: pointsToFile(e.Points)}
	case Zone:
		out = zoneFile{Kind: int(e.Kind), Value: e.Value, Power: e.Power, Points: pointsToFile(e.Points)}
	default:
		return nil, fmt.Errorf("marshal entity: unsupported type %T", v)
	}
	return json.MarshalIndent(out, "", "  ")
}
