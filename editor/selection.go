package editor

import "fmt"

type SelectionKind int

const (
	SelectNone SelectionKind = iota
	SelectStart
	SelectPickup
	SelectWallVertex
	SelectZoneVertex
)

func (k SelectionKind) String() string {
	switch k {
	case SelectNone:
		return "none"
	case SelectStart:
		return "start"
	case SelectPickup:
		return "pickup"
	case SelectWallVertex:
		return "wall_vertex"
	case SelectZoneVertex:
		return "zone_vertex"
	default:
		return fmt.Sprintf("SelectionKind(%d)", int(k))
	}
}

// Selection is the single current target. Pickups are identified by gameplay
// id; Entity holds the index they were picked at, which decides between
// pickups sharing an id. Entity and Vertex address vertices.
type Selection struct {
	Kind   SelectionKind
	ID     int
	Entity int
	Vertex int
}

func StartSelection() Selection { return Selection{Kind: SelectStart} }

func PickupSelection(id int) Selection { return Selection{Kind: SelectPickup, ID: id} }

// PickupAtSelection selects the pickup with the given id at index i.
func PickupAtSelection(id, i int) Selection {
	return Selection{Kind: SelectPickup, ID: id, Entity: i}
}

func WallVertexSelection(w, v int) Selection {
	return Selection{Kind: SelectWallVertex, Entity: w, Vertex: v}
}

func ZoneVertexSelection(z, v int) Selection {
	return Selection{Kind: SelectZoneVertex, Entity: z, Vertex: v}
}

func (s Selection) None() bool { return s.Kind == SelectNone }

// IsVertex reports whether the selection is a wall or zone vertex.
func (s Selection) IsVertex() bool {
	return s.Kind == SelectWallVertex || s.Kind == SelectZoneVertex
}

func (s Selection) String() string {
	switch s.Kind {
	case SelectPickup:
		return fmt.Sprintf("pickup(id=%d)", s.ID)
	case SelectWallVertex:
		return fmt.Sprintf("wall[%d].points[%d]", s.Entity, s.Vertex)
	case SelectZoneVertex:
		return fmt.Sprintf("zone[%d].points[%d]", s.Entity, s.Vertex)
	default:
		return s.Kind.String()
	}
}
