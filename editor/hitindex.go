package editor

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/leveledit/common"
	"github.com/milk9111/leveledit/levels"
)

// Marker radii in screen pixels. They match what the canvas draws.
const (
	StartMarkerRadius  = 5.0
	PickupMarkerRadius = 5.0
	VertexMarkerRadius = 3.0

	// StartGrabBox is the half-width of the square around the start that
	// selects it before any marker is considered.
	StartGrabBox = 10.0

	unlimitedPick = 1e9
	tieEpsilon    = 1e-9
)

// marker ranks break distance ties. The start marker ranks last so that it
// only wins when nothing else is as close.
const (
	rankPickup = iota
	rankWallVertex
	rankZoneVertex
	rankStart
)

type marker struct {
	sel    Selection
	rank   int
	entity int
	vertex int
}

// HitIndex is a static chipmunk space holding one circle per rendered
// marker, positioned in screen space.
type HitIndex struct {
	space   *cp.Space
	markers int
}

func BuildHitIndex(lvl *levels.Level, vp Viewport) *HitIndex {
	h := &HitIndex{space: cp.NewSpace()}

	h.add(vp.WorldToScreen(lvl.Start.Position), StartMarkerRadius, marker{rank: rankStart})
	for i, p := range lvl.Pickups {
		h.add(vp.WorldToScreen(p.Position), PickupMarkerRadius,
			marker{sel: PickupAtSelection(p.ID, i), rank: rankPickup, entity: i})
	}
	for w, wall := range lvl.Walls {
		for v, pt := range wall.Points {
			h.add(vp.WorldToScreen(pt), VertexMarkerRadius,
				marker{sel: WallVertexSelection(w, v), rank: rankWallVertex, entity: w, vertex: v})
		}
	}
	for z, zone := range lvl.Zones {
		for v, pt := range zone.Points {
			h.add(vp.WorldToScreen(pt), VertexMarkerRadius,
				marker{sel: ZoneVertexSelection(z, v), rank: rankZoneVertex, entity: z, vertex: v})
		}
	}
	return h
}

func (h *HitIndex) add(at common.Point, radius float64, m marker) {
	shape := cp.NewCircle(h.space.StaticBody, radius, cp.Vector{X: at.X(), Y: at.Y()})
	shape.UserData = m
	h.space.AddShape(shape)
	h.markers++
}

func (h *HitIndex) Len() int { return h.markers }

// Nearest returns the marker closest to the screen point. maxDistance <= 0
// means unlimited. Among markers at the same distance a pickup beats a wall
// vertex, which beats a zone vertex; then lower entity and vertex indices win.
// A hit on the start dot, or no hit, is reported as an empty selection.
func (h *HitIndex) Nearest(screen common.Point, maxDistance float64) Selection {
	if maxDistance <= 0 {
		maxDistance = unlimitedPick
	}
	at := cp.Vector{X: screen.X(), Y: screen.Y()}

	info := h.space.PointQueryNearest(at, maxDistance, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return Selection{}
	}

	best := info.Distance
	var tied []marker
	// every marker whose edge is within best of the point; the box is padded
	// by the largest marker radius so no candidate is missed
	bb := cp.NewBBForCircle(at, math.Max(best, 0)+StartMarkerRadius+tieEpsilon)
	h.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if shape.PointQuery(at).Distance > best+tieEpsilon {
			return
		}
		if m, ok := shape.UserData.(marker); ok {
			tied = append(tied, m)
		}
	}, nil)
	if len(tied) == 0 {
		if m, ok := info.Shape.UserData.(marker); ok {
			tied = append(tied, m)
		}
	}
	if len(tied) == 0 {
		return Selection{}
	}

	sort.Slice(tied, func(i, j int) bool {
		a, b := tied[i], tied[j]
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		if a.entity != b.entity {
			return a.entity < b.entity
		}
		return a.vertex < b.vertex
	})
	return tied[0].sel
}

// HitTest resolves a screen point to a selection. The start is checked first
// with a square grab box; otherwise the nearest marker wins.
func HitTest(screen common.Point, lvl *levels.Level, vp Viewport, maxDistance float64) Selection {
	start := vp.WorldToScreen(lvl.Start.Position)
	d := screen.Sub(start)
	if math.Abs(d.X()) < StartGrabBox && math.Abs(d.Y()) < StartGrabBox {
		return StartSelection()
	}
	return BuildHitIndex(lvl, vp).Nearest(screen, maxDistance)
}
