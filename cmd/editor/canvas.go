package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/leveledit/common"
	"github.com/milk9111/leveledit/editor"
	"github.com/milk9111/leveledit/levels"
	"golang.org/x/image/colornames"
)

const (
	startArrowLength = 24.0
	oneWayArrowLen   = 18.0
	minGridSpacing   = 8
)

// drawCanvas paints the level right of the side panel. Everything is drawn
// in canvas coordinates shifted by ox; the panel is drawn on top afterwards
// and hides whatever spills left.
func (g *Game) drawCanvas(screen *ebiten.Image, ox, w, h int) {
	c := g.settings.Colors
	screen.Fill(c.Background)

	vp := g.engine.Viewport()
	lvl := g.engine.Level()
	sel := g.engine.Selection()
	off := common.Pt(float64(ox), 0)
	at := func(p common.Point) (float32, float32) {
		s := vp.WorldToScreen(p).Add(off)
		return float32(s.X()), float32(s.Y())
	}

	if vp.GridEnabled {
		drawGrid(screen, vp, ox, w, h, c.Grid)
	}
	ax, ay := at(common.Point{})
	vector.StrokeLine(screen, ax-8, ay, ax+8, ay, 1, c.Origin, false)
	vector.StrokeLine(screen, ax, ay-8, ax, ay+8, 1, c.Origin, false)

	for zi, z := range lvl.Zones {
		clr := zoneColor(g, z.Kind)
		for _, seg := range common.Segments(z.Points, true) {
			x0, y0 := at(seg.A)
			x1, y1 := at(seg.B)
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, true)
		}
		cx, cy := at(common.Centroid(z.Points))
		switch z.Kind {
		case levels.ZoneDialogTrigger:
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("dialog %d", int(z.Value)), int(cx)-20, int(cy)-8)
		case levels.ZoneOneWay:
			d := common.Heading(z.Value).Mul(oneWayArrowLen)
			drawArrow(screen, cx, cy, float32(d.X()), float32(d.Y()), colornames.Orange)
		}
		for vi, p := range z.Points {
			x, y := at(p)
			g.drawMarker(screen, x, y, editor.VertexMarkerRadius, c.Marker, sel == editor.ZoneVertexSelection(zi, vi))
		}
	}

	for wi, wall := range lvl.Walls {
		clr := color.Color(c.Wall)
		if wall.Kind == levels.WallDoor {
			clr = c.Door
		}
		for _, seg := range common.Segments(wall.Points, false) {
			x0, y0 := at(seg.A)
			x1, y1 := at(seg.B)
			vector.StrokeLine(screen, x0, y0, x1, y1, 3, clr, true)
		}
		if wall.Kind == levels.WallDoor {
			x, y := at(wall.Points[0])
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("key %d", wall.KeyID), int(x)+6, int(y)+4)
		}
		for vi, p := range wall.Points {
			x, y := at(p)
			g.drawMarker(screen, x, y, editor.VertexMarkerRadius, c.Marker, sel == editor.WallVertexSelection(wi, vi))
		}
	}

	selPickup, hasPickup := g.engine.SelectedPickupIndex()
	for pi, p := range lvl.Pickups {
		clr := color.Color(c.PickupKey)
		if p.Kind == levels.PickupFile {
			clr = c.PickupFile
		}
		x, y := at(p.Position)
		g.drawMarker(screen, x, y, editor.PickupMarkerRadius, clr, hasPickup && pi == selPickup)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", p.ID), int(x)+7, int(y)-7)
	}

	sx, sy := at(lvl.Start.Position)
	d := common.Heading(lvl.Start.Angle).Mul(startArrowLength)
	drawArrow(screen, sx, sy, float32(d.X()), float32(d.Y()), c.Start)
	g.drawMarker(screen, sx, sy, editor.StartMarkerRadius, c.Start, sel.Kind == editor.SelectStart)

	g.drawStatus(screen, ox, w, h)
}

func drawGrid(screen *ebiten.Image, vp editor.Viewport, ox, w, h int, clr color.Color) {
	step := vp.GridSize
	for step < minGridSpacing {
		step *= 2
	}
	s := float64(step)
	startX := math.Mod(vp.Pan.X(), s)
	if startX < 0 {
		startX += s
	}
	for x := startX; x < float64(w-ox); x += s {
		fx := float32(x) + float32(ox)
		vector.StrokeLine(screen, fx, 0, fx, float32(h), 1, clr, false)
	}
	startY := math.Mod(vp.Pan.Y(), s)
	if startY < 0 {
		startY += s
	}
	for y := startY; y < float64(h); y += s {
		vector.StrokeLine(screen, float32(ox), float32(y), float32(w), float32(y), 1, clr, false)
	}
}

func (g *Game) drawMarker(screen *ebiten.Image, x, y float32, r float64, clr color.Color, selected bool) {
	vector.FillCircle(screen, x, y, float32(r), clr, true)
	if selected {
		vector.StrokeCircle(screen, x, y, float32(r)+3, 2, g.settings.Colors.Selected, true)
	}
}

func drawArrow(screen *ebiten.Image, x, y, dx, dy float32, clr color.Color) {
	ex, ey := x+dx, y+dy
	vector.StrokeLine(screen, x, y, ex, ey, 2, clr, true)
	// head: two short strokes at +-150 degrees from the shaft
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	ux, uy := dx/l, dy/l
	for _, s := range []float32{1, -1} {
		cos, sin := float32(-0.866), s*0.5
		hx := ux*cos - uy*sin
		hy := ux*sin + uy*cos
		vector.StrokeLine(screen, ex, ey, ex+hx*7, ey+hy*7, 2, clr, true)
	}
}

func zoneColor(g *Game, k levels.ZoneKind) color.Color {
	c := g.settings.Colors
	switch k {
	case levels.ZoneDialogTrigger:
		return c.ZoneDialog
	case levels.ZoneOneWay:
		return c.ZoneOneWay
	case levels.ZoneDanger:
		return c.ZoneDanger
	default:
		return c.ZoneEnd
	}
}

func (g *Game) drawStatus(screen *ebiten.Image, ox, w, h int) {
	vector.FillRect(screen, float32(ox), float32(h-22), float32(w-ox), 22, colornames.Black, false)

	vp := g.engine.Viewport()
	grid := "off"
	if vp.GridEnabled {
		grid = fmt.Sprintf("%d", vp.GridSize)
	}
	name := g.engine.Path()
	if name == "" {
		name = "(unsaved)"
	}
	if g.engine.Dirty() {
		name += " *"
	}
	info := fmt.Sprintf("%s | grid %s | %s", name, grid, g.engine.Selection())
	if g.status != "" && time.Since(g.statusAt) < statusTTL {
		info += " | " + g.status
	}
	ebitenutil.DebugPrintAt(screen, info, ox+6, h-19)
}
