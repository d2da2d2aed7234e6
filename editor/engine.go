package editor

import (
	"errors"
	"fmt"

	"github.com/milk9111/leveledit/common"
	"github.com/milk9111/leveledit/levels"
	"github.com/milk9111/leveledit/logger"
	"github.com/sirupsen/logrus"
)

// Engine owns the document being edited and every piece of editing state
// around it. All methods are meant to be called from one goroutine.
type Engine struct {
	level        *levels.Level
	view         Viewport
	sel          Selection
	drag         DragState
	pickDistance float64
	path         string
	dirty        bool
}

type Option func(*Engine)

func WithViewport(v Viewport) Option {
	return func(e *Engine) { e.view = v }
}

// WithPickDistance limits how far from a marker a press may land and still
// select it. Zero keeps it unlimited.
func WithPickDistance(d float64) Option {
	return func(e *Engine) { e.pickDistance = d }
}

func WithPath(path string) Option {
	return func(e *Engine) { e.path = path }
}

func NewEngine(lvl *levels.Level, opts ...Option) *Engine {
	if lvl == nil {
		lvl = levels.New()
	}
	e := &Engine{
		level: lvl,
		view:  DefaultViewport(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Level returns the live document. Callers must not keep it across Load.
func (e *Engine) Level() *levels.Level { return e.level }
func (e *Engine) Viewport() Viewport   { return e.view }
func (e *Engine) Selection() Selection { return e.sel }
func (e *Engine) Drag() DragState      { return e.drag }
func (e *Engine) Dirty() bool          { return e.dirty }
func (e *Engine) Path() string         { return e.path }

func (e *Engine) log(op string) *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{"op": op, "selection": e.sel.String()})
}

func (e *Engine) touch() { e.dirty = true }

// PrimaryPress selects whatever is under the point and starts a move drag.
func (e *Engine) PrimaryPress(screen common.Point) Selection {
	e.sel = HitTest(screen, e.level, e.view, e.pickDistance)
	e.drag.Begin(DragMove, screen)
	e.log("press").Debug("hit test")
	return e.sel
}

// PrimaryDrag moves the selection to the snapped world position under the
// point.
func (e *Engine) PrimaryDrag(screen common.Point) error {
	if e.drag.Mode != DragMove {
		return nil
	}
	e.drag.Anchor = screen
	return e.MoveSelection(e.view.Snap(e.view.ScreenToWorld(screen)))
}

func (e *Engine) PrimaryRelease() {
	if e.drag.Mode == DragMove {
		e.drag.End()
	}
}

func (e *Engine) SecondaryPress(screen common.Point) {
	e.drag.Begin(DragPan, screen)
}

func (e *Engine) SecondaryDrag(screen common.Point) {
	if e.drag.Mode != DragPan {
		return
	}
	e.drag.Anchor = e.view.PanStep(e.drag.Anchor, screen)
}

func (e *Engine) SecondaryRelease() {
	if e.drag.Mode == DragPan {
		e.drag.End()
	}
}

// Select replaces the selection after checking it refers to something in
// the document.
func (e *Engine) Select(sel Selection) error {
	ok := true
	switch sel.Kind {
	case SelectNone, SelectStart:
	case SelectPickup:
		i := e.pickupIndex(sel)
		ok = i >= 0
		sel = PickupAtSelection(sel.ID, i)
	case SelectWallVertex:
		ok = sel.Entity >= 0 && sel.Entity < len(e.level.Walls) &&
			sel.Vertex >= 0 && sel.Vertex < len(e.level.Walls[sel.Entity].Points)
	case SelectZoneVertex:
		ok = sel.Entity >= 0 && sel.Entity < len(e.level.Zones) &&
			sel.Vertex >= 0 && sel.Vertex < len(e.level.Zones[sel.Entity].Points)
	default:
		ok = false
	}
	if !ok {
		return fmt.Errorf("select %s: %w", sel, levels.ErrOutOfRange)
	}
	e.sel = sel
	return nil
}

func (e *Engine) ClearSelection() { e.sel = Selection{} }

// pickupIndex resolves a pickup selection. The recorded index wins while it
// still holds that id; otherwise the first pickup with the id.
func (e *Engine) pickupIndex(sel Selection) int {
	if sel.Entity >= 0 && sel.Entity < len(e.level.Pickups) && e.level.Pickups[sel.Entity].ID == sel.ID {
		return sel.Entity
	}
	return e.level.PickupIndex(sel.ID)
}

func (e *Engine) selectedPickup() (int, bool) {
	if e.sel.Kind != SelectPickup {
		return -1, false
	}
	i := e.pickupIndex(e.sel)
	return i, i >= 0
}

// SelectedPickupIndex reports which pickup the selection refers to.
func (e *Engine) SelectedPickupIndex() (int, bool) { return e.selectedPickup() }

func (e *Engine) selectedWall() (int, bool) {
	if e.sel.Kind != SelectWallVertex || e.sel.Entity < 0 || e.sel.Entity >= len(e.level.Walls) {
		return -1, false
	}
	return e.sel.Entity, true
}

func (e *Engine) selectedZone() (int, bool) {
	if e.sel.Kind != SelectZoneVertex || e.sel.Entity < 0 || e.sel.Entity >= len(e.level.Zones) {
		return -1, false
	}
	return e.sel.Entity, true
}

func (e *Engine) AddPickup() int {
	i := e.level.AddPickup()
	e.touch()
	e.log("add_pickup").WithField("id", e.level.Pickups[i].ID).Info("added pickup")
	return i
}

func (e *Engine) AddWall() int {
	i := e.level.AddWall()
	e.touch()
	e.log("add_wall").WithField("index", i).Info("added wall")
	return i
}

func (e *Engine) AddZone() int {
	i := e.level.AddZone()
	e.touch()
	e.log("add_zone").WithField("index", i).Info("added zone")
	return i
}

func (e *Engine) InsertVertexBefore() error { return e.insertVertex(true) }

func (e *Engine) InsertVertexAfter() error { return e.insertVertex(false) }

// insertVertex keeps the selection indices as they are, so inserting before
// leaves the new vertex selected.
func (e *Engine) insertVertex(before bool) error {
	var err error
	switch e.sel.Kind {
	case SelectWallVertex:
		err = e.level.InsertWallVertex(e.sel.Entity, e.sel.Vertex, before)
	case SelectZoneVertex:
		err = e.level.InsertZoneVertex(e.sel.Entity, e.sel.Vertex, before)
	default:
		return notice(ErrNothingSelected, "Insert vertex", "Select a wall or zone vertex first.")
	}
	if err != nil {
		return err
	}
	e.touch()
	e.log("insert_vertex").WithField("before", before).Info("inserted vertex")
	return nil
}

// RemoveSelected removes the selected pickup or vertex. A wall or zone that
// loses its last vertex is removed with it. The start cannot be removed.
func (e *Engine) RemoveSelected() error {
	entry := e.log("remove")
	switch e.sel.Kind {
	case SelectStart:
		entry.Debug("start cannot be removed")
		return nil
	case SelectPickup:
		i, ok := e.selectedPickup()
		if !ok {
			return fmt.Errorf("remove %s: %w", e.sel, levels.ErrOutOfRange)
		}
		if err := e.level.RemovePickup(i); err != nil {
			return err
		}
		entry.Info("removed pickup")
	case SelectWallVertex:
		removed, err := e.level.RemoveWallVertex(e.sel.Entity, e.sel.Vertex)
		if err != nil {
			return err
		}
		entry.WithField("entity_removed", removed).Info("removed wall vertex")
	case SelectZoneVertex:
		removed, err := e.level.RemoveZoneVertex(e.sel.Entity, e.sel.Vertex)
		if err != nil {
			return err
		}
		entry.WithField("entity_removed", removed).Info("removed zone vertex")
	default:
		return notice(ErrNothingSelected, "Remove", "Nothing is selected.")
	}
	e.sel = Selection{}
	e.touch()
	return nil
}

// MoveSelection puts the selected target at p. Callers snap p first. With
// nothing selected it does nothing.
func (e *Engine) MoveSelection(p common.Point) error {
	switch e.sel.Kind {
	case SelectNone:
		return nil
	case SelectStart:
		if e.level.Start.Position == p {
			return nil
		}
		e.level.Start.Position = p
	case SelectPickup:
		i, ok := e.selectedPickup()
		if !ok {
			return fmt.Errorf("move %s: %w", e.sel, levels.ErrOutOfRange)
		}
		if e.level.Pickups[i].Position == p {
			return nil
		}
		e.level.Pickups[i].Position = p
	case SelectWallVertex:
		if w, ok := e.selectedWall(); ok && e.sel.Vertex >= 0 && e.sel.Vertex < len(e.level.Walls[w].Points) &&
			e.level.Walls[w].Points[e.sel.Vertex] == p {
			return nil
		}
		if err := e.level.SetWallVertex(e.sel.Entity, e.sel.Vertex, p); err != nil {
			return err
		}
	case SelectZoneVertex:
		if z, ok := e.selectedZone(); ok && e.sel.Vertex >= 0 && e.sel.Vertex < len(e.level.Zones[z].Points) &&
			e.level.Zones[z].Points[e.sel.Vertex] == p {
			return nil
		}
		if err := e.level.SetZoneVertex(e.sel.Entity, e.sel.Vertex, p); err != nil {
			return err
		}
	}
	e.touch()
	return nil
}

func (e *Engine) ToggleGrid() bool {
	on := e.view.ToggleGrid()
	e.log("toggle_grid").WithField("enabled", on).Info("grid toggled")
	return on
}

func (e *Engine) SetGridSize(n int) error {
	if err := e.view.SetGridSize(n); err != nil {
		return err
	}
	e.log("grid_size").WithField("size", n).Info("grid size set")
	return nil
}

// SetViewport replaces the view, for example after settings are reloaded.
func (e *Engine) SetViewport(v Viewport) error {
	if v.GridSize <= 0 {
		return fmt.Errorf("grid size %d: %w", v.GridSize, ErrInvalidValue)
	}
	e.view = v
	return nil
}

func (e *Engine) SetPickDistance(d float64) { e.pickDistance = d }

// Enablement says which selection-dependent commands apply right now.
type Enablement struct {
	InsertVertex bool
	Remove       bool
	ZoneProps    bool
	WallProps    bool
	WallKey      bool
	PickupProps  bool
}

func (e *Engine) Enablement() Enablement {
	_, pickup := e.selectedPickup()
	wall, isWall := e.selectedWall()
	_, isZone := e.selectedZone()
	return Enablement{
		InsertVertex: isWall || isZone,
		Remove:       pickup || isWall || isZone,
		ZoneProps:    isZone,
		WallProps:    isWall,
		WallKey:      isWall && e.level.Walls[wall].Kind == levels.WallDoor,
		PickupProps:  pickup,
	}
}

// SelectedEntity returns the Start, Pickup, Wall or Zone owning the current
// selection, or nil.
func (e *Engine) SelectedEntity() any {
	switch e.sel.Kind {
	case SelectStart:
		return e.level.Start
	case SelectPickup:
		if i, ok := e.selectedPickup(); ok {
			return e.level.Pickups[i]
		}
	case SelectWallVertex:
		if w, ok := e.selectedWall(); ok {
			return e.level.Walls[w]
		}
	case SelectZoneVertex:
		if z, ok := e.selectedZone(); ok {
			return e.level.Zones[z]
		}
	}
	return nil
}

// Load replaces the document with the file at path. On failure nothing
// changes.
func (e *Engine) Load(path string) error {
	lvl, err := levels.LoadFile(path)
	if err != nil {
		e.log("load").WithError(err).Warn("load failed")
		return err
	}
	e.Replace(lvl, path)
	e.log("load").WithField("path", path).Info("level loaded")
	return nil
}

// Replace swaps in a document that was loaded elsewhere.
func (e *Engine) Replace(lvl *levels.Level, path string) {
	if lvl == nil {
		return
	}
	e.level = lvl
	e.sel = Selection{}
	e.drag.End()
	e.path = path
	e.dirty = false
}

var errNoPath = errors.New("no file name given")

// Save writes the document to path, or to the current path when empty.
func (e *Engine) Save(path string) error {
	if path == "" {
		path = e.path
	}
	if path == "" {
		return notice(errNoPath, "Save", "Choose a file name first.")
	}
	if err := levels.SaveFile(path, e.level); err != nil {
		e.log("save").WithError(err).Warn("save failed")
		return err
	}
	e.path = path
	e.dirty = false
	e.log("save").WithField("path", path).Info("level saved")
	return nil
}
