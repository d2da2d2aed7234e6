package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/leveledit/common"
	"github.com/milk9111/leveledit/editor"
	"github.com/milk9111/leveledit/levels"
	"github.com/milk9111/leveledit/logger"
	"github.com/milk9111/leveledit/settings"
)

const statusTTL = 6 * time.Second

// Game is the ebiten front end. It turns input into engine calls and draws
// the engine's state; it holds no document state of its own.
type Game struct {
	engine       *editor.Engine
	settings     *settings.Settings
	settingsPath string

	ui     *EditorUI
	prompt *Prompt

	watcher   *settings.Watcher
	clipboard bool

	status   string
	statusAt time.Time

	pressed      bool
	rightPressed bool
}

func NewGame(engine *editor.Engine, s *settings.Settings, settingsPath string) *Game {
	g := &Game{
		engine:       engine,
		settings:     s,
		settingsPath: settingsPath,
		prompt:       NewPrompt(),
	}
	g.ui = BuildEditorUI(s.Window.PanelWidth, EditorActions{
		Load:         g.loadFromInput,
		Save:         g.saveFromInput,
		Copy:         g.copySelection,
		AddPickup:    func() { g.engine.AddPickup() },
		AddWall:      func() { g.engine.AddWall() },
		AddZone:      func() { g.engine.AddZone() },
		InsertBefore: func() { g.report(g.engine.InsertVertexBefore()) },
		InsertAfter:  func() { g.report(g.engine.InsertVertexAfter()) },
		Remove:       func() { g.report(g.engine.RemoveSelected()) },
		ToggleGrid:   func() { g.engine.ToggleGrid() },
		GridSize:     g.promptGridSize,
		StartAngle:   g.promptStartAngle,
		ZoneKind:     g.promptZoneKind,
		ZoneValue:    g.promptZoneValue,
		ZonePower:    g.promptZonePower,
		WallKind:     g.promptWallKind,
		WallKey:      g.promptWallKey,
		PickupKind:   g.promptPickupKind,
		PickupID:     g.promptPickupID,
	})
	g.ui.FileNameInput.SetText(engine.Path())
	return g
}

func (g *Game) panelWidth() int { return g.settings.Window.PanelWidth }

// setStatus shows a one-line message under the canvas for a few seconds.
func (g *Game) setStatus(format string, args ...any) {
	g.status = fmt.Sprintf(format, args...)
	g.statusAt = time.Now()
}

// report shows what went wrong with a command. Notices are expected and
// only shown; anything else is logged too.
func (g *Game) report(err error) {
	if err == nil {
		return
	}
	var n *editor.NoticeError
	if errors.As(err, &n) {
		g.setStatus("%s: %s", n.Title, n.Message)
		return
	}
	logger.Log.WithError(err).Warn("command failed")
	g.setStatus("Error: %v", err)
}

func (g *Game) textInputFocused() bool {
	if g.ui == nil {
		return false
	}
	if fw := g.ui.UI.GetFocusedWidget(); fw != nil {
		if _, ok := fw.(*widget.TextInput); ok {
			return true
		}
	}
	return false
}

func (g *Game) Update() error {
	g.drainWatcher()

	if g.prompt.Update() {
		return nil
	}

	g.ui.UI.Update()
	if !g.textInputFocused() {
		g.handleKeys()
	}
	g.handleMouse()

	g.ui.Sync(g.engine.Viewport().GridEnabled, g.engine.Enablement())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	g.drawCanvas(screen, g.panelWidth(), w, h)
	g.ui.UI.Draw(screen)
	g.prompt.Draw(screen, g.panelWidth()+16, h/2-32, w-g.panelWidth()-32)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *Game) loadFromInput() {
	path := strings.TrimSpace(g.ui.FileNameInput.GetText())
	if path == "" {
		g.setStatus("Load: type a file name first")
		return
	}
	path = levels.NormalizePath(path)
	if err := g.engine.Load(path); err != nil {
		g.report(err)
		return
	}
	g.watchDir(path)
	g.setStatus("Loaded %s", path)
}

func (g *Game) saveFromInput() {
	path := strings.TrimSpace(g.ui.FileNameInput.GetText())
	if path != "" {
		path = levels.NormalizePath(path)
	}
	if err := g.engine.Save(path); err != nil {
		g.report(err)
		return
	}
	g.ui.FileNameInput.SetText(g.engine.Path())
	g.watchDir(g.engine.Path())
	g.setStatus("Saved %s", g.engine.Path())
}

var errNotANumber = errors.New("not a number")

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errNotANumber
	}
	return n, nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errNotANumber
	}
	return f, nil
}

// promptInt opens the prompt for an integer. Parse errors keep the prompt
// open. Notices close it and go to the status line.
func (g *Game) promptInt(label, hint string, initial int, apply func(int) error) {
	g.prompt.Open(label, hint, strconv.Itoa(initial), func(s string) error {
		n, err := parseInt(s)
		if err != nil {
			return err
		}
		return g.applyPrompt(apply(n))
	})
}

func (g *Game) promptFloat(label, hint string, initial float64, apply func(float64) error) {
	g.prompt.Open(label, hint, strconv.FormatFloat(initial, 'g', -1, 64), func(s string) error {
		f, err := parseFloat(s)
		if err != nil {
			return err
		}
		return g.applyPrompt(apply(f))
	})
}

func (g *Game) applyPrompt(err error) error {
	if errors.Is(err, editor.ErrInvalidValue) {
		return err
	}
	g.report(err)
	return nil
}

// guardPrompt reports a missing selection up front instead of opening a
// prompt whose value would be rejected anyway.
func (g *Game) guardPrompt(ok bool, title, message string) bool {
	if !ok {
		g.setStatus("%s: %s", title, message)
	}
	return ok
}

func (g *Game) promptGridSize() {
	g.promptInt("Grid size:", "positive whole number of pixels", g.engine.Viewport().GridSize, g.engine.SetGridSize)
}

func (g *Game) promptStartAngle() {
	g.promptFloat("Start angle:", "degrees, 0 = right, clockwise", g.engine.Level().Start.Angle, g.engine.SetStartAngle)
}

func (g *Game) selectedZone() (levels.Zone, bool) {
	z, ok := g.engine.SelectedEntity().(levels.Zone)
	return z, ok
}

func (g *Game) selectedWall() (levels.Wall, bool) {
	w, ok := g.engine.SelectedEntity().(levels.Wall)
	return w, ok
}

func (g *Game) selectedPickup() (levels.Pickup, bool) {
	p, ok := g.engine.SelectedEntity().(levels.Pickup)
	return p, ok
}

func (g *Game) promptZoneKind() {
	z, ok := g.selectedZone()
	if !g.guardPrompt(ok, "Zone kind", "Select a zone vertex first.") {
		return
	}
	g.promptInt("Zone kind:", "0 End, 1 DialogTrigger, 2 OneWay, 3 Danger", int(z.Kind), func(k int) error {
		return g.engine.SetZoneKind(levels.ZoneKind(k))
	})
}

func (g *Game) promptZoneValue() {
	z, ok := g.selectedZone()
	if !g.guardPrompt(ok, "Zone value", "Select a zone vertex first.") {
		return
	}
	switch z.Kind {
	case levels.ZoneDialogTrigger:
		g.promptInt("Dialog index:", "which dialog this zone starts", int(z.Value), func(n int) error {
			return g.engine.SetZoneValue(float64(n))
		})
	case levels.ZoneOneWay:
		g.promptFloat("One-way angle:", "degrees the zone pushes towards", z.Value, g.engine.SetZoneValue)
	default:
		g.setStatus("Zone value: %s zones have no value", z.Kind)
	}
}

func (g *Game) promptZonePower() {
	z, ok := g.selectedZone()
	if !g.guardPrompt(ok, "Zone power", "Select a zone vertex first.") {
		return
	}
	g.promptFloat("Zone power:", "", z.Power, g.engine.SetZonePower)
}

func (g *Game) promptWallKind() {
	w, ok := g.selectedWall()
	if !g.guardPrompt(ok, "Wall kind", "Select a wall vertex first.") {
		return
	}
	g.promptInt("Wall kind:", "0 Wall, 1 Door", int(w.Kind), func(k int) error {
		return g.engine.SetWallKind(levels.WallKind(k))
	})
}

func (g *Game) promptWallKey() {
	w, ok := g.selectedWall()
	if !g.guardPrompt(ok, "Door key", "Select a wall vertex first.") {
		return
	}
	if w.Kind != levels.WallDoor {
		g.report(g.engine.SetWallKeyID(w.KeyID))
		return
	}
	g.promptInt("Door key id:", "pickup id that opens this door", w.KeyID, g.engine.SetWallKeyID)
}

func (g *Game) promptPickupKind() {
	p, ok := g.selectedPickup()
	if !g.guardPrompt(ok, "Pickup kind", "Select a pickup first.") {
		return
	}
	g.promptInt("Pickup kind:", "0 Key, 1 File", int(p.Kind), func(k int) error {
		return g.engine.SetPickupKind(levels.PickupKind(k))
	})
}

func (g *Game) promptPickupID() {
	p, ok := g.selectedPickup()
	if !g.guardPrompt(ok, "Pickup id", "Select a pickup first.") {
		return
	}
	g.promptInt("Pickup id:", "ids are not checked for duplicates", p.ID, g.engine.SetPickupID)
}

// canvasPoint converts a window position to canvas coordinates and reports
// whether it lies on the canvas rather than the side panel.
func (g *Game) canvasPoint(x, y int) (common.Point, bool) {
	return common.Pt(float64(x-g.panelWidth()), float64(y)), x >= g.panelWidth()
}
