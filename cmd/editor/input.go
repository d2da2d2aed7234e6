package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func ctrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

func (g *Game) handleKeys() {
	if ctrlPressed() {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyS):
			g.saveFromInput()
		case inpututil.IsKeyJustPressed(ebiten.KeyO):
			g.loadFromInput()
		case inpututil.IsKeyJustPressed(ebiten.KeyC):
			g.copySelection()
		}
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.report(g.engine.InsertVertexBefore())
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.report(g.engine.InsertVertexAfter())
	case inpututil.IsKeyJustPressed(ebiten.KeyD), inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		g.report(g.engine.RemoveSelected())
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		g.promptGridSize()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.engine.ToggleGrid()
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		g.engine.AddWall()
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		g.engine.AddZone()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.engine.AddPickup()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.engine.ClearSelection()
	}
}

// handleMouse forwards canvas gestures: left selects and drags, right pans.
// Presses that start over the side panel belong to the UI.
func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	pt, onCanvas := g.canvasPoint(mx, my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && onCanvas {
		g.pressed = true
		g.engine.PrimaryPress(pt)
	}
	if g.pressed {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			if pt != g.engine.Drag().Anchor {
				g.report(g.engine.PrimaryDrag(pt))
			}
		} else {
			g.pressed = false
			g.engine.PrimaryRelease()
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && onCanvas {
		g.rightPressed = true
		g.engine.SecondaryPress(pt)
	}
	if g.rightPressed {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
			g.engine.SecondaryDrag(pt)
		} else {
			g.rightPressed = false
			g.engine.SecondaryRelease()
		}
	}
}
