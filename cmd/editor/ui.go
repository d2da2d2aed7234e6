package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/leveledit/editor"
	"golang.org/x/image/font/gofont/goregular"
)

// EditorActions are the commands the side panel can trigger.
type EditorActions struct {
	Load, Save, Copy                  func()
	AddPickup, AddWall, AddZone       func()
	InsertBefore, InsertAfter, Remove func()
	ToggleGrid, GridSize, StartAngle  func()
	ZoneKind, ZoneValue, ZonePower    func()
	WallKind, WallKey                 func()
	PickupKind, PickupID              func()
}

// EditorUI is the side panel plus the widgets whose state follows the
// editor.
type EditorUI struct {
	UI            *ebitenui.UI
	FileNameInput *widget.TextInput

	gridBtn *widget.Button
	// selection-dependent buttons
	vertexBtns []*widget.Button
	removeBtn  *widget.Button
	zoneBtns   []*widget.Button
	wallBtns   []*widget.Button
	keyBtn     *widget.Button
	pickupBtns []*widget.Button
}

func BuildEditorUI(panelWidth int, actions EditorActions) *EditorUI {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 13}
	ui.PrimaryTheme = newEditorTheme(&fontFace)
	theme := ui.PrimaryTheme

	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(4),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Left: 8, Right: 8, Bottom: 8}),
			),
		),
	)

	eui := &EditorUI{UI: ui}
	eui.FileNameInput = addFileSection(panel, theme, &fontFace, panelWidth-16, actions)

	addSection(panel, &fontFace, "Add")
	addButtonRow(panel, theme, &fontFace,
		namedAction{"Pickup (c)", actions.AddPickup},
		namedAction{"Wall (w)", actions.AddWall},
		namedAction{"Zone (z)", actions.AddZone},
	)

	addSection(panel, &fontFace, "Selection")
	eui.vertexBtns = addButtonRow(panel, theme, &fontFace,
		namedAction{"Before (1)", actions.InsertBefore},
		namedAction{"After (2)", actions.InsertAfter},
	)
	eui.removeBtn = addButtonRow(panel, theme, &fontFace, namedAction{"Remove (d)", actions.Remove})[0]

	addSection(panel, &fontFace, "View")
	viewBtns := addButtonRow(panel, theme, &fontFace,
		namedAction{"Grid: On", actions.ToggleGrid},
		namedAction{"Grid size (g)", actions.GridSize},
	)
	eui.gridBtn = viewBtns[0]
	addButtonRow(panel, theme, &fontFace, namedAction{"Start angle", actions.StartAngle})

	addSection(panel, &fontFace, "Zone")
	eui.zoneBtns = addButtonRow(panel, theme, &fontFace,
		namedAction{"Kind", actions.ZoneKind},
		namedAction{"Value", actions.ZoneValue},
		namedAction{"Power", actions.ZonePower},
	)

	addSection(panel, &fontFace, "Wall")
	wallBtns := addButtonRow(panel, theme, &fontFace,
		namedAction{"Kind", actions.WallKind},
		namedAction{"Door key", actions.WallKey},
	)
	eui.wallBtns = wallBtns[:1]
	eui.keyBtn = wallBtns[1]

	addSection(panel, &fontFace, "Pickup")
	eui.pickupBtns = addButtonRow(panel, theme, &fontFace,
		namedAction{"Kind", actions.PickupKind},
		namedAction{"Id", actions.PickupID},
	)

	// Root container: anchor layout
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	panel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		StretchVertical:    true,
	}
	root.AddChild(panel)
	ui.Container = root

	return eui
}

// Sync updates labels and enabled states to match the editor.
func (e *EditorUI) Sync(gridOn bool, en editor.Enablement) {
	label := "Grid: Off"
	if gridOn {
		label = "Grid: On"
	}
	if t := e.gridBtn.Text(); t != nil {
		t.Label = label
	}
	setEnabled(e.vertexBtns, en.InsertVertex)
	setEnabled([]*widget.Button{e.removeBtn}, en.Remove)
	setEnabled(e.zoneBtns, en.ZoneProps)
	setEnabled(e.wallBtns, en.WallProps)
	setEnabled([]*widget.Button{e.keyBtn}, en.WallKey)
	setEnabled(e.pickupBtns, en.PickupProps)
}

func setEnabled(btns []*widget.Button, enabled bool) {
	for _, b := range btns {
		b.GetWidget().Disabled = !enabled
	}
}
