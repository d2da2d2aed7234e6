package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

type namedAction struct {
	label string
	run   func()
}

func addSection(parent *widget.Container, fontFace *text.Face, title string) {
	parent.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, fontFace, labelColor),
	))
}

// addButtonRow lays the actions out side by side and returns the buttons in
// the same order.
func addButtonRow(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, actions ...namedAction) []*widget.Button {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(4),
			),
		),
	)
	btns := make([]*widget.Button, 0, len(actions))
	for _, a := range actions {
		run := a.run
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(a.label, fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if run != nil {
					run()
				}
			}),
		)
		btns = append(btns, btn)
		row.AddChild(btn)
	}
	parent.AddChild(row)
	return btns
}

func addFileSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, width int, actions EditorActions) *widget.TextInput {
	addSection(parent, fontFace, "File")
	fileNameInput := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, 28),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(color.RGBA{245, 245, 245, 255}),
			Disabled: solidNineSlice(color.RGBA{200, 200, 200, 255}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     color.Black,
			Disabled: color.Gray{Y: 120},
			Caret:    color.Black,
		}),
		widget.TextInputOpts.Face(fontFace),
	)
	parent.AddChild(fileNameInput)
	addButtonRow(parent, theme, fontFace,
		namedAction{"Load", actions.Load},
		namedAction{"Save", actions.Save},
		namedAction{"Copy", actions.Copy},
	)
	return fileNameInput
}
