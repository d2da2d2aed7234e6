package editor

import "github.com/milk9111/leveledit/common"

type DragMode int

const (
	DragNone DragMode = iota
	DragMove
	DragPan
)

// DragState is the gesture in progress. Anchor is the last screen point seen
// by a pan and is reset every step.
type DragState struct {
	Mode   DragMode
	Anchor common.Point
}

func (d *DragState) Begin(mode DragMode, at common.Point) {
	d.Mode = mode
	d.Anchor = at
}

func (d *DragState) End() {
	*d = DragState{}
}

func (d DragState) Active() bool { return d.Mode != DragNone }
