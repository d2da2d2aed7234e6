package editor

import (
	"fmt"

	"github.com/milk9111/leveledit/common"
)

// Viewport maps world coordinates to the canvas. Pan is a screen-space offset.
type Viewport struct {
	Pan         common.Point
	GridEnabled bool
	GridSize    int
}

func DefaultViewport() Viewport {
	return Viewport{
		Pan:         common.Pt(600, 300),
		GridEnabled: true,
		GridSize:    10,
	}
}

func (v Viewport) WorldToScreen(p common.Point) common.Point {
	return p.Add(v.Pan)
}

func (v Viewport) ScreenToWorld(p common.Point) common.Point {
	return p.Sub(v.Pan)
}

// Snap rounds both coordinates to the grid when snapping is on. Ties round
// to the even multiple.
func (v Viewport) Snap(p common.Point) common.Point {
	if !v.GridEnabled || v.GridSize <= 0 {
		return p
	}
	return common.Pt(
		common.RoundToMultiple(p.X(), v.GridSize),
		common.RoundToMultiple(p.Y(), v.GridSize),
	)
}

// PanStep shifts the pan by the distance from anchor to current and returns
// current, which is the anchor for the next step.
func (v *Viewport) PanStep(anchor, current common.Point) common.Point {
	v.Pan = v.Pan.Add(current.Sub(anchor))
	return current
}

func (v *Viewport) ToggleGrid() bool {
	v.GridEnabled = !v.GridEnabled
	return v.GridEnabled
}

func (v *Viewport) SetGridSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("grid size %d: %w", n, ErrInvalidValue)
	}
	v.GridSize = n
	return nil
}
