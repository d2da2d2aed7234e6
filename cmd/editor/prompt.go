package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Prompt is a modal single-line entry used by the property editors. Enter
// hands the text to the callback; Escape closes it and nothing changes.
// A callback that returns an error keeps the prompt open and shows it.
type Prompt struct {
	open    bool
	label   string
	hint    string
	input   string
	errMsg  string
	onEnter func(string) error
}

func NewPrompt() *Prompt { return &Prompt{} }

func (p *Prompt) IsOpen() bool { return p.open }

func (p *Prompt) Open(label, hint, initial string, onEnter func(string) error) {
	p.label = label
	p.hint = hint
	p.input = initial
	p.errMsg = ""
	p.onEnter = onEnter
	p.open = true
}

func (p *Prompt) Close() {
	*p = Prompt{}
}

// Update consumes keyboard input while open and reports whether it did.
func (p *Prompt) Update() bool {
	if !p.open {
		return false
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if r == '\n' || r == '\r' {
			continue
		}
		p.input += string(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(p.input) > 0 {
		p.input = p.input[:len(p.input)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.Close()
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		if p.onEnter == nil {
			p.Close()
			return true
		}
		if err := p.onEnter(p.input); err != nil {
			p.errMsg = err.Error()
			return true
		}
		p.Close()
	}
	return true
}

func (p *Prompt) Draw(screen *ebiten.Image, x, y, w int) {
	if !p.open {
		return
	}
	vector.FillRect(screen, float32(x), float32(y), float32(w), 64, color.RGBA{A: 0xcc}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), 64, 1, color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}, false)

	label := p.label
	if label == "" {
		label = "Input:"
	}
	ebitenutil.DebugPrintAt(screen, label+" "+p.input+"_", x+12, y+8)
	if p.hint != "" {
		ebitenutil.DebugPrintAt(screen, p.hint, x+12, y+26)
	}
	if p.errMsg != "" {
		ebitenutil.DebugPrintAt(screen, "! "+p.errMsg, x+12, y+44)
	} else {
		ebitenutil.DebugPrintAt(screen, "Enter to apply, Esc to cancel", x+12, y+44)
	}
}
