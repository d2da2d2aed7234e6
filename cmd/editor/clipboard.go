package main

import (
	"github.com/milk9111/leveledit/levels"
	"github.com/milk9111/leveledit/logger"
	"golang.design/x/clipboard"
)

// initClipboard reports whether the system clipboard is usable. Headless
// sessions have none and copying is then disabled.
func initClipboard() bool {
	if err := clipboard.Init(); err != nil {
		logger.Log.WithError(err).Warn("clipboard unavailable")
		return false
	}
	return true
}

// copySelection puts the selected entity on the clipboard in the same JSON
// shape it has inside a level file.
func (g *Game) copySelection() {
	ent := g.engine.SelectedEntity()
	if ent == nil {
		g.setStatus("Copy: nothing selected")
		return
	}
	data, err := levels.MarshalEntity(ent)
	if err != nil {
		g.report(err)
		return
	}
	if !g.clipboard {
		g.setStatus("Copy: clipboard unavailable")
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.setStatus("Copied %s", g.engine.Selection())
}
