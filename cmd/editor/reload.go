package main

import (
	"path/filepath"

	"github.com/milk9111/leveledit/levels"
	"github.com/milk9111/leveledit/logger"
	"github.com/milk9111/leveledit/settings"
	"github.com/sirupsen/logrus"
)

func startWatcher(paths ...string) *settings.Watcher {
	dirs := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			dirs = append(dirs, filepath.Dir(p))
		}
	}
	w, err := settings.NewWatcher(settings.MatchExt(".yaml", ".yml", ".json", ".msgpack", ".mpk"), dirs...)
	if err != nil {
		logger.Log.WithError(err).Warn("hot reload disabled")
		return nil
	}
	return w
}

func (g *Game) watchDir(path string) {
	if g.watcher == nil || path == "" {
		return
	}
	if err := g.watcher.Add(filepath.Dir(path)); err != nil {
		logger.Log.WithError(err).WithField("path", path).Warn("watch failed")
	}
}

// drainWatcher applies pending file changes without blocking the frame.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.fileChanged(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			logger.Log.WithError(err).Warn("watcher error")
		default:
			return
		}
	}
}

func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	aa, err1 := filepath.Abs(a)
	bb, err2 := filepath.Abs(b)
	return err1 == nil && err2 == nil && aa == bb
}

func (g *Game) fileChanged(name string) {
	switch {
	case samePath(name, g.settingsPath):
		g.reloadSettings()
	case samePath(name, g.engine.Path()):
		g.reloadLevel()
	}
}

func (g *Game) reloadSettings() {
	s, err := settings.Load(g.settingsPath)
	if err != nil {
		logger.Log.WithError(err).Warn("settings reload failed")
		g.setStatus("Settings not reloaded: %v", err)
		return
	}
	// window and panel size only apply at startup
	s.Window = g.settings.Window
	g.settings = s
	g.applyViewSettings()
	g.setStatus("Settings reloaded")
}

// applyViewSettings pushes grid and pick settings into the engine. The pan
// is only taken from settings at startup.
func (g *Game) applyViewSettings() {
	vp := g.engine.Viewport()
	vp.GridEnabled = g.settings.Grid.Enabled
	vp.GridSize = g.settings.Grid.Size
	if err := g.engine.SetViewport(vp); err != nil {
		g.report(err)
	}
	g.engine.SetPickDistance(g.settings.PickDistance)
}

// reloadLevel picks up edits made outside the editor. Unsaved changes win;
// a file that matches the open document, such as our own save, is ignored.
func (g *Game) reloadLevel() {
	if !g.settings.AutoReload {
		return
	}
	path := g.engine.Path()
	entry := logger.Log.WithFields(logrus.Fields{"op": "reload", "path": path})
	lvl, err := levels.LoadFile(path)
	if err != nil {
		entry.WithError(err).Debug("reload skipped")
		return
	}
	if lvl.Equal(g.engine.Level()) {
		return
	}
	if g.engine.Dirty() {
		g.setStatus("%s changed on disk; keeping unsaved edits", filepath.Base(path))
		return
	}
	g.engine.Replace(lvl, path)
	entry.Info("level reloaded")
	g.setStatus("Reloaded %s", filepath.Base(path))
}
