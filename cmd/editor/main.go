package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/leveledit/common"
	"github.com/milk9111/leveledit/editor"
	"github.com/milk9111/leveledit/levels"
	"github.com/milk9111/leveledit/logger"
	"github.com/milk9111/leveledit/settings"
)

func main() {
	settingsPath := flag.String("settings", "editor.yaml", "Settings file; embedded defaults fill in anything it leaves out")
	levelName := flag.String("level", "", "Level to open: a path, a name under levels_dir, or a bundled level")
	scriptPath := flag.String("script", "", "Optional tengo macro to run after the level is opened")
	flag.Parse()

	logger.Init()
	logger.Log.Info("Editor starting...")

	s, err := settings.Load(*settingsPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("load settings")
	}

	vp := editor.Viewport{
		Pan:         common.Pt(s.Pan.X, s.Pan.Y),
		GridEnabled: s.Grid.Enabled,
		GridSize:    s.Grid.Size,
	}
	engine := editor.NewEngine(nil, editor.WithViewport(vp), editor.WithPickDistance(s.PickDistance))

	if *levelName != "" {
		if err := openLevel(engine, *levelName, s.LevelsDir); err != nil {
			logger.Log.WithError(err).WithField("level", *levelName).Error("open level")
		}
	}

	if *scriptPath != "" {
		src, err := os.ReadFile(*scriptPath)
		if err != nil {
			logger.Log.WithError(err).Fatal("read script")
		}
		if err := editor.RunScript(engine, src); err != nil {
			logger.Log.WithError(err).Error("script failed")
		}
	}

	game := NewGame(engine, s, *settingsPath)
	game.clipboard = initClipboard()
	game.watcher = startWatcher(*settingsPath, engine.Path())
	defer func() {
		if game.watcher != nil {
			_ = game.watcher.Close()
		}
	}()

	ebiten.SetWindowSize(s.Window.Width+s.Window.PanelWidth, s.Window.Height)
	ebiten.SetWindowTitle(s.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		logger.Log.WithError(err).Fatal("editor exited")
	}
}

// openLevel tries the name as a path, then under levelsDir, then among the
// bundled levels. A bundled level gets a path under levelsDir so saving
// writes a real file.
func openLevel(engine *editor.Engine, name, levelsDir string) error {
	name = levels.NormalizePath(name)
	candidates := []string{name}
	if levelsDir != "" && !filepath.IsAbs(name) {
		candidates = append(candidates, filepath.Join(levelsDir, name))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return engine.Load(path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	lvl, err := levels.LoadLevelFromFS(filepath.Base(name))
	if err != nil {
		return err
	}
	engine.Replace(lvl, filepath.Join(levelsDir, filepath.Base(name)))
	logger.Log.WithField("level", name).Info("opened bundled level")
	return nil
}
