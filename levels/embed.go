package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// LoadLevelFromFS loads one of the bundled levels by file name.
func LoadLevelFromFS(name string) (*Level, error) {
	name = NormalizePath(name)
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	lvl, err := Unmarshal(data, FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	return lvl, nil
}

// Bundled lists the bundled level names without extension.
func Bundled() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}
