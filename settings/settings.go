package settings

import (
	"embed"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed editor.yaml
var DefaultsFS embed.FS

const defaultsFile = "editor.yaml"

type Settings struct {
	Window       WindowSettings `yaml:"window"`
	Grid         GridSettings   `yaml:"grid"`
	Pan          PanSettings    `yaml:"pan"`
	PickDistance float64        `yaml:"pick_distance"`
	AutoReload   bool           `yaml:"autoreload"`
	LevelsDir    string         `yaml:"levels_dir"`
	Colors       ColorSettings  `yaml:"colors"`
}

type WindowSettings struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	PanelWidth int    `yaml:"panel_width"`
}

type GridSettings struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type PanSettings struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColorSettings struct {
	Background YAMLColor `yaml:"background"`
	Grid       YAMLColor `yaml:"grid"`
	Origin     YAMLColor `yaml:"origin"`
	Start      YAMLColor `yaml:"start"`
	PickupKey  YAMLColor `yaml:"pickup_key"`
	PickupFile YAMLColor `yaml:"pickup_file"`
	Wall       YAMLColor `yaml:"wall"`
	Door       YAMLColor `yaml:"door"`
	ZoneEnd    YAMLColor `yaml:"zone_end"`
	ZoneDialog YAMLColor `yaml:"zone_dialog"`
	ZoneOneWay YAMLColor `yaml:"zone_oneway"`
	ZoneDanger YAMLColor `yaml:"zone_danger"`
	Marker     YAMLColor `yaml:"marker"`
	Selected   YAMLColor `yaml:"selected"`
}

// Default returns the embedded settings.
func Default() (*Settings, error) {
	return Load("")
}

// Load decodes the embedded defaults and overlays the file at path on top.
// Keys missing from the file keep their default. A missing file is not an
// error; an empty path skips the overlay.
func Load(path string) (*Settings, error) {
	data, err := DefaultsFS.ReadFile(defaultsFile)
	if err != nil {
		return nil, fmt.Errorf("settings: load defaults: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("settings: unmarshal defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("settings: load %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &s); err != nil {
				return nil, fmt.Errorf("settings: unmarshal %s: %w", path, err)
			}
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) Validate() error {
	if s.Grid.Size <= 0 {
		return fmt.Errorf("settings: grid size must be positive, got %d", s.Grid.Size)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("settings: invalid window size %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.PickDistance < 0 {
		return fmt.Errorf("settings: pick_distance must not be negative")
	}
	return nil
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.Color
}

// RGBA falls back to opaque white when the color was never set.
func (c YAMLColor) RGBA() (r, g, b, a uint32) {
	if c.Color == nil {
		return color.White.RGBA()
	}
	return c.Color.RGBA()
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHex(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

func ParseHex(v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	var ch [4]uint8
	ch[3] = 255
	for i := 0; i < len(s)/2; i++ {
		n, err := parse(i * 2)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
		}
		ch[i] = n
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}
