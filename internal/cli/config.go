package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/resizable/pkg/errors"
	"github.com/matzehuels/resizable/pkg/geom"
	"github.com/matzehuels/resizable/pkg/layout"
	"github.com/matzehuels/resizable/pkg/resize"
)

// =============================================================================
// Scenario File
// =============================================================================

// Scenario is a TOML description of a headless layout, engine options and
// scripted drags. Example:
//
//	[viewport]
//	width = 1280
//	height = 720
//
//	[element]
//	left = 100
//	top = 100
//	width = 200
//	height = 100
//
//	[parent]
//	width = 800
//	height = 600
//	flex = "row"
//
//	[options]
//	bounds = "parent"
//	grid = [10, 10]
//	max_width = "90%"
//	lock_aspect_ratio = true
//	enable = { top = false } # only the top handle is off
//
//	[[drag]]
//	direction = "bottomRight"
//	from = [300, 200]
//	moves = [[320, 210], [400, 260]]
type Scenario struct {
	Viewport sizeConfig     `toml:"viewport"`
	Element  rectConfig     `toml:"element"`
	Parent   *parentConfig  `toml:"parent"`
	Targets  []targetConfig `toml:"target"`
	Options  resize.Options `toml:"options"`
	Drags    []dragConfig   `toml:"drag"`
}

type sizeConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

func (s sizeConfig) size() geom.Size { return geom.Size{Width: s.Width, Height: s.Height} }

type rectConfig struct {
	Left   float64 `toml:"left"`
	Top    float64 `toml:"top"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

func (r rectConfig) rect() geom.Rect { return geom.RectFromSize(r.Left, r.Top, r.Width, r.Height) }

type parentConfig struct {
	rectConfig
	// Content overrides the parent's content box.
	Content *sizeConfig `toml:"content"`
	Flex    string      `toml:"flex"`
}

type targetConfig struct {
	rectConfig
	Selector string `toml:"selector"`
}

type dragConfig struct {
	Direction string      `toml:"direction"`
	From      geom.Pair   `toml:"from"`
	Moves     []geom.Pair `toml:"moves"`
	Button    string      `toml:"button"`
	Touch     bool        `toml:"touch"`

	// Viewport, when set, resizes the window before the first move.
	Viewport *sizeConfig `toml:"viewport"`
}

// button maps the TOML button name onto a resize.Button.
func (d dragConfig) button() (resize.Button, error) {
	switch strings.ToLower(d.Button) {
	case "", "primary", "left":
		return resize.ButtonPrimary, nil
	case "middle":
		return resize.ButtonMiddle, nil
	case "secondary", "right":
		return resize.ButtonSecondary, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidConfig, "unknown button %q", d.Button)
}

// =============================================================================
// Loading
// =============================================================================

// loadScenario reads and validates a scenario file. Unknown keys are
// rejected so typos don't silently fall back to defaults.
func loadScenario(path string) (*Scenario, error) {
	var sc Scenario
	md, err := toml.DecodeFile(path, &sc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := sc.validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return &sc, nil
}

func (sc *Scenario) validate() error {
	if sc.Viewport.Width <= 0 || sc.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must have a positive size")
	}
	if sc.Element.Width < 0 || sc.Element.Height < 0 {
		return fmt.Errorf("element size cannot be negative")
	}
	for i, t := range sc.Targets {
		if err := errors.ValidateSelector(t.Selector); err != nil {
			return fmt.Errorf("target %d: %w", i+1, err)
		}
	}
	for i, d := range sc.Drags {
		if _, err := geom.ParseDirection(d.Direction); err != nil {
			return fmt.Errorf("drag %d: %w", i+1, err)
		}
		if _, err := d.button(); err != nil {
			return fmt.Errorf("drag %d: %w", i+1, err)
		}
	}
	return nil
}

// scene builds the headless host described by the scenario.
func (sc *Scenario) scene() *layout.Scene {
	s := layout.NewScene(sc.Viewport.size(), sc.Element.rect())
	if sc.Options.Scale > 0 {
		s.WithScale(sc.Options.Scale)
	}
	if p := sc.Parent; p != nil {
		s.WithParent(p.rect()).WithFlex(layout.ParseFlexDirection(p.Flex))
		if p.Content != nil {
			s.WithContent(p.Content.size())
		}
	}
	for _, t := range sc.Targets {
		s.WithTarget(t.Selector, t.rect())
	}
	return s
}

// loadOptions reads only the [options] table of a scenario file.
func loadOptions(path string) (resize.Options, error) {
	var cfg struct {
		Options resize.Options `toml:"options"`
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return resize.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg.Options, nil
}
