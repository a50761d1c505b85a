package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/resizable/pkg/errors"
	"github.com/matzehuels/resizable/pkg/geom"
	"github.com/matzehuels/resizable/pkg/layout"
	"github.com/matzehuels/resizable/pkg/resize"
	"github.com/matzehuels/resizable/pkg/unit"
)

const testScenario = `
[viewport]
width = 1000
height = 800

[element]
left = 50
width = 100
height = 100

[parent]
width = 600
height = 400
flex = "row"

[[target]]
selector = "#canvas"
width = 300
height = 300

[options]
bounds = "parent"
grid = [10, 10]
max_width = "50%"
default_size = { width = 100 }

[[drag]]
direction = "right"
from = [150, 50]
moves = [[197, 50], [500, 50]]

[[drag]]
direction = "left"
button = "right"
from = [50, 50]

[[drag]]
direction = "bottom"
from = [100, 100]
moves = [[100, 100]]
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	sc, err := loadScenario(writeScenario(t, testScenario))
	if err != nil {
		t.Fatalf("loadScenario() error: %v", err)
	}

	if sc.Viewport.size() != (geom.Size{Width: 1000, Height: 800}) {
		t.Errorf("viewport = %+v", sc.Viewport)
	}
	if sc.Parent == nil || sc.Parent.Width != 600 || sc.Parent.Flex != "row" {
		t.Errorf("parent = %+v", sc.Parent)
	}
	if len(sc.Targets) != 1 || sc.Targets[0].Selector != "#canvas" {
		t.Errorf("targets = %+v", sc.Targets)
	}
	if sc.Options.Bounds.Mode != resize.BoundsParent {
		t.Errorf("bounds = %v, want parent", sc.Options.Bounds)
	}
	if sc.Options.Grid != (geom.Pair{X: 10, Y: 10}) {
		t.Errorf("grid = %+v", sc.Options.Grid)
	}
	if got := sc.Options.MaxWidth; got != unit.Percent(50) {
		t.Errorf("max_width = %v, want 50%%", got)
	}
	if got := sc.Options.DefaultSize.Width; got != unit.Px(100) {
		t.Errorf("default_size.width = %v, want 100px", got)
	}
	if len(sc.Drags) != 3 {
		t.Fatalf("got %d drags, want 3", len(sc.Drags))
	}
	if got := sc.Drags[0].Moves; len(got) != 2 || got[1] != (geom.Pair{X: 500, Y: 50}) {
		t.Errorf("moves = %+v", got)
	}
	if b, _ := sc.Drags[1].button(); b != resize.ButtonSecondary {
		t.Errorf("button = %v, want secondary", b)
	}
}

func TestLoadScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "unknown key",
			body: "[viewport]\nwidth = 10\nheight = 10\nwdith = 3\n",
			want: "unknown keys: viewport.wdith",
		},
		{
			name: "no viewport",
			body: "[element]\nwidth = 10\n",
			want: "viewport",
		},
		{
			name: "bad direction",
			body: "[viewport]\nwidth = 10\nheight = 10\n[[drag]]\ndirection = \"diagonal\"\n",
			want: "drag 1",
		},
		{
			name: "bad button",
			body: "[viewport]\nwidth = 10\nheight = 10\n[[drag]]\ndirection = \"right\"\nbutton = \"fourth\"\n",
			want: "unknown button",
		},
		{
			name: "syntax",
			body: "[viewport\n",
			want: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadScenario(writeScenario(t, tt.body))
			if err == nil {
				t.Fatal("loadScenario() should fail")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestScenarioScene(t *testing.T) {
	sc, err := loadScenario(writeScenario(t, testScenario))
	if err != nil {
		t.Fatal(err)
	}
	s := sc.scene()

	if got := s.Element(); got != geom.RectFromSize(50, 0, 100, 100) {
		t.Errorf("Element() = %+v", got)
	}
	if p, ok := s.Parent(); !ok || p.Width() != 600 {
		t.Errorf("Parent() = %+v, %v", p, ok)
	}
	if s.FlexDirection() != layout.FlexRow {
		t.Errorf("FlexDirection() = %v, want row", s.FlexDirection())
	}
	if _, ok := s.Query("#canvas"); !ok {
		t.Error("Query(#canvas) should find the target")
	}
}

func TestLoadOptionsEnable(t *testing.T) {
	opts, err := loadOptions(writeScenario(t, "[options]\nenable = { top = false }\n"))
	if err != nil {
		t.Fatalf("loadOptions() error: %v", err)
	}
	if opts.Enable.Enabled(geom.Top) {
		t.Error("top should be disabled")
	}
	for _, d := range []geom.Direction{geom.Right, geom.Bottom, geom.TopLeft} {
		if !opts.Enable.Enabled(d) {
			t.Errorf("%s should stay enabled", d)
		}
	}
}

func TestLoadOptions(t *testing.T) {
	opts, err := loadOptions(writeScenario(t, testScenario))
	if err != nil {
		t.Fatalf("loadOptions() error: %v", err)
	}
	if opts.Bounds.Mode != resize.BoundsParent || opts.Grid.X != 10 {
		t.Errorf("options = %+v", opts)
	}

	if _, err := loadOptions(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("loadOptions() on a missing file should fail")
	}
}
