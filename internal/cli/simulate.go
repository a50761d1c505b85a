package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/resizable/pkg/errors"
	"github.com/matzehuels/resizable/pkg/geom"
	"github.com/matzehuels/resizable/pkg/resize"
	"github.com/matzehuels/resizable/pkg/unit"
)

// Output formats for simulate.
const (
	formatTable = "table"
	formatJSON  = "json"
)

// traceRow is one line of simulation output.
type traceRow struct {
	Drag      int            `json:"drag"`
	Step      string         `json:"step"`
	Direction geom.Direction `json:"direction"`
	Pointer   *geom.Point    `json:"pointer,omitempty"`
	Pixels    geom.Size      `json:"pixels"`
	Delta     geom.Delta     `json:"delta"`
	Size      unit.Size      `json:"size"`
	FlexBasis unit.Dimension `json:"flex_basis"`
	Changed   bool           `json:"changed"`
	Note      string         `json:"note,omitempty"`
}

// simulateCommand creates the simulate command.
func (c *CLI) simulateCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "simulate <scenario.toml>",
		Short: "Replay scripted drags against a headless layout",
		Long: `Replay the drags in a TOML scenario against a headless layout and print
one row per frame: the resolved pixel size, the delta from the drag origin,
and the size re-expressed in the unit the drag started in.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatTable && format != formatJSON {
				return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want table or json)", format)
			}
			sc, err := loadScenario(args[0])
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			rows, err := c.simulate(sc)
			if err != nil {
				return err
			}
			prog.done("Replayed scenario", "drags", len(sc.Drags), "frames", len(rows))

			if format == formatJSON {
				return writeTraceJSON(os.Stdout, rows)
			}
			fmt.Println(renderTrace(rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table or json")
	return cmd
}

// simulate runs every drag of sc through one engine. Tracked size carries
// over from one drag to the next, as it would on a page.
func (c *CLI) simulate(sc *Scenario) ([]traceRow, error) {
	scene := sc.scene()
	opts := sc.Options
	opts.Logger = c.Logger

	var rows []traceRow
	opts.Listener = resize.Callbacks{
		Stop: func(e resize.ResizeEvent) {
			c.Logger.Debug("resize stop", "direction", e.Direction, "dw", e.Delta.Width, "dh", e.Delta.Height)
		},
	}

	engine, err := resize.New(scene, opts)
	if err != nil {
		return nil, err
	}

	for i, d := range sc.Drags {
		n := i + 1
		dir := geom.Direction(d.Direction)
		button, _ := d.button()
		from := resize.Pointer{X: d.From.X, Y: d.From.Y, Button: button, Touch: d.Touch}

		if err := engine.DragStart(dir, from); err != nil {
			rows = append(rows, traceRow{Drag: n, Step: "start", Direction: dir, Note: errors.UserMessage(err)})
			continue
		}
		if !engine.Dragging() {
			rows = append(rows, traceRow{Drag: n, Step: "start", Direction: dir, Note: "ignored"})
			continue
		}
		origin, _ := engine.Origin()
		rows = append(rows, traceRow{
			Drag: n, Step: "start", Direction: dir,
			Pointer: &origin.Pointer, Pixels: origin.Size,
			Size: engine.Size(), FlexBasis: engine.FlexBasis(),
			Note: engine.Cursor(),
		})

		if d.Viewport != nil {
			scene.SetViewport(d.Viewport.size())
		}
		for j, m := range d.Moves {
			p := geom.Point{X: m.X, Y: m.Y}
			f, changed := engine.DragMove(resize.Pointer{X: p.X, Y: p.Y, Button: button, Touch: d.Touch})
			rows = append(rows, traceRow{
				Drag: n, Step: strconv.Itoa(j + 1), Direction: dir,
				Pointer: &p, Pixels: f.Pixels, Delta: f.Delta,
				Size: f.Size, FlexBasis: f.FlexBasis, Changed: changed,
			})
		}

		engine.DragEnd()
		final := engine.PixelSize()
		rows = append(rows, traceRow{
			Drag: n, Step: "stop", Direction: dir,
			Pixels: final, Delta: final.Sub(origin.Size),
			Size: engine.Size(), FlexBasis: engine.FlexBasis(),
		})
	}
	return rows, nil
}

// =============================================================================
// Output
// =============================================================================

func writeTraceJSON(w io.Writer, rows []traceRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if rows == nil {
		rows = []traceRow{}
	}
	return enc.Encode(rows)
}

// renderTrace renders rows as a lipgloss table.
func renderTrace(rows []traceRow) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)

	data := make([][]string, len(rows))
	for i, r := range rows {
		pointer := "-"
		if r.Pointer != nil {
			pointer = fmt.Sprintf("%g,%g", r.Pointer.X, r.Pointer.Y)
		}
		data[i] = []string{
			strconv.Itoa(r.Drag),
			r.Step,
			string(r.Direction),
			pointer,
			fmt.Sprintf("%gx%g", r.Pixels.Width, r.Pixels.Height),
			fmt.Sprintf("%+g,%+g", r.Delta.Width, r.Delta.Height),
			r.Size.String(),
			orDash(r.FlexBasis.String()),
			r.Note,
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Step", "Handle", "Pointer", "Pixels", "Delta", "Size", "Basis", "Note").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			r := rows[row]
			switch {
			case r.Step == "start" && r.Pointer == nil:
				return cell.Foreground(colorYellow)
			case r.Step == "start" || r.Step == "stop":
				return cell.Foreground(colorCyan)
			case !r.Changed:
				return cell.Foreground(colorDim)
			}
			return cell.Foreground(colorWhite)
		})
	return t.Render()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
