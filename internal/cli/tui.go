package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/resizable/pkg/errors"
	"github.com/matzehuels/resizable/pkg/geom"
	"github.com/matzehuels/resizable/pkg/layout"
	"github.com/matzehuels/resizable/pkg/resize"
	"github.com/matzehuels/resizable/pkg/store"
	"github.com/matzehuels/resizable/pkg/unit"
)

const (
	// tuiHeaderRows are reserved for the title and status lines.
	tuiHeaderRows = 2

	// defaultStoreKey is where the TUI keeps its box size.
	defaultStoreKey = "tui:box"

	// screenSelector names the whole terminal as a bounds target.
	screenSelector = "screen"
)

// tuiDefaultSize is the box size when nothing was saved.
var tuiDefaultSize = unit.Size{Width: unit.Px(32), Height: unit.Px(8)}

// Box styles
var (
	boxIdleStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
	boxHoverStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorYellow)
	boxDragStyle  = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(colorCyan)
)

// =============================================================================
// Terminal Host
// =============================================================================

// termHost adapts the terminal to layout.Host. One cell is one pixel; the
// parent is the screen below the header.
type termHost struct {
	box    geom.Rect
	screen geom.Size
}

func (h *termHost) area() geom.Rect {
	return geom.Rect{Left: 0, Top: tuiHeaderRows, Right: h.screen.Width, Bottom: h.screen.Height}
}

func (h *termHost) Element() geom.Rect               { return h.box }
func (h *termHost) Parent() (geom.Rect, bool)        { return h.area(), true }
func (h *termHost) ParentContent() (geom.Size, bool) { return h.area().Size(), true }
func (h *termHost) Viewport() geom.Size              { return h.screen }
func (h *termHost) FlexDirection() layout.FlexDirection {
	return layout.FlexNone
}

func (h *termHost) Query(selector string) (geom.Rect, bool) {
	if selector == screenSelector {
		return geom.RectFromSize(0, 0, h.screen.Width, h.screen.Height), true
	}
	return geom.Rect{}, false
}

func (h *termHost) Apply(dir geom.Direction, size geom.Size) {
	h.box = h.box.Resize(dir, size)
}

var _ layout.Host = (*termHost)(nil)

// hitTest returns the handle under cell (x, y): corners first, then edges.
func hitTest(r geom.Rect, x, y float64) (geom.Direction, bool) {
	if x < r.Left || x > r.Right-1 || y < r.Top || y > r.Bottom-1 {
		return "", false
	}
	left, right := x == r.Left, x == r.Right-1
	top, bottom := y == r.Top, y == r.Bottom-1

	switch {
	case top && left:
		return geom.TopLeft, true
	case top && right:
		return geom.TopRight, true
	case bottom && left:
		return geom.BottomLeft, true
	case bottom && right:
		return geom.BottomRight, true
	case top:
		return geom.Top, true
	case bottom:
		return geom.Bottom, true
	case left:
		return geom.Left, true
	case right:
		return geom.Right, true
	}
	return "", false
}

// =============================================================================
// Model
// =============================================================================

// tuiModel is the bubbletea model for the resize playground. It is used by
// pointer so the engine's listener and binder can update it in place.
type tuiModel struct {
	ctx    context.Context
	logger *log.Logger
	store  store.Store
	key    string
	opts   resize.Options

	host   *termHost
	engine *resize.Engine

	pending []tea.Cmd
	hover   geom.Direction
	status  string
	err     error
}

// titleBinder marks the terminal title while a drag holds the pointer. The
// program already receives every mouse event, so there are no listeners to
// attach.
type titleBinder struct{ m *tuiModel }

func (b titleBinder) Bind() {
	b.m.pending = append(b.m.pending, tea.SetWindowTitle(appName+" (resizing)"))
}

func (b titleBinder) Unbind() {
	b.m.pending = append(b.m.pending, tea.SetWindowTitle(appName))
}

func newTUIModel(ctx context.Context, logger *log.Logger, st store.Store, key string, opts resize.Options) *tuiModel {
	m := &tuiModel{
		ctx:    ctx,
		logger: logger,
		store:  st,
		key:    key,
		host:   &termHost{},
		status: "drag a border or corner to resize",
	}

	opts.Logger = logger
	opts.Binder = titleBinder{m: m}
	opts.Listener = resize.Callbacks{
		Resize: func(e resize.ResizeEvent) {
			m.status = fmt.Sprintf("%s  %+g,%+g", e.Direction, e.Delta.Width, e.Delta.Height)
		},
		Stop: func(e resize.ResizeEvent) {
			m.status = fmt.Sprintf("resized %s by %+g,%+g", e.Direction, e.Delta.Width, e.Delta.Height)
			m.save(e.Size)
		},
	}
	if opts.MinWidth == (unit.Dimension{}) {
		opts.MinWidth = unit.Px(6)
	}
	if opts.MinHeight == (unit.Dimension{}) {
		opts.MinHeight = unit.Px(3)
	}
	if opts.Bounds.Mode == resize.BoundsNone {
		opts.Bounds = resize.Bounds{Mode: resize.BoundsParent}
	}
	if !opts.DefaultSize.IsSet() {
		opts.DefaultSize = tuiDefaultSize
	}
	if saved, ok, err := st.Load(ctx, key); err != nil {
		logger.Warn("could not load saved size", "key", key, "err", err)
	} else if ok {
		logger.Debug("restored size", "key", key, "size", saved)
		opts.DefaultSize = saved
	}
	m.opts = opts
	return m
}

func (m *tuiModel) save(size unit.Size) {
	if err := m.store.Save(m.ctx, m.key, size); err != nil {
		m.logger.Warn("could not save size", "key", m.key, "err", err)
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resizeScreen(msg.Width, msg.Height)
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.BlurMsg:
		if m.engine != nil {
			m.engine.DragEnd()
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.engine != nil {
				m.engine.DragEnd()
				m.save(m.engine.Size())
			}
			return m, tea.Quit
		case "r":
			if m.engine != nil && !m.engine.Dragging() {
				m.engine.UpdateSize(tuiDefaultSize)
				m.status = "reset to " + tuiDefaultSize.String()
			}
		}
	}

	cmds := m.pending
	m.pending = nil
	return m, tea.Batch(cmds...)
}

// resizeScreen tracks the terminal size. The engine is created on the first
// size message, once relative sizes have something to resolve against.
func (m *tuiModel) resizeScreen(w, h int) {
	m.host.screen = geom.Size{Width: float64(w), Height: float64(h)}
	if m.engine == nil {
		m.host.box = geom.RectFromSize(2, tuiHeaderRows+1, 1, 1)
		e, err := resize.New(m.host, m.opts)
		if err != nil {
			m.err = err
			return
		}
		m.engine = e
		return
	}
	if !m.engine.Dragging() {
		m.engine.UpdateSize(m.engine.Size())
	}
}

func (m *tuiModel) mouse(msg tea.MouseMsg) {
	if m.engine == nil {
		return
	}
	x, y := float64(msg.X), float64(msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		dir, ok := hitTest(m.host.box, x, y)
		if !ok {
			return
		}
		p := resize.Pointer{X: x, Y: y, Button: mouseButton(msg.Button)}
		if err := m.engine.DragStart(dir, p); err != nil {
			m.status = errors.UserMessage(err)
		}
	case tea.MouseActionMotion:
		if m.engine.Dragging() {
			m.engine.DragMove(resize.Pointer{X: x, Y: y})
			return
		}
		m.hover, _ = hitTest(m.host.box, x, y)
	case tea.MouseActionRelease:
		m.engine.DragEnd()
		m.hover, _ = hitTest(m.host.box, x, y)
	}
}

func mouseButton(b tea.MouseButton) resize.Button {
	switch b {
	case tea.MouseButtonLeft:
		return resize.ButtonPrimary
	case tea.MouseButtonMiddle:
		return resize.ButtonMiddle
	}
	return resize.ButtonSecondary
}

func (m *tuiModel) View() string {
	if m.err != nil {
		return styleIconError.Render(iconError) + " " + errors.UserMessage(m.err) + "\n"
	}
	if m.engine == nil {
		return ""
	}

	var b strings.Builder
	cursor := m.engine.Cursor()
	if !m.engine.Dragging() && m.hover != "" {
		cursor = m.hover.Cursor()
	}
	b.WriteString(StyleTitle.Render("resizable"))
	b.WriteString("  " + StyleValue.Render(m.engine.Size().String()))
	b.WriteString("  " + StyleDim.Render("cursor "+cursor+" · r reset · q quit"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(m.status))
	b.WriteString("\n")

	box := m.host.box
	for y := tuiHeaderRows; y < int(box.Top); y++ {
		b.WriteString("\n")
	}
	pad := strings.Repeat(" ", max(int(box.Left), 0))
	for _, line := range strings.Split(m.renderBox(), "\n") {
		b.WriteString(pad + line + "\n")
	}
	return b.String()
}

func (m *tuiModel) renderBox() string {
	style := boxIdleStyle
	switch {
	case m.engine.Dragging():
		style = boxDragStyle
	case m.hover != "":
		style = boxHoverStyle
	}

	px := m.engine.PixelSize()
	w, h := max(int(px.Width)-2, 0), max(int(px.Height)-2, 0)
	label := fmt.Sprintf("%gx%g", px.Width, px.Height)
	if len(label) > w {
		label = ""
	}
	return style.
		Width(w).
		Height(h).
		MaxHeight(h+2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(label)
}

// =============================================================================
// Command
// =============================================================================

// tuiCommand creates the tui command.
func (c *CLI) tuiCommand() *cobra.Command {
	var (
		sf      storeFlags
		key     string
		config  string
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Resize a box in the terminal with the mouse",
		Long: `Open a full-screen playground with one resizable box. Drag any border or
corner with the left mouse button. The box size is saved when a drag ends
and restored the next time.

Engine options can be read from the [options] table of a scenario file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := errors.ValidateKey(key); err != nil {
				return err
			}

			var opts resize.Options
			if config != "" {
				o, err := loadOptions(config)
				if err != nil {
					return err
				}
				opts = o
			}

			st, err := c.openStore(ctx, sf)
			if err != nil {
				return err
			}
			defer st.Close()

			restore, err := c.quietLogger(logFile)
			if err != nil {
				return err
			}
			defer restore()

			m := newTUIModel(ctx, c.Logger, st, key, opts)
			p := tea.NewProgram(m,
				tea.WithContext(ctx),
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				tea.WithReportFocus(),
			)
			_, err = p.Run()
			return err
		},
	}

	sf.register(cmd)
	cmd.Flags().StringVarP(&key, "key", "k", defaultStoreKey, "store key for the box size")
	cmd.Flags().StringVarP(&config, "config", "c", "", "scenario file to read [options] from")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the TUI runs")
	return cmd
}

// quietLogger keeps log output off the alternate screen: it goes to
// logFile when set and is dropped otherwise.
func (c *CLI) quietLogger(logFile string) (func(), error) {
	if logFile != "" {
		return fileLogger(c.Logger, logFile)
	}
	c.Logger.SetOutput(io.Discard)
	return func() { c.Logger.SetOutput(os.Stderr) }, nil
}
