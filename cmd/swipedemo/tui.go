package main

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction"
	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction/constants"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const (
	headerLines     = 2
	defaultColumns  = 60
	visibleMessages = 3
)

type frameMsg time.Time

type settingsErrMsg struct{ err error }

func nextFrame() tea.Cmd {
	return tea.Tick(constants.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type tuiModel struct {
	app      *inbox
	list     *tuiList
	listener *swipeaction.Listener
	animator *swipeaction.FrameAnimator
	cfg      *swipeaction.GeometryConfig
	lang     string
	status   string
	height   int
	now      func() time.Time
}

func newTUIModel(app *inbox, cfg *swipeaction.GeometryConfig, lang string) *tuiModel {
	adapter := swipeaction.NewAdapter(cfg).SetSwipeActionListener(app)
	list := newTUIList(adapter, defaultColumns, headerLines)
	for range app.items {
		list.append()
	}
	app.remove = list.remove

	animator := swipeaction.NewFrameAnimator()
	return &tuiModel{
		app:      app,
		list:     list,
		listener: adapter.Attach(list, animator),
		animator: animator,
		cfg:      cfg,
		lang:     lang,
		now:      time.Now,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return nextFrame()
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.columns = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m, m.handleKey(msg.String())

	case tea.MouseMsg:
		if ev, ok := m.pointerEvent(msg, m.now()); ok {
			m.listener.HandlePointer(ev)
		}

	case frameMsg:
		m.animator.Tick(time.Time(msg))
		return m, nextFrame()

	case settingsErrMsg:
		m.status = msg.err.Error()
	}

	return m, nil
}

func (m *tuiModel) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "esc", "ctrl+c":
		return tea.Quit
	case "f":
		m.cfg.SetFadeOut(!m.cfg.FadeOut())
	case "b":
		m.cfg.SetFixedBackgrounds(!m.cfg.FixedBackgrounds())
	case "d":
		m.cfg.SetDimBackgrounds(!m.cfg.DimBackgrounds())
	case "p":
		m.listener.SetEnabled(!m.listener.Enabled())
	}
	return nil
}

func (m *tuiModel) pointerEvent(msg tea.MouseMsg, now time.Time) (swipeaction.PointerEvent, bool) {
	var action swipeaction.PointerAction
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return swipeaction.PointerEvent{}, false
		}
		action = swipeaction.PointerDown
	case tea.MouseActionMotion:
		action = swipeaction.PointerMove
	case tea.MouseActionRelease:
		action = swipeaction.PointerUp
	default:
		return swipeaction.PointerEvent{}, false
	}

	x, y := m.list.pointer(msg.X, msg.Y)
	return swipeaction.PointerEvent{Action: action, X: x, Y: y, Time: now}, true
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m *tuiModel) View() string {
	var s strings.Builder
	theme := swipeaction.CurrentTheme()

	s.WriteString(titleStyle.Render("Inbox"))
	s.WriteString(helpStyle.Render(fmt.Sprintf("  %d messages", len(m.app.items))))
	s.WriteString("\n\n")

	for i, row := range m.list.rows {
		if row.lines() == 0 || i >= len(m.app.items) {
			continue
		}
		s.WriteString(m.renderRow(row, m.app.items[i], theme))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	for _, msg := range m.app.recent(visibleMessages) {
		s.WriteString(msg)
		s.WriteString("\n")
	}
	if m.status != "" {
		s.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.status))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render(fmt.Sprintf("drag rows with the mouse · f fade %s · b fixed %s · d dim %s · p pause %s · q quit",
		onOff(m.cfg.FadeOut()), onOff(m.cfg.FixedBackgrounds()), onOff(m.cfg.DimBackgrounds()), onOff(!m.listener.Enabled()))))

	return s.String()
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// renderRow draws the row content shifted by its translation over the
// visible zone background.
func (m *tuiModel) renderRow(row *tuiRow, label string, theme swipeaction.Theme) string {
	width := m.list.columns
	shift := cells(row.frame.x) + cells(row.content.x)
	content := padRunes(" "+label, width)

	var bg []rune
	var bgStyle lipgloss.Style
	bgOffset := 0
	if d := row.swipe.VisibleBackground(); d != swipeaction.DirectionNeutral {
		if b, ok := row.backgrounds[d]; ok && b.visible {
			bg = zoneRunes(swipeaction.DirectionLabel(d, m.lang), d, width)
			bgStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(swipeaction.ZoneColorHex(theme, d))).
				Foreground(hex(theme.IconColor)).
				Faint(b.dimmed)
			bgOffset = cells(row.frame.x) + cells(b.x)
		}
	}

	contentStyle := lipgloss.NewStyle().
		Background(hex(theme.RowColor)).
		Foreground(hex(theme.TextColor)).
		Faint(row.frame.alpha*row.content.alpha < 0.5)

	return composeLine(width, shift, content, bg, bgOffset, contentStyle.Render, bgStyle.Render)
}

// composeLine lays out one terminal line: content cells moved by shift, and
// where the content has moved away, the background cells at bgOffset.
func composeLine(width, shift int, content, bg []rune, bgOffset int, contentStyle, bgStyle func(...string) string) string {
	revealed := func(from, to int) string {
		out := make([]rune, 0, to-from)
		for i := from; i < to; i++ {
			j := i - bgOffset
			if j >= 0 && j < len(bg) {
				out = append(out, bg[j])
			} else {
				out = append(out, ' ')
			}
		}
		if len(bg) == 0 {
			return string(out)
		}
		return bgStyle(string(out))
	}

	shift = max(-width, min(width, shift))
	switch {
	case shift > 0:
		return revealed(0, shift) + contentStyle(string(content[:width-shift]))
	case shift < 0:
		return contentStyle(string(content[-shift:])) + revealed(width+shift, width)
	default:
		return contentStyle(string(content))
	}
}

// zoneRunes places the zone label against the edge the row uncovers.
func zoneRunes(label string, d swipeaction.Direction, width int) []rune {
	text := " " + label + " "
	if d.IsRight() {
		return padRunes(text, width)
	}
	r := []rune(text)
	if len(r) > width {
		r = r[:width]
	}
	return append([]rune(strings.Repeat(" ", width-len(r))), r...)
}

func padRunes(s string, width int) []rune {
	r := []rune(s)
	if len(r) >= width {
		return r[:width]
	}
	return append(r, []rune(strings.Repeat(" ", width-len(r)))...)
}

func cells(px float64) int {
	return int(math.Round(px / cellWidth))
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the demo in the terminal (default)",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := applyTheme(opts.theme); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	reloadErrs := make(chan error, 1)
	cfg, err := buildConfig(ctx, cmd, opts, func(err error) {
		select {
		case reloadErrs <- err:
		default:
		}
	})
	if err != nil {
		return err
	}

	model := newTUIModel(newInbox(sampleItems(opts.rows), opts.lang), cfg, opts.lang)
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		for {
			select {
			case err := <-reloadErrs:
				program.Send(settingsErrMsg{err: err})
			case <-ctx.Done():
				return
			}
		}
	}()

	_, err = program.Run()
	return err
}
