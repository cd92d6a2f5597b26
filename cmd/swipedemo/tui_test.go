package main

import (
	"strings"
	"testing"
	"time"

	"github.com/BrandonKowalski/swipeaction/pkg/swipeaction"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func newTestModel(t *testing.T, items ...string) (*tuiModel, *testClock) {
	t.Helper()
	clock := &testClock{t: time.Unix(1700000000, 0)}
	m := newTUIModel(newInbox(items, "en"), swipeaction.NewGeometryConfig(), "en")
	m.now = clock.now
	return m, clock
}

// drag presses on a row, moves to toColumn over a few frames, holds still
// and releases, then lets every animation finish.
func drag(m *tuiModel, clock *testClock, row, fromColumn, toColumn int) {
	line := headerLines + row
	step := func(msg tea.Msg) {
		clock.t = clock.t.Add(16 * time.Millisecond)
		m.Update(msg)
	}

	step(tea.MouseMsg{X: fromColumn, Y: line, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	for i := 1; i <= 4; i++ {
		col := fromColumn + (toColumn-fromColumn)*i/4
		step(tea.MouseMsg{X: col, Y: line, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	}
	for i := 0; i < 8; i++ {
		step(tea.MouseMsg{X: toColumn, Y: line, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	}
	step(tea.MouseMsg{X: toColumn, Y: line, Action: tea.MouseActionRelease})

	for i := 0; i < 100 && m.animator.Active() > 0; i++ {
		clock.t = clock.t.Add(16 * time.Millisecond)
		m.Update(frameMsg(clock.t))
	}
}

func TestTUIFarLeftDeletes(t *testing.T) {
	m, clock := newTestModel(t, "a", "b", "c")

	drag(m, clock, 1, 50, 10)

	assert.Equal(t, []string{"a", "c"}, m.app.items)
	assert.Len(t, m.list.rows, 2)
	require.NotEmpty(t, m.app.messages)
	assert.Equal(t, "Far left swipe action triggered on b", m.app.messages[0])
}

func TestTUINormalLeftIsDeclined(t *testing.T) {
	m, clock := newTestModel(t, "a", "b", "c")

	drag(m, clock, 0, 50, 30)

	assert.Equal(t, []string{"a", "b", "c"}, m.app.items)
	assert.Equal(t, []string{"Left swipe on a was declined"}, m.app.messages)
	assert.Zero(t, m.list.rows[0].frame.x)
}

func TestTUIRightKeepsRow(t *testing.T) {
	m, clock := newTestModel(t, "a", "b")

	drag(m, clock, 1, 10, 30)

	assert.Equal(t, []string{"a", "b"}, m.app.items)
	assert.Equal(t, []string{"Right swipe action triggered on b"}, m.app.messages)
	assert.Equal(t, 1, m.list.rows[1].lines(), "row restored after delivery")
}

func TestTUIShortDragSlidesBack(t *testing.T) {
	m, clock := newTestModel(t, "a", "b")

	drag(m, clock, 0, 30, 26)

	assert.Empty(t, m.app.messages)
	assert.Zero(t, m.list.rows[0].frame.x)
}

func TestTUIKeys(t *testing.T) {
	m, _ := newTestModel(t, "a")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	assert.True(t, m.cfg.FadeOut())
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	assert.False(t, m.listener.Enabled())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTUIViewListsRows(t *testing.T) {
	m, _ := newTestModel(t, "first", "second")
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	view := m.View()
	assert.Contains(t, view, "first")
	assert.Contains(t, view, "second")
	assert.Contains(t, view, "2 messages")
}

func TestHitTestSkipsCollapsedRows(t *testing.T) {
	m, _ := newTestModel(t, "a", "b", "c")
	m.list.rows[0].frame.SetLayoutExtent(2)

	x, y := m.list.pointer(5, headerLines)
	row, ok := m.list.HitTest(x, y)
	require.True(t, ok)
	assert.Equal(t, 1, m.list.PositionOf(row))

	_, ok = m.list.HitTest(x, 0)
	assert.False(t, ok, "header")
}

func TestComposeLine(t *testing.T) {
	plain := func(s ...string) string { return strings.Join(s, "") }
	content := []rune("abcdefghij")
	bg := []rune("XYZ-------")

	assert.Equal(t, "abcdefghij", composeLine(10, 0, content, bg, 0, plain, plain))
	assert.Equal(t, "XYZabcdefg", composeLine(10, 3, content, bg, 0, plain, plain))
	assert.Equal(t, "defghij---", composeLine(10, -3, content, bg, 0, plain, plain))
	assert.Equal(t, "---abcdefg", composeLine(10, 3, content, bg, -7, plain, plain), "background slides in with the row")
	assert.Equal(t, "   abcdefg", composeLine(10, 3, content, nil, 0, plain, plain))
}

func TestZoneRunes(t *testing.T) {
	assert.Equal(t, " Right    ", string(zoneRunes("Right", swipeaction.DirectionNormalRight, 10)))
	assert.Equal(t, "     Left ", string(zoneRunes("Left", swipeaction.DirectionNormalLeft, 10)))
}
