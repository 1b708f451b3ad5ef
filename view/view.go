// Package view renders a battle in the terminal as it runs.
package view

import (
	"fmt"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/robobattle/entity"
	"github.com/oomph-ac/robobattle/event"
	"github.com/oomph-ac/robobattle/game"
	"go.uber.org/atomic"
)

var palette = []tcell.Color{
	tcell.ColorRed,
	tcell.ColorGreen,
	tcell.ColorYellow,
	tcell.ColorBlue,
	tcell.ColorFuchsia,
	tcell.ColorAqua,
}

// Viewer draws the arena and every robot in it at the end of each turn. It implements the
// robobattle.Observer interface.
type Viewer struct {
	mu     sync.Mutex
	screen tcell.Screen
	arena  game.Arena
	closed atomic.Bool

	last string
}

// New returns a Viewer drawing an arena on the screen passed. The screen must already be initialised.
func New(screen tcell.Screen, arena game.Arena) *Viewer {
	return &Viewer{screen: screen, arena: arena}
}

// Listen polls the screen for key presses until the viewer is closed. onQuit is called when the user
// presses escape, ctrl+c or q. Listen blocks, so it is usually run in its own goroutine.
func (v *Viewer) Listen(onQuit func()) {
	for !v.closed.Load() {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			// The screen was finalised.
			return
		case *tcell.EventResize:
			v.mu.Lock()
			if !v.closed.Load() {
				v.screen.Sync()
			}
			v.mu.Unlock()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				if onQuit != nil {
					onQuit()
				}
			}
		}
	}
}

// Close finalises the screen. It is safe to call more than once.
func (v *Viewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed.CompareAndSwap(false, true) {
		v.screen.Fini()
	}
}

// Closed returns true if the viewer was closed.
func (v *Viewer) Closed() bool {
	return v.closed.Load()
}

// HandleEvent keeps the last attack or bump to show it in the status line.
func (v *Viewer) HandleEvent(r entity.Robot, ev event.Event) {
	var msg string
	switch ev := ev.(type) {
	case event.Attacked:
		msg = fmt.Sprintf("%s hit %s for %d", ev.Attacker, r.Name, ev.Damage)
	case event.Bumped:
		msg = fmt.Sprintf("%s bumped into %s", r.Name, ev.Obstacle)
	default:
		return
	}

	v.mu.Lock()
	v.last = msg
	v.mu.Unlock()
}

// HandleTurn redraws the arena.
func (v *Viewer) HandleTurn(turn int, robots []entity.Robot) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed.Load() {
		return
	}
	s := v.screen
	s.Clear()

	w, h := s.Size()
	v.drawBox(w, h-1)
	for _, r := range robots {
		x, y := Cell(v.arena, r.Position, w, h-1)
		s.SetContent(x, y, Glyph(r), nil, robotStyle(r))
	}
	v.drawText(0, h-1, fmt.Sprintf("turn %d  %s", turn, v.last), tcell.StyleDefault)
	s.Show()
}

func (v *Viewer) drawBox(w, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 1; x < w-1; x++ {
		v.screen.SetContent(x, 0, tcell.RuneHLine, nil, style)
		v.screen.SetContent(x, h-1, tcell.RuneHLine, nil, style)
	}
	for y := 1; y < h-1; y++ {
		v.screen.SetContent(0, y, tcell.RuneVLine, nil, style)
		v.screen.SetContent(w-1, y, tcell.RuneVLine, nil, style)
	}
	v.screen.SetContent(0, 0, tcell.RuneULCorner, nil, style)
	v.screen.SetContent(w-1, 0, tcell.RuneURCorner, nil, style)
	v.screen.SetContent(0, h-1, tcell.RuneLLCorner, nil, style)
	v.screen.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, style)
}

func (v *Viewer) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Cell returns the screen cell a position in the arena is drawn at, inside a box of w by h cells
// including its border. The y axis of the arena points up, so y = 0 is drawn on the bottom row.
func Cell(a game.Arena, pos mgl64.Vec2, w, h int) (x, y int) {
	cols, rows := max(w-2, 1), max(h-2, 1)
	fx := math.Max(0, math.Min(1, pos.X()/a.Width))
	fy := math.Max(0, math.Min(1, pos.Y()/a.Height))
	x = 1 + int(math.Round(fx*float64(cols-1)))
	y = 1 + int(math.Round((1-fy)*float64(rows-1)))
	return x, y
}

// Glyph returns the rune a robot is drawn with: a letter derived from its ID, or x once destroyed.
func Glyph(r entity.Robot) rune {
	if !r.Active() {
		return 'x'
	}
	return rune('A' + r.ID%26)
}

func robotStyle(r entity.Robot) tcell.Style {
	if !r.Active() {
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
	return tcell.StyleDefault.Foreground(palette[r.ID%len(palette)]).Bold(true)
}
