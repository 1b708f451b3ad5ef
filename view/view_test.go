package view

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/robobattle/entity"
	"github.com/oomph-ac/robobattle/event"
	"github.com/oomph-ac/robobattle/game"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(w, h)
	return screen
}

func TestCell(t *testing.T) {
	a := game.Arena{Width: 100, Height: 100}
	tests := []struct {
		pos  mgl64.Vec2
		x, y int
	}{
		{mgl64.Vec2{0, 0}, 1, 20},
		{mgl64.Vec2{100, 100}, 40, 1},
		{mgl64.Vec2{0, 100}, 1, 1},
		{mgl64.Vec2{100, 0}, 40, 20},
		{mgl64.Vec2{-5, 500}, 1, 1},
	}
	for _, tt := range tests {
		if x, y := Cell(a, tt.pos, 42, 22); x != tt.x || y != tt.y {
			t.Fatalf("Cell(%v) = %d,%d, want %d,%d", tt.pos, x, y, tt.x, tt.y)
		}
	}
}

func TestHandleTurnDrawsRobots(t *testing.T) {
	screen := newScreen(t, 60, 22)
	v := New(screen, game.Arena{Width: 100, Height: 100})
	defer v.Close()

	robots := []entity.Robot{
		{ID: 0, Name: "bots.Hunter", Position: mgl64.Vec2{0, 0}},
		{ID: 1, Name: "bots.Rammer", Position: mgl64.Vec2{100, 100}, Damage: game.DestroyedDamage},
	}
	v.HandleEvent(robots[1], event.Attacked{Attacker: "bots.Hunter", Damage: 100})
	v.HandleTurn(7, robots)

	// The bottom row holds the status line, so the box spans rows 0 to 20.
	if r, _, _, _ := screen.GetContent(1, 19); r != 'A' {
		t.Fatalf("expected robot A at the bottom left, got %q", r)
	}
	if r, _, _, _ := screen.GetContent(58, 1); r != 'x' {
		t.Fatalf("expected a destroyed robot at the top right, got %q", r)
	}
	if r, _, _, _ := screen.GetContent(0, 0); r != tcell.RuneULCorner {
		t.Fatalf("expected the border corner, got %q", r)
	}

	status := ""
	for x := 0; x < 60; x++ {
		r, _, _, _ := screen.GetContent(x, 21)
		status += string(r)
	}
	if want := "turn 7  bots.Hunter hit bots.Rammer for 100"; status[:len(want)] != want {
		t.Fatalf("status line = %q", status)
	}
}

func TestListenQuit(t *testing.T) {
	screen := newScreen(t, 20, 10)
	v := New(screen, game.Arena{Width: 10, Height: 10})

	quit := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		v.Listen(func() { quit <- struct{}{} })
		close(done)
	}()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case <-quit:
	case <-time.After(time.Second):
		t.Fatalf("pressing q did not quit")
	}

	v.Close()
	v.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Listen did not return after Close")
	}
	if !v.Closed() {
		t.Fatalf("viewer must be closed")
	}
	// Drawing after closing must not touch the screen.
	v.HandleTurn(1, []entity.Robot{{Name: "a"}})
}
