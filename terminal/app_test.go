package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/flappy-dunk/game"
	"github.com/simukka/flappy-dunk/leaderboard"
	"github.com/simukka/flappy-dunk/scene"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	store, err := leaderboard.OpenFileStore("", nil)
	if err != nil {
		t.Fatalf("OpenFileStore: %v", err)
	}
	a, err := NewApp(screen, Options{Tuning: game.DefaultTuning(), Seed: 3, Store: store})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return a, screen
}

// screenText returns the visible rows of a simulation screen.
func screenText(s tcell.SimulationScreen) []string {
	cells, w, h := s.GetContents()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(c.Runes[0])
		}
		rows[y] = b.String()
	}
	return rows
}

func screenContains(s tcell.SimulationScreen, text string) bool {
	for _, row := range screenText(s) {
		if strings.Contains(row, text) {
			return true
		}
	}
	return false
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestApp_TitleScreen(t *testing.T) {
	a, screen := newTestApp(t)
	a.Tick()

	if !screenContains(screen, "FLAPPY DUNK") {
		t.Errorf("Expected the title on screen")
	}
	if !screenContains(screen, "> 1  Classic <") {
		t.Errorf("Expected classic to be highlighted")
	}
}

func TestApp_SelectMode(t *testing.T) {
	a, screen := newTestApp(t)
	a.HandleKey(key('2'))
	a.Tick()

	if got := a.core.Selected(); got != game.ModeTime {
		t.Errorf("Expected mode %s, got %s", game.ModeTime, got)
	}
	if !screenContains(screen, "> 2  Time Attack <") {
		t.Errorf("Expected time attack to be highlighted")
	}
}

func TestApp_PlayAndFall(t *testing.T) {
	a, screen := newTestApp(t)
	a.HandleKey(key(' '))
	a.Tick()

	if a.core.State() != game.StatePlaying {
		t.Fatalf("Expected playing, got %s", a.core.State())
	}
	if !screenContains(screen, "Score: 0") {
		t.Errorf("Expected the HUD on screen")
	}
	if !screenContains(screen, "@") {
		t.Errorf("Expected the ball on screen")
	}
	if !screenContains(screen, scene.TipText) {
		t.Errorf("Expected the controls tip at run start")
	}

	// Without input the ball drops out of the court.
	for i := 0; i < 600 && a.core.State() == game.StatePlaying; i++ {
		a.Tick()
	}
	if a.core.State() != game.StateTerminated {
		t.Fatalf("Expected terminated, got %s", a.core.State())
	}
	if !screenContains(screen, "GAME OVER") {
		t.Errorf("Expected the game-over screen")
	}
	if !screenContains(screen, "Classic leaderboard") {
		t.Errorf("Expected the finished run on the leaderboard")
	}
}

func TestApp_HandleKeyQuit(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		quit bool
	}{
		{"q", key('q'), true},
		{"Q", key('Q'), true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), true},
		{"space", key(' '), false},
		{"mute", key('m'), false},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestApp(t)
			if got := a.HandleKey(tt.ev); got != tt.quit {
				t.Errorf("Expected quit %v, got %v", tt.quit, got)
			}
		})
	}
}

func TestApp_ToggleMuteAndDemo(t *testing.T) {
	a, _ := newTestApp(t)
	a.HandleKey(key('m'))
	a.HandleKey(key('d'))
	if !a.bell.Muted {
		t.Errorf("Expected bell muted")
	}
	if !a.demo {
		t.Errorf("Expected demo on")
	}
}

func TestApp_DemoStartsRun(t *testing.T) {
	a, _ := newTestApp(t)
	a.demo = true
	for i := 0; i < demoRestartDelay; i++ {
		a.Tick()
	}
	if a.core.State() != game.StatePlaying {
		t.Errorf("Expected the autopilot to start a run, got %s", a.core.State())
	}
}

func TestView_Cell(t *testing.T) {
	v := NewView(game.FieldTuning{Width: 800, Height: 600}, 80, 24)
	tests := []struct {
		x, y     float64
		col, row int
		inside   bool
	}{
		{0, 0, 0, 0, true},
		{400, 300, 40, 12, true},
		{799, 599, 79, 23, true},
		{800, 600, 80, 24, false},
		{-1, 10, -1, 0, false},
	}
	for _, tt := range tests {
		col, row := v.Cell(tt.x, tt.y)
		if col != tt.col || row != tt.row {
			t.Errorf("Cell(%v, %v): expected (%d, %d), got (%d, %d)", tt.x, tt.y, tt.col, tt.row, col, row)
		}
		if got := v.Contains(col, row); got != tt.inside {
			t.Errorf("Contains(%d, %d): expected %v, got %v", col, row, tt.inside, got)
		}
	}
}
