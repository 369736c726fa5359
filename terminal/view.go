// Package terminal plays the game in a text terminal through tcell.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/flappy-dunk/game"
)

// Theme holds the cell styles of the terminal front-end.
var Theme = struct {
	Ground   tcell.Style
	Ball     tcell.Style
	BallDead tcell.Style
	Rim      tcell.Style
	RimMiss  tcell.Style
	Net      tcell.Style
	Spark    tcell.Style
	Popup    tcell.Style
	Text     tcell.Style
	Warning  tcell.Style
	Banner   tcell.Style
	Success  tcell.Style
	Failure  tcell.Style
	Selected tcell.Style
	Dim      tcell.Style
}{
	Ground:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
	Ball:     tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true),
	BallDead: tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	Rim:      tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true),
	RimMiss:  tcell.StyleDefault.Foreground(tcell.ColorDimGray),
	Net:      tcell.StyleDefault.Foreground(tcell.ColorWhite),
	Spark:    tcell.StyleDefault.Foreground(tcell.ColorYellow),
	Popup:    tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true),
	Text:     tcell.StyleDefault.Foreground(tcell.ColorWhite),
	Warning:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	Banner:   tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	Success:  tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true),
	Failure:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	Selected: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	Dim:      tcell.StyleDefault.Foreground(tcell.ColorGray),
}

// View maps field coordinates onto a grid of terminal cells.
type View struct {
	field      game.FieldTuning
	cols, rows int
}

// NewView scales field to cols x rows cells.
func NewView(field game.FieldTuning, cols, rows int) View {
	return View{field: field, cols: cols, rows: rows}
}

// Cell returns the cell containing the field point (x, y). The result may
// lie outside the grid.
func (v View) Cell(x, y float64) (col, row int) {
	col = int(math.Floor(x / v.field.Width * float64(v.cols)))
	row = int(math.Floor(y / v.field.Height * float64(v.rows)))
	return col, row
}

// Contains reports whether the cell is on the grid.
func (v View) Contains(col, row int) bool {
	return col >= 0 && col < v.cols && row >= 0 && row < v.rows
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func drawCentered(s tcell.Screen, cx, y int, text string, st tcell.Style) {
	drawText(s, cx-len([]rune(text))/2, y, text, st)
}
