package game

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/dimaq12/minesweeper/config"
	"github.com/dimaq12/minesweeper/models"
)

var numberColors = [...]tcell.Color{
	1: tcell.ColorBlue,
	2: tcell.ColorGreen,
	3: tcell.ColorRed,
	4: tcell.ColorNavy,
	5: tcell.ColorMaroon,
	6: tcell.ColorTeal,
	7: tcell.ColorWhite,
	8: tcell.ColorGray,
}

// cellWidth is one glyph plus the table's column separator.
const cellWidth = 2

const (
	faceNeutral = ":)"
	faceWon     = "B)"
	faceLost    = "X("
)

type Renderer struct {
	root       *tview.Flex
	status     *tview.TextView
	boardTable *tview.Table
	help       *tview.TextView
	msg        Messages
}

func NewRenderer(msg Messages) *Renderer {
	r := &Renderer{
		status:     tview.NewTextView().SetTextAlign(tview.AlignCenter),
		boardTable: tview.NewTable(),
		help:       tview.NewTextView().SetTextAlign(tview.AlignCenter).SetText(msg.Help),
		msg:        msg,
	}
	r.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(r.status, 1, 0, false).
		AddItem(r.boardTable, 0, 1, true).
		AddItem(r.help, 1, 0, false)

	return r
}

func (r *Renderer) Root() tview.Primitive {
	return r.root
}

// DrawBoard redraws every cell and the status line.
func (r *Renderer) DrawBoard(game *models.Minesweeper, preset config.Preset) {
	r.boardTable.Clear()
	for row := 0; row < game.Rows; row++ {
		for col := 0; col < game.Cols; col++ {
			r.RenderCell(game, row, col)
		}
	}

	r.boardTable.SetSelectable(true, true)
	r.RenderStatus(game, preset)
}

func (r *Renderer) RenderCell(game *models.Minesweeper, row, col int) {
	state, count := game.CellState(row, col)

	cell := tview.NewTableCell(".").SetAlign(tview.AlignCenter)
	switch state {
	case models.Revealed:
		cell.SetText(" ")
		if count > 0 {
			cell.SetText(strconv.Itoa(count)).SetTextColor(numberColors[count])
		}
	case models.Flagged:
		cell.SetText("F").SetTextColor(tcell.ColorYellow)
	case models.Mine:
		cell.SetText("M")
	case models.Exploded:
		cell.SetText("M").SetTextColor(tcell.ColorWhite).SetBackgroundColor(tcell.ColorRed)
	case models.WrongFlag:
		cell.SetText("X").SetTextColor(tcell.ColorRed)
	}

	r.boardTable.SetCell(row, col, cell)
}

func (r *Renderer) RenderStatus(game *models.Minesweeper, preset config.Preset) {
	face := faceNeutral
	switch game.State {
	case models.Won:
		face = faceWon + " " + r.msg.Won
	case models.Lost:
		face = faceLost + " " + r.msg.Lost
	}

	r.status.SetText(fmt.Sprintf("%s: %s   %s   %s: %s   %s",
		r.msg.Mines, models.FormatCounter(game.RemainingMines()),
		face,
		r.msg.Time, models.FormatCounter(game.DisplayTime()),
		r.msg.difficulty(preset.Name),
	))
}

// Selection is the board position under the cursor.
func (r *Renderer) Selection() (row, col int) {
	return r.boardTable.GetSelection()
}

// CellAt maps screen coordinates onto a board position, or (-1, -1) when
// they miss the board. Valid only after the table has been drawn.
func (r *Renderer) CellAt(x, y int) (row, col int) {
	rectX, rectY, width, height := r.boardTable.GetInnerRect()
	if x < rectX || y < rectY || x >= rectX+width || y >= rectY+height {
		return -1, -1
	}

	rowOffset, colOffset := r.boardTable.GetOffset()
	row = y - rectY + rowOffset
	col = (x-rectX)/cellWidth + colOffset
	if row >= r.boardTable.GetRowCount() || col >= r.boardTable.GetColumnCount() {
		return -1, -1
	}
	return row, col
}
