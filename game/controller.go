package game

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/dimaq12/minesweeper/config"
)

// board is the part of the renderer the controller needs to locate cells.
type board interface {
	Selection() (row, col int)
	CellAt(x, y int) (row, col int)
}

// GameController turns terminal key and mouse events into game actions.
type GameController struct {
	service GameService
	board   board
}

func NewGameController(service GameService, board board) *GameController {
	return &GameController{service: service, board: board}
}

// Bind installs the key handler on app and the mouse handler on the board table.
func (c *GameController) Bind(app *tview.Application, r *Renderer) {
	app.SetInputCapture(c.HandleKey)
	r.boardTable.SetMouseCapture(c.HandleMouse)
}

// HandleKey consumes the keys it acts on and passes the rest through, so
// arrow keys keep moving the table selection.
func (c *GameController) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	row, col := c.board.Selection()

	switch event.Key() {
	case tcell.KeyEnter:
		c.service.Reveal(row, col)
		return nil
	case tcell.KeyEscape:
		c.service.Quit()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case ' ':
			c.service.Reveal(row, col)
		case 'f', 'F':
			c.service.ToggleFlag(row, col)
		case 'n', 'N', 'r', 'R':
			c.service.Reset()
		case '1', '2', '3':
			c.service.NewGame(config.Presets()[event.Rune()-'1'])
		case 'q', 'Q':
			c.service.Quit()
		default:
			return event
		}
		return nil
	}

	return event
}

// HandleMouse reveals on a primary click and flags on a secondary click.
func (c *GameController) HandleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	switch action {
	case tview.MouseLeftClick:
		if row, col := c.board.CellAt(event.Position()); row >= 0 {
			c.service.Reveal(row, col)
		}
	case tview.MouseRightClick:
		if row, col := c.board.CellAt(event.Position()); row >= 0 {
			c.service.ToggleFlag(row, col)
		}
		return action, nil
	}

	return action, event
}
