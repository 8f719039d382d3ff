package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"

	"github.com/dimaq12/minesweeper/config"
	"github.com/dimaq12/minesweeper/models"
)

type call struct {
	name     string
	row, col int
	preset   string
}

type fakeService struct {
	calls []call
}

func (f *fakeService) NewGame(p config.Preset) { f.calls = append(f.calls, call{name: "new", preset: p.Name}) }
func (f *fakeService) Reset() { f.calls = append(f.calls, call{name: "reset"}) }
func (f *fakeService) Reveal(row, col int) { f.calls = append(f.calls, call{name: "reveal", row: row, col: col}) }
func (f *fakeService) ToggleFlag(row, col int) { f.calls = append(f.calls, call{name: "flag", row: row, col: col}) }
func (f *fakeService) Quit() { f.calls = append(f.calls, call{name: "quit"}) }

type fakeBoard struct {
	row, col int
}

func (b fakeBoard) Selection() (int, int) { return b.row, b.col }
func (b fakeBoard) CellAt(x, y int) (int, int) { return y, x / 2 }

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name     string
		event    *tcell.EventKey
		want     []call
		consumed bool
	}{
		{"enter reveals", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), []call{{name: "reveal", row: 2, col: 5}}, true},
		{"space reveals", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), []call{{name: "reveal", row: 2, col: 5}}, true},
		{"f flags", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone), []call{{name: "flag", row: 2, col: 5}}, true},
		{"n resets", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), []call{{name: "reset"}}, true},
		{"2 intermediate", tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone), []call{{name: "new", preset: "intermediate"}}, true},
		{"3 expert", tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), []call{{name: "new", preset: "expert"}}, true},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), []call{{name: "quit"}}, true},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), []call{{name: "quit"}}, true},
		{"arrows pass through", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), nil, false},
		{"other runes pass through", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			c := NewGameController(svc, fakeBoard{row: 2, col: 5})

			got := c.HandleKey(tt.event)

			assert.Equal(t, tt.want, svc.calls)
			if tt.consumed {
				assert.Nil(t, got)
			} else {
				assert.Same(t, tt.event, got)
			}
		})
	}
}

func TestHandleMouse(t *testing.T) {
	svc := &fakeService{}
	c := NewGameController(svc, fakeBoard{})

	left := tcell.NewEventMouse(6, 1, tcell.Button1, tcell.ModNone)
	action, event := c.HandleMouse(tview.MouseLeftClick, left)
	assert.Equal(t, tview.MouseLeftClick, action)
	assert.Same(t, left, event)

	right := tcell.NewEventMouse(4, 3, tcell.Button2, tcell.ModNone)
	action, event = c.HandleMouse(tview.MouseRightClick, right)
	assert.Equal(t, tview.MouseRightClick, action)
	assert.Nil(t, event, "right click is consumed")

	move := tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone)
	c.HandleMouse(tview.MouseMove, move)

	assert.Equal(t, []call{
		{name: "reveal", row: 1, col: 3},
		{name: "flag", row: 3, col: 2},
	}, svc.calls)
}

func TestHandleMouseOnDrawnBoard(t *testing.T) {
	r := NewRenderer(MessagesFor("en"))
	r.DrawBoard(models.NewMinesweeper(9, 9, 10), config.Beginner)
	drawOnScreen(t, r)

	svc := &fakeService{}
	c := NewGameController(svc, r)

	c.HandleMouse(tview.MouseLeftClick, tcell.NewEventMouse(6, 3, tcell.Button1, tcell.ModNone))
	c.HandleMouse(tview.MouseRightClick, tcell.NewEventMouse(0, 1, tcell.Button2, tcell.ModNone))
	c.HandleMouse(tview.MouseLeftClick, tcell.NewEventMouse(30, 3, tcell.Button1, tcell.ModNone))
	c.HandleMouse(tview.MouseRightClick, tcell.NewEventMouse(4, 0, tcell.Button2, tcell.ModNone))

	assert.Equal(t, []call{
		{name: "reveal", row: 2, col: 3},
		{name: "flag", row: 0, col: 0},
	}, svc.calls)
}
