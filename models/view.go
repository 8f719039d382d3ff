package models

import (
	"fmt"
	"strconv"
)

// CellState is what a presentation layer should draw for one cell.
type CellState int

const (
	Covered CellState = iota
	Revealed
	Flagged
	Mine
	Exploded
	WrongFlag
)

func (s CellState) String() string {
	switch s {
	case Covered:
		return "covered"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	case Mine:
		return "mine"
	case Exploded:
		return "exploded"
	case WrongFlag:
		return "wrong-flag"
	default:
		return "unknown"
	}
}

const maxDisplay = 999

type CellView struct {
	State CellState
	Count int
}

// View is a render-ready snapshot of a game.
type View struct {
	Cells          [][]CellView
	RemainingMines int
	Elapsed        int
	State          GameState
}

// CellState reports how (row, col) should be displayed and, for revealed
// safe cells, its neighbour count. Out-of-bounds positions read as Covered.
func (ms *Minesweeper) CellState(row, col int) (CellState, int) {
	cell, ok := ms.Cell(row, col)
	if !ok {
		return Covered, 0
	}

	switch {
	case cell.IsRevealed && cell.IsMine:
		return Exploded, 0
	case cell.IsRevealed:
		return Revealed, cell.NearbyMines
	case cell.IsWrongFlag:
		return WrongFlag, 0
	case cell.IsFlagged:
		// A correct flag keeps its glyph even though the mine is exposed.
		return Flagged, 0
	case cell.IsExposed:
		return Mine, 0
	default:
		return Covered, 0
	}
}

// RemainingMines may go negative when more flags than mines are placed.
func (ms *Minesweeper) RemainingMines() int {
	return ms.MineCount - ms.FlagCount
}

// DisplayTime is Elapsed clamped to what a three-digit counter can show.
func (ms *Minesweeper) DisplayTime() int {
	return min(max(ms.Elapsed, 0), maxDisplay)
}

func (ms *Minesweeper) View() View {
	cells := make([][]CellView, ms.Rows)
	for row := range cells {
		cells[row] = make([]CellView, ms.Cols)
		for col := range cells[row] {
			state, count := ms.CellState(row, col)
			cells[row][col] = CellView{State: state, Count: count}
		}
	}

	return View{
		Cells:          cells,
		RemainingMines: ms.RemainingMines(),
		Elapsed:        ms.DisplayTime(),
		State:          ms.State,
	}
}

// FormatCounter zero-pads n to three digits; values outside 0..999 are
// printed as plain decimals.
func FormatCounter(n int) string {
	if n < 0 || n > maxDisplay {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%03d", n)
}
