package models

import (
	"math/rand"
	"time"
)

// GameState is the lifecycle phase of a single game.
type GameState int

const (
	Ready GameState = iota
	Playing
	Won
	Lost
)

func (s GameState) String() string {
	switch s {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Cell is one grid position. Row and Col never change after allocation.
type Cell struct {
	IsMine      bool
	IsRevealed  bool
	IsFlagged   bool
	NearbyMines int
	Row         int
	Col         int

	// Set once the game is lost: every hidden mine is exposed and flags on
	// safe cells are marked wrong.
	IsExposed   bool
	IsWrongFlag bool
}

// Minesweeper is one game: the grid plus its counters and state. Callers own
// the value; independent games never share anything.
type Minesweeper struct {
	Board         [][]Cell
	Rows          int
	Cols          int
	MineCount     int
	FlagCount     int
	RevealedCount int
	State         GameState
	Elapsed       int

	rng         *rand.Rand
	minesPlaced bool
}

// Option configures a Minesweeper in NewMinesweeper.
type Option func(*Minesweeper)

// WithRand sets the random source used by PlaceMines.
func WithRand(r *rand.Rand) Option {
	return func(ms *Minesweeper) {
		ms.rng = r
	}
}

// WithMines fixes the mine layout up front. PlaceMines becomes a no-op and
// MineCount is taken from the positions that fall inside the grid.
func WithMines(positions ...[2]int) Option {
	return func(ms *Minesweeper) {
		count := 0
		for _, p := range positions {
			if ms.InBounds(p[0], p[1]) && !ms.Board[p[0]][p[1]].IsMine {
				ms.Board[p[0]][p[1]].IsMine = true
				count++
			}
		}
		ms.MineCount = count
		ms.minesPlaced = true
		ms.countAllNearbyMines()
	}
}

// NewMinesweeper allocates an empty rows x cols board in the Ready state.
// Mines are not placed until the first reveal.
func NewMinesweeper(rows, cols, mines int, opts ...Option) *Minesweeper {
	rows, cols = max(rows, 0), max(cols, 0)

	board := make([][]Cell, rows)
	for i := range board {
		board[i] = make([]Cell, cols)
		for j := range board[i] {
			board[i][j].Row = i
			board[i][j].Col = j
		}
	}

	ms := &Minesweeper{
		Board:     board,
		Rows:      rows,
		Cols:      cols,
		MineCount: clampMines(mines, rows*cols),
		State:     Ready,
	}
	for _, opt := range opts {
		opt(ms)
	}
	if ms.rng == nil {
		ms.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return ms
}

// clampMines keeps at least one cell free for the first click.
func clampMines(mines, cells int) int {
	if mines < 0 || cells == 0 {
		return 0
	}
	if mines > cells-1 {
		return cells - 1
	}
	return mines
}

// InBounds reports whether (row, col) lies on the grid.
func (ms *Minesweeper) InBounds(row, col int) bool {
	return row >= 0 && row < ms.Rows && col >= 0 && col < ms.Cols
}

// Cell returns a copy of the cell at (row, col). ok is false out of bounds.
func (ms *Minesweeper) Cell(row, col int) (Cell, bool) {
	if !ms.InBounds(row, col) {
		return Cell{}, false
	}
	return ms.Board[row][col], true
}

// IsOver is true once the game is won or lost.
func (ms *Minesweeper) IsOver() bool {
	return ms.State == Won || ms.State == Lost
}

// PlaceMines lays out MineCount mines anywhere except (excludeRow, excludeCol)
// and computes the neighbour counts. Only the first call per game has an effect.
func (ms *Minesweeper) PlaceMines(excludeRow, excludeCol int) {
	if ms.minesPlaced {
		return
	}
	ms.minesPlaced = true

	coords := make([][2]int, 0, ms.Rows*ms.Cols)
	for row := 0; row < ms.Rows; row++ {
		for col := 0; col < ms.Cols; col++ {
			if row != excludeRow || col != excludeCol {
				coords = append(coords, [2]int{row, col})
			}
		}
	}

	// Partial Fisher-Yates: the first n slots end up a uniform sample.
	n := min(ms.MineCount, len(coords))
	for i := 0; i < n; i++ {
		j := i + ms.rng.Intn(len(coords)-i)
		coords[i], coords[j] = coords[j], coords[i]
		ms.Board[coords[i][0]][coords[i][1]].IsMine = true
	}
	ms.MineCount = n

	ms.countAllNearbyMines()
}

func (ms *Minesweeper) countAllNearbyMines() {
	for row := 0; row < ms.Rows; row++ {
		for col := 0; col < ms.Cols; col++ {
			if !ms.Board[row][col].IsMine {
				ms.Board[row][col].NearbyMines = ms.countNearbyMines(row, col)
			}
		}
	}
}

func (ms *Minesweeper) countNearbyMines(row, col int) int {
	nearbyMines := 0
	ms.eachNeighbor(row, col, func(r, c int) {
		if ms.Board[r][c].IsMine {
			nearbyMines++
		}
	})
	return nearbyMines
}

// eachNeighbor calls fn for every in-bounds Moore neighbour of (row, col).
func (ms *Minesweeper) eachNeighbor(row, col int, fn func(r, c int)) {
	for deltaRow := -1; deltaRow <= 1; deltaRow++ {
		for deltaCol := -1; deltaCol <= 1; deltaCol++ {
			if deltaRow == 0 && deltaCol == 0 {
				continue
			}
			if r, c := row+deltaRow, col+deltaCol; ms.InBounds(r, c) {
				fn(r, c)
			}
		}
	}
}

// Reveal is the player's primary action on (row, col). The first accepted
// reveal places the mines around it and starts the game.
func (ms *Minesweeper) Reveal(row, col int) {
	if ms.IsOver() || !ms.InBounds(row, col) {
		return
	}
	cell := &ms.Board[row][col]
	if cell.IsRevealed || cell.IsFlagged {
		return
	}

	if ms.State == Ready {
		ms.PlaceMines(row, col)
		ms.State = Playing
	}

	ms.reveal(row, col)
	ms.CheckGameState()
}

// reveal opens (row, col) and flood-fills outward from cells with no
// neighbouring mines. Revealed and flagged cells stop the fill.
func (ms *Minesweeper) reveal(row, col int) {
	stack := [][2]int{{row, col}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !ms.InBounds(top[0], top[1]) {
			continue
		}
		cell := &ms.Board[top[0]][top[1]]
		if cell.IsRevealed || cell.IsFlagged {
			continue
		}

		cell.IsRevealed = true
		ms.RevealedCount++

		if cell.IsMine {
			ms.State = Lost
			ms.revealAllMines()
			return
		}

		if cell.NearbyMines == 0 {
			ms.eachNeighbor(top[0], top[1], func(r, c int) {
				if next := ms.Board[r][c]; !next.IsRevealed && !next.IsFlagged {
					stack = append(stack, [2]int{r, c})
				}
			})
		}
	}
}

func (ms *Minesweeper) revealAllMines() {
	for row := range ms.Board {
		for col := range ms.Board[row] {
			cell := &ms.Board[row][col]
			if cell.IsMine && !cell.IsRevealed {
				cell.IsExposed = true
			}
			if cell.IsFlagged && !cell.IsMine {
				cell.IsWrongFlag = true
			}
		}
	}
}

// ToggleFlag flips the flag on a covered cell. The flag count is not capped
// at MineCount.
func (ms *Minesweeper) ToggleFlag(row, col int) {
	if ms.IsOver() || !ms.InBounds(row, col) {
		return
	}
	ms.toggleFlag(row, col)
}

func (ms *Minesweeper) toggleFlag(row, col int) {
	cell := &ms.Board[row][col]
	if cell.IsRevealed {
		return
	}
	if cell.IsFlagged {
		cell.IsFlagged = false
		ms.FlagCount--
	} else {
		cell.IsFlagged = true
		ms.FlagCount++
	}
}

// CheckGameState moves a running game to Won once every safe cell is open.
func (ms *Minesweeper) CheckGameState() {
	if ms.State != Playing {
		return
	}
	if ms.RevealedCount == ms.Rows*ms.Cols-ms.MineCount {
		ms.State = Won
		ms.flagAllRemainingMines()
	}
}

func (ms *Minesweeper) flagAllRemainingMines() {
	for row := range ms.Board {
		for col := range ms.Board[row] {
			if cell := ms.Board[row][col]; cell.IsMine && !cell.IsFlagged {
				ms.toggleFlag(row, col)
			}
		}
	}
}

// Tick advances the elapsed-seconds counter while the game is running.
func (ms *Minesweeper) Tick() {
	if ms.State == Playing {
		ms.Elapsed++
	}
}
