package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweeper/config"
	"github.com/dimaq12/minesweeper/models"
)

// GameService is what the controller drives. All calls are expected on the
// UI goroutine.
type GameService interface {
	NewGame(preset config.Preset)
	Reset()
	Reveal(row, col int)
	ToggleFlag(row, col int)
	Quit()
}

type MinesweeperService struct {
	game     *models.Minesweeper
	preset   config.Preset
	renderer *Renderer
	app      *tview.Application
	log      logrus.FieldLogger
	rng      *rand.Rand

	// schedule runs fn on the goroutine that owns the game.
	schedule  func(fn func())
	tickEvery time.Duration
	stopTimer context.CancelFunc
}

type ServiceOption func(*MinesweeperService)

func WithRand(r *rand.Rand) ServiceOption {
	return func(s *MinesweeperService) { s.rng = r }
}

func WithScheduler(schedule func(fn func())) ServiceOption {
	return func(s *MinesweeperService) { s.schedule = schedule }
}

func WithTickInterval(d time.Duration) ServiceOption {
	return func(s *MinesweeperService) { s.tickEvery = d }
}

func NewMinesweeperService(renderer *Renderer, log logrus.FieldLogger, opts ...ServiceOption) *MinesweeperService {
	s := &MinesweeperService{
		renderer:  renderer,
		log:       log,
		tickEvery: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return s
}

// InitGame starts the terminal UI on preset and blocks until the player quits.
func (s *MinesweeperService) InitGame(preset config.Preset) error {
	s.app = tview.NewApplication()
	if s.schedule == nil {
		s.schedule = func(fn func()) { s.app.QueueUpdateDraw(fn) }
	}

	s.NewGame(preset)

	controller := NewGameController(s, s.renderer)
	controller.Bind(s.app, s.renderer)
	s.app.SetRoot(s.renderer.Root(), true).EnableMouse(true)

	if err := s.app.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

func (s *MinesweeperService) Game() *models.Minesweeper {
	return s.game
}

func (s *MinesweeperService) Preset() config.Preset {
	return s.preset
}

// NewGame throws away the current board and starts over on preset.
func (s *MinesweeperService) NewGame(preset config.Preset) {
	s.halt()

	s.preset = preset
	s.game = models.NewMinesweeper(preset.Height, preset.Width, preset.Mines, models.WithRand(s.rng))
	s.renderer.DrawBoard(s.game, preset)

	s.log.WithFields(logrus.Fields{
		"preset": preset.Name,
		"width":  preset.Width,
		"height": preset.Height,
		"mines":  preset.Mines,
	}).Info("new game")
}

func (s *MinesweeperService) Reset() {
	s.NewGame(s.preset)
}

func (s *MinesweeperService) Reveal(row, col int) {
	if s.game == nil {
		return
	}
	before := s.game.State
	s.game.Reveal(row, col)

	s.log.WithFields(logrus.Fields{
		"row":      row,
		"col":      col,
		"revealed": s.game.RevealedCount,
	}).Debug("reveal")

	if before == models.Ready && s.game.State == models.Playing {
		s.startTimer()
	}
	if s.game.State != before && s.game.IsOver() {
		s.finish()
	}

	s.renderer.DrawBoard(s.game, s.preset)
}

func (s *MinesweeperService) ToggleFlag(row, col int) {
	if s.game == nil {
		return
	}
	s.game.ToggleFlag(row, col)
	s.renderer.RenderCell(s.game, row, col)
	s.renderer.RenderStatus(s.game, s.preset)
}

// Tick advances the game clock by one second.
func (s *MinesweeperService) Tick() {
	if s.game == nil {
		return
	}
	s.game.Tick()
	s.renderer.RenderStatus(s.game, s.preset)
}

func (s *MinesweeperService) Quit() {
	s.halt()
	if s.app != nil {
		s.app.Stop()
	}
}

func (s *MinesweeperService) finish() {
	s.halt()
	s.log.WithFields(logrus.Fields{
		"preset":  s.preset.Name,
		"state":   s.game.State.String(),
		"elapsed": s.game.Elapsed,
		"flags":   s.game.FlagCount,
	}).Info("game over")
}

func (s *MinesweeperService) startTimer() {
	if s.schedule == nil {
		return
	}
	s.halt()

	ctx, cancel := context.WithCancel(context.Background())
	s.stopTimer = cancel
	go s.runTimer(ctx, s.game)
}

// runTimer posts one tick per interval for game. Ticks that land after the
// game was replaced are dropped on the owning goroutine.
func (s *MinesweeperService) runTimer(ctx context.Context, game *models.Minesweeper) {
	ticker := time.NewTicker(s.tickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.schedule(func() {
				if s.game == game {
					s.Tick()
				}
			})
		}
	}
}

func (s *MinesweeperService) halt() {
	if s.stopTimer != nil {
		s.stopTimer()
		s.stopTimer = nil
	}
}
