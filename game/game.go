package game

import (
	"io"
	"log"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"time"

	"golang.org/x/exp/rand"
)

// Cue is an audio event raised by the simulation.
type Cue int

const (
	CueEat Cue = iota
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Audio plays cues. Calls are fire-and-forget.
type Audio interface {
	Play(cue Cue)
}

// Input is one player signal, consumed once per poll.
type Input int

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputQuit
)

var inputDirections = map[Input]types.Point{
	InputUp:    types.Up,
	InputDown:  types.Down,
	InputLeft:  types.Left,
	InputRight: types.Right,
}

// Options configures a Game. Zero values select defaults.
type Options struct {
	TickInterval time.Duration
	Seed         uint64
	Rand         entity.Randomizer
	Audio        Audio
	Logger       *log.Logger
}

// View is a snapshot of everything the renderer draws.
type View struct {
	Grid        types.Grid
	Body        []types.Point
	Food        types.Point
	Score       int
	HighScore   int
	GamesPlayed int
	LastScore   int
	AvgScore    float64
}

// Game drives the snake and fruit at a fixed tick rate.
type Game struct {
	Grid  types.Grid
	snake *entity.Snake

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	audio  Audio
	logger *log.Logger

	tickInterval time.Duration
	accumulated  time.Duration
	steps        int // ticks run this session
	survived     int // ticks survived since the last reset
}

func NewGame(grid types.Grid, opts Options) *Game {
	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng = rand.New(rand.NewSource(seed))
	}
	interval := opts.TickInterval
	if interval <= 0 {
		interval = types.TickInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	collisionMgr := manager.NewCollisionManager(grid)
	return &Game{
		Grid:         grid,
		snake:        entity.NewSnake(),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, collisionMgr),
		stateMgr:     manager.NewStateManager(),
		audio:        opts.Audio,
		logger:       logger,
		tickInterval: interval,
	}
}

// Update advances simulated time by elapsed and runs every tick that became
// due. At most MaxCatchUpTicks run per call; any further backlog is dropped.
// It returns the number of ticks run.
func (g *Game) Update(elapsed time.Duration) int {
	g.accumulated += elapsed

	ticks := 0
	for g.accumulated >= g.tickInterval && ticks < types.MaxCatchUpTicks {
		g.Tick()
		g.accumulated -= g.tickInterval
		ticks++
	}
	if g.accumulated >= g.tickInterval {
		g.accumulated %= g.tickInterval
	}
	return ticks
}

// Tick runs one simulation step: move, eat, then fail check.
func (g *Game) Tick() {
	g.steps++
	g.snake.Move()
	g.checkCollision()
	if g.checkFail() {
		return
	}
	g.survived++
}

func (g *Game) checkCollision() {
	if g.foodMgr.TryEat(g.snake) {
		g.snake.GrowOnNextMove()
		g.play(CueEat)
	}

	g.foodMgr.FixOverlap(g.snake)
}

// checkFail resets the snake when its head left the grid or hit its body.
func (g *Game) checkFail() bool {
	cause := g.collisionMgr.CheckFail(g.snake)
	if cause == manager.NoCollision {
		return false
	}

	if g.snake.Len() != types.StartLength {
		g.play(CueGameOver)
	}
	g.gameOver(cause)
	return true
}

// gameOver resets the snake. A game is only recorded once the snake survived
// a tick: a resting snake overlaps itself on every tick, and turning back into
// the neck from rest dies on the first move.
func (g *Game) gameOver(cause manager.CollisionType) {
	if g.survived > 0 {
		rec := g.stateMgr.EndGame(g.snake.Score(), cause)
		g.logger.Printf("session %s: game over at tick %d (%s) score=%d best=%d ticks=%d duration=%s",
			g.stateMgr.SessionID(), g.steps, cause, rec.Score, g.stateMgr.GetHighScore(), g.survived,
			rec.EndTime.Sub(rec.StartTime).Round(time.Millisecond))
	}
	g.survived = 0
	g.snake.Reset()
	g.stateMgr.StartGame()
}

// HandleInput applies one input immediately. The new direction is consumed
// by the next tick. It reports whether the player asked to quit.
func (g *Game) HandleInput(in Input) bool {
	if in == InputQuit {
		return true
	}
	if dir, ok := inputDirections[in]; ok {
		g.snake.SetDirection(dir)
	}
	return false
}

func (g *Game) play(cue Cue) {
	if g.audio != nil {
		g.audio.Play(cue)
	}
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateMgr
}

func (g *Game) View() View {
	return View{
		Grid:        g.Grid,
		Body:        g.snake.Segments(),
		Food:        g.foodMgr.GetFood(),
		Score:       g.snake.Score(),
		HighScore:   g.stateMgr.GetHighScore(),
		GamesPlayed: g.stateMgr.GetGamesPlayed(),
		LastScore:   g.stateMgr.GetLastScore(),
		AvgScore:    g.stateMgr.GetAverageScore(),
	}
}
