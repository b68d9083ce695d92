package game

import (
	"bytes"
	"log"
	"snake-arcade/game/types"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAudio struct {
	cues []Cue
}

func (a *recordingAudio) Play(cue Cue) {
	a.cues = append(a.cues, cue)
}

// cycleRand walks through a fixed list of values forever.
type cycleRand struct {
	vals []int
	i    int
}

func (r *cycleRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func newTestGame(t *testing.T, rng ...int) (*Game, *recordingAudio) {
	t.Helper()
	if len(rng) == 0 {
		rng = []int{15, 2}
	}
	audio := &recordingAudio{}
	g := NewGame(types.Grid{Width: 20, Height: 20}, Options{
		Rand:  &cycleRand{vals: rng},
		Audio: audio,
	})
	return g, audio
}

func TestTickMovesSnake(t *testing.T) {
	g, audio := newTestGame(t)
	require.True(t, g.snake.SetDirection(types.Right))

	g.Tick()

	assert.Equal(t, []types.Point{{X: 6, Y: 10}, {X: 5, Y: 10}, {X: 4, Y: 10}}, g.snake.Body)
	assert.Empty(t, audio.cues)
	assert.Equal(t, 1, g.steps)
	assert.Equal(t, 1, g.survived)
}

func TestTickEatsFruit(t *testing.T) {
	g, audio := newTestGame(t, 6, 10, 15, 2)
	require.Equal(t, types.Point{X: 6, Y: 10}, g.foodMgr.GetFood())
	g.snake.SetDirection(types.Right)

	g.Tick()

	assert.Equal(t, types.Point{X: 15, Y: 2}, g.foodMgr.GetFood(), "fruit re-randomized")
	assert.Equal(t, []Cue{CueEat}, audio.cues)
	assert.Len(t, g.snake.Body, 3, "growth waits for the next move")

	g.Tick()
	assert.Len(t, g.snake.Body, 4)
	assert.Equal(t, 1, g.snake.Score())
}

func TestTickRespawnsFruitUnderBody(t *testing.T) {
	g, audio := newTestGame(t, 4, 10, 15, 2)
	require.Equal(t, types.Point{X: 4, Y: 10}, g.foodMgr.GetFood())
	g.snake.SetDirection(types.Right)

	// after the move the tail sits on (4,10)
	g.Tick()

	assert.Equal(t, types.Point{X: 15, Y: 2}, g.foodMgr.GetFood())
	assert.Empty(t, audio.cues)

	g.Tick()
	assert.Len(t, g.snake.Body, types.StartLength, "no growth from a respawn")
}

func TestTickResetsOnWall(t *testing.T) {
	g, audio := newTestGame(t)
	g.snake.Body = []types.Point{{X: 18, Y: 10}, {X: 17, Y: 10}, {X: 16, Y: 10}, {X: 15, Y: 10}}
	g.snake.Direction = types.Right

	g.Tick()
	require.Zero(t, g.stateMgr.GetGamesPlayed())
	g.Tick() // head at (20,10): x == width

	assert.Equal(t, types.StartBody(), g.snake.Body)
	assert.Equal(t, types.None, g.snake.Direction)
	assert.Equal(t, []Cue{CueGameOver}, audio.cues)
	assert.Equal(t, 1, g.stateMgr.GetGamesPlayed())
	assert.Equal(t, 1, g.stateMgr.GetHighScore())
}

func TestTickResetsOnSelfCollision(t *testing.T) {
	g, audio := newTestGame(t)
	// a U shape whose head turns down into its own body
	g.snake.Body = []types.Point{
		{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6},
	}
	g.snake.Direction = types.Down

	g.Tick()

	assert.Equal(t, types.StartBody(), g.snake.Body)
	assert.Equal(t, []Cue{CueGameOver}, audio.cues)
	assert.Zero(t, g.stateMgr.GetGamesPlayed(), "died on its first move")
}

func TestGameOverSoundSuppressedAtStartLength(t *testing.T) {
	g, audio := newTestGame(t)
	g.snake.Body = []types.Point{{X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}}
	g.snake.Direction = types.Left

	for i := 0; i < 3; i++ {
		g.Tick()
	}

	assert.Equal(t, types.StartBody(), g.snake.Body)
	assert.Empty(t, audio.cues)
	assert.Equal(t, 1, g.stateMgr.GetGamesPlayed(), "a real game still counts")
}

func TestIdleSnakeResetsSilently(t *testing.T) {
	g, audio := newTestGame(t)

	for i := 0; i < 10; i++ {
		g.Tick()
		assert.Equal(t, types.StartBody(), g.snake.Body)
	}

	assert.Empty(t, audio.cues)
	assert.Zero(t, g.stateMgr.GetGamesPlayed())
}

func TestReverseFromRestIsNotCounted(t *testing.T) {
	g, audio := newTestGame(t)

	// nothing has moved yet, so Left is accepted and runs into the neck
	require.True(t, g.snake.SetDirection(types.Left))
	g.Tick()

	assert.Equal(t, types.StartBody(), g.snake.Body)
	assert.Empty(t, audio.cues)
	assert.Zero(t, g.stateMgr.GetGamesPlayed())
	assert.Zero(t, g.survived)
}

func TestLengthNeverDropsBelowStart(t *testing.T) {
	g, _ := newTestGame(t, 3, 7, 11, 2, 17, 13, 0, 19)
	inputs := []Input{InputRight, InputUp, InputLeft, InputDown, InputRight, InputDown, InputLeft}

	for i := 0; i < 500; i++ {
		g.HandleInput(inputs[i%len(inputs)])
		g.Tick()

		body := g.snake.Body
		require.GreaterOrEqual(t, len(body), types.StartLength)
		for j := 1; j < len(body); j++ {
			require.True(t, body[j].Sub(body[j-1]).IsUnit(), "tick %d: %v and %v not adjacent", i, body[j-1], body[j])
		}
		require.True(t, g.Grid.Contains(g.foodMgr.GetFood()), "tick %d: fruit at %v", i, g.foodMgr.GetFood())
	}
}

func TestHandleInput(t *testing.T) {
	g, _ := newTestGame(t)

	assert.False(t, g.HandleInput(InputRight))
	assert.Equal(t, types.Right, g.snake.Direction)

	assert.False(t, g.HandleInput(InputLeft))
	assert.Equal(t, types.Right, g.snake.Direction, "reversal rejected")

	assert.False(t, g.HandleInput(InputNone))
	assert.Equal(t, types.Right, g.snake.Direction)

	assert.True(t, g.HandleInput(InputQuit))
}

func TestInputAppliesOnNextTick(t *testing.T) {
	g, _ := newTestGame(t)
	g.HandleInput(InputRight)
	g.Tick()

	g.HandleInput(InputDown)
	assert.Equal(t, types.Point{X: 6, Y: 10}, g.snake.GetHead(), "no movement until the tick")

	g.Tick()
	assert.Equal(t, types.Point{X: 6, Y: 11}, g.snake.GetHead())
}

func TestUpdateRunsFixedTicks(t *testing.T) {
	g, _ := newTestGame(t)
	g.HandleInput(InputRight)

	assert.Equal(t, 0, g.Update(100*time.Millisecond))
	assert.Equal(t, 1, g.Update(60*time.Millisecond))
	assert.Equal(t, types.Point{X: 6, Y: 10}, g.snake.GetHead())

	// 10ms carried over
	assert.Equal(t, 2, g.Update(290*time.Millisecond))
	assert.Equal(t, types.Point{X: 8, Y: 10}, g.snake.GetHead())
}

func TestUpdateCapsCatchUp(t *testing.T) {
	g, _ := newTestGame(t)
	g.HandleInput(InputDown)

	assert.Equal(t, types.MaxCatchUpTicks, g.Update(2*time.Second))
	assert.Less(t, g.accumulated, g.tickInterval)
}

func TestCustomTickInterval(t *testing.T) {
	g := NewGame(types.Grid{Width: 20, Height: 20}, Options{TickInterval: 50 * time.Millisecond, Seed: 1})

	assert.Equal(t, 3, g.Update(150*time.Millisecond))
}

func TestView(t *testing.T) {
	g, _ := newTestGame(t, 6, 10, 15, 2)
	g.HandleInput(InputRight)
	g.Tick()
	g.Tick()

	v := g.View()

	assert.Equal(t, g.Grid, v.Grid)
	assert.Equal(t, 1, v.Score)
	assert.Equal(t, types.Point{X: 15, Y: 2}, v.Food)
	assert.Zero(t, v.GamesPlayed)
	assert.Zero(t, v.LastScore)
	assert.Zero(t, v.AvgScore)
	require.Len(t, v.Body, 4)

	v.Body[0] = types.Point{}
	assert.Equal(t, types.Point{X: 7, Y: 10}, g.snake.GetHead(), "view holds a copy")
}

func TestViewCarriesSessionStats(t *testing.T) {
	g, _ := newTestGame(t)
	for _, score := range []int{1, 2} {
		body := []types.Point{{X: 18, Y: 10}, {X: 17, Y: 10}, {X: 16, Y: 10}}
		for i := 0; i < score; i++ {
			body = append(body, types.Point{X: 15 - i, Y: 10})
		}
		g.snake.Body = body
		g.snake.Direction = types.Right
		g.Tick()
		g.Tick()
	}

	v := g.View()

	assert.Equal(t, 2, v.GamesPlayed)
	assert.Equal(t, 2, v.HighScore)
	assert.Equal(t, 2, v.LastScore)
	assert.InDelta(t, 1.5, v.AvgScore, 1e-9)
	assert.Zero(t, v.Score)
}

func TestGameOverIsLogged(t *testing.T) {
	var buf bytes.Buffer
	g := NewGame(types.Grid{Width: 20, Height: 20}, Options{
		Rand:   &cycleRand{vals: []int{15, 2}},
		Logger: log.New(&buf, "", 0),
	})
	g.HandleInput(InputUp)
	for i := 0; i < 11; i++ {
		g.Tick()
	}

	assert.Contains(t, buf.String(), "game over at tick 11 (wall) score=0")
	assert.Contains(t, buf.String(), g.stateMgr.SessionID())
}

func TestCueString(t *testing.T) {
	assert.Equal(t, "eat", CueEat.String())
	assert.Equal(t, "game-over", CueGameOver.String())
}
