package entity

import (
	"snake-arcade/game/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

type fixedRand []int

func (f *fixedRand) Intn(n int) int {
	v := (*f)[0]
	*f = (*f)[1:]
	return v % n
}

func TestRandomizeStaysInBounds(t *testing.T) {
	grid := types.Grid{Width: 20, Height: 15}
	rng := rand.New(rand.NewSource(42))
	f := NewFruit(grid, rng)

	for i := 0; i < 1000; i++ {
		f.Randomize(grid, rng)
		assert.True(t, grid.Contains(f.Pos), "fruit at %v", f.Pos)
	}
}

func TestRandomizeUsesSourceForXThenY(t *testing.T) {
	grid := types.Grid{Width: 20, Height: 20}
	rng := &fixedRand{7, 12}

	f := NewFruit(grid, rng)

	assert.Equal(t, types.Point{X: 7, Y: 12}, f.Pos)
}

func TestRandomizeDoesNotExcludeBody(t *testing.T) {
	grid := types.Grid{Width: 20, Height: 20}
	rng := &fixedRand{5, 10}

	// (5,10) is the snake's starting head
	f := NewFruit(grid, rng)

	assert.Equal(t, NewSnake().GetHead(), f.Pos)
}
