package entity

import "snake-arcade/game/types"

// Randomizer is the subset of a random source fruit placement needs.
type Randomizer interface {
	Intn(n int) int
}

type Fruit struct {
	Pos types.Point
}

func NewFruit(grid types.Grid, rng Randomizer) *Fruit {
	f := &Fruit{}
	f.Randomize(grid, rng)
	return f
}

// Randomize moves the fruit to a uniformly random cell of grid. Cells covered
// by the snake are not excluded.
func (f *Fruit) Randomize(grid types.Grid, rng Randomizer) {
	f.Pos = types.Point{
		X: rng.Intn(grid.Width),
		Y: rng.Intn(grid.Height),
	}
}
