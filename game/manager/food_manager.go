package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// FoodManager owns the single fruit and the random source used to place it.
type FoodManager struct {
	grid         types.Grid
	fruit        *entity.Fruit
	rng          entity.Randomizer
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng entity.Randomizer, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		fruit:        entity.NewFruit(grid, rng),
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// respawn moves the fruit to a new random cell.
func (fm *FoodManager) respawn() {
	fm.fruit.Randomize(fm.grid, fm.rng)
}

// TryEat respawns the fruit when the snake's head is on it.
func (fm *FoodManager) TryEat(snake *entity.Snake) bool {
	if !fm.collisionMgr.IsFoodCollision(snake.GetHead(), fm.fruit.Pos) {
		return false
	}
	fm.respawn()
	return true
}

// FixOverlap walks the body behind the head once and respawns the fruit each
// time a segment covers it. A respawn may still land on a segment already
// visited; that is only corrected on a later pass.
func (fm *FoodManager) FixOverlap(snake *entity.Snake) int {
	respawns := 0
	for _, part := range snake.Body[1:] {
		if fm.collisionMgr.IsFoodCollision(part, fm.fruit.Pos) {
			fm.respawn()
			respawns++
		}
	}
	return respawns
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.fruit.Pos
}
