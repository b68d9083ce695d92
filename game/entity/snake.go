package entity

import "snake-arcade/game/types"

// Snake is the player-controlled body. Body[0] is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Point
	heading   types.Point // direction consumed by the last move
	grow      bool
}

func NewSnake() *Snake {
	s := &Snake{}
	s.Reset()
	return s
}

// Move advances the head one cell along Direction. The tail is kept when a
// growth is pending. Bounds are not checked here.
func (s *Snake) Move() {
	newHead := s.GetHead().Add(s.Direction)

	if s.grow {
		body := make([]types.Point, 0, len(s.Body)+1)
		body = append(body, newHead)
		s.Body = append(body, s.Body...)
		s.grow = false
	} else {
		copy(s.Body[1:], s.Body[:len(s.Body)-1])
		s.Body[0] = newHead
	}
	s.heading = s.Direction
}

// GrowOnNextMove marks the snake to keep its tail on the next move.
func (s *Snake) GrowOnNextMove() {
	s.grow = true
}

func (s *Snake) Reset() {
	s.Body = types.StartBody()
	s.Direction = types.None
	s.heading = types.None
	s.grow = false
}

// CheckSelfCollision reports whether the head overlaps any other segment.
func (s *Snake) CheckSelfCollision() bool {
	head := s.GetHead()
	for _, part := range s.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// SetDirection changes direction unless dir reverses the current direction
// or the direction of the last move. Returns false when rejected.
func (s *Snake) SetDirection(dir types.Point) bool {
	if !dir.IsUnit() {
		return false
	}
	// Prevent 180-degree turns
	if dir == s.Direction.Neg() || dir == s.heading.Neg() {
		return false
	}
	s.Direction = dir
	return true
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Score is the number of fruits eaten since the last reset.
func (s *Snake) Score() int {
	return len(s.Body) - types.StartLength
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
