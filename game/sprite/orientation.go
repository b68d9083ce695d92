// Package sprite maps snake segments to the sprite that draws them. It only
// looks at positions, so the renderer can stay free of game rules.
package sprite

import (
	"fmt"
	"snake-arcade/game/types"
)

// Part is the role of a segment within the body.
type Part int

const (
	Head Part = iota
	Body
	Tail
)

func (p Part) String() string {
	switch p {
	case Head:
		return "head"
	case Tail:
		return "tail"
	default:
		return "body"
	}
}

// Orientation is the way a sprite faces. Head and tail use the four facings,
// body segments use the straight and corner variants.
type Orientation int

const (
	None Orientation = iota
	FacesLeft
	FacesRight
	FacesUp
	FacesDown
	Vertical
	Horizontal
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

var orientationNames = map[Orientation]string{
	None:        "none",
	FacesLeft:   "left",
	FacesRight:  "right",
	FacesUp:     "up",
	FacesDown:   "down",
	Vertical:    "vertical",
	Horizontal:  "horizontal",
	TopLeft:     "tl",
	TopRight:    "tr",
	BottomLeft:  "bl",
	BottomRight: "br",
}

func (o Orientation) String() string {
	if name, ok := orientationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("orientation(%d)", int(o))
}

// Key identifies one sprite in an asset table.
type Key struct {
	Part        Part
	Orientation Orientation
}

// FileName is the image file the key is loaded from, e.g. "head_up.png".
func (k Key) FileName() string {
	return k.Part.String() + "_" + k.Orientation.String() + ".png"
}

// Keys lists every key a complete sprite set provides.
func Keys() []Key {
	keys := make([]Key, 0, 14)
	for _, part := range []Part{Head, Tail} {
		for _, o := range []Orientation{FacesUp, FacesDown, FacesRight, FacesLeft} {
			keys = append(keys, Key{Part: part, Orientation: o})
		}
	}
	for _, o := range []Orientation{Vertical, Horizontal, TopRight, TopLeft, BottomRight, BottomLeft} {
		keys = append(keys, Key{Part: Body, Orientation: o})
	}
	return keys
}

// Facing maps the relation vector (neighbor minus self) of a head or tail to
// the direction the sprite faces. The sprite points away from its neighbor.
func Facing(relation types.Point) Orientation {
	switch relation {
	case types.Point{X: 1, Y: 0}:
		return FacesLeft
	case types.Point{X: -1, Y: 0}:
		return FacesRight
	case types.Point{X: 0, Y: 1}:
		return FacesUp
	case types.Point{X: 0, Y: -1}:
		return FacesDown
	}
	return None
}

// Joint classifies a body segment from the relations to the segment behind
// it (prev, toward the tail) and the one ahead of it (next, toward the head).
func Joint(prev, next types.Point) Orientation {
	switch {
	case prev.X == next.X:
		return Vertical
	case prev.Y == next.Y:
		return Horizontal
	case prev.X == -1 && next.Y == -1, prev.Y == -1 && next.X == -1:
		return TopLeft
	case prev.X == -1 && next.Y == 1, prev.Y == 1 && next.X == -1:
		return BottomLeft
	case prev.X == 1 && next.Y == -1, prev.Y == -1 && next.X == 1:
		return TopRight
	case prev.X == 1 && next.Y == 1, prev.Y == 1 && next.X == 1:
		return BottomRight
	}
	return None
}

// Classify returns the sprite key of every segment, head first.
func Classify(body []types.Point) []Key {
	keys := make([]Key, len(body))
	last := len(body) - 1
	for i, block := range body {
		switch {
		case last < 1:
			keys[i] = Key{Part: Head, Orientation: None}
		case i == 0:
			keys[i] = Key{Part: Head, Orientation: Facing(body[1].Sub(block))}
		case i == last:
			keys[i] = Key{Part: Tail, Orientation: Facing(body[last-1].Sub(block))}
		default:
			prev := body[i+1].Sub(block)
			next := body[i-1].Sub(block)
			keys[i] = Key{Part: Body, Orientation: Joint(prev, next)}
		}
	}
	return keys
}
