package ui

import (
	"snake-arcade/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyBindings = []struct {
	key   int32
	input game.Input
}{
	{rl.KeyUp, game.InputUp},
	{rl.KeyW, game.InputUp},
	{rl.KeyDown, game.InputDown},
	{rl.KeyS, game.InputDown},
	{rl.KeyLeft, game.InputLeft},
	{rl.KeyA, game.InputLeft},
	{rl.KeyRight, game.InputRight},
	{rl.KeyD, game.InputRight},
	{rl.KeyEscape, game.InputQuit},
}

// PollInput returns the inputs pressed since the last frame, in binding order.
func PollInput() []game.Input {
	var inputs []game.Input
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			inputs = append(inputs, b.input)
		}
	}
	if rl.WindowShouldClose() {
		inputs = append(inputs, game.InputQuit)
	}
	return inputs
}
