package ui

import (
	"snake-arcade/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Audio plays game cues through raylib. Cues without a loaded sound are
// ignored.
type Audio struct {
	assets *Assets
}

func NewAudio(assets *Assets) *Audio {
	return &Audio{assets: assets}
}

func (a *Audio) Play(cue game.Cue) {
	if snd, ok := a.assets.Sound(cue); ok {
		rl.PlaySound(snd)
	}
}
