package ui

import (
	"os"
	"path/filepath"
	"snake-arcade/game"
	"snake-arcade/game/sprite"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

const (
	graphicsDir = "Graphics"
	soundDir    = "Sound"
	fruitFile   = "apple.png"
)

var cueFiles = map[game.Cue]string{
	game.CueEat:      "crunch.wav",
	game.CueGameOver: "game_over.wav",
}

// Assets is the presentation-layer lookup table for sprites and sounds.
// An empty table is valid: the renderer falls back to plain shapes and the
// audio stays silent.
type Assets struct {
	sprites map[sprite.Key]rl.Texture2D
	fruit   *rl.Texture2D
	sounds  map[game.Cue]rl.Sound
}

func NewAssets() *Assets {
	return &Assets{
		sprites: make(map[sprite.Key]rl.Texture2D),
		sounds:  make(map[game.Cue]rl.Sound),
	}
}

// LoadAssets loads every sprite from dir/Graphics and, when an audio device
// is open, every cue from dir/Sound. Any missing file is an error.
// Must be called after the window is created.
func LoadAssets(dir string) (*Assets, error) {
	a := NewAssets()

	for _, key := range sprite.Keys() {
		tex, err := loadTexture(filepath.Join(dir, graphicsDir, key.FileName()))
		if err != nil {
			a.Unload()
			return nil, err
		}
		a.sprites[key] = tex
	}

	fruit, err := loadTexture(filepath.Join(dir, graphicsDir, fruitFile))
	if err != nil {
		a.Unload()
		return nil, err
	}
	a.fruit = &fruit

	if !rl.IsAudioDeviceReady() {
		return a, nil
	}
	for cue, name := range cueFiles {
		snd, err := loadSound(filepath.Join(dir, soundDir, name))
		if err != nil {
			a.Unload()
			return nil, err
		}
		a.sounds[cue] = snd
	}
	return a, nil
}

func loadTexture(path string) (rl.Texture2D, error) {
	if _, err := os.Stat(path); err != nil {
		return rl.Texture2D{}, errors.Wrap(err, "sprite")
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return tex, errors.Errorf("sprite %s: failed to load texture", path)
	}
	return tex, nil
}

func loadSound(path string) (rl.Sound, error) {
	if _, err := os.Stat(path); err != nil {
		return rl.Sound{}, errors.Wrap(err, "sound")
	}
	snd := rl.LoadSound(path)
	if snd.FrameCount == 0 {
		return snd, errors.Errorf("sound %s: failed to decode", path)
	}
	return snd, nil
}

// Sprite returns the texture for key, if loaded.
func (a *Assets) Sprite(key sprite.Key) (rl.Texture2D, bool) {
	tex, ok := a.sprites[key]
	return tex, ok
}

func (a *Assets) Fruit() (rl.Texture2D, bool) {
	if a.fruit == nil {
		return rl.Texture2D{}, false
	}
	return *a.fruit, true
}

func (a *Assets) Sound(cue game.Cue) (rl.Sound, bool) {
	snd, ok := a.sounds[cue]
	return snd, ok
}

// Unload releases every loaded texture and sound.
func (a *Assets) Unload() {
	for key, tex := range a.sprites {
		rl.UnloadTexture(tex)
		delete(a.sprites, key)
	}
	if a.fruit != nil {
		rl.UnloadTexture(*a.fruit)
		a.fruit = nil
	}
	for cue, snd := range a.sounds {
		rl.UnloadSound(snd)
		delete(a.sounds, cue)
	}
}
