package ui

import (
	"fmt"
	"snake-arcade/game"
	"snake-arcade/game/sprite"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	backgroundColor = rl.Color{R: 175, G: 215, B: 70, A: 255}
	grassColor      = rl.Color{R: 167, G: 209, B: 61, A: 255}
	textColor       = rl.Color{R: 56, G: 74, B: 12, A: 255}
	snakeColor      = rl.Color{R: 87, G: 116, B: 235, A: 255}
	headColor       = rl.Color{R: 62, G: 84, B: 190, A: 255}
	fruitColor      = rl.Color{R: 220, G: 48, B: 48, A: 255}
)

const (
	scoreFontSize = 25
	scorePadding  = 4
)

type Renderer struct {
	cellSize int32
	assets   *Assets
}

func NewRenderer(cellSize int, assets *Assets) *Renderer {
	return &Renderer{
		cellSize: int32(cellSize),
		assets:   assets,
	}
}

// Draw renders one frame of v.
func (r *Renderer) Draw(v game.View) {
	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	r.drawGrass(v.Grid)
	r.drawFruit(v.Food)
	r.drawSnake(v.Body)
	r.drawScore(v)

	rl.EndDrawing()
}

// drawGrass paints the checkerboard: cells where row and column share parity.
func (r *Renderer) drawGrass(grid types.Grid) {
	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			if row%2 == col%2 {
				rl.DrawRectangle(int32(col)*r.cellSize, int32(row)*r.cellSize, r.cellSize, r.cellSize, grassColor)
			}
		}
	}
}

func (r *Renderer) drawFruit(p types.Point) {
	x, y := r.cellOrigin(p)
	if tex, ok := r.assets.Fruit(); ok {
		r.blit(tex, x, y)
		return
	}
	half := float32(r.cellSize) / 2
	rl.DrawCircle(x+int32(half), y+int32(half), half*0.8, fruitColor)
}

func (r *Renderer) drawSnake(body []types.Point) {
	keys := sprite.Classify(body)
	// tail first so the head stays on top when segments overlap
	for i := len(body) - 1; i >= 0; i-- {
		x, y := r.cellOrigin(body[i])
		if tex, ok := r.assets.Sprite(keys[i]); ok {
			r.blit(tex, x, y)
			continue
		}
		color := snakeColor
		if keys[i].Part == sprite.Head {
			color = headColor
		}
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
	}
}

// drawScore draws the score box in the bottom right corner.
func (r *Renderer) drawScore(v game.View) {
	text := fmt.Sprintf("%d", v.Score)
	if v.GamesPlayed > 0 {
		text = fmt.Sprintf("%d  best %d  last %d  avg %.1f", v.Score, v.HighScore, v.LastScore, v.AvgScore)
	}

	textWidth := rl.MeasureText(text, scoreFontSize)
	screenW := int32(v.Grid.Width) * r.cellSize
	screenH := int32(v.Grid.Height) * r.cellSize
	centerX := screenW - 60
	centerY := screenH - 40

	textX := centerX - textWidth/2
	if right := textX + textWidth + 2*scorePadding; right > screenW {
		textX -= right - screenW
	}
	textY := centerY - scoreFontSize/2
	iconX := textX - r.cellSize
	iconY := centerY - r.cellSize/2

	box := rl.Rectangle{
		X:      float32(iconX),
		Y:      float32(iconY),
		Width:  float32(r.cellSize + textWidth + 2*scorePadding),
		Height: float32(r.cellSize),
	}
	rl.DrawRectangleRec(box, grassColor)
	rl.DrawRectangleLinesEx(box, 2, textColor)
	rl.DrawText(text, textX, textY, scoreFontSize, textColor)

	if tex, ok := r.assets.Fruit(); ok {
		r.blit(tex, iconX, iconY)
	} else {
		half := float32(r.cellSize) / 2
		rl.DrawCircle(iconX+int32(half), iconY+int32(half), half*0.6, fruitColor)
	}
}

func (r *Renderer) cellOrigin(p types.Point) (int32, int32) {
	return int32(p.X) * r.cellSize, int32(p.Y) * r.cellSize
}

// blit draws tex scaled to one cell.
func (r *Renderer) blit(tex rl.Texture2D, x, y int32) {
	src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
	dst := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(r.cellSize), Height: float32(r.cellSize)}
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
}
