package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 可更新、可绘制的场景
type Scene interface {
	// Update 每个 tick 调用一次，deltaTime 为秒
	Update(deltaTime float64)

	// Draw 绘制到 screen
	Draw(screen *ebiten.Image)
}
