package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个完整的画面（本程序只有过渡动画场景）
type Scene interface {
	// Update 更新场景逻辑，deltaTime 为距上一帧的时间（秒）
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}
