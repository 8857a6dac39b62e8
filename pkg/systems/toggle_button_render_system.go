package systems

import (
	"image/color"

	"github.com/gonewx/transitions/pkg/components"
	"github.com/gonewx/transitions/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 按钮配色
var (
	buttonNormalColor   = color.RGBA{R: 224, G: 224, B: 224, A: 255}
	buttonHoverColor    = color.RGBA{R: 236, G: 242, B: 250, A: 255}
	buttonSelectedColor = color.RGBA{R: 170, G: 180, B: 196, A: 255}
	buttonDisabledColor = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	buttonBorderColor   = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	buttonFocusColor    = color.RGBA{R: 3, G: 158, B: 211, A: 255}
	buttonTextColor     = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// ToggleButtonRenderSystem 切换按钮渲染系统
//
// 职责：
//   - 根据 Selected/State 选择背景色并绘制边框
//   - 绘制居中的按钮文字
type ToggleButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewToggleButtonRenderSystem 创建切换按钮渲染系统
func NewToggleButtonRenderSystem(em *ecs.EntityManager) *ToggleButtonRenderSystem {
	return &ToggleButtonRenderSystem{entityManager: em}
}

// Draw 渲染所有切换按钮
func (s *ToggleButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ToggleButtonComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		button, _ := ecs.GetComponent[*components.ToggleButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.drawButton(screen, button, pos.X, pos.Y)
	}
}

// drawButton 渲染单个按钮
func (s *ToggleButtonRenderSystem) drawButton(screen *ebiten.Image, button *components.ToggleButtonComponent, x, y float64) {
	fx, fy := float32(x), float32(y)
	fw, fh := float32(button.Width), float32(button.Height)

	vector.DrawFilledRect(screen, fx, fy, fw, fh, ButtonBackground(button), true)

	border := buttonBorderColor
	if button.State == components.UIHovered || button.State == components.UIClicked {
		border = buttonFocusColor
	}
	vector.StrokeRect(screen, fx, fy, fw, fh, 1, border, true)

	if button.Font == nil || button.Label == "" {
		return
	}

	textW, textH := text.Measure(button.Label, button.Font, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+(button.Width-textW)/2, y+(button.Height-textH)/2)
	op.ColorScale.ScaleWithColor(buttonTextColor)
	text.Draw(screen, button.Label, button.Font, op)
}

// ButtonBackground 返回按钮当前应使用的背景色
// 选中（按下）状态优先于悬停状态
func ButtonBackground(button *components.ToggleButtonComponent) color.Color {
	switch {
	case !button.Enabled || button.State == components.UIDisabled:
		return buttonDisabledColor
	case button.Selected || button.State == components.UIClicked:
		return buttonSelectedColor
	case button.State == components.UIHovered:
		return buttonHoverColor
	default:
		return buttonNormalColor
	}
}
