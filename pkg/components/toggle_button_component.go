package components

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ToggleButtonComponent 双态切换按钮（纯数据组件）
//
// 每次点击（在按钮内按下并在按钮内释放）或按下快捷键时 Selected 取反，
// 并以新的 Selected 值调用 OnToggle。
type ToggleButtonComponent struct {
	// Label 按钮文字
	Label string
	// Font 文字字体，nil 时不绘制文字
	Font *text.GoTextFace

	// Width/Height 按钮尺寸（像素）
	Width  float64
	Height float64

	// Selected 是否处于按下（选中）状态
	Selected bool
	// State 当前交互状态
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool
	// Armed 指针在按钮内按下后为 true，释放时清除
	Armed bool

	// OnToggle 状态切换回调，参数为切换后的 Selected
	OnToggle func(selected bool)
}
