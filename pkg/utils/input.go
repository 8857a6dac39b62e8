package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 当前帧的指针与快捷键输入
// 统一鼠标和触摸输入，便于系统在测试中注入
type PointerState struct {
	// X, Y 指针位置（逻辑坐标）
	X, Y int
	// Pressed 指针是否处于按下状态
	Pressed bool
	// JustPressed 指针是否在本帧刚刚按下
	JustPressed bool
	// JustReleased 指针是否在本帧刚刚释放
	JustReleased bool
	// ToggleKey 切换快捷键（空格）是否在本帧刚刚按下
	ToggleKey bool
}

// InputSource 输入来源，每帧调用一次
type InputSource func() PointerState

// ReadPointerState 从 Ebitengine 读取当前帧的输入状态
// 优先使用触摸输入，没有触摸时使用鼠标
func ReadPointerState() PointerState {
	state := PointerState{
		ToggleKey: inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}

	// 刚释放的触摸（移动设备）
	released := inpututil.AppendJustReleasedTouchIDs(nil)
	if len(released) > 0 {
		state.X, state.Y = inpututil.TouchPositionInPreviousTick(released[0])
		state.JustReleased = true
		return state
	}

	// 活动中的触摸
	touches := ebiten.AppendTouchIDs(nil)
	if len(touches) > 0 {
		state.X, state.Y = ebiten.TouchPosition(touches[0])
		state.Pressed = true
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			if id == touches[0] {
				state.JustPressed = true
			}
		}
		return state
	}

	// 鼠标（桌面设备）
	state.X, state.Y = ebiten.CursorPosition()
	state.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return state
}
