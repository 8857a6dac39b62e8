package systems

import (
	"log"

	"github.com/gonewx/transitions/pkg/components"
	"github.com/gonewx/transitions/pkg/ecs"
	"github.com/gonewx/transitions/pkg/utils"
)

// ToggleButtonSystem 切换按钮交互系统
//
// 职责：
//   - 检测指针悬停/按下，更新按钮的 UIState
//   - 指针在按钮内按下并在按钮内释放，或按下空格键时，切换 Selected 并触发 OnToggle
//   - 禁用的按钮不响应交互
type ToggleButtonSystem struct {
	entityManager *ecs.EntityManager
	input         utils.InputSource
}

// NewToggleButtonSystem 创建切换按钮交互系统
// input 为 nil 时使用 utils.ReadPointerState
func NewToggleButtonSystem(em *ecs.EntityManager, input utils.InputSource) *ToggleButtonSystem {
	if input == nil {
		input = utils.ReadPointerState
	}
	return &ToggleButtonSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 更新按钮交互状态
func (s *ToggleButtonSystem) Update(deltaTime float64) {
	in := s.input()

	entities := ecs.GetEntitiesWith2[*components.ToggleButtonComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		button, _ := ecs.GetComponent[*components.ToggleButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if !button.Enabled {
			button.State = components.UIDisabled
			button.Armed = false
			continue
		}

		hovered := utils.PointInRect(float64(in.X), float64(in.Y), pos.X, pos.Y, button.Width, button.Height)
		if in.JustPressed {
			button.Armed = hovered
		}

		toggled := false
		switch {
		case hovered && in.JustReleased:
			// 只有在按钮内按下的点击才算数
			if button.Armed {
				s.toggle(button)
				toggled = true
			}
			button.State = components.UIHovered
		case hovered && in.Pressed:
			button.State = components.UIClicked
		case hovered:
			button.State = components.UIHovered
		default:
			button.State = components.UINormal
		}
		if in.JustReleased {
			button.Armed = false
		}

		// 同一帧内点击和快捷键只切换一次
		if in.ToggleKey && !toggled {
			s.toggle(button)
		}
	}
}

// toggle 切换按钮状态并触发回调
func (s *ToggleButtonSystem) toggle(button *components.ToggleButtonComponent) {
	button.Selected = !button.Selected
	log.Printf("[ToggleButtonSystem] %q selected=%v", button.Label, button.Selected)
	if button.OnToggle != nil {
		button.OnToggle(button.Selected)
	}
}
