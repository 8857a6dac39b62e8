package components

// UIState 表示 UI 元素（如按钮）当前的交互状态
type UIState int

const (
	// UINormal 默认状态
	UINormal UIState = iota
	// UIHovered 鼠标悬停
	UIHovered
	// UIClicked 鼠标按下
	UIClicked
	// UIDisabled 禁用，不响应交互
	UIDisabled
)

// String 返回状态名称（用于日志）
func (s UIState) String() string {
	switch s {
	case UIHovered:
		return "Hovered"
	case UIClicked:
		return "Clicked"
	case UIDisabled:
		return "Disabled"
	default:
		return "Normal"
	}
}

// PositionComponent 实体在屏幕上的位置（左上角，逻辑坐标）
type PositionComponent struct {
	X, Y float64
}
