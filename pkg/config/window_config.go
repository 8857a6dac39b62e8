package config

// 窗口与布局常量
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 600
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 600

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Transitions"

	// ToolbarWidth 左侧工具栏宽度（按钮所在区域）
	// 形状的布局坐标相对于工具栏右侧的内容区
	ToolbarWidth = 84.0

	// ToggleButtonHeight 切换按钮高度
	ToggleButtonHeight = 26.0

	// ToggleButtonLabel 切换按钮文字
	ToggleButtonLabel = "start/stop"

	// ButtonFontSize 按钮文字字号
	ButtonFontSize = 13.0

	// TicksPerSecond 逻辑更新频率（与 Ebitengine 默认 TPS 一致）
	TicksPerSecond = 60
)
