package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 窗口缩放范围
const (
	MinWindowScale = 0.5
	MaxWindowScale = 3.0
)

// WindowSettings 窗口设置
// 只有启用 -save-settings 时才会持久化
type WindowSettings struct {
	Fullscreen  bool    `yaml:"fullscreen"`  // 启动时是否全屏
	WindowScale float64 `yaml:"windowScale"` // 窗口尺寸相对逻辑尺寸的倍数
}

// DefaultSettings 返回默认设置
func DefaultSettings() *WindowSettings {
	return &WindowSettings{
		Fullscreen:  false,
		WindowScale: 1.0,
	}
}

// SettingsManager 设置管理器
// 负责窗口设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存设置）
	settings     *WindowSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "window"
)

// NewSettingsManager 创建设置管理器
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误：记录警告并使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Persistent 是否能持久化设置
func (sm *SettingsManager) Persistent() bool {
	return sm.gdataManager != nil
}

// Load 从 gdata 加载设置
// gdataManager 为 nil 或设置不存在时使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.WindowScale = clampWindowScale(loaded.WindowScale)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded: %+v", *loaded)
	return nil
}

// Save 保存设置到 gdata
// gdataManager 为 nil 时直接返回 nil（降级模式）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *WindowSettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式（仅修改内存，需调用 Save() 持久化）
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetWindowScale 设置窗口缩放，限制在 MinWindowScale ~ MaxWindowScale
func (sm *SettingsManager) SetWindowScale(scale float64) {
	sm.settings.WindowScale = clampWindowScale(scale)
}

// clampWindowScale 限制窗口缩放范围，0（未设置）视为 1.0
func clampWindowScale(scale float64) float64 {
	if scale == 0 {
		return 1.0
	}
	if scale < MinWindowScale {
		return MinWindowScale
	}
	if scale > MaxWindowScale {
		return MaxWindowScale
	}
	return scale
}
