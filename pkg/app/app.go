// Package app 提供应用的核心包装器
//
// 把初始化逻辑从 main 包提取出来：加载场景配置、创建设置管理器和场景，
// 并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/transitions/pkg/config"
	"github.com/gonewx/transitions/pkg/game"
	"github.com/gonewx/transitions/pkg/scenes"
	"github.com/gonewx/transitions/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "transitions"

// Config 应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ScenePath 场景配置路径，为空时使用内嵌的默认配置
	ScenePath string
	// SaveSettings 是否持久化窗口设置（默认不写任何文件）
	SaveSettings bool
	// WindowScale 窗口缩放，大于 0 时覆盖已保存的设置
	WindowScale float64
}

// App 应用核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool

	pendingWindowSizeReset   bool // 退出全屏后延迟恢复窗口大小
	windowSizeResetCountdown int
}

// NewApp 创建并初始化应用
//
// 调用前必须先调用 embedded.Init() 注入内嵌资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	scenePath := cfg.ScenePath
	if scenePath == "" {
		scenePath = config.DefaultScenePath
	}
	sceneConfig, err := config.LoadSceneConfig(scenePath)
	if err != nil {
		return nil, fmt.Errorf("场景配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载场景配置: %s (%d 个片段)", scenePath, len(sceneConfig.Sequence))

	var gdataManager *gdata.Manager
	if cfg.SaveSettings {
		if err := utils.EnsureStorageDir(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
		gdataManager, err = gdata.Open(gdata.Config{AppName: AppName})
		if err != nil {
			// 无法持久化不影响运行，降级为仅内存设置
			log.Printf("[App] Warning: gdata unavailable: %v (settings will not be saved)", err)
			gdataManager = nil
		}
	}
	settingsManager := game.NewSettingsManager(gdataManager)
	if cfg.WindowScale > 0 {
		settingsManager.SetWindowScale(cfg.WindowScale)
		if err := settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	}

	resourceManager, err := game.NewResourceManager()
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	scene, err := scenes.NewTransitionsScene(resourceManager, sceneConfig, nil)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// ApplyWindowSettings 按设置调整窗口大小和全屏状态
// 在 ebiten.RunGame 之前调用
func (a *App) ApplyWindowSettings() {
	if utils.IsMobile() {
		return
	}
	settings := a.settingsManager.GetSettings()
	w, h := WindowSize(settings.WindowScale)
	ebiten.SetWindowSize(w, h)
	ebiten.SetFullscreen(settings.Fullscreen)
	log.Printf("[App] Window %dx%d, fullscreen=%v", w, h, settings.Fullscreen)
}

// WindowSize 返回指定缩放下的窗口尺寸
func WindowSize(scale float64) (int, int) {
	if scale <= 0 {
		scale = 1.0
	}
	return int(float64(config.GameWindowWidth) * scale), int(float64(config.GameWindowHeight) * scale)
}

// Update 更新逻辑，每个 tick 调用一次
func (a *App) Update() error {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := WindowSize(a.settingsManager.GetSettings().WindowScale)
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// toggleFullscreen 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 窗口管理器需要几帧处理退出全屏
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settingsManager.SetFullscreen(false)
	} else {
		ebiten.SetFullscreen(true)
		a.settingsManager.SetFullscreen(true)
	}

	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制画面，每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧 letterbox 填充黑色，使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸，Ebitengine 自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSettingsManager 返回设置管理器
func (a *App) GetSettingsManager() *game.SettingsManager {
	return a.settingsManager
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
