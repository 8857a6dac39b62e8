package main

import (
	"flag"
	"log"
	"os"

	"github.com/gonewx/transitions/pkg/app"
	"github.com/gonewx/transitions/pkg/config"
	"github.com/gonewx/transitions/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	scenePath := flag.String("config", "", "场景配置 YAML 文件（默认使用内嵌的 "+config.DefaultScenePath+"）")
	saveSettings := flag.Bool("save-settings", false, "持久化窗口设置（全屏、缩放）")
	windowScale := flag.Float64("scale", 0, "窗口缩放倍数（0.5 ~ 3.0，0 表示使用已保存的设置）")
	flag.Parse()

	// 初始化内嵌资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		ScenePath:    *scenePath,
		SaveSettings: *saveSettings,
		WindowScale:  *windowScale,
	})
	if err != nil {
		// NewApp 可能已关闭日志输出，错误直接写到 stderr
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetTPS(config.TicksPerSecond)
	gameApp.ApplyWindowSettings()

	// 游戏循环：反复调用 Update/Draw 直到窗口关闭
	if err := ebiten.RunGame(gameApp); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("运行失败: %v", err)
	}
}
