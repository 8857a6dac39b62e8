//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 构建：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.transitions -o build/android/transitions.aar ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Transitions.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/gonewx/transitions/pkg/app"
	"github.com/gonewx/transitions/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{Verbose: true, SaveSettings: true})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
