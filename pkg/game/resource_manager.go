package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ResourceManager 资源管理器，缓存 UI 字体
//
// 程序没有图片和音频资源，唯一的资源是 golang.org/x/image 内置的
// Go Regular 字体，所有字号共用同一个字体源。
// 非线程安全，只在游戏主循环中调用。
type ResourceManager struct {
	source    *text.GoTextFaceSource
	faceCache map[float64]*text.GoTextFace
}

// NewResourceManager 创建资源管理器并解析内置字体
func NewResourceManager() (*ResourceManager, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}
	return &ResourceManager{
		source:    source,
		faceCache: make(map[float64]*text.GoTextFace),
	}, nil
}

// LoadFont 返回指定字号的字体，首次使用时创建并缓存
func (rm *ResourceManager) LoadFont(size float64) *text.GoTextFace {
	if face, exists := rm.faceCache[size]; exists {
		return face
	}

	face := &text.GoTextFace{
		Source:    rm.source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.faceCache[size] = face
	return face
}
