package animation

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// 默认序列使用的常量
const (
	// MoveX 水平移动距离
	MoveX = 240.0
	// MoveY 垂直移动距离
	MoveY = 225.0

	// SegmentDuration 前四个片段的时长
	SegmentDuration = 2000 * time.Millisecond
	// FillSegmentDuration 第五个片段（变色）的时长
	FillSegmentDuration = 1000 * time.Millisecond
)

var (
	// GreenYellow 形状初始填充色 (#ADFF2F)
	GreenYellow = colorful.Color{R: 173.0 / 255.0, G: 1.0, B: 47.0 / 255.0}
	// Purple 变色目标色 (#800080)
	Purple = colorful.Color{R: 128.0 / 255.0, G: 0, B: 128.0 / 255.0}
)

// DefaultBase 默认起始属性：原点、不旋转、不透明、GreenYellow
func DefaultBase() Values {
	return Values{Opacity: 1.0, Fill: GreenYellow}
}

// DefaultSequence 默认的五段动画：
//
//  1. 向上移动
//  2. 向右下移动 + 旋转两圈
//  3. 向左下移动 + 淡出
//  4. 向左上移动 + 淡入
//  5. 回到原点 + 两次往返变色
//
// 每段的平移首尾相接，单次播放的净位移为 0。
func DefaultSequence() Sequence {
	d := SegmentDuration
	fillCycle := FillSegmentDuration / 2

	return Sequence{Segments: []Segment{
		{Name: "move-up", Tracks: []Track{
			Translate(0, 0, 0, -MoveY, d),
		}},
		{Name: "move-rotate", Tracks: []Track{
			Translate(0, -MoveY, MoveX, 0, d),
			Rotate(0, 720, d),
		}},
		{Name: "move-fade-out", Tracks: []Track{
			Translate(MoveX, 0, 0, MoveY, d),
			Fade(1.0, 0.1, d).WithAutoReverse(),
		}},
		{Name: "move-fade-in", Tracks: []Track{
			Translate(0, MoveY, -MoveX, 0, d),
			Fade(0.1, 1.0, d).WithAutoReverse(),
		}},
		{Name: "move-fill", Tracks: []Track{
			Translate(-MoveX, 0, 0, 0, FillSegmentDuration),
			Fill(GreenYellow, Purple, fillCycle).WithCycles(2).WithAutoReverse(),
		}},
	}}
}
