package components

import (
	"github.com/gonewx/transitions/pkg/utils"
	"github.com/lucasb-eyer/go-colorful"
)

// ShapeComponent 多边形形状（纯数据）
//
// Points 是多边形在自身局部坐标系中的顶点，
// 渲染时先以包围盒中心为轴心缩放、旋转，再加上 PositionComponent 的布局偏移
// 和 TransformComponent 的平移。
type ShapeComponent struct {
	// Points 多边形顶点（局部坐标）
	Points []utils.Point
	// Scale 缩放倍数（以包围盒中心为轴心）
	Scale float64
}

// TransformComponent 形状的可变属性，由 TransitionSystem 每帧写入
type TransformComponent struct {
	// TranslateX/TranslateY 相对布局锚点的平移
	TranslateX float64
	TranslateY float64
	// Rotation 旋转角度（度，顺时针）
	Rotation float64
	// Opacity 不透明度 0.0 ~ 1.0
	Opacity float64
	// Fill 填充颜色
	Fill colorful.Color
}
