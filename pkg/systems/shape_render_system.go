package systems

import (
	"image"
	"image/color"

	"github.com/gonewx/transitions/pkg/components"
	"github.com/gonewx/transitions/pkg/ecs"
	"github.com/gonewx/transitions/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ShapeRenderSystem 多边形渲染系统
//
// 查询拥有 ShapeComponent、TransformComponent、PositionComponent 的实体，
// 按 缩放 → 旋转 → 布局偏移 + 平移 的顺序变换顶点，
// 用纯色三角形填充（顶点颜色 = 填充色，Alpha = 不透明度）。
type ShapeRenderSystem struct {
	entityManager *ecs.EntityManager

	// whiteSubImage 1x1 纯白纹理，三角形颜色完全由顶点颜色决定
	whiteSubImage *ebiten.Image

	// 复用的缓冲区，避免每帧分配
	points   []utils.Point
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewShapeRenderSystem 创建多边形渲染系统
func NewShapeRenderSystem(em *ecs.EntityManager) *ShapeRenderSystem {
	whiteImage := ebiten.NewImage(3, 3)
	whiteImage.Fill(color.White)

	return &ShapeRenderSystem{
		entityManager: em,
		whiteSubImage: whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Draw 渲染所有形状
func (s *ShapeRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ShapeComponent, *components.TransformComponent](s.entityManager)
	for _, id := range entities {
		shape, _ := ecs.GetComponent[*components.ShapeComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		var pos components.PositionComponent
		if p, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
			pos = *p
		}

		s.drawShape(screen, shape, transform, pos)
	}
}

// drawShape 渲染单个形状
func (s *ShapeRenderSystem) drawShape(screen *ebiten.Image, shape *components.ShapeComponent, transform *components.TransformComponent, pos components.PositionComponent) {
	if len(shape.Points) < 3 || transform.Opacity <= 0 {
		return
	}

	s.points = ShapeVertices(s.points, shape, transform, pos)

	var path vector.Path
	path.MoveTo(float32(s.points[0].X), float32(s.points[0].Y))
	for _, p := range s.points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])

	fill := transform.Fill.Clamped()
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = float32(fill.R)
		s.vertices[i].ColorG = float32(fill.G)
		s.vertices[i].ColorB = float32(fill.B)
		s.vertices[i].ColorA = float32(transform.Opacity)
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(s.vertices, s.indices, s.whiteSubImage, op)
}

// ShapeVertices 计算形状在屏幕上的顶点位置
//
// 变换顺序：
//  1. 以包围盒中心为轴心缩放 shape.Scale 倍
//  2. 绕同一轴心旋转 transform.Rotation 度
//  3. 平移 pos + transform.Translate
//
// 结果写入 dst 并返回
func ShapeVertices(dst []utils.Point, shape *components.ShapeComponent, transform *components.TransformComponent, pos components.PositionComponent) []utils.Point {
	scale := shape.Scale
	if scale == 0 {
		scale = 1
	}
	return utils.TransformPolygon(dst, shape.Points, scale, transform.Rotation,
		pos.X+transform.TranslateX, pos.Y+transform.TranslateY)
}
