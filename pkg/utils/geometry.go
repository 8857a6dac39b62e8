package utils

import "math"

// Point 二维点
type Point struct {
	X, Y float64
}

// Bounds 返回多边形的轴对齐包围盒
// 空多边形返回全 0
func Bounds(points []Point) (minX, minY, maxX, maxY float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = points[0].X, points[0].Y
	maxX, maxY = minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

// BoundsCenter 返回多边形包围盒的中心（缩放和旋转的轴心）
func BoundsCenter(points []Point) Point {
	minX, minY, maxX, maxY := Bounds(points)
	return Point{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
}

// TransformPolygon 变换多边形顶点
//
// 顺序：
//  1. 以包围盒中心为轴心缩放 scale 倍
//  2. 绕同一轴心顺时针旋转 degrees 度（屏幕坐标系 Y 轴向下）
//  3. 平移 (dx, dy)
//
// 结果写入 dst（容量不足时重新分配）并返回
func TransformPolygon(dst, points []Point, scale, degrees, dx, dy float64) []Point {
	dst = dst[:0]
	center := BoundsCenter(points)
	rad := degrees * math.Pi / 180.0
	sin, cos := math.Sincos(rad)

	for _, p := range points {
		x := (p.X - center.X) * scale
		y := (p.Y - center.Y) * scale
		rx := x*cos - y*sin
		ry := x*sin + y*cos
		dst = append(dst, Point{X: center.X + rx + dx, Y: center.Y + ry + dy})
	}
	return dst
}

// PointInRect 检测点是否在矩形内（包含边界）
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
