package utils

import (
	"math"
	"testing"
)

// square 10x10 正方形，包围盒中心 (5, 5)
var square = []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

func pointsAlmostEqual(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

// TestBounds 测试包围盒计算
func TestBounds(t *testing.T) {
	octagon := []Point{{25, 5}, {60, 5}, {80, 30}, {80, 80}, {60, 100}, {25, 100}, {5, 80}, {5, 30}}

	tests := []struct {
		name                   string
		points                 []Point
		minX, minY, maxX, maxY float64
	}{
		{"空多边形", nil, 0, 0, 0, 0},
		{"单点", []Point{{3, 4}}, 3, 4, 3, 4},
		{"正方形", square, 0, 0, 10, 10},
		{"八边形", octagon, 5, 5, 80, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minX, minY, maxX, maxY := Bounds(tt.points)
			if minX != tt.minX || minY != tt.minY || maxX != tt.maxX || maxY != tt.maxY {
				t.Errorf("Bounds() = (%v, %v, %v, %v), 期望 (%v, %v, %v, %v)",
					minX, minY, maxX, maxY, tt.minX, tt.minY, tt.maxX, tt.maxY)
			}
		})
	}
}

// TestTransformPolygon 测试缩放、旋转和平移
func TestTransformPolygon(t *testing.T) {
	tests := []struct {
		name    string
		scale   float64
		degrees float64
		dx, dy  float64
		want    []Point
	}{
		{"恒等变换", 1, 0, 0, 0, square},
		{"平移", 1, 0, 3, -2, []Point{{3, -2}, {13, -2}, {13, 8}, {3, 8}}},
		{"以中心缩放两倍", 2, 0, 0, 0, []Point{{-5, -5}, {15, -5}, {15, 15}, {-5, 15}}},
		// 屏幕坐标系中 +90 度为顺时针
		{"顺时针旋转 90 度", 1, 90, 0, 0, []Point{{10, 0}, {10, 10}, {0, 10}, {0, 0}}},
		{"旋转 360 度回到原位", 1, 360, 0, 0, square},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TransformPolygon(nil, square, tt.scale, tt.degrees, tt.dx, tt.dy)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, 期望 %d", len(got), len(tt.want))
			}
			for i := range got {
				if !pointsAlmostEqual(got[i], tt.want[i]) {
					t.Errorf("点 %d = %v, 期望 %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestTransformPolygonKeepsCenter 缩放和旋转不移动包围盒中心
func TestTransformPolygonKeepsCenter(t *testing.T) {
	got := TransformPolygon(nil, square, 1.6, 45, 0, 0)
	center := Point{}
	for _, p := range got {
		center.X += p.X / float64(len(got))
		center.Y += p.Y / float64(len(got))
	}
	if !pointsAlmostEqual(center, Point{5, 5}) {
		t.Errorf("中心 = %v, 期望 (5, 5)", center)
	}
}

// TestTransformPolygonReusesBuffer 容量足够时复用 dst
func TestTransformPolygonReusesBuffer(t *testing.T) {
	buf := make([]Point, 0, 8)
	got := TransformPolygon(buf, square, 1, 0, 0, 0)
	if &got[0] != &buf[:1][0] {
		t.Error("TransformPolygon 应复用 dst 的底层数组")
	}
}

// TestPointInRect 测试点在矩形内检测
func TestPointInRect(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"内部", 40, 10, true},
		{"左上角", 0, 0, true},
		{"右下角", 84, 26, true},
		{"右侧外部", 85, 10, false},
		{"下方外部", 40, 27, false},
		{"负坐标", -1, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInRect(tt.px, tt.py, 0, 0, 84, 26); got != tt.want {
				t.Errorf("PointInRect(%v, %v) = %v, 期望 %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}
