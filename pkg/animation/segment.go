package animation

import (
	"math"
	"time"
)

// Segment 序列中的一个片段
// 只有一条轨道时为原子片段，多条轨道时为并行片段（同时开始）
type Segment struct {
	Name   string
	Tracks []Track
}

// Parallel 是否为并行片段
func (s Segment) Parallel() bool {
	return len(s.Tracks) > 1
}

// Duration 片段时长，取最长轨道的总时长
// 较短的轨道在结束后保持最终值，直到片段结束
func (s Segment) Duration() time.Duration {
	var d time.Duration
	for _, t := range s.Tracks {
		if td := t.TotalDuration(); td > d {
			d = td
		}
	}
	return d
}

// Apply 把片段在 elapsed 时刻的取值写入 v
func (s Segment) Apply(v *Values, elapsed time.Duration) {
	for _, t := range s.Tracks {
		t.Apply(v, elapsed)
	}
}

// Displacement 片段内所有平移轨道的净位移之和
func (s Segment) Displacement() (dx, dy float64) {
	for _, t := range s.Tracks {
		tx, ty := t.Displacement()
		dx += tx
		dy += ty
	}
	return dx, dy
}

// Sequence 按顺序播放的片段列表，播放时整体无限循环
type Sequence struct {
	Segments []Segment
}

// Duration 一次完整播放（pass）的总时长
func (s Sequence) Duration() time.Duration {
	var d time.Duration
	for _, seg := range s.Segments {
		d += seg.Duration()
	}
	return d
}

// NetDisplacement 一次完整播放后的净位移
// 为 0 时形状回到原点，循环在视觉上无缝衔接
func (s Sequence) NetDisplacement() (dx, dy float64) {
	for _, seg := range s.Segments {
		sx, sy := seg.Displacement()
		dx += sx
		dy += sy
	}
	return dx, dy
}

// Discontinuity 按顺序检查平移轨道是否首尾相接
//
// 每条平移轨道的起点必须等于上一条平移轨道的终点，
// 最后一条的终点必须回到第一条的起点。
// 全部相接时返回 ok=true；否则返回第一处断点所在的片段索引和轨道索引，
// 以及期望的起点 (wantX, wantY)。回到起点的断点报告为第一条平移轨道。
func (s Sequence) Discontinuity(tolerance float64) (segment, track int, wantX, wantY float64, ok bool) {
	first := true
	var startX, startY, endX, endY float64
	firstSeg, firstTrack := 0, 0

	for i, seg := range s.Segments {
		for j, t := range seg.Tracks {
			if t.Kind != TrackTranslate {
				continue
			}
			if first {
				first = false
				startX, startY = t.FromX, t.FromY
				firstSeg, firstTrack = i, j
			} else if math.Abs(t.FromX-endX) > tolerance || math.Abs(t.FromY-endY) > tolerance {
				return i, j, endX, endY, false
			}
			dx, dy := t.Displacement()
			endX, endY = t.FromX+dx, t.FromY+dy
		}
	}

	if !first && (math.Abs(endX-startX) > tolerance || math.Abs(endY-startY) > tolerance) {
		return firstSeg, firstTrack, endX, endY, false
	}
	return 0, 0, 0, 0, true
}

// Locate 把一次播放内的绝对时间换算为 (片段索引, 片段内已播放时间)
// t 超出单次播放时长时按时长取模
func (s Sequence) Locate(t time.Duration) (int, time.Duration) {
	total := s.Duration()
	if total <= 0 || len(s.Segments) == 0 {
		return 0, 0
	}
	t %= total
	if t < 0 {
		t += total
	}
	for i, seg := range s.Segments {
		d := seg.Duration()
		if t < d {
			return i, t
		}
		t -= d
	}
	return len(s.Segments) - 1, s.Segments[len(s.Segments)-1].Duration()
}

// ValuesAt 从 base 出发，计算第 index 个片段播放到 elapsed 时的属性值
// 之前的片段按最终状态依次叠加
func (s Sequence) ValuesAt(base Values, index int, elapsed time.Duration) Values {
	v := base
	for i := 0; i < index && i < len(s.Segments); i++ {
		seg := s.Segments[i]
		seg.Apply(&v, seg.Duration())
	}
	if index >= 0 && index < len(s.Segments) {
		s.Segments[index].Apply(&v, elapsed)
	}
	return v
}

// EndValues 从 base 出发完整播放一次后的属性值
func (s Sequence) EndValues(base Values) Values {
	return s.ValuesAt(base, len(s.Segments), 0)
}
