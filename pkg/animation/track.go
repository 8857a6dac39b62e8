package animation

import (
	"fmt"
	"time"

	"github.com/gonewx/transitions/pkg/utils"
	"github.com/lucasb-eyer/go-colorful"
)

// TrackKind 轨道控制的属性类型
type TrackKind int

const (
	// TrackTranslate 平移（X/Y 偏移，相对于形状锚点）
	TrackTranslate TrackKind = iota
	// TrackRotate 旋转（角度，绕形状中心）
	TrackRotate
	// TrackFade 不透明度
	TrackFade
	// TrackFill 填充颜色
	TrackFill
)

// String 返回轨道类型名称（与配置文件中的 type 字段一致）
func (k TrackKind) String() string {
	switch k {
	case TrackTranslate:
		return "translate"
	case TrackRotate:
		return "rotate"
	case TrackFade:
		return "fade"
	case TrackFill:
		return "fill"
	default:
		return fmt.Sprintf("TrackKind(%d)", int(k))
	}
}

// Values 形状所有可变属性的一次取值
type Values struct {
	TranslateX float64
	TranslateY float64
	Rotate     float64 // 角度
	Opacity    float64 // 0.0 ~ 1.0
	Fill       colorful.Color
}

// Track 单个属性在一段时间内的变化（原子过渡）
//
// 一个周期内属性从 From 变化到 To；Cycles > 1 时重复多个周期，
// AutoReverse 为 true 时奇数周期反向播放（To → From）。
// Cycles <= 1 时 AutoReverse 不生效。
type Track struct {
	Kind TrackKind

	// 平移使用 FromX/FromY → ToX/ToY
	FromX, FromY float64
	ToX, ToY     float64

	// 旋转、不透明度使用 From → To
	From, To float64

	// 填充颜色使用 FromColor → ToColor
	FromColor, ToColor colorful.Color

	// Duration 单个周期的时长
	Duration time.Duration
	// Cycles 周期数，0 视为 1
	Cycles      int
	AutoReverse bool

	// Ease 插值曲线，nil 视为线性
	Ease Interpolator
}

// Translate 创建平移轨道
func Translate(fromX, fromY, toX, toY float64, d time.Duration) Track {
	return Track{Kind: TrackTranslate, FromX: fromX, FromY: fromY, ToX: toX, ToY: toY, Duration: d}
}

// Rotate 创建旋转轨道（角度）
func Rotate(from, to float64, d time.Duration) Track {
	return Track{Kind: TrackRotate, From: from, To: to, Duration: d}
}

// Fade 创建不透明度轨道
func Fade(from, to float64, d time.Duration) Track {
	return Track{Kind: TrackFade, From: from, To: to, Duration: d}
}

// Fill 创建填充颜色轨道
func Fill(from, to colorful.Color, d time.Duration) Track {
	return Track{Kind: TrackFill, FromColor: from, ToColor: to, Duration: d}
}

// WithCycles 返回设置了周期数的副本
func (t Track) WithCycles(n int) Track {
	t.Cycles = n
	return t
}

// WithAutoReverse 返回开启自动反向的副本
func (t Track) WithAutoReverse() Track {
	t.AutoReverse = true
	return t
}

// WithEase 返回设置了插值曲线的副本
func (t Track) WithEase(fn Interpolator) Track {
	t.Ease = fn
	return t
}

func (t Track) cycles() int {
	if t.Cycles < 1 {
		return 1
	}
	return t.Cycles
}

// TotalDuration 所有周期的总时长
func (t Track) TotalDuration() time.Duration {
	return t.Duration * time.Duration(t.cycles())
}

// progress 计算 elapsed 时刻的插值进度（已应用插值曲线和反向）
func (t Track) progress(elapsed time.Duration) float64 {
	cycles := t.cycles()
	if t.Duration <= 0 || elapsed >= t.TotalDuration() {
		// 结束状态：偶数周期的自动反向回到起点
		if t.AutoReverse && cycles > 1 && cycles%2 == 0 {
			return 0.0
		}
		return 1.0
	}
	if elapsed < 0 {
		elapsed = 0
	}

	cycle := int(elapsed / t.Duration)
	frac := float64(elapsed%t.Duration) / float64(t.Duration)
	if t.AutoReverse && cycles > 1 && cycle%2 == 1 {
		frac = 1.0 - frac
	}

	if t.Ease != nil {
		return t.Ease(frac)
	}
	return frac
}

// Apply 把 elapsed 时刻的轨道取值写入 v，只修改本轨道控制的属性
func (t Track) Apply(v *Values, elapsed time.Duration) {
	p := t.progress(elapsed)
	switch t.Kind {
	case TrackTranslate:
		v.TranslateX = utils.Lerp(t.FromX, t.ToX, p)
		v.TranslateY = utils.Lerp(t.FromY, t.ToY, p)
	case TrackRotate:
		v.Rotate = utils.Lerp(t.From, t.To, p)
	case TrackFade:
		v.Opacity = utils.Lerp(t.From, t.To, p)
	case TrackFill:
		v.Fill = t.FromColor.BlendRgb(t.ToColor, p)
	}
}

// Displacement 轨道结束时相对起点的位移（非平移轨道为 0）
func (t Track) Displacement() (dx, dy float64) {
	if t.Kind != TrackTranslate {
		return 0, 0
	}
	p := t.progress(t.TotalDuration())
	return (t.ToX - t.FromX) * p, (t.ToY - t.FromY) * p
}
