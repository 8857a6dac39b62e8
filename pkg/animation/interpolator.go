// Package animation 实现形状过渡动画的核心：轨道、片段、序列和播放器
//
// 所有插值都是"已播放时间 → 属性值"的纯函数，
// 播放器（Sequencer）只负责推进时间和维护播放/暂停状态。
package animation

import (
	"sort"

	"github.com/fogleman/ease"
)

// Interpolator 插值曲线
// 输入进度 t ∈ [0, 1]，返回曲线进度 ∈ [0, 1]
type Interpolator func(t float64) float64

// 插值器名称常量（配置文件中使用）
const (
	InterpolatorLinear   = "linear"
	InterpolatorEaseIn   = "ease-in"
	InterpolatorEaseOut  = "ease-out"
	InterpolatorEaseBoth = "ease-both"
	InterpolatorDiscrete = "discrete"
)

var interpolators = map[string]Interpolator{
	InterpolatorLinear:   ease.Linear,
	InterpolatorEaseIn:   ease.InQuad,
	InterpolatorEaseOut:  ease.OutQuad,
	InterpolatorEaseBoth: ease.InOutQuad,
	InterpolatorDiscrete: discrete,
}

// discrete 离散插值：到达终点前保持起始值
func discrete(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 0.0
}

// LookupInterpolator 按名称查找插值器
// 空字符串视为 linear
func LookupInterpolator(name string) (Interpolator, bool) {
	if name == "" {
		return ease.Linear, true
	}
	fn, ok := interpolators[name]
	return fn, ok
}

// InterpolatorNames 返回所有已注册的插值器名称（已排序）
func InterpolatorNames() []string {
	names := make([]string, 0, len(interpolators))
	for name := range interpolators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
