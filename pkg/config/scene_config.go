package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/gonewx/transitions/pkg/animation"
	"github.com/gonewx/transitions/pkg/embedded"
	"github.com/gonewx/transitions/pkg/utils"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// DefaultScenePath 内嵌的默认场景配置路径
const DefaultScenePath = "data/transitions.yaml"

// displacementEpsilon 净位移判零的容差
const displacementEpsilon = 1e-6

// ErrInvalidScene 场景配置不合法
var ErrInvalidScene = errors.New("invalid scene config")

// SceneConfig 场景配置（data/transitions.yaml）
// 描述形状的外观、起始属性和动画序列
type SceneConfig struct {
	Background string          `yaml:"background"` // 背景色，如 "#000000"
	Shape      ShapeConfig     `yaml:"shape"`
	Sequence   []SegmentConfig `yaml:"sequence"`
}

// ShapeConfig 形状配置
type ShapeConfig struct {
	// Points 多边形顶点，按 x1, y1, x2, y2 ... 排列
	Points []float64 `yaml:"points"`
	// Scale 以包围盒中心为轴心的缩放倍数
	Scale float64 `yaml:"scale"`
	// LayoutX/LayoutY 形状在内容区中的布局偏移
	LayoutX float64 `yaml:"layoutX"`
	LayoutY float64 `yaml:"layoutY"`
	// Fill 初始填充色
	Fill string `yaml:"fill"`
	// Opacity 初始不透明度，缺省为 1.0
	Opacity *float64 `yaml:"opacity,omitempty"`
}

// SegmentConfig 动画片段配置
type SegmentConfig struct {
	Name   string        `yaml:"name"`
	Tracks []TrackConfig `yaml:"tracks"`
}

// TrackConfig 轨道配置
// 按 Type 使用不同字段：
//   - translate: fromX/fromY/toX/toY
//   - rotate:    from/to（角度）
//   - fade:      from/to（不透明度）
//   - fill:      fromColor/toColor
type TrackConfig struct {
	Type string `yaml:"type"`

	FromX float64 `yaml:"fromX,omitempty"`
	FromY float64 `yaml:"fromY,omitempty"`
	ToX   float64 `yaml:"toX,omitempty"`
	ToY   float64 `yaml:"toY,omitempty"`

	From float64 `yaml:"from,omitempty"`
	To   float64 `yaml:"to,omitempty"`

	FromColor string `yaml:"fromColor,omitempty"`
	ToColor   string `yaml:"toColor,omitempty"`

	DurationMs   int    `yaml:"durationMs"`             // 单个周期时长（毫秒）
	Cycles       int    `yaml:"cycles,omitempty"`       // 周期数，缺省为 1
	AutoReverse  bool   `yaml:"autoReverse,omitempty"`  // 偶数周期反向播放
	Interpolator string `yaml:"interpolator,omitempty"` // 插值器名称，缺省为 linear
}

// LoadSceneConfig 加载场景配置
//
// 以 "data/" 开头的路径从内嵌资源读取，其余路径从磁盘读取。
//
// 返回：
//   - *SceneConfig: 解析并验证后的配置
//   - error: 读取、解析或验证失败（验证失败可用 errors.Is(err, ErrInvalidScene) 判断）
func LoadSceneConfig(path string) (*SceneConfig, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(path, "data/") && embedded.IsInitialized() {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config %s: %w", path, err)
	}

	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("scene config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseSceneConfig 从 YAML 数据解析场景配置，应用默认值并验证
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applySceneDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applySceneDefaults 为缺失的可选字段设置默认值
func applySceneDefaults(cfg *SceneConfig) {
	if cfg.Background == "" {
		cfg.Background = "#000000"
	}
	if cfg.Shape.Scale == 0 {
		cfg.Shape.Scale = 1.0
	}
	if cfg.Shape.Opacity == nil {
		opacity := 1.0
		cfg.Shape.Opacity = &opacity
	}
}

// Validate 验证配置的完整性和合法性
// 所有错误都包装 ErrInvalidScene
func (c *SceneConfig) Validate() error {
	if _, err := colorful.Hex(c.Background); err != nil {
		return fmt.Errorf("%w: background color %q: %v", ErrInvalidScene, c.Background, err)
	}

	if err := c.Shape.validate(); err != nil {
		return err
	}

	if len(c.Sequence) == 0 {
		return fmt.Errorf("%w: sequence must contain at least one segment", ErrInvalidScene)
	}

	seq, err := c.BuildSequence()
	if err != nil {
		return err
	}

	if seq.Duration() <= 0 {
		return fmt.Errorf("%w: sequence duration must be positive", ErrInvalidScene)
	}

	// 单次播放的净位移必须为 0，否则循环时形状会跳变
	dx, dy := seq.NetDisplacement()
	if math.Abs(dx) > displacementEpsilon || math.Abs(dy) > displacementEpsilon {
		return fmt.Errorf("%w: net displacement per pass is (%.3f, %.3f), want (0, 0)", ErrInvalidScene, dx, dy)
	}

	// 平移轨道首尾相接，否则每次循环在片段衔接处跳变
	if si, ti, wx, wy, ok := seq.Discontinuity(displacementEpsilon); !ok {
		return fmt.Errorf("%w: segment %d (%s) track %d does not start where the previous translate ended (%.3f, %.3f)",
			ErrInvalidScene, si+1, c.Sequence[si].Name, ti+1, wx, wy)
	}

	return nil
}

func (s *ShapeConfig) validate() error {
	if len(s.Points) < 6 || len(s.Points)%2 != 0 {
		return fmt.Errorf("%w: shape needs at least 3 points as x,y pairs, got %d values", ErrInvalidScene, len(s.Points))
	}
	if s.Scale <= 0 {
		return fmt.Errorf("%w: shape scale must be positive, got %v", ErrInvalidScene, s.Scale)
	}
	if _, err := colorful.Hex(s.Fill); err != nil {
		return fmt.Errorf("%w: shape fill %q: %v", ErrInvalidScene, s.Fill, err)
	}
	if s.Opacity != nil && (*s.Opacity < 0 || *s.Opacity > 1) {
		return fmt.Errorf("%w: shape opacity must be within [0, 1], got %v", ErrInvalidScene, *s.Opacity)
	}
	return nil
}

// Polygon 返回多边形顶点
func (s *ShapeConfig) Polygon() []utils.Point {
	points := make([]utils.Point, 0, len(s.Points)/2)
	for i := 0; i+1 < len(s.Points); i += 2 {
		points = append(points, utils.Point{X: s.Points[i], Y: s.Points[i+1]})
	}
	return points
}

// BaseValues 返回形状的起始属性
// 平移取第一条平移轨道的起点，没有平移轨道时为原点
func (c *SceneConfig) BaseValues() animation.Values {
	fill, _ := colorful.Hex(c.Shape.Fill)
	opacity := 1.0
	if c.Shape.Opacity != nil {
		opacity = *c.Shape.Opacity
	}
	v := animation.Values{Opacity: opacity, Fill: fill}

	for _, seg := range c.Sequence {
		for _, t := range seg.Tracks {
			if t.Type == animation.TrackTranslate.String() {
				v.TranslateX, v.TranslateY = t.FromX, t.FromY
				return v
			}
		}
	}
	return v
}

// BuildSequence 把配置转换为动画序列
func (c *SceneConfig) BuildSequence() (animation.Sequence, error) {
	seq := animation.Sequence{Segments: make([]animation.Segment, 0, len(c.Sequence))}
	for i, sc := range c.Sequence {
		if len(sc.Tracks) == 0 {
			return animation.Sequence{}, fmt.Errorf("%w: segment %d (%s) has no tracks", ErrInvalidScene, i+1, sc.Name)
		}
		seg := animation.Segment{Name: sc.Name, Tracks: make([]animation.Track, 0, len(sc.Tracks))}
		for j, tc := range sc.Tracks {
			track, err := tc.build()
			if err != nil {
				return animation.Sequence{}, fmt.Errorf("segment %d (%s) track %d: %w", i+1, sc.Name, j+1, err)
			}
			seg.Tracks = append(seg.Tracks, track)
		}
		seq.Segments = append(seq.Segments, seg)
	}
	return seq, nil
}

// build 把单条轨道配置转换为 animation.Track
func (tc TrackConfig) build() (animation.Track, error) {
	if tc.DurationMs <= 0 {
		return animation.Track{}, fmt.Errorf("%w: durationMs must be positive, got %d", ErrInvalidScene, tc.DurationMs)
	}
	if tc.Cycles < 0 {
		return animation.Track{}, fmt.Errorf("%w: cycles must not be negative, got %d", ErrInvalidScene, tc.Cycles)
	}
	ease, ok := animation.LookupInterpolator(tc.Interpolator)
	if !ok {
		return animation.Track{}, fmt.Errorf("%w: unknown interpolator %q (known: %s)",
			ErrInvalidScene, tc.Interpolator, strings.Join(animation.InterpolatorNames(), ", "))
	}

	d := time.Duration(tc.DurationMs) * time.Millisecond
	var track animation.Track
	switch tc.Type {
	case animation.TrackTranslate.String():
		track = animation.Translate(tc.FromX, tc.FromY, tc.ToX, tc.ToY, d)
	case animation.TrackRotate.String():
		track = animation.Rotate(tc.From, tc.To, d)
	case animation.TrackFade.String():
		if tc.From < 0 || tc.From > 1 || tc.To < 0 || tc.To > 1 {
			return animation.Track{}, fmt.Errorf("%w: fade values must be within [0, 1], got %v -> %v", ErrInvalidScene, tc.From, tc.To)
		}
		track = animation.Fade(tc.From, tc.To, d)
	case animation.TrackFill.String():
		from, err := colorful.Hex(tc.FromColor)
		if err != nil {
			return animation.Track{}, fmt.Errorf("%w: fromColor %q: %v", ErrInvalidScene, tc.FromColor, err)
		}
		to, err := colorful.Hex(tc.ToColor)
		if err != nil {
			return animation.Track{}, fmt.Errorf("%w: toColor %q: %v", ErrInvalidScene, tc.ToColor, err)
		}
		track = animation.Fill(from, to, d)
	default:
		return animation.Track{}, fmt.Errorf("%w: unknown track type %q", ErrInvalidScene, tc.Type)
	}

	track = track.WithCycles(tc.Cycles).WithEase(ease)
	if tc.AutoReverse {
		track = track.WithAutoReverse()
	}
	return track, nil
}
