package scenes

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/gonewx/transitions/pkg/animation"
	"github.com/gonewx/transitions/pkg/components"
	"github.com/gonewx/transitions/pkg/config"
	"github.com/gonewx/transitions/pkg/ecs"
	"github.com/gonewx/transitions/pkg/game"
	"github.com/gonewx/transitions/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

const tick = 1.0 / 60.0

// scriptedInput 按帧返回预设的输入，用完后返回空输入
type scriptedInput struct {
	frames []utils.PointerState
}

func (s *scriptedInput) read() utils.PointerState {
	if len(s.frames) == 0 {
		return utils.PointerState{X: -1, Y: -1}
	}
	next := s.frames[0]
	s.frames = s.frames[1:]
	return next
}

// clickButton 在按钮中心按下并释放
func (s *scriptedInput) clickButton() {
	x, y := int(config.ToolbarWidth/2), int(config.ToggleButtonHeight/2)
	s.frames = append(s.frames,
		utils.PointerState{X: x, Y: y, Pressed: true, JustPressed: true},
		utils.PointerState{X: x, Y: y, JustReleased: true},
	)
}

func newTestScene(t *testing.T) (*TransitionsScene, *scriptedInput) {
	t.Helper()
	cfg, err := config.LoadSceneConfig(filepath.Join("..", "..", config.DefaultScenePath))
	if err != nil {
		t.Fatalf("LoadSceneConfig() error: %v", err)
	}
	input := &scriptedInput{}
	scene, err := NewTransitionsScene(nil, cfg, input.read)
	if err != nil {
		t.Fatalf("NewTransitionsScene() error: %v", err)
	}
	return scene, input
}

func shapeTransform(t *testing.T, s *TransitionsScene) *components.TransformComponent {
	t.Helper()
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.EntityManager(), s.ShapeEntity())
	if !ok {
		t.Fatal("shape entity has no TransformComponent")
	}
	return transform
}

// TestTransitionsScene_Layout 形状位于工具栏右侧，按钮位于左上角
func TestTransitionsScene_Layout(t *testing.T) {
	scene, _ := newTestScene(t)
	em := scene.EntityManager()

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, scene.ShapeEntity())
	if !ok {
		t.Fatal("shape entity has no PositionComponent")
	}
	if pos.X != config.ToolbarWidth+190 || pos.Y != 247 {
		t.Errorf("shape position = (%v, %v), want (%v, 247)", pos.X, pos.Y, config.ToolbarWidth+190)
	}

	button, ok := ecs.GetComponent[*components.ToggleButtonComponent](em, scene.ButtonEntity())
	if !ok {
		t.Fatal("button entity has no ToggleButtonComponent")
	}
	if button.Label != "start/stop" || button.Selected || !button.Enabled {
		t.Errorf("unexpected initial button: %+v", button)
	}
	if button.Font != nil {
		t.Error("button font should be nil without a ResourceManager")
	}

	if scene.Sequencer().State() != animation.Paused {
		t.Errorf("initial state = %v, want Paused", scene.Sequencer().State())
	}
}

// TestTransitionsScene_StaysStillUntilClicked 未点击按钮时形状不动
func TestTransitionsScene_StaysStillUntilClicked(t *testing.T) {
	scene, _ := newTestScene(t)
	before := *shapeTransform(t, scene)

	for i := 0; i < 120; i++ {
		scene.Update(tick)
	}
	if got := *shapeTransform(t, scene); got != before {
		t.Errorf("shape moved without a click: %+v -> %+v", before, got)
	}
}

// TestTransitionsScene_ClickStartsAndStops 点击开始播放，再次点击冻结
func TestTransitionsScene_ClickStartsAndStops(t *testing.T) {
	scene, input := newTestScene(t)

	input.clickButton()
	scene.Update(tick)
	scene.Update(tick) // 释放帧：切换为播放并推进一帧
	if scene.Sequencer().State() != animation.Playing {
		t.Fatalf("state after click = %v, want Playing", scene.Sequencer().State())
	}

	for i := 0; i < 59; i++ {
		scene.Update(tick)
	}
	transform := shapeTransform(t, scene)
	if transform.TranslateY >= 0 {
		t.Errorf("shape should move up during the first segment, TranslateY = %v", transform.TranslateY)
	}
	if math.Abs(transform.TranslateY-(-animation.MoveY/2)) > 1.0 {
		t.Errorf("TranslateY after ~1s = %v, want about %v", transform.TranslateY, -animation.MoveY/2)
	}

	input.clickButton()
	scene.Update(tick)
	scene.Update(tick)
	if scene.Sequencer().State() != animation.Paused {
		t.Fatalf("state after second click = %v, want Paused", scene.Sequencer().State())
	}

	frozen := *transform
	for i := 0; i < 60; i++ {
		scene.Update(tick)
	}
	if *transform != frozen {
		t.Errorf("shape moved while paused: %+v -> %+v", frozen, *transform)
	}
}

// TestTransitionsScene_ToggleKey 空格键与按钮等效
func TestTransitionsScene_ToggleKey(t *testing.T) {
	scene, input := newTestScene(t)
	input.frames = append(input.frames, utils.PointerState{X: -1, Y: -1, ToggleKey: true})
	scene.Update(tick)

	if scene.Sequencer().State() != animation.Playing {
		t.Errorf("state = %v, want Playing", scene.Sequencer().State())
	}
	button, _ := ecs.GetComponent[*components.ToggleButtonComponent](scene.EntityManager(), scene.ButtonEntity())
	if !button.Selected {
		t.Error("button should be selected after toggle key")
	}
}

// TestTransitionsScene_NilConfig 缺少配置时返回错误
func TestTransitionsScene_NilConfig(t *testing.T) {
	if _, err := NewTransitionsScene(nil, nil, nil); err == nil {
		t.Error("expected error for nil config")
	}
}

// TestTransitionsScene_Draw 带字体完整绘制一帧
func TestTransitionsScene_Draw(t *testing.T) {
	cfg, err := config.LoadSceneConfig(filepath.Join("..", "..", config.DefaultScenePath))
	if err != nil {
		t.Fatalf("LoadSceneConfig() error: %v", err)
	}
	rm, err := game.NewResourceManager()
	if err != nil {
		t.Fatalf("NewResourceManager() error: %v", err)
	}
	scene, err := NewTransitionsScene(rm, cfg, func() utils.PointerState { return utils.PointerState{} })
	if err != nil {
		t.Fatalf("NewTransitionsScene() error: %v", err)
	}

	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
	scene.Draw(screen)
}
