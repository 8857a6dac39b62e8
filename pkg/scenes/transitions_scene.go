package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/transitions/pkg/animation"
	"github.com/gonewx/transitions/pkg/components"
	"github.com/gonewx/transitions/pkg/config"
	"github.com/gonewx/transitions/pkg/ecs"
	"github.com/gonewx/transitions/pkg/game"
	"github.com/gonewx/transitions/pkg/systems"
	"github.com/gonewx/transitions/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// TransitionsScene 过渡动画场景
//
// 布局：
//   - 左侧工具栏放置 start/stop 切换按钮
//   - 右侧内容区放置形状，形状布局坐标相对内容区左上角
//
// 按钮切换时调用 Sequencer.Toggle；TransitionSystem 每帧推进动画。
type TransitionsScene struct {
	entityManager *ecs.EntityManager
	background    color.Color

	sequencer    *animation.Sequencer
	shapeEntity  ecs.EntityID
	buttonEntity ecs.EntityID

	// 系统
	toggleButtonSystem       *systems.ToggleButtonSystem
	transitionSystem         *systems.TransitionSystem
	shapeRenderSystem        *systems.ShapeRenderSystem
	toggleButtonRenderSystem *systems.ToggleButtonRenderSystem
}

// NewTransitionsScene 创建过渡动画场景
//
// 参数：
//   - rm: 资源管理器（提供按钮字体），为 nil 时按钮不绘制文字
//   - cfg: 已验证的场景配置
//   - input: 输入来源，为 nil 时从 Ebitengine 读取
func NewTransitionsScene(rm *game.ResourceManager, cfg *config.SceneConfig, input utils.InputSource) (*TransitionsScene, error) {
	if cfg == nil {
		return nil, fmt.Errorf("scene config is required")
	}

	seq, err := cfg.BuildSequence()
	if err != nil {
		return nil, fmt.Errorf("failed to build sequence: %w", err)
	}
	background, err := colorful.Hex(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("invalid background color %q: %w", cfg.Background, err)
	}

	em := ecs.NewEntityManager()
	s := &TransitionsScene{
		entityManager:            em,
		background:               background,
		sequencer:                animation.NewSequencer(seq, cfg.BaseValues()),
		toggleButtonSystem:       systems.NewToggleButtonSystem(em, input),
		transitionSystem:         systems.NewTransitionSystem(em),
		shapeRenderSystem:        systems.NewShapeRenderSystem(em),
		toggleButtonRenderSystem: systems.NewToggleButtonRenderSystem(em),
	}

	s.shapeEntity = s.createShape(cfg)
	s.buttonEntity = s.createToggleButton(rm)

	log.Printf("[TransitionsScene] %d entities, %d segments, %v per pass", em.EntityCount(), len(seq.Segments), seq.Duration())
	return s, nil
}

// createShape 创建形状实体
func (s *TransitionsScene) createShape(cfg *config.SceneConfig) ecs.EntityID {
	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.ShapeComponent{
		Points: cfg.Shape.Polygon(),
		Scale:  cfg.Shape.Scale,
	})
	s.entityManager.AddComponent(id, &components.PositionComponent{
		X: config.ToolbarWidth + cfg.Shape.LayoutX,
		Y: cfg.Shape.LayoutY,
	})

	transform := &components.TransformComponent{}
	systems.SyncTransform(transform, s.sequencer)
	s.entityManager.AddComponent(id, transform)
	s.entityManager.AddComponent(id, &components.SequencerComponent{Sequencer: s.sequencer})
	return id
}

// createToggleButton 创建 start/stop 切换按钮实体
func (s *TransitionsScene) createToggleButton(rm *game.ResourceManager) ecs.EntityID {
	button := &components.ToggleButtonComponent{
		Label:    config.ToggleButtonLabel,
		Width:    config.ToolbarWidth,
		Height:   config.ToggleButtonHeight,
		Enabled:  true,
		OnToggle: s.sequencer.Toggle,
	}
	if rm != nil {
		button.Font = rm.LoadFont(config.ButtonFontSize)
	}

	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, button)
	s.entityManager.AddComponent(id, &components.PositionComponent{X: 0, Y: 0})
	return id
}

// Update 更新场景：先处理输入，再推进动画
func (s *TransitionsScene) Update(deltaTime float64) {
	s.toggleButtonSystem.Update(deltaTime)
	s.transitionSystem.Update(deltaTime)
}

// Draw 绘制场景：背景 → 形状 → 按钮
func (s *TransitionsScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.shapeRenderSystem.Draw(screen)
	s.toggleButtonRenderSystem.Draw(screen)
}

// Sequencer 返回场景的动画播放器
func (s *TransitionsScene) Sequencer() *animation.Sequencer {
	return s.sequencer
}

// EntityManager 返回场景的实体管理器
func (s *TransitionsScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// ShapeEntity 返回形状实体 ID
func (s *TransitionsScene) ShapeEntity() ecs.EntityID {
	return s.shapeEntity
}

// ButtonEntity 返回切换按钮实体 ID
func (s *TransitionsScene) ButtonEntity() ecs.EntityID {
	return s.buttonEntity
}

var _ game.Scene = (*TransitionsScene)(nil)
