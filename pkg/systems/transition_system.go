package systems

import (
	"time"

	"github.com/gonewx/transitions/pkg/components"
	"github.com/gonewx/transitions/pkg/ecs"
)

// TransitionSystem 过渡动画系统
//
// 职责：
//   - 每帧推进所有 SequencerComponent 中的播放器
//   - 把播放器当前的属性值写入同一实体的 TransformComponent
//
// 暂停时播放器不推进，写入的值保持不变。
type TransitionSystem struct {
	entityManager *ecs.EntityManager
}

// NewTransitionSystem 创建过渡动画系统
func NewTransitionSystem(em *ecs.EntityManager) *TransitionSystem {
	return &TransitionSystem{entityManager: em}
}

// Update 推进动画
// deltaTime 为距上一帧的时间（秒）
func (s *TransitionSystem) Update(deltaTime float64) {
	dt := time.Duration(deltaTime * float64(time.Second))

	entities := ecs.GetEntitiesWith2[*components.SequencerComponent, *components.TransformComponent](s.entityManager)
	for _, id := range entities {
		seqComp, _ := ecs.GetComponent[*components.SequencerComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if seqComp.Sequencer == nil {
			continue
		}

		seqComp.Sequencer.Advance(dt)
		SyncTransform(transform, seqComp.Sequencer)
	}
}
