package components

import "github.com/gonewx/transitions/pkg/animation"

// SequencerComponent 把动画播放器挂到实体上
// TransitionSystem 每帧推进播放器并把结果写入同一实体的 TransformComponent
type SequencerComponent struct {
	Sequencer *animation.Sequencer
}
