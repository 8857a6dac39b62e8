package systems

import (
	"github.com/gonewx/transitions/pkg/animation"
	"github.com/gonewx/transitions/pkg/components"
	"github.com/gonewx/transitions/pkg/utils"
)

// SyncTransform 把播放器当前的属性值写入 TransformComponent
func SyncTransform(transform *components.TransformComponent, seq *animation.Sequencer) {
	v := seq.Snapshot()
	transform.TranslateX = v.TranslateX
	transform.TranslateY = v.TranslateY
	transform.Rotation = v.Rotate
	transform.Opacity = utils.Clamp01(v.Opacity)
	transform.Fill = v.Fill.Clamped()
}
