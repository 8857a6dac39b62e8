package animation

import (
	"log"
	"time"
)

// PlayState 播放状态
type PlayState int

const (
	// Paused 暂停（初始状态）
	Paused PlayState = iota
	// Playing 播放中
	Playing
)

// String 返回播放状态名称
func (s PlayState) String() string {
	if s == Playing {
		return "Playing"
	}
	return "Paused"
}

// Sequencer 动画序列播放器
//
// 负责：
//   - 维护播放/暂停状态（只有两个状态，没有终止状态）
//   - 按宿主的帧时钟推进时间，片段结束后进入下一个片段，最后一个片段之后回到第一个
//   - 计算当前时刻形状的所有属性值
//
// 暂停只是停止推进时间，不回滚任何属性。
// 只在游戏主线程上调用，不需要加锁。
type Sequencer struct {
	sequence Sequence
	base     Values // 首次播放的起始属性
	passEnd  Values // 完整播放一次后的属性，作为之后每次播放的起点

	state   PlayState
	segment int           // 当前片段索引
	elapsed time.Duration // 当前片段内已播放时间
	passes  int           // 已完成的完整播放次数

	values Values
}

// NewSequencer 创建播放器，初始状态为 Paused，位于第一个片段的起点
func NewSequencer(seq Sequence, base Values) *Sequencer {
	s := &Sequencer{
		sequence: seq,
		base:     base,
		passEnd:  seq.EndValues(base),
		state:    Paused,
	}
	s.refresh()
	return s
}

// Toggle 切换播放状态
// pressed 为 true 时从当前位置开始/继续播放，为 false 时立即暂停并冻结当前属性
func (s *Sequencer) Toggle(pressed bool) {
	next := Paused
	if pressed {
		next = Playing
	}
	if next == s.state {
		return
	}
	s.state = next
	log.Printf("[Sequencer] %s at segment %d (%v)", s.state, s.segment+1, s.elapsed)
}

// Advance 推进 dt 时间（每帧由宿主调用一次）
// 暂停时不做任何事；跨越片段边界时多余的时间计入下一个片段
func (s *Sequencer) Advance(dt time.Duration) {
	if s.state != Playing || dt <= 0 {
		return
	}
	if s.sequence.Duration() <= 0 {
		return
	}

	s.elapsed += dt
	for {
		d := s.sequence.Segments[s.segment].Duration()
		if s.elapsed < d {
			break
		}
		s.elapsed -= d
		s.segment++
		if s.segment >= len(s.sequence.Segments) {
			s.segment = 0
			s.passes++
		}
	}
	s.refresh()
}

// Seek 跳转到单次播放内的绝对时间 t（按单次播放时长取模），不改变播放状态
func (s *Sequencer) Seek(t time.Duration) {
	s.segment, s.elapsed = s.sequence.Locate(t)
	s.refresh()
}

// refresh 重新计算当前属性值
func (s *Sequencer) refresh() {
	start := s.base
	if s.passes > 0 {
		start = s.passEnd
	}
	s.values = s.sequence.ValuesAt(start, s.segment, s.elapsed)
}

// State 返回当前播放状态
func (s *Sequencer) State() PlayState {
	return s.state
}

// Snapshot 返回当前属性值
func (s *Sequencer) Snapshot() Values {
	return s.values
}

// Position 返回当前片段索引（从 0 开始）和片段内已播放时间
func (s *Sequencer) Position() (int, time.Duration) {
	return s.segment, s.elapsed
}

// Passes 返回已完成的完整播放次数
func (s *Sequencer) Passes() int {
	return s.passes
}

// Sequence 返回播放的序列
func (s *Sequencer) Sequence() Sequence {
	return s.sequence
}
