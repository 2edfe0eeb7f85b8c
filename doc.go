// Package tweens is a tween and sequence playback engine for [Ebitengine]
// games and other frame-driven programs.
//
// A [Tween] interpolates one value of any type from From to To and hands each
// new value to a setter. A [Sequence] places tweens and other sequences on a
// shared timeline at arbitrary offsets. Both are [Playable]: they play forward
// or backward, loop a fixed or infinite number of times with Reset, Mirror or
// Continue semantics, and fire a fixed set of phase events while they run.
//
// Nothing runs on its own. Call Update(dt) on top-level playables, or register
// them with a [Driver] and call [Driver.Update] from your game loop:
//
//	type Game struct{ driver *tweens.Driver }
//
//	func (g *Game) Update() error { return g.driver.Update() }
//
// # Tweens
//
// Create tweens with [NewTween] and a [Tweak] for the value type, or with the
// field helpers [TweenField], [TweenVec2], [TweenVec3], [TweenColor] and
// [TweenRotation]:
//
//	var x float64
//	tw, err := tweens.TweenField("x", &x, 100, 0.5, tweens.Config{
//		Formula: tweens.OutBounce,
//	})
//	tw.Play()
//
// Vectors and rotations use [gonum] spatial types; colors blend through
// [go-colorful]. Easing formulas come from [gween] and can be extended with
// [RegisterFormula].
//
// # Sequences
//
// [Sequence.Insert] anchors a child at an offset, [Sequence.Append] places it
// at the current end. A sequence owns its children exclusively: they ignore
// direct control calls and follow the sequence's eased local time. Seeking a
// sequence with RewindToStart, RewindToEnd or Goto re-derives every
// descendant from the target time alone.
//
//	seq, _ := tweens.Chain("intro", tweens.SequenceConfig{}, fadeIn, slide)
//	driver.Add(seq)
//	seq.Play()
//
// # Events and waits
//
// [Playable.Events] exposes Starting, Started, Updating, Updated, the loop
// events, Completing, Completed, Paused, Resumed and Stopped. Control calls
// made from a handler are applied at the start of the next Update.
// [Playable.WaitForComplete] and friends return a [Wait] a goroutine scheduler
// can block on.
//
// # Presets
//
// [LoadPresets] reads named configurations from TOML files, so formulas and
// loop settings can be tuned without recompiling.
//
// ECS integration is provided by the [Donburi] adapter in tweens/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [gonum]: https://gonum.org
// [go-colorful]: https://github.com/lucasb-eyer/go-colorful
// [Donburi]: https://github.com/yohamta/donburi
package tweens
