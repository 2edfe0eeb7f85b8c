// Package ecs provides ECS adapters for tweens.
//
// [NewDonburiSink] bridges tween phase events (Started, LoopCompleted,
// Completed and the rest) into a [Donburi] world as typed events. Subscribe
// to [PhaseEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	driver.SetEventSink(sink)
//
// Playables can also live on entities directly: [Attach] stores one in the
// [Playable] component and [UpdatePlayables] advances them all from a system.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
