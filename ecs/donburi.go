package ecs

import (
	"errors"

	"github.com/phanxgames/tweens"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// PhaseEventType is the Donburi event type for tween lifecycle and loop
// events. Subscribe to this in your ECS systems to react to completions.
var PhaseEventType = events.NewEventType[tweens.PhaseEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Phase events
// are published to PhaseEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) tweens.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitPhase(ev tweens.PhaseEvent) {
	PhaseEventType.Publish(s.world, ev)
}

// PlayableData is the component value attaching a playable to an entity.
type PlayableData struct {
	Playable tweens.Playable
	// Prune removes the component once the playable completes or stops.
	Prune bool
}

// Playable is the component type for entities carrying a top-level playable.
var Playable = donburi.NewComponentType[PlayableData]()

var playableQuery = donburi.NewQuery(filter.Contains(Playable))

// Attach adds a playable component to a new entity and returns it.
func Attach(world donburi.World, p tweens.Playable, prune bool) donburi.Entity {
	e := world.Create(Playable)
	Playable.SetValue(world.Entry(e), PlayableData{Playable: p, Prune: prune})
	return e
}

// UpdatePlayables advances every playable component in world by dt seconds.
// Errors are joined; pruned components are removed after the walk.
func UpdatePlayables(world donburi.World, dt float64) error {
	var errs []error
	var finished []donburi.Entity
	playableQuery.Each(world, func(entry *donburi.Entry) {
		data := Playable.Get(entry)
		if data.Playable == nil {
			return
		}
		if err := data.Playable.Update(dt); err != nil {
			errs = append(errs, err)
		}
		if st := data.Playable.State(); data.Prune && (st == tweens.StateCompleted || st == tweens.StateStopped) {
			finished = append(finished, entry.Entity())
		}
	})
	for _, e := range finished {
		world.Entry(e).RemoveComponent(Playable)
	}
	return errors.Join(errs...)
}
