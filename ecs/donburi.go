package ecs

import (
	"github.com/phanxgames/bough"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// WidgetEventType is the Donburi event type for bough widget events.
var WidgetEventType = events.NewEventType[bough.WidgetEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Events are published to WidgetEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) bough.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event bough.WidgetEvent) {
	WidgetEventType.Publish(s.world, event)
}
