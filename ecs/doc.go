// Package ecs provides ECS adapters for bough's widget event system.
//
// The primary adapter is [NewDonburiStore], which publishes widget events
// (click, release, hover transitions, keys, scrolling) into a [Donburi]
// world as typed events. Subscribe to [WidgetEventType] in your ECS systems
// to receive them. Only widgets with a non-zero EntityID emit events.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	sys.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
