// Package ecs provides ECS adapters for quill's effect tags.
//
// The primary adapter is [NewDonburiSink], which forwards the effects a
// [quill.Dispatcher] carries out (messages, punches, flashes, audio cues)
// into a [Donburi] world as typed events. Subscribe to [EffectEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	dispatcher.SetEffectSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
