package ecs

import (
	"github.com/phanxgames/quill"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EffectEventType is the Donburi event type for quill effects.
// Subscribe to this in your ECS systems to shake the camera, flash the
// screen or react to {m=Name} broadcasts.
var EffectEventType = events.NewEventType[quill.Effect]()

type donburiSink struct {
	world donburi.World
}

var _ quill.EffectSink = (*donburiSink)(nil)

// NewDonburiSink creates an EffectSink backed by a Donburi world.
// Effects are published to EffectEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) quill.EffectSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEffect(e quill.Effect) {
	EffectEventType.Publish(s.world, e)
}
