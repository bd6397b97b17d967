package main

import (
	"fmt"
	"strings"

	"github.com/phanxgames/quill"
)

// virtualSource is a silent AudioSource that only records its state. Cue
// scripts run against it when there is no audio device to play through.
type virtualSource struct {
	name    string
	volume  float64
	pitch   float64
	playing bool
	loop    bool
}

var _ quill.AudioSource = (*virtualSource)(nil)

func newVirtualSource(name string) *virtualSource {
	return &virtualSource{name: name, volume: 1, pitch: 1}
}

func (v *virtualSource) Volume() float64     { return v.volume }
func (v *virtualSource) SetVolume(x float64) { v.volume = x }
func (v *virtualSource) SetPitch(x float64)  { v.pitch = x }
func (v *virtualSource) SetLoop(loop bool)   { v.loop = loop }
func (v *virtualSource) IsPlaying() bool     { return v.playing }
func (v *virtualSource) Play()               { v.playing = true }
func (v *virtualSource) Pause()              { v.playing = false }
func (v *virtualSource) Stop()               { v.playing = false }

func (v *virtualSource) String() string {
	state := "stopped"
	if v.playing {
		state = "playing"
		if v.loop {
			state = "looping"
		}
	}
	return fmt.Sprintf("%s: %s volume=%.3g pitch=%.3g", v.name, state, v.volume, v.pitch)
}

// parseSourceSpec splits a "name[:tag]" flag value.
func parseSourceSpec(spec string) (name, tag string, err error) {
	name, tag, _ = strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("quill: empty source name in %q", spec)
	}
	return name, strings.TrimSpace(tag), nil
}
