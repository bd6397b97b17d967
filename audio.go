package quill

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSource is a playable sound that AudioControl and the Dispatcher can
// drive. Volume and pitch changes arrive through the TweenTarget methods.
type AudioSource interface {
	TweenTarget
	Volume() float64
	Play()
	Pause()
	Stop()
	IsPlaying() bool
	SetLoop(loop bool)
}

// EbitenSource adapts an Ebitengine audio player to AudioSource.
//
// Ebitengine players have no pitch control and decide looping when their
// stream is built (audio.NewInfiniteLoop), so SetPitch and SetLoop only
// record the requested values for callers that read them back.
type EbitenSource struct {
	player *audio.Player
	pitch  float64
	loop   bool
}

// NewEbitenSource wraps p. Pitch starts at 1.
func NewEbitenSource(p *audio.Player) *EbitenSource {
	return &EbitenSource{player: p, pitch: 1}
}

// Player returns the wrapped player.
func (s *EbitenSource) Player() *audio.Player { return s.player }

func (s *EbitenSource) Volume() float64     { return s.player.Volume() }
func (s *EbitenSource) SetVolume(v float64) { s.player.SetVolume(v) }
func (s *EbitenSource) Pitch() float64      { return s.pitch }
func (s *EbitenSource) SetPitch(v float64)  { s.pitch = v }
func (s *EbitenSource) Loop() bool          { return s.loop }
func (s *EbitenSource) SetLoop(loop bool)   { s.loop = loop }
func (s *EbitenSource) IsPlaying() bool     { return s.player.IsPlaying() }
func (s *EbitenSource) Play()               { s.player.Play() }
func (s *EbitenSource) Pause()              { s.player.Pause() }

// Stop pauses playback and rewinds to the start.
func (s *EbitenSource) Stop() {
	s.player.Pause()
	if err := s.player.Rewind(); err != nil {
		logf().Warn("quill: rewind audio player", "err", err)
	}
}

type bankEntry struct {
	src AudioSource
	tag string
}

// AudioBank names the audio sources a dialogue can address with {audio=Name}
// and groups them by tag. Starting a source with PlayOnce or PlayLoop stops
// the other sources sharing its tag, which is how one music track replaces
// another.
type AudioBank struct {
	entries map[string]bankEntry
}

// NewAudioBank creates an empty bank.
func NewAudioBank() *AudioBank {
	return &AudioBank{entries: make(map[string]bankEntry)}
}

// Add registers src under name with an optional tag. An empty tag puts the
// source in no group. Adding an existing name replaces it.
func (b *AudioBank) Add(name, tag string, src AudioSource) {
	b.entries[name] = bankEntry{src: src, tag: tag}
}

// Remove forgets the source registered under name.
func (b *AudioBank) Remove(name string) {
	delete(b.entries, name)
}

// Get returns the source registered under name.
func (b *AudioBank) Get(name string) (AudioSource, bool) {
	e, ok := b.entries[name]
	return e.src, ok
}

// Tag returns the tag src was registered with, or "" if it has none or is
// not in the bank.
func (b *AudioBank) Tag(src AudioSource) string {
	for _, e := range b.entries {
		if e.src == src {
			return e.tag
		}
	}
	return ""
}

// Tagged returns the sources registered with tag, ordered by name. An empty
// tag matches nothing.
func (b *AudioBank) Tagged(tag string) []AudioSource {
	if tag == "" {
		return nil
	}
	names := make([]string, 0, len(b.entries))
	for name, e := range b.entries {
		if e.tag == tag {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	out := make([]AudioSource, len(names))
	for i, name := range names {
		out[i] = b.entries[name].src
	}
	return out
}

// Names returns every registered name in sorted order.
func (b *AudioBank) Names() []string {
	names := make([]string, 0, len(b.entries))
	for name := range b.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
