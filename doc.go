// Package quill delivers dialogue text written in a small inline tag
// language and runs the audio tweens those dialogues trigger, for games
// built on [Ebitengine].
//
// # Tags
//
// Text is annotated with brace-delimited tags controlling style, pacing and
// side effects:
//
//	Hello {b}world{/b}!{w=0.5} {audio=blip}Are you {color=red}sure{/color}?{wc}
//	Next page.
//
// [Tokenize] turns such text into an ordered []Token. Literal runs become
// TokenWords tokens; each recognized tag becomes a token of its kind
// carrying the values after its '=' as Params. Unknown tags are dropped
// with a warning. Tags do not nest: the first '}' closes a tag. Leading
// whitespace is stripped from text that directly follows {c} or {wc}.
// [TagHelp] lists every tag.
//
// # Tweens
//
// A [Scheduler] fades the volume or pitch of a [TweenTarget] over time,
// keeping at most one running tween per target and kind:
//
//	sched := quill.NewScheduler()
//	sched.TweenVolume(quill.TweenArgs{
//		Target: music, Base: 1, To: 0, Duration: 2,
//		OnComplete: func(quill.TweenArgs) { music.Stop() },
//	})
//
//	func (g *Game) Update() error { g.sched.Update(); return nil }
//
// A second request for the same target and kind replaces the first, whose
// OnComplete never runs. Interpolation uses [gween]; supply any
// gween/ease function as TweenArgs.Ease.
//
// # Audio glue
//
// [AudioControl] plays, loops, pauses, stops or re-levels an [AudioSource]
// with optional fades. [AudioBank] names sources for {audio=Name} tags and
// groups them by tag so that starting one track stops its siblings.
// [Dispatcher] executes the effect tags of a token stream and forwards them
// to an [EffectSink] (see quill/ecs for a Donburi adapter). [EbitenSource]
// wraps an ebiten audio player. [CueRunner] plays scripted cue sequences.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package quill
