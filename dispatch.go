package quill

// Effect is a side-effect tag taken from a token stream: a broadcast
// message, a screen punch or flash, or an audio cue.
type Effect struct {
	Kind   TokenKind
	Params []string
}

// EffectSink is the interface for optional effect forwarding. When set on a
// Dispatcher, every effect token it sees is emitted to the sink, audio cues
// included.
type EffectSink interface {
	EmitEffect(e Effect)
}

// Dispatcher carries out the effect tags of a token stream. Audio cue tags
// name a source in Bank and are played, looped, paused or stopped through
// Scheduler; every effect is also forwarded to Sink when one is set.
type Dispatcher struct {
	Scheduler *Scheduler
	Bank      *AudioBank
	Sink      EffectSink
}

// NewDispatcher creates a dispatcher for the given scheduler and bank.
func NewDispatcher(s *Scheduler, bank *AudioBank) *Dispatcher {
	return &Dispatcher{Scheduler: s, Bank: bank}
}

// SetEffectSink attaches a sink that receives every effect token.
func (d *Dispatcher) SetEffectSink(sink EffectSink) {
	d.Sink = sink
}

// Dispatch handles tok if it is an effect and reports whether it was one.
// Text, style and pacing tokens are left to the caller.
func (d *Dispatcher) Dispatch(tok Token) bool {
	if !tok.Kind.IsEffect() {
		return false
	}
	switch tok.Kind {
	case TokenAudio:
		d.audioCue(tok, ControlPlayOnce)
	case TokenAudioLoop:
		d.audioCue(tok, ControlPlayLoop)
	case TokenAudioPause:
		d.audioCue(tok, ControlPauseLoop)
	case TokenAudioStop:
		d.audioCue(tok, ControlStopLoop)
	}
	if d.Sink != nil {
		d.Sink.EmitEffect(Effect{Kind: tok.Kind, Params: tok.Params})
	}
	return true
}

// DispatchAll dispatches every effect in tokens and returns the tokens that
// were not effects, in order.
func (d *Dispatcher) DispatchAll(tokens []Token) []Token {
	rest := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if !d.Dispatch(tok) {
			rest = append(rest, tok)
		}
	}
	return rest
}

func (d *Dispatcher) audioCue(tok Token, control AudioControlType) {
	if d.Bank == nil || d.Scheduler == nil {
		return
	}
	name := tok.Param(0)
	src, ok := d.Bank.Get(name)
	if !ok {
		logf().Warn("quill: audio cue names an unknown source", "tag", tok.Kind.String(), "name", name)
		return
	}
	c := NewAudioControl(control, name, src)
	c.EndVolume = src.Volume()
	c.Execute(d.Scheduler, d.Bank)
}
