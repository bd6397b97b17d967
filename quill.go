package quill

// TokenKind identifies what a Token represents in the delivery stream.
type TokenKind uint8

const (
	TokenWords                  TokenKind = iota // literal text run; Params[0] is the text
	TokenBoldStart                               // {b}
	TokenBoldEnd                                 // {/b}
	TokenItalicStart                             // {i}
	TokenItalicEnd                               // {/i}
	TokenColorStart                              // {color=red}
	TokenColorEnd                                // {/color}
	TokenSizeStart                               // {size=30}
	TokenSizeEnd                                 // {/size}
	TokenSpeedStart                              // {s} or {s=60}, characters per second
	TokenSpeedEnd                                // {/s}
	TokenWait                                    // {w} or {w=0.5}, seconds
	TokenWaitForInputNoClear                     // {wi}
	TokenWaitForInputAndClear                    // {wc}
	TokenWaitOnPunctuationStart                  // {wp} or {wp=0.5}
	TokenWaitOnPunctuationEnd                    // {/wp}
	TokenClear                                   // {c}
	TokenExit                                    // {x}, advance without waiting for input
	TokenMessage                                 // {m=Name}, broadcast a message
	TokenVerticalPunch                           // {vpunch=10,0.5}
	TokenHorizontalPunch                         // {hpunch=10,0.5}
	TokenPunch                                   // {punch=10,0.5}
	TokenFlash                                   // {flash=0.5}
	TokenAudio                                   // {audio=Name}, play once
	TokenAudioLoop                               // {audioloop=Name}
	TokenAudioPause                              // {audiopause=Name}
	TokenAudioStop                               // {audiostop=Name}
)

var tokenKindNames = [...]string{
	TokenWords:                  "Words",
	TokenBoldStart:              "BoldStart",
	TokenBoldEnd:                "BoldEnd",
	TokenItalicStart:            "ItalicStart",
	TokenItalicEnd:              "ItalicEnd",
	TokenColorStart:             "ColorStart",
	TokenColorEnd:               "ColorEnd",
	TokenSizeStart:              "SizeStart",
	TokenSizeEnd:                "SizeEnd",
	TokenSpeedStart:             "SpeedStart",
	TokenSpeedEnd:               "SpeedEnd",
	TokenWait:                   "Wait",
	TokenWaitForInputNoClear:    "WaitForInputNoClear",
	TokenWaitForInputAndClear:   "WaitForInputAndClear",
	TokenWaitOnPunctuationStart: "WaitOnPunctuationStart",
	TokenWaitOnPunctuationEnd:   "WaitOnPunctuationEnd",
	TokenClear:                  "Clear",
	TokenExit:                   "Exit",
	TokenMessage:                "Message",
	TokenVerticalPunch:          "VerticalPunch",
	TokenHorizontalPunch:        "HorizontalPunch",
	TokenPunch:                  "Punch",
	TokenFlash:                  "Flash",
	TokenAudio:                  "Audio",
	TokenAudioLoop:              "AudioLoop",
	TokenAudioPause:             "AudioPause",
	TokenAudioStop:              "AudioStop",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "Unknown"
}

// IsEffect reports whether tokens of this kind trigger a side effect outside
// the text itself (messages, screen shakes, flashes, audio cues) rather than
// styling or pacing the text.
func (k TokenKind) IsEffect() bool {
	switch k {
	case TokenMessage, TokenVerticalPunch, TokenHorizontalPunch, TokenPunch,
		TokenFlash, TokenAudio, TokenAudioLoop, TokenAudioPause, TokenAudioStop:
		return true
	}
	return false
}

// TweenKind selects which property of a TweenTarget a tween writes. Together
// with the target it forms the key the Scheduler keeps unique.
type TweenKind uint8

const (
	TweenVolume TweenKind = iota // writes via SetVolume
	TweenPitch                   // writes via SetPitch

	tweenKindCount
)

func (k TweenKind) String() string {
	switch k {
	case TweenVolume:
		return "Volume"
	case TweenPitch:
		return "Pitch"
	default:
		return "Unknown"
	}
}

func (k TweenKind) valid() bool { return k < tweenKindCount }

// apply writes v to the property of t selected by k.
func (k TweenKind) apply(t TweenTarget, v float64) {
	switch k {
	case TweenVolume:
		t.SetVolume(v)
	case TweenPitch:
		t.SetPitch(v)
	}
}

// AudioControlType selects the action an AudioControl performs.
type AudioControlType uint8

const (
	ControlPlayOnce     AudioControlType = iota // play the clip once
	ControlPlayLoop                             // play looping
	ControlPauseLoop                            // pause, keeping position
	ControlStopLoop                             // stop and rewind
	ControlChangeVolume                         // fade between two volumes without touching playback
)

func (c AudioControlType) String() string {
	switch c {
	case ControlPlayOnce:
		return "PlayOnce"
	case ControlPlayLoop:
		return "PlayLoop"
	case ControlPauseLoop:
		return "PauseLoop"
	case ControlStopLoop:
		return "StopLoop"
	case ControlChangeVolume:
		return "ChangeVolume"
	default:
		return "Unknown"
	}
}
