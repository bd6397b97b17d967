package quill

import (
	"fmt"
	"strings"
)

// tagRule maps a tag body to a TokenKind. exact matches the whole body;
// prefix matches the start of the body. Either may be empty.
type tagRule struct {
	exact  string
	prefix string
	kind   TokenKind
}

func (r tagRule) match(body string) bool {
	if r.exact != "" && body == r.exact {
		return true
	}
	return r.prefix != "" && strings.HasPrefix(body, r.prefix)
}

// tagRules is evaluated top to bottom and the first match wins. The order
// matters: "size=" must be tried before "s=", "wp=" before "w=".
var tagRules = [...]tagRule{
	{exact: "b", kind: TokenBoldStart},
	{exact: "/b", kind: TokenBoldEnd},
	{exact: "i", kind: TokenItalicStart},
	{exact: "/i", kind: TokenItalicEnd},
	{prefix: "color=", kind: TokenColorStart},
	{exact: "/color", kind: TokenColorEnd},
	{prefix: "size=", kind: TokenSizeStart},
	{exact: "/size", kind: TokenSizeEnd},
	{exact: "wi", kind: TokenWaitForInputNoClear},
	{exact: "wc", kind: TokenWaitForInputAndClear},
	{exact: "wp", prefix: "wp=", kind: TokenWaitOnPunctuationStart},
	{exact: "/wp", kind: TokenWaitOnPunctuationEnd},
	{exact: "w", prefix: "w=", kind: TokenWait},
	{exact: "c", kind: TokenClear},
	{exact: "s", prefix: "s=", kind: TokenSpeedStart},
	{exact: "/s", kind: TokenSpeedEnd},
	{exact: "x", kind: TokenExit},
	{prefix: "m=", kind: TokenMessage},
	{exact: "vpunch", prefix: "vpunch=", kind: TokenVerticalPunch},
	{exact: "hpunch", prefix: "hpunch=", kind: TokenHorizontalPunch},
	{exact: "punch", prefix: "punch=", kind: TokenPunch},
	{exact: "flash", prefix: "flash=", kind: TokenFlash},
	{prefix: "audio=", kind: TokenAudio},
	{prefix: "audioloop=", kind: TokenAudioLoop},
	{prefix: "audiopause=", kind: TokenAudioPause},
	{prefix: "audiostop=", kind: TokenAudioStop},
}

// classifyTag returns the kind for a tag body (braces stripped).
func classifyTag(body string) (TokenKind, bool) {
	for i := range tagRules {
		if tagRules[i].match(body) {
			return tagRules[i].kind, true
		}
	}
	return 0, false
}

// Diagnostic describes a tag the tokenizer dropped. It never stops
// tokenization.
type Diagnostic struct {
	Offset int    // byte offset of the opening brace
	Tag    string // the full tag text, braces included
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("quill: unrecognized text tag %s at offset %d", d.Tag, d.Offset)
}

// Tokenize converts annotated text into its ordered token stream. Unknown
// tags are dropped and logged as warnings; the call itself never fails.
func Tokenize(text string) []Token {
	tokens, diags := TokenizeWithDiagnostics(text)
	for _, d := range diags {
		logf().Warn(d.Error(), "tag", d.Tag, "offset", d.Offset)
	}
	return tokens
}

// TokenizeWithDiagnostics is Tokenize with the dropped tags returned to the
// caller instead of logged.
func TokenizeWithDiagnostics(text string) ([]Token, []Diagnostic) {
	var tokens []Token
	var diags []Diagnostic

	pos := 0
	for {
		start, end, ok := nextTag(text, pos)
		if !ok {
			break
		}
		if start > pos {
			tokens = append(tokens, wordsToken(text[pos:start]))
		}
		tag := text[start:end]
		if tok, known := tagToken(tag); known {
			tokens = append(tokens, tok)
		} else if len(tag) >= 3 {
			diags = append(diags, Diagnostic{Offset: start, Tag: tag})
		}
		pos = end
	}
	if pos < len(text) {
		tokens = append(tokens, wordsToken(text[pos:]))
	}

	trimAfterClear(tokens)
	return tokens, diags
}

// nextTag finds the next "{...}" at or after pos. The first '}' closes the
// tag whatever lies between. A candidate that meets a line break before its
// closing brace is not a tag, and the search resumes at the following '{'.
// end is exclusive.
func nextTag(text string, pos int) (start, end int, ok bool) {
	for pos < len(text) {
		open := strings.IndexByte(text[pos:], '{')
		if open == -1 {
			return 0, 0, false
		}
		start = pos + open
		if c := closingBrace(text, start+1); c != -1 {
			return start, c + 1, true
		}
		pos = start + 1
	}
	return 0, 0, false
}

// closingBrace returns the index of the first '}' at or after i, or -1 if a
// line break or the end of text comes first.
func closingBrace(text string, i int) int {
	for ; i < len(text); i++ {
		switch text[i] {
		case '}':
			return i
		case '\n':
			return -1
		}
	}
	return -1
}

// tagToken builds the token for tag text including its braces. Tags too
// short to hold a body are rejected without a diagnostic.
func tagToken(tag string) (Token, bool) {
	if len(tag) < 3 || tag[0] != '{' || tag[len(tag)-1] != '}' {
		return Token{}, false
	}
	body := tag[1 : len(tag)-1]
	kind, ok := classifyTag(body)
	if !ok {
		return Token{}, false
	}
	return Token{Kind: kind, Params: ExtractParams(body)}, true
}

func wordsToken(s string) Token {
	return Token{Kind: TokenWords, Params: []string{s}}
}

// trimAfterClear strips leading whitespace from a Words token that directly
// follows a Clear or WaitForInputAndClear token. The flag is recomputed from
// every token, so any other tag in between cancels the trim.
func trimAfterClear(tokens []Token) {
	trimLeading := false
	for i := range tokens {
		tok := &tokens[i]
		if trimLeading && tok.Kind == TokenWords {
			tok.Params[0] = strings.TrimLeft(tok.Params[0], " \t\r\n")
		}
		trimLeading = tok.Kind == TokenClear || tok.Kind == TokenWaitForInputAndClear
	}
}

// TagHelp returns a short reference of the supported tags, one per line.
func TagHelp() string {
	return "" +
		"\t{b} Bold Text {/b}\n" +
		"\t{i} Italic Text {/i}\n" +
		"\t{color=red} Color Text (color){/color}\n" +
		"\t{size=30} Text size {/size}\n" +
		"\n" +
		"\t{s}, {s=60} Writing speed (chars per sec){/s}\n" +
		"\t{w}, {w=0.5} Wait (seconds)\n" +
		"\t{wi} Wait for input\n" +
		"\t{wc} Wait for input and clear\n" +
		"\t{wp}, {wp=0.5} Wait on punctuation (seconds){/wp}\n" +
		"\t{c} Clear\n" +
		"\t{x} Exit, advance to the next command without waiting for input\n" +
		"\n" +
		"\t{vpunch=10,0.5} Vertically punch screen (intensity,time)\n" +
		"\t{hpunch=10,0.5} Horizontally punch screen (intensity,time)\n" +
		"\t{punch=10,0.5} Punch screen (intensity,time)\n" +
		"\t{flash=0.5} Flash screen (duration)\n" +
		"\n" +
		"\t{audio=AudioObjectName} Play Audio Once\n" +
		"\t{audioloop=AudioObjectName} Play Audio Loop\n" +
		"\t{audiopause=AudioObjectName} Pause Audio\n" +
		"\t{audiostop=AudioObjectName} Stop Audio\n" +
		"\n" +
		"\t{m=MessageName} Broadcast message\n"
}
