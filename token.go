package quill

import (
	"fmt"
	"strconv"
	"strings"
)

// Token is one unit of the delivery stream: either a run of literal text
// (TokenWords) or a tag marker with its ordered parameter list.
type Token struct {
	Kind   TokenKind
	Params []string
}

// Text returns the literal text of a Words token, or "" for any other kind.
func (t Token) Text() string {
	if t.Kind != TokenWords || len(t.Params) == 0 {
		return ""
	}
	return t.Params[0]
}

// Param returns the i-th parameter, or "" when out of range.
func (t Token) Param(i int) string {
	if i < 0 || i >= len(t.Params) {
		return ""
	}
	return t.Params[i]
}

// Float parses the i-th parameter with ParseFloat. A missing or empty
// parameter yields def with a nil error, so {w} and {w=} both fall back.
func (t Token) Float(i int, def float64) (float64, error) {
	p := t.Param(i)
	if p == "" {
		return def, nil
	}
	v, err := ParseFloat(p)
	if err != nil {
		return def, fmt.Errorf("quill: %s param %d: %w", t.Kind, i, err)
	}
	return v, nil
}

func (t Token) String() string {
	if t.Kind == TokenWords {
		return fmt.Sprintf("Words(%q)", t.Text())
	}
	if len(t.Params) == 0 {
		return t.Kind.String()
	}
	return t.Kind.String() + "(" + strings.Join(t.Params, ",") + ")"
}

// ExtractParams returns the comma-separated values following the first '='
// in a tag body, each trimmed of surrounding whitespace. Empty values are
// kept. A body without '=' has no parameters. Neither ',' nor '=' can be
// escaped.
func ExtractParams(body string) []string {
	eq := strings.IndexByte(body, '=')
	if eq == -1 {
		return []string{}
	}
	parts := strings.Split(body[eq+1:], ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// ParseFloat converts a tag or input-field value to a float. A lone "." is
// accepted as 0 since numeric input fields can hold it on their own.
func ParseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "." {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("quill: cannot convert %q to a float: %w", s, err)
	}
	return v, nil
}
