package domain

// TokenCategory tags a token by the rule that produced it.
type TokenCategory uint8

const (
	TokenOther TokenCategory = iota
	TokenLatinWord
	TokenSingleIdeograph
)

func (c TokenCategory) String() string {
	switch c {
	case TokenLatinWord:
		return "latinWord"
	case TokenSingleIdeograph:
		return "singleIdeograph"
	default:
		return "other"
	}
}

// Token is a contiguous piece of converter input.
type Token struct {
	Text     string
	Category TokenCategory
}

// Span is one unit of converter output.
//
// A plain span carries text that has already been punctuation-mapped but not
// yet escaped. An annotated span carries a recognized word: the text to show,
// its tooltip, role flags and, in reverse mode, a trailing space.
type Span struct {
	Text          string
	Annotated     bool
	Tooltip       string
	Roles         Roles
	TrailingSpace bool
}

// PlainSpan creates an unannotated span.
func PlainSpan(text string) Span {
	return Span{Text: text}
}

// WordSpan creates an annotated span.
func WordSpan(text, tooltip string, roles Roles) Span {
	return Span{Text: text, Annotated: true, Tooltip: tooltip, Roles: roles}
}
