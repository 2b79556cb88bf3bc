/*
File    : susumu/lexer/lexer.go

Package lexer implements the hand-written scanner for Susumu. It turns
source text into a stream of position-tagged tokens (spec.md §4.1),
including the arrow operators (`->`, `<-`, `<~`) that give the language its
name and the `Newline` tokens the parser depends on to delimit statements
and detect multi-line arrow-chain continuation (spec.md §4.2 P3).
*/
package lexer

// Lexer scans Susumu source code one byte at a time, tracking line and
// column for diagnostics.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int
}

// NewLexer creates a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return &Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
	}
}

// Peek returns the byte after Current without consuming it.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// PeekAt returns the byte at Position+n without consuming it, or 0 past EOF.
func (lex *Lexer) PeekAt(n int) byte {
	if lex.Position+n >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+n]
}

// Advance moves the cursor one byte forward, updating Current/Position/Column.
func (lex *Lexer) Advance() {
	lex.Position++
	lex.Column++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// IgnoreSpacesAndComments skips spaces, tabs, and `//` line comments, but
// leaves newlines alone: Susumu newlines are significant tokens, unlike
// Go-Mix's which are pure whitespace.
func (lex *Lexer) IgnoreSpacesAndComments() {
	for {
		if lex.Current == ' ' || lex.Current == '\t' || lex.Current == '\r' {
			lex.Advance()
		} else if lex.Current == '/' && lex.Peek() == '/' {
			lex.skipLineComment()
		} else {
			break
		}
	}
}

func (lex *Lexer) skipLineComment() {
	for lex.Current != '\n' && lex.Current != 0 {
		lex.Advance()
	}
}

// NextToken returns the next meaningful token, or Eof at end of input.
func (lex *Lexer) NextToken() Token {
	lex.IgnoreSpacesAndComments()

	line, col := lex.Line, lex.Column

	switch lex.Current {
	case 0:
		return New(EOF, "EOF", line, col)
	case '\n':
		lex.Advance()
		lex.Line++
		lex.Column = 1
		return New(NEWLINE, "\n", line, col)
	case '-':
		if lex.Peek() == '>' {
			lex.Advance()
			lex.Advance()
			return New(ARROW_RIGHT, "->", line, col)
		}
		lex.Advance()
		return New(MINUS, "-", line, col)
	case '<':
		if lex.Peek() == '-' {
			lex.Advance()
			lex.Advance()
			return New(ARROW_LEFT, "<-", line, col)
		}
		if lex.Peek() == '~' {
			lex.Advance()
			lex.Advance()
			return New(MUT_ARROW, "<~", line, col)
		}
		lex.Advance()
		return New(INVALID, "<", line, col)
	case '+':
		lex.Advance()
		return New(PLUS, "+", line, col)
	case '*':
		lex.Advance()
		return New(STAR, "*", line, col)
	case '/':
		lex.Advance()
		return New(SLASH, "/", line, col)
	case '=':
		lex.Advance()
		return New(EQ, "=", line, col)
	case '.':
		lex.Advance()
		return New(DOT, ".", line, col)
	case ',':
		lex.Advance()
		return New(COMMA, ",", line, col)
	case ':':
		lex.Advance()
		return New(COLON, ":", line, col)
	case '(':
		lex.Advance()
		return New(LPAREN, "(", line, col)
	case ')':
		lex.Advance()
		return New(RPAREN, ")", line, col)
	case '{':
		lex.Advance()
		return New(LBRACE, "{", line, col)
	case '}':
		lex.Advance()
		return New(RBRACE, "}", line, col)
	case '[':
		lex.Advance()
		return New(LBRACKET, "[", line, col)
	case ']':
		lex.Advance()
		return New(RBRACKET, "]", line, col)
	case '"':
		return lex.readString()
	}

	if isDigit(lex.Current) {
		return lex.readNumber()
	}
	if isAlpha(lex.Current) || lex.Current == '_' {
		return lex.readIdentifier()
	}

	tok := New(INVALID, string(lex.Current), line, col)
	lex.Advance()
	return tok
}

func (lex *Lexer) readNumber() Token {
	line, col := lex.Line, lex.Column
	start := lex.Position
	for isDigit(lex.Current) {
		lex.Advance()
	}
	if lex.Current == '.' && isDigit(lex.Peek()) {
		lex.Advance()
		for isDigit(lex.Current) {
			lex.Advance()
		}
	}
	return New(NUMBER, lex.Src[start:lex.Position], line, col)
}

func (lex *Lexer) readIdentifier() Token {
	line, col := lex.Line, lex.Column
	start := lex.Position
	for isAlpha(lex.Current) || isDigit(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}
	literal := lex.Src[start:lex.Position]
	return New(lookupIdent(literal), literal, line, col)
}

// readString scans a double-quoted string literal with `\\`, `\"`, `\n`,
// `\t` escapes. An unterminated string produces an Invalid token so the
// parser can surface a LexError at its position.
func (lex *Lexer) readString() Token {
	line, col := lex.Line, lex.Column
	lex.Advance() // opening quote

	var out []byte
	for lex.Current != '"' {
		if lex.Current == 0 {
			return New(INVALID, string(out), line, col)
		}
		if lex.Current == '\\' {
			lex.Advance()
			switch lex.Current {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case '"':
				out = append(out, '"')
			case '\\':
				out = append(out, '\\')
			default:
				out = append(out, lex.Current)
			}
			lex.Advance()
			continue
		}
		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0
		}
		out = append(out, lex.Current)
		lex.Advance()
	}
	lex.Advance() // closing quote
	return New(STRING, string(out), line, col)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// Tokenize scans the whole source, returning every token up to but not
// including the terminating Eof.
func Tokenize(src string) []Token {
	lex := NewLexer(src)
	tokens := make([]Token, 0)
	for {
		tok := lex.NextToken()
		if tok.Type == EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
