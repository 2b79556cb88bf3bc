package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrowOperators(t *testing.T) {
	tokens := Tokenize("a -> f <- b <~ c")
	types := make([]TokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{IDENT, ARROW_RIGHT, IDENT, ARROW_LEFT, IDENT, MUT_ARROW, IDENT}, types)
}

func TestNewlineIsSignificant(t *testing.T) {
	tokens := Tokenize("a\nb")
	assert.Equal(t, NEWLINE, tokens[1].Type)
	assert.Equal(t, 2, tokens[2].Line)
}

func TestKeywordsAndConditionNames(t *testing.T) {
	tokens := Tokenize("i ei e fe in w return error match some none success valid positive negative zero empty found mut")
	want := []TokenType{KW_IF, KW_ELIF, KW_ELSE, KW_FOREACH, KW_IN, KW_WHILE, KW_RETURN, KW_ERROR,
		KW_MATCH, KW_SOME, KW_NONE, KW_SUCCESS, KW_VALID, KW_POSITIVE, KW_NEGATIVE, KW_ZERO, KW_EMPTY, KW_FOUND, KW_MUT}
	got := make([]TokenType, 0, len(tokens))
	for _, tok := range tokens {
		got = append(got, tok.Type)
	}
	assert.Equal(t, want, got)
}

func TestNumberLiteral(t *testing.T) {
	tokens := Tokenize("42 3.14")
	assert.Equal(t, "42", tokens[0].Literal)
	assert.Equal(t, "3.14", tokens[1].Literal)
}

func TestStringEscapes(t *testing.T) {
	tokens := Tokenize(`"hi\n\"there\""`)
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "hi\n\"there\"", tokens[0].Literal)
}

func TestUnterminatedStringIsInvalid(t *testing.T) {
	tokens := Tokenize(`"unterminated`)
	assert.Equal(t, INVALID, tokens[0].Type)
}

func TestLineComment(t *testing.T) {
	tokens := Tokenize("a // comment\nb")
	assert.Equal(t, IDENT, tokens[0].Type)
	assert.Equal(t, NEWLINE, tokens[1].Type)
	assert.Equal(t, IDENT, tokens[2].Type)
}
