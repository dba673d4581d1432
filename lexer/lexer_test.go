/*
File    : minij/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	input    string
	expected []Token
}

// stripPositions zeroes out line/column so test tables can focus on type/literal.
func stripPositions(toks []Token) []Token {
	out := make([]Token, len(toks))
	for i, tok := range toks {
		out[i] = Token{Type: tok.Type, Literal: tok.Literal}
	}
	return out
}

func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []tokenCase{
		{
			input: `123 + 2 31 - 12`,
			expected: []Token{
				{Type: INT_LIT, Literal: "123"},
				{Type: PLUS_OP, Literal: "+"},
				{Type: INT_LIT, Literal: "2"},
				{Type: INT_LIT, Literal: "31"},
				{Type: MINUS_OP, Literal: "-"},
				{Type: INT_LIT, Literal: "12"},
				{Type: EOF_TYPE, Literal: ""},
			},
		},
		{
			input: `class Foo { public int x; }`,
			expected: []Token{
				{Type: CLASS_KEY, Literal: "class"},
				{Type: IDENT_TYPE, Literal: "Foo"},
				{Type: LEFT_BRACE, Literal: "{"},
				{Type: PUBLIC_KEY, Literal: "public"},
				{Type: INT_KEY, Literal: "int"},
				{Type: IDENT_TYPE, Literal: "x"},
				{Type: SEMICOLON, Literal: ";"},
				{Type: RIGHT_BRACE, Literal: "}"},
				{Type: EOF_TYPE, Literal: ""},
			},
		},
		{
			input: `a++ b-- c+=1 d-=2 e<=f e>=f e==f e!=f !g a&&b a||b`,
			expected: []Token{
				{Type: IDENT_TYPE, Literal: "a"},
				{Type: INC_OP, Literal: "++"},
				{Type: IDENT_TYPE, Literal: "b"},
				{Type: DEC_OP, Literal: "--"},
				{Type: IDENT_TYPE, Literal: "c"},
				{Type: PLUS_ASSIGN, Literal: "+="},
				{Type: INT_LIT, Literal: "1"},
				{Type: IDENT_TYPE, Literal: "d"},
				{Type: MINUS_ASSIGN, Literal: "-="},
				{Type: INT_LIT, Literal: "2"},
				{Type: IDENT_TYPE, Literal: "e"},
				{Type: LE_OP, Literal: "<="},
				{Type: IDENT_TYPE, Literal: "f"},
				{Type: IDENT_TYPE, Literal: "e"},
				{Type: GE_OP, Literal: ">="},
				{Type: IDENT_TYPE, Literal: "f"},
				{Type: IDENT_TYPE, Literal: "e"},
				{Type: EQ_OP, Literal: "=="},
				{Type: IDENT_TYPE, Literal: "f"},
				{Type: IDENT_TYPE, Literal: "e"},
				{Type: NE_OP, Literal: "!="},
				{Type: IDENT_TYPE, Literal: "f"},
				{Type: NOT_OP, Literal: "!"},
				{Type: IDENT_TYPE, Literal: "g"},
				{Type: IDENT_TYPE, Literal: "a"},
				{Type: AND_OP, Literal: "&&"},
				{Type: IDENT_TYPE, Literal: "b"},
				{Type: IDENT_TYPE, Literal: "a"},
				{Type: OR_OP, Literal: "||"},
				{Type: IDENT_TYPE, Literal: "b"},
				{Type: EOF_TYPE, Literal: ""},
			},
		},
		{
			input: `3.14 5f 2.0d "hi\n" 'x' obj.field`,
			expected: []Token{
				{Type: FLOAT_LIT, Literal: "3.14"},
				{Type: FLOAT_LIT, Literal: "5"},
				{Type: FLOAT_LIT, Literal: "2.0"},
				{Type: STRING_LIT, Literal: "hi\n"},
				{Type: CHAR_LIT, Literal: "x"},
				{Type: IDENT_TYPE, Literal: "obj"},
				{Type: DOT, Literal: "."},
				{Type: IDENT_TYPE, Literal: "field"},
				{Type: EOF_TYPE, Literal: ""},
			},
		},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.input)
		tokens, err := lex.ConsumeTokens()
		assert.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, stripPositions(tokens), tt.input)
	}
}

func TestLexer_CommentsAreSkipped(t *testing.T) {
	lex := NewLexer("1 // a trailing comment\n+ /* block\ncomment */ 2")
	tokens, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	assert.Equal(t, []Token{
		{Type: INT_LIT, Literal: "1"},
		{Type: PLUS_OP, Literal: "+"},
		{Type: INT_LIT, Literal: "2"},
		{Type: EOF_TYPE, Literal: ""},
	}, stripPositions(tokens))
}

func TestLexer_UnterminatedStringFails(t *testing.T) {
	lex := NewLexer(`"unterminated`)
	_, err := lex.ConsumeTokens()
	assert.Error(t, err)
	var lexErr *LexError
	assert.ErrorAs(t, err, &lexErr)
}

func TestLexer_UnterminatedBlockCommentFails(t *testing.T) {
	lex := NewLexer("1 + /* never closed")
	_, err := lex.ConsumeTokens()
	assert.Error(t, err)
}

func TestLexer_UnexpectedCharacterFails(t *testing.T) {
	lex := NewLexer("1 @ 2")
	_, err := lex.ConsumeTokens()
	assert.Error(t, err)
}

func TestLexer_PositionsAreMonotonic(t *testing.T) {
	lex := NewLexer("int x =\n  42;")
	lastLine, lastCol := 0, 0
	for {
		tok, err := lex.NextToken()
		assert.NoError(t, err)
		if tok.Line > lastLine || (tok.Line == lastLine && tok.Column >= lastCol) {
			lastLine, lastCol = tok.Line, tok.Column
		} else {
			t.Fatalf("token position went backwards: %+v", tok)
		}
		if tok.Type == EOF_TYPE {
			break
		}
	}
}
