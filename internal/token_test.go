package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tokens, err := tokenize("1+2*3")
	assert.NoError(t, err)
	assert.Equal(t, []Token{
		{Kind: TokenNumber, Text: "1"},
		{Kind: TokenAdd},
		{Kind: TokenNumber, Text: "2"},
		{Kind: TokenMul},
		{Kind: TokenNumber, Text: "3"},
	}, tokens)
}

func TestTokenize_whitespaceIgnored(t *testing.T) {
	tokens, err := tokenize(" 1 + A1 ")
	assert.NoError(t, err)
	assert.Equal(t, []Token{
		{Kind: TokenNumber, Text: "1"},
		{Kind: TokenAdd},
		{Kind: TokenRef, Text: "A1"},
	}, tokens)
}

func TestTokenize_scientificNumber(t *testing.T) {
	tokens, err := tokenize("1.5e-3")
	assert.NoError(t, err)
	assert.Equal(t, []Token{{Kind: TokenNumber, Text: "1.5e-3"}}, tokens)
}

func TestTokenize_cellRef(t *testing.T) {
	tokens, err := tokenize("XFD16384")
	assert.NoError(t, err)
	assert.Equal(t, []Token{{Kind: TokenRef, Text: "XFD16384"}}, tokens)
}

func TestTokenize_unexpectedCharacter(t *testing.T) {
	_, err := tokenize("1$2")
	assert.ErrorIs(t, err, ErrFormulaParse)
}

func TestTokenize_parens(t *testing.T) {
	tokens, err := tokenize("(1+2)")
	assert.NoError(t, err)
	assert.Equal(t, []Token{
		{Kind: TokenLPar},
		{Kind: TokenNumber, Text: "1"},
		{Kind: TokenAdd},
		{Kind: TokenNumber, Text: "2"},
		{Kind: TokenRPar},
	}, tokens)
}
