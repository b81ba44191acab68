package internal

import "fmt"

// TokenKind distinguishes the kinds of tokens produced by tokenize.
type TokenKind int

const (
	TokenNumber TokenKind = iota
	TokenRef
	TokenAdd
	TokenSub
	TokenMul
	TokenDiv
	TokenLPar
	TokenRPar
)

// Token is a single lexical unit of a formula expression. Text carries the
// raw source text for TokenNumber and TokenRef; it is unused for operators
// and parens, whose kind alone is meaningful.
type Token struct {
	Kind TokenKind
	Text string
}

var runeTokens = map[rune]TokenKind{
	'+': TokenAdd,
	'-': TokenSub,
	'*': TokenMul,
	'/': TokenDiv,
	'(': TokenLPar,
	')': TokenRPar,
}

// tokenize lexes expr (the formula text with the leading '=' already
// stripped) into a token stream, returning ErrFormulaParse (wrapped) on any
// unexpected character.
func tokenize(expr string) ([]Token, error) {
	runes := []rune(expr)
	var tokens []Token
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if ch == ' ' || ch == '\t' {
			continue
		}
		if between(ch, '0', '9') {
			start := i
			i = scanNumber(runes, i)
			tokens = append(tokens, Token{Kind: TokenNumber, Text: string(runes[start : i+1])})
			continue
		}
		if between(ch, 'A', 'Z') {
			start := i
			for i < len(runes) && (between(runes[i], '0', '9') || between(runes[i], 'A', 'Z')) {
				i++
			}
			tokens = append(tokens, Token{Kind: TokenRef, Text: string(runes[start:i])})
			i--
			continue
		}
		kind, ok := runeTokens[ch]
		if !ok {
			return nil, fmt.Errorf("%w: unexpected character %q", ErrFormulaParse, ch)
		}
		tokens = append(tokens, Token{Kind: kind})
	}
	return tokens, nil
}

// scanNumber advances past a decimal literal with an optional fractional
// part and optional scientific exponent, starting at runes[i] (the first
// digit). It returns the index of the last rune belonging to the literal.
func scanNumber(runes []rune, i int) int {
	for i+1 < len(runes) && between(runes[i+1], '0', '9') {
		i++
	}
	if i+1 < len(runes) && runes[i+1] == '.' && i+2 < len(runes) && between(runes[i+2], '0', '9') {
		i += 2
		for i+1 < len(runes) && between(runes[i+1], '0', '9') {
			i++
		}
	}
	if i+1 < len(runes) && (runes[i+1] == 'e' || runes[i+1] == 'E') {
		j := i + 2
		if j < len(runes) && (runes[j] == '+' || runes[j] == '-') {
			j++
		}
		if j < len(runes) && between(runes[j], '0', '9') {
			i = j
			for i+1 < len(runes) && between(runes[i+1], '0', '9') {
				i++
			}
		}
	}
	return i
}

// between is true iff target lies between lb (lower bound) and ub (upper
// bound), both inclusive.
func between(target rune, lb, ub rune) bool {
	return lb <= target && target <= ub
}
