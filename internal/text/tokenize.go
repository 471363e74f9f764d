// Package text splits console input into addressable spans and labels the
// words with short letter hints.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a Token.
type Kind int

const (
	Word Kind = iota
	Whitespace
	Tab
	Newline
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "Word"
	case Whitespace:
		return "Whitespace"
	case Tab:
		return "Tab"
	case Newline:
		return "Newline"
	default:
		return "Unknown"
	}
}

// Token is one span of the input. Text always holds the exact source bytes,
// so joining every token in order reproduces the input.
type Token struct {
	Kind Kind
	Text string
}

// Len returns the byte length of the token. A Tab is always one byte.
func (t Token) Len() int {
	return len(t.Text)
}

// Tokenize splits input into Word, Whitespace, Tab and Newline tokens.
//
// A run of non-whitespace runes is one Word, a run of spaces is one
// Whitespace, every tab is its own Tab, and "\r\n", "\r" or "\n" is one
// Newline. Any other Unicode space rune becomes a single-rune Whitespace.
func Tokenize(input string) []Token {
	var tokens []Token
	start := 0
	i := 0
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])
		if !unicode.IsSpace(r) {
			i += size
			continue
		}
		if i > start {
			tokens = append(tokens, Token{Kind: Word, Text: input[start:i]})
		}
		switch r {
		case ' ':
			j := i
			for j < len(input) && input[j] == ' ' {
				j++
			}
			tokens = append(tokens, Token{Kind: Whitespace, Text: input[i:j]})
			i = j
		case '\t':
			tokens = append(tokens, Token{Kind: Tab, Text: "\t"})
			i++
		case '\r':
			if i+1 < len(input) && input[i+1] == '\n' {
				tokens = append(tokens, Token{Kind: Newline, Text: input[i : i+2]})
				i += 2
			} else {
				tokens = append(tokens, Token{Kind: Newline, Text: "\r"})
				i++
			}
		case '\n':
			tokens = append(tokens, Token{Kind: Newline, Text: "\n"})
			i++
		default:
			tokens = append(tokens, Token{Kind: Whitespace, Text: input[i : i+size]})
			i += size
		}
		start = i
	}
	if start < len(input) {
		tokens = append(tokens, Token{Kind: Word, Text: input[start:]})
	}
	return tokens
}

// Join concatenates the token texts in order.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

// WordLocation is the position of an addressed word inside a token slice.
type WordLocation struct {
	// Token is the index into the token slice.
	Token int
	// Offset is the byte length of every token before the word.
	Offset int
}

// LocateWord finds the word whose zero-based word index is n, counting only
// Word tokens.
func LocateWord(tokens []Token, n uint32) (WordLocation, bool) {
	var current uint32
	offset := 0
	for i, t := range tokens {
		if t.Kind == Word {
			if current == n {
				return WordLocation{Token: i, Offset: offset}, true
			}
			current++
		}
		offset += t.Len()
	}
	return WordLocation{}, false
}
