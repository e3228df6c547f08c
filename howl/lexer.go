package howl

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// lexer scans one line of Howl source. Howl is whitespace-delimited: any
// run of non-space runes that is not a number, string, label, or label
// reference is a symbol, so operator names like "+" or "<=" lex as symbols.
type lexer struct {
	input string

	offset int

	line   int
	column int

	ch rune
}

func newLexer(input string) *lexer {
	l := &lexer{input: input, line: 1, column: 0}
	l.readRune()
	return l
}

func (l *lexer) readRune() {
	if l.offset >= len(l.input) {
		l.ch = 0
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.offset += w

	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}

	l.ch = r
}

func (l *lexer) peekRune() rune {
	if l.offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

func (l *lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	tok := Token{Pos: Position{Line: l.line, Column: l.column}}

	switch {
	case l.ch == 0:
		tok.Type = tokenEOF
		tok.Literal = ""
	case l.ch == '"':
		literal, errMsg := l.readString()
		if errMsg != "" {
			tok.Type = tokenIllegal
			tok.Literal = errMsg
		} else {
			tok.Type = tokenString
			tok.Literal = literal
		}
	case l.ch == ':' && isSymbolRune(l.peekRune()):
		l.readRune()
		tok.Type = tokenLabel
		tok.Literal = l.readBareWord()
	case l.ch == '@' && isSymbolRune(l.peekRune()):
		l.readRune()
		tok.Type = tokenLabelRef
		tok.Literal = l.readBareWord()
	case unicode.IsDigit(l.ch),
		l.ch == '-' && unicode.IsDigit(l.peekRune()):
		literal, isFloat := l.readNumber()
		tok.Literal = literal
		if isFloat {
			tok.Type = tokenFloat
		} else {
			tok.Type = tokenInt
		}
	default:
		tok.Type = tokenSymbol
		tok.Literal = l.readBareWord()
	}

	return tok
}

// Tokens scans the rest of the input and returns every remaining token,
// excluding the trailing EOF. This is the per-line entry point used by the
// dispatch engine to fill its lookahead buffer.
func (l *lexer) Tokens() []Token {
	var toks []Token
	for {
		tok := l.NextToken()
		if tok.Type == tokenEOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func (l *lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readRune()
			continue
		case '#':
			l.skipComment()
			continue
		default:
			return
		}
	}
}

func (l *lexer) skipComment() {
	for l.ch != 0 && l.ch != '\n' {
		l.readRune()
	}
}

// readBareWord consumes runes up to the next whitespace or end of input.
// The current rune is part of the word.
func (l *lexer) readBareWord() string {
	var sb strings.Builder
	sb.WriteRune(l.ch)
	for isSymbolRune(l.peekRune()) {
		l.readRune()
		sb.WriteRune(l.ch)
	}
	l.readRune()
	return sb.String()
}

func (l *lexer) readNumber() (string, bool) {
	var sb strings.Builder
	hasDot := false

	// current rune is a digit or a leading minus
	sb.WriteRune(l.ch)

	for {
		r := l.peekRune()
		switch {
		case r == '_':
			// Underscores are visual separators; drop them when surrounded
			// by digits.
			if unicode.IsDigit(l.ch) && unicode.IsDigit(l.peekRuneAfterNext()) {
				l.readRune()
				continue
			}
			goto done
		case r == '.' && !hasDot && unicode.IsDigit(l.peekRuneAfterNext()):
			hasDot = true
			l.readRune()
			sb.WriteRune('.')
		case unicode.IsDigit(r):
			l.readRune()
			sb.WriteRune(r)
		default:
			goto done
		}
	}

done:
	l.readRune()
	return sb.String(), hasDot
}

func (l *lexer) peekRuneAfterNext() rune {
	idx := l.offset
	if idx >= len(l.input) {
		return 0
	}
	_, w := utf8.DecodeRuneInString(l.input[idx:])
	idx += w
	if idx >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[idx:])
	return r
}

// readString decodes a double-quoted literal in place. Returns the decoded
// text, or a non-empty error message for an unterminated literal.
func (l *lexer) readString() (string, string) {
	var sb strings.Builder

	for {
		l.readRune()
		switch l.ch {
		case 0:
			return "", "unterminated string"
		case '"':
			l.readRune()
			return sb.String(), ""
		case '\\':
			next := l.peekRune()
			switch next {
			case '"', '\\':
				l.readRune()
				sb.WriteRune(next)
			case 'n':
				l.readRune()
				sb.WriteByte('\n')
			case 't':
				l.readRune()
				sb.WriteByte('\t')
			default:
				l.readRune()
				sb.WriteRune(next)
			}
		default:
			sb.WriteRune(l.ch)
		}
	}
}

func isSymbolRune(r rune) bool {
	return r != 0 && !unicode.IsSpace(r)
}
