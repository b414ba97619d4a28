package lex

import (
	"unicode"

	"github.com/dekarrin/pastac/internal/perrors"
)

// Lex scans the entire source string and returns a TokenStream over it.
// Whitespace is consumed between tokens and never surfaced; newlines
// increment the line counter. Returns a lexical error on the first
// unrecognized character.
func Lex(src string) (TokenStream, error) {
	l := &lexer{src: []rune(src), line: 1, col: 1}

	var toks []Token
	for {
		l.skipWhitespace()
		if l.atEnd() {
			break
		}

		tok, err := l.scanOne()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}

	end := End(l.line, l.col)
	return newSliceStream(toks, end), nil
}

type lexer struct {
	src  []rune
	pos  int
	line int
	col  int
}

func (l *lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *lexer) peek() rune {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) peekAt(offset int) rune {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *lexer) advance() rune {
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *lexer) skipWhitespace() {
	for !l.atEnd() && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

// scanOne recognizes and returns exactly one token starting at the current
// position. The current rune is guaranteed non-whitespace and non-EOF.
func (l *lexer) scanOne() (Token, error) {
	startLine, startCol := l.line, l.col
	r := l.peek()

	switch {
	case unicode.IsLetter(r):
		return l.scanIdentOrKeyword(startLine, startCol), nil
	case unicode.IsDigit(r):
		return l.scanNumber(startLine, startCol)
	default:
		return l.scanOperator(startLine, startCol)
	}
}

func (l *lexer) scanIdentOrKeyword(line, col int) Token {
	start := l.pos
	for !l.atEnd() && isIdentRune(l.peek()) {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])

	if kw, ok := keywords[lexeme]; ok {
		return Token{Kind: kw, Lexeme: lexeme, Line: line, Column: col}
	}
	return Token{Kind: Ident, Lexeme: lexeme, Line: line, Column: col}
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// scanNumber recognizes decimal (`0|[1-9][0-9]*`), octal (`0[0-7]+`), and
// hex (`0[xX][0-9A-Fa-f]+`) integers, plus the two illegal forms: an octal
// literal containing an 8 or 9 digit, and a hex literal whose body (the
// letters and digits after 0x/0X) contains any non-hex character.
func (l *lexer) scanNumber(line, col int) (Token, error) {
	start := l.pos

	if l.peek() == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X') {
		l.advance() // 0
		l.advance() // x/X
		bodyStart := l.pos
		for !l.atEnd() && isAlnum(l.peek()) {
			l.advance()
		}
		lexeme := string(l.src[start:l.pos])
		if l.pos == bodyStart {
			return Token{}, perrors.NewLexical("empty hex literal", line, col)
		}
		if allHexDigits(l.src[bodyStart:l.pos]) {
			return Token{Kind: Int16, Lexeme: lexeme, Line: line, Column: col}, nil
		}
		return Token{Kind: IllegalInt16, Lexeme: lexeme, Line: line, Column: col}, nil
	}

	if l.peek() == '0' {
		l.advance()
		if !l.atEnd() && unicode.IsDigit(l.peek()) {
			bodyStart := l.pos - 1
			for !l.atEnd() && unicode.IsDigit(l.peek()) {
				l.advance()
			}
			lexeme := string(l.src[start:l.pos])
			if allOctalDigits(l.src[bodyStart+1 : l.pos]) {
				return Token{Kind: Int8, Lexeme: lexeme, Line: line, Column: col}, nil
			}
			return Token{Kind: IllegalInt8, Lexeme: lexeme, Line: line, Column: col}, nil
		}
		// bare "0"
		return Token{Kind: Int10, Lexeme: "0", Line: line, Column: col}, nil
	}

	// [1-9][0-9]*
	for !l.atEnd() && unicode.IsDigit(l.peek()) {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	return Token{Kind: Int10, Lexeme: lexeme, Line: line, Column: col}, nil
}

func isAlnum(r rune) bool {
	return unicode.IsDigit(r) || unicode.IsLetter(r)
}

func allHexDigits(rs []rune) bool {
	for _, r := range rs {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func allOctalDigits(rs []rune) bool {
	for _, r := range rs {
		if r < '0' || r > '7' {
			return false
		}
	}
	return true
}

func (l *lexer) scanOperator(line, col int) (Token, error) {
	r := l.advance()

	single := func(k Kind) (Token, error) {
		return Token{Kind: k, Lexeme: string(r), Line: line, Column: col}, nil
	}

	switch r {
	case '+':
		return single(OpPlus)
	case '-':
		return single(OpMinus)
	case '*':
		return single(OpStar)
	case '/':
		return single(OpSlash)
	case '=':
		return single(OpEq)
	case '(':
		return single(OpLParen)
	case ')':
		return single(OpRParen)
	case ';':
		return single(OpSemi)
	case '<':
		if l.peek() == '>' {
			l.advance()
			return Token{Kind: OpNe, Lexeme: "<>", Line: line, Column: col}, nil
		}
		if l.peek() == '=' {
			l.advance()
			return Token{Kind: OpLe, Lexeme: "<=", Line: line, Column: col}, nil
		}
		return single(OpLt)
	case '>':
		if l.peek() == '=' {
			l.advance()
			return Token{Kind: OpGe, Lexeme: ">=", Line: line, Column: col}, nil
		}
		return single(OpGt)
	default:
		return Token{}, perrors.NewLexical("unknown character "+string(r), line, col)
	}
}
