// ============================================================================
// tantalum - Exact Unit-Aware Arithmetic
// ============================================================================
//
// Package:     parser
// Description: Tokenizer for unit expressions such as "kg·m^2/s^2"
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Identifiers and literals
	TokenIdentifier  // m, km, °C, kilometers
	TokenNumber      // 1, 2, 12
	TokenSuperscript // ², ⁻¹

	// Operators
	TokenMultiply // * · .
	TokenDivide   // /
	TokenPower    // ^ **
	TokenMinus    // -

	// Delimiters
	TokenLeftParen  // (
	TokenRightParen // )
)

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text; superscripts hold the plain exponent
	Position int       // Byte position in input
	Line     int       // Line number (1-based)
	Column   int       // Column number in runes (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenNumber:
		return "NUMBER"
	case TokenSuperscript:
		return "SUPERSCRIPT"
	case TokenMultiply:
		return "MULTIPLY"
	case TokenDivide:
		return "DIVIDE"
	case TokenPower:
		return "POWER"
	case TokenMinus:
		return "MINUS"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	default:
		return "UNKNOWN"
	}
}

// Lexer performs lexical analysis of a unit expression. It works on runes so
// that symbols like "°C", "µs" and "Ω" read as identifiers while "·" is an
// operator.
type Lexer struct {
	input    string // Input string
	position int    // Byte position of ch
	readPos  int    // Byte position after ch
	ch       rune   // Current rune, 0 at end of input
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	pos := l.position
	line := l.line
	column := l.column

	switch l.ch {
	case '*':
		if l.peekChar() == '*' {
			l.readChar()
			tok = Token{Type: TokenPower, Value: "**", Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenMultiply, l.ch, pos, line, column)
		}
	case '·', '⋅', '×', '.':
		tok = newToken(TokenMultiply, l.ch, pos, line, column)
	case '/':
		tok = newToken(TokenDivide, l.ch, pos, line, column)
	case '^':
		tok = newToken(TokenPower, l.ch, pos, line, column)
	case '-':
		tok = newToken(TokenMinus, l.ch, pos, line, column)
	case '(':
		tok = newToken(TokenLeftParen, l.ch, pos, line, column)
	case ')':
		tok = newToken(TokenRightParen, l.ch, pos, line, column)
	case 0:
		tok = Token{Type: TokenEOF, Value: "", Position: pos, Line: line, Column: column}
	default:
		switch {
		case isLetter(l.ch):
			tok = Token{Type: TokenIdentifier, Value: l.readIdentifier(), Position: pos, Line: line, Column: column}
			return tok
		case isDigit(l.ch):
			tok = Token{Type: TokenNumber, Value: l.readNumber(), Position: pos, Line: line, Column: column}
			return tok
		case isSuperscript(l.ch):
			tok = Token{Type: TokenSuperscript, Value: l.readSuperscript(), Position: pos, Line: line, Column: column}
			return tok
		default:
			tok = newToken(TokenIllegal, l.ch, pos, line, column)
		}
	}

	l.readChar()
	return tok
}

// Tokenize returns all tokens from the input as a slice
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}

		if tok.Type == TokenIllegal {
			return tokens, fmt.Errorf("illegal character '%s' at column %d (position %d)",
				tok.Value, tok.Column, tok.Position)
		}
	}

	return tokens, nil
}

// readChar decodes the next rune and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPos = len(l.input) + 1
	} else {
		r, size := utf8.DecodeRuneInString(l.input[l.readPos:])
		l.ch = r
		l.position = l.readPos
		l.readPos += size
	}

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next rune without advancing position
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

// readIdentifier reads a run of letters, "°" and underscores
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads an unsigned integer literal
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readSuperscript reads superscript digits with an optional leading "⁻" and
// returns them as a plain integer literal
func (l *Lexer) readSuperscript() string {
	var sb strings.Builder
	for isSuperscript(l.ch) {
		sb.WriteRune(superscripts[l.ch])
		l.readChar()
	}
	return sb.String()
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch != 0 && unicode.IsSpace(l.ch) {
		l.readChar()
	}
}

// Utility functions

// newToken creates a new single-rune token
func newToken(tokenType TokenType, ch rune, pos, line, column int) Token {
	return Token{
		Type:     tokenType,
		Value:    string(ch),
		Position: pos,
		Line:     line,
		Column:   column,
	}
}

var superscripts = map[rune]rune{
	'⁰': '0', '¹': '1', '²': '2', '³': '3', '⁴': '4',
	'⁵': '5', '⁶': '6', '⁷': '7', '⁸': '8', '⁹': '9',
	'⁻': '-',
}

// isLetter reports whether ch may appear in a unit name. "µ", "Ω" and "Θ" are
// Unicode letters; the degree sign is not and is added explicitly.
func isLetter(ch rune) bool {
	if isSuperscript(ch) {
		return false
	}
	return unicode.IsLetter(ch) || ch == '_' || ch == '°'
}

// isDigit checks if the character is an ASCII digit
func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isSuperscript(ch rune) bool {
	_, ok := superscripts[ch]
	return ok
}
