/*
File : kodi-script-go/lexer/lexer_utils.go
*/
package lexer

import "strings"

// isDigit reports whether c is an ASCII decimal digit ('0'..'9').
// This is used in the hot path for number scanning.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isLetter reports whether c is an ASCII letter (a-z, A-Z).
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isWhitespace reports whether c is a whitespace byte the scanner skips:
// space, tab, carriage return, or newline.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// escapeChar converts an escape sequence character to its replacement.
// Recognised sequences map to their control characters; any other escaped
// character stands for itself (so "\x" decodes to "x").
func escapeChar(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '\\':
		return '\\'
	case '"':
		return '"'
	case '\'':
		return '\''
	case '$':
		return '$'
	default:
		return c
	}
}

// readStringLiteral reads and tokenizes a string literal from the source.
// Strings may be delimited by double or single quotes; contents are read
// verbatim until the matching unescaped quote. If an unescaped "${" pair
// occurs inside the body, the token kind is TEMPLATE_LIT instead of
// STRING_LIT. Reaching end of input before the closing quote records an
// unterminated-string error citing the opening quote position.
func readStringLiteral(lex *Lexer) Token {
	quote := lex.Current
	line, column := lex.Line, lex.Column
	lex.Advance() // consume opening quote

	var builder strings.Builder
	templated := false

	for lex.Current != quote {
		if lex.Current == 0 {
			lex.addError("[%d:%d] lexical error: unterminated string literal", line, column)
			return NewTokenWithMetadata(INVALID_TYPE, builder.String(), line, column)
		}

		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0
		}

		if lex.Current == '\\' {
			lex.Advance() // consume the backslash
			if lex.Current == 0 {
				lex.addError("[%d:%d] lexical error: unterminated string literal", line, column)
				return NewTokenWithMetadata(INVALID_TYPE, builder.String(), line, column)
			}
			builder.WriteByte(escapeChar(lex.Current))
			lex.Advance()
			continue
		}

		if lex.Current == '$' && lex.Peek() == '{' {
			templated = true
		}

		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	lex.Advance() // consume closing quote

	kind := STRING_LIT
	if templated {
		kind = TEMPLATE_LIT
	}
	return NewTokenWithMetadata(kind, builder.String(), line, column)
}

// readNumber reads and tokenizes a numeric literal from the source.
// Numbers are an integer part optionally followed by '.' and a fraction,
// but only when the byte after the '.' is a digit; otherwise the dot is
// left for the next token (so `1.toString` lexes as 1, '.', identifier).
// The lexeme is emitted as matched text; the parser decodes it to a
// floating-point value.
func readNumber(lex *Lexer) Token {
	start := lex.Position
	line, column := lex.Line, lex.Column

	for isDigit(lex.Current) {
		lex.Advance()
	}

	if lex.Current == '.' && isDigit(lex.Peek()) {
		lex.Advance() // consume '.'
		for isDigit(lex.Current) {
			lex.Advance()
		}
	}

	return NewTokenWithMetadata(NUMBER_LIT, lex.Src[start:lex.Position], line, column)
}

// readIdentifier reads and tokenizes an identifier or keyword from the
// source. Identifiers start with an ASCII letter or underscore and
// continue with letters, digits, and underscores. Keyword spellings
// resolve to their reserved token kinds via lookupIdent.
func readIdentifier(lex *Lexer) Token {
	start := lex.Position
	line, column := lex.Line, lex.Column

	lex.Advance() // first byte was validated by the caller

	for isLetter(lex.Current) || isDigit(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]

	return NewTokenWithMetadata(lookupIdent(literal), literal, line, column)
}
