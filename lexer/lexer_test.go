/*
File : kodi-script-go/lexer/lexer_test.go
*/
package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLexer_Operators verifies single- and two-character operator
// scanning, including the null-safety operators.
func TestLexer_Operators(t *testing.T) {
	input := `+ - * / % == != < <= > >= = && || ! ?. ?: ( ) { } [ ] , . : ;`

	expected := []TokenType{
		PLUS_OP, MINUS_OP, MUL_OP, DIV_OP, MOD_OP,
		EQ_OP, NE_OP, LT_OP, LE_OP, GT_OP, GE_OP,
		ASSIGN_OP, AND_OP, OR_OP, NOT_OP,
		SAFE_DOT_OP, ELVIS_OP,
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE,
		LEFT_BRACKET, RIGHT_BRACKET,
		COMMA_DELIM, DOT_OP, COLON_DELIM, SEMICOLON_DELIM,
	}

	lex := NewLexer(input)
	for i, want := range expected {
		tok := lex.NextToken()
		assert.Equalf(t, want, tok.Type, "token %d", i)
	}
	assert.Equal(t, EOF_TYPE, lex.NextToken().Type)
	assert.False(t, lex.HasErrors())
}

// TestLexer_Keywords verifies keyword classification, including the
// textual logical operators mapping to their symbolic kinds.
func TestLexer_Keywords(t *testing.T) {
	input := `true false null let if else return fn for in while and or not ident`

	expected := []TokenType{
		TRUE_KEY, FALSE_KEY, NULL_KEY, LET_KEY, IF_KEY, ELSE_KEY,
		RETURN_KEY, FN_KEY, FOR_KEY, IN_KEY, WHILE_KEY,
		AND_OP, OR_OP, NOT_OP,
		IDENTIFIER_ID,
	}

	lex := NewLexer(input)
	for i, want := range expected {
		tok := lex.NextToken()
		assert.Equalf(t, want, tok.Type, "token %d", i)
	}
}

// TestLexer_Numbers verifies number scanning, including the rule that a
// dot not followed by a digit is left for the next token.
func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"0", []string{"0"}},
		{"42", []string{"42"}},
		{"3.14", []string{"3.14"}},
		{"10.5 2", []string{"10.5", "2"}},
		{"1.x", []string{"1", ".", "x"}},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.input)
		tokens := lex.ConsumeTokens()
		literals := make([]string, len(tokens))
		for i, tok := range tokens {
			literals[i] = tok.Literal
		}
		assert.Equalf(t, tt.expected, literals, "input %q", tt.input)
	}
}

// TestLexer_Strings verifies both quote styles, escape decoding, and the
// pass-through rule for unknown escapes.
func TestLexer_Strings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		kind     TokenType
	}{
		{`"hello"`, "hello", STRING_LIT},
		{`'hello'`, "hello", STRING_LIT},
		{`"a\nb\tc"`, "a\nb\tc", STRING_LIT},
		{`"quote: \" done"`, `quote: " done`, STRING_LIT},
		{`'it\'s'`, "it's", STRING_LIT},
		{`"\$notemplate"`, "$notemplate", STRING_LIT},
		{`"\x"`, "x", STRING_LIT},
		{`"sum: ${a + b}"`, "sum: ${a + b}", TEMPLATE_LIT},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.input)
		tok := lex.NextToken()
		require.Falsef(t, lex.HasErrors(), "input %q: %v", tt.input, lex.Errors)
		assert.Equalf(t, tt.kind, tok.Type, "input %q", tt.input)
		assert.Equalf(t, tt.expected, tok.Literal, "input %q", tt.input)
	}
}

// TestLexer_Positions verifies line and column tracking across newlines
// and comments.
func TestLexer_Positions(t *testing.T) {
	input := "let x = 1\n// comment\nx + 2"

	lex := NewLexer(input)
	tokens := lex.ConsumeTokens()

	require.Len(t, tokens, 7)
	assert.Equal(t, 1, tokens[0].Line) // let
	assert.Equal(t, 1, tokens[0].Column)
	assert.Equal(t, 1, tokens[1].Line) // x
	assert.Equal(t, 5, tokens[1].Column)
	assert.Equal(t, 3, tokens[4].Line) // x after the comment
	assert.Equal(t, 1, tokens[4].Column)
	assert.Equal(t, 3, tokens[5].Line) // +
	assert.Equal(t, 3, tokens[5].Column)
}

// TestLexer_Errors verifies the lexical error cases: stray '&', '|', and
// '?', unexpected characters, and unterminated strings.
func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"a & b", `unexpected character "&"`},
		{"a | b", `unexpected character "|"`},
		{"a ? b", `unexpected character "?"`},
		{"a @ b", `unexpected character "@"`},
		{`"unterminated`, "unterminated string literal"},
		{`'unterminated`, "unterminated string literal"},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.input)
		lex.ConsumeTokens()
		require.Truef(t, lex.HasErrors(), "input %q should fail", tt.input)
		assert.Containsf(t, lex.Errors[0], tt.contains, "input %q", tt.input)
	}
}

// TestLexer_UnterminatedStringPosition verifies the error cites the
// opening quote's position.
func TestLexer_UnterminatedStringPosition(t *testing.T) {
	lex := NewLexer("let x =\n  \"oops")
	lex.ConsumeTokens()
	require.True(t, lex.HasErrors())
	assert.Contains(t, lex.Errors[0], "[2:3]")
}

// TestLexer_Restability verifies tokenisation stability: joining the
// lexemes of a lexed source with spaces re-lexes to an equivalent token
// stream.
func TestLexer_Restability(t *testing.T) {
	sources := []string{
		"let x = 10; x = x + 1",
		"if (a >= 2 && b != 3) { print(a) } else { print(b) }",
		"for (i in [1, 2, 3]) { sum = sum + i }",
		"f(1, 2)[0].name ?: fallback",
		"fn (a, b) { return a * b }",
	}

	for _, src := range sources {
		first := NewLexer(src)
		tokens := first.ConsumeTokens()
		require.Falsef(t, first.HasErrors(), "source %q", src)

		lexemes := make([]string, len(tokens))
		for i, tok := range tokens {
			lexemes[i] = tok.Literal
		}

		second := NewLexer(strings.Join(lexemes, " "))
		relexed := second.ConsumeTokens()
		require.Falsef(t, second.HasErrors(), "re-lexed source of %q", src)
		require.Equalf(t, len(tokens), len(relexed), "source %q", src)

		for i := range tokens {
			assert.Equalf(t, tokens[i].Type, relexed[i].Type, "source %q token %d", src, i)
			assert.Equalf(t, tokens[i].Literal, relexed[i].Literal, "source %q token %d", src, i)
		}
	}
}
