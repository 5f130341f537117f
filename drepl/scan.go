package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// TokType is a category type for a Token.
type TokType int

// Token categories for command lines.
const (
	EOF TokType = iota
	Word
	Num
	String
)

func (t TokType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Word:
		return "Word"
	case Num:
		return "Num"
	case String:
		return "String"
	}
	return fmt.Sprintf("TokType(%d)", int(t))
}

// Token is an input token of a command line.
type Token struct {
	Type   TokType
	Lexeme string
	Span   Span
}

// Text returns the lexeme, with quotes removed for string tokens.
func (t Token) Text() string {
	if t.Type == String {
		return strings.Trim(t.Lexeme, `"`)
	}
	return t.Lexeme
}

func (t Token) String() string {
	return fmt.Sprintf("%s'%s'%s", t.Type, t.Lexeme, t.Span)
}

// --- Spans ------------------------------------------------------------

// Span denotes a start position and the position just behind the end of a
// token in the input line.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Lexer ------------------------------------------------------------

// lexer compiles the lexmachine DFA for command lines, once.
var lexer = sync.OnceValues(func() (*lexmachine.Lexer, error) {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`#[^\n]*`), skip)
	lx.Add([]byte(`\"[^"]*\"`), makeToken(String))
	lx.Add([]byte(`-?[0-9]+`), makeToken(Num))
	lx.Add([]byte(`([a-z]|[A-Z]|[0-9]|_|-|\.|:|/|@)+`), makeToken(Word))
	lx.Add([]byte(`( |\t|\n|\r)+`), skip)
	if err := lx.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return lx, nil
})

// Tokenize splits a command line into tokens. Input the lexer does not
// recognize is reported as an error.
func Tokenize(line string) ([]Token, error) {
	lx, err := lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lx.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var tokens []Token
	for {
		tok, err, eof := scan.Next()
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return tokens, fmt.Errorf("unexpected input at column %d", ui.StartTC)
			}
			return tokens, err
		}
		if eof {
			break
		}
		token := tok.(*lexmachine.Token)
		tokens = append(tokens, Token{
			Type:   TokType(token.Type),
			Lexeme: string(token.Lexeme),
			Span:   Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
		})
	}
	tracer().Debugf("tokens: %v", tokens)
	return tokens, nil
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(typ TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}
