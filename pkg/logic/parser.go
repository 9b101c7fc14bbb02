// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package logic

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/blllock/gridlogic/pkg/util/source"
	"github.com/blllock/gridlogic/pkg/util/source/lex"
)

// END_OF signals "end of formula"
const END_OF uint = 0

// LBRACE signals "left brace"
const LBRACE uint = 1

// RBRACE signals "right brace"
const RBRACE uint = 2

// NOT represents logical negation
const NOT uint = 3

// AND represents logical conjunction
const AND uint = 4

// OR represents logical disjunction
const OR uint = 5

// WORD signals either a variable name or a constant.
const WORD uint = 6

// Rule for describing variable names and constants
var word lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('~'), NOT),
	lex.Rule(lex.Unit('*'), AND),
	lex.Rule(lex.Unit('+'), OR),
	lex.Rule(word, WORD),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Parse a formula into an expression tree.  All whitespace is removed before
// parsing, hence positions reported in a syntax error refer to the formula
// without whitespace.  AND binds tighter than OR, and NOT binds tighter than
// both.  A sequence of the same connective is folded into a single node, such
// that "A*B*C" gives one conjunction with three operands.  Any error returned
// is a *source.SyntaxError.
func Parse(text string) (Expr, error) {
	var (
		formula = stripWhitespace(text)
		srcfile = source.NewSourceFile("formula", []byte(formula))
		lexer   = lex.NewLexer(srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start := lexer.Index()
		msg := fmt.Sprintf("unexpected character '%c'", srcfile.Contents()[start])
		//
		return nil, srcfile.SyntaxError(source.NewSpan(start, start+1), msg)
	} else if len(formula) == 0 {
		return nil, srcfile.SyntaxError(source.NewSpan(0, 0), "empty formula")
	}
	//
	parser := &parser{srcfile, tokens, 0}
	//
	expr, err := parser.parseOr()
	if err != nil {
		return nil, err
	} else if token := parser.lookahead(); token.Kind != END_OF {
		return nil, parser.syntaxError(token, fmt.Sprintf("unexpected '%s'", parser.string(token)))
	}
	// All good!
	return expr, nil
}

// MustParse is like Parse but panics if the formula cannot be parsed.  This is
// intended for formulas fixed at compile time.
func MustParse(text string) Expr {
	expr, err := Parse(text)
	if err != nil {
		panic(err)
	}
	//
	return expr
}

func stripWhitespace(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		//
		return r
	}, text)
}

// parser is a recursive descent parser over a token stream which always ends
// with END_OF.
type parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
}

// Or := And ('+' And)*
func (p *parser) parseOr() (Expr, error) {
	var operands []Expr
	//
	for {
		operand, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		//
		operands = append(operands, operand)
		//
		if !p.match(OR) {
			return NewOr(operands...), nil
		}
	}
}

// And := Primary ('*' Primary)*
func (p *parser) parseAnd() (Expr, error) {
	var operands []Expr
	//
	for {
		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		//
		operands = append(operands, operand)
		//
		if !p.match(AND) {
			return NewAnd(operands...), nil
		}
	}
}

// Primary := '~' Primary | '(' Or ')' | Word
func (p *parser) parsePrimary() (Expr, error) {
	token := p.lookahead()
	//
	switch token.Kind {
	case NOT:
		p.index++
		//
		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		//
		return Not{operand}, nil
	case LBRACE:
		p.index++
		//
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		} else if !p.match(RBRACE) {
			return nil, p.syntaxError(p.lookahead(), "expected ')'")
		}
		//
		return inner, nil
	case WORD:
		p.index++
		//
		switch name := p.string(token); name {
		case "1":
			return Constant{true}, nil
		case "0":
			return Constant{false}, nil
		default:
			return Variable{name}, nil
		}
	}
	//
	return nil, p.syntaxError(token, "expected operand")
}

// Get the text representing the given token as a string.
func (p *parser) string(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *parser) syntaxError(token lex.Token, msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(token.Span, msg)
}
