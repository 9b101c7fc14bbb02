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
package lex

import (
	"slices"
	"testing"

	"github.com/blllock/gridlogic/pkg/util/assert"
	"github.com/blllock/gridlogic/pkg/util/source"
)

func TestLexer_00(t *testing.T) {
	var tokens = []Token{
		{END_OF, source.NewSpan(0, 0)},
	}

	checkLexer(t, "", 0, tokens...)
}

func TestLexer_01(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{END_OF, source.NewSpan(1, 1)},
	}

	checkLexer(t, "(", 0, tokens...)
}

func TestLexer_02(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{RBRACE, source.NewSpan(1, 2)},
		{END_OF, source.NewSpan(2, 2)},
	}

	checkLexer(t, "()", 0, tokens...)
}

func TestLexer_03(t *testing.T) {
	var tokens = []Token{
		{NOT, source.NewSpan(0, 1)},
	}

	checkLexer(t, "~?", 1, tokens...)
}

func TestLexer_04(t *testing.T) {
	var tokens = []Token{
		{WORD, source.NewSpan(0, 3)},
		{END_OF, source.NewSpan(3, 3)},
	}

	checkLexer(t, "A_1", 0, tokens...)
}

func TestLexer_05(t *testing.T) {
	var tokens = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{NOT, source.NewSpan(1, 2)},
		{WORD, source.NewSpan(2, 4)},
		{RBRACE, source.NewSpan(4, 5)},
		{END_OF, source.NewSpan(5, 5)},
	}

	checkLexer(t, "(~Ab)", 0, tokens...)
}

func TestLexer_06(t *testing.T) {
	var tokens = []Token{
		{WORD, source.NewSpan(0, 2)},
	}

	checkLexer(t, "10+2", 2, tokens...)
}

func TestLexerIndex(t *testing.T) {
	lexer := NewLexer([]rune("~A?"), rules...)
	tokens := lexer.Collect()
	//
	assert.Equal(t, 2, len(tokens))
	assert.Equal(t, 2, lexer.Index())
	assert.Equal(t, uint(1), lexer.Remaining())
}

func TestScannerOr(t *testing.T) {
	rule := Or(Unit('a', 'b'), Unit('a'))
	assert.Equal(t, 2, rule([]rune("abc")))
	assert.Equal(t, 1, rule([]rune("ac")))
	assert.Equal(t, 0, rule([]rune("c")))
}

// ==================================================================
// Framework
// ==================================================================

const END_OF uint = 0
const LBRACE uint = 1
const RBRACE uint = 2
const NOT uint = 3
const WORD uint = 4

// Rule for describing words
var word = Many(Or(Unit('_'), Within('0', '9'), Within('a', 'z'), Within('A', 'Z')))

// lexing rules
var rules = []LexRule[rune]{
	Rule(Unit('('), LBRACE),
	Rule(Unit(')'), RBRACE),
	Rule(Unit('~'), NOT),
	Rule(word, WORD),
	Rule(Eof[rune](), END_OF),
}

func checkLexer(t *testing.T, input string, remainder uint, expected ...Token) {
	items := []rune(input)
	// Construct text lexer
	lexer := NewLexer(items, rules...)
	// Apply lexer
	tokens := lexer.Collect()
	// Keep scanning
	if !slices.Equal(tokens, expected) {
		t.Errorf("got %v, expected %v", tokens, expected)
	} else if lexer.Remaining() != remainder {
		n := len(items) - int(lexer.Remaining())
		t.Errorf("unmatched items: %v", items[n:])
	}
}
