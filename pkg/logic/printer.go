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
)

// Mode determines how a formula is rendered as text.
type Mode uint8

const (
	// Minimal omits parentheses wherever the structure of the formula makes
	// them unnecessary.  Conjunction is written by juxtaposition, and
	// disjunction with '+'.  This is the form shown to players.
	Minimal Mode = iota
	// Verbose fully parenthesises every node.  This is a legacy format in
	// which the operands of a conjunction are joined with " + " and those of
	// a disjunction with " * ".
	Verbose
)

// ParseMode converts the name of a mode ("minimal" or "verbose") into a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "minimal":
		return Minimal, nil
	case "verbose":
		return Verbose, nil
	}
	//
	return Minimal, fmt.Errorf("unknown print mode \"%s\"", name)
}

func (m Mode) String() string {
	if m == Verbose {
		return "verbose"
	}
	//
	return "minimal"
}

// Format renders a formula as text in a given mode.
func Format(e Expr, mode Mode) string {
	var builder strings.Builder
	//
	if mode == Verbose {
		writeVerbose(&builder, e)
	} else {
		writeMinimal(&builder, e)
	}
	//
	return builder.String()
}

func writeVerbose(out *strings.Builder, e Expr) {
	out.WriteString("(")
	//
	switch e := e.(type) {
	case Constant:
		out.WriteString(constant(e))
	case Variable:
		out.WriteString(e.Name)
	case Not:
		out.WriteString("~")
		writeVerbose(out, e.Operand)
	case And:
		writeJoined(out, e.Operands, " + ", writeVerbose)
	case Or:
		writeJoined(out, e.Operands, " * ", writeVerbose)
	default:
		panic(fmt.Sprintf("unknown formula %T", e))
	}
	//
	out.WriteString(")")
}

func writeMinimal(out *strings.Builder, e Expr) {
	switch e := e.(type) {
	case Constant:
		out.WriteString(constant(e))
	case Variable:
		out.WriteString(e.Name)
	case Not:
		out.WriteString("~")
		writeOperand(out, e.Operand)
	case And:
		writeJoined(out, e.Operands, "", writeOperand)
	case Or:
		writeJoined(out, e.Operands, "+", writeOperand)
	default:
		panic(fmt.Sprintf("unknown formula %T", e))
	}
}

// Write an operand of a compound formula in minimal form, bracketing it unless
// it is a leaf.
func writeOperand(out *strings.Builder, e Expr) {
	if IsLeaf(e) {
		writeMinimal(out, e)
		return
	}
	//
	out.WriteString("(")
	writeMinimal(out, e)
	out.WriteString(")")
}

func writeJoined(out *strings.Builder, operands []Expr, sep string, write func(*strings.Builder, Expr)) {
	for i, op := range operands {
		if i != 0 {
			out.WriteString(sep)
		}
		//
		write(out, op)
	}
}

func constant(c Constant) string {
	if c.Value {
		return "1"
	}
	//
	return "0"
}
