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

import "slices"

// Expr represents a boolean formula.  Formulas are immutable trees made up
// from the variants below, and nothing outside this package can add new
// variants.
type Expr interface {
	isExpr()
}

// Constant represents logical truth (1) or falsehood (0).
type Constant struct{ Value bool }

// Variable represents a named input signal.  Names are non-empty and drawn
// from [A-Za-z0-9_].
type Variable struct{ Name string }

// Not represents the logical negation of its operand.
type Not struct{ Operand Expr }

// And represents the conjunction of two or more operands, in the order they
// were written.
type And struct{ Operands []Expr }

// Or represents the disjunction of two or more operands, in the order they
// were written.
type Or struct{ Operands []Expr }

func (Constant) isExpr() {}
func (Variable) isExpr() {}
func (Not) isExpr()      {}
func (And) isExpr()      {}
func (Or) isExpr()       {}

// NewAnd constructs a conjunction of the given operands.  A single operand is
// returned as is, rather than being wrapped.
func NewAnd(operands ...Expr) Expr {
	switch len(operands) {
	case 0:
		panic("conjunction requires at least one operand")
	case 1:
		return operands[0]
	}
	//
	return And{slices.Clone(operands)}
}

// NewOr constructs a disjunction of the given operands.  A single operand is
// returned as is, rather than being wrapped.
func NewOr(operands ...Expr) Expr {
	switch len(operands) {
	case 0:
		panic("disjunction requires at least one operand")
	case 1:
		return operands[0]
	}
	//
	return Or{slices.Clone(operands)}
}

// IsLeaf checks whether a formula is a variable or a constant.
func IsLeaf(e Expr) bool {
	switch e.(type) {
	case Constant, Variable:
		return true
	default:
		return false
	}
}

// Variables returns the distinct variable names used in a formula, in order
// of first occurrence.
func Variables(e Expr) []string {
	var names []string
	//
	walk(e, func(v Variable) {
		if !slices.Contains(names, v.Name) {
			names = append(names, v.Name)
		}
	})
	//
	return names
}

func walk(e Expr, fn func(Variable)) {
	switch e := e.(type) {
	case Variable:
		fn(e)
	case Not:
		walk(e.Operand, fn)
	case And:
		for _, op := range e.Operands {
			walk(op, fn)
		}
	case Or:
		for _, op := range e.Operands {
			walk(op, fn)
		}
	}
}
