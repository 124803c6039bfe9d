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
package term

import (
	"fmt"
	"strings"

	"github.com/loopy-algebra/loopy/pkg/symbol"
	"github.com/loopy-algebra/loopy/pkg/util/source"
	"github.com/loopy-algebra/loopy/pkg/util/source/lex"
)

// Token is an occurrence of a registered symbol within some source text.
type Token struct {
	Symbol symbol.Symbol
	Span   source.Span
}

func (t Token) String() string {
	return t.Symbol.Repr
}

// Reprs returns the textual representation of each token in a sequence.
func Reprs(tokens []Token) []string {
	reprs := make([]string, len(tokens))
	for i, t := range tokens {
		reprs[i] = t.Symbol.Repr
	}
	//
	return reprs
}

// Whitespace is skipped between tokens.
var whitespace = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\n'), lex.Unit('\r')))

// Tokenize splits a term into a sequence of registered symbols.  The given
// variables are registered as transient operands for the duration of this
// call, and must neither be empty nor clash with a registered symbol.  A
// variable may be declared more than once.  At each position the longest matching representation is chosen, so
// that (for example) an element named "10" is never read as "1" then "0".
func Tokenize(reg *symbol.Registry, text string, variables []string) ([]Token, error) {
	return TokenizeFile(reg, source.NewSourceFile("term", text), variables)
}

// TokenizeFile splits the contents of a given source file into a sequence of
// registered symbols.  See Tokenize for details.
func TokenizeFile(reg *symbol.Registry, file *source.File, variables []string) ([]Token, error) {
	vocab, err := withVariables(reg, variables)
	if err != nil {
		return nil, err
	}
	//
	var (
		syms   = vocab.Symbols()
		wspace = uint(len(syms))
		eof    = wspace + 1
		rules  = make([]lex.LexRule[rune], 0, len(syms)+2)
		tokens []Token
	)
	// One rule per symbol, tagged with its index.
	for i, s := range syms {
		rules = append(rules, lex.Rule(lex.String(s.Repr), uint(i)))
	}
	//
	rules = append(rules, lex.Rule(whitespace, wspace), lex.Rule(lex.Eof[rune](), eof))
	lexer := lex.NewLongestMatchLexer(file.Contents(), rules...)
	//
	for lexer.HasNext() {
		next := lexer.Next()
		//
		switch next.Kind {
		case wspace, eof:
			continue
		default:
			tokens = append(tokens, Token{syms[next.Kind], next.Span})
		}
	}
	// Check everything was consumed
	if lexer.Remaining() > 0 {
		start := int(lexer.Index())
		span := source.NewSpan(start, start+1)
		//
		return nil, file.SyntaxError(span, ErrUnknownToken,
			"no symbol matches \""+strings.TrimSpace(file.Slice(source.NewSpan(start, len(file.Contents()))))+"\"")
	}
	//
	return tokens, nil
}

// Construct a registry extending reg with the given variables.
func withVariables(reg *symbol.Registry, variables []string) (*symbol.Registry, error) {
	if len(variables) == 0 {
		return reg, nil
	}
	//
	vocab := reg.Clone()
	//
	for _, v := range variables {
		if v == "" {
			return nil, fmt.Errorf("%w: empty variable", ErrInvalidVariable)
		} else if s, ok := reg.Lookup(v); ok {
			return nil, fmt.Errorf("%w: %q clashes with a registered %s", ErrInvalidVariable, v, s.Kind)
		} else if _, ok := vocab.Lookup(v); ok {
			// redeclared
			continue
		}
		//
		vocab.AddVariable(v)
	}
	//
	return vocab, nil
}
