// Copyright 2024 the Splitmonic Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validation

import (
	"fmt"
	"strings"
)

// MnemonicLengthError reports a mnemonic with the wrong number of words.
type MnemonicLengthError struct {
	Expected int
	Given    int
	Mnemonic string
}

func (e *MnemonicLengthError) Error() string {
	return fmt.Sprintf("this mnemonic length is invalid, expected %d, found: %d\nmnemonic: %q",
		e.Expected, e.Given, e.Mnemonic)
}

// InvalidWordsError reports every word of a phrase that is not in the
// wordlist, along with its position.
type InvalidWordsError struct {
	Indexes []int
	Words   []string
	Phrase  string
}

func (e *InvalidWordsError) Error() string {
	return fmt.Sprintf("invalid words found, invalid word indexes: %v,\ninvalid words: %q\ngiven phrase: %q",
		e.Indexes, e.Words, e.Phrase)
}

// PhraseCountError reports the wrong number of split phrases.
type PhraseCountError struct {
	Expected int
	Given    int
	Phrases  []string
}

func (e *PhraseCountError) Error() string {
	return fmt.Sprintf("invalid number of split phrases, expected: %d, found: %d, all phrases: %q",
		e.Expected, e.Given, strings.Join(e.Phrases, "\n"))
}

// PhraseLengthError reports every split phrase whose word count is wrong.
// InvalidPhrases and Lengths line up pairwise.
type PhraseLengthError struct {
	Lengths        []int
	InvalidPhrases []string
	AllPhrases     []string
}

func (e *PhraseLengthError) Error() string {
	return fmt.Sprintf("found invalid split phrase lengths, the following phrases weren't long enough: %q\n"+
		"they were expected to all be %d words long. Instead they were of lengths: %v\nall phrases: %q",
		e.InvalidPhrases, SplitPhraseWords, e.Lengths, strings.Join(e.AllPhrases, "\n"))
}

// PhraseWordsError aggregates the per-phrase invalid word errors over a set of
// split phrases. Phrase indexes are zero-based.
type PhraseWordsError struct {
	Errors []PhraseWordError
}

// PhraseWordError ties an InvalidWordsError to the split phrase it was found
// in.
type PhraseWordError struct {
	Phrase int
	Err    *InvalidWordsError
}

func (e *PhraseWordsError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid words in split phrases:")
	for _, pe := range e.Errors {
		fmt.Fprintf(&sb, "\nphrase %d: %v", pe.Phrase, pe.Err)
	}
	return sb.String()
}

// SetMismatch names a split phrase whose 3-word set identifier differs from
// the expected one.
type SetMismatch struct {
	Phrase int
	SetID  string
}

// MismatchedSetError reports every split phrase whose set identifier does not
// match the first phrase's.
type MismatchedSetError struct {
	Expected   string
	Mismatches []SetMismatch
}

func (e *MismatchedSetError) Error() string {
	given := make([]string, 0, len(e.Mismatches))
	for _, m := range e.Mismatches {
		given = append(given, fmt.Sprintf("(%d, %q)", m.Phrase, m.SetID))
	}
	return fmt.Sprintf("mismatched set(s), expected: %q, found: %s", e.Expected, strings.Join(given, ", "))
}
