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

// Package validation checks mnemonics and split phrases before they reach the
// splitting engine. Every check collects all offending items - all bad words,
// all wrong lengths, all mismatched sets - instead of failing on the first
// one, so callers can show the user everything that needs fixing at once.
package validation

import (
	"strings"

	"github.com/splitmonic/splitmonic/wordlist"
)

const (
	// MnemonicWords is the only mnemonic length the splitter accepts.
	MnemonicWords = 24
	// SplitPhraseWords is the length of one split phrase:
	// 3 set words + 1 index word + 24 payload words.
	SplitPhraseWords = 28
	// SplitPhraseCount is the number of phrases needed to recover.
	SplitPhraseCount = 3
	// SetWords is the length of the shared set identifier prefix.
	SetWords = 3
)

// ValidateMnemonicCode checks that the mnemonic has exactly 24 words and that
// every word is in the wordlist.
func ValidateMnemonicCode(mnemonic string) error {
	words := strings.Split(mnemonic, " ")

	if len(words) != MnemonicWords {
		return &MnemonicLengthError{
			Expected: MnemonicWords,
			Given:    len(words),
			Mnemonic: mnemonic,
		}
	}

	if err := validateAllCorrectWords(words); err != nil {
		return err
	}
	return nil
}

// ValidateSplitPhrases checks that exactly 3 split phrases were given, that
// each is 28 words of wordlist words, and that all three carry the same
// 3-word set identifier.
func ValidateSplitPhrases(phrases []string) error {
	if len(phrases) != SplitPhraseCount {
		return &PhraseCountError{
			Expected: SplitPhraseCount,
			Given:    len(phrases),
			Phrases:  phrases,
		}
	}

	phraseWords := make([][]string, len(phrases))
	for i, phrase := range phrases {
		phraseWords[i] = strings.Split(phrase, " ")
	}

	if err := ValidatePhraseLengths(phraseWords); err != nil {
		return err
	}
	if err := validateWordsInPhrases(phraseWords); err != nil {
		return err
	}
	if err := ValidateSameSet(phraseWords); err != nil {
		return err
	}
	return nil
}

// ValidateSameSet checks that every phrase carries the same 3-word set
// identifier prefix. The first phrase's prefix is adopted as the expected
// identifier; every later phrase that disagrees is collected into the error.
// Phrases shorter than the prefix are ignored here - length checks report
// those more precisely.
func ValidateSameSet(phraseWords [][]string) error {
	var setID []string
	var mismatches []SetMismatch

	for i, words := range phraseWords {
		if len(words) < SetWords {
			continue
		}
		if setID == nil {
			setID = words[:SetWords]
		}
		if !equalWords(setID, words[:SetWords]) {
			mismatches = append(mismatches, SetMismatch{
				Phrase: i,
				SetID:  strings.Join(words[:SetWords], " "),
			})
		}
	}

	if len(mismatches) != 0 {
		return &MismatchedSetError{
			Expected:   strings.Join(setID, " "),
			Mismatches: mismatches,
		}
	}
	return nil
}

func validateAllCorrectWords(words []string) error {
	var indexes []int
	var invalidWords []string

	for i, word := range words {
		if !wordlist.Contains(word) {
			indexes = append(indexes, i)
			invalidWords = append(invalidWords, word)
		}
	}

	if len(indexes) != 0 {
		return &InvalidWordsError{
			Indexes: indexes,
			Words:   invalidWords,
			Phrase:  strings.Join(words, " "),
		}
	}
	return nil
}

// ValidatePhraseLengths checks that every phrase is exactly 28 words,
// collecting every phrase with the wrong length.
func ValidatePhraseLengths(phraseWords [][]string) error {
	var lengths []int
	var invalid []string

	for _, words := range phraseWords {
		if len(words) != SplitPhraseWords {
			invalid = append(invalid, strings.Join(words, " "))
			lengths = append(lengths, len(words))
		}
	}

	if len(invalid) != 0 {
		all := make([]string, 0, len(phraseWords))
		for _, words := range phraseWords {
			all = append(all, strings.Join(words, " "))
		}
		return &PhraseLengthError{
			Lengths:        lengths,
			InvalidPhrases: invalid,
			AllPhrases:     all,
		}
	}
	return nil
}

func validateWordsInPhrases(phraseWords [][]string) error {
	var phraseErrors []PhraseWordError

	for i, words := range phraseWords {
		if err := validateAllCorrectWords(words); err != nil {
			phraseErrors = append(phraseErrors, PhraseWordError{
				Phrase: i,
				Err:    err.(*InvalidWordsError),
			})
		}
	}

	if len(phraseErrors) != 0 {
		return &PhraseWordsError{Errors: phraseErrors}
	}
	return nil
}

func equalWords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
