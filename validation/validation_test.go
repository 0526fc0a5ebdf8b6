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

package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/splitmonic/splitmonic/validation"
)

const validMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"

func TestValidateMnemonicCodeAcceptsValidMnemonic(t *testing.T) {
	if err := validation.ValidateMnemonicCode(validMnemonic); err != nil {
		t.Fatalf("ValidateMnemonicCode() err = %v, want nil", err)
	}
}

func TestValidateMnemonicCodeWrongLength(t *testing.T) {
	err := validation.ValidateMnemonicCode("this is a fail")

	var lengthErr *validation.MnemonicLengthError
	if !errors.As(err, &lengthErr) {
		t.Fatalf("ValidateMnemonicCode() err = %v, want MnemonicLengthError", err)
	}
	want := &validation.MnemonicLengthError{
		Expected: 24,
		Given:    4,
		Mnemonic: "this is a fail",
	}
	if diff := cmp.Diff(want, lengthErr); diff != "" {
		t.Errorf("MnemonicLengthError diff (-want +got):\n%s", diff)
	}
}

func TestValidateMnemonicCodeCollectsAllWrongWords(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon ford abandon abandon abandon abandon abandan abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon f150 art"
	err := validation.ValidateMnemonicCode(mnemonic)

	var wordsErr *validation.InvalidWordsError
	if !errors.As(err, &wordsErr) {
		t.Fatalf("ValidateMnemonicCode() err = %v, want InvalidWordsError", err)
	}
	want := &validation.InvalidWordsError{
		Indexes: []int{4, 9, 22},
		Words:   []string{"ford", "abandan", "f150"},
		Phrase:  mnemonic,
	}
	if diff := cmp.Diff(want, wordsErr); diff != "" {
		t.Errorf("InvalidWordsError diff (-want +got):\n%s", diff)
	}
}

func TestValidateMnemonicCodeIsPure(t *testing.T) {
	mnemonic := "this is a fail"

	first := validation.ValidateMnemonicCode(mnemonic)
	second := validation.ValidateMnemonicCode(mnemonic)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated validation returned different errors (-first +second):\n%s", diff)
	}
	if err := validation.ValidateMnemonicCode(validMnemonic); err != nil {
		t.Fatalf("first validation err = %v, want nil", err)
	}
	if err := validation.ValidateMnemonicCode(validMnemonic); err != nil {
		t.Fatalf("second validation err = %v, want nil", err)
	}
}

func TestValidateSplitPhrasesNotEnoughPhrases(t *testing.T) {
	phrases := []string{
		"hello this is my first phrase",
		"this is my second phrase",
	}
	err := validation.ValidateSplitPhrases(phrases)

	var countErr *validation.PhraseCountError
	if !errors.As(err, &countErr) {
		t.Fatalf("ValidateSplitPhrases() err = %v, want PhraseCountError", err)
	}
	want := &validation.PhraseCountError{
		Expected: 3,
		Given:    2,
		Phrases:  phrases,
	}
	if diff := cmp.Diff(want, countErr); diff != "" {
		t.Errorf("PhraseCountError diff (-want +got):\n%s", diff)
	}
}

func TestValidateSplitPhrasesCollectsAllWrongLengths(t *testing.T) {
	phrases := []string{
		"hello this is my first phrase",
		"this is my second phrase",
		"third phrase",
	}
	err := validation.ValidateSplitPhrases(phrases)

	var lengthErr *validation.PhraseLengthError
	if !errors.As(err, &lengthErr) {
		t.Fatalf("ValidateSplitPhrases() err = %v, want PhraseLengthError", err)
	}
	want := &validation.PhraseLengthError{
		Lengths:        []int{6, 5, 2},
		InvalidPhrases: phrases,
		AllPhrases:     phrases,
	}
	if diff := cmp.Diff(want, lengthErr); diff != "" {
		t.Errorf("PhraseLengthError diff (-want +got):\n%s", diff)
	}
}

func TestValidateSplitPhrasesCollectsInvalidWordsPerPhrase(t *testing.T) {
	good := strings.Repeat("abandon ", 27) + "abandon"
	bad := strings.Repeat("abandon ", 26) + "ford abandon"

	err := validation.ValidateSplitPhrases([]string{good, bad, good})

	var wordsErr *validation.PhraseWordsError
	if !errors.As(err, &wordsErr) {
		t.Fatalf("ValidateSplitPhrases() err = %v, want PhraseWordsError", err)
	}
	if got, want := len(wordsErr.Errors), 1; got != want {
		t.Fatalf("len(wordsErr.Errors) = %d, want %d", got, want)
	}
	if got, want := wordsErr.Errors[0].Phrase, 1; got != want {
		t.Errorf("wordsErr.Errors[0].Phrase = %d, want %d", got, want)
	}
	wantInner := &validation.InvalidWordsError{
		Indexes: []int{26},
		Words:   []string{"ford"},
		Phrase:  bad,
	}
	if diff := cmp.Diff(wantInner, wordsErr.Errors[0].Err); diff != "" {
		t.Errorf("InvalidWordsError diff (-want +got):\n%s", diff)
	}
}

func TestValidateSameSet(t *testing.T) {
	phrases := [][]string{
		strings.Split("hello hello hello some other random stuff", " "),
		strings.Split("hello hello hello more random stuff", " "),
		strings.Split("hello bad hello even more random stuff", " "),
	}

	err := validation.ValidateSameSet(phrases)

	var setErr *validation.MismatchedSetError
	if !errors.As(err, &setErr) {
		t.Fatalf("ValidateSameSet() err = %v, want MismatchedSetError", err)
	}
	want := &validation.MismatchedSetError{
		Expected: "hello hello hello",
		Mismatches: []validation.SetMismatch{
			{Phrase: 2, SetID: "hello bad hello"},
		},
	}
	if diff := cmp.Diff(want, setErr); diff != "" {
		t.Errorf("MismatchedSetError diff (-want +got):\n%s", diff)
	}
}

func TestValidateSameSetAccepts(t *testing.T) {
	phrases := [][]string{
		strings.Split("alpha beta gamma one", " "),
		strings.Split("alpha beta gamma two", " "),
	}
	if err := validation.ValidateSameSet(phrases); err != nil {
		t.Fatalf("ValidateSameSet() err = %v, want nil", err)
	}
}

func TestValidateSplitPhrasesIsPure(t *testing.T) {
	phrases := []string{
		"hello this is my first phrase",
		"this is my second phrase",
		"third phrase",
	}
	first := validation.ValidateSplitPhrases(phrases)
	second := validation.ValidateSplitPhrases(phrases)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated validation returned different errors (-first +second):\n%s", diff)
	}
}
