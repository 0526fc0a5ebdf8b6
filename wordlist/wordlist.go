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

// Package wordlist provides bidirectional lookups into the English BIP39
// wordlist. The table is built once on first use from the same list the
// mnemonic codec uses, so the index and the codec can never disagree, and is
// read-only afterwards, making it safe for concurrent readers.
package wordlist

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tyler-smith/go-bip39"
)

// Size is the number of words in the BIP39 English wordlist.
const Size = 2048

// InvalidIndexError is returned when the wordlist is queried at an index
// outside 0..Size-1.
type InvalidIndexError struct {
	Index int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("the index `%d` is invalid", e.Index)
}

// InvalidWordError is returned when the wordlist does not contain the queried
// word.
type InvalidWordError struct {
	Word string
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("the word `%s` is invalid", e.Word)
}

type table struct {
	words   []string
	indexes map[string]int
}

var (
	buildOnce sync.Once
	wordTable *table
)

func get() *table {
	buildOnce.Do(func() {
		words := bip39.GetWordList()
		if len(words) != Size {
			panic(fmt.Sprintf("BIP39 English wordlist must contain exactly %d words, got %d", Size, len(words)))
		}
		indexes := make(map[string]int, Size)
		for i, word := range words {
			indexes[word] = i
		}
		wordTable = &table{words: words, indexes: indexes}
	})
	return wordTable
}

// Word returns the word at the given index.
func Word(index int) (string, error) {
	t := get()
	if index < 0 || index >= len(t.words) {
		return "", &InvalidIndexError{Index: index}
	}
	return t.words[index], nil
}

// Index returns the position of the given word in the wordlist.
func Index(word string) (int, error) {
	index, ok := get().indexes[word]
	if !ok {
		return 0, &InvalidWordError{Word: word}
	}
	return index, nil
}

// Contains reports whether the word is in the wordlist.
func Contains(word string) bool {
	_, ok := get().indexes[word]
	return ok
}

// Words returns a sorted copy of the full wordlist.
func Words() []string {
	t := get()
	words := make([]string, len(t.words))
	copy(words, t.words)
	sort.Strings(words)
	return words
}

// StartingWith returns the sorted words sharing the given prefix.
func StartingWith(prefix string) []string {
	var words []string
	for _, word := range get().words {
		if strings.HasPrefix(word, prefix) {
			words = append(words, word)
		}
	}
	sort.Strings(words)
	return words
}

// NextStartingWith returns the word that follows current among the words
// sharing the given prefix, cycling back to the first word after the last.
// The second return value is false when current is not one of those words.
func NextStartingWith(prefix, current string) (string, bool) {
	words := StartingWith(prefix)
	for i, word := range words {
		if word == current {
			return words[(i+1)%len(words)], true
		}
	}
	return "", false
}
