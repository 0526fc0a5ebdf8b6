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

// Package phrasefile reads and writes split phrases as flat text files with
// one numbered word per line:
//
//	1: gun
//	2: dismiss
//	...
//
// Reading back keeps only the alphabetic runs of each line, so numbering,
// punctuation and blank lines are all ignored.
package phrasefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Write writes one phrase to w, one "position: word" line per word, positions
// starting at 1.
func Write(w io.Writer, phrase string) error {
	for i, word := range strings.Split(phrase, " ") {
		if _, err := fmt.Fprintf(w, "%d: %s\n", i+1, word); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes one phrase to a new file at path. The file must not
// already exist - phrase files are never silently overwritten.
func WriteFile(path, phrase string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	if err := Write(f, phrase); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Read reads a phrase back from r, returning its words joined by single
// spaces. Each line contributes the concatenation of its alphabetic runs;
// lines with no letters are skipped. Word-count validation belongs to the
// caller.
func Read(r io.Reader) (string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		var word strings.Builder
		for _, c := range scanner.Text() {
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
				word.WriteRune(c)
			}
		}
		if word.Len() != 0 {
			words = append(words, word.String())
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}

// ReadFile reads a phrase from the file at path.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("unable to read file %s: %v", path, err)
	}
	defer f.Close()
	return Read(f)
}
