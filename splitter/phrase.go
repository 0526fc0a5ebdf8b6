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

package splitter

import (
	"fmt"
	"strings"

	"github.com/splitmonic/splitmonic/splitter/internal/shamir"
	"github.com/splitmonic/splitmonic/wordlist"
	"github.com/tyler-smith/go-bip39"
)

// shareToPhrase encodes a share as words: the wordlist word at the share's x
// coordinate, followed by the payload encoded as a checksummed mnemonic. The
// payload is not wallet entropy, but it is byte-length compatible, so the
// same word-per-11-bits scheme applies.
func shareToPhrase(share shamir.Share) (string, error) {
	indexWord, err := wordlist.Word(share.X)
	if err != nil {
		return "", err
	}
	words, err := bip39.NewMnemonic(share.Value)
	if err != nil {
		return "", fmt.Errorf("encoding share payload: %v", err)
	}
	return indexWord + " " + words, nil
}

// phraseToShare decodes the index word + payload words of a split phrase
// (the set identifier already stripped) back into a share. Failures here are
// structural: an unknown index word or a payload that does not decode as a
// checksummed mnemonic.
func phraseToShare(words []string) (shamir.Share, error) {
	index, err := wordlist.Index(words[0])
	if err != nil {
		return shamir.Share{}, err
	}
	payload, err := bip39.EntropyFromMnemonic(strings.Join(words[1:], " "))
	if err != nil {
		return shamir.Share{}, fmt.Errorf("decoding share payload: %v", err)
	}
	return shamir.Share{X: index, Value: payload}, nil
}
