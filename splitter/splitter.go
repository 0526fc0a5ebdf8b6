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

// Package splitter turns a 24-word BIP39 mnemonic into 5 paper-writable
// split phrases of which any 3 recover the original mnemonic, and back.
//
// Each split phrase is 28 words: a 3-word set identifier shared by all 5
// phrases of one split, 1 word encoding the share index, and the 32-byte
// share payload encoded as a 24-word checksummed mnemonic.
//
// Both entry points run to completion on the calling goroutine with no
// retries and no partial output; secret-bearing buffers allocated here are
// zeroed on every exit path.
package splitter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/splitmonic/splitmonic/splitter/internal/shamir"
	"github.com/splitmonic/splitmonic/validation"
	"github.com/tyler-smith/go-bip39"
)

const (
	// Threshold is the number of split phrases needed to recover the
	// mnemonic.
	Threshold = 3
	// NumShares is the number of split phrases produced by one split.
	NumShares = 5
)

// GetSplitPhrases splits a 24-word mnemonic into 5 split phrases, returned in
// increasing share index order. Any 3 of them recover the mnemonic through
// RecoverMnemonicCode; 2 or fewer reveal nothing about it.
func GetSplitPhrases(mnemonic string) ([]string, error) {
	if err := validation.ValidateMnemonicCode(mnemonic); err != nil {
		return nil, err
	}

	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("decoding mnemonic: %v", err)
	}

	shares, err := shamir.SplitSecret(entropy, Threshold, NumShares)
	clear(entropy)
	if err != nil {
		return nil, err
	}
	defer scrubShares(shares)

	setID, err := newSetID()
	if err != nil {
		return nil, err
	}
	prefix := strings.Join(setID, " ")

	phrases := make([]string, 0, NumShares)
	for i := range shares {
		phrase, err := shareToPhrase(shares[i])
		clear(shares[i].Value)
		if err != nil {
			return nil, &ShareEncodingError{Err: err}
		}
		phrases = append(phrases, prefix+" "+phrase)
	}
	return phrases, nil
}

// RecoverMnemonicCode reconstructs the original mnemonic from 3 or more split
// phrases. All phrases must carry the same 3-word set identifier; every
// phrase that disagrees with the first one's identifier is reported, not just
// the first mismatch. Phrases that cannot be decoded back into shares are
// likewise all collected before failing.
func RecoverMnemonicCode(phrases []string) (string, error) {
	if len(phrases) < Threshold {
		return "", &NotEnoughSharesError{Given: len(phrases), Expected: Threshold}
	}

	phraseWords := make([][]string, len(phrases))
	for i, phrase := range phrases {
		phraseWords[i] = strings.Split(phrase, " ")
	}

	// A phrase with the wrong word count cannot be sliced into set id, index
	// word and payload; report those precisely before anything else.
	if err := validation.ValidatePhraseLengths(phraseWords); err != nil {
		return "", err
	}
	if err := validation.ValidateSameSet(phraseWords); err != nil {
		return "", err
	}

	shares := make([]shamir.Share, 0, len(phraseWords))
	defer func() { scrubShares(shares) }()

	var decodeErrs []error
	for i, words := range phraseWords {
		share, err := phraseToShare(words[validation.SetWords:])
		if err != nil {
			decodeErrs = append(decodeErrs, fmt.Errorf("phrase %d: %v", i, err))
			continue
		}
		shares = append(shares, share)
	}
	if len(decodeErrs) != 0 {
		return "", &UnableToRecoverSecretError{Err: errors.Join(decodeErrs...)}
	}

	entropy, err := shamir.Reconstruct(shares, Threshold)
	if err != nil {
		return "", &UnableToRecoverSecretError{Err: err}
	}
	defer clear(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", &UnableToRecoverSecretError{Err: err}
	}
	return mnemonic, nil
}

func scrubShares(shares []shamir.Share) {
	for i := range shares {
		clear(shares[i].Value)
	}
}
