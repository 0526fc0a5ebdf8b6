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
	"encoding/binary"

	"github.com/google/tink/go/subtle/random"
	"github.com/splitmonic/splitmonic/validation"
	"github.com/splitmonic/splitmonic/wordlist"
)

// newSetID draws 3 fresh random wordlist words. The identifier ties the 5
// phrases of one split together so mixed-up phrases from different splits can
// be detected at recovery time. It is not a secret.
func newSetID() ([]string, error) {
	words := make([]string, validation.SetWords)
	for i := range words {
		// Two random bytes modulo the list size. 2^16 is a multiple of 2048,
		// so the reduction is unbiased.
		b := random.GetRandomBytes(2)
		index := int(binary.BigEndian.Uint16(b)) % wordlist.Size

		word, err := wordlist.Word(index)
		if err != nil {
			return nil, err
		}
		words[i] = word
	}
	return words, nil
}
