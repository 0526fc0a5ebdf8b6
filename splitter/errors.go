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

import "fmt"

// NotEnoughSharesError is returned when fewer than Threshold phrases are
// given to RecoverMnemonicCode.
type NotEnoughSharesError struct {
	Given    int
	Expected int
}

func (e *NotEnoughSharesError) Error() string {
	return fmt.Sprintf("not enough shares to recover the secret, expected: %d, given: %d", e.Expected, e.Given)
}

// UnableToRecoverSecretError is returned when the given phrases cannot be
// turned back into the original mnemonic. The wrapped error carries the
// lower-level cause (undecodable phrase, duplicate share index, checksum
// failure).
type UnableToRecoverSecretError struct {
	Err error
}

func (e *UnableToRecoverSecretError) Error() string {
	return fmt.Sprintf("unable to recover secret: %v", e.Err)
}

func (e *UnableToRecoverSecretError) Unwrap() error { return e.Err }

// ShareEncodingError is returned when a share could not be encoded as a split
// phrase. No partial phrase list is ever returned alongside it.
type ShareEncodingError struct {
	Err error
}

func (e *ShareEncodingError) Error() string {
	return fmt.Sprintf("unable to encode share as a split phrase: %v", e.Err)
}

func (e *ShareEncodingError) Unwrap() error { return e.Err }
