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

package phrasefile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/splitmonic/splitmonic/phrasefile"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := phrasefile.Write(&buf, "gun dismiss area"); err != nil {
		t.Fatalf("Write() err = %v, want nil", err)
	}
	want := "1: gun\n2: dismiss\n3: area\n"
	if got := buf.String(); got != want {
		t.Errorf("Write() produced %q, want %q", got, want)
	}
}

func TestReadExtractsWordsFromNumberedLines(t *testing.T) {
	contents := `
	1: gun
	2: dismiss
	3: area
	4: ability
	5: laptop
	6: live
	7: ignore
	8: love
	9: ride
	10: deposit
	11: upset
	12: enemy
	13: start
	14: leopard
	15: domain
	16: exile
	17: talent
	18: enroll
	19: north
	20: position
	21: talk
	22: hope
	23: script
	24: parent
	25: tongue
	26: ride
	27: pepper
	28: brisk`

	got, err := phrasefile.Read(strings.NewReader(contents))
	if err != nil {
		t.Fatalf("Read() err = %v, want nil", err)
	}
	want := "gun dismiss area ability laptop live ignore love ride deposit upset enemy " +
		"start leopard domain exile talent enroll north position talk hope script " +
		"parent tongue ride pepper brisk"
	if got != want {
		t.Errorf("Read() = %q, want %q", got, want)
	}
	if got, want := len(strings.Split(got, " ")), 28; got != want {
		t.Errorf("Read() returned %d words, want %d", got, want)
	}
}

func TestReadIgnoresPunctuationAndBlankLines(t *testing.T) {
	contents := "1: gun\n\n  2 -- dismiss!\n...\n3:area\n"
	got, err := phrasefile.Read(strings.NewReader(contents))
	if err != nil {
		t.Fatalf("Read() err = %v, want nil", err)
	}
	if want := "gun dismiss area"; got != want {
		t.Errorf("Read() = %q, want %q", got, want)
	}
}

func TestRoundTripThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrase.txt")
	phrase := "gun dismiss area ability"

	if err := phrasefile.WriteFile(path, phrase); err != nil {
		t.Fatalf("WriteFile() err = %v, want nil", err)
	}
	got, err := phrasefile.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() err = %v, want nil", err)
	}
	if got != phrase {
		t.Errorf("ReadFile() = %q, want %q", got, phrase)
	}
}

func TestWriteFileRefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrase.txt")
	if err := os.WriteFile(path, []byte("existing"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := phrasefile.WriteFile(path, "gun dismiss"); err == nil {
		t.Fatalf("WriteFile() err = nil, want error for existing file")
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := phrasefile.ReadFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatalf("ReadFile() err = nil, want error")
	}
}
