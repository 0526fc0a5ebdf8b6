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

// This binary is the main entrypoint for the splitmonic command line tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"flag"
	"github.com/alecthomas/colour"
	glog "github.com/golang/glog"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/splitmonic/splitmonic/phrasefile"
	"github.com/splitmonic/splitmonic/splitter"
	"github.com/splitmonic/splitmonic/validation"
	"sigs.k8s.io/yaml"
)

const (
	// The default name for the splitmonic configuration file.
	defaultConfigName string = "splitmonic.yaml"

	// The current version, displayed via the `version` subcommand.
	splitmonicVersion string = "0.1.0"
)

// config holds the optional on-disk CLI configuration.
type config struct {
	// OutputDir is where `split` writes phrase files when requested.
	OutputDir string `json:"outputDir,omitempty"`
	// Quiet suppresses the banner output.
	Quiet bool `json:"quiet,omitempty"`
}

func defaultConfigPath() string {
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		glog.Errorf("Failed to get config directory location: %v", err.Error())
	}
	return fmt.Sprintf("%s/%s", cfgDir, defaultConfigName)
}

// loadConfig reads the YAML config at path. A missing file is not an error:
// the config is optional and everything has a flag.
func loadConfig(path string) (config, error) {
	var cfg config

	yamlBytes, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(yamlBytes, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %v", path, err)
	}
	return cfg, nil
}

// splitCmd handles CLI options for the split command.
type splitCmd struct {
	configFile string
	mnemonic   string
	outputDir  string
	quiet      bool
}

func (*splitCmd) Name() string { return "split" }
func (*splitCmd) Synopsis() string {
	return "splits a 24-word mnemonic into 5 split phrases, any 3 of which recover it"
}
func (*splitCmd) Usage() string {
	return fmt.Sprintf(`Usage: splitmonic split [--mnemonic=<mnemonic>] [--output-dir=<dir>]

Examples:
  Split a mnemonic passed on the command line:
    $ splitmonic split --mnemonic="abandon abandon ... art"

  Split a mnemonic read from stdin:
    $ cat mnemonic.txt | splitmonic split

  Split and also write each phrase to its own file under a directory:
    $ splitmonic split --output-dir=./phrases < mnemonic.txt

The optional configuration file at %s can set outputDir and quiet.

Flags:
`, defaultConfigPath())
	// The flags are automatically printed after the returned text.
}
func (s *splitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.configFile, "config-file", defaultConfigPath(), "Path to a splitmonic YAML config file. Optional.")
	f.StringVar(&s.mnemonic, "mnemonic", "", "The 24-word mnemonic to split. Read from stdin when empty.")
	f.StringVar(&s.outputDir, "output-dir", "", "Also write each phrase to a file in this directory. Optional.")
	f.BoolVar(&s.quiet, "quiet", false, "Only print the phrase words, no banners.")
}

func (s *splitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig(s.configFile)
	if err != nil {
		glog.Errorf("Failed to read config file: %v", err.Error())
		return subcommands.ExitFailure
	}
	if s.outputDir == "" {
		s.outputDir = cfg.OutputDir
	}
	quiet := s.quiet || cfg.Quiet

	mnemonic := strings.TrimSpace(s.mnemonic)
	if mnemonic == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			glog.Errorf("Failed to read mnemonic from stdin: %v", err.Error())
			return subcommands.ExitFailure
		}
		mnemonic = strings.Join(strings.Fields(string(raw)), " ")
	}

	if err := validation.ValidateMnemonicCode(mnemonic); err != nil {
		glog.Errorf("Error splitting mnemonic into split phrases: %v", err.Error())
		return subcommands.ExitFailure
	}

	phrases, err := splitter.GetSplitPhrases(mnemonic)
	if err != nil {
		glog.Errorf("Error splitting mnemonic into split phrases: %v", err.Error())
		return subcommands.ExitFailure
	}

	for i, phrase := range phrases {
		if !quiet {
			colour.Printf("\n^2############## Split Phrase %d of %d ##############^R\n", i+1, len(phrases))
		}
		for j, word := range strings.Split(phrase, " ") {
			fmt.Printf("%d: %s\n", j+1, word)
		}
	}

	if s.outputDir != "" {
		if err := writePhraseFiles(s.outputDir, phrases); err != nil {
			glog.Errorf("Failed to write phrase files: %v", err.Error())
			return subcommands.ExitFailure
		}
		if !quiet {
			fmt.Println("Wrote split phrase files to", s.outputDir)
		}
	}

	return subcommands.ExitSuccess
}

// writePhraseFiles writes one file per phrase. File names carry a random
// suffix so two splits into the same directory never collide.
func writePhraseFiles(dir string, phrases []string) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	suffix := uuid.NewString()
	for i, phrase := range phrases {
		path := filepath.Join(dir, fmt.Sprintf("split-phrase-%d-%s.txt", i+1, suffix))
		if err := phrasefile.WriteFile(path, phrase); err != nil {
			return err
		}
	}
	return nil
}

// combineCmd handles CLI options for the combine command.
type combineCmd struct {
	phraseFiles string
}

func (*combineCmd) Name() string { return "combine" }
func (*combineCmd) Synopsis() string {
	return "combines 3 split phrases back into the original mnemonic"
}
func (*combineCmd) Usage() string {
	return `Usage: splitmonic combine [--phrase-files=<f1>,<f2>,<f3>] [<phrase> ...]

Examples:
  Combine three phrases given as quoted arguments:
    $ splitmonic combine "embody fog drop ..." "embody fog drop ..." "embody fog drop ..."

  Combine phrases stored in files (one numbered word per line):
    $ splitmonic combine --phrase-files=phrase1.txt,phrase2.txt,phrase3.txt

  Mix files and arguments:
    $ splitmonic combine --phrase-files=phrase1.txt "embody fog drop ..." "embody fog drop ..."

Flags:
`
}
func (c *combineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.phraseFiles, "phrase-files", "", "Comma-separated list of files containing split phrases. Optional.")
}

func (c *combineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var phrases []string

	if c.phraseFiles != "" {
		for _, path := range strings.Split(c.phraseFiles, ",") {
			phrase, err := phrasefile.ReadFile(strings.TrimSpace(path))
			if err != nil {
				glog.Errorf("Failed to read phrase file: %v", err.Error())
				return subcommands.ExitFailure
			}
			phrases = append(phrases, phrase)
		}
	}
	for _, arg := range f.Args() {
		// Accept comma- as well as space-separated words.
		words := strings.FieldsFunc(arg, func(r rune) bool { return r == ' ' || r == ',' })
		phrases = append(phrases, strings.Join(words, " "))
	}

	if err := validation.ValidateSplitPhrases(phrases); err != nil {
		glog.Errorf("Error combining split phrases: %v", err.Error())
		return subcommands.ExitFailure
	}

	mnemonic, err := splitter.RecoverMnemonicCode(phrases)
	if err != nil {
		glog.Errorf("Error combining split phrases: %v", err.Error())
		return subcommands.ExitFailure
	}

	colour.Printf("\n^2Successfully recovered your mnemonic code:^R\n\n")
	for i, word := range strings.Split(mnemonic, " ") {
		fmt.Printf("%d: %s\n", i+1, word)
	}

	return subcommands.ExitSuccess
}

// versionCmd handles CLI options for the version command.
type versionCmd struct{}

func (*versionCmd) Name() string           { return "version" }
func (*versionCmd) Synopsis() string       { return "prints the current version" }
func (*versionCmd) Usage() string          { return "Usage: splitmonic version" }
func (*versionCmd) SetFlags(*flag.FlagSet) {}
func (*versionCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	fmt.Printf("splitmonic version %s\n", splitmonicVersion)
	return subcommands.ExitSuccess
}

func main() {
	flag.Parse()

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(&splitCmd{}, "")
	subcommands.Register(&combineCmd{}, "")
	subcommands.Register(&versionCmd{}, "")

	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
