// Copyright 2026 The ConvertBaminiToUnicodePPTX Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v2"

	baminiconv "github.com/Anto-Nobel/ConvertBaminiToUnicodePPTX"
	"github.com/Anto-Nobel/ConvertBaminiToUnicodePPTX/bamini"
)

// set via linker flags by the release build:
var version = "dev"

const usage = `baminiconv.

Convert documents typed in the Bamini Tamil font encoding to Unicode Tamil.
The document keeps its layout, styling and media; only the text changes.

Usage:
	baminiconv <input-path> [-o <filename>] [--mappings <filename>] [--skip-notes] [--no-normalize] [--quiet]
	baminiconv -h | --help
	baminiconv --version

Options:
	-o <filename>, --output <filename>  Where to write the converted document
	                                    (default: <input>_unicode_tamil with the
	                                    same extension, next to the input).
	--mappings <filename>               YAML file of extra pattern/replacement
	                                    pairs merged into the built-in table.
	--skip-notes                        Leave presentation speaker notes alone.
	--no-normalize                      Skip NFC normalization of converted text.
	-q --quiet                          Only print errors.
	-h --help                           Show this screen.
	--version                           Show version.`

func main() {
	arguments, _ := docopt.ParseArgs(usage, nil, "baminiconv "+version)

	inputPath := arguments["<input-path>"].(string)
	outputPath, _ := arguments["--output"].(string)
	mappingsPath, _ := arguments["--mappings"].(string)
	quiet := arguments["--quiet"].(bool)

	var opts []baminiconv.Option
	if mappingsPath != "" {
		entries, err := loadMappings(mappingsPath)
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
		opts = append(opts, baminiconv.WithMappings(entries...))
	}
	if arguments["--skip-notes"].(bool) {
		opts = append(opts, baminiconv.WithNotes(false))
	}
	if arguments["--no-normalize"].(bool) {
		opts = append(opts, baminiconv.WithNormalization(false))
	}

	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath)
	}

	conv := baminiconv.New(opts...)

	if !quiet {
		pterm.Info.Printf("converting %s\n", inputPath)
	}

	result, err := conv.ConvertFile(inputPath, outputPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	if !quiet {
		printStats(result.Stats)
		pterm.Success.Printf("wrote %s\n", outputPath)
	}
}

func printStats(stats baminiconv.ConversionStats) {
	if stats.Slides > 0 {
		pterm.Printf("  slides processed: %d\n", stats.Slides)
	}
	if stats.Sheets > 0 {
		pterm.Printf("  sheets processed: %d\n", stats.Sheets)
	}
	pterm.Printf("  text runs found: %d, converted: %d\n", stats.Runs, stats.Converted)
	if stats.Converted == 0 {
		pterm.Warning.Println("no Bamini text found; the output is a copy of the input")
	}
}

// defaultOutputPath names the converted document after the input, the way the
// tool has always done: page1.pptx becomes page1_unicode_tamil.pptx.
func defaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "_unicode_tamil" + ext
}

// loadMappings reads extra table entries from a YAML file of the form:
//
//	mappings:
//	  - pattern: "³"
//	    replacement: "கு"
func loadMappings(path string) ([]bamini.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file struct {
		Mappings []struct {
			Pattern     string `yaml:"pattern"`
			Replacement string `yaml:"replacement"`
		} `yaml:"mappings"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %v", path, err)
	}

	entries := make([]bamini.Entry, 0, len(file.Mappings))
	for i, m := range file.Mappings {
		if m.Pattern == "" {
			return nil, fmt.Errorf("%s: mapping %d has an empty pattern", path, i+1)
		}
		entries = append(entries, bamini.Entry{Pattern: m.Pattern, Replacement: m.Replacement})
	}
	return entries, nil
}
