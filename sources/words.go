// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sources

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/cybrota/lexicon/wbtree"
)

// WordsLoader reads shell-quoted lines: the first word is the key and the
// rest form the meaning, e.g.
//
//	banana "A yellow tropical fruit."
type WordsLoader struct{}

func (w *WordsLoader) Name() string { return "words" }

func (w *WordsLoader) SupportsFile(path string) bool {
	return filepath.Ext(path) == "" || hasExtension(path, ".txt", ".dict", ".words")
}

func (w *WordsLoader) Priority() int {
	return 8 // Catches extension-less files, so it goes last
}

func (w *WordsLoader) Load(r io.Reader) ([]wbtree.Entry, error) {
	var entries []wbtree.Entry

	scanner := newLineScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if isSkippable(line) {
			continue
		}

		word, meaning, err := ParseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		entries = append(entries, wbtree.Entry{Key: word, Value: meaning})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
	}

	return entries, nil
}

// ParseEntry splits a shell-quoted line into a word and its meaning
func ParseEntry(line string) (string, string, error) {
	parser := shellwords.NewParser()
	args, err := parser.Parse(line)
	if err != nil {
		return "", "", err
	}
	// The parser stops at an unquoted ; & | < or >
	if parser.Position != -1 {
		return "", "", fmt.Errorf("unquoted shell operator in %q", line)
	}
	if len(args) < 2 {
		return "", "", fmt.Errorf("expected a word followed by its meaning, got %q", line)
	}
	return args[0], strings.Join(args[1:], " "), nil
}
