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
	"strings"

	"github.com/cybrota/lexicon/wbtree"
)

// TSVLoader reads one "word<TAB>meaning" pair per line
type TSVLoader struct{}

func (t *TSVLoader) Name() string { return "tsv" }

func (t *TSVLoader) SupportsFile(path string) bool {
	return hasExtension(path, ".tsv")
}

func (t *TSVLoader) Priority() int {
	return 2
}

func (t *TSVLoader) Load(r io.Reader) ([]wbtree.Entry, error) {
	var entries []wbtree.Entry

	scanner := newLineScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if isSkippable(line) {
			continue
		}

		word, meaning, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: missing tab between word and meaning", lineNo)
		}
		entries = append(entries, wbtree.Entry{
			Key:   strings.TrimSpace(word),
			Value: strings.TrimSpace(meaning),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
	}

	return entries, nil
}
