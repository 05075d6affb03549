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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Lexicon %s**

A terminal dictionary kept in a weight-balanced binary search tree.
Look up words, list them in order, and see how the tree keeps itself in shape.

Built with Go %s

# 1. Features
* Instant word lookups backed by a bloom filter and a weight-balanced tree
* Load dictionaries from YAML, TSV or plain word lists
* Inspect the tree shape, balance statistics and structural checks
* Interactive REPL, a fuzzy prefix browser and a tree viewer

# 2. Dictionary files
* YAML: one mapping of word to meaning, e.g. 'apple: A fruit'
* TSV: word, a tab, then the meaning, one per line
* Word lists (.txt, .dict, .words): 'word meaning...' per line, quote words with spaces

# 3. Configuration
Settings live in ~/.lexicon.yaml, or the file named by LEXICON_CONFIG.
Run 'lexicon settings' to print the active configuration.

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
