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
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/patrickmn/go-cache"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
	"github.com/willf/bloom"

	"github.com/cybrota/lexicon/sources"
	"github.com/cybrota/lexicon/wbtree"
)

const (
	// Sizing for the bloom filter. Going past it only raises the false
	// positive rate, the filter never yields false negatives.
	expectedWords     = 100000
	falsePositiveRate = 0.01
)

//go:embed builtin.yaml
var builtinDictionary []byte

// Dictionary is the word tree plus the lookup helpers around it
type Dictionary struct {
	tree     *wbtree.Tree
	filter   *bloom.BloomFilter
	pages    *cache.Cache
	wordWrap int
	markdown bool
}

// NewDictionary creates an empty dictionary configured by config
func NewDictionary(config *Config) *Dictionary {
	return &Dictionary{
		tree:     wbtree.New(nil),
		filter:   bloom.NewWithEstimates(expectedWords, falsePositiveRate),
		pages:    NewDefinitionCache(config.CacheTTL()),
		wordWrap: config.Display.WordWrap,
		markdown: config.Display.Markdown,
	}
}

// Insert adds a word or replaces its meaning
func (d *Dictionary) Insert(word, meaning string) {
	d.tree.Insert(word, meaning)
	d.filter.AddString(word)
	EvictDefinitionPage(d.pages, word)
}

// Lookup returns the meaning of word. Words the bloom filter has never seen
// are rejected without walking the tree.
func (d *Dictionary) Lookup(word string) (string, bool) {
	if !d.filter.TestString(word) {
		log.WithField("word", word).Debug("bloom filter rejected lookup")
		return "", false
	}
	return d.tree.Search(word)
}

// Define returns the rendered definition page of word
func (d *Dictionary) Define(word string) (string, bool) {
	meaning, ok := d.Lookup(word)
	if !ok {
		return "", false
	}

	if page := GetDefinitionPage(d.pages, word); page != "" {
		log.WithField("word", word).Debug("definition cache hit")
		return page, true
	}

	page := renderDefinition(word, meaning, d.wordWrap, d.markdown)
	CacheDefinitionPage(d.pages, word, page)
	return page, true
}

func renderDefinition(word, meaning string, width int, asMarkdown bool) string {
	if !asMarkdown {
		return fmt.Sprintf("%s: %s\n", word, meaning)
	}
	source := fmt.Sprintf("# %s\n\n%s\n", word, meaning)
	return string(markdown.Render(source, width, 2))
}

func (d *Dictionary) Entries() []wbtree.Entry {
	return d.tree.Entries()
}

func (d *Dictionary) Prefix(prefix string) []wbtree.Entry {
	return d.tree.Prefix(prefix)
}

func (d *Dictionary) Tree() *wbtree.Tree {
	return d.tree
}

func (d *Dictionary) Len() int {
	return d.tree.Len()
}

// LoadEntries inserts entries in order, ticking bar when it is not nil
func (d *Dictionary) LoadEntries(entries []wbtree.Entry, bar *progressbar.ProgressBar) {
	for _, e := range entries {
		d.Insert(e.Key, e.Value)
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}
}

// LoadFiles loads every dictionary file in order. Later files override
// meanings from earlier ones.
func (d *Dictionary) LoadFiles(manager *sources.Manager, paths []string, showProgress bool) error {
	for _, path := range paths {
		entries, err := manager.LoadFile(expandHome(path))
		if err != nil {
			return err
		}

		var bar *progressbar.ProgressBar
		if showProgress {
			bar = progressbar.NewOptions(len(entries),
				progressbar.OptionSetDescription(fmt.Sprintf("📖 Loading %s", filepath.Base(path))),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetWidth(50),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}
		d.LoadEntries(entries, bar)

		log.WithFields(log.Fields{
			"path":    path,
			"entries": len(entries),
			"words":   d.Len(),
		}).Debug("loaded dictionary")
	}
	return nil
}

// LoadBuiltin loads the embedded sample dictionary
func (d *Dictionary) LoadBuiltin() error {
	entries, err := (&sources.YAMLLoader{}).Load(bytes.NewReader(builtinDictionary))
	if err != nil {
		return fmt.Errorf("failed to load built-in dictionary: %w", err)
	}
	d.LoadEntries(entries, nil)
	return nil
}

// expandHome resolves a leading ~/ against the user's home directory
func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}
