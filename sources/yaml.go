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
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/lexicon/wbtree"
)

// YAMLLoader reads a top-level mapping of words to meanings. Entries come
// back in document order.
type YAMLLoader struct{}

func (y *YAMLLoader) Name() string { return "yaml" }

func (y *YAMLLoader) SupportsFile(path string) bool {
	return hasExtension(path, ".yaml", ".yml")
}

func (y *YAMLLoader) Priority() int {
	return 1
}

func (y *YAMLLoader) Load(r io.Reader) ([]wbtree.Entry, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []wbtree.Entry{}, nil
		}
		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of words to meanings", root.Line)
	}

	entries := make([]wbtree.Entry, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: word must be a string", key.Line)
		}
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: meaning of %q must be a string", value.Line, key.Value)
		}
		entries = append(entries, wbtree.Entry{Key: key.Value, Value: value.Value})
	}

	return entries, nil
}
