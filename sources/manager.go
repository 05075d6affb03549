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
	"os"
	"sort"

	"github.com/cybrota/lexicon/wbtree"
)

// ErrNoLoader is returned when no registered loader accepts a file.
var ErrNoLoader = errors.New("no loader for dictionary file")

// Manager picks a loader for each dictionary file
type Manager struct {
	loaders []Loader
}

// NewManager creates a manager with every built-in loader registered
func NewManager() *Manager {
	manager := &Manager{}

	manager.RegisterLoader(&YAMLLoader{})
	manager.RegisterLoader(&TSVLoader{})
	manager.RegisterLoader(&WordsLoader{})

	return manager
}

// RegisterLoader registers a new loader
func (m *Manager) RegisterLoader(loader Loader) {
	m.loaders = append(m.loaders, loader)
	sort.SliceStable(m.loaders, func(i, j int) bool {
		return m.loaders[i].Priority() < m.loaders[j].Priority()
	})
}

// LoaderFor returns the highest priority loader that supports path
func (m *Manager) LoaderFor(path string) (Loader, error) {
	for _, loader := range m.loaders {
		if loader.SupportsFile(path) {
			return loader, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoLoader, path)
}

// LoadFile reads every entry of the dictionary file at path
func (m *Manager) LoadFile(path string) ([]wbtree.Entry, error) {
	loader, err := m.LoaderFor(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer file.Close()

	entries, err := loader.Load(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s as %s: %w", path, loader.Name(), err)
	}
	return entries, nil
}
