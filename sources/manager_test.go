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
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderFor(t *testing.T) {
	manager := NewManager()

	tests := []struct {
		path string
		want string
	}{
		{"fruits.yaml", "yaml"},
		{"FRUITS.YML", "yaml"},
		{"fruits.tsv", "tsv"},
		{"fruits.txt", "words"},
		{"fruits.dict", "words"},
		{"fruits", "words"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			loader, err := manager.LoaderFor(tc.path)
			if err != nil {
				t.Fatalf("LoaderFor(%q) returned error: %v", tc.path, err)
			}
			if loader.Name() != tc.want {
				t.Errorf("LoaderFor(%q) = %s; want %s", tc.path, loader.Name(), tc.want)
			}
		})
	}

	if _, err := manager.LoaderFor("fruits.json"); !errors.Is(err, ErrNoLoader) {
		t.Errorf("Expected ErrNoLoader for a json file, got %v", err)
	}
}

type stubLoader struct {
	WordsLoader
}

func (s *stubLoader) Name() string  { return "stub" }
func (s *stubLoader) Priority() int { return 0 }

func TestRegisterLoaderOrdersByPriority(t *testing.T) {
	manager := NewManager()
	manager.RegisterLoader(&stubLoader{})

	loader, err := manager.LoaderFor("fruits.txt")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if loader.Name() != "stub" {
		t.Errorf("Expected the priority 0 loader to win, got %s", loader.Name())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fruits.yaml")
	content := "banana: A yellow tropical fruit.\napple: A fruit that grows on trees.\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	entries, err := NewManager().LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if len(entries) != 2 || entries[0].Key != "banana" || entries[1].Key != "apple" {
		t.Errorf("Unexpected entries: %+v", entries)
	}

	if _, err := NewManager().LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Errorf("Expected an error for a missing file")
	}

	broken := filepath.Join(dir, "broken.tsv")
	if err := os.WriteFile(broken, []byte("no tab here\n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	if _, err := NewManager().LoadFile(broken); err == nil {
		t.Errorf("Expected an error for a malformed tsv file")
	}
}
