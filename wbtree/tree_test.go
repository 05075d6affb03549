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

package wbtree_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/lexicon/wbtree"
)

var fruits = []wbtree.Entry{
	{Key: "banana", Value: "A yellow tropical fruit."},
	{Key: "apple", Value: "A fruit that grows on trees."},
	{Key: "cherry", Value: "A small, round, red fruit."},
}

// shape renders the tree as (left key right) with "." for an absent child.
func shape(n *wbtree.Node) string {
	if n == nil {
		return "."
	}
	if n.Left() == nil && n.Right() == nil {
		return n.Key()
	}
	return "(" + shape(n.Left()) + " " + n.Key() + " " + shape(n.Right()) + ")"
}

func keysOf(entries []wbtree.Entry) []string {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

func TestTree(t *testing.T) {
	t.Run("search and list test", func(t *testing.T) {
		tree := wbtree.FromEntries(fruits)

		meaning, ok := tree.Search("banana")
		assert.True(t, ok)
		assert.Equal(t, "A yellow tropical fruit.", meaning)

		assert.Equal(t, []wbtree.Entry{
			{Key: "apple", Value: "A fruit that grows on trees."},
			{Key: "banana", Value: "A yellow tropical fruit."},
			{Key: "cherry", Value: "A small, round, red fruit."},
		}, tree.Entries())
	})

	t.Run("empty tree test", func(t *testing.T) {
		tree := wbtree.New(nil)

		assert.Nil(t, tree.Root())
		assert.Equal(t, []wbtree.Entry{}, tree.Entries())
		assert.Equal(t, 0, tree.Len())
		assert.Equal(t, 0, tree.Depth())
		assert.NoError(t, tree.Validate())

		_, ok := tree.Search("grape")
		assert.False(t, ok)
	})

	t.Run("insert into empty then left and right test", func(t *testing.T) {
		tree := wbtree.New(nil)
		tree.Insert("banana", "A yellow tropical fruit.")
		require.NotNil(t, tree.Root())
		assert.Equal(t, "banana", tree.Root().Key())

		tree.Insert("apple", "A fruit that grows on trees.")
		tree.Insert("cherry", "A small, round, red fruit.")
		assert.Equal(t, "apple", tree.Root().Left().Key())
		assert.Equal(t, "cherry", tree.Root().Right().Key())

		tree.Insert("banana", "Updated")
		assert.Equal(t, "banana", tree.Root().Key())
		assert.Equal(t, "Updated", tree.Root().Value())
		assert.Equal(t, 3, tree.Len())

		meaning, ok := tree.Search("banana")
		assert.True(t, ok)
		assert.Equal(t, "Updated", meaning)
	})

	t.Run("construct from map test", func(t *testing.T) {
		tree := wbtree.New(map[string]string{
			"apple":  "A fruit that grows on trees",
			"banana": "A yellow fruit that monkeys like",
			"cat":    "A small domesticated carnivorous mammal",
			"dog":    "A domesticated carnivorous mammal",
		})

		assert.Equal(t, []wbtree.Entry{
			{Key: "apple", Value: "A fruit that grows on trees"},
			{Key: "banana", Value: "A yellow fruit that monkeys like"},
			{Key: "cat", Value: "A small domesticated carnivorous mammal"},
			{Key: "dog", Value: "A domesticated carnivorous mammal"},
		}, tree.Entries())
		assert.NoError(t, tree.Validate())
	})

	t.Run("empty value is still found test", func(t *testing.T) {
		tree := wbtree.New(map[string]string{"blank": ""})

		meaning, ok := tree.Search("blank")
		assert.True(t, ok)
		assert.Equal(t, "", meaning)
	})
}

func TestTreeShape(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		shape string
		depth int
	}{
		{name: "ascending", keys: []string{"a", "b", "c"}, shape: "(a b c)", depth: 2},
		{name: "descending", keys: []string{"c", "b", "a"}, shape: "(a b c)", depth: 2},
		{name: "left zig-zag", keys: []string{"c", "a", "b"}, shape: "(. a (b c .))", depth: 3},
		{name: "right zig-zag", keys: []string{"a", "c", "b"}, shape: "((. a b) c .)", depth: 3},
		{name: "seven ascending", keys: []string{"a", "b", "c", "d", "e", "f", "g"}, shape: "((a b c) d (e f g))", depth: 3},
		{name: "seven descending", keys: []string{"g", "f", "e", "d", "c", "b", "a"}, shape: "((a b c) d (e f g))", depth: 3},
		{
			name:  "alphabet",
			keys:  []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z"},
			shape: "(((a b c) d (e f g)) h (((i j k) l (m n o)) p ((q r s) t (u v (w x (. y z))))))",
			depth: 7,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tree := wbtree.New(nil)
			for _, key := range tc.keys {
				tree.Insert(key, key)
			}
			assert.Equal(t, tc.shape, shape(tree.Root()))
			assert.Equal(t, tc.depth, tree.Depth())
			assert.Equal(t, len(tc.keys), tree.Len())
			assert.NoError(t, tree.Validate())
		})
	}
}

func TestDuplicateInsert(t *testing.T) {
	t.Run("skewed path rotates test", func(t *testing.T) {
		tree := wbtree.New(nil)
		for _, key := range []string{"c", "a", "b"} {
			tree.Insert(key, "old")
		}
		require.Equal(t, "(. a (b c .))", shape(tree.Root()))

		tree.Insert("b", "new")
		assert.Equal(t, "((. a b) c .)", shape(tree.Root()))
		assert.Equal(t, 3, tree.Len())
		assert.NoError(t, tree.Validate())

		meaning, ok := tree.Search("b")
		assert.True(t, ok)
		assert.Equal(t, "new", meaning)

		// The new root is skewed the other way, so it flips back.
		tree.Insert("b", "newer")
		assert.Equal(t, "(. a (b c .))", shape(tree.Root()))
	})

	t.Run("balanced tree keeps shape test", func(t *testing.T) {
		keys := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m"}
		tree := wbtree.New(nil)
		for _, key := range keys {
			tree.Insert(key, "old")
		}
		before := shape(tree.Root())
		assert.Equal(t, "((a b c) d ((e f g) h (i j (k l m))))", before)

		for _, key := range keys {
			tree.Insert(key, "new")
			assert.Equal(t, before, shape(tree.Root()))
			assert.Equal(t, len(keys), tree.Len())
		}

		for _, e := range tree.Entries() {
			assert.Equal(t, "new", e.Value)
		}
		assert.NoError(t, tree.Validate())
	})
}

func TestTreeDepthBound(t *testing.T) {
	t.Run("ascending keys test", func(t *testing.T) {
		tree := wbtree.New(nil)
		for i := 0; i < 1024; i++ {
			tree.Insert(fmt.Sprintf("%04d", i), "v")
		}
		assert.Equal(t, 11, tree.Depth())
		assert.Equal(t, 1024, tree.Len())
		assert.Equal(t, 2.0, tree.Stats().MaxRatio)
	})

	t.Run("descending keys test", func(t *testing.T) {
		tree := wbtree.New(nil)
		for i := 1023; i >= 0; i-- {
			tree.Insert(fmt.Sprintf("%04d", i), "v")
		}
		assert.Equal(t, 11, tree.Depth())
	})

	t.Run("strided keys test", func(t *testing.T) {
		tree := wbtree.New(nil)
		for i := 0; i < 1009; i++ {
			tree.Insert(fmt.Sprintf("%04d", (i*7919)%1009), "v")
		}
		assert.Equal(t, 1009, tree.Len())
		assert.Equal(t, 11, tree.Depth())
		assert.Equal(t, "0397", tree.Root().Key())
	})
}

func TestTreeProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		tree := wbtree.New(nil)
		want := map[string]string{}

		for i := 0; i < 200; i++ {
			key := fmt.Sprintf("k%03d", rnd.Intn(300))
			value := fmt.Sprintf("v%d", i)
			tree.Insert(key, value)
			want[key] = value

			require.NoError(t, tree.Validate())
			require.Equal(t, len(want), tree.Len())
		}

		keys := make([]string, 0, len(want))
		for key := range want {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		assert.Equal(t, keys, keysOf(tree.Entries()))

		for key, value := range want {
			got, ok := tree.Search(key)
			assert.True(t, ok)
			assert.Equal(t, value, got)
		}
		_, ok := tree.Search("k999")
		assert.False(t, ok)

		// Far better than the 200-deep chain of an unbalanced tree.
		assert.LessOrEqual(t, tree.Depth(), 20)
	}
}

func TestTreeAll(t *testing.T) {
	tree := wbtree.FromEntries(fruits)

	var keys []string
	for key, value := range tree.All() {
		got, ok := tree.Search(key)
		assert.True(t, ok)
		assert.Equal(t, got, value)
		keys = append(keys, key)
	}
	assert.Equal(t, []string{"apple", "banana", "cherry"}, keys)

	// The iterator restarts from the smallest key and honours an early stop.
	var first []string
	for key := range tree.All() {
		first = append(first, key)
		break
	}
	assert.Equal(t, []string{"apple"}, first)
}

func TestTreePrefix(t *testing.T) {
	tree := wbtree.FromEntries([]wbtree.Entry{
		{Key: "banana", Value: "b"},
		{Key: "apricot", Value: "a2"},
		{Key: "apple", Value: "a1"},
		{Key: "application", Value: "a3"},
		{Key: "cherry", Value: "c"},
	})

	assert.Equal(t, []string{"apple", "application", "apricot"}, keysOf(tree.Prefix("ap")))
	assert.Equal(t, []string{"apple", "application"}, keysOf(tree.Prefix("appl")))
	assert.Equal(t, []string{"cherry"}, keysOf(tree.Prefix("cherry")))
	assert.Empty(t, tree.Prefix("z"))
	assert.Len(t, tree.Prefix(""), 5)
}

func TestTreeStats(t *testing.T) {
	t.Run("skewed after zig-zag test", func(t *testing.T) {
		tree := wbtree.New(nil)
		for _, key := range []string{"c", "a", "b"} {
			tree.Insert(key, key)
		}

		stats := tree.Stats()
		assert.Equal(t, 3, stats.Size)
		assert.Equal(t, 3, stats.Depth)
		assert.Equal(t, 3.0, stats.MaxRatio)
		assert.Equal(t, 1, stats.Skewed)
	})

	t.Run("balanced alphabet test", func(t *testing.T) {
		tree := wbtree.New(nil)
		for c := 'a'; c <= 'z'; c++ {
			tree.Insert(string(c), "")
		}

		stats := tree.Stats()
		assert.Equal(t, 26, stats.Size)
		assert.Equal(t, 2.5, stats.MaxRatio)
		assert.Equal(t, 0, stats.Skewed)
	})

	t.Run("empty test", func(t *testing.T) {
		assert.Equal(t, wbtree.Stats{}, wbtree.New(nil).Stats())
	})
}
