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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
)

const replHelp = `Commands:
  insert WORD MEANING...   add a word or replace its meaning (alias: add)
  search WORD              print the meaning of WORD (aliases: get, lookup)
  list [PREFIX]            list words in alphabetical order
  shape                    draw the tree
  stats                    summarise the tree shape
  check                    verify ordering and weights
  help                     show this message
  quit                     leave (alias: exit)
`

// runREPL reads commands from in until EOF or quit. The prompt is only
// printed when interactive is set.
func runREPL(in io.Reader, out io.Writer, dict *Dictionary, interactive bool) error {
	scanner := bufio.NewScanner(in)
	prompt := func() {
		if interactive {
			fmt.Fprint(out, "lexicon> ")
		}
	}

	prompt()
	for scanner.Scan() {
		args, err := shellwords.Parse(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			prompt()
			continue
		}
		if len(args) == 0 {
			prompt()
			continue
		}

		if quit := execREPLCommand(out, dict, args[0], args[1:]); quit {
			return nil
		}
		prompt()
	}

	return scanner.Err()
}

// execREPLCommand runs one command and reports whether the session should end
func execREPLCommand(out io.Writer, dict *Dictionary, name string, args []string) bool {
	switch strings.ToLower(name) {
	case "insert", "add":
		if len(args) < 2 {
			fmt.Fprintln(out, "usage: insert WORD MEANING...")
			return false
		}
		dict.Insert(args[0], strings.Join(args[1:], " "))
		fmt.Fprintf(out, "ok (%d words)\n", dict.Len())
	case "search", "get", "lookup":
		if len(args) != 1 {
			fmt.Fprintln(out, "usage: search WORD")
			return false
		}
		if meaning, ok := dict.Lookup(args[0]); ok {
			fmt.Fprintln(out, meaning)
		} else {
			fmt.Fprintf(out, "not found: %s\n", args[0])
		}
	case "list":
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}
		writeEntries(out, dict.Prefix(prefix), false)
	case "shape":
		fmt.Fprint(out, renderShape(dict.Tree()))
	case "stats":
		fmt.Fprintln(out, renderStats(dict.Tree().Stats()))
	case "check":
		if err := dict.Tree().Validate(); err != nil {
			fmt.Fprintf(out, "invalid: %v\n", err)
		} else {
			fmt.Fprintln(out, "ok")
		}
	case "help":
		fmt.Fprint(out, replHelp)
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(out, "unknown command %q, type help\n", name)
	}
	return false
}
