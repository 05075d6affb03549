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
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cybrota/lexicon/sources"
)

var version = "dev"

const asciiLogo = `
██╗     ███████╗██╗  ██╗██╗ ██████╗ ██████╗ ███╗   ██╗
██║     ██╔════╝╚██╗██╔╝██║██╔════╝██╔═══██╗████╗  ██║
██║     █████╗   ╚███╔╝ ██║██║     ██║   ██║██╔██╗ ██║
██║     ██╔══╝   ██╔██╗ ██║██║     ██║   ██║██║╚██╗██║
███████╗███████╗██╔╝ ██╗██║╚██████╗╚██████╔╝██║ ╚████║
╚══════╝╚══════╝╚═╝  ╚═╝╚═╝ ╚═════╝ ╚═════╝ ╚═╝  ╚═══╝
A terminal dictionary on a weight-balanced search tree [Version: %s%s%s]

`

type rootOptions struct {
	dictionaries []string
	debug        bool
	quiet        bool
}

// loadDictionary builds the dictionary from the configured files plus the
// --dict flags, falling back to the built-in sample when none are given
func (o *rootOptions) loadDictionary() (*Dictionary, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	dict := NewDictionary(config)
	paths := append(append([]string{}, config.Dictionaries...), o.dictionaries...)
	if len(paths) == 0 {
		log.Debug("no dictionaries configured, loading the built-in sample")
		return dict, dict.LoadBuiltin()
	}

	showProgress := config.Loading.Progress && !o.quiet && isatty.IsTerminal(os.Stderr.Fd())
	if err := dict.LoadFiles(sources.NewManager(), paths, showProgress); err != nil {
		return nil, err
	}
	return dict, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	logo := fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdLookup = &cobra.Command{
		Use:   "lookup WORD...",
		Short: "Print the meaning of one or more words",
		Long:  fmt.Sprintf("%s\n%s", logo, `Lookup prints the definition of every given word`),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := opts.loadDictionary()
			if err != nil {
				return err
			}

			missing := 0
			for _, word := range args {
				page, ok := dict.Define(word)
				if !ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "not found: %s\n", word)
					missing++
					continue
				}
				fmt.Fprint(cmd.OutOrStdout(), page)
			}
			if missing > 0 {
				return fmt.Errorf("%d of %d words not found", missing, len(args))
			}
			return nil
		},
	}

	var cmdList = &cobra.Command{
		Use:   "list",
		Short: "List words in alphabetical order",
		Long:  fmt.Sprintf("%s\n%s", logo, `List prints every word, or the words starting with --prefix`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := opts.loadDictionary()
			if err != nil {
				return err
			}
			prefix, _ := cmd.Flags().GetString("prefix")
			asTable, _ := cmd.Flags().GetBool("table")
			writeEntries(cmd.OutOrStdout(), dict.Prefix(prefix), asTable)
			return nil
		},
	}
	cmdList.Flags().String("prefix", "", "only list words starting with this prefix")
	cmdList.Flags().Bool("table", false, "print a table instead of plain lines")

	var cmdShape = &cobra.Command{
		Use:   "shape",
		Short: "Draw the tree with node weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := opts.loadDictionary()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderShape(dict.Tree()))
			return nil
		},
	}

	var cmdStats = &cobra.Command{
		Use:   "stats",
		Short: "Summarise the size and balance of the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := opts.loadDictionary()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderStats(dict.Tree().Stats()))
			return nil
		},
	}

	var cmdCheck = &cobra.Command{
		Use:   "check",
		Short: "Verify key ordering and node weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := opts.loadDictionary()
			if err != nil {
				return err
			}
			if err := dict.Tree().Validate(); err != nil {
				return fmt.Errorf("tree check failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d words\n", dict.Len())
			return nil
		},
	}

	var cmdREPL = &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive dictionary shell",
		Long:  fmt.Sprintf("%s\n%s", logo, "Repl reads commands line by line. Type help for the list.\n\n"+replHelp),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := opts.loadDictionary()
			if err != nil {
				return err
			}
			interactive := cmd.InOrStdin() == os.Stdin && isatty.IsTerminal(os.Stdin.Fd())
			return runREPL(cmd.InOrStdin(), cmd.OutOrStdout(), dict, interactive)
		},
	}

	var cmdBrowse = &cobra.Command{
		Use:   "browse",
		Short: "Search words by prefix in a terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := opts.loadDictionary()
			if err != nil {
				return err
			}
			return runBrowser(dict)
		},
	}

	var cmdView = &cobra.Command{
		Use:   "view",
		Short: "Explore the tree structure in a terminal dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := opts.loadDictionary()
			if err != nil {
				return err
			}
			return runViewer(dict)
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Display current configuration settings",
		Long:  fmt.Sprintf("%s\n%s", logo, `Settings displays the configuration, creating a default file when none exists`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Lexicon usage guide",
		Long:  fmt.Sprintf("%s\n%s", logo, `Usage displays the lexicon CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Lexicon version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "lexicon",
		Version:      version,
		Long:         logo,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogger(opts.debug, opts.quiet)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the browser when no subcommand is provided
			dict, err := opts.loadDictionary()
			if err != nil {
				return err
			}
			return runBrowser(dict)
		},
	}
	rootCmd.PersistentFlags().StringSliceVarP(&opts.dictionaries, "dict", "d", nil, "dictionary file to load (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.quiet, "quiet", false, "only log warnings and errors")

	rootCmd.AddCommand(cmdLookup, cmdList, cmdShape, cmdStats, cmdCheck, cmdREPL,
		cmdBrowse, cmdView, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}

func main() {
	InitializeColors()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
