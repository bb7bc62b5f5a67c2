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
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// cliOptions are the flags shared by every command that loads pairs.
type cliOptions struct {
	file       string
	leftOrder  string
	rightOrder string
	noProgress bool
}

// loadSession reads the configuration, applies flag overrides and loads
// the pairs file, if any, into a new session.
func loadSession(opts *cliOptions) (*Session, LoadStats, error) {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	if opts.leftOrder != "" {
		config.Ordering.Left = opts.leftOrder
	}
	if opts.rightOrder != "" {
		config.Ordering.Right = opts.rightOrder
	}
	if opts.noProgress {
		config.Loading.ShowProgress = false
	}

	m, stats, err := loadBimapFromFile(opts.file, config)
	if err != nil {
		return nil, LoadStats{}, err
	}
	return NewSession(m, config.Ordering, config.Lookup), stats, nil
}

func mustLoadSession(opts *cliOptions) (*Session, LoadStats) {
	session, stats, err := loadSession(opts)
	if err != nil {
		log.Fatalf("Error loading pairs: %v", err)
	}
	return session, stats
}

func printLoadStats(w io.Writer, stats LoadStats) {
	if stats.Read == 0 {
		return
	}
	fmt.Fprintf(w, "%sLoaded %d pairs (%d read)%s\n", Info, stats.Stored, stats.Read, Reset)
	if stats.Superseded > 0 {
		fmt.Fprintf(w, "%s%d of %d pairs superseded by later ones%s\n", Warning, stats.Superseded, stats.Read, Reset)
	}
}

func main() {
	InitializeColors()

	asciiLogo := `
██████╗ ██╗███╗   ███╗ █████╗ ██████╗
██╔══██╗██║████╗ ████║██╔══██╗██╔══██╗
██████╔╝██║██╔████╔██║███████║██████╔╝
██╔══██╗██║██║╚██╔╝██║██╔══██║██╔═══╝
██████╔╝██║██║ ╚═╝ ██║██║  ██║██║
╚═════╝ ╚═╝╚═╝     ╚═╝╚═╝  ╚═╝╚═╝
One-to-one string pairs, ordered and searchable from both sides [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	opts := &cliOptions{}

	var cmdShow = &cobra.Command{
		Use:   "show",
		Short: "Print both sides of a pairs file in key order",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Show loads the pairs file and prints the pairs once by left key and once by right key`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			session, stats := mustLoadSession(opts)
			printLoadStats(os.Stderr, stats)
			printViews(os.Stdout, session.Pairs())
		},
	}

	var lookupLeft, lookupRight string
	var cmdGet = &cobra.Command{
		Use:   "get",
		Short: "Look up the partner of a key",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Get prints the right key paired with --left, or the left key paired with --right`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			leftSet, rightSet := cmd.Flags().Changed("left"), cmd.Flags().Changed("right")
			if leftSet == rightSet {
				log.Fatalf("Exactly one of --left or --right is required")
			}

			session, _ := mustLoadSession(opts)
			sd, key := sideLeft, lookupLeft
			if rightSet {
				sd, key = sideRight, lookupRight
			}
			value, ok := session.Lookup(sd, key)
			if !ok {
				fmt.Fprintf(os.Stderr, "%sNo pair with %s key %q%s\n", Error, sd, key, Reset)
				os.Exit(1)
			}
			fmt.Println(value)
		},
	}
	cmdGet.Flags().StringVar(&lookupLeft, "left", "", "left key to look up")
	cmdGet.Flags().StringVar(&lookupRight, "right", "", "right key to look up")

	var cmdExec = &cobra.Command{
		Use:   "exec [script...]",
		Short: "Run a script of bimap commands",
		Long: fmt.Sprintf("%s\n%s", asciiLogo, `Exec runs each script (standard input when none is given) against the pairs loaded with --file.
Commands: put LEFT RIGHT, getleft LEFT, getright RIGHT, rmleft LEFT, rmright RIGHT, size, dump, clear, check, stats`),
		Args: cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			session, _ := mustLoadSession(opts)
			in := NewInterpreter(session, os.Stdout)

			if len(args) == 0 {
				args = []string{"-"}
			}
			for _, path := range args {
				if err := runScript(in, path); err != nil {
					log.Fatalf("Error running %s: %v", path, err)
				}
			}
		},
	}

	var cmdCheck = &cobra.Command{
		Use:   "check",
		Short: "Verify the internal trees of a pairs file",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Check loads the pairs file and verifies ordering, balance and the pairing of both trees`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			session, stats := mustLoadSession(opts)
			printLoadStats(os.Stderr, stats)
			if err := printCheck(os.Stdout, session.Pairs()); err != nil {
				log.Fatalf("Check failed: %v", err)
			}
		},
	}

	var cmdBrowse = &cobra.Command{
		Use:   "browse",
		Short: "Walk the pairs in a terminal UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Browse opens the pairs file in a terminal UI; tab flips between left and right key order`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			session, _ := mustLoadSession(opts)
			if err := runBrowser(session); err != nil {
				log.Fatalf("Error running browser: %v", err)
			}
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show bimap settings",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print bimap usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the bimap CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print bimap version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "bimap",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "pairs file (text, or YAML when ending in .yaml/.yml)")
	rootCmd.PersistentFlags().StringVar(&opts.leftOrder, "left-order", "", "ordering of left keys: "+orderingNames())
	rootCmd.PersistentFlags().StringVar(&opts.rightOrder, "right-order", "", "ordering of right keys: "+orderingNames())
	rootCmd.PersistentFlags().BoolVar(&opts.noProgress, "no-progress", false, "do not show a progress bar while loading")

	rootCmd.AddCommand(cmdShow, cmdGet, cmdExec, cmdCheck, cmdBrowse, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runScript runs one script file; "-" is standard input.
func runScript(in *Interpreter, path string) error {
	if path == "-" {
		return in.Run(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return in.Run(f)
}
