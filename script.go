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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/bimap/bimap"
	"github.com/mattn/go-shellwords"
)

var errUsage = errors.New("usage")

// scriptCommand is one statement understood by the interpreter.
type scriptCommand struct {
	args  int
	usage string
	run   func(in *Interpreter, args []string) error
}

var scriptCommands = map[string]scriptCommand{
	"put": {2, "put LEFT RIGHT", func(in *Interpreter, args []string) error {
		in.session.Put(args[0], args[1])
		return nil
	}},
	"getleft": {1, "getleft LEFT", func(in *Interpreter, args []string) error {
		in.printLookup(in.session.Lookup(sideLeft, args[0]))
		return nil
	}},
	"getright": {1, "getright RIGHT", func(in *Interpreter, args []string) error {
		in.printLookup(in.session.Lookup(sideRight, args[0]))
		return nil
	}},
	"rmleft": {1, "rmleft LEFT", func(in *Interpreter, args []string) error {
		in.printLookup(in.session.Remove(sideLeft, args[0]))
		return nil
	}},
	"rmright": {1, "rmright RIGHT", func(in *Interpreter, args []string) error {
		in.printLookup(in.session.Remove(sideRight, args[0]))
		return nil
	}},
	"size": {0, "size", func(in *Interpreter, args []string) error {
		fmt.Fprintln(in.out, in.session.Pairs().Len())
		return nil
	}},
	"dump": {0, "dump", func(in *Interpreter, args []string) error {
		printViews(in.out, in.session.Pairs())
		return nil
	}},
	"clear": {0, "clear", func(in *Interpreter, args []string) error {
		in.session.Clear()
		return nil
	}},
	"check": {0, "check", func(in *Interpreter, args []string) error {
		return printCheck(in.out, in.session.Pairs())
	}},
	"stats": {0, "stats", func(in *Interpreter, args []string) error {
		st := in.session.Stats()
		fmt.Fprintf(in.out, "lookups=%d bloom_rejects=%d cache_hits=%d tree_hits=%d misses=%d\n",
			st.Lookups, st.BloomRejects, st.CacheHits, st.TreeHits, st.Misses)
		return nil
	}},
}

// Interpreter runs bimap scripts: one command per line, arguments split
// like a shell would, so keys with spaces can be quoted.
type Interpreter struct {
	session *Session
	out     io.Writer
}

func NewInterpreter(session *Session, out io.Writer) *Interpreter {
	return &Interpreter{session: session, out: out}
}

// splitCommand splits a full command string into parts.
func splitCommand(fullCmd string) ([]string, error) {
	args, err := shellwords.Parse(fullCmd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", fullCmd, err)
	}
	return args, nil
}

// ExecLine runs a single command. Blank lines and '#' comments do nothing.
func (in *Interpreter) ExecLine(line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	parts, err := splitCommand(trimmed)
	if err != nil {
		return err
	}
	if len(parts) == 0 {
		return nil
	}

	name := strings.ToLower(parts[0])
	cmd, ok := scriptCommands[name]
	if !ok {
		return fmt.Errorf("unknown command %q", parts[0])
	}
	if len(parts)-1 != cmd.args {
		return fmt.Errorf("%w: %s", errUsage, cmd.usage)
	}
	return cmd.run(in, parts[1:])
}

// Run executes every line of r and stops at the first failing one.
func (in *Interpreter) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := in.ExecLine(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

func (in *Interpreter) printLookup(value string, ok bool) {
	if !ok {
		fmt.Fprintln(in.out, "(absent)")
		return
	}
	fmt.Fprintln(in.out, value)
}

// printViews writes both sides, one "key -> value" line per pair.
func printViews(w io.Writer, m *bimap.Bimap[string]) {
	fmt.Fprintf(w, "left (%d):\n", m.Len())
	for k, v := range m.LeftView().All() {
		fmt.Fprintf(w, "  %s -> %s\n", k, v)
	}
	fmt.Fprintf(w, "right (%d):\n", m.Len())
	for k, v := range m.RightView().All() {
		fmt.Fprintf(w, "  %s -> %s\n", k, v)
	}
}

func printCheck(w io.Writer, m *bimap.Bimap[string]) error {
	if err := m.CheckInvariant(); err != nil {
		return err
	}
	fmt.Fprintf(w, "ok: %d pairs, left height %d, right height %d\n", m.Len(), m.LeftHeight(), m.RightHeight())
	return nil
}
