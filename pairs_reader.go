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
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cybrota/bimap/bimap"
	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"
)

// PairEntry is one (left, right) pair read from a pairs file
type PairEntry struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Line  int    `yaml:"-"`
}

// LoadStats summarises a load: how many pairs were read and how many
// earlier pairs were superseded by later ones.
type LoadStats struct {
	Read       int
	Stored     int
	Superseded int
}

// readPairsFile reads a pairs file. Files ending in .yaml or .yml are YAML,
// anything else is text with one "left<separator>right" pair per line.
func readPairsFile(path, separator string) ([]PairEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("pairs file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, err
		}
		return readYAMLPairs(data)
	default:
		return readTextPairs(file, separator)
	}
}

// readTextPairs parses "left<separator>right" lines. Blank lines and lines
// starting with '#' are skipped. Only the first separator splits, so the
// right key may itself contain the separator.
func readTextPairs(r io.Reader, separator string) ([]PairEntry, error) {
	if separator == "" {
		return nil, fmt.Errorf("empty pair separator")
	}

	var pairs []PairEntry
	scanner := bufio.NewScanner(r)
	// Increase buffer size for long keys
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		left, right, found := strings.Cut(line, separator)
		if !found {
			return nil, fmt.Errorf("line %d: missing separator %q", lineNo, separator)
		}
		pairs = append(pairs, PairEntry{Left: left, Right: right, Line: lineNo})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return pairs, nil
}

// readYAMLPairs accepts either a mapping (left: right, in document order,
// repeated keys allowed) or a sequence of {left, right} objects.
func readYAMLPairs(data []byte) ([]PairEntry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML pairs: %v", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		pairs := make([]PairEntry, 0, len(root.Content)/2)
		for i := 0; i+1 < len(root.Content); i += 2 {
			k, v := root.Content[i], root.Content[i+1]
			if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: pair values must be scalars", k.Line)
			}
			pairs = append(pairs, PairEntry{Left: k.Value, Right: v.Value, Line: k.Line})
		}
		return pairs, nil
	case yaml.SequenceNode:
		pairs := make([]PairEntry, 0, len(root.Content))
		for _, item := range root.Content {
			var p PairEntry
			if err := item.Decode(&p); err != nil {
				return nil, fmt.Errorf("line %d: %v", item.Line, err)
			}
			p.Line = item.Line
			pairs = append(pairs, p)
		}
		return pairs, nil
	default:
		return nil, fmt.Errorf("line %d: expected a mapping or a list of pairs", root.Line)
	}
}

// populateBimap puts every entry in file order, so a later pair supersedes
// earlier pairs sharing either key.
func populateBimap(m *bimap.Bimap[string], entries []PairEntry, showProgress bool) LoadStats {
	var bar *progressbar.ProgressBar
	if showProgress && len(entries) > 0 {
		bar = progressbar.NewOptions(len(entries),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("🔗 Loading pairs..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	stats := LoadStats{Read: len(entries)}
	for _, e := range entries {
		before := m.Len()
		m.Put(e.Left, e.Right)
		stats.Superseded += before + 1 - m.Len()
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}
	stats.Stored = m.Len()
	return stats
}

// loadBimapFromFile builds a bimap ordered per config and fills it from path.
func loadBimapFromFile(path string, config *Config) (*bimap.Bimap[string], LoadStats, error) {
	m, err := newBimap(config)
	if err != nil {
		return nil, LoadStats{}, err
	}
	if path == "" {
		return m, LoadStats{}, nil
	}

	entries, err := readPairsFile(path, config.Loading.Separator)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("failed to read %s: %v", path, err)
	}
	stats := populateBimap(m, entries, config.Loading.ShowProgress)
	return m, stats, nil
}
