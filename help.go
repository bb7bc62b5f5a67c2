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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Bimap %s**

Keep one-to-one string pairs and look them up from either side.
Every left key has exactly one right key and every right key exactly one left key:
storing a pair drops any older pair that used either of its keys.

Built with Go %s

# 1. Pairs files
* Text: one pair per line, left and right split by the configured separator (tab by default). Lines starting with '#' are skipped.
* YAML (.yaml, .yml): a mapping of left: right, or a list of {left, right} objects.
* Pairs load in file order, so later lines win.

# 2. Commands
* show: print both sides of a pairs file in key order
* get: look up a key with --left or --right
* exec: run a script of put/getleft/getright/rmleft/rmright/size/dump/clear/check/stats lines
* check: verify the internal trees of a loaded file
* browse: walk the pairs in a terminal UI
* settings: show (and create) ~/.bimap.yaml

# 3. Orderings
* natural, reverse, length, fold (case-insensitive), suffix (compare from the end)
* Each side has its own ordering: --left-order and --right-order

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
