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

const gameHelpMarkdown = `# How to play

A tree of hidden keys is drawn on the board. The status line names a key to
find. Reveal nodes by clicking them, or move the cursor with **tab** and press
**enter**. Green means you found the target, red means you did not.

Insertion rebalances eagerly and rotations swap keys, so the tree is *not*
always ordered: a key can sit on the wrong side of an ancestor.

# Keys

* **click / enter**: reveal a node
* **tab / shift+tab**: move the cursor
* **h**: show or hide cached heights
* **g**: give up and expose the tree
* **n**: start a new round
* **ctrl+x**: copy the insertion sequence
* **f1 / ?**: toggle this help
* **esc / q**: quit
`

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **BST Guesser %s**

Find keys hidden in an eagerly rebalanced binary search tree, right in your terminal.

Built with Go %s

# 1. Commands
* **play**: start the game (default)
* **trace 50 30 70 20 40**: print every rebalance check and the tree after each insertion
* **stress --runs 1000 --size 12**: count how often random insertions hit a rotation whose grandchild is missing
* **stats**: list finished rounds
* **settings**: show the configuration and create ~/.bstguesser.yaml

# 2. Configuration
* ~/.bstguesser.yaml, or any YAML or TOML file passed with --config
* BSTGUESSER_<SECTION>_<KEY> environment variables override the file

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
