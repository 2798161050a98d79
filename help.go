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

 **ranktree %s**

Rank queries over a self-balancing search tree. Every node knows the size of its
left subtree, so the k-th smallest key and any run of consecutive ranks come back
in logarithmic time.

Built with Go %s

# 1. Commands
* **list** shows every material, easiest to mine first
* **select K** shows the material with difficulty rank K (0 is the easiest); add --copy to put its name on the clipboard
* **range I J** shows the materials ranked I through J inclusive
* **rank NAME** shows how many materials are easier to mine than NAME
* **deal** generates a random trade offer, like a wandering trader would
* **shell** opens an interactive prompt to add, remove and query materials
* **bench** times random inserts, selects, ranges and deletes and checks the tree after each phase
* **export OUT** writes the catalog to OUT as yaml or msgpack, picked by extension
* **settings** shows the configuration in ~/.ranktree.yaml

# 2. Catalog files
* YAML (.yaml, .yml) or MessagePack (.msgpack, .mp)
* A top level "materials" list of entries with "name" and "mining_rate"
* Names and mining rates must both be unique

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
