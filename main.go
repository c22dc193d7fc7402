// SPDX-License-Identifier: MPL-2.0

package main

import cmd "spellbook-cli/cmd/spellbook"

func main() {
	cmd.Execute()
}
