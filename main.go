// SPDX-License-Identifier: MPL-2.0

// reprise is a task runner with scoped command aliases.
package main

import cmd "reprise-cli/cmd/reprise"

func main() {
	cmd.Execute()
}
