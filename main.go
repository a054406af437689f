// SPDX-License-Identifier: MPL-2.0

// ghforge is a build-and-launch orchestrator for Grasshopper plugin
// artifacts. See cmd/ghforge for the command tree.
package main

import cmd "ghforge-cli/cmd/ghforge"

func main() {
	cmd.Execute()
}
