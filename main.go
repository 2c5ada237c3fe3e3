// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"

	cmd "modtest-cli/cmd/modtest"
)

func main() {
	os.Exit(cmd.Main())
}
