// Command polymax is the CLI surface over solve.Solve (spec.md §6).
package main

import "github.com/polymax/polymax/cmd/polymax/cmd"

func main() {
	cmd.Execute()
}
