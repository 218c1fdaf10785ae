// Command pathgraph answers shortest-path and connectivity queries over
// weighted directed edge lists stored as JSON or YAML.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/pathgraph/internal/cli"
)

func main() {
	err := cli.Run(os.Args[1:], cli.Env{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Lookup: os.LookupEnv,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.Code(err))
	}
}
