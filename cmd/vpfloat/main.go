// Command vpfloat inspects bit-packed variable-precision float encodings.
package main

import (
	"fmt"
	"os"

	"github.com/hupe1980/bitkit/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(cli.GetExitCode(err))
}
