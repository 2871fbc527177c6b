package main

import (
	"os"

	"github.com/Doomsbay/GPKit/gpkit/cmd"
)

func main() {
	cmd.Execute(os.Args[1:])
}
