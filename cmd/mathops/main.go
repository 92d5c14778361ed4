package main

import (
	"os"

	"github.com/pengelbrecht/mathops/cmd/mathops/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
