package main

import (
	"os"

	"crane/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
