package main

import (
	"fmt"
	"os"

	"github.com/ncobase/relaypage/cmd/relaypage/commands"
)

func main() {
	rootCmd, cleanup := commands.NewRootCmd()
	err := rootCmd.Execute()
	cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
